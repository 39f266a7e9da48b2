package web

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diillson/aws-cost-dashboard-go/internal/application/usecase"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
)

type nopConsole struct{}

func (nopConsole) Print(a ...interface{})                         {}
func (nopConsole) Printf(format string, a ...interface{})         {}
func (nopConsole) Println(a ...interface{})                       {}
func (nopConsole) LogInfo(format string, a ...interface{})        {}
func (nopConsole) LogWarning(format string, a ...interface{})     {}
func (nopConsole) LogError(format string, a ...interface{})       {}
func (nopConsole) LogSuccess(format string, a ...interface{})     {}
func (nopConsole) LogDebugFields(msg string, kv ...interface{})   {}
func (nopConsole) LogInfoFields(msg string, kv ...interface{})    {}
func (nopConsole) LogWarningFields(msg string, kv ...interface{}) {}
func (nopConsole) Status(message string) types.StatusHandle       { return nil }
func (nopConsole) CreateTable() types.TableInterface              { return nil }
func (nopConsole) DisplayTrendBars(m []types.MonthlyCost)         {}

func testSnapshot(sample bool) *entity.DashboardSnapshot {
	table := entity.CostTable{Records: []entity.CostRecord{
		{Date: time.Date(2024, 12, 3, 0, 0, 0, 0, time.UTC), Account: "prod", Costs: map[string]float64{"Total costs($)": 1500}},
		{Date: time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC), Account: "dev", Costs: map[string]float64{"Total costs($)": 600}},
	}}
	columns := []string{"Total costs($)"}
	accounts := []entity.AccountCost{{Account: "dev", Cost: 600}, {Account: "prod", Cost: 1500}}
	metrics := usecase.ComputeMetrics(table, columns, entity.DefaultPolicy())

	outcome := entity.LoadOutcome{Source: "costs.xlsx", RowsRead: 3, RowsKept: 2}
	if sample {
		outcome = entity.LoadOutcome{Source: "costs.xlsx", Sample: true, Failure: entity.LoadFailureMissing, Cause: "source not found"}
	}

	return &entity.DashboardSnapshot{
		GeneratedAt:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Data:         entity.DashboardData{Table: table, CostColumns: columns, Accounts: accounts, Outcome: outcome},
		Metrics:      metrics,
		Monthly:      usecase.MonthlyCosts(table, columns[0]),
		MonthlyTrend: usecase.BuildMonthlyTrend(table, columns),
		AccountChart: usecase.BuildAccountDistribution(accounts),
		Projection:   usecase.BuildProjection(metrics),
	}
}

func newTestServer(t *testing.T, sample bool) *Server {
	t.Helper()
	s, err := NewServer(testSnapshot(sample), nopConsole{}, false)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return s
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestDashboardPage(t *testing.T) {
	rec := get(t, newTestServer(t, false).Handler(), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"AWS Cost Analysis Dashboard",
		"Executive Summary",
		"$2,100.00",
		"$350.00",
		"$4,200.00",
		"$1,260.00",
		"Annual Savings from Deletion",
		`id="monthly-trend-chart"`,
		`id="account-cost-chart"`,
		`id="projection-chart"`,
		"Cost Projection Analysis",
		"Key Insights",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(body, "sample-banner") {
		t.Error("sample banner shown for real data")
	}
}

func TestDashboardPage_SampleBanner(t *testing.T) {
	body := get(t, newTestServer(t, true).Handler(), "/").Body.String()

	if !strings.Contains(body, `id="sample-banner"`) {
		t.Fatal("sample banner missing")
	}
	if !strings.Contains(body, "(missing)") {
		t.Error("failure kind not shown")
	}
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t, true).Handler(), "/health")

	var body struct {
		Status string `json:"status"`
		Sample bool   `json:"sample"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || !body.Sample {
		t.Errorf("health = %+v", body)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(t, newTestServer(t, false).Handler(), "/api/metrics")

	var m entity.MetricsSnapshot
	if err := json.NewDecoder(rec.Body).Decode(&m); err != nil {
		t.Fatal(err)
	}
	if m.TotalCost != 2100 || m.MonthlyAverage != 350 {
		t.Errorf("metrics = %+v", m)
	}
}

func TestAccountsAndMonthlyEndpoints(t *testing.T) {
	h := newTestServer(t, false).Handler()

	var accounts []entity.AccountCost
	if err := json.NewDecoder(get(t, h, "/api/accounts").Body).Decode(&accounts); err != nil {
		t.Fatal(err)
	}
	if len(accounts) != 2 || accounts[1].Account != "prod" {
		t.Errorf("accounts = %+v", accounts)
	}

	var monthly []entity.MonthlyCost
	if err := json.NewDecoder(get(t, h, "/api/monthly").Body).Decode(&monthly); err != nil {
		t.Fatal(err)
	}
	if len(monthly) != 2 || monthly[0].Month != "2024-12" {
		t.Errorf("monthly = %+v", monthly)
	}
}

func TestChartEndpoint(t *testing.T) {
	h := newTestServer(t, false).Handler()

	tests := []struct {
		path       string
		wantStatus int
	}{
		{"/api/charts/trend", http.StatusOK},
		{"/api/charts/accounts", http.StatusOK},
		{"/api/charts/projection-chart", http.StatusOK},
		{"/api/charts/pie", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if rec := get(t, h, tt.path); rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}

	var fig struct {
		Data []struct {
			Type string `json:"type"`
			Mode string `json:"mode"`
			Line struct {
				Dash string `json:"dash"`
			} `json:"line"`
		} `json:"data"`
		Layout struct {
			Height int `json:"height"`
		} `json:"layout"`
	}
	if err := json.NewDecoder(get(t, h, "/api/charts/projection").Body).Decode(&fig); err != nil {
		t.Fatal(err)
	}
	if len(fig.Data) != 2 || fig.Data[1].Line.Dash != "dash" || fig.Data[0].Mode != "lines+markers" {
		t.Errorf("projection figure = %+v", fig)
	}
	if fig.Layout.Height != 400 {
		t.Errorf("height = %d", fig.Layout.Height)
	}

	var spec entity.ChartSpec
	if err := json.NewDecoder(get(t, h, "/api/charts/trend?format=spec").Body).Decode(&spec); err != nil {
		t.Fatal(err)
	}
	if spec.ID != usecase.MonthlyTrendChartID {
		t.Errorf("spec id = %q", spec.ID)
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	s := newTestServer(t, false)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
