package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/diillson/aws-cost-dashboard-go/internal/application/usecase"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
	"github.com/diillson/aws-cost-dashboard-go/pkg/money"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

const (
	plotlyURL         = "https://cdn.plot.ly/plotly-2.35.2.min.js"
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// chartHeadings são os títulos dos painéis, na ordem da página.
var chartHeadings = map[string]string{
	usecase.MonthlyTrendChartID: "Monthly Cost Trend",
	usecase.AccountChartID:      "Account-wise Cost Distribution",
	usecase.ProjectionChartID:   "Cost Projection Analysis",
}

type metricCard struct {
	Value string
	Label string
}

type chartView struct {
	ID      string
	Heading string
	Figure  plotlyFigure
}

type pageData struct {
	PlotlyURL   string
	Outcome     entity.LoadOutcome
	Metrics     []metricCard
	Charts      []chartView
	GeneratedAt string
}

// Server serves the dashboard page and JSON endpoints from a snapshot that is
// never modified after construction.
type Server struct {
	snapshot *entity.DashboardSnapshot
	console  types.ConsoleInterface
	page     []byte
	router   chi.Router
}

// NewServer renders the page once and builds the router.
func NewServer(snapshot *entity.DashboardSnapshot, console types.ConsoleInterface, debug bool) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing dashboard template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newPageData(snapshot)); err != nil {
		return nil, fmt.Errorf("error rendering dashboard: %w", err)
	}

	s := &Server{
		snapshot: snapshot,
		console:  console,
		page:     buf.Bytes(),
	}
	s.router = s.routes(debug)
	return s, nil
}

func newPageData(snapshot *entity.DashboardSnapshot) pageData {
	m := snapshot.Metrics
	data := pageData{
		PlotlyURL: plotlyURL,
		Outcome:   snapshot.Data.Outcome,
		Metrics: []metricCard{
			{Value: money.FormatUSD(m.TotalCost), Label: "Total Cost (Dec 2024 - May 2025)"},
			{Value: money.FormatUSD(m.MonthlyAverage), Label: "Monthly Average Cost"},
			{Value: money.FormatUSD(m.ProjectedAnnual), Label: "Projected Annual Cost"},
			{Value: money.FormatUSD(m.Savings), Label: "Annual Savings from Deletion"},
		},
		GeneratedAt: snapshot.GeneratedAt.Format("2006-01-02 15:04 MST"),
	}
	for _, chart := range snapshot.Charts() {
		data.Charts = append(data.Charts, chartView{
			ID:      chart.ID,
			Heading: chartHeadings[chart.ID],
			Figure:  toPlotly(chart),
		})
	}
	return data
}

func (s *Server) routes(debug bool) chi.Router {
	r := chi.NewRouter()

	if debug {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/", s.handleDashboard)
	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/snapshot", s.handleSnapshot)
		r.Get("/metrics", s.handleMetrics)
		r.Get("/accounts", s.handleAccounts)
		r.Get("/monthly", s.handleMonthly)
		r.Get("/charts/{chart}", s.handleChart)
	})

	return r
}

// Handler expõe o roteador (usado pelos testes com httptest).
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve é como Run, mas com um listener já aberto.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.console.LogInfoFields("Dashboard listening", "address", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.console.LogInfo("Shutting down dashboard server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
