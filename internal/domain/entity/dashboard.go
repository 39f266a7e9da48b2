package entity

import "time"

// LoadFailureKind classifies why the real dataset could not be used.
type LoadFailureKind string

const (
	LoadFailureNone       LoadFailureKind = ""
	LoadFailureMissing    LoadFailureKind = "missing"
	LoadFailureUnreadable LoadFailureKind = "unreadable"
	LoadFailureSchema     LoadFailureKind = "schema"
)

// LoadOutcome records where the dashboard data came from.
type LoadOutcome struct {
	Source   string          `json:"source"`
	Sample   bool            `json:"sample"`
	Failure  LoadFailureKind `json:"failure,omitempty"`
	Cause    string          `json:"cause,omitempty"`
	RowsRead int             `json:"rows_read"`
	RowsKept int             `json:"rows_kept"`
}

// DashboardData is the loader output: table, identified cost columns and the
// per-account aggregate.
type DashboardData struct {
	Table       CostTable     `json:"-"`
	CostColumns []string      `json:"cost_columns"`
	Accounts    []AccountCost `json:"accounts"`
	Outcome     LoadOutcome   `json:"outcome"`
}

// DashboardSnapshot is built once at startup and only read afterwards.
type DashboardSnapshot struct {
	GeneratedAt  time.Time       `json:"generated_at"`
	Data         DashboardData   `json:"data"`
	Metrics      MetricsSnapshot `json:"metrics"`
	Monthly      []MonthlyCost   `json:"monthly"`
	MonthlyTrend ChartSpec       `json:"monthly_trend"`
	AccountChart ChartSpec       `json:"account_chart"`
	Projection   ChartSpec       `json:"projection"`
}

// Charts returns the three charts in page order.
func (s *DashboardSnapshot) Charts() []ChartSpec {
	return []ChartSpec{s.MonthlyTrend, s.AccountChart, s.Projection}
}

// Chart looks a chart up by ID.
func (s *DashboardSnapshot) Chart(id string) (ChartSpec, bool) {
	for _, c := range s.Charts() {
		if c.ID == id {
			return c, true
		}
	}
	return ChartSpec{}, false
}
