package entity

// MetricsSnapshot holds the four summary figures shown on the dashboard.
type MetricsSnapshot struct {
	TotalCost       float64 `json:"total_cost"`
	MonthlyAverage  float64 `json:"monthly_avg"`
	ProjectedAnnual float64 `json:"projected_annual"`
	Savings         float64 `json:"savings"`
}
