package usecase

import (
	"sort"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/samber/lo"
)

// IDs dos gráficos, iguais aos ids dos elementos na página.
const (
	MonthlyTrendChartID = "monthly-trend-chart"
	AccountChartID      = "account-cost-chart"
	ProjectionChartID   = "projection-chart"
)

const (
	chartHeight     = 400
	primaryColor    = "#dc3545"
	projectionColor = "#6c757d"
)

// ProjectionMonths is the fixed x axis of the projection chart.
var ProjectionMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func placeholderChart(id, text string) entity.ChartSpec {
	return entity.ChartSpec{
		ID:          id,
		Height:      chartHeight,
		Placeholder: true,
		Annotation:  text,
	}
}

// MonthlyCosts groups column by calendar month ("2006-01"), in chronological order.
func MonthlyCosts(table entity.CostTable, column string) []entity.MonthlyCost {
	groups := lo.GroupBy(table.Records, func(r entity.CostRecord) string {
		return r.Date.Format("2006-01")
	})

	months := lo.Keys(groups)
	sort.Strings(months)

	result := make([]entity.MonthlyCost, 0, len(months))
	for _, month := range months {
		result = append(result, entity.MonthlyCost{
			Month: month,
			Cost: lo.SumBy(groups[month], func(r entity.CostRecord) float64 {
				return r.Cost(column)
			}),
		})
	}
	return result
}

// BuildMonthlyTrend builds the monthly cost bar chart.
func BuildMonthlyTrend(table entity.CostTable, costColumns []string) entity.ChartSpec {
	if len(costColumns) == 0 || table.Empty() {
		return placeholderChart(MonthlyTrendChartID, "No data available for trend analysis")
	}

	monthly := MonthlyCosts(table, costColumns[0])

	return entity.ChartSpec{
		ID:         MonthlyTrendChartID,
		Title:      "Monthly Cost Trend (Dec 2024 - May 2025)",
		XAxisTitle: "Month",
		YAxisTitle: "Cost ($)",
		Height:     chartHeight,
		Series: []entity.ChartSeries{{
			Name:        "Monthly Cost",
			Kind:        entity.ChartBar,
			Orientation: entity.Vertical,
			Categories:  lo.Map(monthly, func(m entity.MonthlyCost, _ int) string { return m.Month }),
			Values:      lo.Map(monthly, func(m entity.MonthlyCost, _ int) float64 { return m.Cost }),
			Color:       primaryColor,
		}},
	}
}

// BuildAccountDistribution builds the horizontal account bar chart. Accounts are
// sorted by ascending cost so the largest bar is drawn on top.
func BuildAccountDistribution(accounts []entity.AccountCost) entity.ChartSpec {
	if len(accounts) == 0 {
		return placeholderChart(AccountChartID, "No data available for account analysis")
	}

	sorted := make([]entity.AccountCost, len(accounts))
	copy(sorted, accounts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cost < sorted[j].Cost
	})

	return entity.ChartSpec{
		ID:         AccountChartID,
		Title:      "Account-wise Cost Distribution",
		XAxisTitle: "Cost ($)",
		YAxisTitle: "Account",
		Height:     chartHeight,
		Series: []entity.ChartSeries{{
			Name:        "Account Cost",
			Kind:        entity.ChartBar,
			Orientation: entity.Horizontal,
			Categories:  lo.Map(sorted, func(a entity.AccountCost, _ int) string { return a.Account }),
			Values:      lo.Map(sorted, func(a entity.AccountCost, _ int) float64 { return a.Cost }),
			Color:       primaryColor,
		}},
	}
}

// BuildProjection builds the annual projection chart. Both lines are flat at the
// monthly average; the historical series covers Jan..Jun and the projected one
// Jun..Dec, so they meet at Jun.
func BuildProjection(metrics entity.MetricsSnapshot) entity.ChartSpec {
	historicalMonths := ProjectionMonths[:6]
	projectedMonths := ProjectionMonths[5:]

	flat := func(n int) []float64 {
		return lo.Times(n, func(int) float64 { return metrics.MonthlyAverage })
	}

	return entity.ChartSpec{
		ID:         ProjectionChartID,
		Title:      "Annual Cost Projection",
		XAxisTitle: "Month",
		YAxisTitle: "Cost ($)",
		Height:     chartHeight,
		Series: []entity.ChartSeries{
			{
				Name:       "Historical (Dec-May)",
				Kind:       entity.ChartLine,
				Categories: append([]string(nil), historicalMonths...),
				Values:     flat(len(historicalMonths)),
				Color:      primaryColor,
				Markers:    true,
			},
			{
				Name:       "Projected (Jun-Dec)",
				Kind:       entity.ChartLine,
				Categories: append([]string(nil), projectedMonths...),
				Values:     flat(len(projectedMonths)),
				Color:      projectionColor,
				Dashed:     true,
				Markers:    true,
			},
		},
	}
}
