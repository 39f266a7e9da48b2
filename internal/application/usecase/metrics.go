package usecase

import (
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
)

// ComputeMetrics reduces the table to the four dashboard figures using the
// first cost column. With no cost column every figure is zero.
func ComputeMetrics(table entity.CostTable, costColumns []string, policy entity.AnalysisPolicy) entity.MetricsSnapshot {
	if len(costColumns) == 0 || policy.WindowMonths <= 0 {
		return entity.MetricsSnapshot{}
	}

	total := SumColumn(table, costColumns[0])
	monthlyAvg := total / float64(policy.WindowMonths)
	projectedAnnual := monthlyAvg * float64(policy.AnnualMonths)

	return entity.MetricsSnapshot{
		TotalCost:       total,
		MonthlyAverage:  monthlyAvg,
		ProjectedAnnual: projectedAnnual,
		Savings:         projectedAnnual * policy.SavingsRatio,
	}
}
