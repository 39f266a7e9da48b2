package entity

import "time"

// Nomes de colunas esperados no formato da planilha de custos.
const (
	DateColumn       = "Service" // contém datas apesar do nome
	TotalCostColumn  = "Total costs($)"
	AccountColumn    = "SourceFile"
	SampleCostColumn = "Cost"
)

// AnalysisPolicy holds the fixed parameters of the cost analysis.
type AnalysisPolicy struct {
	WindowStart  time.Time
	WindowEnd    time.Time
	WindowMonths int
	AnnualMonths int
	SavingsRatio float64
	// FallbackSplit is used to fabricate per-account costs when the source has
	// no account column. Labels are "Account-1".."Account-N".
	FallbackSplit []float64
}

// DefaultPolicy returns the policy for the Dec 2024 - May 2025 window.
func DefaultPolicy() AnalysisPolicy {
	return AnalysisPolicy{
		WindowStart:   time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:     time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		WindowMonths:  6,
		AnnualMonths:  12,
		SavingsRatio:  0.3,
		FallbackSplit: []float64{0.30, 0.25, 0.20, 0.15, 0.10},
	}
}

// InWindow reports whether t lies in the closed window [WindowStart, WindowEnd].
func (p AnalysisPolicy) InWindow(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(p.WindowStart) && !t.After(p.WindowEnd)
}
