package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
	"github.com/samber/lo"
)

// CostLoader reads the billing spreadsheet, cleans it and derives the
// per-account aggregate. Load never fails: any error switches to sample data.
type CostLoader struct {
	sourceRepo repository.CostSourceRepository
	sampler    *SampleGenerator
	console    types.ConsoleInterface
	policy     entity.AnalysisPolicy
}

// NewCostLoader creates a new loader.
func NewCostLoader(
	sourceRepo repository.CostSourceRepository,
	sampler *SampleGenerator,
	console types.ConsoleInterface,
	policy entity.AnalysisPolicy,
) *CostLoader {
	return &CostLoader{
		sourceRepo: sourceRepo,
		sampler:    sampler,
		console:    console,
		policy:     policy,
	}
}

// Load devolve sempre um conjunto de dados utilizável.
func (l *CostLoader) Load(ctx context.Context, source, sheet string) entity.DashboardData {
	data, err := l.loadFromSource(ctx, source, sheet)
	if err == nil {
		return data
	}

	kind := ClassifyLoadFailure(err)
	l.console.LogWarningFields("Error loading data, falling back to sample data",
		"source", source,
		"failure", string(kind),
		"error", err.Error(),
	)

	sample := l.sampler.Generate()
	sample.Outcome.Source = source
	sample.Outcome.Failure = kind
	sample.Outcome.Cause = err.Error()
	return sample
}

func (l *CostLoader) loadFromSource(ctx context.Context, source, sheet string) (entity.DashboardData, error) {
	raw, err := l.sourceRepo.ReadTable(ctx, source, sheet)
	if err != nil {
		return entity.DashboardData{}, err
	}

	l.console.LogDebugFields("Data read",
		"rows", len(raw.Rows),
		"columns", strings.Join(raw.Columns, ", "),
	)

	table, err := CleanTable(raw, l.policy)
	if err != nil {
		return entity.DashboardData{}, err
	}

	costColumns := []string{entity.TotalCostColumn}
	accounts := AggregateAccounts(table, entity.TotalCostColumn, l.policy)

	l.console.LogDebugFields("Data processed",
		"rows_kept", table.Len(),
		"cost_column", entity.TotalCostColumn,
		"accounts", len(accounts),
		"account_column", table.HasAccountColumn,
	)

	return entity.DashboardData{
		Table:       table,
		CostColumns: costColumns,
		Accounts:    accounts,
		Outcome: entity.LoadOutcome{
			Source:   source,
			RowsRead: len(raw.Rows),
			RowsKept: table.Len(),
		},
	}, nil
}

// CleanTable drops the leading "Service total" row, parses the date column,
// keeps the rows inside the policy window and parses every cost column.
func CleanTable(raw entity.RawTable, policy entity.AnalysisPolicy) (entity.CostTable, error) {
	dateIdx := raw.ColumnIndex(entity.DateColumn)
	if dateIdx < 0 {
		return entity.CostTable{}, fmt.Errorf("%w: missing column %q", types.ErrSchemaMismatch, entity.DateColumn)
	}
	if raw.ColumnIndex(entity.TotalCostColumn) < 0 {
		return entity.CostTable{}, fmt.Errorf("%w: missing column %q", types.ErrSchemaMismatch, entity.TotalCostColumn)
	}
	accountIdx := raw.ColumnIndex(entity.AccountColumn)

	rows := raw.Rows
	if len(rows) > 0 {
		// primeira linha é o "Service total" do export
		rows = rows[1:]
	}

	table := entity.CostTable{
		Records:          make([]entity.CostRecord, 0, len(rows)),
		HasAccountColumn: accountIdx >= 0,
	}

	for _, row := range rows {
		date, ok := parseDate(raw.Cell(row, dateIdx))
		if !ok || !policy.InWindow(date) {
			continue
		}

		record := entity.CostRecord{
			Date:  date,
			Costs: make(map[string]float64),
		}
		if accountIdx >= 0 {
			record.Account = strings.TrimSpace(raw.Cell(row, accountIdx))
		}
		for i, column := range raw.Columns {
			if i == dateIdx || i == accountIdx || column == "" {
				continue
			}
			if v, ok := parseCost(raw.Cell(row, i)); ok {
				record.Costs[column] = v
			}
		}
		table.Records = append(table.Records, record)
	}

	return table, nil
}

// AggregateAccounts sums column per account, sorted by account name. Without an
// account column the grand total is split using policy.FallbackSplit.
func AggregateAccounts(table entity.CostTable, column string, policy entity.AnalysisPolicy) []entity.AccountCost {
	if !table.HasAccountColumn {
		total := SumColumn(table, column)
		accounts := make([]entity.AccountCost, len(policy.FallbackSplit))
		for i, share := range policy.FallbackSplit {
			accounts[i] = entity.AccountCost{
				Account: fmt.Sprintf("Account-%d", i+1),
				Cost:    total * share,
			}
		}
		return accounts
	}

	withAccount := lo.Filter(table.Records, func(r entity.CostRecord, _ int) bool {
		return r.Account != ""
	})
	groups := lo.GroupBy(withAccount, func(r entity.CostRecord) string {
		return r.Account
	})

	names := lo.Keys(groups)
	sort.Strings(names)

	accounts := make([]entity.AccountCost, 0, len(names))
	for _, name := range names {
		accounts = append(accounts, entity.AccountCost{
			Account: name,
			Cost: lo.SumBy(groups[name], func(r entity.CostRecord) float64 {
				return r.Cost(column)
			}),
		})
	}
	return accounts
}

// SumColumn sums one cost column over every record.
func SumColumn(table entity.CostTable, column string) float64 {
	return lo.SumBy(table.Records, func(r entity.CostRecord) float64 {
		return r.Cost(column)
	})
}

// ClassifyLoadFailure maps a load error to the kind shown on the dashboard.
func ClassifyLoadFailure(err error) entity.LoadFailureKind {
	switch {
	case err == nil:
		return entity.LoadFailureNone
	case errors.Is(err, types.ErrSourceNotFound):
		return entity.LoadFailureMissing
	case errors.Is(err, types.ErrSchemaMismatch), errors.Is(err, types.ErrUnsupportedFormat):
		return entity.LoadFailureSchema
	default:
		return entity.LoadFailureUnreadable
	}
}
