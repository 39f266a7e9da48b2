package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
	"github.com/diillson/aws-cost-dashboard-go/pkg/money"
)

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	sourceRepo repository.CostSourceRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	policy     entity.AnalysisPolicy
	now        func() time.Time
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	sourceRepo repository.CostSourceRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		sourceRepo: sourceRepo,
		exportRepo: exportRepo,
		console:    console,
		policy:     entity.DefaultPolicy(),
		now:        time.Now,
	}
}

// BuildSnapshot executa o pipeline completo uma única vez:
// carregamento → métricas → gráficos. O resultado não é alterado depois.
func (uc *DashboardUseCase) BuildSnapshot(ctx context.Context, cfg *types.Config) *entity.DashboardSnapshot {
	status := uc.console.Status("Loading cost data...")

	loader := NewCostLoader(uc.sourceRepo, NewSampleGenerator(uc.policy, cfg.Seed), uc.console, uc.policy)
	data := loader.Load(ctx, cfg.Source, cfg.Sheet)

	status.Update("Computing metrics...")
	metrics := ComputeMetrics(data.Table, data.CostColumns, uc.policy)

	var monthly []entity.MonthlyCost
	if len(data.CostColumns) > 0 {
		monthly = MonthlyCosts(data.Table, data.CostColumns[0])
	}

	status.Update("Building charts...")
	snapshot := &entity.DashboardSnapshot{
		GeneratedAt:  uc.now().UTC(),
		Data:         data,
		Metrics:      metrics,
		Monthly:      monthly,
		MonthlyTrend: BuildMonthlyTrend(data.Table, data.CostColumns),
		AccountChart: BuildAccountDistribution(data.Accounts),
		Projection:   BuildProjection(metrics),
	}
	status.Stop()

	if data.Outcome.Sample {
		uc.console.LogWarning("Showing sample data: %s could not be used (%s)", cfg.Source, data.Outcome.Failure)
	} else {
		uc.console.LogSuccess("Loaded %d cost rows from %s", data.Outcome.RowsKept, cfg.Source)
	}

	return snapshot
}

// ExportReports grava o snapshot em cada formato pedido e devolve os caminhos gerados.
// Falhas individuais são registradas e combinadas no erro devolvido.
func (uc *DashboardUseCase) ExportReports(snapshot *entity.DashboardSnapshot, cfg *types.Config) ([]string, error) {
	var paths []string
	var errs []error

	for _, reportType := range cfg.ReportType {
		var (
			path string
			err  error
		)
		switch strings.ToLower(reportType) {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(snapshot, cfg.ReportName, cfg.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(snapshot, cfg.ReportName, cfg.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(snapshot, cfg.ReportName, cfg.Dir)
		default:
			err = fmt.Errorf("%w: %s", types.ErrUnsupportedReportType, reportType)
		}

		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", strings.ToUpper(reportType), err)
			errs = append(errs, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", strings.ToUpper(reportType), path)
		paths = append(paths, path)
	}

	return paths, errors.Join(errs...)
}

// DisplaySummary imprime as métricas e a tendência mensal no terminal.
func (uc *DashboardUseCase) DisplaySummary(snapshot *entity.DashboardSnapshot) {
	table := uc.console.CreateTable()
	table.AddColumn("Metric")
	table.AddColumn("Value")
	table.AddRow("Total Cost (Dec 2024 - May 2025)", money.FormatUSD(snapshot.Metrics.TotalCost))
	table.AddRow("Monthly Average Cost", money.FormatUSD(snapshot.Metrics.MonthlyAverage))
	table.AddRow("Projected Annual Cost", money.FormatUSD(snapshot.Metrics.ProjectedAnnual))
	table.AddRow("Annual Savings from Deletion", money.FormatUSD(snapshot.Metrics.Savings))
	uc.console.Println(table.Render())

	accounts := uc.console.CreateTable()
	accounts.AddColumn("Account")
	accounts.AddColumn("Cost")
	for _, a := range snapshot.Data.Accounts {
		accounts.AddRow(a.Account, money.FormatUSD(a.Cost))
	}
	uc.console.Println(accounts.Render())

	// Converte para o tipo usado pelo console
	uiMonthlyCosts := make([]types.MonthlyCost, len(snapshot.Monthly))
	for i, mc := range snapshot.Monthly {
		uiMonthlyCosts[i] = types.MonthlyCost{
			Month: mc.Month,
			Cost:  mc.Cost,
		}
	}
	uc.console.DisplayTrendBars(uiMonthlyCosts)
}
