package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-cost-dashboard-go/internal/adapter/driven/aws"
	"github.com/diillson/aws-cost-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/aws-cost-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/aws-cost-dashboard-go/internal/adapter/driven/spreadsheet"
	"github.com/diillson/aws-cost-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/aws-cost-dashboard-go/internal/application/usecase"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
	"github.com/diillson/aws-cost-dashboard-go/pkg/console"
	"github.com/diillson/aws-cost-dashboard-go/pkg/version"
)

func main() {
	// Inicializa os repositórios que não dependem da configuração
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole()

	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version, configRepo, consoleImpl)

	// O leitor de planilhas depende do perfil/região AWS resolvidos
	app.SetDashboardFactory(func(cfg *types.Config) *usecase.DashboardUseCase {
		consoleImpl.SetDebug(cfg.Debug)

		fetcher := aws.NewS3Fetcher(cfg.AWSProfile, cfg.AWSRegion)
		sourceRepo := spreadsheet.NewSpreadsheetRepository(fetcher)

		return usecase.NewDashboardUseCase(sourceRepo, exportRepo, consoleImpl)
	})

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
