package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/diillson/aws-cost-dashboard-go/internal/adapter/driving/web"
	"github.com/diillson/aws-cost-dashboard-go/internal/application/usecase"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/entity"
	"github.com/diillson/aws-cost-dashboard-go/internal/domain/repository"
	"github.com/diillson/aws-cost-dashboard-go/internal/shared/types"
	"github.com/diillson/aws-cost-dashboard-go/pkg/console"
	"github.com/diillson/aws-cost-dashboard-go/pkg/version"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// DashboardFactory builds the use case once the configuration is known
// (the S3 fetcher needs the resolved profile and region).
type DashboardFactory func(cfg *types.Config) *usecase.DashboardUseCase

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd      *cobra.Command
	configRepo   repository.ConfigRepository
	console      types.ConsoleInterface
	newDashboard DashboardFactory
	getenv       func(string) string
	version      string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, consoleImpl types.ConsoleInterface) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
		console:    consoleImpl,
		getenv:     os.Getenv,
		version:    versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:               "aws-cost-dashboard",
		Short:             "AWS Cost Analysis Dashboard",
		Long:              "Loads the AWS billing spreadsheet, computes cost metrics for Dec 2024 - May 2025 and serves an interactive dashboard.",
		Version:           formattedVersion,
		SilenceUsage:      true,
		PersistentPreRunE: app.loadDotEnv,
		RunE:              app.runServe,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "AWS Cost Dashboard version: %s\n" .Version}}`)

	// Flags comuns a todos os comandos
	pf := rootCmd.PersistentFlags()
	pf.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	pf.StringP("source", "s", "", "Cost spreadsheet (.xlsx or .csv), local path or s3://bucket/key")
	pf.String("sheet", "", "Sheet name inside the workbook (default: first sheet)")
	pf.StringP("aws-profile", "p", "", "AWS profile used to fetch s3:// sources")
	pf.String("aws-region", "", "AWS region used to fetch s3:// sources")
	pf.Int64("seed", 0, "Seed for the sample data generator (0 = random)")
	pf.Bool("debug", false, "Enable debug logging and HTTP request logs")

	addServeFlags(rootCmd)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP (default)",
		RunE:  app.runServe,
	}
	addServeFlags(serveCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the dashboard metrics to CSV, JSON or PDF",
		RunE:  app.runExport,
	}
	exportCmd.Flags().StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	exportCmd.Flags().StringSliceP("report-type", "y", nil, "Specify report types: csv, json, pdf")
	exportCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the cost metrics and monthly trend in the terminal",
		RunE:  app.runSummary,
	}

	rootCmd.AddCommand(serveCmd, exportCmd, summaryCmd)

	app.rootCmd = rootCmd
	return app
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("host", "", "Address to bind the HTTP server (default 0.0.0.0)")
	cmd.Flags().Int("port", 0, "Port for the HTTP server (default 8080)")
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetDashboardFactory sets how the CLI builds the dashboard use case.
func (app *CLIApp) SetDashboardFactory(factory DashboardFactory) {
	app.newDashboard = factory
}

// loadDotEnv carrega variáveis de um .env no diretório atual, se existir.
func (app *CLIApp) loadDotEnv(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		app.console.LogWarning("Could not load .env file: %s", err)
	}
	return nil
}

// parseArgs converte as flags em CLIArgs. Só flags realmente passadas ficam não-nulas.
func parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	args := &types.CLIArgs{}

	args.ConfigFile, _ = flags.GetString("config-file")

	stringFlag := func(name string) *string {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	args.Source = stringFlag("source")
	args.Sheet = stringFlag("sheet")
	args.Host = stringFlag("host")
	args.AWSProfile = stringFlag("aws-profile")
	args.AWSRegion = stringFlag("aws-region")
	args.ReportName = stringFlag("report-name")

	if flags.Lookup("port") != nil && flags.Changed("port") {
		port, _ := flags.GetInt("port")
		args.Port = &port
	}
	if flags.Changed("debug") {
		debug, _ := flags.GetBool("debug")
		args.Debug = &debug
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetInt64("seed")
		args.Seed = &seed
	}
	if flags.Lookup("report-type") != nil && flags.Changed("report-type") {
		args.ReportType, _ = flags.GetStringSlice("report-type")
	}

	if dir := stringFlag("dir"); dir != nil {
		// Convert to absolute path
		absDir, err := filepath.Abs(*dir)
		if err != nil {
			return nil, err
		}
		args.Dir = &absDir
	}

	return args, nil
}

// ResolveConfig aplica, em ordem: padrões, arquivo de configuração,
// variáveis de ambiente e flags. O resultado é validado.
func ResolveConfig(configRepo repository.ConfigRepository, args *types.CLIArgs, getenv func(string) string) (*types.Config, error) {
	cfg := types.DefaultConfig()

	if args.ConfigFile != "" {
		fileCfg, err := configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
		cfg.Merge(fileCfg)
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}

	args.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// prepare resolve a configuração e constrói o snapshot, comum a todos os comandos.
func (app *CLIApp) prepare(ctx context.Context, cmd *cobra.Command) (*types.Config, *usecase.DashboardUseCase, *entity.DashboardSnapshot, error) {
	cliArgs, err := parseArgs(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	cfg, err := ResolveConfig(app.configRepo, cliArgs, app.getenv)
	if err != nil {
		return nil, nil, nil, err
	}

	if app.newDashboard == nil {
		return nil, nil, nil, errors.New("dashboard use case not configured")
	}
	uc := app.newDashboard(cfg)

	app.console.LogDebugFields("Resolved configuration",
		"source", cfg.Source,
		"sheet", cfg.Sheet,
		"address", cfg.Address(),
		"seed", cfg.Seed,
	)

	return cfg, uc, uc.BuildSnapshot(ctx, cfg), nil
}

// runServe é o ponto de entrada principal: carrega os dados uma vez e serve o dashboard.
func (app *CLIApp) runServe(cmd *cobra.Command, args []string) error {
	// Exibe o banner de boas-vindas
	displayWelcomeBanner(app.version)

	// Verifica a versão mais recente disponível
	go version.CheckLatestVersion(app.version)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, _, snapshot, err := app.prepare(ctx, cmd)
	if err != nil {
		return err
	}

	server, err := web.NewServer(snapshot, app.console, cfg.Debug)
	if err != nil {
		return err
	}

	app.console.LogInfo("Dashboard available at http://%s", cfg.Address())
	return server.Run(ctx, cfg.Address())
}

func (app *CLIApp) runExport(cmd *cobra.Command, args []string) error {
	cfg, uc, snapshot, err := app.prepare(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	paths, err := uc.ExportReports(snapshot, cfg)
	if len(paths) > 0 {
		app.console.Println(console.BrightGreen(fmt.Sprintf("%d report(s) written to %s", len(paths), filepath.Dir(paths[0]))))
	}
	return err
}

func (app *CLIApp) runSummary(cmd *cobra.Command, args []string) error {
	_, uc, snapshot, err := app.prepare(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	outcome := snapshot.Data.Outcome
	if outcome.Sample {
		app.console.Println(console.BoldRed(fmt.Sprintf("Sample data: %s could not be used (%s)", outcome.Source, outcome.Failure)))
	} else {
		app.console.Println(console.BrightCyan(fmt.Sprintf("Source: %s (%d rows in window)", outcome.Source, outcome.RowsKept)))
	}

	uc.DisplaySummary(snapshot)
	return nil
}
