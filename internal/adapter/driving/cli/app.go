package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/diillson/payments-dashboard-go/internal/adapter/driving/api"
	"github.com/diillson/payments-dashboard-go/internal/application/usecase"
	"github.com/diillson/payments-dashboard-go/internal/shared/types"
	"github.com/diillson/payments-dashboard-go/pkg/version"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	dashboardUseCase *usecase.DashboardUseCase
	logger           zerolog.Logger
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(logger zerolog.Logger) *CLIApp {
	app := &CLIApp{logger: logger}

	rootCmd := &cobra.Command{
		Use:           "payments-dashboard",
		Short:         "Pakistan digital payments dashboard",
		Long:          "Explore quarterly transaction volume and value by transaction type and sub-type.",
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runDashboard,
	}
	rootCmd.SetVersionTemplate(`{{printf "Payments Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("data", "f", "", "Dataset location: local path, http(s) URL or s3://bucket/key (default: data.csv)")
	flags.String("category", "", "Transaction type to filter on (default: all)")
	flags.String("sub-category", "", "Sub-type to filter on; must belong to the selected transaction type (default: all)")
	flags.StringP("metric", "m", "", "Metric to chart and tabulate: volume or value (default: volume)")
	flags.StringP("period", "p", "", "Summary period, e.g. Q3_FY25 (default: latest period)")
	flags.StringP("search", "s", "", "Case-insensitive search applied to the table")
	flags.String("scope", "", "Table scope: filtered or all (default: filtered)")
	flags.Bool("reset", false, "Reset filters and keep only rows with volume in the latest period")
	flags.StringP("report-name", "n", "", "Base name for the report files (default: pakistan_payment_data_filtered)")
	flags.StringSliceP("report-type", "y", nil, "Report types to write: csv, json, pdf")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.String("log-level", "", "Diagnostic log level: debug, info, warn, error (default: warn)")

	rootCmd.Flags().Bool("trend", false, "Display the trend chart of the top series")
	rootCmd.Flags().Bool("distribution", false, "Display the per-period sub-type distribution of the selected transaction type")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard as a JSON/CSV HTTP API",
		RunE:  app.runServe,
	}
	serveCmd.Flags().String("addr", "", "Listen address (default: :8080)")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write reports for the current selection without rendering the dashboard",
		RunE:  app.runExport,
	}

	rootCmd.AddCommand(serveCmd, exportCmd)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute(ctx context.Context) error {
	return app.rootCmd.ExecuteContext(ctx)
}

// SetDashboardUseCase sets the dashboard use case for the CLI app.
func (app *CLIApp) SetDashboardUseCase(useCase *usecase.DashboardUseCase) {
	app.dashboardUseCase = useCase
}

// parseArgs reads the flags of cmd into a CLIArgs struct.
func parseArgs(cmd *cobra.Command) *types.CLIArgs {
	flags := cmd.Flags()
	getString := func(name string) string {
		v, _ := flags.GetString(name)
		return v
	}
	getBool := func(name string) bool {
		v, _ := flags.GetBool(name)
		return v
	}
	reportType, _ := flags.GetStringSlice("report-type")

	return &types.CLIArgs{
		ConfigFile:   getString("config-file"),
		Data:         getString("data"),
		Category:     getString("category"),
		SubCategory:  getString("sub-category"),
		Metric:       getString("metric"),
		Period:       getString("period"),
		Search:       getString("search"),
		Scope:        getString("scope"),
		Reset:        getBool("reset"),
		ReportName:   getString("report-name"),
		ReportType:   reportType,
		Dir:          getString("dir"),
		Trend:        getBool("trend"),
		Distribution: getBool("distribution"),
		Addr:         getString("addr"),
		LogLevel:     getString("log-level"),
	}
}

// mergeConfig fills every value the user did not set on the command line from cfg, and
// then from the built-in defaults.
func mergeConfig(args *types.CLIArgs, cfg *types.Config, changed func(string) bool) {
	str := func(flag string, dst *string, fromFile, def string) {
		if changed(flag) && *dst != "" {
			return
		}
		switch {
		case fromFile != "":
			*dst = fromFile
		case *dst == "":
			*dst = def
		}
	}
	boolean := func(flag string, dst *bool, fromFile bool) {
		if !changed(flag) {
			*dst = fromFile
		}
	}

	str("data", &args.Data, cfg.Data, types.DefaultData)
	str("category", &args.Category, cfg.Category, "")
	str("sub-category", &args.SubCategory, cfg.SubCategory, "")
	str("metric", &args.Metric, cfg.Metric, types.DefaultMetric)
	str("period", &args.Period, cfg.Period, "")
	str("search", &args.Search, cfg.Search, "")
	str("scope", &args.Scope, cfg.Scope, types.DefaultScope)
	str("report-name", &args.ReportName, cfg.ReportName, types.DefaultReportName)
	str("dir", &args.Dir, cfg.Dir, "")
	str("addr", &args.Addr, cfg.Addr, types.DefaultAddr)
	str("log-level", &args.LogLevel, cfg.LogLevel, types.DefaultLogLevel)

	boolean("reset", &args.Reset, cfg.Reset)
	boolean("trend", &args.Trend, cfg.Trend)
	boolean("distribution", &args.Distribution, cfg.Distribution)

	if !changed("report-type") && len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
}

// prepare resolves the arguments of cmd: flags, then the config file, then defaults.
func (app *CLIApp) prepare(cmd *cobra.Command) (*types.CLIArgs, error) {
	args := parseArgs(cmd)

	cfg, err := app.dashboardUseCase.LoadConfig(args.ConfigFile)
	if err != nil {
		return nil, err
	}
	mergeConfig(args, cfg, cmd.Flags().Changed)

	level, err := zerolog.ParseLevel(strings.ToLower(args.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", args.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)

	if args.Dir != "" {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}

// runDashboard é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runDashboard(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner()

	args, err := app.prepare(cmd)
	if err != nil {
		return err
	}
	return app.dashboardUseCase.RunDashboard(cmd.Context(), args)
}

func (app *CLIApp) runExport(cmd *cobra.Command, _ []string) error {
	args, err := app.prepare(cmd)
	if err != nil {
		return err
	}
	return app.dashboardUseCase.RunExport(cmd.Context(), args)
}

func (app *CLIApp) runServe(cmd *cobra.Command, _ []string) error {
	args, err := app.prepare(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	// The server refuses to start without a dataset.
	if err := app.dashboardUseCase.LoadDataset(ctx, args.Data); err != nil {
		return err
	}

	server := api.NewWebAPI(api.Config{
		Addr: args.Addr,
		Dependencies: api.Dependencies{
			Dashboard: app.dashboardUseCase,
			Logger:    app.logger,
		},
	})
	return server.Start(ctx)
}
