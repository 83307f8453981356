package main

import (
	"fmt"

	"github.com/iwvelando/foodtruck-forecast/internal/config"
	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/iwvelando/foodtruck-forecast/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath   string
	outputFormat string
	logLevel     string
	envFile      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "foodtruck-forecast",
		Short:         "Food truck financial planner",
		Long:          "Evaluate a food truck business plan: monthly financials, demand scenarios, staffing, roadmap, menu pricing and a Monte Carlo outlook.",
		Version:       version,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", constants.DefaultConfigFile, "path to configuration file")
	flags.StringVarP(&opts.outputFormat, "output-format", "o", "", "type of output override: pretty, csv")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flags.StringVar(&opts.envFile, "env-file", "", "optional .env file with FOODTRUCK_* overrides")

	cmd.AddCommand(
		newReportCmd(opts),
		newScenariosCmd(opts),
		newSimulateCmd(opts),
		newServeCmd(opts),
	)

	return cmd
}

// loadPlan is the shared loading path used by the plan commands. It returns
// the configuration, a logger built from its logging section and the
// resolved output format.
func loadPlan(opts *rootOptions) (*config.Configuration, *zap.Logger, string, error) {
	if err := config.LoadEnvFile(opts.envFile); err != nil {
		return nil, nil, "", err
	}

	conf, err := config.LoadConfiguration(opts.configPath)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}

	logger, err := initializeLogger(conf.Logging, opts.logLevel)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to initialize logger: %w", err)
	}

	format, err := resolveOutputFormat(conf.Output.Format, opts.outputFormat)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, "", err
	}

	return conf, logger, format, nil
}

// resolveOutputFormat applies the CLI override over the configured format.
func resolveOutputFormat(configured, override string) (string, error) {
	format := configured
	if override != "" {
		format = override
	}
	if format == "" {
		format = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
