package main

import (
	"fmt"

	"github.com/iwvelando/foodtruck-forecast/internal/plan"
	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/iwvelando/foodtruck-forecast/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newReportCmd(opts *rootOptions) *cobra.Command {
	var skipSimulation bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Full plan report (default command)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReportWith(cmd, opts, plan.Options{SkipSimulation: skipSimulation})
		},
	}
	cmd.Flags().BoolVar(&skipSimulation, "no-simulation", false, "Skip the Monte Carlo simulation")

	return cmd
}

func runReport(cmd *cobra.Command, opts *rootOptions) error {
	return runReportWith(cmd, opts, plan.Options{})
}

func runReportWith(cmd *cobra.Command, opts *rootOptions, planOpts plan.Options) error {
	conf, logger, format, err := loadPlan(opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	report, err := plan.Evaluate(logger, *conf, planOpts)
	if err != nil {
		logger.Error("failed to evaluate plan",
			zap.String("op", "main.report"),
			zap.Error(err),
		)
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case constants.OutputFormatPretty:
		output.PrettyFormat(out, report)
	case constants.OutputFormatCSV:
		if err := output.CsvFormat(out, report); err != nil {
			return fmt.Errorf("failed to write forecast: %w", err)
		}
	}
	return nil
}
