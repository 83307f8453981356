package main

import (
	"fmt"

	"github.com/iwvelando/foodtruck-forecast/internal/plan"
	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/iwvelando/foodtruck-forecast/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newScenariosCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "Compare the demand scenarios side by side",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, logger, format, err := loadPlan(opts)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			report, err := plan.Evaluate(logger, *conf, plan.Options{SkipSimulation: true})
			if err != nil {
				logger.Error("failed to evaluate plan",
					zap.String("op", "main.scenarios"),
					zap.Error(err),
				)
				return err
			}

			out := cmd.OutOrStdout()
			if format == constants.OutputFormatCSV {
				if err := output.ScenariosCsv(out, report.Scenarios); err != nil {
					return fmt.Errorf("failed to write scenarios: %w", err)
				}
				return nil
			}
			output.PrettyScenarios(out, report.Scenarios)
			return nil
		},
	}
}
