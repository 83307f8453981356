package main

import (
	"fmt"

	"github.com/iwvelando/foodtruck-forecast/internal/plan"
	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/iwvelando/foodtruck-forecast/pkg/montecarlo"
	"github.com/iwvelando/foodtruck-forecast/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type simulateOptions struct {
	samples int
	seed    int64
	workers int
}

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	simOpts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Monte Carlo distribution of monthly net revenue",
		Long:  "Run the Monte Carlo simulation for the selected scenario. Pretty output shows the summary and histogram; csv output lists every sample in draw order.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var seed *int64
			if cmd.Flags().Changed("seed") {
				seed = &simOpts.seed
			}
			return runSimulate(cmd, opts, simOpts, seed)
		},
	}

	cmd.Flags().IntVar(&simOpts.samples, "samples", 0, "number of trials (default from config)")
	cmd.Flags().Int64Var(&simOpts.seed, "seed", 0, "random seed for a reproducible run")
	cmd.Flags().IntVar(&simOpts.workers, "workers", 0, "goroutines sharing the trials")

	return cmd
}

func runSimulate(cmd *cobra.Command, opts *rootOptions, simOpts *simulateOptions, seed *int64) error {
	conf, logger, format, err := loadPlan(opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	out := cmd.OutOrStdout()

	if format == constants.OutputFormatCSV {
		conf.ApplyDefaults()
		params, err := conf.ScenarioParameters()
		if err != nil {
			return fmt.Errorf("selecting scenario: %w", err)
		}
		mcOpts := montecarlo.Options{
			Samples: conf.Simulation.Samples,
			Seed:    conf.Simulation.Seed,
			Workers: conf.Simulation.Workers,
		}
		if simOpts.samples > 0 {
			mcOpts.Samples = simOpts.samples
		}
		if seed != nil {
			mcOpts.Seed = seed
		}
		if simOpts.workers > 0 {
			mcOpts.Workers = simOpts.workers
		}
		result := montecarlo.NewSimulator(logger.Named("montecarlo"), mcOpts).Simulate(params)
		if err := output.SamplesCsv(out, result); err != nil {
			return fmt.Errorf("failed to write samples: %w", err)
		}
		return nil
	}

	report, err := plan.Evaluate(logger, *conf, plan.Options{
		Samples: simOpts.samples,
		Seed:    seed,
		Workers: simOpts.workers,
	})
	if err != nil {
		logger.Error("failed to evaluate plan",
			zap.String("op", "main.simulate"),
			zap.Error(err),
		)
		return err
	}
	output.PrettySimulation(out, report.Simulation)
	return nil
}
