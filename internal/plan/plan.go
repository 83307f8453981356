// Package plan evaluates a food-truck plan configuration into a report:
// deterministic financials, scenario comparison, staffing, roadmap, cash
// projection, menu analysis, Monte Carlo distribution and recommendations.
package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/foodtruck-forecast/internal/config"
	"github.com/iwvelando/foodtruck-forecast/internal/forecast"
	"github.com/iwvelando/foodtruck-forecast/pkg/finance"
	"github.com/iwvelando/foodtruck-forecast/pkg/menu"
	"github.com/iwvelando/foodtruck-forecast/pkg/montecarlo"
	"github.com/iwvelando/foodtruck-forecast/pkg/roadmap"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options adjusts a single evaluation. Zero values defer to the
// configuration's simulation settings.
type Options struct {
	SkipSimulation bool
	Samples        int
	Seed           *int64
	Workers        int
}

// Staffing is the crew cost compared with its OPEX budget line.
type Staffing struct {
	Plan        finance.StaffingPlan `json:"plan"`
	MonthlyCost float64              `json:"monthlyCost"`
	BudgetItem  string               `json:"budgetItem"`
	Budget      float64              `json:"budget"`
	Budgeted    bool                 `json:"budgeted"`
}

// Menu is the dish margin analysis and the combo price position.
type Menu struct {
	Items                  []menu.ItemMargin  `json:"items"`
	AverageFoodCostPercent float64            `json:"averageFoodCostPercent"`
	PricePosition          menu.PricePosition `json:"pricePosition"`
}

// Simulation is the Monte Carlo outcome for the selected scenario.
type Simulation struct {
	Summary    montecarlo.Summary  `json:"summary"`
	Histogram  []montecarlo.Bucket `json:"histogram"`
	Expected   float64             `json:"expectedNetRevenue"`
	Workers    int                 `json:"workers"`
	DurationMs int64               `json:"durationMs"`
}

// Report is the full evaluation of one configuration.
type Report struct {
	RunID           string                     `json:"runId"`
	Project         config.Project             `json:"project"`
	Scenario        finance.ScenarioName       `json:"scenario"`
	Parameters      finance.ScenarioParameters `json:"parameters"`
	Capex           []finance.CostLineItem     `json:"capex"`
	Opex            []finance.CostLineItem     `json:"opex"`
	CapexTotal      float64                    `json:"capexTotal"`
	OpexTotal       float64                    `json:"opexTotal"`
	Financials      finance.FinancialResult    `json:"financials"`
	Scenarios       []finance.ScenarioOutcome  `json:"scenarios"`
	Staffing        Staffing                   `json:"staffing"`
	Timeline        []roadmap.Period           `json:"timeline"`
	Forecast        forecast.Forecast          `json:"forecast"`
	Menu            Menu                       `json:"menu"`
	Simulation      *Simulation                `json:"simulation,omitempty"`
	Recommendations []string                   `json:"recommendations"`
	Warnings        []string                   `json:"warnings,omitempty"`
}

// Evaluate builds a Report from conf. Every input comes from conf and opts;
// a selected scenario missing from the demand table is an error.
func Evaluate(logger *zap.Logger, conf config.Configuration, opts Options) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	conf.ApplyDefaults()
	warnings := conf.ValidateConfiguration()
	for _, w := range warnings {
		logger.Warn(w, zap.String("op", "plan.Evaluate"))
	}

	params, err := conf.ScenarioParameters()
	if err != nil {
		return nil, fmt.Errorf("selecting scenario: %w", err)
	}
	capexTotal := conf.CapexTotal()

	report := &Report{
		RunID:      runID,
		Project:    conf.Project,
		Scenario:   conf.SelectedScenario(),
		Parameters: params,
		Capex:      conf.Capex,
		Opex:       conf.Opex,
		CapexTotal: capexTotal,
		OpexTotal:  params.BaseMonthlyOpex,
		Financials: finance.ComputeMonthlyFinancials(params, capexTotal),
		Scenarios:  finance.CompareScenarios(conf.DemandTable(), params, capexTotal),
		Warnings:   warnings,
	}

	report.Staffing = staffing(conf)

	report.Timeline, err = roadmap.Timeline(conf.Stages, conf.Project.StartDate)
	if err != nil {
		return nil, fmt.Errorf("building roadmap: %w", err)
	}

	// The projection and the simulation fill separate report fields.
	var g errgroup.Group
	g.Go(func() error {
		projection, err := forecast.GetForecast(logger, string(report.Scenario), params, capexTotal, report.Timeline, conf.Project.StartDate)
		if err != nil {
			return fmt.Errorf("projecting cash balance: %w", err)
		}
		report.Forecast = projection
		return nil
	})
	if !opts.SkipSimulation {
		g.Go(func() error {
			simulation, err := simulate(logger, conf.Simulation, opts, params)
			if err != nil {
				return err
			}
			report.Simulation = simulation
			return nil
		})
	}

	report.Menu.Items = menu.Analyze(conf.Menu)
	report.Menu.AverageFoodCostPercent, _ = menu.AverageFoodCostPercent(report.Menu.Items)
	report.Menu.PricePosition = menu.ComparePrice(params.PricePerCombo, conf.Competitors)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Recommendations = Recommend(report)

	logger.Info("plan evaluated",
		zap.String("op", "plan.Evaluate"),
		zap.String("scenario", string(report.Scenario)),
		zap.Float64("monthly_profit", report.Financials.MonthlyProfit),
		zap.Bool("breakeven_reachable", report.Financials.Breakeven.Reachable()),
		zap.Int("warnings", len(warnings)),
	)

	return report, nil
}

func staffing(conf config.Configuration) Staffing {
	plan := conf.StaffingPlan()
	budget, ok := conf.StaffBudget()
	return Staffing{
		Plan:        plan,
		MonthlyCost: plan.MonthlyCost(),
		BudgetItem:  conf.Staffing.OpexItem,
		Budget:      budget,
		Budgeted:    ok,
	}
}

func simulate(logger *zap.Logger, settings config.Simulation, opts Options, params finance.ScenarioParameters) (*Simulation, error) {
	simOpts := montecarlo.Options{
		Samples: settings.Samples,
		Seed:    settings.Seed,
		Workers: settings.Workers,
	}
	if opts.Samples > 0 {
		simOpts.Samples = opts.Samples
	}
	if opts.Seed != nil {
		simOpts.Seed = opts.Seed
	}
	if opts.Workers > 0 {
		simOpts.Workers = opts.Workers
	}

	start := time.Now()
	simulator := montecarlo.NewSimulator(logger.Named("montecarlo"), simOpts)
	result := simulator.Simulate(params)

	summary, err := montecarlo.Summarize(result, settings.Percentiles)
	if err != nil {
		return nil, fmt.Errorf("summarizing simulation: %w", err)
	}

	workers := simOpts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Simulation{
		Summary:    summary,
		Histogram:  montecarlo.Histogram(result, settings.Buckets),
		Expected:   montecarlo.ExpectedNetRevenue(params),
		Workers:    workers,
		DurationMs: time.Since(start).Milliseconds(),
	}, nil
}
