// Package montecarlo samples a food-truck plan's monthly outcome by drawing
// its inputs from independent normal distributions centred on the plan's
// point estimates.
package montecarlo

import (
	"math/rand"
	"sync"
	"time"

	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/iwvelando/foodtruck-forecast/pkg/finance"
	"go.uber.org/zap"
)

// Sample is one simulated month.
type Sample struct {
	// Revenue is the gross simulated revenue: orders x price x days x 4.
	Revenue float64 `json:"revenue"`
	// NetRevenue is the figure reported as "revenue" throughout the planner:
	// gross revenue net of food cost and base OPEX. CAPEX is not deducted.
	NetRevenue float64 `json:"netRevenue"`
}

// Profit returns the sample's monthly operating profit, which is the same
// quantity as NetRevenue under its accurate name.
func (s Sample) Profit() float64 {
	return s.NetRevenue
}

// Result is the draw-ordered output of one simulation run.
type Result struct {
	Samples []Sample `json:"samples"`
	Seed    int64    `json:"seed"`
}

// Len returns the number of samples.
func (r Result) Len() int {
	return len(r.Samples)
}

// Values returns NetRevenue for every sample in draw order.
func (r Result) Values() []float64 {
	values := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		values[i] = s.NetRevenue
	}
	return values
}

// GrossRevenues returns Revenue for every sample in draw order.
func (r Result) GrossRevenues() []float64 {
	values := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		values[i] = s.Revenue
	}
	return values
}

// Options configures a Simulator.
type Options struct {
	// Samples is the number of trials; values <= 0 use DefaultSampleCount.
	Samples int
	// Seed fixes the random source. Nil derives a seed from the clock; the
	// seed used is always reported in Result.Seed.
	Seed *int64
	// Workers splits the trials across goroutines when greater than 1.
	Workers int
}

// Simulator runs Monte Carlo simulations of a plan.
type Simulator struct {
	logger *zap.Logger
	opts   Options
}

// NewSimulator creates a simulator with the given logger and options.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewSimulator(logger *zap.Logger, opts Options) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Samples <= 0 {
		opts.Samples = constants.DefaultSampleCount
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Simulator{logger: logger, opts: opts}
}

// Simulate draws the configured number of trials around base.
func (s *Simulator) Simulate(base finance.ScenarioParameters) Result {
	seed := time.Now().UnixNano()
	if s.opts.Seed != nil {
		seed = *s.opts.Seed
	}

	start := time.Now()
	var samples []Sample
	if s.opts.Workers == 1 || s.opts.Samples < s.opts.Workers {
		samples = make([]Sample, s.opts.Samples)
		fill(samples, base, rand.New(rand.NewSource(seed)))
	} else {
		samples = s.simulateParallel(base, seed)
	}

	s.logger.Debug("simulation complete",
		zap.String("op", "montecarlo.Simulate"),
		zap.Int("samples", len(samples)),
		zap.Int("workers", s.opts.Workers),
		zap.Int64("seed", seed),
		zap.Duration("duration", time.Since(start)),
	)

	return Result{Samples: samples, Seed: seed}
}

// simulateParallel fills contiguous chunks of the sample slice concurrently.
// Chunk i draws from its own source seeded with seed+i, so a given seed,
// sample count and worker count always reproduce the same sequence.
func (s *Simulator) simulateParallel(base finance.ScenarioParameters, seed int64) []Sample {
	samples := make([]Sample, s.opts.Samples)
	workers := s.opts.Workers
	chunk := (len(samples) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(samples) {
			break
		}
		hi := lo + chunk
		if hi > len(samples) {
			hi = len(samples)
		}
		part := samples[lo:hi]
		rng := rand.New(rand.NewSource(seed + int64(w)))
		wg.Add(1)
		go func() {
			defer wg.Done()
			fill(part, base, rng)
		}()
	}
	wg.Wait()

	return samples
}

// Simulate draws sampleCount trials around base from rng. It is the
// single-threaded core used by Simulator.
func Simulate(base finance.ScenarioParameters, sampleCount int, rng *rand.Rand) Result {
	if sampleCount < 0 {
		sampleCount = 0
	}
	samples := make([]Sample, sampleCount)
	fill(samples, base, rng)
	return Result{Samples: samples}
}

func fill(samples []Sample, base finance.ScenarioParameters, rng *rand.Rand) {
	for i := range samples {
		samples[i] = draw(base, rng)
	}
}

// draw samples the five inputs in a fixed order: orders, price, OPEX, days,
// food cost.
func draw(base finance.ScenarioParameters, rng *rand.Rand) Sample {
	orders := normal(rng, base.OrdersPerDay, constants.OrdersSpread)
	price := normal(rng, base.PricePerCombo, constants.PriceSpread)
	opex := normal(rng, base.BaseMonthlyOpex, constants.OpexSpread)
	days := normal(rng, float64(base.OperatingDaysPerWeek), constants.DaysSpread)
	foodCost := normal(rng, base.FoodCostPercent, constants.FoodCostSpread) / constants.PercentageMultiplier

	revenue := finance.MonthlyRevenue(orders, price, days)
	return Sample{
		Revenue:    revenue,
		NetRevenue: revenue*(1-foodCost) - opex,
	}
}

// normal draws from N(mean, spread*mean). A non-positive mean has no spread
// and yields the mean itself. A variate is always consumed so every input
// keeps its position in the random stream.
func normal(rng *rand.Rand, mean, spread float64) float64 {
	z := rng.NormFloat64()
	if mean <= 0 {
		return mean
	}
	return mean + z*spread*mean
}

// ExpectedNetRevenue evaluates the per-trial formula with every input at its
// mean. The sample mean of NetRevenue converges to this value.
func ExpectedNetRevenue(base finance.ScenarioParameters) float64 {
	revenue := finance.MonthlyRevenue(base.OrdersPerDay, base.PricePerCombo, float64(base.OperatingDaysPerWeek))
	return revenue*(1-base.FoodCostPercent/constants.PercentageMultiplier) - base.BaseMonthlyOpex
}
