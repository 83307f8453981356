package montecarlo

import (
	"fmt"
	"math"
	"sort"

	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/montanaflynn/stats"
)

// PercentileValue pairs a percentile with its value.
type PercentileValue struct {
	Percentile float64 `json:"percentile"`
	Value      float64 `json:"value"`
}

// Summary holds descriptive statistics of a simulation run's NetRevenue.
type Summary struct {
	Runs            int               `json:"runs"`
	Seed            int64             `json:"seed"`
	Mean            float64           `json:"mean"`
	Median          float64           `json:"median"`
	StdDev          float64           `json:"stdDev"`
	Min             float64           `json:"min"`
	Max             float64           `json:"max"`
	Percentiles     []PercentileValue `json:"percentiles"`
	ProfitableShare float64           `json:"profitableShare"`
	MeanGross       float64           `json:"meanGrossRevenue"`
}

// Percentile looks up a percentile computed by Summarize.
func (s Summary) Percentile(p float64) (float64, bool) {
	for _, pv := range s.Percentiles {
		if pv.Percentile == p {
			return pv.Value, true
		}
	}
	return 0, false
}

// Summarize computes descriptive statistics and the requested percentiles.
// A nil or empty percentile list uses constants.DefaultPercentiles.
func Summarize(result Result, percentiles []float64) (Summary, error) {
	values := result.Values()
	if len(values) == 0 {
		return Summary{}, ErrNoSamples
	}
	if len(percentiles) == 0 {
		percentiles = constants.DefaultPercentiles
	}

	summary := Summary{Runs: len(values), Seed: result.Seed}

	var err error
	if summary.Mean, err = stats.Mean(values); err != nil {
		return Summary{}, fmt.Errorf("failed to compute mean: %w", err)
	}
	if summary.Median, err = stats.Median(values); err != nil {
		return Summary{}, fmt.Errorf("failed to compute median: %w", err)
	}
	if summary.Min, err = stats.Min(values); err != nil {
		return Summary{}, fmt.Errorf("failed to compute minimum: %w", err)
	}
	if summary.Max, err = stats.Max(values); err != nil {
		return Summary{}, fmt.Errorf("failed to compute maximum: %w", err)
	}
	if len(values) > 1 {
		if summary.StdDev, err = stats.StandardDeviationSample(values); err != nil {
			return Summary{}, fmt.Errorf("failed to compute standard deviation: %w", err)
		}
	}
	if summary.MeanGross, err = stats.Mean(result.GrossRevenues()); err != nil {
		return Summary{}, fmt.Errorf("failed to compute mean gross revenue: %w", err)
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	for _, p := range percentiles {
		if math.IsNaN(p) || p < 0 || p > 100 {
			return Summary{}, fmt.Errorf("percentile %v out of range [0, 100]", p)
		}
		summary.Percentiles = append(summary.Percentiles, PercentileValue{
			Percentile: p,
			Value:      percentileSorted(sorted, p),
		})
	}

	profitable := 0
	for _, v := range values {
		if v > 0 {
			profitable++
		}
	}
	summary.ProfitableShare = float64(profitable) / float64(len(values))

	return summary, nil
}
