package montecarlo

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrNoSamples is returned when statistics are requested from an empty run.
var ErrNoSamples = errors.New("simulation result has no samples")

// Percentile returns the p-th percentile (0..100) of the run's NetRevenue
// values using linear interpolation between closest ranks, the conventional
// default of statistical libraries.
func Percentile(result Result, p float64) (float64, error) {
	return PercentileOf(result.Values(), p)
}

// PercentileOf returns the p-th percentile of values without modifying them.
func PercentileOf(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoSamples
	}
	if math.IsNaN(p) || p < 0 || p > 100 {
		return 0, fmt.Errorf("percentile %v out of range [0, 100]", p)
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p), nil
}

func percentileSorted(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	return sorted[lower] + (sorted[upper]-sorted[lower])*(rank-float64(lower))
}
