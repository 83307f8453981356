package montecarlo

import (
	"math"

	"github.com/iwvelando/foodtruck-forecast/pkg/constants"
	"github.com/iwvelando/foodtruck-forecast/pkg/mathutil"
)

// Bucket is one equal-width histogram bin over [Lower, Upper). The last
// bucket also includes its upper bound.
type Bucket struct {
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Histogram bins the run's NetRevenue values into equal-width buckets.
// buckets <= 0 uses DefaultHistogramBuckets. Non-finite values are skipped.
func Histogram(result Result, buckets int) []Bucket {
	if buckets <= 0 {
		buckets = constants.DefaultHistogramBuckets
	}

	var finite []float64
	for _, v := range result.Values() {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return nil
	}

	lo, hi := finite[0], finite[0]
	for _, v := range finite {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return []Bucket{{Lower: lo, Upper: hi, Count: len(finite), Percentage: 100}}
	}

	width := (hi - lo) / float64(buckets)
	out := make([]Bucket, buckets)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[buckets-1].Upper = hi

	for _, v := range finite {
		idx := int((v - lo) / width)
		if idx >= buckets {
			idx = buckets - 1
		}
		out[idx].Count++
	}
	for i := range out {
		out[i].Percentage = mathutil.CalculatePercentage(float64(out[i].Count), float64(len(finite)))
	}
	return out
}
