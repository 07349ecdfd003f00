// Package aggregate holds the numeric helpers behind the statistics
// endpoints. Helpers never panic on empty input; they report ErrNoData and
// let the caller decide how an undefined statistic surfaces.
package aggregate

import (
	"errors"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

var ErrNoData = errors.New("no data points")

// Mean returns the arithmetic mean of values, or ErrNoData for an empty
// slice.
func Mean(values []float64) (float64, error) {
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, ErrNoData
	}
	return mean, nil
}

// MeanInt is Mean over integer samples, as stored scores are integers.
func MeanInt(values []int) (float64, error) {
	converted := make([]float64, len(values))
	for i, v := range values {
		converted[i] = float64(v)
	}
	return Mean(converted)
}

// Percentile computes the p-th percentile of values using linear
// interpolation between the two closest order statistics. stats.Percentile
// uses the exclusive nearest-rank variant, which disagrees with the
// interpolated definition this API reports, so the interpolation is done
// here.
func Percentile(values []float64, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoData
	}
	if p < 0 || p > 100 {
		return 0, errors.New("percentile must be within [0, 100]")
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower], nil
	}

	fraction := rank - float64(lower)
	return sorted[lower] + fraction*(sorted[upper]-sorted[lower]), nil
}

// Round rounds half away from zero. Every integer the API reports goes
// through this one rule.
func Round(v float64) int {
	return int(math.Round(v))
}
