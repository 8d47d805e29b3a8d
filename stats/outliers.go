package stats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/cyclostat/cyclostat/dataset"
)

// ============================================================================
// OUTLIERS — Optional Trip-Duration Outlier Removal
// ============================================================================
// A handful of trips in the logs run for days (bikes checked out and never
// docked). Dropping them before duration analysis keeps the mean honest.
// Removal returns a sub-view — the loaded data is never mutated.
// ============================================================================

// OutlierMethod selects how duration outliers are detected.
type OutlierMethod string

const (
	// OutlierIQR drops durations outside the 1.5×IQR fences.
	OutlierIQR OutlierMethod = "iqr"
	// OutlierZScore drops durations with |z| > 3.
	OutlierZScore OutlierMethod = "zscore"
)

// ParseOutlierMethod validates a method name. Empty defaults to IQR.
func ParseOutlierMethod(s string) (OutlierMethod, error) {
	switch OutlierMethod(strings.ToLower(strings.TrimSpace(s))) {
	case "", OutlierIQR:
		return OutlierIQR, nil
	case OutlierZScore:
		return OutlierZScore, nil
	default:
		return "", fmt.Errorf("unknown outlier method %q: expected %q or %q", s, OutlierIQR, OutlierZScore)
	}
}

// RemoveOutliers returns the view without trip-duration outliers and how
// many trips were dropped. Degenerate inputs (fewer than 2 trips, zero
// spread) return the view unchanged.
func RemoveOutliers(v dataset.View, method OutlierMethod) (dataset.View, int) {
	if v.Len() < 2 {
		return v, 0
	}

	var keep func(dataset.Trip) bool
	switch method {
	case OutlierZScore:
		mean := MeanDuration(v)
		std := stddev(v, mean)
		if std == 0 {
			return v, 0
		}
		keep = func(t dataset.Trip) bool {
			return math.Abs((t.Duration-mean)/std) <= 3
		}
	default: // IQR
		vals := durations(v)
		sort.Float64s(vals)
		q1 := quantile(vals, 0.25)
		q3 := quantile(vals, 0.75)
		iqr := q3 - q1
		lo, hi := q1-1.5*iqr, q3+1.5*iqr
		keep = func(t dataset.Trip) bool {
			return t.Duration >= lo && t.Duration <= hi
		}
	}

	kept := v.Select(keep)
	return kept, v.Len() - kept.Len()
}

// stddev is the sample standard deviation of trip durations.
func stddev(v dataset.View, mean float64) float64 {
	n := v.Len()
	if n < 2 {
		return 0
	}
	var sumsq float64
	for i := 0; i < n; i++ {
		d := v.At(i).Duration - mean
		sumsq += d * d
	}
	return math.Sqrt(sumsq / float64(n-1))
}

// quantile computes the q-th quantile of sorted values with linear
// interpolation between ranks.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
