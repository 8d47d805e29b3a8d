package stats

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/cyclostat/cyclostat/dataset"
)

// ============================================================================
// AGGREGATORS — Counting, Mode, and Formatting over a View
// ============================================================================
// All functions read trips through dataset.View — zero-copy access to the
// loaded data. Grouping produces count tables; "most common X" is the mode
// of such a table.
// ============================================================================

// CountRow is one line of a count breakdown.
type CountRow struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CountBy tallies trips by a string key. Empty keys are ignored — absent
// demographic fields never show up as a phantom group.
func CountBy(v dataset.View, key func(dataset.Trip) string) []CountRow {
	counts := make(map[string]int)
	order := make([]string, 0)
	for i := 0; i < v.Len(); i++ {
		k := key(v.At(i))
		if k == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	rows := make([]CountRow, 0, len(order))
	for _, k := range order {
		rows = append(rows, CountRow{Label: k, Count: counts[k]})
	}
	// Highest count first; ties alphabetical so output is deterministic.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}

// Mode returns the most frequent key and its count. Ok is false when the
// view has no non-empty keys.
func Mode(v dataset.View, key func(dataset.Trip) string) (label string, count int, ok bool) {
	rows := CountBy(v, key)
	if len(rows) == 0 {
		return "", 0, false
	}
	return rows[0].Label, rows[0].Count, true
}

// modeOf picks the highest-count key from a tally. Ties break toward the
// smaller key so results are deterministic.
func modeOf[K cmp.Ordered](counts map[K]int) (K, int) {
	var best K
	bestCount := 0
	for k, c := range counts {
		if c > bestCount || (c == bestCount && k < best) {
			best = k
			bestCount = c
		}
	}
	return best, bestCount
}

// ============================================================================
// MEASURES
// ============================================================================

// SumDuration totals trip durations (seconds) across a view.
func SumDuration(v dataset.View) float64 {
	var total float64
	for i := 0; i < v.Len(); i++ {
		total += v.At(i).Duration
	}
	return total
}

// MeanDuration averages trip durations (seconds) across a view.
func MeanDuration(v dataset.View) float64 {
	if v.Len() == 0 {
		return 0
	}
	return SumDuration(v) / float64(v.Len())
}

// durations extracts the duration column as a slice for quantile math.
func durations(v dataset.View) []float64 {
	out := make([]float64, v.Len())
	for i := 0; i < v.Len(); i++ {
		out[i] = v.At(i).Duration
	}
	return out
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// FormatSeconds formats a second count with comma separators, dropping the
// fraction ("90,595.2" → "90,595").
func FormatSeconds(secs float64) string {
	return FormatInt(int(secs))
}

// HumanizeTotal renders a total duration as "N days, N hours, N minutes".
func HumanizeTotal(secs float64) string {
	total := int64(secs)
	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	return fmt.Sprintf("%d days, %d hours, %d minutes", days, hours, minutes)
}

// HumanizeMean renders an average duration as "N minutes, N seconds".
func HumanizeMean(secs float64) string {
	total := int64(secs)
	return fmt.Sprintf("%d minutes, %d seconds", total/60, total%60)
}

// FormatHour renders a 24h hour as "17:00 (5 PM)".
func FormatHour(hour int) string {
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d:00 (%d %s)", hour, h12, ampm)
}
