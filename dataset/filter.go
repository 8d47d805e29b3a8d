package dataset

import (
	"fmt"
	"strings"
	"time"
)

// ============================================================================
// FILTER — Month / Weekday Narrowing
// ============================================================================
// Constraints are AND-combined in a single pass. An unset constraint places
// no restriction. Filtering returns a sub-view — zero data copy.
// ============================================================================

// Months covered by the trip logs. The source files only contain the first
// half of the year.
const (
	FirstMonth = time.January
	LastMonth  = time.June
)

// Filter narrows a view by trip start time. The zero value matches
// everything.
type Filter struct {
	Month   time.Month    // 0 = all months
	Weekday *time.Weekday // nil = all days (time.Sunday is 0, so nil marks "unset")
}

// On is a convenience constructor for a weekday constraint.
func On(d time.Weekday) *time.Weekday { return &d }

// IsEmpty reports whether the filter places no restriction.
func (f Filter) IsEmpty() bool {
	return f.Month == 0 && f.Weekday == nil
}

// Label returns a human-readable description, e.g. "June, Mondays".
func (f Filter) Label() string {
	parts := []string{}
	if f.Month != 0 {
		parts = append(parts, f.Month.String())
	}
	if f.Weekday != nil {
		parts = append(parts, f.Weekday.String()+"s")
	}
	if len(parts) == 0 {
		return "all trips"
	}
	return strings.Join(parts, ", ")
}

// Filter returns the sub-view of trips matching all set constraints.
// An empty filter returns the view unchanged.
func (v View) Filter(f Filter) View {
	if f.IsEmpty() {
		return v
	}
	return v.Select(func(t Trip) bool {
		if f.Month != 0 && t.Month() != f.Month {
			return false
		}
		if f.Weekday != nil && t.Weekday() != *f.Weekday {
			return false
		}
		return true
	})
}

// ============================================================================
// NAME PARSING — shared by prompts and flags
// ============================================================================

// ParseMonth converts a month name to a filter month.
// Accepts "january" through "june" (the range the trip logs cover) and
// "all" (returns 0). Matching ignores case and surrounding whitespace.
func ParseMonth(s string) (time.Month, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "all" || name == "" {
		return 0, nil
	}
	for m := FirstMonth; m <= LastMonth; m++ {
		if name == strings.ToLower(m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown month %q: expected %s or \"all\"", s, monthChoices())
}

// ParseWeekday converts a day name to a filter weekday.
// Accepts full day names and "all" (returns nil).
func ParseWeekday(s string) (*time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "all" || name == "" {
		return nil, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if name == strings.ToLower(d.String()) {
			return On(d), nil
		}
	}
	return nil, fmt.Errorf("unknown day %q: expected a weekday name or \"all\"", s)
}

// MonthNames returns the lowercase names of the covered months.
func MonthNames() []string {
	names := make([]string, 0, int(LastMonth-FirstMonth)+1)
	for m := FirstMonth; m <= LastMonth; m++ {
		names = append(names, strings.ToLower(m.String()))
	}
	return names
}

// WeekdayNames returns the lowercase weekday names, Sunday first.
func WeekdayNames() []string {
	names := make([]string, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		names = append(names, strings.ToLower(d.String()))
	}
	return names
}

func monthChoices() string {
	names := MonthNames()
	return fmt.Sprintf("%q through %q", names[0], names[len(names)-1])
}
