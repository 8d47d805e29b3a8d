package stats

import (
	"time"

	"github.com/cyclostat/cyclostat/dataset"
)

// ============================================================================
// REPORT — Render-Ready Descriptive Statistics
// ============================================================================
// Each section function runs one aggregation pass over the view and records
// its own wall time, so renderers can report how long the computation took.
// Sections tolerate empty views and absent demographic columns — they mark
// themselves unavailable instead of failing.
// ============================================================================

// Report bundles every statistics section for a filtered view.
type Report struct {
	City      string        `json:"city"`
	Filter    string        `json:"filter"`
	Trips     int           `json:"trips"`
	Times     TimeStats     `json:"times"`
	Stations  StationStats  `json:"stations"`
	Durations DurationStats `json:"durations"`
	Users     UserStats     `json:"users"`
}

// Describe computes the full report for a view. Rider ages are derived
// against the current year.
func Describe(v dataset.View) Report {
	return DescribeAt(v, time.Now())
}

// DescribeAt computes the full report with an explicit reference time for
// age derivation.
func DescribeAt(v dataset.View, ref time.Time) Report {
	return Report{
		Trips:     v.Len(),
		Times:     TimesOfTravel(v),
		Stations:  Stations(v),
		Durations: Durations(v),
		Users:     Users(v, ref),
	}
}

// ============================================================================
// TIME STATS — most frequent times of travel
// ============================================================================

// TimeStats reports the most common month, weekday, and start hour.
type TimeStats struct {
	Trips              int           `json:"trips"`
	CommonMonth        time.Month    `json:"commonMonth,omitempty"`
	CommonMonthCount   int           `json:"commonMonthCount,omitempty"`
	CommonWeekday      time.Weekday  `json:"commonWeekday"`
	CommonWeekdayCount int           `json:"commonWeekdayCount,omitempty"`
	CommonHour         int           `json:"commonHour"`
	CommonHourCount    int           `json:"commonHourCount,omitempty"`
	Elapsed            time.Duration `json:"-"`
}

// TimesOfTravel computes the most frequent travel times for a view.
func TimesOfTravel(v dataset.View) TimeStats {
	start := time.Now()
	ts := TimeStats{Trips: v.Len()}

	months := make(map[time.Month]int)
	days := make(map[time.Weekday]int)
	hours := make(map[int]int)
	for i := 0; i < v.Len(); i++ {
		t := v.At(i)
		months[t.Month()]++
		days[t.Weekday()]++
		hours[t.StartHour()]++
	}

	ts.CommonMonth, ts.CommonMonthCount = modeOf(months)
	ts.CommonWeekday, ts.CommonWeekdayCount = modeOf(days)
	ts.CommonHour, ts.CommonHourCount = modeOf(hours)

	ts.Elapsed = time.Since(start)
	return ts
}

// ============================================================================
// STATION STATS — most popular stations and route
// ============================================================================

// StationStats reports the most popular start/end stations and route.
type StationStats struct {
	Trips         int           `json:"trips"`
	TopStart      string        `json:"topStart,omitempty"`
	TopStartCount int           `json:"topStartCount,omitempty"`
	TopEnd        string        `json:"topEnd,omitempty"`
	TopEndCount   int           `json:"topEndCount,omitempty"`
	TopRoute      string        `json:"topRoute,omitempty"`
	TopRouteCount int           `json:"topRouteCount,omitempty"`
	Elapsed       time.Duration `json:"-"`
}

// Stations computes the most popular stations and start→end route.
func Stations(v dataset.View) StationStats {
	start := time.Now()
	ss := StationStats{Trips: v.Len()}

	ss.TopStart, ss.TopStartCount, _ = Mode(v, func(t dataset.Trip) string { return t.StartStation })
	ss.TopEnd, ss.TopEndCount, _ = Mode(v, func(t dataset.Trip) string { return t.EndStation })
	ss.TopRoute, ss.TopRouteCount, _ = Mode(v, func(t dataset.Trip) string {
		if t.StartStation == "" || t.EndStation == "" {
			return ""
		}
		return t.Route()
	})

	ss.Elapsed = time.Since(start)
	return ss
}

// ============================================================================
// DURATION STATS — total and mean travel time
// ============================================================================

// DurationStats reports total and average trip duration in seconds.
type DurationStats struct {
	Trips        int           `json:"trips"`
	TotalSeconds float64       `json:"totalSeconds"`
	MeanSeconds  float64       `json:"meanSeconds"`
	Elapsed      time.Duration `json:"-"`
}

// Durations computes total and mean trip duration for a view.
func Durations(v dataset.View) DurationStats {
	start := time.Now()
	ds := DurationStats{Trips: v.Len()}
	ds.TotalSeconds = SumDuration(v)
	ds.MeanSeconds = MeanDuration(v)
	ds.Elapsed = time.Since(start)
	return ds
}

// ============================================================================
// USER STATS — rider types and demographics
// ============================================================================

// UserStats reports rider type counts and, where the city records them,
// gender counts and birth-year extremes.
type UserStats struct {
	Trips    int        `json:"trips"`
	ByType   []CountRow `json:"byType,omitempty"`
	ByGender []CountRow `json:"byGender,omitempty"`

	HasGender    bool `json:"hasGender"`
	HasBirthYear bool `json:"hasBirthYear"`

	EarliestBirthYear int `json:"earliestBirthYear,omitempty"`
	LatestBirthYear   int `json:"latestBirthYear,omitempty"`
	CommonBirthYear   int `json:"commonBirthYear,omitempty"`

	// RefYear anchors age derivation (current year in production).
	RefYear int `json:"refYear,omitempty"`

	Elapsed time.Duration `json:"-"`
}

// Users computes rider demographics for a view. Availability is derived from
// the data itself: a city that records no gender or birth year yields trips
// with empty values, and those sections are marked unavailable.
func Users(v dataset.View, ref time.Time) UserStats {
	start := time.Now()
	us := UserStats{Trips: v.Len(), RefYear: ref.Year()}

	us.ByType = CountBy(v, func(t dataset.Trip) string { return t.UserType })
	us.ByGender = CountBy(v, func(t dataset.Trip) string { return t.Gender })
	us.HasGender = len(us.ByGender) > 0

	years := make(map[int]int)
	for i := 0; i < v.Len(); i++ {
		year := v.At(i).BirthYear
		if year == 0 {
			continue
		}
		years[year]++
		if !us.HasBirthYear {
			us.HasBirthYear = true
			us.EarliestBirthYear = year
			us.LatestBirthYear = year
		}
		if year < us.EarliestBirthYear {
			us.EarliestBirthYear = year
		}
		if year > us.LatestBirthYear {
			us.LatestBirthYear = year
		}
	}
	if us.HasBirthYear {
		us.CommonBirthYear, _ = modeOf(years)
	}

	us.Elapsed = time.Since(start)
	return us
}

// Age converts a birth year to a rider age against the report's reference
// year.
func (us UserStats) Age(birthYear int) int {
	if birthYear == 0 {
		return 0
	}
	return us.RefYear - birthYear
}

// ============================================================================
// DATASET SUMMARY — for the describe command
// ============================================================================

// Summary is a structural overview of a loaded (unfiltered) dataset.
type Summary struct {
	Trips         int        `json:"trips"`
	FirstStart    time.Time  `json:"firstStart"`
	LastStart     time.Time  `json:"lastStart"`
	StartStations int        `json:"startStations"`
	EndStations   int        `json:"endStations"`
	UserTypes     []CountRow `json:"userTypes,omitempty"`
	HasGender     bool       `json:"hasGender"`
	HasBirthYear  bool       `json:"hasBirthYear"`
}

// Summarize builds a structural overview of a view.
func Summarize(v dataset.View) Summary {
	s := Summary{Trips: v.Len()}
	if v.Len() == 0 {
		return s
	}

	s.FirstStart = v.At(0).StartTime
	s.LastStart = v.At(0).StartTime
	startSeen := make(map[string]bool)
	endSeen := make(map[string]bool)

	for i := 0; i < v.Len(); i++ {
		t := v.At(i)
		if t.StartTime.Before(s.FirstStart) {
			s.FirstStart = t.StartTime
		}
		if t.StartTime.After(s.LastStart) {
			s.LastStart = t.StartTime
		}
		if t.StartStation != "" {
			startSeen[t.StartStation] = true
		}
		if t.EndStation != "" {
			endSeen[t.EndStation] = true
		}
		if t.Gender != "" {
			s.HasGender = true
		}
		if t.BirthYear != 0 {
			s.HasBirthYear = true
		}
	}

	s.StartStations = len(startSeen)
	s.EndStations = len(endSeen)
	s.UserTypes = CountBy(v, func(t dataset.Trip) string { return t.UserType })
	return s
}
