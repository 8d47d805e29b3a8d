// Package cyclostat is an interactive explorer for US bikeshare trip logs.
//
// It loads per-city CSV trip files (Chicago, New York City, Washington),
// filters trips by month and weekday, and prints descriptive statistics:
// popular travel times, popular stations, trip durations, and rider
// demographics.
//
// Usage:
//
//	import (
//	    "github.com/cyclostat/cyclostat/dataset"
//	    "github.com/cyclostat/cyclostat/stats"
//	)
//
//	trips, _, err := dataset.LoadFile("chicago.csv")
//	view := dataset.NewView(trips).Filter(dataset.Filter{Month: time.June})
//	report := stats.Describe(view)
//
// All computation is local and in-memory. The engine never calls any
// external service and never mutates the source files.
package cyclostat
