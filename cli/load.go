package cli

import (
	"log/slog"

	"github.com/cyclostat/cyclostat/config"
	"github.com/cyclostat/cyclostat/dataset"
)

// loadFiltered is the shared load-and-filter step for the one-shot
// commands: resolve the city file, load it, and apply the month/day filter.
func loadFiltered(cfg *config.Config, city, monthName, dayName string) (dataset.View, dataset.Filter, dataset.LoadReport, error) {
	var zero dataset.View

	month, err := dataset.ParseMonth(monthName)
	if err != nil {
		return zero, dataset.Filter{}, dataset.LoadReport{}, err
	}
	day, err := dataset.ParseWeekday(dayName)
	if err != nil {
		return zero, dataset.Filter{}, dataset.LoadReport{}, err
	}

	path, err := cfg.CityFile(city)
	if err != nil {
		return zero, dataset.Filter{}, dataset.LoadReport{}, err
	}

	trips, report, err := dataset.LoadFile(path)
	if err != nil {
		return zero, dataset.Filter{}, dataset.LoadReport{}, err
	}

	filter := dataset.Filter{Month: month, Weekday: day}
	view := dataset.NewView(trips).Filter(filter)

	slog.Debug("loaded trips",
		"city", city, "path", path, "filter", filter.Label(),
		"rows", report.Rows, "dropped", report.Dropped, "trips", view.Len())

	return view, filter, report, nil
}
