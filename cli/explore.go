package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cyclostat/cyclostat/config"
	"github.com/cyclostat/cyclostat/dataset"
	"github.com/cyclostat/cyclostat/render"
	"github.com/cyclostat/cyclostat/stats"
)

func newExploreCmd(opts *rootOptions, in io.Reader, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Interactive prompt loop over a city trip log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			return runExplore(cfg, in, out)
		},
	}
}

// runExplore drives the interactive session: prompt → load → filter →
// report → raw rows → restart. It only returns an error for real failures;
// EOF and a "no" restart answer end the session cleanly.
func runExplore(cfg *config.Config, in io.Reader, out io.Writer) error {
	p := NewPrompter(in, out)

	for {
		log := slog.With("session", uuid.NewString())

		err := runSession(cfg, p, out, log)
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		again, err := p.YesNo("Would you like to restart? Enter yes or no: ")
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(out, "\nThank you for using cyclostat!")
			return nil
		}
	}
}

// runSession performs one full prompt/analyze round.
func runSession(cfg *config.Config, p *Prompter, out io.Writer, log *slog.Logger) error {
	render.Banner(out, "Welcome to US Bikeshare Data Analysis!")

	city, month, day, err := promptFilters(cfg, p)
	if err != nil {
		return err
	}

	dropOutliers, err := p.YesNo("\nRemove outliers from trip duration? (yes/no): ")
	if err != nil {
		return err
	}

	path, err := cfg.CityFile(city)
	if err != nil {
		// City names were validated by the prompt; a miss here means the
		// registry changed underneath us.
		return err
	}

	fmt.Fprintf(out, "\nLoading data for %s...\n", city)
	trips, loadReport, err := dataset.LoadFile(path)
	if err != nil {
		log.Warn("load failed", "path", path, "error", err)
		fmt.Fprintf(out, "Failed to load data: %v\nPlease try again.\n", err)
		return nil
	}
	if loadReport.Dropped > 0 {
		fmt.Fprintf(out, "  Warning: dropped %s rows with invalid start times.\n", stats.FormatInt(loadReport.Dropped))
	}

	filter := dataset.Filter{Month: month, Weekday: day}
	view := dataset.NewView(trips).Filter(filter)

	if dropOutliers {
		fmt.Fprintln(out, "\nRemoving outliers from trip duration...")
		var removed int
		view, removed = stats.RemoveOutliers(view, stats.OutlierIQR)
		if removed > 0 {
			fmt.Fprintf(out, "  Removed %s outliers.\n", stats.FormatInt(removed))
		}
	}

	log.Debug("session filters",
		"city", city, "filter", filter.Label(),
		"loaded", loadReport.Rows, "dropped", loadReport.Dropped,
		"trips", view.Len())

	fmt.Fprintf(out, "Data loaded: %s trips found (%s)\n", stats.FormatInt(view.Len()), filter.Label())

	if view.Len() == 0 {
		fmt.Fprintln(out, "\nNo data available for the selected filters.")
		fmt.Fprintln(out, "Please try different filter options.")
		return nil
	}

	report := stats.Describe(view)
	report.City = city
	report.Filter = filter.Label()
	render.WriteReport(out, report)

	return showRawData(p, out, view, loadReport, cfg.PageSize)
}

// promptFilters asks for city, month, and weekday, re-prompting until valid.
func promptFilters(cfg *config.Config, p *Prompter) (city string, month time.Month, day *time.Weekday, err error) {
	cities := cfg.CityNames()
	city, err = p.Choice(
		fmt.Sprintf("\nEnter city (%s): ", strings.Join(cities, ", ")),
		cities,
		fmt.Sprintf("Invalid city. Please choose from: %s.", strings.Join(cities, ", ")),
	)
	if err != nil {
		return "", 0, nil, err
	}

	months := append(dataset.MonthNames(), "all")
	monthName, err := p.Choice(
		"\nEnter month (January to June) or 'all' for no filter: ",
		months,
		"Invalid month. Please enter a month from January to June, or 'all'.",
	)
	if err != nil {
		return "", 0, nil, err
	}
	month, _ = dataset.ParseMonth(monthName)

	days := append(dataset.WeekdayNames(), "all")
	dayName, err := p.Choice(
		"\nEnter day of week (Monday-Sunday) or 'all' for no filter: ",
		days,
		"Invalid day. Please enter a day of the week, or 'all'.",
	)
	if err != nil {
		return "", 0, nil, err
	}
	day, _ = dataset.ParseWeekday(dayName)

	return city, month, day, nil
}

// showRawData pages raw rows, a fixed page per confirmation, until the view
// is exhausted or the user stops.
func showRawData(p *Prompter, out io.Writer, view dataset.View, loadReport dataset.LoadReport, pageSize int) error {
	if view.Len() == 0 {
		return nil
	}

	more, err := p.YesNo(fmt.Sprintf("\nWould you like to see %d rows of raw data? Enter yes or no: ", pageSize))
	if err != nil {
		return err
	}

	pager := dataset.NewPager(view, pageSize)
	for more {
		page := pager.Next()
		fmt.Fprintln(out)
		render.TripsTable(page, loadReport.HasGender, loadReport.HasBirthYear).Write(out)

		if !pager.HasMore() {
			fmt.Fprintln(out, "\nNo more data to display.")
			return nil
		}

		more, err = p.YesNo(fmt.Sprintf("\nWould you like to see %d more rows? Enter yes or no: ", pageSize))
		if err != nil {
			return err
		}
	}
	return nil
}
