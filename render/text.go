package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/cyclostat/cyclostat/stats"
)

// ============================================================================
// TEXT REPORT — The Classic Sectioned Statistics Output
// ============================================================================

const ruleWidth = 50

// Banner prints a title between full-width "=" rules.
func Banner(w io.Writer, title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
}

func sectionHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	Banner(w, title)
}

func sectionFooter(w io.Writer, elapsed float64) {
	fmt.Fprintf(w, "\nThis took %.4f seconds.\n", elapsed)
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
}

// WriteReport prints every statistics section of a report.
func WriteReport(w io.Writer, r stats.Report) {
	WriteTimes(w, r.Times)
	WriteStations(w, r.Stations)
	WriteDurations(w, r.Durations)
	WriteUsers(w, r.Users)
}

// WriteTimes prints the most frequent times of travel.
func WriteTimes(w io.Writer, ts stats.TimeStats) {
	sectionHeader(w, "Calculating The Most Frequent Times of Travel...")
	if ts.Trips == 0 {
		fmt.Fprintln(w, "No data available for time statistics.")
		sectionFooter(w, ts.Elapsed.Seconds())
		return
	}

	fmt.Fprintf(w, "Most Common Month: %s (%s trips)\n", ts.CommonMonth, stats.FormatInt(ts.CommonMonthCount))
	fmt.Fprintf(w, "Most Common Day: %s (%s trips)\n", ts.CommonWeekday, stats.FormatInt(ts.CommonWeekdayCount))
	fmt.Fprintf(w, "Most Common Start Hour: %s\n", stats.FormatHour(ts.CommonHour))
	sectionFooter(w, ts.Elapsed.Seconds())
}

// WriteStations prints the most popular stations and route.
func WriteStations(w io.Writer, ss stats.StationStats) {
	sectionHeader(w, "Calculating The Most Popular Stations and Trip...")
	if ss.Trips == 0 {
		fmt.Fprintln(w, "No data available for station statistics.")
		sectionFooter(w, ss.Elapsed.Seconds())
		return
	}

	if ss.TopStart != "" {
		fmt.Fprintf(w, "Most Common Start Station: %s (%s trips)\n", ss.TopStart, stats.FormatInt(ss.TopStartCount))
	} else {
		fmt.Fprintln(w, "No start station data available.")
	}
	if ss.TopEnd != "" {
		fmt.Fprintf(w, "Most Common End Station: %s (%s trips)\n", ss.TopEnd, stats.FormatInt(ss.TopEndCount))
	} else {
		fmt.Fprintln(w, "No end station data available.")
	}
	if ss.TopRoute != "" {
		fmt.Fprintf(w, "Most Common Trip: %s (%s trips)\n", ss.TopRoute, stats.FormatInt(ss.TopRouteCount))
	} else {
		fmt.Fprintln(w, "No trip combination data available.")
	}
	sectionFooter(w, ss.Elapsed.Seconds())
}

// WriteDurations prints total and average trip duration.
func WriteDurations(w io.Writer, ds stats.DurationStats) {
	sectionHeader(w, "Calculating Trip Duration Statistics...")
	if ds.Trips == 0 {
		fmt.Fprintln(w, "No data available for trip duration statistics.")
		sectionFooter(w, ds.Elapsed.Seconds())
		return
	}

	fmt.Fprintf(w, "Total Travel Time: %s\n", stats.HumanizeTotal(ds.TotalSeconds))
	fmt.Fprintf(w, "Total Travel Time (seconds): %s\n", stats.FormatSeconds(ds.TotalSeconds))
	fmt.Fprintf(w, "Average Trip Duration: %s\n", stats.HumanizeMean(ds.MeanSeconds))
	fmt.Fprintf(w, "Average Trip Duration (seconds): %.2f\n", ds.MeanSeconds)
	sectionFooter(w, ds.Elapsed.Seconds())
}

// WriteUsers prints rider type counts and demographics.
func WriteUsers(w io.Writer, us stats.UserStats) {
	sectionHeader(w, "Calculating User Statistics...")
	if us.Trips == 0 {
		fmt.Fprintln(w, "No data available for user statistics.")
		sectionFooter(w, us.Elapsed.Seconds())
		return
	}

	if len(us.ByType) > 0 {
		fmt.Fprintln(w, "User Type Distribution:")
		for _, row := range us.ByType {
			fmt.Fprintf(w, "  %s: %s\n", row.Label, stats.FormatInt(row.Count))
		}
	} else {
		fmt.Fprintln(w, "User Type data not available for this city.")
	}

	if us.HasGender {
		fmt.Fprintln(w, "\nGender Distribution:")
		for _, row := range us.ByGender {
			fmt.Fprintf(w, "  %s: %s\n", row.Label, stats.FormatInt(row.Count))
		}
	} else {
		fmt.Fprintln(w, "\nGender data not available for this city.")
	}

	if us.HasBirthYear {
		fmt.Fprintln(w, "\nBirth Year Statistics:")
		fmt.Fprintf(w, "  Earliest Birth Year: %d (Age: %d)\n", us.EarliestBirthYear, us.Age(us.EarliestBirthYear))
		fmt.Fprintf(w, "  Most Recent Birth Year: %d (Age: %d)\n", us.LatestBirthYear, us.Age(us.LatestBirthYear))
		fmt.Fprintf(w, "  Most Common Birth Year: %d (Age: %d)\n", us.CommonBirthYear, us.Age(us.CommonBirthYear))
	} else {
		fmt.Fprintln(w, "\nBirth year data not available for this city.")
	}
	sectionFooter(w, us.Elapsed.Seconds())
}

// WriteSummary prints the describe-command dataset overview.
func WriteSummary(w io.Writer, city string, s stats.Summary) {
	Banner(w, fmt.Sprintf("Dataset Summary: %s", city))
	fmt.Fprintf(w, "Trips: %s\n", stats.FormatInt(s.Trips))
	if s.Trips == 0 {
		return
	}
	fmt.Fprintf(w, "Date Range: %s to %s\n", s.FirstStart.Format(timeLayout), s.LastStart.Format(timeLayout))
	fmt.Fprintf(w, "Start Stations: %s\n", stats.FormatInt(s.StartStations))
	fmt.Fprintf(w, "End Stations: %s\n", stats.FormatInt(s.EndStations))
	fmt.Fprintf(w, "Gender Recorded: %s\n", yesNo(s.HasGender))
	fmt.Fprintf(w, "Birth Year Recorded: %s\n", yesNo(s.HasBirthYear))
	if len(s.UserTypes) > 0 {
		fmt.Fprintln(w, "User Types:")
		for _, row := range s.UserTypes {
			fmt.Fprintf(w, "  %s: %s\n", row.Label, stats.FormatInt(row.Count))
		}
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
