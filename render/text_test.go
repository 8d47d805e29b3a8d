package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cyclostat/cyclostat/stats"
)

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf, "Welcome!")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		strings.Repeat("=", 50),
		"Welcome!",
		strings.Repeat("=", 50),
	}, lines)
}

func TestWriteTimes(t *testing.T) {
	var buf bytes.Buffer
	WriteTimes(&buf, stats.TimeStats{
		Trips:              98081,
		CommonMonth:        time.June,
		CommonMonthCount:   98081,
		CommonWeekday:      time.Tuesday,
		CommonWeekdayCount: 17000,
		CommonHour:         17,
		CommonHourCount:    9000,
		Elapsed:            12 * time.Millisecond,
	})

	out := buf.String()
	assert.Contains(t, out, "Calculating The Most Frequent Times of Travel...")
	assert.Contains(t, out, "Most Common Month: June (98,081 trips)")
	assert.Contains(t, out, "Most Common Day: Tuesday (17,000 trips)")
	assert.Contains(t, out, "Most Common Start Hour: 17:00 (5 PM)")
	assert.Contains(t, out, "This took 0.0120 seconds.")
}

func TestWriteTimesEmpty(t *testing.T) {
	var buf bytes.Buffer
	WriteTimes(&buf, stats.TimeStats{})
	assert.Contains(t, buf.String(), "No data available for time statistics.")
}

func TestWriteDurations(t *testing.T) {
	var buf bytes.Buffer
	WriteDurations(&buf, stats.DurationStats{
		Trips:        100,
		TotalSeconds: 2*86400 + 3*3600 + 15*60,
		MeanSeconds:  936.24,
	})

	out := buf.String()
	assert.Contains(t, out, "Total Travel Time: 2 days, 3 hours, 15 minutes")
	assert.Contains(t, out, "Total Travel Time (seconds): 184,500")
	assert.Contains(t, out, "Average Trip Duration: 15 minutes, 36 seconds")
	assert.Contains(t, out, "Average Trip Duration (seconds): 936.24")
}

func TestWriteUsersWithDemographics(t *testing.T) {
	var buf bytes.Buffer
	WriteUsers(&buf, stats.UserStats{
		Trips: 3,
		ByType: []stats.CountRow{
			{Label: "Subscriber", Count: 2},
			{Label: "Customer", Count: 1},
		},
		ByGender: []stats.CountRow{
			{Label: "Male", Count: 2},
			{Label: "Female", Count: 1},
		},
		HasGender:         true,
		HasBirthYear:      true,
		EarliestBirthYear: 1955,
		LatestBirthYear:   2000,
		CommonBirthYear:   1992,
		RefYear:           2017,
	})

	out := buf.String()
	assert.Contains(t, out, "User Type Distribution:")
	assert.Contains(t, out, "  Subscriber: 2")
	assert.Contains(t, out, "Gender Distribution:")
	assert.Contains(t, out, "  Female: 1")
	assert.Contains(t, out, "Earliest Birth Year: 1955 (Age: 62)")
	assert.Contains(t, out, "Most Recent Birth Year: 2000 (Age: 17)")
	assert.Contains(t, out, "Most Common Birth Year: 1992 (Age: 25)")
}

func TestWriteUsersWithoutDemographics(t *testing.T) {
	var buf bytes.Buffer
	WriteUsers(&buf, stats.UserStats{
		Trips:  2,
		ByType: []stats.CountRow{{Label: "Registered", Count: 2}},
	})

	out := buf.String()
	assert.Contains(t, out, "Gender data not available for this city.")
	assert.Contains(t, out, "Birth year data not available for this city.")
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	WriteSummary(&buf, "chicago", stats.Summary{
		Trips:         300000,
		FirstStart:    time.Date(2017, time.January, 1, 0, 0, 36, 0, time.UTC),
		LastStart:     time.Date(2017, time.June, 30, 23, 59, 58, 0, time.UTC),
		StartStations: 568,
		EndStations:   572,
		UserTypes:     []stats.CountRow{{Label: "Subscriber", Count: 238889}},
		HasGender:     true,
		HasBirthYear:  true,
	})

	out := buf.String()
	assert.Contains(t, out, "Dataset Summary: chicago")
	assert.Contains(t, out, "Trips: 300,000")
	assert.Contains(t, out, "Date Range: 2017-01-01 00:00:36 to 2017-06-30 23:59:58")
	assert.Contains(t, out, "Start Stations: 568")
	assert.Contains(t, out, "Gender Recorded: yes")
	assert.Contains(t, out, "  Subscriber: 238,889")
}
