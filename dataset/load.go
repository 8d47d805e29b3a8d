package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// LOADER — City CSV → []Trip
// ============================================================================
// Header-driven column mapping: columns are matched by normalized name, so
// the loader works for every city file regardless of column order or which
// optional columns (Gender, Birth Year) the city records. Rows whose start
// time does not parse are dropped and counted.
// ============================================================================

// ErrNoStartTime is returned when the CSV has no Start Time column at all.
var ErrNoStartTime = errors.New("dataset: start time column not found")

// ErrEmpty is returned when the CSV contains a header but no data rows.
var ErrEmpty = errors.New("dataset: no data rows")

// Start/end times in the trip logs look like "2017-01-01 00:00:36".
// A couple of fallbacks cover re-exported files.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// LoadReport describes what the loader saw in a file.
type LoadReport struct {
	Rows         int  // data rows read (before dropping)
	Dropped      int  // rows dropped for an unparseable start time
	HasGender    bool // city records rider gender
	HasBirthYear bool // city records rider birth year
}

// LoadFile reads and parses a city trip log from disk.
func LoadFile(path string) ([]Trip, LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a city trip log from a reader.
// The reader is consumed exactly once; the caller owns closing it.
func Load(r io.Reader) ([]Trip, LoadReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // city files vary in column count

	headers, err := reader.Read()
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("dataset: read header: %w", err)
	}

	cols := mapColumns(headers)
	if cols.startTime < 0 {
		return nil, LoadReport{}, ErrNoStartTime
	}

	report := LoadReport{
		HasGender:    cols.gender >= 0,
		HasBirthYear: cols.birthYear >= 0,
	}

	var trips []Trip
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row — skip, same as an unparseable start time.
			report.Rows++
			report.Dropped++
			continue
		}

		report.Rows++
		start, ok := parseTime(field(row, cols.startTime))
		if !ok {
			report.Dropped++
			continue
		}

		t := Trip{
			StartTime:    start,
			StartStation: field(row, cols.startStation),
			EndStation:   field(row, cols.endStation),
			UserType:     field(row, cols.userType),
			Gender:       field(row, cols.gender),
		}
		if end, ok := parseTime(field(row, cols.endTime)); ok {
			t.EndTime = end
		}
		t.Duration = parseNumber(field(row, cols.duration))
		t.BirthYear = int(parseNumber(field(row, cols.birthYear)))

		trips = append(trips, t)
	}

	if len(trips) == 0 && report.Rows == 0 {
		return nil, report, ErrEmpty
	}
	return trips, report, nil
}

// ============================================================================
// COLUMN MAPPING
// ============================================================================

type columns struct {
	startTime    int
	endTime      int
	duration     int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

// mapColumns resolves header names to column positions. Unknown columns
// (including the unnamed leading index column in the source exports) are
// ignored.
func mapColumns(headers []string) columns {
	cols := columns{
		startTime: -1, endTime: -1, duration: -1, startStation: -1,
		endStation: -1, userType: -1, gender: -1, birthYear: -1,
	}
	for i, h := range headers {
		switch toKey(h) {
		case "start_time":
			cols.startTime = i
		case "end_time":
			cols.endTime = i
		case "trip_duration", "duration":
			cols.duration = i
		case "start_station":
			cols.startStation = i
		case "end_station":
			cols.endStation = i
		case "user_type":
			cols.userType = i
		case "gender":
			cols.gender = i
		case "birth_year":
			cols.birthYear = i
		}
	}
	return cols
}

// toKey converts "Start Time" → "start_time".
func toKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseNumber reads a float-ish field ("2762", "2762.0"). Empty or
// malformed fields become 0 — absent demographics stay at the zero value.
func parseNumber(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
