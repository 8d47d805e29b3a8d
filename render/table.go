package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cyclostat/cyclostat/dataset"
)

// ============================================================================
// TABLE — Aligned Plain-Text Tables
// ============================================================================
// Raw trip rows and count breakdowns render through one table model:
// columns with alignment, string rows, and a width pass before printing.
// ============================================================================

// Column defines a table column.
type Column struct {
	Label string
	Align string // "left" or "right"
}

// Table is a render-ready grid of rows.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
}

// Write prints the table to w with a header row, a separator, and
// per-column alignment.
func (t Table) Write(w io.Writer) {
	if len(t.Columns) == 0 {
		return
	}

	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		widths[i] = len(c.Label)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if t.Title != "" {
		fmt.Fprintln(w, t.Title)
	}

	header := make([]string, len(t.Columns))
	seps := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = pad(c.Label, widths[i], c.Align)
		seps[i] = strings.Repeat("-", widths[i])
	}
	fmt.Fprintln(w, strings.Join(header, "  "))
	fmt.Fprintln(w, strings.Join(seps, "  "))

	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, widths[i], t.Columns[i].Align)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

func pad(s string, width int, align string) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if align == "right" {
		return fill + s
	}
	return s + fill
}

// ============================================================================
// TRIP TABLE — Raw rows as a table
// ============================================================================

const timeLayout = "2006-01-02 15:04:05"

// TripsTable converts a view of raw trips into a table. Demographic columns
// only appear when the dataset records them.
func TripsTable(v dataset.View, hasGender, hasBirthYear bool) Table {
	cols := []Column{
		{Label: "Start Time"},
		{Label: "End Time"},
		{Label: "Duration", Align: "right"},
		{Label: "Start Station"},
		{Label: "End Station"},
		{Label: "User Type"},
	}
	if hasGender {
		cols = append(cols, Column{Label: "Gender"})
	}
	if hasBirthYear {
		cols = append(cols, Column{Label: "Birth Year", Align: "right"})
	}

	rows := make([][]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		t := v.At(i)
		row := []string{
			t.StartTime.Format(timeLayout),
			formatTime(t),
			strconv.FormatFloat(t.Duration, 'f', 0, 64),
			t.StartStation,
			t.EndStation,
			t.UserType,
		}
		if hasGender {
			row = append(row, t.Gender)
		}
		if hasBirthYear {
			year := ""
			if t.BirthYear != 0 {
				year = strconv.Itoa(t.BirthYear)
			}
			row = append(row, year)
		}
		rows = append(rows, row)
	}

	return Table{Columns: cols, Rows: rows}
}

func formatTime(t dataset.Trip) string {
	if t.EndTime.IsZero() {
		return ""
	}
	return t.EndTime.Format(timeLayout)
}
