package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclostat/cyclostat/dataset"
)

func TestTableWriteAlignment(t *testing.T) {
	table := Table{
		Columns: []Column{
			{Label: "Station"},
			{Label: "Trips", Align: "right"},
		},
		Rows: [][]string{
			{"Canal St & Taylor St", "98"},
			{"Lake St", "1,204"},
		},
	}

	var buf bytes.Buffer
	table.Write(&buf)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	// Widths: station column 20 ("Canal St & Taylor St"), trips column 5.
	require.Len(t, lines, 4)
	assert.Equal(t, "Station"+strings.Repeat(" ", 13)+"  Trips", lines[0])
	assert.Equal(t, strings.Repeat("-", 20)+"  "+strings.Repeat("-", 5), lines[1])
	assert.Equal(t, "Canal St & Taylor St"+"  "+"   98", lines[2])
	assert.Equal(t, "Lake St"+strings.Repeat(" ", 13)+"  "+"1,204", lines[3])
}

func TestTableWriteEmptyColumns(t *testing.T) {
	var buf bytes.Buffer
	Table{}.Write(&buf)
	assert.Empty(t, buf.String())
}

func TestTripsTableColumns(t *testing.T) {
	trips := []dataset.Trip{{
		StartTime:    time.Date(2017, time.June, 5, 17, 0, 0, 0, time.UTC),
		EndTime:      time.Date(2017, time.June, 5, 17, 10, 0, 0, time.UTC),
		Duration:     600,
		StartStation: "Canal St",
		EndStation:   "Lake St",
		UserType:     "Subscriber",
		Gender:       "Male",
		BirthYear:    1992,
	}}
	view := dataset.NewView(trips)

	full := TripsTable(view, true, true)
	require.Len(t, full.Columns, 8)
	require.Len(t, full.Rows, 1)
	assert.Equal(t, "2017-06-05 17:00:00", full.Rows[0][0])
	assert.Equal(t, "600", full.Rows[0][2])
	assert.Equal(t, "Male", full.Rows[0][6])
	assert.Equal(t, "1992", full.Rows[0][7])

	bare := TripsTable(view, false, false)
	assert.Len(t, bare.Columns, 6, "demographic columns only appear when recorded")
	assert.Len(t, bare.Rows[0], 6)
}

func TestTripsTableZeroBirthYear(t *testing.T) {
	trips := []dataset.Trip{{
		StartTime: time.Date(2017, time.June, 5, 17, 0, 0, 0, time.UTC),
		Duration:  600,
	}}
	table := TripsTable(dataset.NewView(trips), true, true)
	assert.Equal(t, "", table.Rows[0][7], "unknown birth year renders blank, not 0")
	assert.Equal(t, "", table.Rows[0][1], "zero end time renders blank")
}
