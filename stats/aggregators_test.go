package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cyclostat/cyclostat/dataset"
)

func TestCountByOrdering(t *testing.T) {
	trips := []dataset.Trip{
		{StartTime: time.Now(), UserType: "Customer"},
		{StartTime: time.Now(), UserType: "Subscriber"},
		{StartTime: time.Now(), UserType: "Subscriber"},
		{StartTime: time.Now(), UserType: "Dependent"},
	}
	rows := CountBy(dataset.NewView(trips), func(tr dataset.Trip) string { return tr.UserType })

	assert.Equal(t, []CountRow{
		{Label: "Subscriber", Count: 2},
		{Label: "Customer", Count: 1}, // tie with Dependent breaks alphabetically
		{Label: "Dependent", Count: 1},
	}, rows)
}

func TestModeEmptyView(t *testing.T) {
	_, _, ok := Mode(dataset.NewView(nil), func(tr dataset.Trip) string { return tr.UserType })
	assert.False(t, ok)
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{98081, "98,081"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatInt(tt.in))
	}
}

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "0:00 (12 AM)"},
		{9, "9:00 (9 AM)"},
		{12, "12:00 (12 PM)"},
		{17, "17:00 (5 PM)"},
		{23, "23:00 (11 PM)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHour(tt.hour))
	}
}

func TestHumanizeTotal(t *testing.T) {
	// 2 days, 3 hours, 15 minutes and change.
	secs := float64(2*86400 + 3*3600 + 15*60 + 42)
	assert.Equal(t, "2 days, 3 hours, 15 minutes", HumanizeTotal(secs))
	assert.Equal(t, "0 days, 0 hours, 0 minutes", HumanizeTotal(30))
}

func TestHumanizeMean(t *testing.T) {
	assert.Equal(t, "15 minutes, 36 seconds", HumanizeMean(936.24))
	assert.Equal(t, "0 minutes, 45 seconds", HumanizeMean(45))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "90,595", FormatSeconds(90595.2))
}
