package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclostat/cyclostat/stats"
)

// runCommand executes the command tree with scripted args against a fixture
// data directory.
func runCommand(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(strings.NewReader(""), &out)
	root.SetArgs(append(args, "--data-dir", dataDir))
	err := root.Execute()
	return out.String(), err
}

func TestStatsCommandText(t *testing.T) {
	cfg := writeFixture(t)

	out, err := runCommand(t, cfg.DataDir, "stats", "--city", "chicago", "--month", "june")
	require.NoError(t, err)

	assert.Contains(t, out, "Most Common Month: June (8 trips)")
	assert.Contains(t, out, "Most Common Start Station: Canal St (8 trips)")
	assert.Contains(t, out, "User Type Distribution:")
}

func TestStatsCommandJSON(t *testing.T) {
	cfg := writeFixture(t)

	out, err := runCommand(t, cfg.DataDir, "stats", "--city", "chicago", "--day", "monday", "--format", "json")
	require.NoError(t, err)

	var report stats.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "chicago", report.City)
	assert.Equal(t, "Mondays", report.Filter)
	assert.Equal(t, 8, report.Trips)
	assert.Equal(t, "Canal St", report.Stations.TopStart)
}

func TestStatsCommandUnknownCity(t *testing.T) {
	cfg := writeFixture(t)

	_, err := runCommand(t, cfg.DataDir, "stats", "--city", "atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown city")
}

func TestStatsCommandBadMonth(t *testing.T) {
	cfg := writeFixture(t)

	_, err := runCommand(t, cfg.DataDir, "stats", "--city", "chicago", "--month", "july")
	require.Error(t, err)
}

func TestRawCommandLimit(t *testing.T) {
	cfg := writeFixture(t)

	out, err := runCommand(t, cfg.DataDir, "raw", "--city", "chicago", "--limit", "3")
	require.NoError(t, err)

	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "2017-") {
			rows++
		}
	}
	assert.Equal(t, 3, rows)
	assert.Contains(t, out, "3 of 9 trips (all trips)")
}

func TestRawCommandOffsetPastEnd(t *testing.T) {
	cfg := writeFixture(t)

	out, err := runCommand(t, cfg.DataDir, "raw", "--city", "chicago", "--offset", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "0 of 9 trips")
}

func TestDescribeCommand(t *testing.T) {
	cfg := writeFixture(t)

	out, err := runCommand(t, cfg.DataDir, "describe", "--city", "chicago")
	require.NoError(t, err)

	assert.Contains(t, out, "Dataset Summary: chicago")
	assert.Contains(t, out, "Trips: 9")
	assert.Contains(t, out, "Gender Recorded: yes")
}

func TestDescribeCommandJSON(t *testing.T) {
	cfg := writeFixture(t)

	out, err := runCommand(t, cfg.DataDir, "describe", "--city", "chicago", "--format", "json")
	require.NoError(t, err)

	var summary stats.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, 9, summary.Trips)
	assert.True(t, summary.HasBirthYear)
}
