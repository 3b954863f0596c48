package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calligan/stepwise/internal/sim"
)

const scenarioYAML = `
name: cli-demo
timestep: 250ms
ticks: 3
ramp:
  start: 0.0
  slope: 2.0
gain:
  gain: 0.5
bias:
  offset: 1.0
playback:
  - at: 0s
    value: 0.25
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o644))
	return path
}

func TestRun_CSVToStdout(t *testing.T) {
	out, err := execute(t, "run", writeScenario(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus six signals per tick for three ticks.
	require.Len(t, lines, 1+3*6)
	assert.Equal(t, "tick,time_s,signal,value", lines[0])
	assert.Contains(t, out, "0,0,ramp,0")
}

func TestRun_RecordsToDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "traces.db")
	out, err := execute(t, "run", writeScenario(t), "--db", db)
	require.NoError(t, err)

	runID := strings.TrimSpace(out)
	require.NotEmpty(t, runID)

	store, err := sim.OpenStore(db)
	require.NoError(t, err)
	defer store.Close()

	samples, err := store.Samples(context.Background(), runID)
	require.NoError(t, err)
	assert.Len(t, samples, 3*6)
}

func TestRun_MissingScenarioFile(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestTrace_ListsAndDumps(t *testing.T) {
	db := filepath.Join(t.TempDir(), "traces.db")
	out, err := execute(t, "run", writeScenario(t), "--db", db)
	require.NoError(t, err)
	runID := strings.TrimSpace(out)

	listing, err := execute(t, "trace", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, listing, runID)
	assert.Contains(t, listing, "cli-demo")

	dump, err := execute(t, "trace", "--db", db, runID)
	require.NoError(t, err)
	assert.Contains(t, dump, "SIGNAL")
	assert.Contains(t, dump, "sum")
}

func TestTrace_UnknownRun(t *testing.T) {
	db := filepath.Join(t.TempDir(), "traces.db")
	store, err := sim.OpenStore(db)
	require.NoError(t, err)
	store.Close()

	_, err = execute(t, "trace", "--db", db, "does-not-exist")
	require.Error(t, err)
}
