package sim

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goldenScenario() *Scenario {
	return &Scenario{
		Name:     "golden",
		Timestep: Duration(250 * time.Millisecond),
		Ticks:    6,
		Ramp:     RampConfig{Start: 0.0, Slope: 2.0},
		Gain:     GainConfig{Gain: 0.5},
		Bias:     BiasConfig{Offset: 1.0},
		Playback: []Sample{
			{At: Duration(0), Value: 0.25},
			{At: Duration(500 * time.Millisecond), Value: 0.75},
		},
	}
}

func TestRun_GoldenTrace(t *testing.T) {
	sink := &MemorySink{}
	require.NoError(t, Run(goldenScenario(), sink, zerolog.Nop()))

	data, err := json.MarshalIndent(sink.Samples, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "golden_trace", append(data, '\n'))
}

func TestRun_Deterministic(t *testing.T) {
	first := &MemorySink{}
	second := &MemorySink{}
	require.NoError(t, Run(goldenScenario(), first, zerolog.Nop()))
	require.NoError(t, Run(goldenScenario(), second, zerolog.Nop()))
	assert.Equal(t, first.Samples, second.Samples)
}

func TestRun_AtomicTickTiming(t *testing.T) {
	// Every signal traced within one tick observes the identical
	// elapsed time.
	sink := &MemorySink{}
	sc := goldenScenario()
	require.NoError(t, Run(sc, sink, zerolog.Nop()))
	require.Len(t, sink.Samples, sc.Ticks*6)

	for tick := 0; tick < sc.Ticks; tick++ {
		base := sink.Samples[tick*6].Time
		for i := 1; i < 6; i++ {
			assert.Equal(t, base, sink.Samples[tick*6+i].Time,
				"tick %d signal %s", tick, sink.Samples[tick*6+i].Signal)
		}
	}
}

func TestRun_FirstTickAtTimeZero(t *testing.T) {
	sink := &MemorySink{}
	require.NoError(t, Run(goldenScenario(), sink, zerolog.Nop()))
	assert.Equal(t, time.Duration(0), sink.Samples[0].Time)
}

func TestRun_InvalidScenario(t *testing.T) {
	sc := goldenScenario()
	sc.Ticks = 0
	assert.Error(t, Run(sc, &MemorySink{}, zerolog.Nop()))
}
