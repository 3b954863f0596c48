package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoYAML = `
name: demo
timestep: 250ms
ticks: 4
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
  - at: 500ms
    value: 0.75
`

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(demoYAML))
	require.NoError(t, err)

	assert.Equal(t, "demo", sc.Name)
	assert.Equal(t, 250*time.Millisecond, sc.Timestep.Std())
	assert.Equal(t, 4, sc.Ticks)
	assert.Equal(t, 2.0, sc.Ramp.Slope)
	assert.Equal(t, 0.5, sc.Gain.Gain)
	assert.Equal(t, 1.0, sc.Bias.Offset)
	require.Len(t, sc.Playback, 2)
	assert.Equal(t, 500*time.Millisecond, sc.Playback[1].At.Std())
	assert.Equal(t, 0.75, sc.Playback[1].Value)
}

func TestParseScenario_BadDuration(t *testing.T) {
	_, err := ParseScenario([]byte("name: x\ntimestep: soon\nticks: 1\n"))
	assert.Error(t, err)
}

func TestScenario_Validate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Scenario)
	}{
		{"missing name", func(s *Scenario) { s.Name = "" }},
		{"zero timestep", func(s *Scenario) { s.Timestep = 0 }},
		{"zero ticks", func(s *Scenario) { s.Ticks = 0 }},
		{"unsorted playback", func(s *Scenario) {
			s.Playback = []Sample{
				{At: Duration(time.Second), Value: 1},
				{At: Duration(time.Millisecond), Value: 2},
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := ParseScenario([]byte(demoYAML))
			require.NoError(t, err)
			tc.mut(sc)
			assert.Error(t, sc.Validate())
		})
	}
}
