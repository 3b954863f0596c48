package sim

import (
	"github.com/rs/zerolog"

	"github.com/calligan/stepwise/block"
	"github.com/calligan/stepwise/blocks"
	"github.com/calligan/stepwise/signal"
)

// Model is the demo block graph, wired the way generated code would
// wire it:
//
//	ramp -> gain -> bias --+
//	                       +--> sum -> trace
//	playback (value) ------+
//
// plus trace taps on every intermediate signal and on the playback
// stale flag. All kinds are float64 here, so every promotion in the
// graph is the reflexive case.
type Model struct {
	rampParams blocks.RampParams[float64]
	gainParams blocks.GainParams[float64]
	biasParams blocks.BiasParams[float64]
	playParams PlaybackParams
	sumParams  blocks.SumParams

	ramp     blocks.Ramp[float64]
	gain     *blocks.Gain[float64, float64, float64, float64]
	bias     *blocks.Bias[float64, float64, float64, float64]
	playback *Playback
	sum      *blocks.Sum[float64, float64, float64]

	taps []tap
}

// tap couples one Trace output block with its parameters.
type tap struct {
	params TraceParams
	blk    *Trace
}

// NewModel wires the demo graph from a scenario. Every block's output
// storage is allocated here; ticking the model allocates nothing.
func NewModel(sc *Scenario, sink TraceSink, log zerolog.Logger) *Model {
	m := &Model{
		rampParams: blocks.RampParams[float64]{Start: sc.Ramp.Start, Slope: sc.Ramp.Slope},
		gainParams: blocks.GainParams[float64]{Gain: sc.Gain.Gain},
		biasParams: blocks.BiasParams[float64]{Offset: sc.Bias.Offset},
		playParams: PlaybackParams{Samples: sc.Playback},

		gain:     blocks.NewScalarGain[float64, float64, float64](),
		bias:     blocks.NewScalarBias[float64, float64, float64](),
		playback: NewPlayback(),
		sum:      blocks.NewSum[float64, float64, float64](),
	}
	for _, name := range []string{"ramp", "gain", "bias", "playback", "playback_stale", "sum"} {
		m.taps = append(m.taps, tap{
			params: TraceParams{Signal: name},
			blk:    NewTrace(sink, log),
		})
	}
	return m
}

// Step executes one tick of the graph: every block exactly once, in
// graph order, all observing the same timing snapshot.
func (m *Model) Step(ctx block.Context) {
	ramp := m.ramp.Generate(&m.rampParams, ctx)
	gain := m.gain.Process(&m.gainParams, ctx, ramp)
	bias := m.bias.Process(&m.biasParams, ctx, gain)
	play := m.playback.Input(&m.playParams, ctx)
	sum := m.sum.Process(&m.sumParams, ctx, signal.PairOf(bias, play.A))

	stale := 0.0
	if play.B {
		stale = 1.0
	}
	for i := range m.taps {
		t := &m.taps[i]
		var v float64
		switch t.params.Signal {
		case "ramp":
			v = ramp
		case "gain":
			v = gain
		case "bias":
			v = bias
		case "playback":
			v = play.A
		case "playback_stale":
			v = stale
		case "sum":
			v = sum
		}
		t.blk.Output(&t.params, ctx, v)
	}
}
