package sim

import (
	"github.com/calligan/stepwise/block"
	"github.com/calligan/stepwise/signal"
)

// PlaybackParams holds the recorded samples, sorted by activation
// time.
type PlaybackParams struct {
	Samples []Sample
}

// Playback is the simulated Input block: it stands in for a sensor or
// bus driver by replaying recorded samples against elapsed time. Its
// output is a two-edge tuple of the value and a staleness flag.
//
// When no sample has become active since the previous tick, the block
// returns its most recently cached value with the stale flag set,
// preserving the one-output-per-tick contract instead of aborting the
// tick. Before the first sample activates, the cached value is zero.
type Playback struct {
	cached float64
	last   int
}

// NewPlayback builds a playback input with nothing consumed yet.
func NewPlayback() *Playback {
	return &Playback{last: -1}
}

// Input returns the active sample value and whether it is stale.
func (b *Playback) Input(params *PlaybackParams, ctx block.Context) signal.Pair[float64, bool] {
	idx := -1
	for i, s := range params.Samples {
		if s.At.Std() > ctx.Time() {
			break
		}
		idx = i
	}
	if idx < 0 || idx == b.last {
		return signal.PairOf(b.cached, true)
	}
	b.last = idx
	b.cached = params.Samples[idx].Value
	return signal.PairOf(b.cached, false)
}

var _ block.Input[signal.Pair[float64, bool], PlaybackParams] = (*Playback)(nil)
