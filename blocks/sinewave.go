package blocks

import (
	"math"

	"github.com/calligan/stepwise/block"
	"github.com/calligan/stepwise/signal"
)

// SinewaveParams describes the generated wave:
//
//	out = Amplitude * sin(Frequency*t + Phase) + Bias
//
// with t the elapsed time in seconds and Frequency in rad/s.
type SinewaveParams[T signal.Float] struct {
	Amplitude T
	Frequency T
	Phase     T
	Bias      T
}

// Sinewave generates a sine wave as a pure function of elapsed time.
// Because the output depends only on Context.Time, a delayed or
// skipped tick produces the value for the true tick time instead of
// accumulating drift.
type Sinewave[T signal.Float] struct{}

// Generate evaluates the wave at the current elapsed time.
func (Sinewave[T]) Generate(params *SinewaveParams[T], ctx block.Context) T {
	t := T(ctx.Time().Seconds())
	s := T(math.Sin(float64(params.Frequency*t + params.Phase)))
	return params.Amplitude*s + params.Bias
}

var _ block.Generator[float64, SinewaveParams[float64]] = Sinewave[float64]{}
