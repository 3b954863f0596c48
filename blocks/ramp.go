package blocks

import (
	"github.com/calligan/stepwise/block"
	"github.com/calligan/stepwise/signal"
)

// RampParams describes the generated ramp:
//
//	out = Start + Slope*t
//
// with t the elapsed time in seconds.
type RampParams[T signal.Float] struct {
	Start T
	Slope T
}

// Ramp generates a linear ramp as a pure function of elapsed time.
type Ramp[T signal.Float] struct{}

// Generate evaluates the ramp at the current elapsed time.
func (Ramp[T]) Generate(params *RampParams[T], ctx block.Context) T {
	return params.Start + params.Slope*T(ctx.Time().Seconds())
}

var _ block.Generator[float32, RampParams[float32]] = Ramp[float32]{}
