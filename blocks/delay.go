package blocks

import (
	"github.com/calligan/stepwise/block"
	"github.com/calligan/stepwise/signal"
)

// DelayParams holds the value emitted on the first tick, before any
// input has been observed.
type DelayParams[T signal.Scalar] struct {
	Initial T
}

// Delay emits the input it received on the previous tick. It is the
// canonical stateful block: its state is a single scalar, owned
// exclusively by the block instance and mutated only during its own
// tick slot.
type Delay[T signal.Scalar] struct {
	prev   T
	primed bool
}

// Process returns the previous tick's input and stores the current
// one.
func (b *Delay[T]) Process(params *DelayParams[T], _ block.Context, in T) T {
	out := b.prev
	if !b.primed {
		out = params.Initial
		b.primed = true
	}
	b.prev = in
	return out
}

var _ block.Process[float64, float64, DelayParams[float64]] = (*Delay[float64])(nil)
