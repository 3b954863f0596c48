package blocks

import (
	"github.com/calligan/stepwise/block"
	"github.com/calligan/stepwise/signal"
)

// GainParams scales the signal by Gain. The gain's scalar kind may
// differ from the signal's; the block's output kind is their
// promotion.
type GainParams[G signal.Numeric] struct {
	Gain G
}

// NewGainParams builds GainParams.
func NewGainParams[G signal.Numeric](gain G) *GainParams[G] {
	return &GainParams[G]{Gain: gain}
}

// Gain multiplies its input by the gain parameter. One implementation
// covers all admissible edge kinds through the Applier indirection;
// the output store is allocated once at construction.
type Gain[In any, G signal.Numeric, Store, By any] struct {
	apply block.Applier[In, G, Store, By]
	store Store
}

// NewGain builds a Gain block around an applier for the wired edge
// kind.
func NewGain[In any, G signal.Numeric, Store, By any](apply block.Applier[In, G, Store, By]) *Gain[In, G, Store, By] {
	return &Gain[In, G, Store, By]{
		apply: apply,
		store: apply.NewStore(),
	}
}

// NewScalarGain wires Gain for a scalar signal of kind In with a gain
// of kind G, producing the promoted kind P.
func NewScalarGain[In, G, P signal.Numeric]() *Gain[In, G, P, P] {
	return NewGain[In, G, P, P](ScalarOp[In, G, P]{Op: mul[P]})
}

// NewMatrixGain wires Gain for a rows x cols matrix signal of element
// kind In with a gain of kind G, producing the promoted element kind P.
func NewMatrixGain[In, G, P signal.Numeric](rows, cols int) *Gain[*signal.Matrix[In], G, signal.Matrix[P], *signal.Matrix[P]] {
	return NewGain[*signal.Matrix[In], G, signal.Matrix[P], *signal.Matrix[P]](
		MatrixOp[In, G, P]{Rows: rows, Cols: cols, Op: mul[P]},
	)
}

// Process applies the gain.
func (b *Gain[In, G, Store, By]) Process(params *GainParams[G], _ block.Context, in In) By {
	return b.apply.Apply(&b.store, in, params.Gain)
}

var _ block.Process[float32, float32, GainParams[uint8]] = (*Gain[float32, uint8, float32, float32])(nil)
