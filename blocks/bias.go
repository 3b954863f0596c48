package blocks

import (
	"github.com/calligan/stepwise/block"
	"github.com/calligan/stepwise/signal"
)

// BiasParams offsets the signal by Offset. As with Gain, the offset's
// scalar kind may differ from the signal's and the output kind is
// their promotion.
type BiasParams[B signal.Numeric] struct {
	Offset B
}

// NewBiasParams builds BiasParams.
func NewBiasParams[B signal.Numeric](offset B) *BiasParams[B] {
	return &BiasParams[B]{Offset: offset}
}

// Bias adds a constant offset to its input. Like Gain it has a single
// tick implementation over the Applier contract.
type Bias[In any, B signal.Numeric, Store, By any] struct {
	apply block.Applier[In, B, Store, By]
	store Store
}

// NewBias builds a Bias block around an applier for the wired edge
// kind.
func NewBias[In any, B signal.Numeric, Store, By any](apply block.Applier[In, B, Store, By]) *Bias[In, B, Store, By] {
	return &Bias[In, B, Store, By]{
		apply: apply,
		store: apply.NewStore(),
	}
}

// NewScalarBias wires Bias for a scalar signal of kind In with an
// offset of kind B, producing the promoted kind P.
func NewScalarBias[In, B, P signal.Numeric]() *Bias[In, B, P, P] {
	return NewBias[In, B, P, P](ScalarOp[In, B, P]{Op: add[P]})
}

// NewMatrixBias wires Bias for a rows x cols matrix signal of element
// kind In with an offset of kind B, producing the promoted element
// kind P.
func NewMatrixBias[In, B, P signal.Numeric](rows, cols int) *Bias[*signal.Matrix[In], B, signal.Matrix[P], *signal.Matrix[P]] {
	return NewBias[*signal.Matrix[In], B, signal.Matrix[P], *signal.Matrix[P]](
		MatrixOp[In, B, P]{Rows: rows, Cols: cols, Op: add[P]},
	)
}

// Process applies the offset.
func (b *Bias[In, B, Store, By]) Process(params *BiasParams[B], _ block.Context, in In) By {
	return b.apply.Apply(&b.store, in, params.Offset)
}

var _ block.Process[float64, float64, BiasParams[float64]] = (*Bias[float64, float64, float64, float64])(nil)
