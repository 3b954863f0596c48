package blocks

import (
	"fmt"

	"github.com/calligan/stepwise/block"
	"github.com/calligan/stepwise/signal"
)

// SumParams carries no values; Sum is configured entirely by its edge
// kinds.
type SumParams struct{}

// Sum adds two scalar edges of possibly different kinds, producing
// their promoted kind. Its input is a two-edge tuple.
type Sum[L, R, P signal.Numeric] struct {
	store P
}

// NewSum builds a scalar Sum block.
func NewSum[L, R, P signal.Numeric]() *Sum[L, R, P] {
	return &Sum[L, R, P]{}
}

// Process adds both inputs after widening to the promoted kind.
func (b *Sum[L, R, P]) Process(_ *SumParams, _ block.Context, in signal.Pair[L, R]) P {
	v := P(in.A) + P(in.B)
	b.store = v
	return v
}

// MatrixSum adds two matrix edges element-wise. Both inputs must have
// the dimensions the block was constructed with.
type MatrixSum[L, R, P signal.Numeric] struct {
	store signal.Matrix[P]
}

// NewMatrixSum builds a rows x cols matrix Sum block, allocating its
// output storage once.
func NewMatrixSum[L, R, P signal.Numeric](rows, cols int) *MatrixSum[L, R, P] {
	return &MatrixSum[L, R, P]{store: *signal.NewMatrix[P](rows, cols)}
}

// Process adds both input matrices element-wise into the block's own
// storage and returns its reference.
func (b *MatrixSum[L, R, P]) Process(_ *SumParams, _ block.Context, in signal.Pair[*signal.Matrix[L], *signal.Matrix[R]]) *signal.Matrix[P] {
	l, r := in.A, in.B
	if l.Rows() != b.store.Rows() || l.Cols() != b.store.Cols() ||
		r.Rows() != b.store.Rows() || r.Cols() != b.store.Cols() {
		panic(fmt.Sprintf("blocks: sum of %dx%d and %dx%d into %dx%d",
			l.Rows(), l.Cols(), r.Rows(), r.Cols(), b.store.Rows(), b.store.Cols()))
	}
	ls, rs, dst := l.Raw(), r.Raw(), b.store.Raw()
	for i := range dst {
		dst[i] = P(ls[i]) + P(rs[i])
	}
	return &b.store
}

var _ block.Process[signal.Pair[float32, uint8], float32, SumParams] = (*Sum[float32, uint8, float32])(nil)

var _ block.Process[signal.Pair[*signal.Matrix[float64], *signal.Matrix[float64]], *signal.Matrix[float64], SumParams] = (*MatrixSum[float64, float64, float64])(nil)
