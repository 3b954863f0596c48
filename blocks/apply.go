package blocks

import (
	"fmt"

	"github.com/calligan/stepwise/block"
	"github.com/calligan/stepwise/signal"
)

func add[P signal.Numeric](a, b P) P { return a + b }
func mul[P signal.Numeric](a, b P) P { return a * b }

// ScalarOp applies a binary operation to a scalar input and an
// auxiliary parameter value, both widened to the promoted kind P.
// The store holds the last result; for a scalar kind the result also
// crosses the edge by value, so the store only exists to satisfy the
// Applier shape.
type ScalarOp[In, Aux, P signal.Numeric] struct {
	Op func(P, P) P
}

// NewStore returns the zero value of the promoted kind.
func (ScalarOp[In, Aux, P]) NewStore() P {
	var zero P
	return zero
}

// Apply widens both operands to P and combines them.
func (o ScalarOp[In, Aux, P]) Apply(store *P, in In, aux Aux) P {
	v := o.Op(P(in), P(aux))
	*store = v
	return v
}

// MatrixOp applies a binary operation element-wise between a matrix
// input and a scalar auxiliary value, widening both to the promoted
// kind P. Output dimensions equal input dimensions and are fixed when
// the applier is built.
type MatrixOp[In, Aux, P signal.Numeric] struct {
	Rows, Cols int
	Op         func(P, P) P
}

// NewStore allocates the output matrix once, at block construction.
func (o MatrixOp[In, Aux, P]) NewStore() signal.Matrix[P] {
	return *signal.NewMatrix[P](o.Rows, o.Cols)
}

// Apply writes the element-wise result into the store and returns its
// reference. The input's dimensions must match the applier's; a
// mismatch is a generation bug.
func (o MatrixOp[In, Aux, P]) Apply(store *signal.Matrix[P], in *signal.Matrix[In], aux Aux) *signal.Matrix[P] {
	if in.Rows() != o.Rows || in.Cols() != o.Cols {
		panic(fmt.Sprintf("blocks: %dx%d input into %dx%d applier", in.Rows(), in.Cols(), o.Rows, o.Cols))
	}
	a := P(aux)
	src, dst := in.Raw(), store.Raw()
	for i := range src {
		dst[i] = o.Op(P(src[i]), a)
	}
	return store
}

var _ block.Applier[float32, uint8, float32, float32] = ScalarOp[float32, uint8, float32]{}

var _ block.Applier[*signal.Matrix[float64], float64, signal.Matrix[float64], *signal.Matrix[float64]] = MatrixOp[float64, float64, float64]{}
