package blocks

import (
	"github.com/calligan/stepwise/block"
	"github.com/calligan/stepwise/signal"
)

// ConstantParams holds the emitted value.
type ConstantParams[T signal.Scalar] struct {
	Value T
}

// Constant emits its parameter value every tick. Scalar output passes
// by value, so the block keeps no storage.
type Constant[T signal.Scalar] struct{}

// Generate returns the configured value.
func (Constant[T]) Generate(params *ConstantParams[T], _ block.Context) T {
	return params.Value
}

// MatrixConstantParams holds the emitted matrix. The parameter store
// owns Value; the block copies it into its own storage each tick so
// downstream references never alias parameter memory.
type MatrixConstantParams[T signal.Scalar] struct {
	Value *signal.Matrix[T]
}

// MatrixConstant emits a constant matrix.
type MatrixConstant[T signal.Scalar] struct {
	store signal.Matrix[T]
}

// NewMatrixConstant builds a rows x cols constant block.
func NewMatrixConstant[T signal.Scalar](rows, cols int) *MatrixConstant[T] {
	return &MatrixConstant[T]{store: *signal.NewMatrix[T](rows, cols)}
}

// Generate copies the parameter matrix into the block's storage and
// returns its reference.
func (b *MatrixConstant[T]) Generate(params *MatrixConstantParams[T], _ block.Context) *signal.Matrix[T] {
	b.store.CopyFrom(params.Value)
	return &b.store
}

var _ block.Generator[float64, ConstantParams[float64]] = Constant[float64]{}

var _ block.Generator[*signal.Matrix[bool], MatrixConstantParams[bool]] = (*MatrixConstant[bool])(nil)
