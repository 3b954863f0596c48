package blocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelay_FirstTickEmitsInitial(t *testing.T) {
	blk := &Delay[float64]{}
	params := &DelayParams[float64]{Initial: -1.0}

	assert.Equal(t, -1.0, blk.Process(params, stubCtx(), 10.0))
	assert.Equal(t, 10.0, blk.Process(params, stubCtx(), 20.0))
	assert.Equal(t, 20.0, blk.Process(params, stubCtx(), 30.0))
}

func TestDelay_Bool(t *testing.T) {
	blk := &Delay[bool]{}
	params := &DelayParams[bool]{Initial: false}

	assert.False(t, blk.Process(params, stubCtx(), true))
	assert.True(t, blk.Process(params, stubCtx(), false))
}

func TestDelay_IndependentInstances(t *testing.T) {
	// State is exclusively owned by the block instance: two delays
	// never alias storage.
	a := &Delay[uint8]{}
	b := &Delay[uint8]{}
	params := &DelayParams[uint8]{}

	a.Process(params, stubCtx(), 5)
	assert.Equal(t, uint8(0), b.Process(params, stubCtx(), 9))
	assert.Equal(t, uint8(5), a.Process(params, stubCtx(), 6))
}
