package blocks

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/calligan/stepwise/realtime"
	"github.com/calligan/stepwise/signal"
)

func TestSinewave_Value(t *testing.T) {
	blk := Sinewave[float64]{}
	params := &SinewaveParams[float64]{Amplitude: 2.0, Frequency: 1.0, Phase: 0.5, Bias: 0.25}

	ctx := realtime.NewSnapshot(time.Second, 10*time.Millisecond, 10*time.Millisecond)
	want := 2.0*math.Sin(1.5) + 0.25
	assert.Equal(t, want, blk.Generate(params, ctx))
}

func TestSinewave_NoDrift(t *testing.T) {
	// Output is a pure function of elapsed time, not of call count: a
	// single tick reaching 1s must match the 100th of 100 ticks at
	// 10ms reaching the same elapsed time.
	blk := Sinewave[float64]{}
	params := &SinewaveParams[float64]{Amplitude: 1.0, Frequency: 2 * math.Pi}

	once := realtime.New(time.Second)
	once.Tick(0) // first tick, t=0
	direct := blk.Generate(params, once.Tick(time.Second))

	stepped := realtime.New(10 * time.Millisecond)
	stepped.Tick(0)
	var walked float64
	for i := 0; i < 100; i++ {
		walked = blk.Generate(params, stepped.Tick(10*time.Millisecond))
	}

	assert.Equal(t, time.Second, stepped.Elapsed())
	assert.Equal(t, direct, walked)
}

func TestRamp(t *testing.T) {
	blk := Ramp[float64]{}
	params := &RampParams[float64]{Start: 1.0, Slope: 2.0}

	ctx := realtime.NewSnapshot(500*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond)
	assert.Equal(t, 2.0, blk.Generate(params, ctx))
}

func TestRamp_DelayedTickNoDrift(t *testing.T) {
	blk := Ramp[float32]{}
	params := &RampParams[float32]{Slope: 4.0}

	// A delayed tick lands at the true elapsed time, so the ramp
	// reports the value for that time rather than the scheduled one.
	rt := realtime.New(100 * time.Millisecond)
	rt.Tick(0)
	out := blk.Generate(params, rt.Tick(250*time.Millisecond))
	assert.Equal(t, float32(1.0), out)
}

func TestConstant(t *testing.T) {
	blk := Constant[uint16]{}
	params := &ConstantParams[uint16]{Value: 300}

	assert.Equal(t, uint16(300), blk.Generate(params, stubCtx()))
}

func TestMatrixConstant_CopiesParameters(t *testing.T) {
	blk := NewMatrixConstant[float64](1, 2)
	value := signal.MatrixFrom(1, 2, []float64{1, 2})
	params := &MatrixConstantParams[float64]{Value: value}

	out := blk.Generate(params, stubCtx())
	assert.Equal(t, []float64{1, 2}, out.Raw())

	// The emitted matrix is block-owned storage, not the parameter
	// matrix itself.
	assert.NotSame(t, value, out)
}

func TestBytesLiteral(t *testing.T) {
	blk := NewBytesLiteral(16)
	params := &BytesLiteralParams{Value: []byte{0x01, 0x02, 0x03}}

	out := blk.Generate(params, stubCtx())
	assert.Equal(t, signal.Bytes{0x01, 0x02, 0x03}, out)

	// Truncation at the fixed capacity, never reallocation.
	small := NewBytesLiteral(2)
	assert.Equal(t, signal.Bytes{0x01, 0x02}, small.Generate(params, stubCtx()))
}
