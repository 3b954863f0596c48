package blocks

import (
	"github.com/calligan/stepwise/block"
	"github.com/calligan/stepwise/signal"
)

// BytesLiteralParams holds the emitted byte sequence.
type BytesLiteralParams struct {
	Value []byte
}

// BytesLiteral emits a fixed byte sequence on a byte-stream edge.
// The block owns a fixed-capacity buffer sized at construction; the
// parameter bytes are copied into it each tick so the outgoing view
// never aliases parameter memory. Values longer than the capacity are
// truncated.
type BytesLiteral struct {
	store *signal.ByteBuffer
}

// NewBytesLiteral builds the block with a buffer of the given
// capacity.
func NewBytesLiteral(capacity int) *BytesLiteral {
	return &BytesLiteral{store: signal.NewByteBuffer(capacity)}
}

// Generate returns the stored view of the configured bytes.
func (b *BytesLiteral) Generate(params *BytesLiteralParams, _ block.Context) signal.Bytes {
	return b.store.Fill(params.Value)
}

var _ block.Generator[signal.Bytes, BytesLiteralParams] = (*BytesLiteral)(nil)
