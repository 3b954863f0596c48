package signal

// Bytes is the passing representation of the byte-stream kind: a
// borrowed view into storage owned by the producing block. Consumers
// must not retain a Bytes value past the current tick and must not
// write through it.
type Bytes = []byte

// ByteBuffer is fixed-capacity storage backing a byte-stream edge.
// Capacity is set once at construction; filling the buffer never
// allocates, so byte streams stay viable inside a tick budget.
type ByteBuffer struct {
	buf []byte
	n   int
}

// NewByteBuffer allocates a buffer able to hold capacity bytes.
func NewByteBuffer(capacity int) *ByteBuffer {
	if capacity <= 0 {
		panic("signal: byte buffer capacity must be positive")
	}
	return &ByteBuffer{buf: make([]byte, capacity)}
}

// Capacity returns the fixed capacity in bytes.
func (b *ByteBuffer) Capacity() int { return len(b.buf) }

// Fill copies p into the buffer, truncating to capacity, and returns
// the stored view. The view is valid until the next Fill.
func (b *ByteBuffer) Fill(p []byte) Bytes {
	b.n = copy(b.buf, p)
	return b.buf[:b.n]
}

// View returns the most recently stored bytes.
func (b *ByteBuffer) View() Bytes { return b.buf[:b.n] }
