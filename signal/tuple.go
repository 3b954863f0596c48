package signal

// Pair composes two edge values for blocks with two input or output
// edges. The type parameters are the members' passing representations,
// so the passing contract is structural: copying a Pair copies
// by-value members (scalars) and aliases by-reference members
// (matrix pointers, byte views).
type Pair[A, B any] struct {
	A A
	B B
}

// PairOf builds a Pair from its members.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{A: a, B: b}
}

// Triple composes three edge values. Same passing semantics as Pair.
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// TripleOf builds a Triple from its members.
func TripleOf[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{A: a, B: b, C: c}
}
