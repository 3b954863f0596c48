// Package signal defines the closed set of value kinds that may travel
// along an edge between blocks, and how each kind crosses a block
// boundary.
//
// # Kinds
//
// Edge data is one of:
//
//   - a scalar: bool, uint8, uint16, float32, or float64
//   - a Matrix: a fixed rows x cols array of a single scalar kind
//   - a byte stream: a variable-length sequence of bytes
//   - a tuple (Pair, Triple) of any of the above, used by blocks with
//     more than one input or output edge
//
// The set is closed: generated programs wire blocks together using
// exactly these kinds, and kind mismatches are rejected before code
// generation, never at tick time.
//
// # Passing representation
//
// Scalars cross a block boundary by value. Matrices and byte streams
// cross by reference (*Matrix[T] and Bytes respectively), so a block
// that produces one must own storage for it with a lifetime at least
// as long as the tick in which it is consumed. Tuples cross as tuples
// of their members' passing representations: a Pair of a scalar and a
// matrix carries a copied scalar next to a borrowed matrix pointer.
//
// # Promotion
//
// Promote defines the unique widening of two scalar kinds that can
// represent both without information loss. The table is deliberately
// small and closed; combining kinds outside it is a composition-time
// error, reported through ErrNoPromotion.
package signal
