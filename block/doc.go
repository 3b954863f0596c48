// Package block defines the contracts a generated program composes:
// the four block capability variants, the per-tick timing Context, and
// the Applier indirection that lets one generic block implementation
// cover every admissible edge kind.
//
// # Blocks
//
// A block is a unit of computation with declared input, output, and
// parameter types and a single tick-shaped operation:
//
//   - Generator: no input, produces output from parameters and time
//   - Process: consumes input, produces output
//   - Input: no graph input; output comes from an external interface
//   - Output: consumes input; side effect on an external interface
//
// The tick operation of every scheduled block runs exactly once per
// time step, in an order fixed by the code generator. Blocks must
// never assume a fixed spacing between invocations: anything
// time-dependent is computed from Context.Time and Context.Timestep,
// never by counting calls, so delayed or skipped ticks do not
// accumulate drift.
//
// Input and output edge types are passing representations as defined
// by package signal: scalars by value, matrices and byte streams by
// reference, tuples structurally. A block producing a by-reference
// output owns the backing storage; it is written during the block's
// own tick slot and read immediately afterwards by downstream blocks.
// No two blocks share mutable state.
//
// # Parameters
//
// Parameters are owned and updated outside the block graph and passed
// by reference on every tick. They are immutable for the duration of
// a tick.
//
// # Context
//
// The Context handed to a tick is produced once per tick by the
// runtime and shared by reference with every block scheduled in that
// tick, so all computation within one tick observes identical timing
// no matter how long the tick takes to execute.
package block
