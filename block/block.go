package block

import "time"

// Context is the immutable timing snapshot for one tick. The runtime
// constructs exactly one Context per tick and hands the same instance
// to every block scheduled in that tick. A Context is only valid for
// the tick it was produced for.
type Context interface {
	// Time is the elapsed time since the start of the program or
	// simulation. Monotonically increasing across ticks.
	Time() time.Duration

	// Timestep is the measured time since the previous tick. The
	// second result is false on the first tick, when no previous tick
	// exists. Never assume it equals the fundamental timestep.
	Timestep() (time.Duration, bool)

	// FundamentalTimestep is the nominal timestep the program was
	// configured with.
	FundamentalTimestep() time.Duration
}

// Generator produces output from parameters and time alone.
type Generator[Out, P any] interface {
	Generate(params *P, ctx Context) Out
}

// Process consumes input and produces output. Most blocks are Process
// blocks. Out and In are passing representations; a returned
// by-reference value must point into storage owned by the block.
type Process[In, Out, P any] interface {
	Process(params *P, ctx Context, in In) Out
}

// Input produces output sourced from an external interface (sensor,
// bus, stream) rather than from the graph. Interaction with the
// interface must be non-blocking or bounded: it shares the tick
// budget with every other block. An Input block that fails to obtain
// fresh data returns its most recently cached output rather than
// aborting the tick.
type Input[Out, P any] interface {
	Input(params *P, ctx Context) Out
}

// Output consumes input and performs a side effect on an external
// interface. A write failure is reported to the observability channel
// and never halts the remaining tick sequence.
type Output[In, P any] interface {
	Output(params *P, ctx Context, in In)
}

// Applier is the per-kind application step a generic block delegates
// to. A block such as Bias has exactly one tick implementation,
// written against this contract; admitting a new edge kind to the
// block means providing a new Applier, not a new block.
//
// Store is the block-owned output storage type and By the output's
// passing representation. NewStore allocates the storage, once, at
// block construction. Apply runs once per tick: it combines the input
// with the auxiliary value, writes the result into the store when the
// result is a by-reference kind, and returns the result's passing
// representation. Apply must not allocate.
type Applier[In, Aux, Store, By any] interface {
	NewStore() Store
	Apply(store *Store, in In, aux Aux) By
}
