package realtime

import (
	"fmt"
	"time"
)

// Runtime owns the monotonic elapsed-time counter for a run and is
// the sole producer of Snapshot values. It lives for the process
// lifetime and is not safe for concurrent use: block programs execute
// on a single logical thread of control.
type Runtime struct {
	fundamental time.Duration
	elapsed     time.Duration
	ticked      bool
	snap        Snapshot
}

// New creates a Runtime with the given fundamental timestep. It
// panics if the timestep is not positive.
func New(fundamental time.Duration) *Runtime {
	if fundamental <= 0 {
		panic(fmt.Sprintf("realtime: fundamental timestep %v must be positive", fundamental))
	}
	return &Runtime{fundamental: fundamental}
}

// Fundamental returns the nominal timestep.
func (r *Runtime) Fundamental() time.Duration { return r.fundamental }

// Elapsed returns the elapsed time as of the most recent tick.
func (r *Runtime) Elapsed() time.Duration { return r.elapsed }

// Tick advances the runtime by one time step and returns the tick's
// snapshot. If measured is positive it is used as the true wall-clock
// delta since the previous tick; otherwise the fundamental timestep
// is assumed. The first tick never advances time: it reports elapsed
// time zero and no measured timestep, since no previous tick exists.
//
// The returned pointer refers to the runtime's single snapshot slot
// and is valid until the next call to Tick. Every block executed in
// the tick must be handed this same pointer.
func (r *Runtime) Tick(measured time.Duration) *Snapshot {
	if !r.ticked {
		r.ticked = true
		r.snap = Snapshot{time: 0, fundamental: r.fundamental}
		return &r.snap
	}
	if measured <= 0 {
		measured = r.fundamental
	}
	r.elapsed += measured
	r.snap = Snapshot{
		time:        r.elapsed,
		timestep:    measured,
		hasTimestep: true,
		fundamental: r.fundamental,
	}
	return &r.snap
}
