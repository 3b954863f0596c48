package realtime

import (
	"time"

	"github.com/calligan/stepwise/block"
)

// Snapshot is the immutable per-tick timing record. Runtime.Tick
// returns a pointer to the runtime's single snapshot slot, so the
// value is only valid until the next tick begins.
type Snapshot struct {
	time        time.Duration
	timestep    time.Duration
	hasTimestep bool
	fundamental time.Duration
}

// NewSnapshot builds a standalone snapshot with a measured timestep.
// Intended for tests and for hosts that assemble timing themselves.
func NewSnapshot(elapsed, timestep, fundamental time.Duration) *Snapshot {
	return &Snapshot{
		time:        elapsed,
		timestep:    timestep,
		hasTimestep: true,
		fundamental: fundamental,
	}
}

// Time returns the elapsed time since the start of the run.
func (s *Snapshot) Time() time.Duration { return s.time }

// Timestep returns the measured time since the previous tick. The
// second result is false on the first tick.
func (s *Snapshot) Timestep() (time.Duration, bool) {
	return s.timestep, s.hasTimestep
}

// FundamentalTimestep returns the nominal timestep.
func (s *Snapshot) FundamentalTimestep() time.Duration { return s.fundamental }

var _ block.Context = (*Snapshot)(nil)
