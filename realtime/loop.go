package realtime

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/calligan/stepwise/block"
)

// Step executes every scheduled block of a program exactly once.
// Generated programs expose their tick sequence in this shape.
type Step func(ctx block.Context)

// Loop drives a Runtime from a software timer, measuring the true
// delta between ticks. It is the host loop for desktop and Linux
// targets; embedded targets drive Runtime.Tick from their own timer.
type Loop struct {
	rt   *Runtime
	step Step
	log  zerolog.Logger
}

// NewLoop builds a loop around a runtime and a program step.
func NewLoop(rt *Runtime, step Step, log zerolog.Logger) *Loop {
	return &Loop{rt: rt, step: step, log: log}
}

// Run ticks the program at the runtime's fundamental timestep until
// ctx is canceled, then returns ctx's error. Each tick is timed with
// the measured wall-clock delta, so a delayed tick is reported to
// blocks as the longer true timestep rather than papered over.
//
// A panic inside the step is recovered and logged: one failed tick
// must not take down the control loop. Ticks whose execution exceeds
// the fundamental timestep are logged as overruns.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.rt.Fundamental())
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			measured := now.Sub(last)
			last = now
			snap := l.rt.Tick(measured)
			l.runStep(snap)
			if busy := time.Since(now); busy > l.rt.Fundamental() {
				l.log.Warn().
					Dur("busy", busy).
					Dur("timestep", l.rt.Fundamental()).
					Dur("time", snap.Time()).
					Msg("tick overran fundamental timestep")
			}
		}
	}
}

func (l *Loop) runStep(snap *Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error().
				Interface("panic", r).
				Dur("time", snap.Time()).
				Msg("recovered panic in tick")
		}
	}()
	l.step(snap)
}
