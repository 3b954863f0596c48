package sim

import (
	"github.com/rs/zerolog"

	"github.com/calligan/stepwise/realtime"
)

// Run executes a scenario end to end with a fixed-step runtime: one
// Runtime.Tick per scheduled tick, each snapshot shared by every
// block in that tick. Deterministic: the same scenario always yields
// the same trace.
func Run(sc *Scenario, sink TraceSink, log zerolog.Logger) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	rt := realtime.New(sc.Timestep.Std())
	model := NewModel(sc, sink, log)
	for i := 0; i < sc.Ticks; i++ {
		model.Step(rt.Tick(sc.Timestep.Std()))
	}
	log.Debug().
		Str("scenario", sc.Name).
		Int("ticks", sc.Ticks).
		Dur("elapsed", rt.Elapsed()).
		Msg("scenario complete")
	return nil
}
