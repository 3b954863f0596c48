// Package realtime owns the flow of time for a block program.
//
// Runtime is the sole producer of per-tick timing snapshots. It
// advances a monotonic elapsed-time counter by exactly one increment
// per tick, either the measured wall-clock delta or the nominal
// fundamental timestep, and builds one Snapshot per tick. The same
// Snapshot instance is handed by reference to every block scheduled
// in that tick; all computation within a tick therefore observes
// identical timing regardless of how long the tick takes to execute.
//
// Loop drives a Runtime from a software timer for hosts that want
// wall-clock execution. Fixed-step hosts (simulation, hardware timer
// interrupts) call Runtime.Tick directly.
package realtime
