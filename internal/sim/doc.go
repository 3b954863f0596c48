// Package sim is the simulation host for block programs: it executes
// a small wired model the way generated code would, using a
// deterministic fixed-step runtime, recorded input samples, and a
// trace of every signal per tick.
//
// The model here stands in for the output of the external code
// generator. Wiring is static: block types, edge kinds, and promotion
// results are all fixed in the source, and each tick runs the blocks
// in graph order with the single per-tick timing snapshot.
//
// Traces are written through the TraceSink interface. Sinks include
// an in-memory recorder (tests), a CSV writer, and a SQLite store
// keyed by run ID.
package sim
