package sim

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/calligan/stepwise/block"
)

// TraceSample is one recorded signal value.
type TraceSample struct {
	Tick   uint64        `json:"tick"`
	Time   time.Duration `json:"-"`
	Secs   float64       `json:"time_s"`
	Signal string        `json:"signal"`
	Value  float64       `json:"value"`
}

// TraceSink receives one sample per traced signal per tick. Record is
// called from inside the tick sequence, so implementations must be
// bounded; they may fail, and the failure is logged rather than
// aborting the tick.
type TraceSink interface {
	Record(sample TraceSample) error
}

// TraceParams names the traced signal.
type TraceParams struct {
	Signal string
}

// Trace is the Output block of the simulation host: its side effect
// is appending the input value to a trace sink. A sink failure is
// reported to the log and the tick continues; the block never halts
// the remaining tick sequence.
type Trace struct {
	sink TraceSink
	log  zerolog.Logger
	tick uint64
}

// NewTrace builds a trace output block.
func NewTrace(sink TraceSink, log zerolog.Logger) *Trace {
	return &Trace{sink: sink, log: log}
}

// Output records the input value.
func (b *Trace) Output(params *TraceParams, ctx block.Context, in float64) {
	sample := TraceSample{
		Tick:   b.tick,
		Time:   ctx.Time(),
		Secs:   ctx.Time().Seconds(),
		Signal: params.Signal,
		Value:  in,
	}
	b.tick++
	if err := b.sink.Record(sample); err != nil {
		b.log.Warn().
			Err(err).
			Str("signal", params.Signal).
			Dur("time", ctx.Time()).
			Msg("trace write failed")
	}
}

var _ block.Output[float64, TraceParams] = (*Trace)(nil)

// MemorySink collects samples in memory, in record order.
type MemorySink struct {
	Samples []TraceSample
}

// Record appends the sample.
func (s *MemorySink) Record(sample TraceSample) error {
	s.Samples = append(s.Samples, sample)
	return nil
}

// CSVSink writes samples as CSV rows: tick, time in seconds, signal,
// value.
type CSVSink struct {
	w *csv.Writer
}

// NewCSVSink builds a CSV sink and writes the header row.
func NewCSVSink(w io.Writer) (*CSVSink, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"tick", "time_s", "signal", "value"}); err != nil {
		return nil, err
	}
	return &CSVSink{w: cw}, nil
}

// Record writes one row.
func (s *CSVSink) Record(sample TraceSample) error {
	return s.w.Write([]string{
		strconv.FormatUint(sample.Tick, 10),
		strconv.FormatFloat(sample.Secs, 'g', -1, 64),
		sample.Signal,
		strconv.FormatFloat(sample.Value, 'g', -1, 64),
	})
}

// Flush flushes buffered rows and reports any write error.
func (s *CSVSink) Flush() error {
	s.w.Flush()
	return s.w.Error()
}
