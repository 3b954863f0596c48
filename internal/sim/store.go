package sim

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store persists run traces in SQLite. It is the durable
// observability channel behind the Trace output block.
type Store struct {
	db *sql.DB
}

// RunRecord describes one recorded run.
type RunRecord struct {
	ID        string
	Scenario  string
	StartedAt string
}

// OpenStore creates or opens a trace database at the given path.
// SQLite supports one writer at a time, so the pool is pinned to a
// single connection; the tick sequence is single-threaded anyway.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open trace db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect trace db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// BeginRun registers a new run and returns a sink bound to it. The
// run ID is a fresh UUID.
func (s *Store) BeginRun(ctx context.Context, scenario string) (*RunSink, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, scenario) VALUES (?, ?)`, id, scenario)
	if err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}
	return &RunSink{store: s, runID: id}, nil
}

// Runs lists recorded runs, oldest first.
func (s *Store) Runs(ctx context.Context) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, scenario, started_at FROM runs ORDER BY started_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		if err := rows.Scan(&r.ID, &r.Scenario, &r.StartedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Samples returns a run's trace ordered by tick then signal.
func (s *Store) Samples(ctx context.Context, runID string) ([]TraceSample, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tick, time_ns, signal, value FROM samples
		 WHERE run_id = ? ORDER BY tick, signal`, runID)
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	defer rows.Close()

	var samples []TraceSample
	for rows.Next() {
		var sample TraceSample
		var ns int64
		if err := rows.Scan(&sample.Tick, &ns, &sample.Signal, &sample.Value); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		sample.Time = time.Duration(ns)
		sample.Secs = sample.Time.Seconds()
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}

// RunSink is a TraceSink bound to one run.
type RunSink struct {
	store *Store
	runID string
}

// RunID returns the bound run's UUID.
func (s *RunSink) RunID() string { return s.runID }

// Record inserts one sample row.
func (s *RunSink) Record(sample TraceSample) error {
	_, err := s.store.db.Exec(
		`INSERT INTO samples (run_id, tick, time_ns, signal, value)
		 VALUES (?, ?, ?, ?, ?)`,
		s.runID, sample.Tick, int64(sample.Time), sample.Signal, sample.Value)
	if err != nil {
		return fmt.Errorf("record sample: %w", err)
	}
	return nil
}

var _ TraceSink = (*RunSink)(nil)
