// SPDX-License-Identifier: MIT
// Package sqlite persists rollout runs and their episodes in SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/vecstorm/rollout"
	"github.com/katalvlaran/vecstorm/store/sqlite/migrations"
)

var (
	// ErrNotFound is returned when a run id is unknown.
	ErrNotFound = errors.New("sqlite: run not found")

	// ErrInvalidRun indicates a run missing its model id, policy, or sizes.
	ErrInvalidRun = errors.New("sqlite: invalid run")
)

// Run states.
const (
	StatusRunning  = "running"
	StatusFinished = "finished"
	StatusAborted  = "aborted"
)

// Run describes one rollout invocation.
type Run struct {
	ID        string // assigned by CreateRun when empty
	ModelID   string
	ModelName string
	Batch     int
	Steps     int
	Seed      uint64
	Workers   int
	Policy    string
	CreatedAt time.Time

	Status string // StatusRunning until FinishRun or AbortRun
	Error  string // cause recorded by AbortRun

	// Set by FinishRun and AbortRun.
	FinishedAt time.Time
	Episodes   int
	LaneSteps  int
	MeanReturn float64
	MeanLength float64
}

// Store is a SQLite-backed run store. It is safe for concurrent use.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the database at path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}

	return s.sqlDB.Close()
}

// CreateRun inserts r and returns it with ID and CreatedAt filled in.
func (s *Store) CreateRun(ctx context.Context, r Run) (Run, error) {
	if err := ctx.Err(); err != nil {
		return Run{}, err
	}
	r.ModelID = strings.TrimSpace(r.ModelID)
	r.Policy = strings.TrimSpace(r.Policy)
	if r.ModelID == "" || r.Policy == "" || r.Batch < 1 || r.Steps < 1 {
		return Run{}, fmt.Errorf("CreateRun: %w", ErrInvalidRun)
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.Workers < 1 {
		r.Workers = 1
	}
	r.Status = StatusRunning
	r.Error = ""

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO runs (id, model_id, model_name, batch, steps, seed, workers, policy, created_at, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		r.ID,
		r.ModelID,
		r.ModelName,
		r.Batch,
		r.Steps,
		int64(r.Seed),
		r.Workers,
		r.Policy,
		r.CreatedAt.UTC().UnixMilli(),
		r.Status,
	)
	if err != nil {
		return Run{}, fmt.Errorf("create run: %w", err)
	}

	return r, nil
}

// FinishRun stores the aggregate figures of a completed run.
func (s *Store) FinishRun(ctx context.Context, runID string, sum *rollout.Summary) error {
	if sum == nil {
		return fmt.Errorf("FinishRun: nil summary: %w", ErrInvalidRun)
	}

	return s.closeRun(ctx, runID, StatusFinished, "", sum)
}

// AbortRun marks a run that stopped early, keeping whatever the partial
// summary holds (nil counts as empty) and the cause.
func (s *Store) AbortRun(ctx context.Context, runID string, sum *rollout.Summary, cause error) error {
	if sum == nil {
		sum = &rollout.Summary{}
	}
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}

	return s.closeRun(ctx, runID, StatusAborted, msg, sum)
}

func (s *Store) closeRun(ctx context.Context, runID, status, msg string, sum *rollout.Summary) error {
	res, err := s.sqlDB.ExecContext(ctx, `
UPDATE runs
SET finished_at = ?, status = ?, error = ?, episodes = ?, lane_steps = ?, mean_return = ?, mean_length = ?
WHERE id = ?
`,
		time.Now().UTC().UnixMilli(),
		status,
		msg,
		sum.Episodes,
		sum.TotalSteps,
		sum.MeanReturn,
		sum.MeanLength,
		runID,
	)
	if err != nil {
		return fmt.Errorf("close run: %w", err)
	}

	return requireRow(res, runID)
}

// GetRun loads a run by id.
func (s *Store) GetRun(ctx context.Context, runID string) (Run, error) {
	var (
		r             Run
		seed, created int64
		finished      sql.NullInt64
	)
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT id, model_id, model_name, batch, steps, seed, workers, policy, created_at,
       status, error, finished_at, episodes, lane_steps, mean_return, mean_length
FROM runs
WHERE id = ?
`, runID).Scan(
		&r.ID, &r.ModelID, &r.ModelName, &r.Batch, &r.Steps, &seed, &r.Workers, &r.Policy, &created,
		&r.Status, &r.Error, &finished, &r.Episodes, &r.LaneSteps, &r.MeanReturn, &r.MeanLength,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("GetRun: %s: %w", runID, ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	r.Seed = uint64(seed)
	r.CreatedAt = time.UnixMilli(created).UTC()
	if finished.Valid {
		r.FinishedAt = time.UnixMilli(finished.Int64).UTC()
	}

	return r, nil
}

// RecordEpisodes appends episodes to a run in one transaction.
func (s *Store) RecordEpisodes(ctx context.Context, runID string, episodes []rollout.Episode) error {
	if len(episodes) == 0 {
		return nil
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin record episodes: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO episodes (run_id, lane, lane_index, length, total_return, truncated, final_vertex)
VALUES (?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare record episodes: %w", err)
	}
	defer stmt.Close()

	for _, ep := range episodes {
		if _, err := stmt.ExecContext(ctx, runID, ep.Lane, ep.Index, ep.Length, ep.Return, ep.Truncated, ep.FinalVertex); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record episode lane %d: %w", ep.Lane, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit record episodes: %w", err)
	}

	return nil
}

// ListEpisodes returns the episodes of a run in recording order.
func (s *Store) ListEpisodes(ctx context.Context, runID string) ([]rollout.Episode, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT lane, lane_index, length, total_return, truncated, final_vertex
FROM episodes
WHERE run_id = ?
ORDER BY id
`, runID)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	var out []rollout.Episode
	for rows.Next() {
		var ep rollout.Episode
		if err := rows.Scan(&ep.Lane, &ep.Index, &ep.Length, &ep.Return, &ep.Truncated, &ep.FinalVertex); err != nil {
			return nil, fmt.Errorf("scan episode: %w", err)
		}
		out = append(out, ep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate episodes: %w", err)
	}

	return out, nil
}

// Sink returns a rollout.Sink appending to runID.
func (s *Store) Sink(runID string) rollout.Sink {
	return rollout.SinkFunc(func(ctx context.Context, episodes []rollout.Episode) error {
		return s.RecordEpisodes(ctx, runID, episodes)
	})
}

// requireRow maps an update that touched no row to ErrNotFound.
func requireRow(res sql.Result, runID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", runID, ErrNotFound)
	}

	return nil
}
