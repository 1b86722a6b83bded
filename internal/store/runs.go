package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/scalekit/internal/harness"
)

// timeLayout is fixed width so started_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Run is one invocation of the scenario runner.
type Run struct {
	ID        string
	StartedAt time.Time
	Dir       string
	Passed    int
	Failed    int
	Total     int
	Results   []ScenarioResult
}

// ScenarioResult is the stored outcome of one scenario within a run.
type ScenarioResult struct {
	Name   string
	Pass   bool
	Errors []string
}

// RecordRun inserts a run and its scenario results in a single transaction.
// Result errors are stored as canonical JSON arrays.
func (s *Store) RecordRun(ctx context.Context, run Run) error {
	if run.ID == "" {
		return fmt.Errorf("record run: id is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record run: begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, scenarios_dir, passed, failed, total)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		run.ID,
		run.StartedAt.UTC().Format(timeLayout),
		run.Dir,
		run.Passed,
		run.Failed,
		run.Total,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	for i, res := range run.Results {
		errs := res.Errors
		if errs == nil {
			errs = []string{}
		}
		errorsJSON, err := harness.MarshalCanonical(errs)
		if err != nil {
			return fmt.Errorf("record run: scenario %q: %w", res.Name, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO scenario_results (run_id, ordinal, name, pass, errors)
			VALUES (?, ?, ?, ?, ?)
		`, run.ID, i, res.Name, res.Pass, string(errorsJSON))
		if err != nil {
			return fmt.Errorf("record run: scenario %q: %w", res.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record run: commit: %w", err)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first. Results are not loaded.
// A limit of zero or less returns every run.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, started_at, scenarios_dir, passed, failed, total
		FROM runs
		ORDER BY started_at DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// GetRun returns a run with its scenario results.
// Returns sql.ErrNoRows (wrapped) when the run does not exist.
func (s *Store) GetRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, scenarios_dir, passed, failed, total
		FROM runs
		WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if err != nil {
		return Run{}, fmt.Errorf("get run %s: %w", id, err)
	}

	run.Results, err = s.RunResults(ctx, id)
	if err != nil {
		return Run{}, err
	}
	return run, nil
}

// RunResults returns the scenario results of a run in recorded order.
func (s *Store) RunResults(ctx context.Context, runID string) ([]ScenarioResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, pass, errors
		FROM scenario_results
		WHERE run_id = ?
		ORDER BY ordinal ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("run results: %w", err)
	}
	defer rows.Close()

	results := []ScenarioResult{}
	for rows.Next() {
		var (
			res        ScenarioResult
			errorsJSON string
		)
		if err := rows.Scan(&res.Name, &res.Pass, &errorsJSON); err != nil {
			return nil, fmt.Errorf("run results: scan: %w", err)
		}
		if err := json.Unmarshal([]byte(errorsJSON), &res.Errors); err != nil {
			return nil, fmt.Errorf("run results: scenario %q: decode errors: %w", res.Name, err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("run results: %w", err)
	}
	return results, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run       Run
		startedAt string
	)
	if err := row.Scan(&run.ID, &startedAt, &run.Dir, &run.Passed, &run.Failed, &run.Total); err != nil {
		return Run{}, err
	}
	t, err := time.Parse(timeLayout, startedAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse started_at %q: %w", startedAt, err)
	}
	run.StartedAt = t
	return run, nil
}
