package store

import (
	"path/filepath"
	"testing"
	"time"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a run with one passing and one failing scenario.
func createTestRun(id string, startedAt time.Time) Run {
	return Run{
		ID:        id,
		StartedAt: startedAt,
		Dir:       "testdata/scenarios",
		Passed:    1,
		Failed:    1,
		Total:     2,
		Results: []ScenarioResult{
			{Name: "bounds", Pass: true, Errors: []string{}},
			{Name: "calendar", Pass: false, Errors: []string{"steps[0] round_month: expected 1, got 2"}},
		},
	}
}
