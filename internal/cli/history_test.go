package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/scalekit/internal/store"
)

// seedHistory records two runs one minute apart and returns the db path.
func seedHistory(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "runs.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	defer st.Close()

	ctx := context.Background()
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	gen := store.NewSequenceGenerator("run-a", "run-b")
	for i := 0; i < 2; i++ {
		run := store.Run{
			ID:        gen.Generate(),
			StartedAt: start.Add(time.Duration(i) * time.Minute),
			Dir:       "scenarios",
			Passed:    1,
			Failed:    i,
			Total:     1 + i,
			Results:   []store.ScenarioResult{{Name: "bounds", Pass: true}},
		}
		if i == 1 {
			run.Results = append(run.Results, store.ScenarioResult{Name: "calendar", Errors: []string{"trace does not match golden file"}})
		}
		require.NoError(t, st.RecordRun(ctx, run))
	}
	return path
}

func execHistory(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewHistoryCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestHistoryText(t *testing.T) {
	db := seedHistory(t)

	out, err := execHistory(t, "text", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "RUN")
	assert.Less(t, bytes.Index([]byte(out), []byte("run-b")), bytes.Index([]byte(out), []byte("run-a")), "newest first")
	assert.Contains(t, out, "2024-05-01T09:01:00Z")
}

func TestHistoryLimitJSON(t *testing.T) {
	db := seedHistory(t)

	out, err := execHistory(t, "json", "--db", db, "--limit", "1")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   []RunSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "run-b", resp.Data[0].ID)
	assert.Equal(t, 1, resp.Data[0].Failed)
	assert.Empty(t, resp.Data[0].Scenarios)
}

func TestHistorySingleRun(t *testing.T) {
	db := seedHistory(t)

	out, err := execHistory(t, "text", "--db", db, "--run", "run-b")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ bounds")
	assert.Contains(t, out, "✗ calendar")
	assert.Contains(t, out, "trace does not match golden file")

	_, err = execHistory(t, "text", "--db", db, "--run", "missing")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestHistoryEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	out, err := execHistory(t, "text", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestHistoryMissingDatabase(t *testing.T) {
	_, err := execHistory(t, "text", "--db", "/nonexistent/runs.db")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not found")

	_, err = execHistory(t, "text")
	require.Error(t, err, "--db is required")
}
