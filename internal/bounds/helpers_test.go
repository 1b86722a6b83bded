package bounds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/scalekit/internal/domain"
)

var (
	inf  = math.Inf(1)
	ninf = math.Inf(-1)
	nan  = math.NaN()
)

// reals wraps float literals as domain values.
func reals(xs ...float64) []domain.Value {
	return domain.Reals(xs)
}

// arange returns reals 0, 1, ..., n-1.
func arange(n int) []domain.Value {
	out := make([]domain.Value, n)
	for i := range out {
		out[i] = domain.Real(float64(i))
	}
	return out
}

// requireFloats unwraps a real result, failing the test on a domain error.
func requireFloats(t *testing.T, vs []domain.Value) []float64 {
	t.Helper()
	fs, err := domain.Floats(vs)
	require.NoError(t, err)
	return fs
}

// assertFloats compares element-wise with NaN == NaN and an absolute tolerance.
func assertFloats(t *testing.T, want []float64, got []domain.Value) {
	t.Helper()
	fs := requireFloats(t, got)
	require.Len(t, fs, len(want))
	for i := range want {
		switch {
		case math.IsNaN(want[i]):
			assert.True(t, math.IsNaN(fs[i]), "index %d: want NaN, got %v", i, fs[i])
		case math.IsInf(want[i], 0):
			assert.Equal(t, want[i], fs[i], "index %d", i)
		default:
			assert.InDelta(t, want[i], fs[i], 1e-9, "index %d", i)
		}
	}
}
