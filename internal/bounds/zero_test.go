package bounds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/scalekit/internal/domain"
)

func zeroRange(t *testing.T, r Range, tol float64) bool {
	t.Helper()
	ok, err := ZeroRange(r, tol)
	require.NoError(t, err)
	return ok
}

func TestZeroRangeTolerance(t *testing.T) {
	eps := MachineEpsilon

	assert.True(t, zeroRange(t, RealRange(1, 1+eps), DefaultTolerance))
	assert.True(t, zeroRange(t, RealRange(1, 1+99*eps), DefaultTolerance))

	// Crossed the tolerance threshold
	assert.False(t, zeroRange(t, RealRange(1, 1+101*eps), DefaultTolerance))

	// Changed tolerance
	assert.False(t, zeroRange(t, RealRange(1, 1+2*eps), eps))
}

func TestZeroRangeScaleInvariant(t *testing.T) {
	eps := MachineEpsilon
	for _, k := range []float64{100000, 0.00001} {
		assert.True(t, zeroRange(t, RealRange(k*1, k*(1+eps)), DefaultTolerance), "k=%v", k)
		assert.False(t, zeroRange(t, RealRange(k*1, k*(1+200*eps)), DefaultTolerance), "k=%v", k)
	}
}

func TestZeroRangeMissingAndInfinite(t *testing.T) {
	assert.True(t, zeroRange(t, RealRange(1, nan), DefaultTolerance))
	assert.True(t, zeroRange(t, Range{Lo: domain.Real(4), Hi: domain.NA(domain.KindReal)}, DefaultTolerance))

	assert.False(t, zeroRange(t, RealRange(1, inf), DefaultTolerance))
	assert.False(t, zeroRange(t, RealRange(4, inf), DefaultTolerance))
	assert.False(t, zeroRange(t, RealRange(ninf, inf), DefaultTolerance))
	assert.True(t, zeroRange(t, RealRange(inf, inf), DefaultTolerance))
}

func TestZeroRangeReflexive(t *testing.T) {
	values := []domain.Value{
		domain.Real(0),
		domain.Real(-3.25),
		domain.Real(1e300),
		domain.NewInstant(time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)),
		domain.Duration(2010 * time.Second),
		domain.Duration(0),
	}
	for _, v := range values {
		assert.True(t, zeroRange(t, Range{Lo: v, Hi: v}, DefaultTolerance), domain.Format(v))
	}
}

func TestZeroRangeInstants(t *testing.T) {
	jan1 := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	x := Range{Lo: domain.NewInstant(jan1), Hi: domain.NewInstant(jan1)}
	x2 := Range{Lo: domain.NewInstant(jan1), Hi: domain.NewInstant(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))}

	eastern := time.FixedZone("EST", -5*3600)
	central := time.FixedZone("CST", -6*3600)
	x3 := Range{
		Lo: domain.NewInstant(time.Date(2010, 1, 1, 0, 0, 0, 0, eastern)),
		Hi: domain.NewInstant(time.Date(2010, 1, 1, 0, 0, 0, 0, central)),
	}
	// The same instant seen from two zones.
	x4 := Range{
		Lo: domain.NewInstant(time.Date(2010, 1, 1, 5, 0, 0, 0, time.UTC)),
		Hi: domain.NewInstant(time.Date(2010, 1, 1, 0, 0, 0, 0, eastern)),
	}

	assert.True(t, zeroRange(t, x, DefaultTolerance))
	assert.False(t, zeroRange(t, x2, DefaultTolerance))
	assert.False(t, zeroRange(t, x3, DefaultTolerance))
	assert.True(t, zeroRange(t, x4, DefaultTolerance))
}

func TestZeroRangeDurations(t *testing.T) {
	x := Range{Lo: domain.Duration(2010 * time.Second), Hi: domain.Duration(2010 * time.Second)}
	x2 := Range{
		Lo: domain.Duration(2010*time.Second + 90*time.Microsecond),
		Hi: domain.Duration(2010*time.Second + 34*time.Microsecond),
	}
	x3 := Range{Lo: domain.Duration(200 * 24 * time.Hour), Hi: domain.Duration(203 * 24 * time.Hour)}

	assert.True(t, zeroRange(t, x, DefaultTolerance))
	assert.False(t, zeroRange(t, x2, DefaultTolerance))
	assert.False(t, zeroRange(t, x3, DefaultTolerance))
}

func TestZeroRangeErrors(t *testing.T) {
	_, err := RangeOf(reals(1))
	assert.True(t, domain.IsStructural(err))

	_, err = RangeOf(reals(1, 2, 3))
	assert.True(t, domain.IsStructural(err))

	_, err = domain.Values("a", "b")
	assert.True(t, domain.IsTypeMismatch(err))

	_, err = ZeroRange(Range{Lo: domain.Real(1), Hi: domain.Duration(1)}, DefaultTolerance)
	assert.True(t, domain.IsTypeMismatch(err))

	_, err = ZeroRange(RealRange(1, 2), -1)
	assert.True(t, domain.IsInvalidValue(err))
}

func TestZeroRangeUnordered(t *testing.T) {
	assert.False(t, zeroRange(t, RealRange(8, 4), DefaultTolerance))
	assert.False(t, zeroRange(t, RealRange(-1, 1), DefaultTolerance))
}
