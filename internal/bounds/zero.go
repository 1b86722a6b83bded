package bounds

import (
	"math"

	"github.com/roach88/scalekit/internal/domain"
)

// MachineEpsilon is the difference between 1 and the next float64.
const MachineEpsilon = 2.220446049250313e-16

// DefaultTolerance is the relative tolerance used by ZeroRange when the
// caller has no preference: (1, 1+99eps) is zero-width, (1, 1+101eps) is not.
const DefaultTolerance = 100 * MachineEpsilon

// ZeroRange reports whether r has (effectively) zero width.
//
// A range is zero-width when:
//   - either end is missing (a missing bound cannot make a nonzero range)
//   - both ends are identical, including two equal infinities
//   - |hi-lo| / mean(|lo|, |hi|) < tol for finite ends
//
// A range with an infinite end that is not identical to the other end is
// never zero-width. Instants are compared by their Unix time, durations
// by their length in seconds.
func ZeroRange(r Range, tol float64) (bool, error) {
	if tol < 0 || math.IsNaN(tol) {
		return false, domain.NewInvalidValue("tolerance must be non-negative, got %v", tol)
	}
	if _, err := r.Kind(); err != nil {
		return false, err
	}
	if r.HasMissing() {
		return true, nil
	}

	if domain.Equal(r.Lo, r.Hi) {
		return true, nil
	}
	if domain.IsInf(r.Lo) != 0 || domain.IsInf(r.Hi) != 0 {
		return false, nil
	}

	span, err := r.Span()
	if err != nil {
		return false, err
	}
	width, err := domain.Numeric(span)
	if err != nil {
		return false, err
	}
	lo, err := domain.Numeric(r.Lo)
	if err != nil {
		return false, err
	}
	hi, err := domain.Numeric(r.Hi)
	if err != nil {
		return false, err
	}

	m := (math.Abs(lo) + math.Abs(hi)) / 2
	if m == 0 {
		return true, nil
	}
	return math.Abs(width)/m < tol, nil
}

// isZeroRange is ZeroRange with the default tolerance.
func isZeroRange(r Range) (bool, error) {
	return ZeroRange(r, DefaultTolerance)
}
