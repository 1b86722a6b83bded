package calendar

import (
	"time"

	"github.com/roach88/scalekit/internal/bounds"
	"github.com/roach88/scalekit/internal/domain"
)

// ShiftLimitsDown moves candidate down so its low end sits on a multiple
// of step. The shift is abandoned, and candidate returned as is, when the
// shifted high end would no longer cover original's high end.
func ShiftLimitsDown(candidate, original [2]int, step int) ([2]int, error) {
	if step <= 0 {
		return candidate, domain.NewInvalidValue("shift step must be positive, got %d", step)
	}
	shift := candidate[0] % step
	if shift < 0 {
		shift += step
	}
	if shift == 0 {
		return candidate, nil
	}
	shifted := [2]int{candidate[0] - shift, candidate[1] - shift}
	if shifted[1] < original[1] {
		return candidate, nil
	}
	return shifted, nil
}

// ExpandDatetimeLimits widens instant limits to span at least width units.
// Limits that already span the width are returned unchanged, as are limits
// with a missing end.
//
// Fixed units pad both ends by half the deficit. Calendar units first snap
// outward to unit boundaries and then pad whole units, the extra unit going
// to the high end. Yearly limits are finally aligned to multiples of width
// through ShiftLimitsDown.
func ExpandDatetimeLimits(limits bounds.Range, width int, unit Unit) (bounds.Range, error) {
	if width <= 0 {
		return limits, domain.NewInvalidValue("expansion width must be positive, got %d", width)
	}
	kind, err := limits.Kind()
	if err != nil {
		return limits, err
	}
	if kind != domain.KindInstant {
		return limits, domain.NewTypeMismatch("datetime limits must be instants, got %s", kind)
	}
	if limits.HasMissing() {
		return limits, nil
	}
	if limits, err = limits.Ordered(); err != nil {
		return limits, err
	}
	lo := limits.Lo.(domain.Instant).Time
	hi := limits.Hi.(domain.Instant).Time

	if !unit.Add(lo, width).After(hi) {
		return limits, nil
	}

	if unit.Fixed() {
		deficit := time.Duration(width)*unit.Length() - hi.Sub(lo)
		half := deficit / 2
		return instantRange(lo.Add(-half), hi.Add(deficit-half)), nil
	}

	lo0, hi0 := unit.Floor(lo), unit.Ceil(hi)
	need := width - unit.between(lo0, hi0)
	if need < 0 {
		need = 0
	}
	padLo := need / 2
	newLo, newHi := unit.Add(lo0, -padLo), unit.Add(hi0, need-padLo)

	if unit == Year {
		years, err := ShiftLimitsDown(
			[2]int{newLo.Year(), newHi.Year()},
			[2]int{lo0.Year(), hi0.Year()},
			width,
		)
		if err != nil {
			return limits, err
		}
		loc := lo.Location()
		newLo = time.Date(years[0], time.January, 1, 0, 0, 0, 0, loc)
		newHi = time.Date(years[1], time.January, 1, 0, 0, 0, 0, loc)
	}
	return instantRange(newLo, newHi), nil
}

func instantRange(lo, hi time.Time) bounds.Range {
	return bounds.Range{Lo: domain.NewInstant(lo), Hi: domain.NewInstant(hi)}
}
