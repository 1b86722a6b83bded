package bounds

import (
	"github.com/roach88/scalekit/internal/domain"
)

// DefaultSquishRange is the default range of Squish and SquishInfinite.
var DefaultSquishRange = RealRange(0, 1)

// Censor replaces every element outside [r.Lo, r.Hi] with the domain's
// missing marker. Bounds are inclusive and may be given in either order.
//
// With onlyFinite set, infinities are treated as out of bounds even when
// the range itself is unbounded. Missing elements stay missing, and a
// range with a missing bound censors everything.
func Censor(x []domain.Value, r Range, onlyFinite bool) ([]domain.Value, error) {
	return clip(x, r, onlyFinite, func(v domain.Value, side int, r Range) domain.Value {
		return domain.NA(v.Kind())
	})
}

// Squish clamps every element outside [r.Lo, r.Hi] to the nearest bound.
//
// With onlyFinite set, -inf always maps to r.Lo and +inf to r.Hi, even when
// the range is unbounded. Missing elements stay missing.
func Squish(x []domain.Value, r Range, onlyFinite bool) ([]domain.Value, error) {
	return clip(x, r, onlyFinite, func(v domain.Value, side int, r Range) domain.Value {
		if side < 0 {
			return r.Lo
		}
		return r.Hi
	})
}

// SquishInfinite maps -inf to r.Lo and +inf to r.Hi. Every finite value,
// in range or not, passes through unchanged.
func SquishInfinite(x []domain.Value, r Range) ([]domain.Value, error) {
	kind, err := r.Kind()
	if err != nil {
		return nil, err
	}
	if err := checkSameKind(x, kind); err != nil {
		return nil, err
	}
	if r, err = r.Ordered(); err != nil {
		return nil, err
	}

	out := make([]domain.Value, len(x))
	for i, v := range x {
		switch domain.IsInf(v) {
		case -1:
			out[i] = r.Lo
		case 1:
			out[i] = r.Hi
		default:
			out[i] = v
		}
	}
	return out, nil
}

// replaceFunc returns the replacement for an out-of-bounds element.
// side is -1 below the range and +1 above it.
type replaceFunc func(v domain.Value, side int, r Range) domain.Value

// clip is the shared loop of Censor and Squish.
func clip(x []domain.Value, r Range, onlyFinite bool, replace replaceFunc) ([]domain.Value, error) {
	kind, err := r.Kind()
	if err != nil {
		return nil, err
	}
	if err := checkSameKind(x, kind); err != nil {
		return nil, err
	}
	if r.HasMissing() {
		return missingAll(len(x), kind), nil
	}
	if r, err = r.Ordered(); err != nil {
		return nil, err
	}

	out := make([]domain.Value, len(x))
	for i, v := range x {
		if v.IsMissing() {
			out[i] = domain.NA(kind)
			continue
		}
		side, err := outside(v, r, onlyFinite)
		if err != nil {
			return nil, err
		}
		if side == 0 {
			out[i] = v
			continue
		}
		out[i] = replace(v, side, r)
	}
	return out, nil
}

// outside returns -1 if v lies below r, +1 if above, 0 if inside.
func outside(v domain.Value, r Range, onlyFinite bool) (int, error) {
	if onlyFinite {
		if s := domain.IsInf(v); s != 0 {
			return s, nil
		}
	}
	c, _, err := domain.Compare(v, r.Lo)
	if err != nil {
		return 0, err
	}
	if c < 0 {
		return -1, nil
	}
	c, _, err = domain.Compare(v, r.Hi)
	if err != nil {
		return 0, err
	}
	if c > 0 {
		return 1, nil
	}
	return 0, nil
}
