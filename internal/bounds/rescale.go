package bounds

import (
	"github.com/roach88/scalekit/internal/domain"
)

// DefaultTo is the default target interval of the rescale family.
var DefaultTo = [2]float64{0, 1}

// Rescale maps x affinely so that from.Lo lands on to[0] and from.Hi on to[1].
//
// A nil from uses the range of the data. When from has zero width every
// non-missing element maps to the midpoint of to. Missing elements stay
// missing; a missing bound in from makes every element missing. The output
// is always real.
func Rescale(x []domain.Value, to [2]float64, from *Range) ([]domain.Value, error) {
	if len(x) == 0 {
		return []domain.Value{}, nil
	}
	src, err := sourceRange(x, from)
	if err != nil {
		return nil, err
	}
	if src.HasMissing() {
		return missingAll(len(x), domain.KindReal), nil
	}

	zero, err := isZeroRange(src)
	if err != nil {
		return nil, err
	}
	mid := (to[0] + to[1]) / 2
	if zero {
		return constantFill(x, mid), nil
	}

	width, err := src.Span()
	if err != nil {
		return nil, err
	}
	out := make([]domain.Value, len(x))
	for i, v := range x {
		if v.IsMissing() {
			out[i] = domain.NA(domain.KindReal)
			continue
		}
		d, err := domain.Sub(v, src.Lo)
		if err != nil {
			return nil, err
		}
		r, err := domain.Ratio(d, width)
		if err != nil {
			return nil, err
		}
		out[i] = domain.Real(r*(to[1]-to[0]) + to[0])
	}
	return out, nil
}

// RescaleMax scales x multiplicatively so that from.Hi lands on to[1].
//
// Zero stays a fixed point of the map, so to[0] only matters through the
// fallbacks: data containing negative values is rescaled affinely onto
// (0, 1) and then multiplied by to[1]; a zero from.Hi maps every element to
// the midpoint of to. Instants have no zero point and are rejected.
func RescaleMax(x []domain.Value, to [2]float64, from *Range) ([]domain.Value, error) {
	if len(x) == 0 {
		return []domain.Value{}, nil
	}
	src, err := sourceRange(x, from)
	if err != nil {
		return nil, err
	}
	kind, _ := src.Kind()
	if kind == domain.KindInstant {
		return nil, domain.NewTypeMismatch("rescale_max needs a zero point; instants have none")
	}
	if src.HasMissing() {
		return missingAll(len(x), domain.KindReal), nil
	}

	zero, _ := domain.Zero(kind)
	negative := false
	for _, v := range x {
		if c, ok, _ := domain.Compare(v, zero); ok && c < 0 {
			negative = true
			break
		}
	}
	if negative {
		out, err := Rescale(x, DefaultTo, &src)
		if err != nil {
			return nil, err
		}
		for i, v := range out {
			if !v.IsMissing() {
				out[i] = domain.Real(float64(v.(domain.Real)) * to[1])
			}
		}
		return out, nil
	}

	if domain.Equal(src.Hi, zero) {
		return constantFill(x, (to[0]+to[1])/2), nil
	}

	out := make([]domain.Value, len(x))
	for i, v := range x {
		if v.IsMissing() {
			out[i] = domain.NA(domain.KindReal)
			continue
		}
		r, err := domain.Ratio(v, src.Hi)
		if err != nil {
			return nil, err
		}
		out[i] = domain.Real(r * to[1])
	}
	return out, nil
}

// RescaleMid maps x so that from.Lo lands on to[0], from.Hi on to[1] and
// mid exactly on the midpoint of to.
//
// The halves below and above mid are scaled independently. When one half
// is degenerate (mid sits on or beyond that end of from) it borrows the
// factor of the other half. A zero-width from or to maps every element to
// the midpoint of to.
func RescaleMid(x []domain.Value, to [2]float64, from *Range, mid domain.Value) ([]domain.Value, error) {
	if len(x) == 0 {
		return []domain.Value{}, nil
	}
	src, err := sourceRange(x, from)
	if err != nil {
		return nil, err
	}
	kind, _ := src.Kind()
	if mid == nil || mid.Kind() != kind {
		return nil, domain.NewTypeMismatch("mid must be a %s", kind)
	}
	if src.HasMissing() || mid.IsMissing() {
		return missingAll(len(x), domain.KindReal), nil
	}
	if src, err = src.Ordered(); err != nil {
		return nil, err
	}

	center := (to[0] + to[1]) / 2
	zeroFrom, err := isZeroRange(src)
	if err != nil {
		return nil, err
	}
	zeroTo, err := isZeroRange(RealRange(to[0], to[1]))
	if err != nil {
		return nil, err
	}
	if zeroFrom || zeroTo {
		return constantFill(x, center), nil
	}

	below, err := domain.Sub(mid, src.Lo)
	if err != nil {
		return nil, err
	}
	above, err := domain.Sub(src.Hi, mid)
	if err != nil {
		return nil, err
	}
	spanZero, _ := domain.Zero(domain.SpanKind(kind))
	if !positive(below, spanZero) {
		below = above
	}
	if !positive(above, spanZero) {
		above = below
	}
	if !positive(below, spanZero) {
		return constantFill(x, center), nil
	}

	out := make([]domain.Value, len(x))
	for i, v := range x {
		if v.IsMissing() {
			out[i] = domain.NA(domain.KindReal)
			continue
		}
		d, err := domain.Sub(v, mid)
		if err != nil {
			return nil, err
		}
		half, scale := to[1]-center, above
		if c, _, _ := domain.Compare(d, spanZero); c < 0 {
			half, scale = center-to[0], below
		}
		r, err := domain.Ratio(d, scale)
		if err != nil {
			return nil, err
		}
		out[i] = domain.Real(center + r*half)
	}
	return out, nil
}

// sourceRange resolves the from argument of the rescale family and checks
// that every element of x shares its domain.
func sourceRange(x []domain.Value, from *Range) (Range, error) {
	var src Range
	if from == nil {
		r, err := DataRange(x)
		if err != nil {
			return Range{}, err
		}
		src = r
	} else {
		src = *from
	}
	kind, err := src.Kind()
	if err != nil {
		return Range{}, err
	}
	if err := checkSameKind(x, kind); err != nil {
		return Range{}, err
	}
	return src, nil
}

// constantFill maps every non-missing element of x to c.
func constantFill(x []domain.Value, c float64) []domain.Value {
	out := make([]domain.Value, len(x))
	for i, v := range x {
		if v.IsMissing() {
			out[i] = domain.NA(domain.KindReal)
			continue
		}
		out[i] = domain.Real(c)
	}
	return out
}

// positive reports whether v > zero.
func positive(v, zero domain.Value) bool {
	c, ok, _ := domain.Compare(v, zero)
	return ok && c > 0
}
