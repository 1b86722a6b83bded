// Package bounds implements the range-bounds kernel: range expansion, the
// rescale family, censoring, squishing and the zero-range test.
//
// Every function is written once against package domain and therefore
// accepts reals, instants and durations alike. Functions never mutate
// their inputs and return freshly allocated slices.
package bounds

import (
	"github.com/roach88/scalekit/internal/domain"
)

// Range is an ordered pair of values of one domain.
// No ordering between Lo and Hi is required.
type Range struct {
	Lo domain.Value
	Hi domain.Value
}

// NewRange builds a Range, checking both ends share a domain.
func NewRange(lo, hi domain.Value) (Range, error) {
	if _, err := domain.KindOf(lo, hi); err != nil {
		return Range{}, err
	}
	return Range{Lo: lo, Hi: hi}, nil
}

// RealRange is a convenience constructor for real ranges.
func RealRange(lo, hi float64) Range {
	return Range{Lo: domain.Real(lo), Hi: domain.Real(hi)}
}

// RangeOf validates a raw tuple as a range.
// Anything other than exactly two elements is STRUCTURAL; elements from
// different domains are TYPE_MISMATCH.
func RangeOf(values []domain.Value) (Range, error) {
	if len(values) != 2 {
		return Range{}, domain.NewStructural("a range needs exactly 2 elements, got %d", len(values))
	}
	return NewRange(values[0], values[1])
}

// DataRange returns [min(x), max(x)] over the non-missing elements.
func DataRange(x []domain.Value) (Range, error) {
	lo, hi, err := domain.MinMax(x)
	if err != nil {
		return Range{}, err
	}
	return Range{Lo: lo, Hi: hi}, nil
}

// Kind returns the domain of the range.
func (r Range) Kind() (domain.Kind, error) {
	return domain.KindOf(r.Lo, r.Hi)
}

// HasMissing reports whether either end is missing.
func (r Range) HasMissing() bool {
	return domain.IsMissing(r.Lo) || domain.IsMissing(r.Hi)
}

// Span returns Hi - Lo.
func (r Range) Span() (domain.Value, error) {
	return domain.Sub(r.Hi, r.Lo)
}

// Ordered returns the range with Lo <= Hi. Ranges with a missing end are
// returned unchanged.
func (r Range) Ordered() (Range, error) {
	c, ok, err := domain.Compare(r.Lo, r.Hi)
	if err != nil {
		return Range{}, err
	}
	if ok && c > 0 {
		return Range{Lo: r.Hi, Hi: r.Lo}, nil
	}
	return r, nil
}

// Values returns the range as a two-element slice.
func (r Range) Values() []domain.Value {
	return []domain.Value{r.Lo, r.Hi}
}

// String formats the range as "(lo, hi)".
func (r Range) String() string {
	return "(" + domain.Format(r.Lo) + ", " + domain.Format(r.Hi) + ")"
}

// checkSameKind verifies that every element of x belongs to kind.
func checkSameKind(x []domain.Value, kind domain.Kind) error {
	for i, v := range x {
		if v == nil {
			return domain.NewTypeMismatchAt(i, "nil value has no domain")
		}
		if v.Kind() != kind {
			return domain.NewTypeMismatchAt(i, "value of domain %s is incomparable to a %s range", v.Kind(), kind)
		}
	}
	return nil
}

// missingAll returns a slice of n missing markers of kind.
func missingAll(n int, kind domain.Kind) []domain.Value {
	out := make([]domain.Value, n)
	for i := range out {
		out[i] = domain.NA(kind)
	}
	return out
}
