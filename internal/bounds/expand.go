package bounds

import (
	"github.com/roach88/scalekit/internal/domain"
)

// ExpandOptions controls ExpandRange.
type ExpandOptions struct {
	// Mul grows each side by Mul times the width of the range.
	Mul float64

	// Add grows each side by a constant. Nil means zero.
	// Must be of the range's span kind (a Duration for instants and durations).
	Add domain.Value

	// ZeroWidth is the total width given to a zero-width range.
	// Nil means one unit (1, or one second for temporal domains).
	ZeroWidth domain.Value
}

// Expansion is one side of an ExpandRangeDistinct call.
type Expansion struct {
	Mul float64
	Add domain.Value

	// ZeroWidth overrides the shared zero width for this side when set.
	ZeroWidth domain.Value
}

// ExpandRange grows limits by (hi-lo)*Mul + Add on each side.
//
// When the range has zero width the result is centred on lo with a total
// width of ZeroWidth, so (0, 0) with default options becomes (-0.5, 0.5).
// A missing bound gives a range of missing bounds.
func ExpandRange(limits Range, opts ExpandOptions) (Range, error) {
	lo, err := expandSide(limits, opts.Mul, opts.Add, opts.ZeroWidth, -1)
	if err != nil {
		return Range{}, err
	}
	hi, err := expandSide(limits, opts.Mul, opts.Add, opts.ZeroWidth, 1)
	if err != nil {
		return Range{}, err
	}
	return Range{Lo: lo, Hi: hi}, nil
}

// ExpandRangeDistinct is ExpandRange with separate expansions for the low
// and the high end. Each side may override the shared zeroWidth.
func ExpandRangeDistinct(limits Range, lower, upper Expansion, zeroWidth domain.Value) (Range, error) {
	lzw, uzw := zeroWidth, zeroWidth
	if lower.ZeroWidth != nil {
		lzw = lower.ZeroWidth
	}
	if upper.ZeroWidth != nil {
		uzw = upper.ZeroWidth
	}

	lo, err := expandSide(limits, lower.Mul, lower.Add, lzw, -1)
	if err != nil {
		return Range{}, err
	}
	hi, err := expandSide(limits, upper.Mul, upper.Add, uzw, 1)
	if err != nil {
		return Range{}, err
	}
	return Range{Lo: lo, Hi: hi}, nil
}

// ExpansionsOf interprets a (mul_lo, add_lo) or (mul_lo, add_lo, mul_hi,
// add_hi) tuple. A 2-tuple applies to both ends. The multipliers must be
// non-missing reals; the additive terms may be of any span kind.
func ExpansionsOf(tuple []domain.Value) (lower, upper Expansion, err error) {
	if len(tuple) != 2 && len(tuple) != 4 {
		return Expansion{}, Expansion{}, domain.NewStructural("expansion needs 2 or 4 elements, got %d", len(tuple))
	}
	lower, err = expansionAt(tuple, 0)
	if err != nil {
		return Expansion{}, Expansion{}, err
	}
	if len(tuple) == 2 {
		return lower, lower, nil
	}
	upper, err = expansionAt(tuple, 2)
	if err != nil {
		return Expansion{}, Expansion{}, err
	}
	return lower, upper, nil
}

func expansionAt(tuple []domain.Value, i int) (Expansion, error) {
	mul, ok := tuple[i].(domain.Real)
	if !ok || mul.IsMissing() {
		return Expansion{}, domain.NewTypeMismatchAt(i, "expansion multiplier must be a real number")
	}
	if tuple[i+1] == nil {
		return Expansion{}, domain.NewTypeMismatchAt(i+1, "nil value has no domain")
	}
	return Expansion{Mul: float64(mul), Add: tuple[i+1]}, nil
}

// expandSide computes one end of an expanded range. dir is -1 for the low
// end and +1 for the high end.
func expandSide(limits Range, mul float64, add, zeroWidth domain.Value, dir int) (domain.Value, error) {
	kind, err := limits.Kind()
	if err != nil {
		return nil, err
	}
	span := domain.SpanKind(kind)

	if add == nil {
		if add, err = domain.Zero(span); err != nil {
			return nil, err
		}
	}
	if zeroWidth == nil {
		if zeroWidth, err = domain.UnitOf(kind); err != nil {
			return nil, err
		}
	}
	if add.Kind() != span {
		return nil, domain.NewTypeMismatch("additive expansion must be a %s for a %s range, got %s", span, kind, add.Kind())
	}
	if zeroWidth.Kind() != span {
		return nil, domain.NewTypeMismatch("zero width must be a %s for a %s range, got %s", span, kind, zeroWidth.Kind())
	}

	if limits.HasMissing() {
		return domain.NA(kind), nil
	}

	zero, err := isZeroRange(limits)
	if err != nil {
		return nil, err
	}

	var pad domain.Value
	anchor := limits.Lo
	if zero {
		if pad, err = domain.Scale(zeroWidth, 0.5); err != nil {
			return nil, err
		}
	} else {
		if dir > 0 {
			anchor = limits.Hi
		}
		pad = add
		if mul != 0 {
			width, err := limits.Span()
			if err != nil {
				return nil, err
			}
			grow, err := domain.Scale(width, mul)
			if err != nil {
				return nil, err
			}
			if pad, err = domain.Add(grow, add); err != nil {
				return nil, err
			}
		}
	}

	if dir < 0 {
		return domain.Sub(anchor, pad)
	}
	return domain.Add(anchor, pad)
}
