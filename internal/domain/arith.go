package domain

import (
	"errors"
	"math"
	"time"
)

// KindOf returns the common kind of values.
// Fails with TYPE_MISMATCH when values is empty, contains nil, or spans
// more than one domain.
func KindOf(values ...Value) (Kind, error) {
	if len(values) == 0 {
		return KindUnknown, NewTypeMismatch("cannot infer domain of an empty sequence")
	}
	kind := KindUnknown
	for i, v := range values {
		if v == nil {
			return KindUnknown, NewTypeMismatchAt(i, "nil value has no domain")
		}
		k := v.Kind()
		if k == KindUnknown {
			return KindUnknown, NewTypeMismatchAt(i, "value has no domain")
		}
		if kind == KindUnknown {
			kind = k
			continue
		}
		if k != kind {
			return KindUnknown, NewTypeMismatchAt(i, "mixed domains: %s and %s", kind, k)
		}
	}
	return kind, nil
}

// FromAny classifies a Go value into the domain it belongs to.
// Numbers become Real, time.Time becomes Instant and time.Duration becomes
// Duration. Strings, booleans, nil and every other type are TYPE_MISMATCH.
func FromAny(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		if v.Kind() == KindUnknown {
			return nil, NewTypeMismatch("value has no domain")
		}
		return v, nil
	case float64:
		return Real(v), nil
	case float32:
		return Real(v), nil
	case int:
		return Real(v), nil
	case int8:
		return Real(v), nil
	case int16:
		return Real(v), nil
	case int32:
		return Real(v), nil
	case int64:
		return Real(v), nil
	case uint:
		return Real(v), nil
	case uint8:
		return Real(v), nil
	case uint16:
		return Real(v), nil
	case uint32:
		return Real(v), nil
	case uint64:
		return Real(v), nil
	case time.Time:
		return Instant{Time: v}, nil
	case *time.Time:
		if v == nil {
			return NA(KindInstant), nil
		}
		return Instant{Time: *v}, nil
	case time.Duration:
		return Duration(v), nil
	case nil:
		return nil, NewTypeMismatch("nil has no domain")
	default:
		return nil, NewTypeMismatch("unsupported type %T: not an ordered value", x)
	}
}

// Values classifies every element of xs and checks they share one domain.
func Values(xs ...any) ([]Value, error) {
	out := make([]Value, len(xs))
	for i, x := range xs {
		v, err := FromAny(x)
		if err != nil {
			var de *Error
			if errors.As(err, &de) {
				de.Index = i
			}
			return nil, err
		}
		out[i] = v
	}
	if len(out) > 0 {
		if _, err := KindOf(out...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Sub returns a - b.
//
// Legal combinations:
//   - Real - Real -> Real
//   - Instant - Instant -> Duration
//   - Instant - Duration -> Instant
//   - Duration - Duration -> Duration
//
// A missing operand yields the missing marker of the result kind.
func Sub(a, b Value) (Value, error) {
	ka, kb, err := pairKinds(a, b)
	if err != nil {
		return nil, err
	}

	var rk Kind
	switch {
	case ka == KindReal && kb == KindReal:
		rk = KindReal
	case ka == KindInstant && kb == KindInstant:
		rk = KindDuration
	case ka == KindInstant && kb == KindDuration:
		rk = KindInstant
	case ka == KindDuration && kb == KindDuration:
		rk = KindDuration
	default:
		return nil, NewTypeMismatch("cannot subtract %s from %s", kb, ka)
	}
	if a.IsMissing() || b.IsMissing() {
		return NA(rk), nil
	}

	switch x := a.(type) {
	case Real:
		return x - b.(Real), nil
	case Instant:
		switch y := b.(type) {
		case Instant:
			return Duration(x.Sub(y.Time)), nil
		case Duration:
			return Instant{Time: x.Add(-y.Std())}, nil
		}
	case Duration:
		return x - b.(Duration), nil
	}
	return nil, NewTypeMismatch("cannot subtract %T from %T", b, a)
}

// Add returns a + b.
//
// Legal combinations:
//   - Real + Real -> Real
//   - Instant + Duration -> Instant (either order)
//   - Duration + Duration -> Duration
//
// A missing operand yields the missing marker of the result kind.
func Add(a, b Value) (Value, error) {
	ka, kb, err := pairKinds(a, b)
	if err != nil {
		return nil, err
	}

	var rk Kind
	switch {
	case ka == KindReal && kb == KindReal:
		rk = KindReal
	case ka == KindInstant && kb == KindDuration, ka == KindDuration && kb == KindInstant:
		rk = KindInstant
	case ka == KindDuration && kb == KindDuration:
		rk = KindDuration
	default:
		return nil, NewTypeMismatch("cannot add %s to %s", kb, ka)
	}
	if a.IsMissing() || b.IsMissing() {
		return NA(rk), nil
	}

	switch x := a.(type) {
	case Real:
		return x + b.(Real), nil
	case Instant:
		return Instant{Time: x.Add(b.(Duration).Std())}, nil
	case Duration:
		switch y := b.(type) {
		case Duration:
			return x + y, nil
		case Instant:
			return Instant{Time: y.Add(x.Std())}, nil
		}
	}
	return nil, NewTypeMismatch("cannot add %T to %T", b, a)
}

// Scale returns v * k for reals and durations. Durations are rounded to
// the nearest nanosecond. Instants cannot be scaled.
func Scale(v Value, k float64) (Value, error) {
	if v == nil {
		return nil, NewTypeMismatch("nil value has no domain")
	}
	switch v.Kind() {
	case KindReal, KindDuration:
	default:
		return nil, NewTypeMismatch("cannot scale a %s", v.Kind())
	}
	if v.IsMissing() {
		return NA(v.Kind()), nil
	}
	switch x := v.(type) {
	case Real:
		return Real(float64(x) * k), nil
	case Duration:
		return Duration(math.Round(float64(x) * k)), nil
	}
	return nil, NewTypeMismatch("cannot scale %T", v)
}

// Ratio returns a / b for two reals or two durations.
// Missing operands give NaN.
func Ratio(a, b Value) (float64, error) {
	ka, kb, err := pairKinds(a, b)
	if err != nil {
		return math.NaN(), err
	}
	if ka != kb || ka == KindInstant {
		return math.NaN(), NewTypeMismatch("cannot divide %s by %s", ka, kb)
	}
	if a.IsMissing() || b.IsMissing() {
		return math.NaN(), nil
	}
	switch x := a.(type) {
	case Real:
		return float64(x) / float64(b.(Real)), nil
	case Duration:
		return float64(x) / float64(b.(Duration)), nil
	}
	return math.NaN(), NewTypeMismatch("cannot divide %T by %T", a, b)
}

// Compare orders two values of the same domain.
// It returns -1, 0 or +1 and ordered=true, or ordered=false when either
// operand is missing. Values from different domains are a TYPE_MISMATCH.
func Compare(a, b Value) (cmp int, ordered bool, err error) {
	ka, kb, err := pairKinds(a, b)
	if err != nil {
		return 0, false, err
	}
	if ka != kb {
		return 0, false, NewTypeMismatch("cannot compare %s with %s", ka, kb)
	}
	if a.IsMissing() || b.IsMissing() {
		return 0, false, nil
	}
	switch x := a.(type) {
	case Real:
		y := b.(Real)
		switch {
		case x < y:
			return -1, true, nil
		case x > y:
			return 1, true, nil
		}
		return 0, true, nil
	case Instant:
		return x.Compare(b.(Instant).Time), true, nil
	case Duration:
		y := b.(Duration)
		switch {
		case x < y:
			return -1, true, nil
		case x > y:
			return 1, true, nil
		}
		return 0, true, nil
	}
	return 0, false, NewTypeMismatch("cannot compare %T with %T", a, b)
}

// Equal reports whether a and b are the same value of the same domain.
// Two missing markers of one domain are equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil || a.Kind() != b.Kind() {
		return false
	}
	if a.IsMissing() || b.IsMissing() {
		return a.IsMissing() && b.IsMissing()
	}
	cmp, ok, err := Compare(a, b)
	return err == nil && ok && cmp == 0
}

// MinMax returns the smallest and largest non-missing values.
// When every value is missing both results are the domain's missing marker.
func MinMax(values []Value) (lo, hi Value, err error) {
	kind, err := KindOf(values...)
	if err != nil {
		return nil, nil, err
	}
	lo, hi = NA(kind), NA(kind)
	for _, v := range values {
		if v.IsMissing() {
			continue
		}
		if lo.IsMissing() {
			lo, hi = v, v
			continue
		}
		if c, _, _ := Compare(v, lo); c < 0 {
			lo = v
		}
		if c, _, _ := Compare(v, hi); c > 0 {
			hi = v
		}
	}
	return lo, hi, nil
}

// Numeric projects v onto the real line: reals are themselves, instants
// are Unix seconds (with fractional part) and durations are seconds.
// Missing values give NaN.
func Numeric(v Value) (float64, error) {
	if v == nil {
		return math.NaN(), NewTypeMismatch("nil value has no domain")
	}
	if v.IsMissing() {
		return math.NaN(), nil
	}
	switch x := v.(type) {
	case Real:
		return float64(x), nil
	case Instant:
		return float64(x.Unix()) + float64(x.Nanosecond())/1e9, nil
	case Duration:
		return x.Std().Seconds(), nil
	}
	return math.NaN(), NewTypeMismatch("unsupported value %T", v)
}

// pairKinds returns the kinds of a and b, failing on nil or unknown kinds.
func pairKinds(a, b Value) (Kind, Kind, error) {
	if a == nil || b == nil {
		return KindUnknown, KindUnknown, NewTypeMismatch("nil value has no domain")
	}
	ka, kb := a.Kind(), b.Kind()
	if ka == KindUnknown || kb == KindUnknown {
		return KindUnknown, KindUnknown, NewTypeMismatch("value has no domain")
	}
	return ka, kb, nil
}
