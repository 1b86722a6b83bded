package harness

import (
	"encoding/json"
	"errors"
	"math"
	"time"

	"github.com/roach88/scalekit/internal/bounds"
	"github.com/roach88/scalekit/internal/domain"
)

// valueOf converts one raw scenario value into kind. Null is missing,
// text is parsed, and numbers are reals or, for durations, seconds.
func valueOf(raw any, kind domain.Kind) (domain.Value, error) {
	switch v := raw.(type) {
	case nil:
		return domain.NA(kind), nil
	case string:
		return domain.Parse(kind, v)
	case time.Time:
		if kind != domain.KindInstant {
			return nil, domain.NewTypeMismatch("timestamp %s given for a %s value", v.Format(time.RFC3339), kind)
		}
		return domain.NewInstant(v), nil
	case bool:
		return nil, domain.NewTypeMismatch("boolean %v is not a %s value", v, kind)
	}

	f, ok := number(raw)
	if !ok {
		return nil, domain.NewTypeMismatch("unsupported scenario value of type %T", raw)
	}
	switch kind {
	case domain.KindReal:
		return domain.Real(f), nil
	case domain.KindDuration:
		if math.IsNaN(f) {
			return domain.NA(kind), nil
		}
		return domain.Duration(time.Duration(math.Round(f * float64(time.Second)))), nil
	default:
		return nil, domain.NewTypeMismatch("number %v given for a %s value; write instants as text", f, kind)
	}
}

// number extracts a float from the numeric types YAML and JSON decoders produce.
func number(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// valuesOf converts a raw sequence, reporting the failing index.
func valuesOf(raw []any, kind domain.Kind) ([]domain.Value, error) {
	out := make([]domain.Value, len(raw))
	for i, r := range raw {
		v, err := valueOf(r, kind)
		if err != nil {
			var de *domain.Error
			if errors.As(err, &de) && de.Index < 0 {
				de.Index = i
			}
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// optionalValue converts raw, leaving nil for an absent field.
func optionalValue(raw any, kind domain.Kind) (domain.Value, error) {
	if raw == nil {
		return nil, nil
	}
	return valueOf(raw, kind)
}

// rangeOf converts a raw two-element tuple.
func rangeOf(raw []any, kind domain.Kind) (bounds.Range, error) {
	values, err := valuesOf(raw, kind)
	if err != nil {
		return bounds.Range{}, err
	}
	return bounds.RangeOf(values)
}

// optionalRange converts raw, returning nil for an absent tuple.
func optionalRange(raw []any, kind domain.Kind) (*bounds.Range, error) {
	if raw == nil {
		return nil, nil
	}
	r, err := rangeOf(raw, kind)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// expandTuple converts (mul, add[, mul, add]); multipliers are reals and
// additive terms belong to the span kind.
func expandTuple(raw []any, kind domain.Kind) ([]domain.Value, error) {
	out := make([]domain.Value, len(raw))
	for i, r := range raw {
		k := domain.SpanKind(kind)
		if i%2 == 0 {
			k = domain.KindReal
		}
		v, err := valueOf(r, k)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// years converts a raw pair of whole numbers.
func years(raw []any) ([2]int, error) {
	if len(raw) != 2 {
		return [2]int{}, domain.NewStructural("a year pair needs exactly 2 elements, got %d", len(raw))
	}
	var out [2]int
	for i, r := range raw {
		f, ok := yearNumber(r)
		if !ok || f != math.Trunc(f) || math.IsInf(f, 0) {
			return out, domain.NewTypeMismatchAt(i, "year %v is not a whole number", r)
		}
		out[i] = int(f)
	}
	return out, nil
}

// yearNumber accepts years written as numbers or as text.
func yearNumber(raw any) (float64, bool) {
	s, ok := raw.(string)
	if !ok {
		return number(raw)
	}
	v, err := domain.Parse(domain.KindReal, s)
	if err != nil || v.IsMissing() {
		return 0, false
	}
	f, err := domain.Numeric(v)
	return f, err == nil
}

// target returns the to interval, or def when absent.
func target(to []float64, def [2]float64) ([2]float64, error) {
	switch len(to) {
	case 0:
		return def, nil
	case 2:
		return [2]float64{to[0], to[1]}, nil
	}
	return def, domain.NewStructural("to needs exactly 2 elements, got %d", len(to))
}
