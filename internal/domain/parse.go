package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// MissingText is the textual form of a missing value in every domain.
const MissingText = "NA"

// instantLayouts are tried in order when parsing an Instant.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse reads the textual form of a value of kind k.
//
//   - Real: any strconv float, plus "inf", "-inf" and "NaN"
//   - Instant: RFC 3339 with optional fraction, or a bare date (UTC)
//   - Duration: Go duration syntax ("1h30m", "250us")
//
// "NA" (any case) is the missing marker in every domain.
func Parse(k Kind, s string) (Value, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, MissingText) {
		return NA(k), nil
	}

	switch k {
	case KindReal:
		switch strings.ToLower(s) {
		case "inf", "+inf":
			return Real(math.Inf(1)), nil
		case "-inf":
			return Real(math.Inf(-1)), nil
		case "nan":
			return NA(KindReal), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, NewTypeMismatch("%q is not a real number", s)
		}
		return Real(f), nil

	case KindInstant:
		for _, layout := range instantLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return Instant{Time: t}, nil
			}
		}
		return nil, NewTypeMismatch("%q is not an instant (want RFC 3339 or YYYY-MM-DD)", s)

	case KindDuration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, NewTypeMismatch("%q is not a duration", s)
		}
		return Duration(d), nil
	}
	return nil, NewInvalidValue("cannot parse values of domain %s", k)
}

// Format returns the textual form of v, the inverse of Parse.
func Format(v Value) string {
	if IsMissing(v) {
		return MissingText
	}
	switch x := v.(type) {
	case Real:
		f := float64(x)
		switch {
		case math.IsInf(f, 1):
			return "inf"
		case math.IsInf(f, -1):
			return "-inf"
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case Instant:
		return x.Format(time.RFC3339Nano)
	case Duration:
		return x.Std().String()
	}
	return "?"
}

// FormatAll formats every element of values.
func FormatAll(values []Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Format(v)
	}
	return out
}

// Reals wraps a float slice. NaN elements become missing reals.
func Reals(xs []float64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = Real(x)
	}
	return out
}

// Floats unwraps a slice of reals; missing elements become NaN.
// Any non-real element is a TYPE_MISMATCH.
func Floats(values []Value) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		if v == nil || v.Kind() != KindReal {
			return nil, NewTypeMismatchAt(i, "expected a real value")
		}
		if v.IsMissing() {
			out[i] = math.NaN()
			continue
		}
		out[i] = float64(v.(Real))
	}
	return out, nil
}
