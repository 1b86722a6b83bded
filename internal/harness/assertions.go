package harness

import (
	"fmt"
	"math"

	"github.com/roach88/scalekit/internal/domain"
)

// checkExpect compares a step outcome with its expectation and returns
// one message per mismatch. A step without expectation only fails on error.
func checkExpect(exp *Expect, out Outcome, err error) []string {
	if exp == nil {
		if err != nil {
			return []string{fmt.Sprintf("unexpected error: %v", err)}
		}
		return nil
	}

	if exp.Error != "" {
		if err == nil {
			return []string{fmt.Sprintf("expected error %s, got none", exp.Error)}
		}
		if code := domain.CodeOf(err); string(code) != exp.Error {
			return []string{fmt.Sprintf("expected error %s, got %v", exp.Error, err)}
		}
		return nil
	}
	if err != nil {
		return []string{fmt.Sprintf("unexpected error: %v", err)}
	}

	tol := exp.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	var msgs []string
	if exp.Values != nil {
		msgs = append(msgs, compareSequence("values", exp.Values, out.Values, tol)...)
	}
	if exp.Range != nil {
		if out.Range == nil {
			msgs = append(msgs, "expected a range result")
		} else {
			msgs = append(msgs, compareSequence("range", exp.Range, out.Range.Values(), tol)...)
		}
	}
	if exp.Bool != nil {
		switch {
		case out.Bool == nil:
			msgs = append(msgs, "expected a boolean result")
		case *out.Bool != *exp.Bool:
			msgs = append(msgs, fmt.Sprintf("expected %v, got %v", *exp.Bool, *out.Bool))
		}
	}
	return msgs
}

// compareSequence converts each expected element into the domain of the
// actual element at the same index and compares them.
func compareSequence(field string, want []any, got []domain.Value, tol float64) []string {
	if len(want) != len(got) {
		return []string{fmt.Sprintf("%s: expected %d elements, got %d", field, len(want), len(got))}
	}
	var msgs []string
	for i := range want {
		w, err := valueOf(want[i], got[i].Kind())
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("%s[%d]: bad expectation: %v", field, i, err))
			continue
		}
		if !matches(w, got[i], tol) {
			msgs = append(msgs, fmt.Sprintf("%s[%d]: expected %s, got %s", field, i, domain.Format(w), domain.Format(got[i])))
		}
	}
	return msgs
}

// matches compares two values of one domain. Reals match within tol;
// infinities only match themselves; missing matches missing.
func matches(want, got domain.Value, tol float64) bool {
	if want.IsMissing() || got.IsMissing() {
		return want.IsMissing() && got.IsMissing()
	}
	w, wok := want.(domain.Real)
	g, gok := got.(domain.Real)
	if wok && gok {
		if math.IsInf(float64(w), 0) || math.IsInf(float64(g), 0) {
			return w == g
		}
		return math.Abs(float64(w)-float64(g)) <= tol
	}
	return domain.Equal(want, got)
}
