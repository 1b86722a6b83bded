package domain

import (
	"math"
	"time"
)

// Kind identifies one of the three ordered domains.
type Kind int

const (
	// KindUnknown is the zero Kind; no valid Value reports it.
	KindUnknown Kind = iota
	KindReal
	KindInstant
	KindDuration
)

// String returns the lower-case domain name used in scenario files and flags.
func (k Kind) String() string {
	switch k {
	case KindReal:
		return "real"
	case KindInstant:
		return "instant"
	case KindDuration:
		return "duration"
	default:
		return "unknown"
	}
}

// ParseKind maps a domain name to its Kind. The empty string means real.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "real":
		return KindReal, nil
	case "instant", "datetime":
		return KindInstant, nil
	case "duration", "timedelta":
		return KindDuration, nil
	default:
		return KindUnknown, NewInvalidValue("unknown domain %q: must be one of real, instant, duration", s)
	}
}

// SpanKind returns the kind of the difference of two values of kind k.
// Instant spans are durations; the other domains are closed under subtraction.
func SpanKind(k Kind) Kind {
	if k == KindInstant {
		return KindDuration
	}
	return k
}

// Value is a sealed interface over the ordered domains.
// Only Real, Instant, Duration and Missing implement it.
type Value interface {
	// Kind reports the domain of the value.
	Kind() Kind

	// IsMissing reports whether the value is a missing marker.
	IsMissing() bool

	domainValue() // Sealed
}

// Real is a floating point value. NaN counts as missing; infinities are
// ordinary ordered values.
type Real float64

func (Real) domainValue() {}

// Kind implements Value.
func (Real) Kind() Kind { return KindReal }

// IsMissing implements Value. NaN is missing.
func (r Real) IsMissing() bool { return math.IsNaN(float64(r)) }

// Instant is a calendar point.
type Instant struct {
	time.Time
}

func (Instant) domainValue() {}

// Kind implements Value.
func (Instant) Kind() Kind { return KindInstant }

// IsMissing implements Value. An Instant is never missing; use NA(KindInstant).
func (Instant) IsMissing() bool { return false }

// NewInstant wraps t.
func NewInstant(t time.Time) Instant {
	return Instant{Time: t}
}

// Duration is a signed span of time.
type Duration time.Duration

func (Duration) domainValue() {}

// Kind implements Value.
func (Duration) Kind() Kind { return KindDuration }

// IsMissing implements Value.
func (Duration) IsMissing() bool { return false }

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Missing is the missing-value marker of a domain.
type Missing struct {
	kind Kind
}

func (Missing) domainValue() {}

// Kind implements Value.
func (m Missing) Kind() Kind { return m.kind }

// IsMissing implements Value.
func (Missing) IsMissing() bool { return true }

// NA returns the missing marker of kind k.
func NA(k Kind) Missing {
	return Missing{kind: k}
}

// IsMissing reports whether v is nil or a missing marker.
func IsMissing(v Value) bool {
	return v == nil || v.IsMissing()
}

// IsInf returns +1 or -1 for Real infinities and 0 for every other value.
// Instants and durations have no infinity representation.
func IsInf(v Value) int {
	r, ok := v.(Real)
	if !ok {
		return 0
	}
	switch {
	case math.IsInf(float64(r), 1):
		return 1
	case math.IsInf(float64(r), -1):
		return -1
	default:
		return 0
	}
}

// Zero returns the additive zero of span kind k.
// Instants have no zero; asking for one is a TYPE_MISMATCH.
func Zero(k Kind) (Value, error) {
	switch k {
	case KindReal:
		return Real(0), nil
	case KindDuration:
		return Duration(0), nil
	default:
		return nil, NewTypeMismatch("domain %s has no additive zero", k)
	}
}

// UnitOf returns the default padding unit for values of kind k:
// 1 for reals and one second for instants and durations.
func UnitOf(k Kind) (Value, error) {
	switch k {
	case KindReal:
		return Real(1), nil
	case KindInstant, KindDuration:
		return Duration(time.Second), nil
	default:
		return nil, NewTypeMismatch("domain %s has no unit", k)
	}
}
