package calendar

import (
	"strings"
	"time"

	"github.com/roach88/scalekit/internal/domain"
)

// Unit is a datetime step used to widen limits.
type Unit int

const (
	Microsecond Unit = iota
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var unitNames = [...]string{
	Microsecond: "microsecond",
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Month:       "month",
	Year:        "year",
}

// String returns the lowercase unit name.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "unknown"
	}
	return unitNames[u]
}

// ParseUnit accepts a unit name in singular or plural form, in any case.
func ParseUnit(s string) (Unit, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s")
	for u, n := range unitNames {
		if n == name {
			return Unit(u), nil
		}
	}
	return 0, domain.NewInvalidValue("unknown datetime unit %q", s)
}

// Fixed reports whether the unit has a constant length.
func (u Unit) Fixed() bool {
	return u <= Hour
}

// Length returns the length of a fixed unit, and zero for calendar units.
func (u Unit) Length() time.Duration {
	switch u {
	case Microsecond:
		return time.Microsecond
	case Millisecond:
		return time.Millisecond
	case Second:
		return time.Second
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	}
	return 0
}

// Add steps t by n units. Calendar units follow time.AddDate, so adding
// months to the 31st normalizes into the following month.
func (u Unit) Add(t time.Time, n int) time.Time {
	switch u {
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return t.AddDate(0, n, 0)
	case Year:
		return t.AddDate(n, 0, 0)
	}
	return t.Add(time.Duration(n) * u.Length())
}

// Floor truncates t to the start of its unit in t's location.
// Weeks start on Monday.
func (u Unit) Floor(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	ns, loc := t.Nanosecond(), t.Location()
	switch u {
	case Microsecond:
		return time.Date(y, mo, d, h, mi, s, ns/1e3*1e3, loc)
	case Millisecond:
		return time.Date(y, mo, d, h, mi, s, ns/1e6*1e6, loc)
	case Second:
		return time.Date(y, mo, d, h, mi, s, 0, loc)
	case Minute:
		return time.Date(y, mo, d, h, mi, 0, 0, loc)
	case Hour:
		return time.Date(y, mo, d, h, 0, 0, 0, loc)
	case Day:
		return time.Date(y, mo, d, 0, 0, 0, 0, loc)
	case Week:
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(y, mo, d-back, 0, 0, 0, 0, loc)
	case Month:
		return FloorMonth(t)
	default:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	}
}

// Ceil returns the first unit boundary at or after t.
func (u Unit) Ceil(t time.Time) time.Time {
	floor := u.Floor(t)
	if floor.Equal(t) {
		return t
	}
	return u.Add(floor, 1)
}

// between counts whole calendar units from lo to hi, both on boundaries.
func (u Unit) between(lo, hi time.Time) int {
	switch u {
	case Year:
		return hi.Year() - lo.Year()
	case Month:
		return (hi.Year()-lo.Year())*12 + int(hi.Month()) - int(lo.Month())
	}
	days := civilDate(hi).Sub(civilDate(lo)) / (24 * time.Hour)
	if u == Week {
		return int(days) / 7
	}
	return int(days)
}

// civilDate drops the clock and location so day counts ignore DST.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
