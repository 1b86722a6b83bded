// Package calendar adjusts datetime limits to calendar boundaries: month
// flooring and rounding, whole-unit steps, and widening instant limits
// so an axis spans at least a given number of units.
package calendar

import "time"

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FloorMonth returns midnight on the first day of t's month, in t's location.
func FloorMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// CeilMonth returns the first month start at or after t.
// An exact month start is returned unchanged.
func CeilMonth(t time.Time) time.Time {
	floor := FloorMonth(t)
	if floor.Equal(t) {
		return t
	}
	return floor.AddDate(0, 1, 0)
}

// RoundMonth returns the nearer month start. Days in the first half of
// the month (day <= DaysInMonth/2) round down, the rest round up.
func RoundMonth(t time.Time) time.Time {
	if t.Day() <= DaysInMonth(t.Year(), t.Month())/2 {
		return FloorMonth(t)
	}
	return CeilMonth(t)
}
