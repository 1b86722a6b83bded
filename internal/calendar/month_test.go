package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCeilMonth(t *testing.T) {
	assert.Equal(t, date(2020, 2, 1), CeilMonth(date(2020, 1, 11)))
	assert.Equal(t, date(2020, 1, 1), CeilMonth(date(2020, 1, 1)))
	assert.Equal(t, date(2021, 1, 1), CeilMonth(date(2020, 12, 31)))

	// One nanosecond past the boundary is no longer a month start.
	assert.Equal(t, date(2020, 2, 1), CeilMonth(date(2020, 1, 1).Add(time.Nanosecond)))
}

func TestRoundMonth(t *testing.T) {
	tests := []struct {
		in   time.Time
		want time.Time
	}{
		{date(2000, 4, 23), date(2000, 5, 1)},
		{date(2000, 4, 14), date(2000, 4, 1)},
		{date(2000, 4, 15), date(2000, 4, 1)},
		{date(2000, 4, 16), date(2000, 5, 1)},
		{date(2000, 2, 14), date(2000, 2, 1)},
		{date(2000, 2, 15), date(2000, 3, 1)},
		{date(1999, 12, 31), date(2000, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.in.Format("2006-01-02"), func(t *testing.T) {
			assert.Equal(t, tt.want, RoundMonth(tt.in))
		})
	}
}

func TestMonthPreservesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	got := CeilMonth(time.Date(2020, 1, 11, 8, 0, 0, 0, loc))
	assert.Equal(t, time.Date(2020, 2, 1, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2021, time.January))
	assert.Equal(t, 29, DaysInMonth(2020, time.February))
	assert.Equal(t, 28, DaysInMonth(1900, time.February))
	assert.Equal(t, 30, DaysInMonth(2021, time.April))
}
