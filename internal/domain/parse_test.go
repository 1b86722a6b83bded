package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.5", "1.5"},
		{"-2", "-2"},
		{"inf", "inf"},
		{"-inf", "-inf"},
		{"NA", "NA"},
		{"nan", "NA"},
		{" 1e3 ", "1000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := Parse(KindReal, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Format(v))
		})
	}

	_, err := Parse(KindReal, "abc")
	assert.True(t, IsTypeMismatch(err))
}

func TestParseInstant(t *testing.T) {
	v, err := Parse(KindInstant, "2020-01-11")
	require.NoError(t, err)
	assert.True(t, v.(Instant).Equal(time.Date(2020, 1, 11, 0, 0, 0, 0, time.UTC)))

	v, err = Parse(KindInstant, "2000-01-01T00:00:00.0001Z")
	require.NoError(t, err)
	assert.Equal(t, 100_000, v.(Instant).Nanosecond())
	assert.Equal(t, "2000-01-01T00:00:00.0001Z", Format(v))

	v, err = Parse(KindInstant, "na")
	require.NoError(t, err)
	assert.Equal(t, NA(KindInstant), v)

	_, err = Parse(KindInstant, "yesterday")
	assert.True(t, IsTypeMismatch(err))
}

func TestParseDuration(t *testing.T) {
	v, err := Parse(KindDuration, "1h30m")
	require.NoError(t, err)
	assert.Equal(t, Duration(90*time.Minute), v)
	assert.Equal(t, "1h30m0s", Format(v))

	_, err = Parse(KindDuration, "5")
	assert.True(t, IsTypeMismatch(err))
}

func TestRealsFloats(t *testing.T) {
	in := []float64{1, math.NaN(), math.Inf(-1)}
	vs := Reals(in)
	assert.True(t, vs[1].IsMissing())

	out, err := Floats([]Value{Real(1), NA(KindReal), Real(math.Inf(-1))})
	require.NoError(t, err)
	assert.Equal(t, 1.0, out[0])
	assert.True(t, math.IsNaN(out[1]))
	assert.True(t, math.IsInf(out[2], -1))

	_, err = Floats([]Value{Duration(1)})
	assert.True(t, IsTypeMismatch(err))
}

func TestFormatAll(t *testing.T) {
	got := FormatAll([]Value{Real(1), NA(KindReal), Duration(2 * time.Second)})
	assert.Equal(t, []string{"1", "NA", "2s"}, got)
}
