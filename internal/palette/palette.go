// Package palette provides continuous numeric palettes that map values in
// [0, 1] onto an output range through bounds.Rescale.
package palette

import (
	"math"

	"github.com/roach88/scalekit/internal/bounds"
	"github.com/roach88/scalekit/internal/domain"
)

// Continuous maps a sequence of proportions onto palette values.
// NaN inputs map to NaN.
type Continuous interface {
	Map(x []float64) ([]float64, error)
}

var unit = bounds.RealRange(0, 1)

// RescalePalette maps [0, 1] linearly onto Range.
// Inputs outside [0, 1] extrapolate past Range; they are not clipped.
type RescalePalette struct {
	Range [2]float64
}

// NewRescalePalette returns a RescalePalette with the default range (0.1, 1).
func NewRescalePalette() RescalePalette {
	return RescalePalette{Range: [2]float64{0.1, 1}}
}

// Map implements Continuous.
func (p RescalePalette) Map(x []float64) ([]float64, error) {
	return rescale(x, p.Range, nil)
}

// AreaPalette maps values in area space onto point sizes: the square root
// of x is rescaled from [0, 1] onto Range.
type AreaPalette struct {
	Range [2]float64
}

// NewAreaPalette returns an AreaPalette with the default range (1, 6).
func NewAreaPalette() AreaPalette {
	return AreaPalette{Range: [2]float64{1, 6}}
}

// Map implements Continuous. Negative inputs have no square root and map to NaN.
func (p AreaPalette) Map(x []float64) ([]float64, error) {
	return rescale(x, p.Range, math.Sqrt)
}

// AbsAreaPalette is AreaPalette over |x|, onto [0, Max].
type AbsAreaPalette struct {
	Max float64
}

// Map implements Continuous.
func (p AbsAreaPalette) Map(x []float64) ([]float64, error) {
	return rescale(x, [2]float64{0, p.Max}, func(v float64) float64 {
		return math.Sqrt(math.Abs(v))
	})
}

// IdentityPalette returns its input.
type IdentityPalette struct{}

// Map implements Continuous. The result is a copy.
func (IdentityPalette) Map(x []float64) ([]float64, error) {
	out := make([]float64, len(x))
	copy(out, x)
	return out, nil
}

func rescale(x []float64, to [2]float64, transform func(float64) float64) ([]float64, error) {
	values := make([]domain.Value, len(x))
	for i, v := range x {
		if transform != nil {
			v = transform(v)
		}
		values[i] = domain.Real(v)
	}
	out, err := bounds.Rescale(values, to, &unit)
	if err != nil {
		return nil, err
	}
	return domain.Floats(out)
}
