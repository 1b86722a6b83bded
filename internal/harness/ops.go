package harness

import (
	"fmt"
	"slices"
	"time"

	"github.com/roach88/scalekit/internal/bounds"
	"github.com/roach88/scalekit/internal/calendar"
	"github.com/roach88/scalekit/internal/domain"
	"github.com/roach88/scalekit/internal/palette"
)

// Outcome is the result of one step. Exactly one of Values, Range or Bool
// is set on success.
type Outcome struct {
	// Kind is the domain the step ran in.
	Kind domain.Kind

	Values []domain.Value
	Range  *bounds.Range
	Bool   *bool
}

type opFunc func(s Step, kind domain.Kind) (Outcome, error)

type op struct {
	run  opFunc
	kind domain.Kind // natural domain when neither step nor scenario names one
}

var registry = map[string]op{
	"expand_range":           {expandRange, domain.KindReal},
	"expand_range_distinct":  {expandRangeDistinct, domain.KindReal},
	"rescale":                {rescale, domain.KindReal},
	"rescale_max":            {rescaleMax, domain.KindReal},
	"rescale_mid":            {rescaleMid, domain.KindReal},
	"censor":                 {censor, domain.KindReal},
	"squish":                 {squish, domain.KindReal},
	"squish_infinite":        {squishInfinite, domain.KindReal},
	"zero_range":             {zeroRange, domain.KindReal},
	"floor_month":            {monthOp(calendar.FloorMonth), domain.KindInstant},
	"ceil_month":             {monthOp(calendar.CeilMonth), domain.KindInstant},
	"round_month":            {monthOp(calendar.RoundMonth), domain.KindInstant},
	"shift_limits_down":      {shiftLimitsDown, domain.KindReal},
	"expand_datetime_limits": {expandDatetimeLimits, domain.KindInstant},
	"rescale_pal":            {paletteOp(func(s Step) (palette.Continuous, error) { return rescalePal(s) }), domain.KindReal},
	"area_pal":               {paletteOp(func(s Step) (palette.Continuous, error) { return areaPal(s) }), domain.KindReal},
	"abs_area":               {paletteOp(func(s Step) (palette.Continuous, error) { return absArea(s) }), domain.KindReal},
}

// Ops returns the names of all operations, sorted.
func Ops() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Execute evaluates one step. kind is the step's domain; KindUnknown
// selects the operation's natural domain. The returned Outcome always
// carries the resolved kind, also on error.
func Execute(s Step, kind domain.Kind) (Outcome, error) {
	o, ok := registry[s.Op]
	if !ok {
		return Outcome{Kind: kind}, fmt.Errorf("unknown op %q", s.Op)
	}
	if kind == domain.KindUnknown {
		kind = o.kind
	}
	out, err := o.run(s, kind)
	out.Kind = kind
	return out, err
}

func values(v []domain.Value, err error) (Outcome, error) {
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Values: v}, nil
}

func limits(r bounds.Range, err error) (Outcome, error) {
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Range: &r}, nil
}

func expandRange(s Step, kind domain.Kind) (Outcome, error) {
	r, err := rangeOf(s.Range, kind)
	if err != nil {
		return Outcome{}, err
	}
	opts := bounds.ExpandOptions{}
	if s.Mul != nil {
		opts.Mul = *s.Mul
	}
	span := domain.SpanKind(kind)
	if opts.Add, err = optionalValue(s.Add, span); err != nil {
		return Outcome{}, err
	}
	if opts.ZeroWidth, err = optionalValue(s.ZeroWidth, span); err != nil {
		return Outcome{}, err
	}
	return limits(bounds.ExpandRange(r, opts))
}

func expandRangeDistinct(s Step, kind domain.Kind) (Outcome, error) {
	r, err := rangeOf(s.Range, kind)
	if err != nil {
		return Outcome{}, err
	}
	tuple, err := expandTuple(s.Expand, kind)
	if err != nil {
		return Outcome{}, err
	}
	lower, upper, err := bounds.ExpansionsOf(tuple)
	if err != nil {
		return Outcome{}, err
	}
	zw, err := optionalValue(s.ZeroWidth, domain.SpanKind(kind))
	if err != nil {
		return Outcome{}, err
	}
	return limits(bounds.ExpandRangeDistinct(r, lower, upper, zw))
}

// rescaleArgs converts the arguments shared by the rescale family.
func rescaleArgs(s Step, kind domain.Kind) ([]domain.Value, [2]float64, *bounds.Range, error) {
	x, err := valuesOf(s.X, kind)
	if err != nil {
		return nil, bounds.DefaultTo, nil, err
	}
	to, err := target(s.To, bounds.DefaultTo)
	if err != nil {
		return nil, to, nil, err
	}
	from, err := optionalRange(s.From, kind)
	return x, to, from, err
}

func rescale(s Step, kind domain.Kind) (Outcome, error) {
	x, to, from, err := rescaleArgs(s, kind)
	if err != nil {
		return Outcome{}, err
	}
	return values(bounds.Rescale(x, to, from))
}

func rescaleMax(s Step, kind domain.Kind) (Outcome, error) {
	x, to, from, err := rescaleArgs(s, kind)
	if err != nil {
		return Outcome{}, err
	}
	return values(bounds.RescaleMax(x, to, from))
}

func rescaleMid(s Step, kind domain.Kind) (Outcome, error) {
	x, to, from, err := rescaleArgs(s, kind)
	if err != nil {
		return Outcome{}, err
	}
	var mid domain.Value = domain.Real(0)
	if s.Mid != nil || kind != domain.KindReal {
		if s.Mid == nil {
			return Outcome{}, domain.NewStructural("rescale_mid over %s values needs a mid", kind)
		}
		if mid, err = valueOf(s.Mid, kind); err != nil {
			return Outcome{}, err
		}
	}
	return values(bounds.RescaleMid(x, to, from, mid))
}

// clipArgs converts the arguments of censor and the squish family.
// A missing range falls back to def, when def is non-nil.
func clipArgs(s Step, kind domain.Kind, def *bounds.Range) ([]domain.Value, bounds.Range, bool, error) {
	onlyFinite := true
	if s.OnlyFinite != nil {
		onlyFinite = *s.OnlyFinite
	}
	x, err := valuesOf(s.X, kind)
	if err != nil {
		return nil, bounds.Range{}, onlyFinite, err
	}
	if s.Range == nil && def != nil {
		return x, *def, onlyFinite, nil
	}
	r, err := rangeOf(s.Range, kind)
	return x, r, onlyFinite, err
}

func censor(s Step, kind domain.Kind) (Outcome, error) {
	x, r, onlyFinite, err := clipArgs(s, kind, nil)
	if err != nil {
		return Outcome{}, err
	}
	return values(bounds.Censor(x, r, onlyFinite))
}

func squish(s Step, kind domain.Kind) (Outcome, error) {
	x, r, onlyFinite, err := clipArgs(s, kind, &bounds.DefaultSquishRange)
	if err != nil {
		return Outcome{}, err
	}
	return values(bounds.Squish(x, r, onlyFinite))
}

func squishInfinite(s Step, kind domain.Kind) (Outcome, error) {
	x, r, _, err := clipArgs(s, kind, &bounds.DefaultSquishRange)
	if err != nil {
		return Outcome{}, err
	}
	return values(bounds.SquishInfinite(x, r))
}

func zeroRange(s Step, kind domain.Kind) (Outcome, error) {
	r, err := rangeOf(s.Range, kind)
	if err != nil {
		return Outcome{}, err
	}
	tol := bounds.DefaultTolerance
	if s.Tol != nil {
		tol = *s.Tol
	}
	ok, err := bounds.ZeroRange(r, tol)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Bool: &ok}, nil
}

// monthOp lifts a month adjuster over a sequence of instants.
func monthOp(adjust func(time.Time) time.Time) opFunc {
	return func(s Step, kind domain.Kind) (Outcome, error) {
		if kind != domain.KindInstant {
			return Outcome{}, domain.NewTypeMismatch("month adjustment needs instants, got %s", kind)
		}
		x, err := valuesOf(s.X, kind)
		if err != nil {
			return Outcome{}, err
		}
		out := make([]domain.Value, len(x))
		for i, v := range x {
			if v.IsMissing() {
				out[i] = v
				continue
			}
			out[i] = domain.NewInstant(adjust(v.(domain.Instant).Time))
		}
		return Outcome{Values: out}, nil
	}
}

func shiftLimitsDown(s Step, _ domain.Kind) (Outcome, error) {
	candidate, err := years(s.Range)
	if err != nil {
		return Outcome{}, err
	}
	original, err := years(s.Original)
	if err != nil {
		return Outcome{}, err
	}
	shifted, err := calendar.ShiftLimitsDown(candidate, original, s.Width)
	if err != nil {
		return Outcome{}, err
	}
	return limits(bounds.RealRange(float64(shifted[0]), float64(shifted[1])), nil)
}

func expandDatetimeLimits(s Step, kind domain.Kind) (Outcome, error) {
	r, err := rangeOf(s.Range, kind)
	if err != nil {
		return Outcome{}, err
	}
	unit, err := calendar.ParseUnit(s.Unit)
	if err != nil {
		return Outcome{}, err
	}
	return limits(calendar.ExpandDatetimeLimits(r, s.Width, unit))
}

func rescalePal(s Step) (palette.RescalePalette, error) {
	p := palette.NewRescalePalette()
	var err error
	p.Range, err = target(s.To, p.Range)
	return p, err
}

func areaPal(s Step) (palette.AreaPalette, error) {
	p := palette.NewAreaPalette()
	var err error
	p.Range, err = target(s.To, p.Range)
	return p, err
}

// absArea reads its maximum from to[1].
func absArea(s Step) (palette.AbsAreaPalette, error) {
	to, err := target(s.To, [2]float64{0, 1})
	return palette.AbsAreaPalette{Max: to[1]}, err
}

// paletteOp evaluates a continuous palette over real x.
func paletteOp(build func(Step) (palette.Continuous, error)) opFunc {
	return func(s Step, kind domain.Kind) (Outcome, error) {
		if kind != domain.KindReal {
			return Outcome{}, domain.NewTypeMismatch("palettes map reals, got %s", kind)
		}
		p, err := build(s)
		if err != nil {
			return Outcome{}, err
		}
		x, err := valuesOf(s.X, kind)
		if err != nil {
			return Outcome{}, err
		}
		fs, err := domain.Floats(x)
		if err != nil {
			return Outcome{}, err
		}
		out, err := p.Map(fs)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Values: domain.Reals(out)}, nil
	}
}
