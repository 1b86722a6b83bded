package cli

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/scalekit/internal/harness"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Domain     string
	X          []string
	Range      []string
	To         []float64
	From       []string
	Original   []string
	Mid        string
	Mul        float64
	Add        string
	ZeroWidth  string
	Expand     []string
	OnlyFinite bool
	Tol        float64
	Width      int
	Unit       string
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <op>",
		Short: "Evaluate a single operation",
		Long: fmt.Sprintf(`Evaluate one scale operation and print its result.

Values are written as text in the selected domain: reals ("1.5", "inf",
"NA"), instants ("2020-01-01", RFC 3339) or durations ("90s", "1h30m").

Operations:
  %s

Exit codes:
  0 - Operation succeeded
  1 - Operation returned an error
  2 - Command error (unknown op, invalid flags)

Examples:
  scalekit eval rescale --x 0,5,10
  scalekit eval censor --x 0,5,10 --range 2,8
  scalekit eval expand_range --range 0,1 --mul 2 --add 2
  scalekit eval expand_datetime_limits --range 2020-02-10,2020-04-20 --width 4 --unit month`,
			strings.Join(harness.Ops(), "\n  ")),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, args[0], cmd)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Domain, "domain", "", "value domain (real|instant|duration); defaults to the op's own")
	f.StringSliceVar(&opts.X, "x", nil, "input values")
	f.StringSliceVar(&opts.Range, "range", nil, "limits or range as lo,hi")
	f.Float64SliceVar(&opts.To, "to", nil, "target range as a,b")
	f.StringSliceVar(&opts.From, "from", nil, "source range as lo,hi")
	f.StringSliceVar(&opts.Original, "original", nil, "original year limits for shift_limits_down")
	f.StringVar(&opts.Mid, "mid", "", "midpoint for rescale_mid")
	f.Float64Var(&opts.Mul, "mul", 0, "multiplicative expansion")
	f.StringVar(&opts.Add, "add", "", "additive expansion")
	f.StringVar(&opts.ZeroWidth, "zero-width", "", "width used for zero-width ranges")
	f.StringSliceVar(&opts.Expand, "expand", nil, "expansion vector (2 or 4 elements)")
	f.BoolVar(&opts.OnlyFinite, "only-finite", true, "also censor or clamp infinite values")
	f.Float64Var(&opts.Tol, "tol", 0, "zero range tolerance")
	f.IntVar(&opts.Width, "width", 0, "minimum width in units, or step for shift_limits_down")
	f.StringVar(&opts.Unit, "unit", "", "calendar unit for expand_datetime_limits")

	return cmd
}

func runEval(opts *EvalOptions, op string, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

	if !slices.Contains(harness.Ops(), op) {
		msg := fmt.Sprintf("unknown op %q", op)
		if opts.Format == "json" {
			if err := out.Error(CodeUnknownOp, msg, harness.Ops()); err != nil {
				return err
			}
		}
		return NewExitError(ExitCommandError, msg)
	}

	step := opts.step(op, cmd)
	slog.Debug("evaluating", "op", op, "domain", step.Domain, "x", len(step.X))

	event, err := harness.Evaluate(step)
	if err != nil {
		// An unresolved domain leaves the event without one.
		code := CodeEvalFailed
		if event.Domain == "" {
			code = CodeInvalidInput
		}
		if opts.Format == "json" {
			if encErr := out.Error(code, err.Error(), event); encErr != nil {
				return encErr
			}
		}
		if code == CodeInvalidInput {
			return WrapExitError(ExitCommandError, "invalid input", err)
		}
		return WrapExitError(ExitFailure, op+" failed", err)
	}

	if opts.Format == "json" {
		return out.Success(event)
	}
	return out.Success(formatEvent(event))
}

// step builds a harness step from the flags that were set.
func (o *EvalOptions) step(op string, cmd *cobra.Command) harness.Step {
	changed := cmd.Flags().Changed
	s := harness.Step{
		Op:       op,
		Domain:   o.Domain,
		X:        strs(o.X),
		Range:    strs(o.Range),
		To:       o.To,
		From:     strs(o.From),
		Original: strs(o.Original),
		Expand:   strs(o.Expand),
		Width:    o.Width,
		Unit:     o.Unit,
	}
	if changed("mid") {
		s.Mid = o.Mid
	}
	if changed("mul") {
		s.Mul = &o.Mul
	}
	if changed("add") {
		s.Add = o.Add
	}
	if changed("zero-width") {
		s.ZeroWidth = o.ZeroWidth
	}
	if changed("only-finite") {
		s.OnlyFinite = &o.OnlyFinite
	}
	if changed("tol") {
		s.Tol = &o.Tol
	}
	return s
}

func strs(in []string) []any {
	if in == nil {
		return nil
	}
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

// formatEvent renders a step result as one line of text.
func formatEvent(e harness.TraceEvent) string {
	switch {
	case e.Range != nil:
		return "[" + strings.Join(e.Range, ", ") + "]"
	case e.Bool != nil:
		return fmt.Sprintf("%t", *e.Bool)
	default:
		return strings.Join(e.Values, " ")
	}
}
