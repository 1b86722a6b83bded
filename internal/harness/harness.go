package harness

import (
	"fmt"

	"github.com/roach88/scalekit/internal/domain"
)

// Run evaluates every step of a scenario and checks expectations.
//
// Step failures are reported in the Result, not as an error. The error
// return is reserved for scenarios that cannot run at all.
func Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("nil scenario")
	}
	base := domain.KindUnknown
	if scenario.Domain != "" {
		k, err := domain.ParseKind(scenario.Domain)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		base = k
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		kind := base
		if step.Domain != "" {
			k, err := domain.ParseKind(step.Domain)
			if err != nil {
				return nil, fmt.Errorf("scenario %s: steps[%d]: %w", scenario.Name, i, err)
			}
			kind = k
		}

		out, err := Execute(step, kind)
		result.AddTrace(traceEvent(i, step.Op, out, err))

		for _, msg := range checkExpect(step.Expect, out, err) {
			result.AddError(fmt.Sprintf("steps[%d] %s: %s", i, step.Op, msg))
		}
	}
	return result, nil
}

// traceEvent renders a step outcome in text form.
func traceEvent(i int, op string, out Outcome, err error) TraceEvent {
	event := TraceEvent{Step: i, Op: op, Domain: out.Kind.String()}
	if err != nil {
		if code := domain.CodeOf(err); code != "" {
			event.Error = string(code)
		} else {
			event.Error = err.Error()
		}
		return event
	}
	switch {
	case out.Range != nil:
		event.Range = domain.FormatAll(out.Range.Values())
	case out.Bool != nil:
		b := *out.Bool
		event.Bool = &b
	default:
		event.Values = domain.FormatAll(out.Values)
	}
	return event
}

// Evaluate runs a single step outside a scenario and renders its outcome.
// The step's own domain applies, falling back to the op's natural one.
// The returned error is the step failure, also recorded in the event.
func Evaluate(step Step) (TraceEvent, error) {
	kind := domain.KindUnknown
	if step.Domain != "" {
		k, err := domain.ParseKind(step.Domain)
		if err != nil {
			return TraceEvent{Op: step.Op}, err
		}
		kind = k
	}
	out, err := Execute(step, kind)
	return traceEvent(0, step.Op, out, err), err
}
