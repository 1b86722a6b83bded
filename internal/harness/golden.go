package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// GoldenDir is the fixture directory used by RunWithGolden and AssertGolden.
const GoldenDir = "testdata/golden"

// Snapshot renders a scenario trace as canonical JSON, the golden file format.
func Snapshot(scenarioName string, result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, event := range result.Trace {
		m := map[string]any{
			"step":   event.Step,
			"op":     event.Op,
			"domain": event.Domain,
		}
		if event.Values != nil {
			m["values"] = event.Values
		}
		if event.Range != nil {
			m["range"] = event.Range
		}
		if event.Bool != nil {
			m["bool"] = *event.Bool
		}
		if event.Error != "" {
			m["error"] = event.Error
		}
		trace[i] = m
	}
	return MarshalCanonical(map[string]any{
		"scenario_name": scenarioName,
		"trace":         trace,
	})
}

// RunWithGolden runs a scenario and compares its trace against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Expectation failures are reported through t. The returned error is for
// scenarios that could not run or serialize.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Errorf("%s: %s", scenario.Name, msg)
	}
	return AssertGolden(t, scenario.Name, result)
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenarioName, result)
	if err != nil {
		return err
	}
	g := goldie.New(t,
		goldie.WithFixtureDir(GoldenDir),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, data)
	return nil
}
