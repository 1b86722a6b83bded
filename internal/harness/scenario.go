package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/scalekit/internal/domain"
)

// Scenario is a named sequence of operation steps.
type Scenario struct {
	// Name uniquely identifies the scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what the scenario checks.
	Description string `yaml:"description" json:"description"`

	// Domain is the default domain of every step.
	Domain string `yaml:"domain,omitempty" json:"domain,omitempty"`

	// Steps are evaluated in order.
	Steps []Step `yaml:"steps" json:"steps"`
}

// Step is a single operation invocation with its raw arguments.
// Which fields are read depends on Op.
type Step struct {
	Op     string `yaml:"op" json:"op"`
	Domain string `yaml:"domain,omitempty" json:"domain,omitempty"`

	X        []any     `yaml:"x,omitempty" json:"x,omitempty"`
	Range    []any     `yaml:"range,omitempty" json:"range,omitempty"`
	To       []float64 `yaml:"to,omitempty" json:"to,omitempty"`
	From     []any     `yaml:"from,omitempty" json:"from,omitempty"`
	Original []any     `yaml:"original,omitempty" json:"original,omitempty"`
	Mid      any       `yaml:"mid,omitempty" json:"mid,omitempty"`

	Mul       *float64 `yaml:"mul,omitempty" json:"mul,omitempty"`
	Add       any      `yaml:"add,omitempty" json:"add,omitempty"`
	ZeroWidth any      `yaml:"zero_width,omitempty" json:"zero_width,omitempty"`
	Expand    []any    `yaml:"expand,omitempty" json:"expand,omitempty"`

	OnlyFinite *bool    `yaml:"only_finite,omitempty" json:"only_finite,omitempty"`
	Tol        *float64 `yaml:"tol,omitempty" json:"tol,omitempty"`
	Width      int      `yaml:"width,omitempty" json:"width,omitempty"`
	Unit       string   `yaml:"unit,omitempty" json:"unit,omitempty"`

	// Expect is checked against the step outcome when present.
	Expect *Expect `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Expect describes the expected outcome of a step. Exactly one of Values,
// Range, Bool or Error is normally set.
type Expect struct {
	Values []any `yaml:"values,omitempty" json:"values,omitempty"`
	Range  []any `yaml:"range,omitempty" json:"range,omitempty"`
	Bool   *bool `yaml:"bool,omitempty" json:"bool,omitempty"`

	// Error is an error code such as TYPE_MISMATCH.
	Error string `yaml:"error,omitempty" json:"error,omitempty"`

	// Tolerance is the absolute tolerance for real comparisons.
	// Zero means DefaultTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty" json:"tolerance,omitempty"`
}

// DefaultTolerance is the absolute tolerance used when comparing reals.
const DefaultTolerance = 1e-9

// LoadScenario reads a scenario file, choosing the decoder by extension.
// Unknown fields are rejected in both formats.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario *Scenario
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		scenario, err = ParseYAML(data)
	case ".cue":
		scenario, err = ParseCUE(filepath.Base(path), data)
	default:
		return nil, fmt.Errorf("unsupported scenario extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return scenario, nil
}

// IsScenarioFile reports whether path has a scenario extension.
func IsScenarioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".cue":
		return true
	}
	return false
}

// ParseYAML decodes a YAML scenario with strict field checking.
func ParseYAML(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &scenario, nil
}

// ParseCUE compiles a CUE scenario and decodes its concrete JSON form.
// filename is only used in error positions.
func ParseCUE(filename string, data []byte) (*Scenario, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	raw, err := v.MarshalJSON()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var scenario Scenario
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to decode CUE scenario: %w", err)
	}
	return &scenario, nil
}

// formatCUEError reduces a CUE error list to its first error, with position.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return fmt.Errorf("failed to parse CUE: %w", err)
	}
	first := errs[0]
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		pos := positions[0]
		return fmt.Errorf("failed to parse CUE: %s:%d:%d: %v", pos.Filename(), pos.Line(), pos.Column(), first)
	}
	return fmt.Errorf("failed to parse CUE: %w", first)
}

// validateScenario checks required fields, operation names and domains.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	if s.Domain != "" {
		if _, err := domain.ParseKind(s.Domain); err != nil {
			return fmt.Errorf("domain: %w", err)
		}
	}

	for i, step := range s.Steps {
		if step.Op == "" {
			return fmt.Errorf("steps[%d]: op is required", i)
		}
		if _, ok := registry[step.Op]; !ok {
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}
		if step.Domain != "" {
			if _, err := domain.ParseKind(step.Domain); err != nil {
				return fmt.Errorf("steps[%d].domain: %w", i, err)
			}
		}
		if step.Expect != nil && step.Expect.Error != "" && !knownCode(step.Expect.Error) {
			return fmt.Errorf("steps[%d].expect: unknown error code %q", i, step.Expect.Error)
		}
	}
	return nil
}

func knownCode(code string) bool {
	switch domain.ErrorCode(code) {
	case domain.ErrCodeTypeMismatch, domain.ErrCodeStructural, domain.ErrCodeInvalidValue:
		return true
	}
	return false
}
