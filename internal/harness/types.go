package harness

// TraceEvent records the outcome of one step in text form.
type TraceEvent struct {
	Step   int      `json:"step"`
	Op     string   `json:"op"`
	Domain string   `json:"domain"`
	Values []string `json:"values,omitempty"`
	Range  []string `json:"range,omitempty"`
	Bool   *bool    `json:"bool,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every expectation matched.
	Pass bool `json:"pass"`

	// Trace holds one event per step, in step order.
	Trace []TraceEvent `json:"trace"`

	// Errors holds expectation failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddTrace appends a step event.
func (r *Result) AddTrace(event TraceEvent) {
	r.Trace = append(r.Trace, event)
}
