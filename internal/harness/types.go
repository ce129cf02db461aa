package harness

// StepOutcome records how one step went.
type StepOutcome struct {
	Op string `json:"op"`
	OK bool   `json:"ok"`

	// ID is the generated id for create ops.
	ID string `json:"id,omitempty"`

	// Err carries the validation error message for failed creates.
	Err string `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success: every expect clause and
	// every assertion matched.
	Pass bool `json:"pass"`

	// Trace contains one outcome per executed step, in order.
	// Deterministic given the frozen clock and sequential ids, so it
	// doubles as the golden comparison payload.
	Trace []StepOutcome `json:"trace"`

	// Errors contains expectation/assertion failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:  true,
		Trace: []StepOutcome{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// AddTrace appends a step outcome to the trace.
func (r *Result) AddTrace(outcome StepOutcome) {
	r.Trace = append(r.Trace, outcome)
}
