package harness

// TraceEvent records one executed flow step.
type TraceEvent struct {
	Seq     int    `json:"seq"`
	Action  string `json:"action"`
	Outcome string `json:"outcome"`          // "ok" or an error outcome
	Detail  string `json:"detail,omitempty"` // affected id or sort swaps
	Error   string `json:"error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every step matched its expected outcome and every
	// assertion held.
	Pass bool `json:"pass"`

	// Trace contains the flow steps in execution order.
	Trace []TraceEvent `json:"trace"`

	// Errors contains expectation and assertion failures.
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

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

func (r *Result) addTrace(event TraceEvent) {
	event.Seq = len(r.Trace) + 1
	r.Trace = append(r.Trace, event)
}
