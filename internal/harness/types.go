package harness

// TraceEvent records the evaluation of one check.
type TraceEvent struct {
	Seq    int      `json:"seq"`
	Type   string   `json:"type"`
	Values []string `json:"values"`
	Want   string   `json:"want"`
	Got    string   `json:"got"`
	Pass   bool     `json:"pass"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall success. True if every check passed.
	Pass bool `json:"pass"`

	// Trace contains one event per check, in check order.
	Trace []TraceEvent `json:"trace"`

	// Errors describes the failed checks. Empty if Pass is true.
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

// AddTrace appends the event for a check. Seq is assigned from the trace length.
func (r *Result) AddTrace(event TraceEvent) {
	event.Seq = len(r.Trace) + 1
	r.Trace = append(r.Trace, event)
}
