package model

import "time"

// Audit is the mutable state of one audit run as it moves through the
// pipeline: raw markup in, node list, then the analysis result.
//
// Design decision: Pipeline steps share one accumulating struct rather
// than passing values between step-specific signatures because:
//  1. Adding a step does not change any other step's signature
//  2. Partial state is available for error reporting
//  3. It mirrors how the report layer consumes a whole run at once
type Audit struct {
	// Page identifies the audited page (file path, frame name, URL).
	Page string `json:"page"`

	// Markup is the raw injected markup, when the run started from
	// embedded code rather than a host selection.
	Markup []byte `json:"-"` // Excluded from JSON due to size

	// Nodes is the normalized node list built from Markup or a host
	// bridge. Immutable once set.
	Nodes []*Node `json:"-"` // Excluded from JSON due to size

	// Result is the analysis output. Nil until the analyze step ran.
	Result *AnalysisResult `json:"result,omitempty"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// Duration is the total run time, set when the pipeline finishes.
	Duration time.Duration `json:"duration"`

	// Error holds a fatal run error, if any.
	Error error `json:"-"` // Excluded from JSON (serialize ErrorMessage)

	// ErrorMessage is the string form of Error for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewAudit creates an audit run for the given page identifier.
func NewAudit(page string) *Audit {
	return &Audit{
		Page:      page,
		StartedAt: time.Now(),
	}
}

// SetError records a fatal run error in both forms.
func (a *Audit) SetError(err error) {
	a.Error = err
	if err != nil {
		a.ErrorMessage = err.Error()
	}
}
