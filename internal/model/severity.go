package model

// Severity classifies how an issue should be presented to the user.
// It is a display classification, not a scoring input: score deductions
// are driven by Priority.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeveritySuccess marks a positive confirmation ("nothing wrong here").
	// Kept for API compatibility with hosts that render green checkmarks;
	// the built-in checkers do not currently emit it.
	SeveritySuccess Severity = iota

	// SeverityInfo marks an informational note or suggestion.
	SeverityInfo

	// SeverityWarning marks a problem that degrades quality but does not
	// break the page outright.
	SeverityWarning

	// SeverityError marks a problem that must be fixed: missing titles,
	// empty hrefs, images without any text alternative.
	SeverityError
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "SUCCESS"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Priority is the remediation tier of an issue. It is assigned by the
// checker at creation time and never recomputed downstream; the scoring
// step deducts points per priority tier.
type Priority int

const (
	// PriorityNiceToHave marks polish items. Deducts 5 points.
	PriorityNiceToHave Priority = iota

	// PriorityImportant marks issues that should be fixed soon. Deducts 10.
	PriorityImportant

	// PriorityCritical marks issues that block good ranking or basic
	// accessibility. Deducts 20.
	PriorityCritical
)

// String returns a human-readable representation of the priority tier.
func (p Priority) String() string {
	switch p {
	case PriorityNiceToHave:
		return "NICE-TO-HAVE"
	case PriorityImportant:
		return "IMPORTANT"
	case PriorityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Deduction returns the score penalty for one issue of this priority.
//
// Design decision: Two scoring formulas existed across the product's
// evolution (severity-weighted errors=-25/warnings=-10, and this
// priority-weighted one). We use the priority-based variant everywhere
// because it is the more developed form; the two must never be blended.
func (p Priority) Deduction() int {
	switch p {
	case PriorityCritical:
		return 20
	case PriorityImportant:
		return 10
	case PriorityNiceToHave:
		return 5
	default:
		return 0
	}
}
