package model

import "time"

// CategoryResult holds the issues and score of one category.
type CategoryResult struct {
	// Issues are the category's findings in the order its checker
	// produced them. Empty (never nil) for categories that ran clean or
	// were filtered out.
	Issues []Issue `json:"issues"`

	// Score is the category score in [0,100]. Categories skipped by a
	// filter keep their initial zero.
	Score int `json:"score"`
}

// AnalysisResult is the atomic output of one aggregation run.
//
// Invariants:
//   - Issues is the exact concatenation, in checker-registration order,
//     of all per-category issue lists.
//   - Score and every category score are clamped to [0,100].
type AnalysisResult struct {
	// Issues is the flat list of all findings.
	Issues []Issue `json:"issues"`

	// Score is the weighted overall score in [0,100].
	Score int `json:"score"`

	// Categories maps every known category to its issues and score.
	// The map always has the full fixed shape, including categories
	// that produced nothing.
	Categories map[Category]*CategoryResult `json:"categories"`

	// AnalyzedAt is when the aggregation ran.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// NodeCount is the number of nodes analyzed (after flattening).
	NodeCount int `json:"node_count"`
}

// NewAnalysisResult creates a result with the fixed-shape category map:
// every known category present with an empty issue list and score zero.
func NewAnalysisResult() *AnalysisResult {
	categories := make(map[Category]*CategoryResult, len(AllCategories()))
	for _, c := range AllCategories() {
		categories[c] = &CategoryResult{Issues: make([]Issue, 0)}
	}
	return &AnalysisResult{
		Issues:     make([]Issue, 0),
		Categories: categories,
		AnalyzedAt: time.Now(),
	}
}

// CountByPriority returns the number of issues per priority tier.
func (r *AnalysisResult) CountByPriority() (critical, important, niceToHave int) {
	for _, issue := range r.Issues {
		switch issue.Priority {
		case PriorityCritical:
			critical++
		case PriorityImportant:
			important++
		case PriorityNiceToHave:
			niceToHave++
		}
	}
	return critical, important, niceToHave
}

// CountBySeverity returns the number of issues per severity class.
func (r *AnalysisResult) CountBySeverity() (errors, warnings, infos, successes int) {
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			infos++
		case SeveritySuccess:
			successes++
		}
	}
	return errors, warnings, infos, successes
}

// HasIssues reports whether any checker produced a finding.
func (r *AnalysisResult) HasIssues() bool {
	return len(r.Issues) > 0
}
