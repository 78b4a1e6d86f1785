package model

// Issue is one detected problem or informational note produced by a
// checker during an analysis pass.
//
// An issue may be mutated once, in place, by the enrichment step (to add
// Bounds and Preview) before being folded into the result; it is never
// mutated afterwards.
type Issue struct {
	// Severity is the display classification (error/warning/info/success).
	Severity Severity `json:"severity"`

	// SeverityText is the human-readable severity, kept alongside the
	// numeric value so serialized reports stay readable without the enum.
	SeverityText string `json:"severity_text"`

	// Message is the human-readable description of the problem.
	Message string `json:"message"`

	// Category is the issue's home topic. Exactly one per issue.
	Category Category `json:"category"`

	// Recommendation suggests how to fix the problem. Optional.
	Recommendation string `json:"recommendation,omitempty"`

	// NodeID references the originating node, when the issue is about a
	// specific element. Optional.
	NodeID string `json:"node_id,omitempty"`

	// NodeName is the display name of the originating node, carried so
	// reports stay meaningful without re-resolving the node list.
	NodeName string `json:"node_name,omitempty"`

	// Priority drives score deduction. Assigned at creation, never
	// recomputed downstream.
	Priority Priority `json:"priority"`

	// PriorityText is the human-readable priority tier.
	PriorityText string `json:"priority_text"`

	// Bounds is the on-canvas bounding box of the referenced node,
	// attached best-effort by the enrichment step. Nil when enrichment
	// was skipped or failed.
	Bounds *Rect `json:"bounds,omitempty"`

	// Preview is a small visual stand-in for the referenced node,
	// attached best-effort by the enrichment step.
	Preview *Preview `json:"preview,omitempty"`

	// ResourceURL and ResourceTitle optionally point at external
	// documentation for the rule that fired.
	ResourceURL   string `json:"resource_url,omitempty"`
	ResourceTitle string `json:"resource_title,omitempty"`
}

// NewIssue creates an issue with the severity/priority text fields filled
// in. Checkers should use this rather than struct literals so the derived
// fields never drift from the enums.
func NewIssue(severity Severity, priority Priority, category Category, message string) Issue {
	return Issue{
		Severity:     severity,
		SeverityText: severity.String(),
		Message:      message,
		Category:     category,
		Priority:     priority,
		PriorityText: priority.String(),
	}
}

// WithNode returns a copy of the issue referencing the given node.
// Nil nodes are ignored.
func (i Issue) WithNode(n *Node) Issue {
	if n == nil {
		return i
	}
	i.NodeID = n.ID
	i.NodeName = n.Name
	return i
}

// WithRecommendation returns a copy of the issue with a fix suggestion.
func (i Issue) WithRecommendation(rec string) Issue {
	i.Recommendation = rec
	return i
}

// WithResource returns a copy of the issue pointing at external
// documentation for the rule.
func (i Issue) WithResource(url, title string) Issue {
	i.ResourceURL = url
	i.ResourceTitle = title
	return i
}

// Rect is an on-canvas bounding box in host coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Preview is a small visual stand-in for a node. When the host can render
// the node, Data holds an encoded image; otherwise Color holds a
// deterministic placeholder fill derived from the node ID.
type Preview struct {
	// Data is the encoded image bytes (PNG), when available.
	Data []byte `json:"data,omitempty"`

	// Color is the placeholder fill as a hex string, used when no image
	// data could be fetched. Deterministic per node ID so repeated runs
	// produce identical results.
	Color string `json:"color,omitempty"`

	// Width and Height are the preview dimensions in pixels.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}
