package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// SchemaChecker validates structured data: JSON-LD blocks and microdata
// itemtype attributes. Rich search results depend on at least one of
// the two being present and well-formed.
type SchemaChecker struct{}

// NewSchemaChecker creates a SchemaChecker.
func NewSchemaChecker() *SchemaChecker {
	return &SchemaChecker{}
}

// Name returns the checker name.
func (c *SchemaChecker) Name() string { return "schema" }

// Category returns the checker's home category.
func (c *SchemaChecker) Category() model.Category { return model.CategorySchema }

// Analyze runs the structured-data rules.
func (c *SchemaChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)

	hasMicrodata := false
	var jsonLD []*model.Node
	for _, n := range nodes {
		if n.ItemType != "" {
			hasMicrodata = true
		}
		if n.Type == model.TypeScript && isJSONLD(n) {
			jsonLD = append(jsonLD, n)
		}
	}

	if !hasMicrodata && len(jsonLD) == 0 {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategorySchema, "No structured data found (no JSON-LD or microdata)").
			WithRecommendation("Structured data unlocks rich search results; add a JSON-LD block."))
		return issues, nil
	}

	for _, block := range jsonLD {
		issues = append(issues, c.checkJSONLD(block)...)
	}

	return issues, nil
}

// isJSONLD reports whether a script node carries a JSON-LD payload,
// judged by its name or content shape.
func isJSONLD(n *model.Node) bool {
	if nameContains(n, "ld+json", "json-ld", "jsonld", "schema") {
		return true
	}
	trimmed := strings.TrimSpace(n.Text)
	return strings.HasPrefix(trimmed, "{") && strings.Contains(trimmed, "schema.org")
}

// checkJSONLD validates one JSON-LD block: it must parse and must
// declare an @type.
func (c *SchemaChecker) checkJSONLD(block *model.Node) []model.Issue {
	var issues []model.Issue

	var payload map[string]any
	if err := json.Unmarshal([]byte(block.Text), &payload); err != nil {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategorySchema,
			fmt.Sprintf("JSON-LD block %q is not valid JSON", block.Name)).
			WithNode(block).
			WithRecommendation("Malformed JSON-LD is silently discarded by search engines."))
		return issues
	}

	if _, ok := payload["@type"]; !ok {
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
			model.CategorySchema,
			fmt.Sprintf("JSON-LD block %q declares no @type", block.Name)).
			WithNode(block).
			WithRecommendation("Without @type the block does not map to any rich-result template."))
	}

	return issues
}
