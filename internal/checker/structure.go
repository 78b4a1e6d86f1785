package checker

import (
	"context"
	"fmt"

	"github.com/Suhas010/Framelytics/internal/model"
)

// H1 text length thresholds, in characters.
const (
	h1MinLength = 20
	h1MaxLength = 70
)

// StructureChecker validates heading hierarchy, semantic landmark
// elements, and coarse content structure. It runs three independent
// sub-checks and concatenates their issues.
type StructureChecker struct{}

// NewStructureChecker creates a StructureChecker.
func NewStructureChecker() *StructureChecker {
	return &StructureChecker{}
}

// Name returns the checker name.
func (c *StructureChecker) Name() string { return "structure" }

// Category returns the checker's home category.
func (c *StructureChecker) Category() model.Category { return model.CategoryStructure }

// Analyze runs the structure rules.
func (c *StructureChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)
	issues = append(issues, c.checkHeadingHierarchy(nodes)...)
	issues = append(issues, c.checkSemanticElements(nodes)...)
	issues = append(issues, c.checkContentStructure(nodes)...)
	return issues, nil
}

// checkHeadingHierarchy validates H1 presence/uniqueness, skipped
// levels, and H1 text length.
func (c *StructureChecker) checkHeadingHierarchy(nodes []*model.Node) []model.Issue {
	var issues []model.Issue

	h1s := findHeadings(nodes, 1)
	h2s := findHeadings(nodes, 2)
	h3s := findHeadings(nodes, 3)

	switch {
	case len(h1s) == 0:
		issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
			model.CategoryStructure, "Page has no H1 heading").
			WithRecommendation("Add exactly one H1 stating the page's main topic."))
	case len(h1s) > 1:
		issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
			model.CategoryStructure,
			fmt.Sprintf("Page has %d H1 headings; exactly one is expected", len(h1s))).
			WithRecommendation("Demote secondary H1s to H2."))

		main := pickMainHeading(h1s)
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
			model.CategoryStructure,
			fmt.Sprintf("%q looks like the main H1; keep it and demote the rest", main.Name)).
			WithNode(main))
	}

	if len(h2s) > 0 && len(h1s) == 0 {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryStructure, "H2 used without an H1 (skipped heading level)").
			WithRecommendation("Heading levels should nest without gaps."))
	}
	if len(h3s) > 0 && len(h2s) == 0 {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryStructure, "H3 used without an H2 (skipped heading level)").
			WithRecommendation("Heading levels should nest without gaps."))
	}

	for _, h1 := range h1s {
		length := len(h1.Text)
		if length == 0 {
			continue
		}
		if length < h1MinLength {
			issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityImportant,
				model.CategoryStructure,
				fmt.Sprintf("H1 text is short (%d characters, minimum %d)", length, h1MinLength)).
				WithNode(h1).
				WithRecommendation("A fuller H1 gives both readers and crawlers more context."))
		} else if length > h1MaxLength {
			issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
				model.CategoryStructure,
				fmt.Sprintf("H1 text is long (%d characters, maximum %d)", length, h1MaxLength)).
				WithNode(h1).
				WithRecommendation("Keep the H1 under 70 characters."))
		}
	}

	return issues
}

// pickMainHeading chooses the most likely intended main H1 among
// several: prefer a node whose name suggests it is the primary heading,
// else the first in input order.
func pickMainHeading(h1s []*model.Node) *model.Node {
	for _, n := range h1s {
		if nameContains(n, "title", "main", "h1") {
			return n
		}
	}
	return h1s[0]
}

// checkSemanticElements looks for the landmark regions assistive
// technology navigates by.
func (c *StructureChecker) checkSemanticElements(nodes []*model.Node) []model.Issue {
	landmarks := []struct {
		label string
		subs  []string
	}{
		{"header", []string{"header"}},
		{"navigation", []string{"nav", "menu"}},
		{"footer", []string{"footer"}},
	}

	var issues []model.Issue
	for _, lm := range landmarks {
		found := false
		for _, n := range nodes {
			if nameContains(n, lm.subs...) || lower(n.Role) == lm.label {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
				model.CategoryStructure, "No "+lm.label+" landmark found").
				WithRecommendation("Semantic landmarks help assistive technology and crawlers map the page."))
		}
	}
	return issues
}

// checkContentStructure flags long runs of text with no subheadings.
func (c *StructureChecker) checkContentStructure(nodes []*model.Node) []model.Issue {
	textNodes := 0
	for _, n := range nodes {
		if isTextNode(n) {
			textNodes++
		}
	}

	if textNodes > 10 && len(findHeadings(nodes, 2)) == 0 {
		return []model.Issue{
			model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
				model.CategoryStructure,
				fmt.Sprintf("%d text blocks with no H2 subheadings", textNodes)).
				WithRecommendation("Break long content into sections with H2 headings."),
		}
	}
	return nil
}
