package checker

import (
	"context"
	"fmt"

	"github.com/Suhas010/Framelytics/internal/model"
)

// Performance rule thresholds.
const (
	maxScripts        = 15
	maxImages         = 20
	maxImageDimension = 2000 // pixels, either axis
	maxNodeCount      = 200
)

// PerformanceChecker flags structural load-weight problems: script
// count, image count and size, and overall node bloat. It cannot
// measure transfer sizes or timings; those need a live run.
type PerformanceChecker struct{}

// NewPerformanceChecker creates a PerformanceChecker.
func NewPerformanceChecker() *PerformanceChecker {
	return &PerformanceChecker{}
}

// Name returns the checker name.
func (c *PerformanceChecker) Name() string { return "performance" }

// Category returns the checker's home category.
func (c *PerformanceChecker) Category() model.Category { return model.CategoryPerformance }

// Analyze runs the performance rules.
func (c *PerformanceChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)

	scripts := 0
	images := 0
	for _, n := range nodes {
		switch {
		case n.Type == model.TypeScript:
			scripts++
		case isImageNode(n):
			images++
			if n.Width > maxImageDimension || n.Height > maxImageDimension {
				issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
					model.CategoryPerformance,
					fmt.Sprintf("Image %q is %.0fx%.0f; anything over %dpx should be resized or served responsively",
						n.Name, n.Width, n.Height, maxImageDimension)).
					WithNode(n).
					WithRecommendation("Serve scaled variants with srcset instead of shrinking in the browser."))
			}
		}
	}

	if scripts > maxScripts {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryPerformance,
			fmt.Sprintf("%d scripts on the page (threshold %d)", scripts, maxScripts)).
			WithRecommendation("Bundle or defer scripts; each one blocks or delays rendering."))
	}

	if images > maxImages {
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
			model.CategoryPerformance,
			fmt.Sprintf("%d images on the page (threshold %d)", images, maxImages)).
			WithRecommendation("Heavy image pages benefit from lazy loading and modern formats."))
	}

	if len(nodes) > maxNodeCount {
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
			model.CategoryPerformance,
			fmt.Sprintf("Page has %d elements (threshold %d)", len(nodes), maxNodeCount)).
			WithRecommendation("Large DOM trees slow style recalculation; flatten where possible."))
	}

	return issues, nil
}
