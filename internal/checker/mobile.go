package checker

import (
	"context"
	"fmt"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// Mobile rule thresholds.
const (
	minTapTargetSize  = 48 // pixels, either axis
	minMobileFontSize = 14 // pixels
	maxTextBlockWidth = 600
)

// MobileChecker validates viewport configuration, tap target sizing,
// and text legibility on small screens.
type MobileChecker struct{}

// NewMobileChecker creates a MobileChecker.
func NewMobileChecker() *MobileChecker {
	return &MobileChecker{}
}

// Name returns the checker name.
func (c *MobileChecker) Name() string { return "mobile" }

// Category returns the checker's home category.
func (c *MobileChecker) Category() model.Category { return model.CategoryMobile }

// Analyze runs the mobile rules.
func (c *MobileChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)
	issues = append(issues, c.checkViewport(nodes)...)
	issues = append(issues, c.checkTapTargets(nodes)...)
	issues = append(issues, c.checkTextLegibility(nodes)...)
	return issues, nil
}

// checkViewport inspects the viewport meta's content. A missing tag is
// the metadata checker's finding, not repeated here.
func (c *MobileChecker) checkViewport(nodes []*model.Node) []model.Issue {
	meta := metaByName(nodes, "viewport")
	if meta == nil {
		return nil
	}

	var issues []model.Issue
	content := lower(meta.MetaContent)
	if !strings.Contains(content, "width=device-width") {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryMobile, "Viewport meta does not set width=device-width").
			WithNode(meta).
			WithRecommendation("Without device-width the page renders at desktop width and is zoomed out on phones."))
	}
	if !strings.Contains(content, "initial-scale") {
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
			model.CategoryMobile, "Viewport meta does not set initial-scale").
			WithNode(meta).
			WithRecommendation("Set initial-scale=1 for a predictable starting zoom."))
	}
	return issues
}

// checkTapTargets flags interactive elements smaller than the
// recommended minimum touch size.
func (c *MobileChecker) checkTapTargets(nodes []*model.Node) []model.Issue {
	var issues []model.Issue
	for _, n := range nodes {
		if !isInteractive(n) && !isInputNode(n) {
			continue
		}
		if n.Width == 0 && n.Height == 0 {
			continue
		}
		if n.Width < minTapTargetSize || n.Height < minTapTargetSize {
			issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
				model.CategoryMobile,
				fmt.Sprintf("Tap target %q is %.0fx%.0f, below the %dpx minimum", n.Name, n.Width, n.Height, minTapTargetSize)).
				WithNode(n).
				WithRecommendation("Small targets cause mis-taps; pad interactive elements to at least 48x48."))
		}
	}
	return issues
}

// checkTextLegibility flags small text and text blocks wider than a
// comfortable reading measure.
func (c *MobileChecker) checkTextLegibility(nodes []*model.Node) []model.Issue {
	var issues []model.Issue
	for _, n := range nodes {
		if !isTextNode(n) {
			continue
		}
		if n.FontSize > 0 && n.FontSize < minMobileFontSize {
			issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
				model.CategoryMobile,
				fmt.Sprintf("Text in %q is %.0fpx, small for mobile reading", n.Name, n.FontSize)).
				WithNode(n).
				WithRecommendation("Body text on mobile reads best at 14px or larger."))
		}
		if n.Width > maxTextBlockWidth {
			issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
				model.CategoryMobile,
				fmt.Sprintf("Text block %q is %.0fpx wide", n.Name, n.Width)).
				WithNode(n).
				WithRecommendation("Lines over ~600px force horizontal eye travel; constrain the measure."))
		}
	}
	return issues
}
