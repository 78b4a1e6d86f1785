package checker

import (
	"context"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// FaviconChecker validates favicon declarations: presence, declared
// sizes, Apple touch icon, and format coverage. The metadata checker
// already notes a fully absent favicon; this checker grades the quality
// of what is declared.
type FaviconChecker struct{}

// NewFaviconChecker creates a FaviconChecker.
func NewFaviconChecker() *FaviconChecker {
	return &FaviconChecker{}
}

// Name returns the checker name.
func (c *FaviconChecker) Name() string { return "favicon" }

// Category returns the checker's home category.
func (c *FaviconChecker) Category() model.Category { return model.CategoryFavicon }

// Analyze runs the favicon rules.
func (c *FaviconChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)

	var icons []*model.Node
	hasTouchIcon := false
	for _, n := range nodes {
		rel := lower(n.Rel)
		if !strings.Contains(rel, "icon") {
			continue
		}
		icons = append(icons, n)
		if strings.Contains(rel, "apple-touch-icon") {
			hasTouchIcon = true
		}
	}

	if len(icons) == 0 {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryFavicon, "No favicon declared").
			WithRecommendation("Browsers show a blank tab icon and bookmark entry without one."))
		return issues, nil
	}

	hasSizes := false
	svgOnly := true
	for _, icon := range icons {
		if icon.MetaContent != "" {
			hasSizes = true
		}
		if !strings.HasSuffix(lower(icon.Href), ".svg") {
			svgOnly = false
		}
	}

	if !hasSizes {
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
			model.CategoryFavicon, "Favicon declared without a sizes attribute").
			WithRecommendation("Declared sizes let the browser pick the sharpest variant."))
	}
	if !hasTouchIcon {
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
			model.CategoryFavicon, "No apple-touch-icon declared").
			WithRecommendation("iOS home-screen shortcuts fall back to a page screenshot without one."))
	}
	if svgOnly {
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
			model.CategoryFavicon, "Only SVG favicons declared").
			WithRecommendation("Ship a PNG or ICO fallback for browsers without SVG favicon support."))
	}

	return issues, nil
}
