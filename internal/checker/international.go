package checker

import (
	"context"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// internationalChecker validates localization hints: charset, language
// region, and hreflang alternates. It is logically its own rule set but
// reports into the metadata category; the metadata composite owns it.
type internationalChecker struct{}

// Name returns the checker name.
func (c *internationalChecker) Name() string { return "international" }

// Category returns the checker's home category. International issues
// are folded into metadata.
func (c *internationalChecker) Category() model.Category { return model.CategoryMetadata }

// Analyze runs the international rules.
func (c *internationalChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)

	if meta := metaByName(nodes, "charset"); meta == nil || meta.MetaContent == "" {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryMetadata, "Missing character encoding declaration").
			WithRecommendation(`Declare <meta charset="utf-8"> first in the head.`))
	}

	// A bare language code renders identically for "en" readers in the
	// US and Australia; region-qualified codes let search engines serve
	// the right variant.
	if meta := metaByName(nodes, "lang"); meta != nil && meta.MetaContent != "" {
		if !strings.Contains(meta.MetaContent, "-") {
			issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
				model.CategoryMetadata,
				"Language declared without a region (e.g. \""+meta.MetaContent+"\" instead of \""+meta.MetaContent+"-US\")").
				WithNode(meta).
				WithRecommendation("Qualify the language with a region when content targets one market."))
		}
	}

	issues = append(issues, c.checkHreflang(nodes)...)
	return issues, nil
}

// checkHreflang validates alternate-language link entries: a page that
// declares any hreflang alternates must also declare an x-default.
func (c *internationalChecker) checkHreflang(nodes []*model.Node) []model.Issue {
	var alternates int
	var hasDefault bool
	for _, n := range nodes {
		if !strings.EqualFold(n.Rel, "alternate") || n.MetaContent == "" {
			continue
		}
		alternates++
		if strings.EqualFold(n.MetaContent, "x-default") {
			hasDefault = true
		}
	}

	if alternates > 0 && !hasDefault {
		return []model.Issue{
			model.NewIssue(model.SeverityWarning, model.PriorityImportant,
				model.CategoryMetadata, "hreflang alternates declared without an x-default").
				WithRecommendation("Add an x-default hreflang entry for unmatched locales."),
		}
	}
	return nil
}
