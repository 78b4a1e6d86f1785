package checker

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// Link rule thresholds.
const (
	maxAnchorTextLength = 100
	minGenericAnchorLen = 20 // generic phrases only flagged on short anchors
	minInternalLinks    = 3
)

// genericAnchorTexts are anchor phrases that say nothing about the
// destination.
var genericAnchorTexts = []string{
	"click here", "read more", "learn more", "here", "more", "link", "this",
}

// placeholderMarkers identify hrefs that were never replaced with real
// destinations before shipping.
var placeholderMarkers = []string{
	"example.com", "placeholder", "dummy", "test.", ".temp",
}

// spamDomains are link destinations that damage a page's reputation.
var spamDomains = []string{
	"bit.ly/spam", "clickbait", "free-money", "casino-online",
}

// LinksChecker validates href integrity, anchor text quality, and the
// page's internal linking profile.
type LinksChecker struct{}

// NewLinksChecker creates a LinksChecker.
func NewLinksChecker() *LinksChecker {
	return &LinksChecker{}
}

// Name returns the checker name.
func (c *LinksChecker) Name() string { return "links" }

// Category returns the checker's home category.
func (c *LinksChecker) Category() model.Category { return model.CategoryLinks }

// Analyze runs the link rules.
func (c *LinksChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)

	var links []*model.Node
	for _, n := range nodes {
		if isLinkNode(n) {
			links = append(links, n)
		}
	}
	if len(links) == 0 {
		return issues, nil
	}

	for _, link := range links {
		issues = append(issues, c.checkHref(link)...)
		issues = append(issues, c.checkAnchorText(link)...)
		issues = append(issues, c.checkTarget(link)...)
	}
	issues = append(issues, c.checkLinkProfile(links)...)

	// Static analysis proves structure, not reachability.
	issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
		model.CategoryLinks, "Verify link destinations resolve in production").
		WithRecommendation("This audit checks link structure only; dead destinations need an HTTP pass."))

	return issues, nil
}

// checkHref validates a single link's destination.
func (c *LinksChecker) checkHref(link *model.Node) []model.Issue {
	var issues []model.Issue
	href := strings.TrimSpace(link.Href)

	if href == "" {
		issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
			model.CategoryLinks, fmt.Sprintf("Link %q has an empty href", link.Name)).
			WithNode(link).
			WithRecommendation("Empty hrefs reload the page and confuse crawlers; set a destination or remove the link."))
		return issues
	}

	if href == "#" || lower(href) == "javascript:void(0)" {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryLinks, fmt.Sprintf("Link %q points nowhere (%s)", link.Name, href)).
			WithNode(link).
			WithRecommendation("Use a <button> for script-only actions; reserve links for navigation."))
		return issues
	}

	for _, marker := range placeholderMarkers {
		if strings.Contains(lower(href), marker) {
			issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityCritical,
				model.CategoryLinks, fmt.Sprintf("Link %q looks like a placeholder: %s", link.Name, href)).
				WithNode(link).
				WithRecommendation("Replace placeholder destinations before publishing."))
			return issues
		}
	}

	for _, domain := range spamDomains {
		if strings.Contains(lower(href), domain) {
			issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
				model.CategoryLinks, fmt.Sprintf("Link %q points to a known low-reputation destination: %s", link.Name, href)).
				WithNode(link).
				WithRecommendation("Outbound links to spam domains damage the page's own ranking."))
			return issues
		}
	}

	if !isRelativeHref(href) {
		if u, err := url.Parse(href); err != nil || u.Scheme == "" || u.Host == "" {
			issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
				model.CategoryLinks, fmt.Sprintf("Link %q has a malformed URL: %s", link.Name, href)).
				WithNode(link).
				WithRecommendation("Absolute URLs need a scheme and host; relative ones should start with / or #."))
		}
	}

	return issues
}

// checkAnchorText flags generic and over-long anchor text.
func (c *LinksChecker) checkAnchorText(link *model.Node) []model.Issue {
	var issues []model.Issue
	text := strings.TrimSpace(link.Text)
	if text == "" {
		return issues
	}

	if len(text) < minGenericAnchorLen {
		lowered := lower(text)
		for _, generic := range genericAnchorTexts {
			if lowered == generic {
				issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
					model.CategoryLinks, fmt.Sprintf("Generic anchor text %q", text)).
					WithNode(link).
					WithRecommendation("Anchor text should describe the destination; crawlers weight it heavily."))
				break
			}
		}
	}

	if len(text) > maxAnchorTextLength {
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
			model.CategoryLinks,
			fmt.Sprintf("Anchor text on %q is %d characters long", link.Name, len(text))).
			WithNode(link).
			WithRecommendation("Keep anchors concise; whole sentences dilute the link's signal."))
	}

	return issues
}

// checkTarget requires rel protection on external _blank links.
func (c *LinksChecker) checkTarget(link *model.Node) []model.Issue {
	if lower(link.Target) != "_blank" || !isExternalHref(link.Href) {
		return nil
	}
	rel := lower(link.Rel)
	if strings.Contains(rel, "noopener") || strings.Contains(rel, "noreferrer") {
		return nil
	}
	return []model.Issue{
		model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryLinks,
			fmt.Sprintf("External link %q opens a new tab without rel=\"noopener\"", link.Name)).
			WithNode(link).
			WithRecommendation("Without noopener the opened page can script against this one."),
	}
}

// checkLinkProfile validates page-level linking: enough internal links
// and no duplicated anchor text pointing at different destinations.
func (c *LinksChecker) checkLinkProfile(links []*model.Node) []model.Issue {
	var issues []model.Issue

	internal := 0
	anchorHrefs := make(map[string]string)
	duplicateReported := make(map[string]bool)
	for _, link := range links {
		if isRelativeHref(link.Href) || !isExternalHref(link.Href) {
			internal++
		}

		text := lower(strings.TrimSpace(link.Text))
		if text == "" {
			continue
		}
		if prev, ok := anchorHrefs[text]; ok && prev != link.Href && !duplicateReported[text] {
			duplicateReported[text] = true
			issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
				model.CategoryLinks,
				fmt.Sprintf("Anchor text %q points at multiple destinations", strings.TrimSpace(link.Text))).
				WithNode(link).
				WithRecommendation("Same words, same destination; differing targets confuse readers and crawlers."))
		} else if !ok {
			anchorHrefs[text] = link.Href
		}
	}

	if internal < minInternalLinks {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryLinks,
			fmt.Sprintf("Only %d internal links (minimum %d)", internal, minInternalLinks)).
			WithRecommendation("Internal links spread ranking signal and keep visitors on the site."))
	}

	return issues
}
