package checker

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// Leak patterns for content that must never ship in markup.
var (
	awsAccessKeyPattern = regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`)
	privateKeyPattern   = regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----`)
	emailPattern        = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// SecurityChecker flags mixed content, insecure form handlers, leaked
// credentials, and harvestable email addresses.
type SecurityChecker struct{}

// NewSecurityChecker creates a SecurityChecker.
func NewSecurityChecker() *SecurityChecker {
	return &SecurityChecker{}
}

// Name returns the checker name.
func (c *SecurityChecker) Name() string { return "security" }

// Category returns the checker's home category.
func (c *SecurityChecker) Category() model.Category { return model.CategorySecurity }

// Analyze runs the security rules.
func (c *SecurityChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)
	issues = append(issues, c.checkMixedContent(nodes)...)
	issues = append(issues, c.checkLeaks(nodes)...)
	return issues, nil
}

// checkMixedContent flags plain-http references, with form handlers as
// the critical case.
func (c *SecurityChecker) checkMixedContent(nodes []*model.Node) []model.Issue {
	var issues []model.Issue
	for _, n := range nodes {
		href := lower(strings.TrimSpace(n.Href))
		if !strings.HasPrefix(href, "http://") {
			continue
		}

		if nameContains(n, "form") || n.Type == model.TypeInput {
			issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
				model.CategorySecurity,
				fmt.Sprintf("Form %q submits over plain HTTP", n.Name)).
				WithNode(n).
				WithRecommendation("Submitted data travels unencrypted; move the handler to HTTPS."))
			continue
		}

		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategorySecurity,
			fmt.Sprintf("Insecure http:// reference on %q: %s", n.Name, n.Href)).
			WithNode(n).
			WithRecommendation("Mixed content triggers browser warnings and is blocked for active resources."))
	}
	return issues
}

// checkLeaks scans node text for credential material and exposed email
// addresses.
func (c *SecurityChecker) checkLeaks(nodes []*model.Node) []model.Issue {
	var issues []model.Issue
	for _, n := range nodes {
		text := n.Text
		if text == "" {
			continue
		}

		if awsAccessKeyPattern.MatchString(text) || privateKeyPattern.MatchString(text) {
			issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
				model.CategorySecurity,
				fmt.Sprintf("Possible credential material in %q", n.Name)).
				WithNode(n).
				WithRecommendation("Rotate the exposed key immediately and strip it from the page."))
		}

		if email := emailPattern.FindString(text); email != "" {
			issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
				model.CategorySecurity,
				fmt.Sprintf("Plain-text email address %q in %q", email, n.Name)).
				WithNode(n).
				WithRecommendation("Harvesters scrape plain addresses; use a contact form or obfuscation."))
		}
	}
	return issues
}
