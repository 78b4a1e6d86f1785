package checker

import (
	"context"
	"fmt"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// minReadableFontSize is the smallest font size, in pixels, considered
// readable for body text.
const minReadableFontSize = 12

// validAriaRoles is the set of ARIA roles the checker recognizes.
// Anything else is most likely a typo.
var validAriaRoles = map[string]bool{
	"alert": true, "alertdialog": true, "application": true, "article": true,
	"banner": true, "button": true, "checkbox": true, "columnheader": true,
	"combobox": true, "complementary": true, "contentinfo": true, "dialog": true,
	"document": true, "feed": true, "figure": true, "form": true, "grid": true,
	"gridcell": true, "group": true, "heading": true, "img": true, "link": true,
	"list": true, "listbox": true, "listitem": true, "main": true, "menu": true,
	"menubar": true, "menuitem": true, "navigation": true, "none": true,
	"option": true, "presentation": true, "progressbar": true, "radio": true,
	"radiogroup": true, "region": true, "row": true, "rowgroup": true,
	"rowheader": true, "search": true, "searchbox": true, "separator": true,
	"slider": true, "spinbutton": true, "status": true, "switch": true,
	"tab": true, "table": true, "tablist": true, "tabpanel": true,
	"textbox": true, "timer": true, "toolbar": true, "tooltip": true,
	"tree": true, "treegrid": true, "treeitem": true,
}

// AccessibilityChecker validates the page against screen-reader and
// keyboard-use rules: alt attributes, ARIA usage, form labelling, focus
// and navigation aids, and legibility hints.
//
// Note: unlike the images checker, this checker treats an empty alt
// attribute that is explicitly present as a deliberate decorative
// marker and does not flag it.
type AccessibilityChecker struct{}

// NewAccessibilityChecker creates an AccessibilityChecker.
func NewAccessibilityChecker() *AccessibilityChecker {
	return &AccessibilityChecker{}
}

// Name returns the checker name.
func (c *AccessibilityChecker) Name() string { return "accessibility" }

// Category returns the checker's home category.
func (c *AccessibilityChecker) Category() model.Category { return model.CategoryAccessibility }

// Analyze runs the accessibility rules.
func (c *AccessibilityChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)
	issues = append(issues, c.checkImageAlts(nodes)...)
	issues = append(issues, c.checkAriaRoles(nodes)...)
	issues = append(issues, c.checkInteractiveLabels(nodes)...)
	issues = append(issues, c.checkFormLabels(nodes)...)
	issues = append(issues, c.checkNavigationAids(nodes)...)
	issues = append(issues, c.checkContrast(nodes)...)
	issues = append(issues, c.checkFontSizes(nodes)...)
	return issues, nil
}

// checkImageAlts validates alt attributes per screen-reader semantics:
// an absent alt attribute is a failure, an empty-but-present one is a
// decorative marker and fine.
func (c *AccessibilityChecker) checkImageAlts(nodes []*model.Node) []model.Issue {
	var issues []model.Issue
	for _, n := range nodes {
		if !isImageNode(n) {
			continue
		}

		if !n.AltPresent && n.AriaLabel == "" {
			issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
				model.CategoryAccessibility,
				fmt.Sprintf("Image %q has no alt attribute", n.Name)).
				WithNode(n).
				WithRecommendation(`Add alt text, or alt="" if the image is purely decorative.`))
			continue
		}

		alt := strings.TrimSpace(n.Alt)
		if alt != "" {
			if lower(alt) == "image" || len(alt) < minAltLength {
				issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
					model.CategoryAccessibility,
					fmt.Sprintf("Alt text %q on %q is not descriptive", alt, n.Name)).
					WithNode(n).
					WithRecommendation("Alt text should convey what the image shows, not that it is an image."))
			}
			if n.Decorative {
				issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
					model.CategoryAccessibility,
					fmt.Sprintf("Decorative image %q carries alt text", n.Name)).
					WithNode(n).
					WithRecommendation(`Decorative images should use alt="" so screen readers skip them.`))
			}
		}
	}
	return issues
}

// checkAriaRoles flags roles not in the ARIA vocabulary.
func (c *AccessibilityChecker) checkAriaRoles(nodes []*model.Node) []model.Issue {
	var issues []model.Issue
	for _, n := range nodes {
		role := lower(strings.TrimSpace(n.Role))
		if role == "" || validAriaRoles[role] {
			continue
		}
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryAccessibility,
			fmt.Sprintf("Unknown ARIA role %q on %q", n.Role, n.Name)).
			WithNode(n).
			WithRecommendation("Unknown roles are ignored by assistive technology; check for typos."))
	}
	return issues
}

// checkInteractiveLabels requires every interactive element to expose
// an accessible name via text or aria-label.
func (c *AccessibilityChecker) checkInteractiveLabels(nodes []*model.Node) []model.Issue {
	var issues []model.Issue
	for _, n := range nodes {
		if !isInteractive(n) {
			continue
		}
		if strings.TrimSpace(n.Text) == "" && strings.TrimSpace(n.AriaLabel) == "" {
			issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
				model.CategoryAccessibility,
				fmt.Sprintf("Interactive element %q has no accessible name", n.Name)).
				WithNode(n).
				WithRecommendation("Give buttons and links visible text or an aria-label."))
		}
	}
	return issues
}

// checkFormLabels requires inputs to be labelled and forms to expose an
// error indicator element.
func (c *AccessibilityChecker) checkFormLabels(nodes []*model.Node) []model.Issue {
	var issues []model.Issue

	var inputs []*model.Node
	labels := make(map[string]bool)
	hasErrorIndicator := false
	for _, n := range nodes {
		switch {
		case isInputNode(n):
			inputs = append(inputs, n)
		case isLabelNode(n):
			labels[lower(n.Text)] = true
			if n.MetaContent != "" {
				labels[lower(n.MetaContent)] = true
			}
		}
		if nameContains(n, "error", "invalid", "validation") {
			hasErrorIndicator = true
		}
	}

	for _, input := range inputs {
		if strings.TrimSpace(input.AriaLabel) != "" {
			continue
		}
		if inputHasLabel(input, labels) {
			continue
		}
		issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
			model.CategoryAccessibility,
			fmt.Sprintf("Input %q has no associated label", input.Name)).
			WithNode(input).
			WithRecommendation("Associate a <label> or add an aria-label; placeholder text is not a label."))
	}

	if len(inputs) > 0 && !hasErrorIndicator {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryAccessibility, "Form inputs present but no error indicator element found").
			WithRecommendation("Reserve a visible element for validation errors and link it with aria-describedby."))
	}

	return issues
}

// inputHasLabel reports whether any label key matches the input's name,
// its name without the trailing element kind, or its ID. Extracted
// markup names controls "email input"; a label's for-attribute says just
// "email", so the suffix-stripped form is checked too.
func inputHasLabel(input *model.Node, labels map[string]bool) bool {
	candidates := []string{
		lower(input.Name),
		lower(strings.TrimSuffix(input.Name, " input")),
		lower(strings.TrimSuffix(input.Name, " textarea")),
		lower(strings.TrimSuffix(input.Name, " select")),
		lower(input.ID),
	}
	for _, c := range candidates {
		if c != "" && labels[c] {
			return true
		}
	}
	return false
}

// checkNavigationAids looks for a focus style and a skip-navigation
// link, both of which keyboard users depend on.
func (c *AccessibilityChecker) checkNavigationAids(nodes []*model.Node) []model.Issue {
	var issues []model.Issue

	hasFocusIndicator := false
	hasSkipNav := false
	for _, n := range nodes {
		if nameContains(n, "focus") {
			hasFocusIndicator = true
		}
		if isLinkNode(n) && (nameContains(n, "skip") || strings.Contains(lower(n.Text), "skip to")) {
			hasSkipNav = true
		}
	}

	if !hasFocusIndicator {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryAccessibility, "No focus indicator styling detected").
			WithRecommendation("Keyboard users cannot navigate without a visible focus outline."))
	}
	if !hasSkipNav {
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
			model.CategoryAccessibility, "No skip-navigation link found").
			WithRecommendation("A skip link lets keyboard users jump past repeated navigation."))
	}

	return issues
}

// checkContrast flags same-tone text/background pairs. Real contrast
// ratios need rendered colors, which the node list does not carry, so
// anything beyond an exact match gets a generic reminder.
func (c *AccessibilityChecker) checkContrast(nodes []*model.Node) []model.Issue {
	for _, n := range nodes {
		if n.Color != "" && n.Background != "" && lower(n.Color) == lower(n.Background) {
			return []model.Issue{
				model.NewIssue(model.SeverityWarning, model.PriorityImportant,
					model.CategoryAccessibility,
					fmt.Sprintf("Text and background share the same color on %q", n.Name)).
					WithNode(n).
					WithRecommendation("Same-tone text is invisible; fix the color pair."),
			}
		}
	}
	return []model.Issue{
		model.NewIssue(model.SeverityInfo, model.PriorityImportant,
			model.CategoryAccessibility, "Verify text contrast meets WCAG AA (4.5:1 for body text)").
			WithRecommendation("Static analysis cannot compute rendered contrast; check with a contrast tool."),
	}
}

// checkFontSizes flags sub-12px text and always suggests relative units.
func (c *AccessibilityChecker) checkFontSizes(nodes []*model.Node) []model.Issue {
	var issues []model.Issue

	small := 0
	for _, n := range nodes {
		if n.FontSize > 0 && n.FontSize < minReadableFontSize {
			small++
			issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
				model.CategoryAccessibility,
				fmt.Sprintf("Text in %q is %.0fpx, below the %dpx readability floor", n.Name, n.FontSize, minReadableFontSize)).
				WithNode(n))
		}
	}
	if small > 0 {
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
			model.CategoryAccessibility,
			fmt.Sprintf("%d text elements are below %dpx", small, minReadableFontSize)).
			WithRecommendation("Small text fails readability for low-vision users; raise the floor."))
	}

	issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
		model.CategoryAccessibility, "Prefer relative font units (rem/em) over fixed pixels").
		WithRecommendation("Relative units respect the reader's browser font-size preference."))

	return issues
}
