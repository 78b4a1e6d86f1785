package checker

import (
	"context"
	"fmt"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// Title and description length thresholds, in characters. Search engines
// truncate beyond the upper bounds and treat anything under the lower
// bounds as thin.
const (
	titleMinLength       = 30
	titleMaxLength       = 60
	descriptionMinLength = 120
	descriptionMaxLength = 158
)

// NewMetadataChecker creates the metadata checker: the core head-tag
// rules composed with the international rules. Both feed the metadata
// category, so the category map keeps exactly one entry even though two
// independent rule sets contribute to it.
func NewMetadataChecker() Checker {
	return NewComposite("metadata", model.CategoryMetadata,
		&coreMetadataChecker{},
		&internationalChecker{},
	)
}

// coreMetadataChecker validates the head-level tags every page needs:
// title, description, viewport, canonical, language, robots, favicon.
type coreMetadataChecker struct{}

// Name returns the checker name.
func (c *coreMetadataChecker) Name() string { return "metadata-core" }

// Category returns the checker's home category.
func (c *coreMetadataChecker) Category() model.Category { return model.CategoryMetadata }

// Analyze runs the core metadata rules.
func (c *coreMetadataChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)
	keywords := deriveKeywords(nodes)

	issues = append(issues, c.checkTitle(nodes, keywords)...)
	issues = append(issues, c.checkDescription(nodes, keywords)...)
	issues = append(issues, c.checkRequiredTags(nodes)...)

	return issues, nil
}

// checkTitle validates presence, length, and keyword coverage of the
// page title.
func (c *coreMetadataChecker) checkTitle(nodes []*model.Node, keywords []string) []model.Issue {
	var issues []model.Issue

	title, titleNode := findTitle(nodes)
	if title == "" {
		issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
			model.CategoryMetadata, "Page has no title").
			WithRecommendation("Add a descriptive title of 30-60 characters."))
		return issues
	}

	length := len(title)
	if length < titleMinLength {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryMetadata,
			fmt.Sprintf("Title too short (%d characters, minimum %d)", length, titleMinLength)).
			WithNode(titleNode).
			WithRecommendation("Expand the title so it describes the page on its own."))
	} else if length > titleMaxLength {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryMetadata,
			fmt.Sprintf("Title too long (%d characters, maximum %d)", length, titleMaxLength)).
			WithNode(titleNode).
			WithRecommendation("Search results truncate long titles; trim it below 60 characters."))
	}

	if !containsAnyKeyword(title, keywords) {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryMetadata, "Title does not contain any target keyword").
			WithNode(titleNode).
			WithRecommendation("Work the primary keyword into the title naturally."))
	}

	return issues
}

// checkDescription validates presence, length, and keyword coverage of
// the meta description.
func (c *coreMetadataChecker) checkDescription(nodes []*model.Node, keywords []string) []model.Issue {
	var issues []model.Issue

	meta := metaByName(nodes, "description")
	if meta == nil || meta.MetaContent == "" {
		issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
			model.CategoryMetadata, "Missing meta description").
			WithRecommendation("Add a meta description of 120-158 characters summarizing the page."))
		return issues
	}

	length := len(meta.MetaContent)
	if length < descriptionMinLength {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryMetadata,
			fmt.Sprintf("Meta description too short (%d characters, minimum %d)", length, descriptionMinLength)).
			WithNode(meta).
			WithRecommendation("Use the full snippet space; short descriptions waste the preview."))
	} else if length > descriptionMaxLength {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryMetadata,
			fmt.Sprintf("Meta description too long (%d characters, maximum %d)", length, descriptionMaxLength)).
			WithNode(meta).
			WithRecommendation("Search results cut descriptions around 158 characters."))
	}

	if !containsAnyKeyword(meta.MetaContent, keywords) {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryMetadata, "Meta description does not contain any target keyword").
			WithNode(meta).
			WithRecommendation("Mention the primary keyword in the description."))
	}

	return issues
}

// requiredTag describes one required head-level entry and the fixed
// severity/priority of its absence.
type requiredTag struct {
	metaName string
	present  func(nodes []*model.Node) bool
	severity model.Severity
	priority model.Priority
	message  string
	fix      string
}

// requiredTags is the fixed table of head entries beyond title and
// description. Severity is fixed per field: viewport is critical,
// canonical and lang are important, robots and favicon are nice-to-have.
var requiredTags = []requiredTag{
	{
		metaName: "viewport",
		severity: model.SeverityError,
		priority: model.PriorityCritical,
		message:  "Missing viewport meta tag",
		fix:      `Add <meta name="viewport" content="width=device-width, initial-scale=1">.`,
	},
	{
		metaName: "canonical",
		present:  hasCanonical,
		severity: model.SeverityWarning,
		priority: model.PriorityImportant,
		message:  "Missing canonical URL",
		fix:      "Declare a canonical link to avoid duplicate-content penalties.",
	},
	{
		metaName: "lang",
		present:  hasLang,
		severity: model.SeverityWarning,
		priority: model.PriorityImportant,
		message:  "Missing html lang attribute",
		fix:      "Declare the document language for screen readers and search engines.",
	},
	{
		metaName: "robots",
		severity: model.SeverityInfo,
		priority: model.PriorityNiceToHave,
		message:  "Missing robots meta tag",
		fix:      "Declare indexing intent explicitly with a robots meta tag.",
	},
	{
		metaName: "favicon",
		present:  hasFavicon,
		severity: model.SeverityInfo,
		priority: model.PriorityNiceToHave,
		message:  "Missing favicon",
		fix:      "Link a favicon so browser tabs and bookmarks show an icon.",
	},
}

// checkRequiredTags walks the fixed table of required head entries.
func (c *coreMetadataChecker) checkRequiredTags(nodes []*model.Node) []model.Issue {
	var issues []model.Issue
	for _, tag := range requiredTags {
		present := false
		if tag.present != nil {
			present = tag.present(nodes)
		} else if meta := metaByName(nodes, tag.metaName); meta != nil && meta.MetaContent != "" {
			present = true
		}
		if !present {
			issues = append(issues, model.NewIssue(tag.severity, tag.priority,
				model.CategoryMetadata, tag.message).WithRecommendation(tag.fix))
		}
	}
	return issues
}

// hasCanonical reports whether a canonical link entry exists.
func hasCanonical(nodes []*model.Node) bool {
	for _, n := range nodes {
		if strings.EqualFold(n.Rel, "canonical") && n.Href != "" {
			return true
		}
	}
	return metaByName(nodes, "canonical") != nil
}

// hasLang reports whether a document language declaration exists.
func hasLang(nodes []*model.Node) bool {
	if meta := metaByName(nodes, "lang"); meta != nil && meta.MetaContent != "" {
		return true
	}
	meta := metaByName(nodes, "language")
	return meta != nil && meta.MetaContent != ""
}

// hasFavicon reports whether an icon link entry exists.
func hasFavicon(nodes []*model.Node) bool {
	for _, n := range nodes {
		if strings.Contains(strings.ToLower(n.Rel), "icon") && n.Href != "" {
			return true
		}
	}
	return false
}
