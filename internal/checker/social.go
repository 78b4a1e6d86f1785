package checker

import (
	"context"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// requiredOpenGraphTags are the four Open Graph properties every
// shareable page needs.
var requiredOpenGraphTags = []string{"og:title", "og:type", "og:image", "og:url"}

// essentialTwitterTags are the Twitter card properties checked beyond
// twitter:card itself.
var essentialTwitterTags = []string{"twitter:title", "twitter:description", "twitter:image"}

// SocialChecker validates Open Graph and Twitter card completeness so
// shared links render a proper preview.
type SocialChecker struct{}

// NewSocialChecker creates a SocialChecker.
func NewSocialChecker() *SocialChecker {
	return &SocialChecker{}
}

// Name returns the checker name.
func (c *SocialChecker) Name() string { return "social" }

// Category returns the checker's home category.
func (c *SocialChecker) Category() model.Category { return model.CategorySocial }

// Analyze runs the social preview rules.
func (c *SocialChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)
	issues = append(issues, c.checkOpenGraph(nodes)...)
	issues = append(issues, c.checkTwitterCard(nodes)...)
	issues = append(issues, c.checkPreviewImage(nodes)...)
	return issues, nil
}

// socialProperty reads an Open Graph / Twitter meta value by property,
// falling back to the name attribute (Twitter tags are written both ways
// in the wild).
func socialProperty(nodes []*model.Node, property string) string {
	if meta := metaByProperty(nodes, property); meta != nil {
		return meta.MetaContent
	}
	if meta := metaByName(nodes, property); meta != nil {
		return meta.MetaContent
	}
	return ""
}

// checkOpenGraph validates the four required OG tags plus og:description
// and og:image:alt.
func (c *SocialChecker) checkOpenGraph(nodes []*model.Node) []model.Issue {
	var issues []model.Issue

	var missing []string
	for _, tag := range requiredOpenGraphTags {
		if socialProperty(nodes, tag) == "" {
			missing = append(missing, tag)
		}
	}

	switch {
	case len(missing) == len(requiredOpenGraphTags):
		issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
			model.CategorySocial, "No Open Graph tags found; shared links will render without a preview").
			WithRecommendation("Add og:title, og:type, og:image, and og:url."))
	case len(missing) > 0:
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategorySocial, "Missing Open Graph tags: "+strings.Join(missing, ", ")).
			WithRecommendation("Complete the Open Graph set so previews render fully."))
	}

	if socialProperty(nodes, "og:description") == "" {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategorySocial, "Missing og:description").
			WithRecommendation("Shared links fall back to arbitrary page text without it."))
	}

	if socialProperty(nodes, "og:image") != "" && socialProperty(nodes, "og:image:alt") == "" {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategorySocial, "og:image declared without og:image:alt").
			WithRecommendation("Describe the preview image for assistive technology."))
	}

	return issues
}

// checkTwitterCard validates twitter:card and the essential card tags.
func (c *SocialChecker) checkTwitterCard(nodes []*model.Node) []model.Issue {
	var issues []model.Issue

	if socialProperty(nodes, "twitter:card") == "" {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategorySocial, "Missing twitter:card tag").
			WithRecommendation(`Add <meta name="twitter:card" content="summary_large_image">.`))
	}

	var missing []string
	for _, tag := range essentialTwitterTags {
		if socialProperty(nodes, tag) == "" {
			missing = append(missing, tag)
		}
	}
	if len(missing) > 0 {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategorySocial, "Missing Twitter card tags: "+strings.Join(missing, ", ")).
			WithRecommendation("Twitter falls back to Open Graph only partially; declare the card tags."))
	}

	return issues
}

// checkPreviewImage ensures at least one social preview image exists
// across OG and Twitter.
func (c *SocialChecker) checkPreviewImage(nodes []*model.Node) []model.Issue {
	ogImage := socialProperty(nodes, "og:image") != ""
	twitterImage := socialProperty(nodes, "twitter:image") != ""

	switch {
	case !ogImage && !twitterImage:
		return []model.Issue{
			model.NewIssue(model.SeverityError, model.PriorityCritical,
				model.CategorySocial, "No social preview image (neither og:image nor twitter:image)").
				WithRecommendation("Pages without a preview image get dramatically fewer clicks when shared."),
		}
	case !ogImage:
		return []model.Issue{
			model.NewIssue(model.SeverityWarning, model.PriorityImportant,
				model.CategorySocial, "Missing og:image (twitter:image is present)").
				WithRecommendation("Most platforms read og:image; do not rely on the Twitter tag alone."),
		}
	case !twitterImage:
		return []model.Issue{
			model.NewIssue(model.SeverityWarning, model.PriorityImportant,
				model.CategorySocial, "Missing twitter:image (og:image is present)").
				WithRecommendation("Declare twitter:image explicitly for consistent card rendering."),
		}
	}
	return nil
}
