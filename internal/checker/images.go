package checker

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// Image rule thresholds.
const (
	// minAltLength is the shortest alt text considered descriptive.
	minAltLength = 5

	// maxMissingAltExamples caps the per-image callouts for missing alt
	// text; the remainder is summarized in one issue.
	maxMissingAltExamples = 5

	// lazyLoadImageThreshold is the image count above which lazy
	// loading is suggested.
	lazyLoadImageThreshold = 3
)

// genericImageName matches throwaway export filenames like "image1.jpg"
// or "IMG_0042.png" that say nothing about the image's content.
var genericImageName = regexp.MustCompile(`(?i)^(image|img|picture|photo|screenshot|untitled)[-_ ]?\d*\.(jpe?g|png|gif|webp|svg)$`)

// ImagesChecker validates alt text, file naming, loading strategy, and
// explicit sizing of image nodes.
//
// Note: This checker treats an empty alt string as missing unless its
// own decorative heuristic fires. The accessibility checker instead
// honors an empty-but-present alt attribute as a deliberate decorative
// marker. The divergence is intentional and covered by tests; do not
// unify the two rules.
type ImagesChecker struct{}

// NewImagesChecker creates an ImagesChecker.
func NewImagesChecker() *ImagesChecker {
	return &ImagesChecker{}
}

// Name returns the checker name.
func (c *ImagesChecker) Name() string { return "images" }

// Category returns the checker's home category.
func (c *ImagesChecker) Category() model.Category { return model.CategoryImages }

// Analyze runs the image rules.
func (c *ImagesChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)

	var images []*model.Node
	for _, n := range nodes {
		if isImageNode(n) {
			images = append(images, n)
		}
	}
	if len(images) == 0 {
		return issues, nil
	}

	issues = append(issues, c.checkAltText(images)...)
	issues = append(issues, c.checkFilenames(images)...)

	if len(images) > lazyLoadImageThreshold {
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityImportant,
			model.CategoryImages,
			fmt.Sprintf("%d images on the page; consider lazy loading below-the-fold ones", len(images))).
			WithRecommendation(`Add loading="lazy" to images outside the initial viewport.`))
	}

	issues = append(issues, c.checkDimensions(images)...)

	return issues, nil
}

// checkAltText flags missing and too-short alt text. Missing alt on
// non-decorative images produces one critical error, per-image callouts
// capped at maxMissingAltExamples, and a remainder summary.
func (c *ImagesChecker) checkAltText(images []*model.Node) []model.Issue {
	var issues []model.Issue

	var missing []*model.Node
	for _, img := range images {
		if strings.TrimSpace(img.Alt) == "" && !isDecorativeImage(img) {
			missing = append(missing, img)
		}
	}

	if len(missing) > 0 {
		issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
			model.CategoryImages,
			fmt.Sprintf("%d images are missing alt text", len(missing))).
			WithRecommendation("Describe each content image's meaning in its alt attribute."))

		for i, img := range missing {
			if i == maxMissingAltExamples {
				issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
					model.CategoryImages,
					fmt.Sprintf("...and %d more images without alt text", len(missing)-maxMissingAltExamples)))
				break
			}
			issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
				model.CategoryImages, fmt.Sprintf("Image %q has no alt text", img.Name)).
				WithNode(img))
		}
	}

	for _, img := range images {
		alt := strings.TrimSpace(img.Alt)
		if alt != "" && len(alt) < minAltLength {
			issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
				model.CategoryImages,
				fmt.Sprintf("Alt text %q is too short to be descriptive", alt)).
				WithNode(img).
				WithRecommendation("Alt text should describe the image, not just name it."))
		}
	}

	return issues
}

// checkFilenames flags generic export filenames.
func (c *ImagesChecker) checkFilenames(images []*model.Node) []model.Issue {
	var issues []model.Issue
	for _, img := range images {
		candidate := img.Name
		if img.Href != "" {
			candidate = img.Href[strings.LastIndex(img.Href, "/")+1:]
		}
		if genericImageName.MatchString(candidate) {
			issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityNiceToHave,
				model.CategoryImages,
				fmt.Sprintf("Generic image filename %q", candidate)).
				WithNode(img).
				WithRecommendation("Rename image files to describe their content (keywords help ranking)."))
		}
	}
	return issues
}

// checkDimensions flags images without explicit width/height, which
// cause layout shift while the page loads.
func (c *ImagesChecker) checkDimensions(images []*model.Node) []model.Issue {
	var issues []model.Issue
	for _, img := range images {
		if img.Width == 0 || img.Height == 0 {
			issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
				model.CategoryImages,
				fmt.Sprintf("Image %q has no explicit width/height (layout-shift risk)", img.Name)).
				WithNode(img).
				WithRecommendation("Set explicit dimensions so the browser can reserve space before load."))
		}
	}
	return issues
}
