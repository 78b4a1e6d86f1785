package checker

import (
	"context"
	"fmt"
	"testing"

	"github.com/Suhas010/Framelytics/internal/model"
)

func imageNode(name, alt string, altPresent bool) *model.Node {
	return &model.Node{
		Name: name, Type: model.TypeImage,
		Alt: alt, AltPresent: altPresent,
		Width: 640, Height: 480,
	}
}

func TestImagesCheckerNoImages(t *testing.T) {
	t.Parallel()

	issues, err := NewImagesChecker().Analyze(context.Background(), []*model.Node{
		{Name: "body", Type: model.TypeText, Text: "no pictures here"},
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if len(issues) != 0 {
		t.Errorf("page without images produced %d issues, want 0", len(issues))
	}
}

func TestImagesCheckerMissingAlt(t *testing.T) {
	t.Parallel()

	nodes := []*model.Node{
		imageNode("team portrait", "", false),
		imageNode("office exterior", "Our office building in spring", true),
	}

	issues, err := NewImagesChecker().Analyze(context.Background(), nodes)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	summary := findIssue(issues, "missing alt text")
	if summary == nil {
		t.Fatal("no missing-alt summary issue")
	}
	if summary.Priority != model.PriorityCritical {
		t.Errorf("summary priority = %s, want critical", summary.Priority)
	}
	if findIssue(issues, `Image "team portrait" has no alt text`) == nil {
		t.Error("no per-image callout for the offending image")
	}
}

func TestImagesCheckerMissingAltCap(t *testing.T) {
	t.Parallel()

	var nodes []*model.Node
	for i := 0; i < 8; i++ {
		nodes = append(nodes, imageNode(fmt.Sprintf("gallery %d", i), "", false))
	}

	issues, err := NewImagesChecker().Analyze(context.Background(), nodes)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	callouts := 0
	for _, issue := range issues {
		if issue.NodeName != "" && issue.Priority == model.PriorityNiceToHave {
			callouts++
		}
	}
	if callouts > maxMissingAltExamples {
		t.Errorf("%d per-image callouts, cap is %d", callouts, maxMissingAltExamples)
	}
	if findIssue(issues, "and 3 more images") == nil {
		t.Error("no remainder summary for callouts beyond the cap")
	}
}

func TestImagesCheckerDecorativeSkipped(t *testing.T) {
	t.Parallel()

	nodes := []*model.Node{
		{Name: "section divider", Type: model.TypeImage, Decorative: true, Width: 640, Height: 4},
	}
	issues, err := NewImagesChecker().Analyze(context.Background(), nodes)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if findIssue(issues, "missing alt") != nil {
		t.Error("decorative image flagged for missing alt")
	}
}

func TestImagesCheckerShortAlt(t *testing.T) {
	t.Parallel()

	issues, err := NewImagesChecker().Analyze(context.Background(), []*model.Node{
		imageNode("chart", "img", true),
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	issue := findIssue(issues, "too short to be descriptive")
	if issue == nil {
		t.Fatal("3-character alt text not flagged")
	}
	if issue.Priority != model.PriorityImportant {
		t.Errorf("priority = %s, want important", issue.Priority)
	}
}

func TestImagesCheckerGenericFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filename string
		generic  bool
	}{
		{"IMG_0042.png", true},
		{"image1.jpg", true},
		{"Screenshot 2.png", true},
		{"drip-emitter-closeup.jpg", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			n := imageNode(tt.filename, "A drip emitter up close", true)
			issues, err := NewImagesChecker().Analyze(context.Background(), []*model.Node{n})
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			got := findIssue(issues, "Generic image filename") != nil
			if got != tt.generic {
				t.Errorf("generic=%v, want %v", got, tt.generic)
			}
		})
	}
}

func TestImagesCheckerLazyLoadingSuggestion(t *testing.T) {
	t.Parallel()

	var nodes []*model.Node
	for i := 0; i < lazyLoadImageThreshold+1; i++ {
		nodes = append(nodes, imageNode(fmt.Sprintf("product shot %d", i), "A product photo in context", true))
	}
	issues, err := NewImagesChecker().Analyze(context.Background(), nodes)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if findIssue(issues, "lazy loading") == nil {
		t.Errorf("%d images did not trigger the lazy-loading suggestion", len(nodes))
	}
}

func TestImagesCheckerMissingDimensions(t *testing.T) {
	t.Parallel()

	issues, err := NewImagesChecker().Analyze(context.Background(), []*model.Node{
		{Name: "hero banner", Type: model.TypeImage, Alt: "Sunrise over the garden", AltPresent: true},
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if findIssue(issues, "no explicit width/height") == nil {
		t.Error("zero-dimension image not flagged for layout shift")
	}
}

// TestEmptyAltAsymmetry pins the deliberate divergence between the two
// alt-text rules: an empty-but-present alt attribute is a failure for
// the images checker and a valid decorative marker for the
// accessibility checker.
func TestEmptyAltAsymmetry(t *testing.T) {
	t.Parallel()

	nodes := []*model.Node{imageNode("ambient texture", "", true)}

	imgIssues, err := NewImagesChecker().Analyze(context.Background(), nodes)
	if err != nil {
		t.Fatalf("images Analyze() error = %v", err)
	}
	if findIssue(imgIssues, "missing alt text") == nil {
		t.Error("images checker accepted an empty alt string")
	}

	a11yIssues, err := NewAccessibilityChecker().Analyze(context.Background(), nodes)
	if err != nil {
		t.Fatalf("accessibility Analyze() error = %v", err)
	}
	if findIssue(a11yIssues, "no alt attribute") != nil {
		t.Error("accessibility checker flagged a present-but-empty alt attribute")
	}
}
