package checker

import (
	"context"
	"testing"

	"github.com/Suhas010/Framelytics/internal/model"
)

func a11yAnalyze(t *testing.T, nodes []*model.Node) []model.Issue {
	t.Helper()
	issues, err := NewAccessibilityChecker().Analyze(context.Background(), nodes)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	return issues
}

func TestAccessibilityMissingAltAttribute(t *testing.T) {
	t.Parallel()

	issues := a11yAnalyze(t, []*model.Node{
		{Name: "team portrait", Type: model.TypeImage, AltPresent: false},
	})
	issue := findIssue(issues, "no alt attribute")
	if issue == nil {
		t.Fatal("absent alt attribute not flagged")
	}
	if issue.Priority != model.PriorityCritical {
		t.Errorf("priority = %s, want critical", issue.Priority)
	}
}

func TestAccessibilityAriaLabelSatisfiesAlt(t *testing.T) {
	t.Parallel()

	issues := a11yAnalyze(t, []*model.Node{
		{Name: "team portrait", Type: model.TypeImage, AltPresent: false, AriaLabel: "The team at the 2025 offsite"},
	})
	if findIssue(issues, "no alt attribute") != nil {
		t.Error("aria-label did not satisfy the accessible-name requirement")
	}
}

func TestAccessibilityNonDescriptiveAlt(t *testing.T) {
	t.Parallel()

	for _, alt := range []string{"image", "img"} {
		issues := a11yAnalyze(t, []*model.Node{
			{Name: "chart", Type: model.TypeImage, AltPresent: true, Alt: alt},
		})
		if findIssue(issues, "not descriptive") == nil {
			t.Errorf("alt %q not flagged as non-descriptive", alt)
		}
	}
}

func TestAccessibilityDecorativeWithAlt(t *testing.T) {
	t.Parallel()

	issues := a11yAnalyze(t, []*model.Node{
		{Name: "divider graphic", Type: model.TypeImage, AltPresent: true,
			Alt: "A thin horizontal line", Decorative: true},
	})
	if findIssue(issues, "carries alt text") == nil {
		t.Error("decorative image with alt text not flagged")
	}
}

func TestAccessibilityAriaRoles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role    string
		invalid bool
	}{
		{"navigation", false},
		{"button", false},
		{"", false},
		{"navigaton", true},
		{"clickable", true},
	}

	for _, tt := range tests {
		issues := a11yAnalyze(t, []*model.Node{{Name: "widget", Role: tt.role}})
		got := findIssue(issues, "Unknown ARIA role") != nil
		if got != tt.invalid {
			t.Errorf("role %q: flagged=%v, want %v", tt.role, got, tt.invalid)
		}
	}
}

func TestAccessibilityUnnamedInteractive(t *testing.T) {
	t.Parallel()

	issues := a11yAnalyze(t, []*model.Node{
		{Name: "submit button", Type: model.TypeButton},
	})
	issue := findIssue(issues, "no accessible name")
	if issue == nil {
		t.Fatal("unnamed button not flagged")
	}
	if issue.Priority != model.PriorityCritical {
		t.Errorf("priority = %s, want critical", issue.Priority)
	}

	issues = a11yAnalyze(t, []*model.Node{
		{Name: "submit button", Type: model.TypeButton, Text: "Send message"},
	})
	if findIssue(issues, "no accessible name") != nil {
		t.Error("button with visible text flagged as unnamed")
	}
}

func TestAccessibilityFormLabelling(t *testing.T) {
	t.Parallel()

	t.Run("unlabelled input", func(t *testing.T) {
		t.Parallel()
		issues := a11yAnalyze(t, []*model.Node{
			{Name: "email input", Type: model.TypeInput},
		})
		issue := findIssue(issues, "no associated label")
		if issue == nil {
			t.Fatal("unlabelled input not flagged")
		}
		if issue.Priority != model.PriorityCritical {
			t.Errorf("priority = %s, want critical", issue.Priority)
		}
	})

	t.Run("label by name", func(t *testing.T) {
		t.Parallel()
		issues := a11yAnalyze(t, []*model.Node{
			{Name: "email input", Type: model.TypeInput},
			{Name: "email label", Type: model.TypeLabel, Text: "email input"},
		})
		if findIssue(issues, "no associated label") != nil {
			t.Error("input with a matching label flagged")
		}
	})

	t.Run("aria-label suffices", func(t *testing.T) {
		t.Parallel()
		issues := a11yAnalyze(t, []*model.Node{
			{Name: "search input", Type: model.TypeInput, AriaLabel: "Search articles"},
		})
		if findIssue(issues, "no associated label") != nil {
			t.Error("aria-labelled input flagged")
		}
	})

	t.Run("no error indicator", func(t *testing.T) {
		t.Parallel()
		issues := a11yAnalyze(t, []*model.Node{
			{Name: "email input", Type: model.TypeInput, AriaLabel: "Email address"},
		})
		if findIssue(issues, "no error indicator") == nil {
			t.Error("form without an error indicator element not flagged")
		}
	})
}

func TestAccessibilityNavigationAids(t *testing.T) {
	t.Parallel()

	issues := a11yAnalyze(t, []*model.Node{{Name: "body", Type: model.TypeText, Text: "copy"}})
	if findIssue(issues, "focus indicator") == nil {
		t.Error("missing focus indicator not flagged")
	}
	if findIssue(issues, "skip-navigation") == nil {
		t.Error("missing skip link not flagged")
	}

	issues = a11yAnalyze(t, []*model.Node{
		{Name: "focus outline style", Type: model.TypeText},
		{Name: "skip link", Type: model.TypeLink, Href: "#main", Text: "Skip to content"},
	})
	if findIssue(issues, "focus indicator") != nil {
		t.Error("focus indicator flagged despite focus styling node")
	}
	if findIssue(issues, "skip-navigation") != nil {
		t.Error("skip link flagged despite being present")
	}
}

func TestAccessibilityContrast(t *testing.T) {
	t.Parallel()

	issues := a11yAnalyze(t, []*model.Node{
		{Name: "hero text", Type: model.TypeText, Text: "Welcome", Color: "#FFFFFF", Background: "#ffffff"},
	})
	issue := findIssue(issues, "share the same color")
	if issue == nil {
		t.Fatal("same-tone text/background not flagged")
	}
	if issue.Severity != model.SeverityWarning {
		t.Errorf("severity = %s, want warning", issue.Severity)
	}

	// Without an exact match the checker can only remind, not measure.
	issues = a11yAnalyze(t, []*model.Node{
		{Name: "hero text", Type: model.TypeText, Text: "Welcome", Color: "#333333", Background: "#FFFFFF"},
	})
	if findIssue(issues, "Verify text contrast") == nil {
		t.Error("generic contrast reminder missing")
	}
}

func TestAccessibilityFontSizes(t *testing.T) {
	t.Parallel()

	issues := a11yAnalyze(t, []*model.Node{
		{Name: "legal footnote", Type: model.TypeText, Text: "terms apply", FontSize: 9},
	})
	if findIssue(issues, "below the 12px readability floor") == nil {
		t.Error("9px text not flagged")
	}
	if findIssue(issues, "relative font units") == nil {
		t.Error("relative-units suggestion missing")
	}
}
