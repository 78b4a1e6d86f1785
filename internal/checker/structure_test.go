package checker

import (
	"context"
	"strings"
	"testing"

	"github.com/Suhas010/Framelytics/internal/model"
)

func TestStructureCheckerHeadingHierarchy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		nodes   []*model.Node
		wantMsg string
	}{
		{
			name:    "no h1",
			nodes:   []*model.Node{{Name: "body", Type: model.TypeText, Text: "text"}},
			wantMsg: "no H1",
		},
		{
			name: "multiple h1",
			nodes: []*model.Node{
				{Name: "main h1", Type: model.TypeHeading1, Text: "How to Water a Vegetable Garden"},
				{Name: "stray h1", Type: model.TypeHeading1, Text: "Also About Watering Your Garden"},
			},
			wantMsg: "2 H1 headings",
		},
		{
			name: "h2 without h1",
			nodes: []*model.Node{
				{Name: "section", Type: model.TypeHeading2, Text: "Drip Systems"},
			},
			wantMsg: "H2 used without an H1",
		},
		{
			name: "h3 without h2",
			nodes: []*model.Node{
				{Name: "main h1", Type: model.TypeHeading1, Text: "How to Water a Vegetable Garden"},
				{Name: "detail", Type: model.TypeHeading3, Text: "Emitter spacing"},
			},
			wantMsg: "H3 used without an H2",
		},
		{
			name: "short h1",
			nodes: []*model.Node{
				{Name: "main h1", Type: model.TypeHeading1, Text: "Watering"},
			},
			wantMsg: "H1 text is short",
		},
		{
			name: "long h1",
			nodes: []*model.Node{
				{Name: "main h1", Type: model.TypeHeading1, Text: strings.Repeat("Watering Gardens ", 5)},
			},
			wantMsg: "H1 text is long",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			issues, err := NewStructureChecker().Analyze(context.Background(), tt.nodes)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if findIssue(issues, tt.wantMsg) == nil {
				t.Errorf("no issue containing %q", tt.wantMsg)
			}
		})
	}
}

func TestStructureCheckerMainHeadingSuggestion(t *testing.T) {
	t.Parallel()

	nodes := []*model.Node{
		{Name: "promo banner heading", Type: model.TypeHeading1, Text: "Spring Sale on Irrigation Kits Now"},
		{Name: "page title heading", Type: model.TypeHeading1, Text: "How to Water a Vegetable Garden"},
	}
	issues, err := NewStructureChecker().Analyze(context.Background(), nodes)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	suggestion := findIssue(issues, "looks like the main H1")
	if suggestion == nil {
		t.Fatal("no main-heading suggestion issued for a multi-H1 page")
	}
	// The node named like a title wins over document order.
	if !strings.Contains(suggestion.Message, "page title heading") {
		t.Errorf("suggestion picked %q, want the title-named node", suggestion.Message)
	}
	if suggestion.Priority != model.PriorityNiceToHave {
		t.Errorf("suggestion priority = %s, want nice-to-have", suggestion.Priority)
	}
}

func TestStructureCheckerLandmarks(t *testing.T) {
	t.Parallel()

	issues, err := NewStructureChecker().Analyze(context.Background(), []*model.Node{
		{Name: "main h1", Type: model.TypeHeading1, Text: "How to Water a Vegetable Garden"},
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	for _, landmark := range []string{"header", "navigation", "footer"} {
		if findIssue(issues, "No "+landmark+" landmark") == nil {
			t.Errorf("missing %s landmark not flagged", landmark)
		}
	}

	// Role attributes satisfy landmarks just like element names.
	withRoles := []*model.Node{
		{Name: "main h1", Type: model.TypeHeading1, Text: "How to Water a Vegetable Garden"},
		{Name: "top region", Role: "header"},
		{Name: "menu region", Role: "navigation"},
		{Name: "bottom region", Role: "footer"},
	}
	issues, err = NewStructureChecker().Analyze(context.Background(), withRoles)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if findIssue(issues, "landmark") != nil {
		t.Error("landmark issue raised despite role-based landmarks")
	}
}

func TestStructureCheckerContentWithoutSubheadings(t *testing.T) {
	t.Parallel()

	nodes := []*model.Node{
		{Name: "main h1", Type: model.TypeHeading1, Text: "How to Water a Vegetable Garden"},
	}
	for i := 0; i < 12; i++ {
		nodes = append(nodes, &model.Node{Name: "para", Type: model.TypeText, Text: "Some copy."})
	}

	issues, err := NewStructureChecker().Analyze(context.Background(), nodes)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if findIssue(issues, "no H2 subheadings") == nil {
		t.Error("long unsectioned content not flagged")
	}
}
