package checker

import (
	"context"
	"testing"

	"github.com/Suhas010/Framelytics/internal/model"
)

func schemaAnalyze(t *testing.T, nodes []*model.Node) []model.Issue {
	t.Helper()
	issues, err := NewSchemaChecker().Analyze(context.Background(), nodes)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	return issues
}

func TestSchemaCheckerNoStructuredData(t *testing.T) {
	t.Parallel()

	issues := schemaAnalyze(t, []*model.Node{
		{Name: "body", Type: model.TypeText, Text: "copy"},
	})
	issue := findIssue(issues, "No structured data")
	if issue == nil {
		t.Fatal("structured-data absence not flagged")
	}
	if issue.Priority != model.PriorityImportant {
		t.Errorf("priority = %s, want important", issue.Priority)
	}
}

func TestSchemaCheckerMicrodataSuffices(t *testing.T) {
	t.Parallel()

	issues := schemaAnalyze(t, []*model.Node{
		{Name: "article card", ItemType: "https://schema.org/Article"},
	})
	if findIssue(issues, "No structured data") != nil {
		t.Error("microdata itemtype not recognized as structured data")
	}
}

func TestSchemaCheckerJSONLD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{
			name:    "valid block",
			payload: `{"@context": "https://schema.org", "@type": "Article", "headline": "Irrigation"}`,
			wantMsg: "",
		},
		{
			name:    "invalid json",
			payload: `{"@context": "https://schema.org", "@type": }`,
			wantMsg: "not valid JSON",
		},
		{
			name:    "missing @type",
			payload: `{"@context": "https://schema.org", "headline": "Irrigation"}`,
			wantMsg: "no @type",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			issues := schemaAnalyze(t, []*model.Node{
				{Name: "ld+json block", Type: model.TypeScript, Text: tt.payload},
			})
			if tt.wantMsg == "" {
				if len(issues) != 0 {
					t.Errorf("valid JSON-LD produced %d issues, want 0", len(issues))
				}
				return
			}
			if findIssue(issues, tt.wantMsg) == nil {
				t.Errorf("no issue containing %q", tt.wantMsg)
			}
		})
	}
}

func TestSchemaCheckerDetectsJSONLDByContent(t *testing.T) {
	t.Parallel()

	// No ld+json name hint; the schema.org payload itself is the signal.
	issues := schemaAnalyze(t, []*model.Node{
		{Name: "inline script", Type: model.TypeScript,
			Text: `{"@context": "https://schema.org", "@type": "FAQPage"}`},
	})
	if findIssue(issues, "No structured data") != nil {
		t.Error("schema.org JSON payload not detected as JSON-LD")
	}
}
