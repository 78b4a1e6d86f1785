package checker

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// stubChecker is a configurable checker for engine tests.
type stubChecker struct {
	name     string
	category model.Category
	issues   []model.Issue
	err      error
	panicMsg string
	block    bool
}

func (s *stubChecker) Name() string             { return s.name }
func (s *stubChecker) Category() model.Category { return s.category }

func (s *stubChecker) Analyze(ctx context.Context, _ []*model.Node) ([]model.Issue, error) {
	if s.panicMsg != "" {
		panic(s.panicMsg)
	}
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.issues, nil
}

// testEngine builds an engine with only the given checkers registered,
// bypassing the built-in set.
func testEngine(checkers ...Checker) *Engine {
	e := &Engine{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, c := range checkers {
		e.Register(c)
	}
	return e
}

// quietEngine builds the full built-in engine with discarded logs.
func quietEngine(opts ...Option) *Engine {
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return NewEngine(opts...)
}

// findIssue returns the first issue whose message contains the
// substring, or nil.
func findIssue(issues []model.Issue, substr string) *model.Issue {
	for i := range issues {
		if strings.Contains(issues[i].Message, substr) {
			return &issues[i]
		}
	}
	return nil
}

// countPriority counts issues with the given priority.
func countPriority(issues []model.Issue, p model.Priority) int {
	count := 0
	for _, issue := range issues {
		if issue.Priority == p {
			count++
		}
	}
	return count
}

// messyPage is a node list that trips rules in most categories. Used by
// engine-level property tests that need a realistic non-trivial run.
func messyPage() []*model.Node {
	return []*model.Node{
		{ID: "t1", Name: "title", Text: "Short"},
		{ID: "h2-1", Name: "section h2", Type: model.TypeHeading2, Text: "A section without an H1 above it"},
		{ID: "img1", Name: "img_1.png", Type: model.TypeImage, Alt: "", AltPresent: false},
		{ID: "img2", Name: "hero image", Type: model.TypeImage, Alt: "x", AltPresent: true},
		{ID: "txt1", Name: "intro paragraph", Type: model.TypeText, Text: "Tiny."},
		{ID: "lnk1", Name: "cta link", Type: model.TypeLink, Href: "", Text: "click here"},
		{ID: "lnk2", Name: "external", Type: model.TypeLink, Href: "https://example.org/a", Target: "_blank", Text: "partner site"},
		{ID: "in1", Name: "email input", Type: model.TypeInput},
		{ID: "s1", Name: "analytics script", Type: model.TypeScript},
	}
}
