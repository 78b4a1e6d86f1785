package checker

import (
	"context"

	"github.com/Suhas010/Framelytics/internal/model"
)

// Checker defines the interface for individual audit rule sets.
// Each checker focuses on one category of page quality.
//
// Design decision: We use an interface rather than function values
// because:
//  1. Checkers carry fixed tables (phrase lists, allow-lists) as state
//  2. Name() and Category() support logging and category filtering
//  3. Tests can register stub checkers alongside the built-ins
type Checker interface {
	// Name returns the checker's name for logging and fault reports.
	Name() string

	// Category returns the checker's home category. Every issue the
	// checker produces must carry this category.
	Category() model.Category

	// Analyze inspects the flattened node list and returns the issues
	// found. Implementations must be pure: no I/O, no shared mutable
	// state, and no mutation of the nodes.
	Analyze(ctx context.Context, nodes []*model.Node) ([]model.Issue, error)
}

// Composite runs an ordered list of sub-checkers and concatenates their
// issues under one category. It exists so logically separate rule sets
// (core metadata and the international rules) can feed a single category
// entry without ad hoc splicing.
type Composite struct {
	name     string
	category model.Category
	subs     []Checker
}

// NewComposite creates a composite checker over the given sub-checkers.
// All sub-checkers must share the composite's category; issues from a
// sub-checker with a mismatched category would break the one-category-
// per-issue invariant, so this is enforced at construction via panic
// (a programming error, not a runtime condition).
func NewComposite(name string, category model.Category, subs ...Checker) *Composite {
	for _, sub := range subs {
		if sub.Category() != category {
			panic("checker: composite " + name + " includes sub-checker " + sub.Name() +
				" with category " + sub.Category().String() + ", want " + category.String())
		}
	}
	return &Composite{name: name, category: category, subs: subs}
}

// Name returns the composite's name.
func (c *Composite) Name() string { return c.name }

// Category returns the composite's category.
func (c *Composite) Category() model.Category { return c.category }

// Analyze runs all sub-checkers in order and concatenates their issues.
// A sub-checker error aborts the composite; the engine's fault isolation
// then treats the whole composite as having produced nothing.
func (c *Composite) Analyze(ctx context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)
	for _, sub := range c.subs {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		subIssues, err := sub.Analyze(ctx, nodes)
		if err != nil {
			return nil, err
		}
		issues = append(issues, subIssues...)
	}
	return issues, nil
}
