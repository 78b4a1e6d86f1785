package checker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Suhas010/Framelytics/internal/model"
)

// ErrNoNodes is returned when AnalyzeNodes is called before a node list
// was constructed. A nil list is a caller contract violation and fails
// fast; an empty-but-non-nil list is legal input (the content checker
// reports "no content found" for it).
var ErrNoNodes = errors.New("no nodes to analyze: construct the node list before calling AnalyzeNodes")

// Enricher annotates issues that reference a node with live position and
// preview data. It is an injected capability: the engine never talks to
// the host environment directly, and a nil Enricher disables the step.
//
// Implementations must be best-effort (a failed host call leaves the
// issue unannotated) and must respect context cancellation between calls.
type Enricher interface {
	Enrich(ctx context.Context, issues []model.Issue) ([]model.Issue, error)
}

// Engine runs the registered checkers over a node list and aggregates
// their issues into per-category and overall scores.
//
// Design decision: The checker list is an explicit ordered slice built at
// construction time, not a global registry. Registration order is part of
// the output contract (the flat issue list is the concatenation of
// per-category lists in that order), so it must be deterministic and
// visible in one place.
type Engine struct {
	// checkers is the ordered list of registered checkers.
	checkers []Checker

	// logger receives per-checker fault reports and debug traces.
	logger *slog.Logger

	// enricher annotates node-referencing issues. Nil disables enrichment.
	enricher Enricher

	// parallel runs checkers concurrently. Issues are still folded in
	// registration order, so results are identical to sequential runs.
	parallel bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for fault isolation reports.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithEnricher injects the host enrichment capability.
func WithEnricher(enricher Enricher) Option {
	return func(e *Engine) { e.enricher = enricher }
}

// WithParallel enables concurrent checker execution. Checkers share no
// mutable state, so this is safe; it only changes throughput, never
// output.
func WithParallel(parallel bool) Option {
	return func(e *Engine) { e.parallel = parallel }
}

// NewEngine creates an Engine with all built-in checkers registered in
// their fixed order. The international rules are folded into the
// metadata category through a composite, so the category map still has
// exactly one producer per category.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{checkers: make([]Checker, 0, 12)}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	e.Register(NewMetadataChecker())
	e.Register(NewStructureChecker())
	e.Register(NewImagesChecker())
	e.Register(NewSocialChecker())
	e.Register(NewContentChecker())
	e.Register(NewAccessibilityChecker())
	e.Register(NewLinksChecker())
	e.Register(NewPerformanceChecker())
	e.Register(NewMobileChecker())
	e.Register(NewSecurityChecker())
	e.Register(NewSchemaChecker())
	e.Register(NewFaviconChecker())

	return e
}

// Register appends a checker to the execution order.
func (e *Engine) Register(c Checker) {
	e.checkers = append(e.checkers, c)
}

// Checkers returns the names of registered checkers in execution order.
func (e *Engine) Checkers() []string {
	names := make([]string, len(e.checkers))
	for i, c := range e.checkers {
		names[i] = c.Name()
	}
	return names
}

// AnalyzeOptions configures one analysis run.
type AnalyzeOptions struct {
	// Filter is an allow-list of categories. Checkers whose category is
	// not listed are skipped entirely: their categories keep an empty
	// issue list and score zero. Nil or empty means run everything.
	Filter []model.Category
}

// allows reports whether the category passes the filter.
func (o *AnalyzeOptions) allows(c model.Category) bool {
	if o == nil || len(o.Filter) == 0 {
		return true
	}
	for _, allowed := range o.Filter {
		if allowed == c {
			return true
		}
	}
	return false
}

// AnalyzeNodes runs the selected checkers over the node tree and returns
// the aggregated result. This is the one stable API boundary of the
// engine: callers read result.Score, result.Issues, and
// result.Categories[cat] and nothing else.
//
// Cancellation is cooperative: the run checks the context between
// checkers and (via the enricher) between enrichment calls. A cancelled
// run returns the context error and no partial result, because a
// half-built result would carry silently wrong scores.
func (e *Engine) AnalyzeNodes(ctx context.Context, nodes []*model.Node, opts *AnalyzeOptions) (*model.AnalysisResult, error) {
	if nodes == nil {
		return nil, ErrNoNodes
	}

	flat := model.Flatten(nodes)
	result := model.NewAnalysisResult()
	result.NodeCount = len(flat)

	perChecker, err := e.runCheckers(ctx, flat, opts)
	if err != nil {
		return nil, err
	}
	// A checker may have swallowed the cancellation as its own error;
	// partial results must not leak out as a scored report.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Fold issues in registration order and score the categories that ran.
	for i, c := range e.checkers {
		if !opts.allows(c.Category()) {
			continue
		}

		issues := perChecker[i]
		if e.enricher != nil && len(issues) > 0 {
			enriched, err := e.enricher.Enrich(ctx, issues)
			if err != nil {
				// Cancellation is the only error the enricher may
				// surface; host faults are swallowed inside it.
				return nil, err
			}
			issues = enriched
		}

		cr := result.Categories[c.Category()]
		cr.Issues = append(cr.Issues, issues...)
		result.Issues = append(result.Issues, issues...)
	}

	for _, c := range e.checkers {
		if !opts.allows(c.Category()) {
			continue
		}
		cr := result.Categories[c.Category()]
		cr.Score = scoreCategory(cr.Issues)
	}

	result.Score = overallScore(result.Categories)
	return result, nil
}

// runCheckers executes all non-filtered checkers and returns their issue
// lists indexed by registration position. Filtered positions hold nil.
func (e *Engine) runCheckers(ctx context.Context, flat []*model.Node, opts *AnalyzeOptions) ([][]model.Issue, error) {
	perChecker := make([][]model.Issue, len(e.checkers))

	if e.parallel {
		g, gctx := errgroup.WithContext(ctx)
		for i, c := range e.checkers {
			if !opts.allows(c.Category()) {
				continue
			}
			i, c := i, c
			g.Go(func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				perChecker[i] = e.runIsolated(gctx, c, flat)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return perChecker, nil
	}

	for i, c := range e.checkers {
		if !opts.allows(c.Category()) {
			continue
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		perChecker[i] = e.runIsolated(ctx, c, flat)
	}
	return perChecker, nil
}

// runIsolated executes one checker with fault isolation: an error or a
// panic is logged and treated as zero issues from that checker, so one
// bad rule never blanks the whole report.
func (e *Engine) runIsolated(ctx context.Context, c Checker, flat []*model.Node) (issues []model.Issue) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("checker panicked",
				"checker", c.Name(),
				"category", c.Category().String(),
				"panic", fmt.Sprintf("%v", r),
			)
			issues = nil
		}
	}()

	issues, err := c.Analyze(ctx, flat)
	if err != nil {
		e.logger.Error("checker failed",
			"checker", c.Name(),
			"category", c.Category().String(),
			"error", err,
		)
		return nil
	}
	return issues
}
