package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Suhas010/Framelytics/internal/checker"
	"github.com/Suhas010/Framelytics/internal/enrich"
	"github.com/Suhas010/Framelytics/internal/extract"
	"github.com/Suhas010/Framelytics/internal/model"
)

// ErrNoMarkup is returned by the extract step when the audit carries
// neither raw markup nor a pre-built node list.
var ErrNoMarkup = errors.New("audit has no markup and no nodes")

// ExtractStep builds the normalized node list from the audit's raw
// markup. Audits that already carry nodes (host bridge runs) pass
// through untouched.
//
// Design decision: Extraction is a separate step because:
// 1. Host-bridged runs supply nodes directly and skip it
// 2. The analyze step then has a single input shape to deal with
// 3. Extraction failures are reportable on their own
type ExtractStep struct {
	// logger for structured logging.
	logger *slog.Logger
}

// ExtractStepOption configures an ExtractStep.
type ExtractStepOption func(*ExtractStep)

// WithExtractLogger sets a custom logger for the extract step.
func WithExtractLogger(logger *slog.Logger) ExtractStepOption {
	return func(s *ExtractStep) {
		s.logger = logger
	}
}

// NewExtractStep creates a new markup extraction step.
func NewExtractStep(opts ...ExtractStepOption) *ExtractStep {
	s := &ExtractStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do executes the extract step.
func (s *ExtractStep) Do(_ context.Context, audit *model.Audit) error {
	if audit.Nodes != nil {
		s.logger.Debug("skipping extraction, nodes already supplied",
			"page", audit.Page,
			"nodes", len(audit.Nodes),
		)
		return nil
	}

	if len(audit.Markup) == 0 {
		return ErrNoMarkup
	}

	nodes, err := extract.Nodes(string(audit.Markup))
	if err != nil {
		return err
	}
	audit.Nodes = nodes

	s.logger.Debug("extraction completed",
		"page", audit.Page,
		"nodes", len(nodes),
	)
	return nil
}

// AnalyzeStep runs the checker engine over the audit's node list and
// stores the aggregated result.
//
// Design decision: The engine is built once at step construction rather
// than per Do call, so a single step instance amortizes checker setup
// across repeated runs (batch processing reuses the factory, not the
// step, but embedders may reuse the step directly).
type AnalyzeStep struct {
	// engine runs the registered checkers.
	engine *checker.Engine

	// filter is the category allow-list. Empty means run everything.
	filter []model.Category

	// parallel runs checkers concurrently inside the engine.
	parallel bool

	// host is the optional enrichment capability.
	host enrich.Host

	// enrichTimeout bounds each host call. Zero uses the enricher default.
	enrichTimeout time.Duration

	// logger for structured logging.
	logger *slog.Logger
}

// AnalyzeStepOption configures an AnalyzeStep.
type AnalyzeStepOption func(*AnalyzeStep)

// WithAnalyzeLogger sets a custom logger for the analyze step and the
// engine it builds.
func WithAnalyzeLogger(logger *slog.Logger) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.logger = logger
	}
}

// WithCategoryFilter restricts the run to the listed categories.
func WithCategoryFilter(filter []model.Category) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.filter = filter
	}
}

// WithParallelCheckers runs the engine's checkers concurrently.
func WithParallelCheckers(parallel bool) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.parallel = parallel
	}
}

// WithEnrichmentHost wires a host enrichment capability into the engine.
// A zero timeout uses the enricher's default.
func WithEnrichmentHost(host enrich.Host, timeout time.Duration) AnalyzeStepOption {
	return func(s *AnalyzeStep) {
		s.host = host
		s.enrichTimeout = timeout
	}
}

// NewAnalyzeStep creates a new analysis step with its engine.
func NewAnalyzeStep(opts ...AnalyzeStepOption) *AnalyzeStep {
	s := &AnalyzeStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	engineOpts := []checker.Option{
		checker.WithLogger(s.logger),
		checker.WithParallel(s.parallel),
	}
	if s.host != nil {
		enrichOpts := []enrich.Option{enrich.WithLogger(s.logger)}
		if s.enrichTimeout > 0 {
			enrichOpts = append(enrichOpts, enrich.WithCallTimeout(s.enrichTimeout))
		}
		engineOpts = append(engineOpts, checker.WithEnricher(enrich.New(s.host, enrichOpts...)))
	}
	s.engine = checker.NewEngine(engineOpts...)

	return s
}

// Name returns the step name.
func (s *AnalyzeStep) Name() string {
	return "analyze"
}

// Do executes the analyze step.
func (s *AnalyzeStep) Do(ctx context.Context, audit *model.Audit) error {
	result, err := s.engine.AnalyzeNodes(ctx, audit.Nodes, &checker.AnalyzeOptions{
		Filter: s.filter,
	})
	if err != nil {
		return err
	}
	audit.Result = result

	s.logger.Debug("analysis completed",
		"page", audit.Page,
		"score", result.Score,
		"issues", len(result.Issues),
	)
	return nil
}

// DefaultPipeline creates a pipeline with the standard extract and
// analyze steps.
//
// Design decision: We provide a default pipeline because:
// 1. Most callers want the full extract-then-analyze flow
// 2. Reduces boilerplate in the CLI
// 3. Ensures consistent ordering
func DefaultPipeline(pipelineOpts []Option, analyzeOpts ...AnalyzeStepOption) *Pipeline {
	p := New(pipelineOpts...)
	p.AddSteps(
		NewExtractStep(),
		NewAnalyzeStep(analyzeOpts...),
	)
	return p
}
