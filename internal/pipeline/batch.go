package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Suhas010/Framelytics/internal/model"
)

// BatchInput is one unit of work for the batch processor: a page
// identifier plus its raw markup.
type BatchInput struct {
	// Page identifies the audited page (file path, frame name, URL).
	Page string

	// Markup is the raw markup to audit.
	Markup []byte
}

// BatchProcessor handles concurrent processing of multiple pages.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding
// batch functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-audit execution
// 2. It allows different batch strategies (e.g., rate limiting, retries)
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each audit.
	// We use a factory to ensure each audit gets a fresh pipeline instance.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent audits.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed audits.
	// Access is synchronized via mutex.
	results []*model.Audit
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent audits.
// Default is 4 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each audit to create a
// fresh pipeline instance. This ensures that pipeline state doesn't leak
// between audits and allows for per-audit customization if needed.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     4,
		results:         make([]*model.Audit, 0),
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch audits multiple pages concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each page gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
//
// Returns all audits collected, in input order, even for pages whose
// audit failed. The error return indicates if the batch was cancelled.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, inputs []BatchInput) ([]*model.Audit, error) {
	bp.logger.Debug("starting batch processing",
		"total_pages", len(inputs),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	bp.results = make([]*model.Audit, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			bp.logger.Debug("auditing page",
				"page", input.Page,
				"index", i+1,
				"total", len(inputs),
			)

			audit := model.NewAudit(input.Page)
			audit.Markup = input.Markup

			// Create and execute pipeline
			p := bp.pipelineFactory()
			err := p.Execute(ctx, audit)

			// Store result regardless of error
			// The audit carries error information if the run failed
			bp.mu.Lock()
			bp.results[i] = audit
			bp.mu.Unlock()

			if err != nil {
				bp.logger.Warn("audit failed",
					"page", input.Page,
					"error", err,
				)
				// Don't return error to errgroup - we want to continue
				// other audits. The error is recorded in the audit.
				return nil
			}

			score := 0
			if audit.Result != nil {
				score = audit.Result.Score
			}
			bp.logger.Debug("audit completed",
				"page", input.Page,
				"score", score,
			)

			return nil
		})
	}

	// Wait for all audits to complete
	err := g.Wait()

	elapsed := time.Since(startTime)
	bp.logger.Debug("batch processing complete",
		"total_pages", len(inputs),
		"elapsed", elapsed,
	)

	return bp.results, err
}

// ProcessBatchWithCallback audits multiple pages and calls a callback
// for each completed audit. This is useful for streaming results.
//
// The callback receives the audit and the index of the page in the
// original slice. The callback is called from the goroutine that
// completed the audit, so it should be thread-safe if it accesses
// shared state.
func (bp *BatchProcessor) ProcessBatchWithCallback(
	ctx context.Context,
	inputs []BatchInput,
	callback func(audit *model.Audit, index int),
) error {
	bp.logger.Debug("starting batch processing with callback",
		"total_pages", len(inputs),
		"concurrency", bp.concurrency,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			audit := model.NewAudit(input.Page)
			audit.Markup = input.Markup
			p := bp.pipelineFactory()
			_ = p.Execute(ctx, audit) //nolint:errcheck // Error is stored in the audit

			// Call the callback with the result
			callback(audit, i)

			return nil
		})
	}

	return g.Wait()
}
