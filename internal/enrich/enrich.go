package enrich

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"time"

	"github.com/Suhas010/Framelytics/internal/model"
)

// DefaultCallTimeout bounds each individual host call. Enrichment is a
// cosmetic step; a host that takes longer than this per node would
// dominate the whole analysis run.
const DefaultCallTimeout = 2 * time.Second

// Host is the capability the embedding environment provides for looking
// up live node geometry and rendering previews. Implementations may fail
// freely; the enricher treats every failure as "no data".
type Host interface {
	// BoundingBox returns the node's on-canvas bounding box.
	BoundingBox(ctx context.Context, nodeID string) (model.Rect, error)

	// PreviewImage renders a small preview of the node.
	PreviewImage(ctx context.Context, nodeID string) (model.Preview, error)
}

// Enricher decorates issues with host data. It implements the engine's
// enrichment hook.
type Enricher struct {
	host    Host
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures an Enricher.
type Option func(*Enricher)

// WithLogger sets the logger for host-failure traces.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enricher) { e.logger = logger }
}

// WithCallTimeout overrides the per-call timeout.
func WithCallTimeout(d time.Duration) Option {
	return func(e *Enricher) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// New creates an Enricher over the given host.
func New(host Host, opts ...Option) *Enricher {
	e := &Enricher{host: host, timeout: DefaultCallTimeout}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// Enrich annotates every node-referencing issue with bounds and a
// preview. Issues without a node reference pass through untouched, as do
// issues whose host lookups fail. Cancellation is checked between
// issues; a cancelled run returns the context error.
func (e *Enricher) Enrich(ctx context.Context, issues []model.Issue) ([]model.Issue, error) {
	out := make([]model.Issue, len(issues))
	for i, issue := range issues {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if issue.NodeID == "" {
			out[i] = issue
			continue
		}
		out[i] = e.enrichOne(ctx, issue)
	}
	return out, nil
}

// enrichOne performs the two host lookups for a single issue.
func (e *Enricher) enrichOne(ctx context.Context, issue model.Issue) model.Issue {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	if bounds, err := e.host.BoundingBox(callCtx, issue.NodeID); err == nil {
		issue.Bounds = &bounds
	} else {
		e.logger.Debug("bounding box lookup failed",
			"node", issue.NodeID, "error", err)
	}

	if preview, err := e.host.PreviewImage(callCtx, issue.NodeID); err == nil && len(preview.Data) > 0 {
		issue.Preview = &preview
	} else {
		if err != nil {
			e.logger.Debug("preview render failed",
				"node", issue.NodeID, "error", err)
		}
		issue.Preview = &model.Preview{Color: PlaceholderColor(issue.NodeID)}
	}

	return issue
}

// PlaceholderColor derives a stable hex fill color from a node ID. The
// same ID always yields the same color, so repeated runs and report
// diffs stay byte-identical.
func PlaceholderColor(nodeID string) string {
	h := fnv.New32a()
	h.Write([]byte(nodeID))
	sum := h.Sum32()

	// Keep each channel out of the extremes so the placeholder reads as
	// a tile, not as pure black or white.
	r := 0x40 + byte(sum)&0x7f
	g := 0x40 + byte(sum>>8)&0x7f
	b := 0x40 + byte(sum>>16)&0x7f
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
