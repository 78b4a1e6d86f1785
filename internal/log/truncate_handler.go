package log

import (
	"context"
	"io"
	"log/slog"
)

// MaxAttrLength is the longest string attribute value the handler passes
// through unmodified. Values beyond it are cut and suffixed with
// TruncationMarker. 256 characters keeps full URLs and messages intact
// while cutting page copy and markup payloads.
const MaxAttrLength = 256

// TruncationMarker is appended to values that were cut.
const TruncationMarker = "...(truncated)"

// TruncateHandler wraps an slog.Handler and caps the length of string
// attribute values before they reach the underlying handler.
//
// Design decision: We use a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Callers keep passing raw values; the cap is enforced in one place
type TruncateHandler struct {
	// handler is the underlying slog handler that receives capped records.
	handler slog.Handler

	// maxLen is the per-value length cap.
	maxLen int
}

// NewTruncateHandler creates a TruncateHandler wrapping the given
// handler with the default cap. If handler is nil, slog's default
// handler is used.
func NewTruncateHandler(handler slog.Handler) *TruncateHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &TruncateHandler{handler: handler, maxLen: MaxAttrLength}
}

// Enabled delegates to the underlying handler.
func (h *TruncateHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle caps the record's attributes and passes it on.
func (h *TruncateHandler) Handle(ctx context.Context, r slog.Record) error {
	capped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		capped.AddAttrs(h.truncateAttr(a))
		return true
	})
	return h.handler.Handle(ctx, capped)
}

// WithAttrs returns a new handler with the given attributes added,
// capped first.
func (h *TruncateHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	capped := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		capped[i] = h.truncateAttr(a)
	}
	return &TruncateHandler{handler: h.handler.WithAttrs(capped), maxLen: h.maxLen}
}

// WithGroup returns a new handler with the given group name.
func (h *TruncateHandler) WithGroup(name string) slog.Handler {
	return &TruncateHandler{handler: h.handler.WithGroup(name), maxLen: h.maxLen}
}

// truncateAttr caps a single attribute, recursively handling groups.
func (h *TruncateHandler) truncateAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		capped := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			capped[i] = h.truncateAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(capped...)}
	}

	if a.Value.Kind() != slog.KindString {
		return a
	}
	v := a.Value.String()
	if len(v) <= h.maxLen {
		return a
	}

	// Cut on a rune boundary so multi-byte text stays valid.
	cut := h.maxLen
	for cut > 0 && v[cut]&0xc0 == 0x80 {
		cut--
	}
	return slog.String(a.Key, v[:cut]+TruncationMarker)
}

// NewLogger creates a text-format slog.Logger with attribute
// truncation. Verbose enables Debug-level output; otherwise only
// warnings and errors are logged, matching the CLI's quiet default.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewTruncateHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger creates a JSON-format slog.Logger with attribute
// truncation. Useful when audit runs feed a log aggregator.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewTruncateHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

// handlerOptions maps the verbose flag to a level.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
