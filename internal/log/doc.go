// Package log provides the application's logging setup, built on top of
// the standard slog package.
//
// Audit logs routinely carry page content in attributes: node text,
// anchor hrefs, whole JSON-LD payloads. The TruncateHandler caps string
// attribute values at a fixed length so one pathological page cannot
// turn the log into a copy of itself, while keeping enough of each value
// to stay diagnosable.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//	logger.Debug("checker finished",
//	    "checker", "content",
//	    "text", veryLongPageText, // truncated with an ellipsis marker
//	)
package log
