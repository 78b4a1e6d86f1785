package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoInput is returned when there is nothing to audit: no markup
	// files were given and stdin was not selected.
	ErrNoInput = errors.New("no input specified: provide markup files or '-' for stdin")

	// ErrConflictingReportFormats is returned when more than one of
	// --json, --markdown, and --html is specified. Exactly one output
	// format can be active; the human-readable text report is the
	// default when none is given.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json, --markdown, and --html are mutually exclusive")

	// ErrUnknownCategory is returned when a category filter names a
	// category outside the closed set. The wrapped message carries the
	// offending name.
	ErrUnknownCategory = errors.New("unknown category in filter")

	// ErrInvalidEnrichTimeout is returned when the enrichment call
	// timeout is negative. Zero means use the default.
	ErrInvalidEnrichTimeout = errors.New("invalid enrich timeout: must be non-negative")

	// ErrInvalidConcurrency is returned when the batch concurrency is
	// less than one.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be at least 1")
)
