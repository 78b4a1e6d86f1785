package config

import (
	"fmt"
	"time"

	"github.com/Suhas010/Framelytics/internal/model"
)

// Default configuration values.
const (
	// AppName is the application name, used for the config file name and
	// XDG directory paths.
	AppName = "framelytics"

	// DefaultConfigFile is the configuration file name searched for in
	// the working directory and the user's home directory.
	DefaultConfigFile = ".framelytics"

	// DefaultEnrichTimeout bounds each host enrichment call. Enrichment
	// is cosmetic; a slow host must not dominate an audit run.
	DefaultEnrichTimeout = 2 * time.Second

	// DefaultConcurrency is the number of pages audited at once in batch
	// runs. Audits are CPU-bound and short, so a small limit suffices.
	DefaultConcurrency = 4
)

// Config holds all options for one invocation. It is populated from CLI
// flags, merged with the discovered config file, and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ReportConfig, EngineConfig) for simplicity. The number of
// options is manageable, and nesting would add complexity without
// significant benefit.
type Config struct {
	// Inputs are the markup files to audit. The single entry "-" selects
	// stdin.
	Inputs []string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport, MarkdownReport, and HTMLReport select the report
	// format. At most one may be true; all false selects the
	// human-readable text report.
	JSONReport     bool
	MarkdownReport bool
	HTMLReport     bool

	// ReportFile is the output file path for the report. When set, the
	// report is written there instead of stdout; parent directories are
	// created automatically.
	ReportFile string

	// Categories is an allow-list of category names to audit. Empty
	// means all categories.
	Categories []string

	// Parallel runs the checkers concurrently. Output is identical to
	// sequential runs; only throughput changes.
	Parallel bool

	// Concurrency is the number of pages audited at once when several
	// inputs are given.
	Concurrency int

	// EnrichTimeout bounds each host enrichment call. Zero means use
	// DefaultEnrichTimeout.
	EnrichTimeout time.Duration

	// ConfigFilePath is the explicit config file path. If empty, the
	// tool searches for .framelytics in the current directory, the
	// user's home directory, and the XDG config directory.
	ConfigFilePath string

	// PageConfigs holds per-page overrides loaded from the config file.
	PageConfigs *File
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because some defaults are non-zero. This also serves as
// documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		EnrichTimeout: DefaultEnrichTimeout,
		Concurrency:   DefaultConcurrency,
	}
}

// Validate checks the configuration for contradictions. It returns one
// of the package sentinel errors (possibly wrapped with detail) or nil.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	formats := 0
	for _, on := range []bool{c.JSONReport, c.MarkdownReport, c.HTMLReport} {
		if on {
			formats++
		}
	}
	if formats > 1 {
		return ErrConflictingReportFormats
	}

	if _, err := c.CategoryFilter(); err != nil {
		return err
	}

	if c.EnrichTimeout < 0 {
		return ErrInvalidEnrichTimeout
	}

	if c.Concurrency < 1 {
		return ErrInvalidConcurrency
	}
	return nil
}

// CategoryFilter resolves the category name list to model categories.
// An empty list resolves to nil (no filter).
func (c *Config) CategoryFilter() ([]model.Category, error) {
	if len(c.Categories) == 0 {
		return nil, nil
	}
	filter := make([]model.Category, 0, len(c.Categories))
	for _, name := range c.Categories {
		cat, ok := model.ParseCategory(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
		}
		filter = append(filter, cat)
	}
	return filter, nil
}

// PageConfig returns the overrides for the named page, or nil when the
// config file declares none.
func (c *Config) PageConfig(page string) *PageConfig {
	if c.PageConfigs == nil {
		return nil
	}
	if pc, ok := c.PageConfigs.Pages[page]; ok {
		return &pc
	}
	return nil
}
