package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Suhas010/Framelytics/internal/config"
	flog "github.com/Suhas010/Framelytics/internal/log"
	"github.com/Suhas010/Framelytics/internal/model"
	"github.com/Suhas010/Framelytics/internal/pipeline"
	"github.com/Suhas010/Framelytics/internal/report"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [file]...",
		Short: "Audit page markup for SEO and accessibility issues",
		Long: `Audit normalizes markup files into node lists and runs the full set
of checkers over them: metadata, structure, images, social tags,
content, accessibility, links, performance, mobile, security,
structured data, and favicons. Each category is scored 0-100 and the
weighted overall score summarizes the page.

Examples:
  # Audit a single file
  framelytics audit index.html

  # Audit several files concurrently
  framelytics audit pages/*.html

  # Read markup from stdin
  cat index.html | framelytics audit -

  # Restrict the run to two categories
  framelytics audit --categories metadata,links index.html

  # Write a Markdown report to a file
  framelytics audit --markdown -o report.md index.html

Configuration file (.framelytics) example:
  categories:
    - metadata
    - accessibility
  pages:
    landing.html:
      categories:
        - links`,
		Args: cobra.ArbitraryArgs,
		RunE: runAuditCmd,
	}

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown and --html)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json and --html)")
	cmd.Flags().Bool("html", false,
		"Output a self-contained HTML report (mutually exclusive with --json and --markdown)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// Analysis flags
	cmd.Flags().StringSliceP("categories", "C", nil,
		"Comma-separated category allow-list (default: all categories)")
	cmd.Flags().Bool("parallel", false,
		"Run checkers concurrently (identical output, better throughput)")
	cmd.Flags().IntP("batch", "b", config.DefaultConcurrency,
		"Number of concurrent page audits")
	cmd.Flags().Duration("enrich-timeout", config.DefaultEnrichTimeout,
		"Per-call timeout for host enrichment lookups")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .framelytics in current or home directory)")

	return cmd
}

// runAuditCmd executes the audit command.
func runAuditCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := flog.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("received shutdown signal, cancelling...")
		cancel()
	}()

	return runAudit(ctx, cfg, logger, cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Inputs = args
	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.HTMLReport, err = cmd.Flags().GetBool("html")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Categories, err = cmd.Flags().GetStringSlice("categories")
	if err != nil {
		return nil, err
	}

	cfg.Parallel, err = cmd.Flags().GetBool("parallel")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.EnrichTimeout, err = cmd.Flags().GetDuration("enrich-timeout")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load page configurations from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use empty config if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Merge(file)
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// runAudit executes the audit over all configured inputs.
func runAudit(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	inputs, err := readInputs(cfg)
	if err != nil {
		return err
	}

	logger.Debug("starting audit",
		"pages", len(inputs),
		"parallel", cfg.Parallel,
		"concurrency", cfg.Concurrency,
	)

	if len(inputs) > 1 && cfg.Concurrency > 1 {
		return runBatchAudit(ctx, cfg, inputs, logger, out)
	}
	return runSequentialAudit(ctx, cfg, inputs, logger, out)
}

// readInputs loads the markup for every configured input. The single
// input "-" selects stdin.
func readInputs(cfg *config.Config) ([]pipeline.BatchInput, error) {
	if len(cfg.Inputs) == 1 && cfg.Inputs[0] == "-" {
		markup, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return []pipeline.BatchInput{{Page: "stdin", Markup: markup}}, nil
	}

	inputs := make([]pipeline.BatchInput, 0, len(cfg.Inputs))
	for _, path := range cfg.Inputs {
		markup, err := os.ReadFile(path) //nolint:gosec // User-provided input path is intentional
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		inputs = append(inputs, pipeline.BatchInput{Page: path, Markup: markup})
	}
	return inputs, nil
}

// runSequentialAudit audits pages one at a time, applying per-page
// configuration overrides.
func runSequentialAudit(ctx context.Context, cfg *config.Config, inputs []pipeline.BatchInput, logger *slog.Logger, out io.Writer) error {
	for _, input := range inputs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p, err := createPipelineForPage(cfg, logger, input.Page)
		if err != nil {
			return err
		}

		audit := model.NewAudit(input.Page)
		audit.Markup = input.Markup

		if err := p.Execute(ctx, audit); err != nil {
			logger.Error("audit failed", "page", input.Page, "error", err)
			fmt.Fprintf(os.Stderr, "Audit error for %s: %v\n", input.Page, err)
			continue
		}

		if err := outputReport(cfg, audit, out); err != nil {
			logger.Error("report failed", "page", input.Page, "error", err)
		}
	}

	return nil
}

// runBatchAudit audits multiple pages concurrently using BatchProcessor.
func runBatchAudit(ctx context.Context, cfg *config.Config, inputs []pipeline.BatchInput, logger *slog.Logger, out io.Writer) error {
	startTime := time.Now()

	// Warn user about batch processing limitation
	if cfg.PageConfigs != nil && len(cfg.PageConfigs.Pages) > 0 {
		logger.Warn("batch processing uses global config only; per-page overrides are ignored",
			"pageCount", len(cfg.PageConfigs.Pages))
		fmt.Fprintf(os.Stderr, "Warning: Per-page configurations are ignored in batch mode. Use sequential mode (--batch 1) to apply them.\n\n")
	}

	filter, err := cfg.CategoryFilter()
	if err != nil {
		return err
	}

	bp := pipeline.NewBatchProcessor(
		func() *pipeline.Pipeline {
			return pipeline.DefaultPipeline(
				[]pipeline.Option{pipeline.WithLogger(logger)},
				pipeline.WithAnalyzeLogger(logger),
				pipeline.WithCategoryFilter(filter),
				pipeline.WithParallelCheckers(cfg.Parallel),
			)
		},
		pipeline.WithConcurrency(cfg.Concurrency),
		pipeline.WithBatchLogger(logger),
	)

	// Process with callback for streaming output
	var mu sync.Mutex
	err = bp.ProcessBatchWithCallback(ctx, inputs, func(audit *model.Audit, index int) {
		mu.Lock()
		defer mu.Unlock()

		if audit.Error != nil {
			fmt.Fprintf(os.Stderr, "[%d/%d] Audit failed: %s: %v\n",
				index+1, len(inputs), audit.Page, audit.Error)
			return
		}

		if err := outputReport(cfg, audit, out); err != nil {
			logger.Error("report failed", "page", audit.Page, "error", err)
		}
	})

	logger.Debug("batch audit completed",
		"pages", len(inputs),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	return err
}

// createPipelineForPage creates a pipeline honoring per-page overrides.
func createPipelineForPage(cfg *config.Config, logger *slog.Logger, page string) (*pipeline.Pipeline, error) {
	categories := cfg.Categories
	if pc := cfg.PageConfig(page); pc != nil && len(pc.Categories) > 0 {
		categories = pc.Categories
	}

	pageCfg := *cfg
	pageCfg.Categories = categories
	filter, err := pageCfg.CategoryFilter()
	if err != nil {
		return nil, err
	}

	return pipeline.DefaultPipeline(
		[]pipeline.Option{pipeline.WithLogger(logger)},
		pipeline.WithAnalyzeLogger(logger),
		pipeline.WithCategoryFilter(filter),
		pipeline.WithParallelCheckers(cfg.Parallel),
	), nil
}

// outputReport outputs the audit report in the requested format.
func outputReport(cfg *config.Config, audit *model.Audit, out io.Writer) error {
	// Determine output destination
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewJSONWriter(out, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(out)
	case cfg.HTMLReport:
		writer = report.NewHTMLWriter(out)
	default:
		writer = report.NewTextWriter(out, report.WithVerbose(cfg.Verbose))
	}

	_, err := writer.Write(audit)
	return err
}
