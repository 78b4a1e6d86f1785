package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// TextWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting and per-severity indicators.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type TextWriter struct {
	baseWriter

	// showClean controls whether categories with no findings are shown.
	showClean bool

	// verbose enables additional detail in the output.
	verbose bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithShowClean configures the writer to show categories without findings.
func WithShowClean(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showClean = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) TextWriterOption {
	return func(w *TextWriter) {
		w.verbose = verbose
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		showClean:  false,
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the audit in human-readable format.
func (w *TextWriter) Write(audit *model.Audit) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, audit)

	if audit.Result != nil {
		w.writeScores(&sb, audit.Result)
		w.writeIssues(&sb, audit.Result)
	}

	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with run information.
func (w *TextWriter) writeHeader(sb *strings.Builder, audit *model.Audit) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                        FRAMELYTICS AUDIT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Page:       %s\n", audit.Page))
	sb.WriteString(fmt.Sprintf("Audit Date: %s\n", audit.StartedAt.Format("2006-01-02 15:04:05 MST")))

	if audit.Result != nil {
		sb.WriteString(fmt.Sprintf("Nodes:      %d\n", audit.Result.NodeCount))
	}

	if audit.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("Status:     ERROR - %s\n", audit.ErrorMessage))
	} else {
		sb.WriteString("Status:     Complete\n")
	}

	sb.WriteString("\n")
}

// writeScores writes the overall and per-category score section.
func (w *TextWriter) writeScores(sb *strings.Builder, result *model.AnalysisResult) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SCORES\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  OVERALL: %d/100\n\n", result.Score))

	for _, category := range model.AllCategories() {
		cr := result.Categories[category]
		if cr == nil {
			continue
		}
		if len(cr.Issues) == 0 && !w.showClean {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-14s %3d/100  (%d issues)\n",
			category.String()+":", cr.Score, len(cr.Issues)))
	}

	critical, important, niceToHave := result.CountByPriority()
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  CRITICAL:     %d\n", critical))
	sb.WriteString(fmt.Sprintf("  IMPORTANT:    %d\n", important))
	sb.WriteString(fmt.Sprintf("  NICE-TO-HAVE: %d\n", niceToHave))
	sb.WriteString(fmt.Sprintf("  TOTAL:        %d findings\n", len(result.Issues)))
	sb.WriteString("\n")
}

// writeIssues writes all findings grouped by category.
func (w *TextWriter) writeIssues(sb *strings.Builder, result *model.AnalysisResult) {
	if !result.HasIssues() && !w.showClean {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("FINDINGS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, category := range model.AllCategories() {
		cr := result.Categories[category]
		if cr == nil {
			continue
		}
		if len(cr.Issues) == 0 && !w.showClean {
			continue
		}

		w.writeCategoryIssues(sb, category, cr.Issues)
	}
}

// writeCategoryIssues writes the findings of a single category.
func (w *TextWriter) writeCategoryIssues(sb *strings.Builder, category model.Category, issues []model.Issue) {
	sb.WriteString(fmt.Sprintf("[%s]\n", strings.ToUpper(category.String())))

	if len(issues) == 0 {
		sb.WriteString("  No findings\n\n")
		return
	}

	for _, issue := range issues {
		indicator := w.getSeverityIndicator(issue.Severity)
		sb.WriteString(fmt.Sprintf("  %s %s\n", indicator, issue.Message))
		if issue.NodeName != "" {
			sb.WriteString(fmt.Sprintf("      Node: %s\n", issue.NodeName))
		}
		if w.verbose && issue.Recommendation != "" {
			sb.WriteString(fmt.Sprintf("      Fix: %s\n", issue.Recommendation))
		}
	}
	sb.WriteString("\n")
}

// getSeverityIndicator returns a visual indicator for the severity level.
func (w *TextWriter) getSeverityIndicator(severity model.Severity) string {
	switch severity {
	case model.SeverityError:
		return "[!!]"
	case model.SeverityWarning:
		return "[! ]"
	case model.SeverityInfo:
		return "[i ]"
	case model.SeveritySuccess:
		return "[ok]"
	default:
		return "[? ]"
	}
}

// writeFooter writes the report footer.
func (w *TextWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by Framelytics\n")
	sb.WriteString("https://github.com/Suhas010/Framelytics\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
