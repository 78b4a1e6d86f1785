package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Suhas010/Framelytics/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the audit in Markdown format.
func (w *MarkdownWriter) Write(audit *model.Audit) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, audit)

	if audit.Result != nil {
		w.writeScores(md, audit.Result)
		w.writeIssues(md, audit.Result)
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, audit *model.Audit) {
	md.H1("Framelytics Audit Report")
	md.PlainText("")

	rows := [][]string{
		{"Page", "`" + audit.Page + "`"},
		{"Audit Date", audit.StartedAt.Format("2006-01-02 15:04:05 MST")},
		{"Status", w.getStatusText(audit)},
	}
	if audit.Result != nil {
		rows = append(rows, []string{"Nodes Analyzed", strconv.Itoa(audit.Result.NodeCount)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// getStatusText returns the status text based on audit state.
func (w *MarkdownWriter) getStatusText(audit *model.Audit) string {
	if audit.ErrorMessage != "" {
		return "❌ Error - " + audit.ErrorMessage
	}
	return "✅ Complete"
}

// writeScores writes the score summary section.
func (w *MarkdownWriter) writeScores(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H2("Scores")
	md.PlainText("")

	rows := make([][]string, 0, len(model.AllCategories())+1)
	for _, category := range model.AllCategories() {
		cr := result.Categories[category]
		if cr == nil {
			continue
		}
		rows = append(rows, []string{
			category.String(),
			strconv.Itoa(cr.Score),
			strconv.Itoa(len(cr.Issues)),
		})
	}
	rows = append(rows, []string{
		"**overall**",
		"**" + strconv.Itoa(result.Score) + "**",
		"**" + strconv.Itoa(len(result.Issues)) + "**",
	})

	md.Table(markdown.TableSet{
		Header: []string{"Category", "Score", "Issues"},
		Rows:   rows,
	})
	md.PlainText("")

	// Add pie chart if there are findings
	if result.HasIssues() {
		w.writePieChart(md, result)
	}

	// Add alert based on priority
	w.writeAlert(md, result)
}

// writePieChart writes a mermaid pie chart for the priority distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, result *model.AnalysisResult) {
	critical, important, niceToHave := result.CountByPriority()

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Issue Priority Distribution"),
		piechart.WithShowData(true),
	)

	if critical > 0 {
		chart.LabelAndIntValue("Critical", uint64(critical))
	}
	if important > 0 {
		chart.LabelAndIntValue("Important", uint64(important))
	}
	if niceToHave > 0 {
		chart.LabelAndIntValue("Nice to have", uint64(niceToHave))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on priority counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *model.AnalysisResult) {
	critical, important, _ := result.CountByPriority()

	switch {
	case critical > 0:
		md.Cautionf(
			"Critical issues detected! %d critical finding(s) require immediate attention.",
			critical,
		)
	case important > 0:
		md.Warningf(
			"Important issues detected. %d finding(s) should be addressed.",
			important,
		)
	case result.HasIssues():
		md.Note("Only nice-to-have findings detected.")
	default:
		md.Tip("No issues detected.")
	}
	md.PlainText("")
}

// writeIssues writes all findings grouped by category.
func (w *MarkdownWriter) writeIssues(md *markdown.Markdown, result *model.AnalysisResult) {
	md.H2("Findings")
	md.PlainText("")

	if !result.HasIssues() {
		md.PlainText("No findings.")
		md.PlainText("")
		return
	}

	// Casers are stateful and must not be shared between goroutines.
	title := cases.Title(language.English)

	for _, category := range model.AllCategories() {
		cr := result.Categories[category]
		if cr == nil || len(cr.Issues) == 0 {
			continue
		}

		md.PlainText("### " + title.String(category.String()))
		md.PlainText("")
		w.writeIssueTable(md, cr.Issues)
	}
}

// writeIssueTable writes a table of findings with details.
func (w *MarkdownWriter) writeIssueTable(md *markdown.Markdown, issues []model.Issue) {
	headers := []string{"Priority", "Severity", "Message", "Node"}

	rows := make([][]string, len(issues))
	for i, issue := range issues {
		node := issue.NodeName
		if node == "" {
			node = "-"
		}

		rows[i] = []string{
			issue.PriorityText,
			issue.SeverityText,
			truncateString(issue.Message, 80),
			truncateString(node, 40),
		}
	}

	md.Table(markdown.TableSet{
		Header: headers,
		Rows:   rows,
	})
	md.PlainText("")

	// Add fix suggestions as collapsible details
	for _, issue := range issues {
		if issue.Recommendation != "" {
			md.Details(truncateString(issue.Message, 80), issue.Recommendation)
		}
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [Framelytics](https://github.com/Suhas010/Framelytics)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
