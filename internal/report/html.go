package report

import (
	"html/template"
	"io"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// HTMLWriter outputs a self-contained HTML page with one tab per
// category. The page embeds its own CSS and a small tab-switching
// script, so it can be opened from disk without a server.
type HTMLWriter struct {
	baseWriter
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer) *HTMLWriter {
	return &HTMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// htmlCategory is the per-tab view data.
type htmlCategory struct {
	Name   string
	Score  int
	Issues []model.Issue
}

// htmlReport is the top-level template data.
type htmlReport struct {
	Page       string
	Date       string
	Score      int
	NodeCount  int
	Critical   int
	Important  int
	NiceToHave int
	Error      string
	Categories []htmlCategory
}

// Write renders the audit to the tabbed HTML page.
func (w *HTMLWriter) Write(audit *model.Audit) (int, error) {
	data := htmlReport{
		Page:  audit.Page,
		Date:  audit.StartedAt.Format("2006-01-02 15:04:05 MST"),
		Error: audit.ErrorMessage,
	}

	if audit.Result != nil {
		data.Score = audit.Result.Score
		data.NodeCount = audit.Result.NodeCount
		data.Critical, data.Important, data.NiceToHave = audit.Result.CountByPriority()

		for _, category := range model.AllCategories() {
			cr := audit.Result.Categories[category]
			if cr == nil {
				continue
			}
			data.Categories = append(data.Categories, htmlCategory{
				Name:   category.String(),
				Score:  cr.Score,
				Issues: cr.Issues,
			})
		}
	}

	var sb strings.Builder
	if err := htmlTemplate.Execute(&sb, data); err != nil {
		return 0, err
	}
	return w.output.Write([]byte(sb.String()))
}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Framelytics Audit - {{.Page}}</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; background: #f5f6f8; color: #1f2733; }
  header { background: #1f2733; color: #fff; padding: 24px 32px; }
  header h1 { margin: 0 0 4px; font-size: 20px; }
  header p { margin: 0; color: #aeb8c4; font-size: 13px; }
  .summary { display: flex; gap: 16px; padding: 20px 32px; flex-wrap: wrap; }
  .card { background: #fff; border-radius: 8px; padding: 16px 20px; min-width: 120px; box-shadow: 0 1px 2px rgba(0,0,0,.08); }
  .card .value { font-size: 28px; font-weight: 700; }
  .card .label { font-size: 12px; color: #68727e; text-transform: uppercase; }
  .error { margin: 0 32px; padding: 12px 16px; background: #fde8e8; border-radius: 8px; color: #9b1c1c; }
  nav { display: flex; gap: 4px; padding: 0 32px; flex-wrap: wrap; }
  nav button { border: none; background: #e3e7ec; padding: 10px 14px; border-radius: 8px 8px 0 0; cursor: pointer; font-size: 13px; }
  nav button.active { background: #fff; font-weight: 600; }
  section.tab { display: none; background: #fff; margin: 0 32px 32px; padding: 20px; border-radius: 0 8px 8px 8px; }
  section.tab.active { display: block; }
  .issue { border-left: 4px solid #c5ccd4; padding: 8px 12px; margin: 8px 0; background: #fafbfc; }
  .issue.ERROR { border-color: #dc2626; }
  .issue.WARNING { border-color: #d97706; }
  .issue.INFO { border-color: #2563eb; }
  .issue .meta { font-size: 12px; color: #68727e; }
  .issue .rec { font-size: 13px; color: #374151; margin-top: 4px; }
  .clean { color: #68727e; font-style: italic; }
</style>
</head>
<body>
<header>
  <h1>Framelytics Audit</h1>
  <p>{{.Page}} &middot; {{.Date}} &middot; {{.NodeCount}} nodes</p>
</header>
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
<div class="summary">
  <div class="card"><div class="value">{{.Score}}</div><div class="label">Overall</div></div>
  <div class="card"><div class="value">{{.Critical}}</div><div class="label">Critical</div></div>
  <div class="card"><div class="value">{{.Important}}</div><div class="label">Important</div></div>
  <div class="card"><div class="value">{{.NiceToHave}}</div><div class="label">Nice to have</div></div>
</div>
<nav>
{{range $i, $c := .Categories}}
  <button data-tab="tab-{{$i}}"{{if eq $i 0}} class="active"{{end}}>{{$c.Name}} ({{$c.Score}})</button>
{{end}}
</nav>
{{range $i, $c := .Categories}}
<section class="tab{{if eq $i 0}} active{{end}}" id="tab-{{$i}}">
  {{if $c.Issues}}
    {{range $c.Issues}}
    <div class="issue {{.SeverityText}}">
      <div>{{.Message}}</div>
      <div class="meta">{{.PriorityText}}{{if .NodeName}} &middot; {{.NodeName}}{{end}}</div>
      {{if .Recommendation}}<div class="rec">{{.Recommendation}}</div>{{end}}
    </div>
    {{end}}
  {{else}}
    <p class="clean">No findings in this category.</p>
  {{end}}
</section>
{{end}}
<script>
  document.querySelectorAll("nav button").forEach(function (btn) {
    btn.addEventListener("click", function () {
      document.querySelectorAll("nav button").forEach(function (b) { b.classList.remove("active"); });
      document.querySelectorAll("section.tab").forEach(function (s) { s.classList.remove("active"); });
      btn.classList.add("active");
      document.getElementById(btn.dataset.tab).classList.add("active");
    });
  });
</script>
</body>
</html>
`))
