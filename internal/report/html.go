package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/yugabench/yugabench/internal/models"
)

// HTMLSink renders a self-contained HTML report: run summary, section scores,
// then every control with its check evidence.
type HTMLSink struct{}

func (HTMLSink) Name() string { return "html" }

func (HTMLSink) Render(w io.Writer, r *models.RunResult) error {
	if r.Truncated {
		return ErrTruncated
	}
	return htmlTemplate.Execute(w, r)
}

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": func(s *float64) string {
		if s == nil {
			return "n/a"
		}
		return fmt.Sprintf("%.1f%%", *s)
	},
}).Parse(htmlBody))

const htmlBody = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>YugabyteDB CIS Benchmark Report</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
table { border-collapse: collapse; width: 100%; margin-bottom: 2em; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; vertical-align: top; }
th { background: #f0f0f0; }
.status-PASS { color: #1a7f37; font-weight: bold; }
.status-FAIL { color: #b91c1c; font-weight: bold; }
.status-ERROR { color: #b45309; font-weight: bold; }
.status-SKIPPED { color: #6b7280; }
.status-MANUAL { color: #1d4ed8; }
.verdict-COMPLIANT { color: #1a7f37; }
.verdict-NON_COMPLIANT { color: #b91c1c; }
.meta { color: #555; }
</style>
</head>
<body>
<h1>YugabyteDB CIS Benchmark Report</h1>
<p class="meta">
Run {{.RunID}} · generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}<br>
Target: {{.Target.Host}}:{{.Target.Port}}/{{.Target.Database}} as {{.Target.User}}<br>
Profile: {{.ProfileLevel}}
</p>

<h2>Summary</h2>
<p>
Verdict: <span class="verdict-{{.Summary.Verdict}}">{{.Summary.Verdict}}</span>
{{- if .Summary.Incomplete}} · <strong>incomplete: {{.Summary.Errors}} control(s) could not be evaluated</strong>{{end}}
</p>
<table>
<tr><th>Total</th><th>Passed</th><th>Failed</th><th>Errors</th><th>Skipped</th><th>Manual</th><th>Score</th></tr>
<tr>
<td>{{.Summary.Total}}</td><td>{{.Summary.Passed}}</td><td>{{.Summary.Failed}}</td>
<td>{{.Summary.Errors}}</td><td>{{.Summary.Skipped}}</td><td>{{.Summary.Manual}}</td>
<td>{{pct .Summary.Score}}</td>
</tr>
</table>

<h2>Sections</h2>
<table>
<tr><th>Section</th><th>Total</th><th>Passed</th><th>Failed</th><th>Errors</th><th>Manual</th><th>Score</th></tr>
{{range .Sections}}
<tr>
<td>{{.Section}}</td><td>{{.Total}}</td><td>{{.Passed}}</td><td>{{.Failed}}</td>
<td>{{.Errors}}</td><td>{{.Manual}}</td><td>{{pct .Score}}</td>
</tr>
{{end}}
</table>

<h2>Controls</h2>
<table>
<tr><th>ID</th><th>Title</th><th>Level</th><th>Status</th><th>Severity</th><th>Evidence</th></tr>
{{range .Results}}
<tr>
<td>{{.ControlID}}</td>
<td>{{.Title}}{{if and .Remediation (eq (print .Status) "FAIL")}}<br><em>Remediation: {{.Remediation}}</em>{{end}}</td>
<td>{{.ProfileLevel}}</td>
<td class="status-{{.Status}}">{{.Status}}</td>
<td>{{.Severity}}</td>
<td>{{range .Checks}}{{.Message}}<br>{{end}}</td>
</tr>
{{end}}
</table>
</body>
</html>
`
