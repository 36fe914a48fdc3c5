// transactions-check/internal/report/report.go

// Package report renders the run summary as a standalone HTML file at a
// known relative path; a separate publishing step picks it up.
package report

import (
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/example/transactions-check/internal/runner"
)

var tmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Transactions API check report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
th { background: #f0f0f0; }
.pass { color: #1a7f37; }
.fail { color: #b42318; font-weight: bold; }
.error { color: #9a3412; font-weight: bold; }
</style>
</head>
<body>
<h1>Transactions API check report</h1>
<p>Generated {{.GeneratedAt}}</p>
<p>{{.Passed}} passed, {{.Failed}} failed, {{.Errored}} errored ({{.Total}} checks)</p>
<table>
<tr><th>Scenario</th><th>Customer</th><th>Check</th><th>Status</th><th>Detail</th></tr>
{{range .Outcomes}}<tr>
<td>{{.Scenario}}</td>
<td>{{.Customer}}</td>
<td>{{.Rule}}</td>
<td class="{{.Status}}">{{.Status}}</td>
<td>{{.Detail}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

type data struct {
	GeneratedAt string
	Passed      int
	Failed      int
	Errored     int
	Total       int
	Outcomes    []runner.Outcome
}

// Render writes the HTML report for the given outcomes.
func Render(w io.Writer, outcomes []runner.Outcome) error {
	passed, failed, errored := runner.Tally(outcomes)
	return tmpl.Execute(w, data{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Passed:      passed,
		Failed:      failed,
		Errored:     errored,
		Total:       len(outcomes),
		Outcomes:    outcomes,
	})
}

// Write renders the report to path, creating parent directories.
func Write(path string, outcomes []runner.Outcome) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(f, outcomes); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
