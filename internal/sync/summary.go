package sync

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"

	"github.com/bolasblack/monosync/internal/util"
	"github.com/bolasblack/monosync/internal/version"
)

var summaryTmpl = template.Must(template.New("summary").Parse(
	`{{ .Title }}
{{ range .Details }}{{ . }}
{{ end }}{{ if .Lines }}
{{ range .Lines }}{{ . }}
{{ end }}{{ end }}
{{ .Totals }}`))

// Summary is the boxed block printed at the end of a pass.
type Summary struct {
	Title   string
	Details []string
	Lines   []string
	Totals  string
}

// Status marks a package line in a summary.
type Status int

const (
	StatusUpdated Status = iota
	StatusUnchanged
	StatusFailed
)

// RenderSummary writes s as a bordered box.
// Uses lipgloss for TTY-aware colored output (auto-strips ANSI when not a TTY).
func RenderSummary(w io.Writer, s Summary, failed bool) {
	renderer := lipgloss.NewRenderer(w)
	border := lipgloss.Color("2")
	if failed {
		border = lipgloss.Color("1")
	}
	box := renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	s.Title = renderer.NewStyle().Bold(true).Render(s.Title)

	var buf strings.Builder
	_ = summaryTmpl.Execute(&buf, s)
	_, _ = io.WriteString(w, "\n"+box.Render(buf.String())+"\n")
}

// statusLine formats one package line.
func statusLine(renderer *lipgloss.Renderer, status Status, text string) string {
	var label string
	var color lipgloss.Color
	switch status {
	case StatusUpdated:
		label, color = "✓ Updated  ", "2"
	case StatusUnchanged:
		label, color = "· Unchanged", "8"
	default:
		label, color = "✗ Failed   ", "1"
	}
	return renderer.NewStyle().Foreground(color).Render(label) + " " + text
}

func (e *SyncEnv) title(title string) string {
	if e.DryRun {
		return title + " (dry run)"
	}
	return title
}

func (e *SyncEnv) finishPackages(s Summary, results []SyncResult) {
	renderer := lipgloss.NewRenderer(e.Out)
	for _, r := range results {
		status := StatusUnchanged
		switch {
		case !r.Success:
			status = StatusFailed
		case r.Changed:
			status = StatusUpdated
		}
		s.Lines = append(s.Lines, statusLine(renderer, status, r.Name))
	}

	succeeded, failed := countResults(results)
	s.Title = e.title(s.Title)
	s.Totals = fmt.Sprintf("Summary: %d successful, %d failed", succeeded, failed)
	RenderSummary(e.Out, s, failed > 0)

	if failed == 0 {
		util.Tagged(e.Out, util.TagSuccess, "All packages synchronized successfully!")
	}
}

func (e *SyncEnv) finishVersions(rootDir, target string, results []version.Result, failures []version.Failure) {
	renderer := lipgloss.NewRenderer(e.Out)
	s := Summary{
		Title:   e.title("VERSION SYNCHRONIZATION COMPLETED"),
		Details: []string{"Target Version: " + target},
	}

	updated := 0
	for _, r := range results {
		status := StatusUnchanged
		if r.Changed {
			status = StatusUpdated
			updated++
		}
		s.Lines = append(s.Lines, statusLine(renderer, status, fmt.Sprintf("%-30s: %s → %s", r.Name, r.OldVersion, r.NewVersion)))
	}
	for _, f := range failures {
		s.Lines = append(s.Lines, statusLine(renderer, StatusFailed, e.rel(rootDir, f.Path)))
	}

	s.Totals = fmt.Sprintf("Summary: %d updated, %d unchanged, %d failed", updated, len(results)-updated, len(failures))
	RenderSummary(e.Out, s, len(failures) > 0)

	if len(failures) == 0 {
		util.Tagged(e.Out, util.TagSuccess, "Synchronized %d packages!", len(results))
	}
}
