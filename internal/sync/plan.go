package sync

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/bolasblack/monosync/internal/transact"
	"github.com/bolasblack/monosync/internal/util"
)

// diffContext is the number of unchanged lines kept around each change.
const diffContext = 3

// ReportPending prints a line diff for every file staged in tfs. With check
// set, any pending change is an error wrapping ErrOutOfDate.
func (e *SyncEnv) ReportPending(tfs *transact.TransactFs, rootDir string, check bool) error {
	ops, err := tfs.Diff()
	if err != nil {
		return fmt.Errorf("failed to compute pending changes: %w", err)
	}

	if len(ops) == 0 {
		util.Tagged(e.Out, util.TagSuccess, "All manifests are up to date")
		return nil
	}

	renderer := lipgloss.NewRenderer(e.Out)
	for _, op := range ops {
		rel := e.rel(rootDir, op.Path)
		util.Progress(e.Out, "\n%s\n", renderer.NewStyle().Bold(true).Render(fmt.Sprintf("%s %s", op.Op, rel)))
		util.Progress(e.Out, "%s", LineDiff(renderer, string(op.Previous), string(op.Content)))
	}

	noun := "file"
	if len(ops) != 1 {
		noun = "files"
	}
	if check {
		util.Tagged(e.Out, util.TagError, "%d %s out of date; run without --check to update", len(ops), noun)
		return fmt.Errorf("%d %s: %w", len(ops), noun, ErrOutOfDate)
	}
	util.Tagged(e.Out, util.TagWarn, "%d %s would change (dry run, nothing written)", len(ops), noun)
	return nil
}

type diffLine struct {
	op   diffmatchpatch.Operation
	text string
}

// LineDiff renders a line-based diff of before and after with diffContext
// unchanged lines around each change. Skipped runs are shown as "...".
func LineDiff(renderer *lipgloss.Renderer, before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var all []diffLine
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			all = append(all, diffLine{op: d.Type, text: strings.TrimSuffix(line, "\n")})
		}
	}

	keep := make([]bool, len(all))
	for i, l := range all {
		if l.op == diffmatchpatch.DiffEqual {
			continue
		}
		for j := max(0, i-diffContext); j <= min(len(all)-1, i+diffContext); j++ {
			keep[j] = true
		}
	}

	added := renderer.NewStyle().Foreground(lipgloss.Color("2"))
	removed := renderer.NewStyle().Foreground(lipgloss.Color("1"))

	var sb strings.Builder
	skipped := false
	for i, l := range all {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			sb.WriteString("  ...\n")
			skipped = false
		}
		switch l.op {
		case diffmatchpatch.DiffInsert:
			sb.WriteString(added.Render("+ "+l.text) + "\n")
		case diffmatchpatch.DiffDelete:
			sb.WriteString(removed.Render("- "+l.text) + "\n")
		default:
			sb.WriteString("  " + l.text + "\n")
		}
	}
	if skipped {
		sb.WriteString("  ...\n")
	}
	return sb.String()
}
