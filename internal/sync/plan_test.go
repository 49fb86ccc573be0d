package sync

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolasblack/monosync/internal/transact"
	"github.com/bolasblack/monosync/internal/util"
)

func newDryRunEnv(t *testing.T, files map[string]string) (*SyncEnv, *transact.TransactFs, afero.Fs, *bytes.Buffer) {
	t.Helper()
	actual := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(actual, path, []byte(content), 0644))
	}
	tfs := transact.New(transact.WithActualFs(actual))
	var out bytes.Buffer
	env := NewSyncEnv(util.NewEnv(tfs), &out)
	env.DryRun = true
	return env, tfs, actual, &out
}

func TestReportPending_DryRun(t *testing.T) {
	original := `{"version": "1.0.0", "name": "a"}`
	env, tfs, actual, out := newDryRunEnv(t, map[string]string{
		"/repo/packages/a/package.json": original,
	})

	results, err := env.ReorderPackages(Options{RootDir: root})
	require.NoError(t, err)
	assert.True(t, results[0].Changed)

	require.NoError(t, env.ReportPending(tfs, root, false))

	assert.Equal(t, original, readFile(t, actual, "/repo/packages/a/package.json"), "nothing written")
	output := out.String()
	assert.Contains(t, output, "(dry run)")
	assert.Contains(t, output, "update packages/a/package.json")
	assert.Contains(t, output, `- {"version": "1.0.0", "name": "a"}`)
	assert.Contains(t, output, `+   "name": "a",`)
	assert.Contains(t, output, "[WARN] 1 file would change (dry run, nothing written)")
}

func TestReportPending_Check(t *testing.T) {
	env, tfs, _, out := newDryRunEnv(t, map[string]string{
		"/repo/package.json":            `{"version": "2.0.0"}`,
		"/repo/packages/a/package.json": `{"name": "a", "version": "1.0.0"}`,
		"/repo/packages/b/package.json": `{"name": "b", "version": "1.0.0"}`,
	})

	_, err := env.SyncVersions(Options{RootDir: root})
	require.NoError(t, err)

	err = env.ReportPending(tfs, root, true)
	assert.ErrorIs(t, err, ErrOutOfDate)
	assert.Contains(t, out.String(), "[ERROR] 2 files out of date")
}

func TestReportPending_UpToDate(t *testing.T) {
	env, tfs, _, out := newDryRunEnv(t, map[string]string{
		"/repo/package.json":            `{"version": "1.0.0"}`,
		"/repo/packages/a/package.json": `{"name": "a", "version": "1.0.0"}`,
	})

	_, err := env.SyncVersions(Options{RootDir: root})
	require.NoError(t, err)

	assert.NoError(t, env.ReportPending(tfs, root, true))
	assert.Contains(t, out.String(), "[SUCCESS] All manifests are up to date")
}

func TestLineDiff(t *testing.T) {
	renderer := lipgloss.NewRenderer(&bytes.Buffer{})
	before := "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\n"
	after := "a\nb\nc\nd\ne\nF\ng\nh\ni\nj\n"

	got := LineDiff(renderer, before, after)

	assert.Equal(t, "  ...\n  c\n  d\n  e\n- f\n+ F\n  g\n  h\n  i\n  ...\n", got)
}

func TestLineDiff_NewFile(t *testing.T) {
	renderer := lipgloss.NewRenderer(&bytes.Buffer{})

	assert.Equal(t, "+ {\n+ }\n", LineDiff(renderer, "", "{\n}\n"))
}
