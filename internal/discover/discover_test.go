package discover

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolasblack/monosync/internal/util"
)

const root = "/repo"

func newTestEnv(t *testing.T, files ...string) *util.Env {
	t.Helper()
	env := util.NewTestEnv()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(env.Fs, f, []byte("{}\n"), 0644))
	}
	return env
}

func writeFile(t *testing.T, env *util.Env, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(env.Fs, path, []byte(content), 0644))
}

func TestReadDeclaration(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		wantOK     bool
		wantSource string
		want       []string
	}{
		{
			name: "pnpm workspace file",
			files: map[string]string{
				"/repo/pnpm-workspace.yaml": "packages:\n  - 'packages/*'\n  - \"./apps/web/\"\n  - '!packages/legacy'\n",
			},
			wantOK:     true,
			wantSource: "/repo/pnpm-workspace.yaml",
			want:       []string{"packages/*", "apps/web", "!packages/legacy"},
		},
		{
			name: "root workspaces array",
			files: map[string]string{
				"/repo/package.json": `{"name": "root", "workspaces": ["packages/*", 3]}`,
			},
			wantOK:     true,
			wantSource: "/repo/package.json",
			want:       []string{"packages/*"},
		},
		{
			name: "root workspaces object",
			files: map[string]string{
				"/repo/package.json": `{"workspaces": {"packages": ["libs/*"], "nohoist": ["**"]}}`,
			},
			wantOK:     true,
			wantSource: "/repo/package.json",
			want:       []string{"libs/*"},
		},
		{
			name: "empty pnpm list falls back to root field",
			files: map[string]string{
				"/repo/pnpm-workspace.yaml": "packages: []\n",
				"/repo/package.json":        `{"workspaces": ["apps/*"]}`,
			},
			wantOK:     true,
			wantSource: "/repo/package.json",
			want:       []string{"apps/*"},
		},
		{
			name: "malformed yaml falls back",
			files: map[string]string{
				"/repo/pnpm-workspace.yaml": "packages: [unclosed\n",
			},
			wantOK: false,
		},
		{
			name:   "nothing declared",
			files:  map[string]string{"/repo/package.json": `{"name": "root"}`},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			for path, content := range tt.files {
				writeFile(t, env, path, content)
			}

			decl, ok := ReadDeclaration(env, root)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantSource, decl.Source)
			assert.Equal(t, tt.want, decl.Patterns)
		})
	}
}

func TestExpand_NeverReturnsRootManifest(t *testing.T) {
	env := newTestEnv(t,
		"/repo/package.json",
		"/repo/packages/a/package.json",
	)

	got := Expand(env, root, []string{".", "./", "packages/*"})
	assert.Equal(t, []string{"/repo/packages/a/package.json"}, got)
}

func TestExpand(t *testing.T) {
	env := newTestEnv(t,
		"/repo/packages/a/package.json",
		"/repo/packages/b/package.json",
		"/repo/packages/legacy/package.json",
		"/repo/packages/plugin-x/package.json",
		"/repo/apps/web/package.json",
		"/repo/apps/nested/site/package.json",
		"/repo/tooling/lint/package.json",
	)
	// Directories without a manifest never match.
	require.NoError(t, env.Fs.MkdirAll("/repo/packages/empty", 0755))
	// Files are not directories.
	writeFile(t, env, "/repo/packages/README.md", "")

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "single wildcard",
			patterns: []string{"packages/*"},
			want: []string{
				"/repo/packages/a/package.json",
				"/repo/packages/b/package.json",
				"/repo/packages/legacy/package.json",
				"/repo/packages/plugin-x/package.json",
			},
		},
		{
			name:     "literal pattern",
			patterns: []string{"apps/web", "apps/missing"},
			want:     []string{"/repo/apps/web/package.json"},
		},
		{
			name:     "partial wildcard segment",
			patterns: []string{"packages/plugin-*"},
			want:     []string{"/repo/packages/plugin-x/package.json"},
		},
		{
			name:     "wildcard with suffix",
			patterns: []string{"apps/*/site"},
			want:     []string{"/repo/apps/nested/site/package.json"},
		},
		{
			name:     "exclusions",
			patterns: []string{"packages/*", "!packages/legacy", "!packages/plugin-*"},
			want: []string{
				"/repo/packages/a/package.json",
				"/repo/packages/b/package.json",
			},
		},
		{
			name:     "duplicates removed",
			patterns: []string{"packages/a", "packages/*", "packages/a"},
			want: []string{
				"/repo/packages/a/package.json",
				"/repo/packages/b/package.json",
				"/repo/packages/legacy/package.json",
				"/repo/packages/plugin-x/package.json",
			},
		},
		{
			name:     "missing prefix directory",
			patterns: []string{"nope/*"},
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expand(env, root, tt.patterns))
		})
	}
}

func TestScan(t *testing.T) {
	env := newTestEnv(t,
		"/repo/package.json",
		"/repo/packages/a/package.json",
		"/repo/packages/a/node_modules/dep/package.json",
		"/repo/packages/a/dist/package.json",
		"/repo/packages/group/b/package.json",
		"/repo/apps/web/package.json",
		"/repo/apps/web/.git/package.json",
		"/repo/apps/web/coverage/package.json",
		"/repo/examples/demo/package.json",
		"/repo/other/x/package.json",
	)

	assert.Equal(t, []string{
		"/repo/packages/a/package.json",
		"/repo/packages/group/b/package.json",
		"/repo/apps/web/package.json",
		"/repo/examples/demo/package.json",
	}, Scan(env, root))
}

func TestWalk(t *testing.T) {
	env := newTestEnv(t,
		"/repo/package.json",
		"/repo/a/package.json",
		"/repo/a/node_modules/dep/package.json",
		"/repo/.cache/x/package.json",
		"/repo/b/dist/package.json",
		"/repo/b/c/package.json",
	)

	assert.Equal(t, []string{
		"/repo/a/package.json",
		"/repo/b/c/package.json",
		"/repo/b/dist/package.json",
	}, Walk(env, root))
}

func TestPackages(t *testing.T) {
	t.Run("workspace declaration is exclusive", func(t *testing.T) {
		env := newTestEnv(t,
			"/repo/packages/a/package.json",
			"/repo/apps/web/package.json",
		)
		writeFile(t, env, "/repo/pnpm-workspace.yaml", "packages:\n  - packages/*\n")

		result := Packages(env, root)

		assert.Equal(t, StrategyWorkspace, result.Strategy)
		assert.Equal(t, "/repo/pnpm-workspace.yaml", result.Source)
		assert.Equal(t, []string{"/repo/packages/a/package.json"}, result.Paths)
	})

	t.Run("scan without declaration", func(t *testing.T) {
		env := newTestEnv(t, "/repo/package.json", "/repo/apps/web/package.json")

		result := Packages(env, root)

		assert.Equal(t, StrategyScan, result.Strategy)
		assert.Equal(t, []string{"/repo/apps/web/package.json"}, result.Paths)
	})

	t.Run("empty repository", func(t *testing.T) {
		result := Packages(newTestEnv(t), root)

		assert.Equal(t, StrategyScan, result.Strategy)
		assert.Empty(t, result.Paths)
	})
}

func TestAll(t *testing.T) {
	env := newTestEnv(t, "/repo/package.json", "/repo/x/package.json")

	result := All(env, root)

	assert.Equal(t, StrategyWalk, result.Strategy)
	assert.Equal(t, []string{"/repo/x/package.json"}, result.Paths)
}
