package discover

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/bolasblack/monosync/internal/manifest"
	"github.com/bolasblack/monosync/internal/util"
)

// Declaration is a workspace membership list.
type Declaration struct {
	// Source is the file the patterns were read from.
	Source   string
	Patterns []string
}

type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// ReadDeclaration returns the workspace declaration of rootDir.
// pnpm-workspace.yaml is preferred; the root manifest's "workspaces" field
// (an array, or an object with a "packages" array) is the fallback.
// A declaration without patterns counts as absent.
func ReadDeclaration(env *util.Env, rootDir string) (*Declaration, bool) {
	wsPath := filepath.Join(rootDir, util.WorkspaceFilename)
	if data, err := afero.ReadFile(env.Fs, wsPath); err == nil {
		var ws pnpmWorkspace
		if err := yaml.Unmarshal(data, &ws); err != nil {
			env.Log.Warn("ignoring unparsable workspace file", "path", wsPath, "error", err)
		} else if patterns := cleanPatterns(ws.Packages); len(patterns) > 0 {
			return &Declaration{Source: wsPath, Patterns: patterns}, true
		}
	}

	rootPath := RootManifest(rootDir)
	f, err := manifest.ReadFile(env.Fs, rootPath)
	if err != nil {
		return nil, false
	}
	if patterns := cleanPatterns(workspacesField(f.Manifest)); len(patterns) > 0 {
		return &Declaration{Source: rootPath, Patterns: patterns}, true
	}
	return nil, false
}

func workspacesField(m *manifest.Manifest) []string {
	v, ok := m.Get(manifest.KeyWorkspaces)
	if !ok {
		return nil
	}
	if obj, ok := v.(*manifest.Object); ok && obj != nil {
		v, _ = obj.Get("packages")
	}
	items, _ := v.([]any)
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// cleanPatterns normalizes patterns and drops empty ones.
func cleanPatterns(patterns []string) []string {
	var out []string
	for _, p := range patterns {
		if p = normalizePattern(p); p != "" && p != "!" {
			out = append(out, p)
		}
	}
	return out
}

func normalizePattern(p string) string {
	p = strings.TrimSpace(p)
	negate := strings.HasPrefix(p, "!")
	p = strings.TrimPrefix(p, "!")
	p = strings.TrimPrefix(filepath.ToSlash(p), "./")
	p = strings.TrimSuffix(p, "/")
	if negate {
		return "!" + p
	}
	return p
}
