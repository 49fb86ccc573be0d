// Package discover finds the package manifests of a monorepo, either from its
// workspace declaration or by scanning conventional directories.
package discover

import (
	"path/filepath"

	"github.com/bolasblack/monosync/internal/util"
)

// Strategy names how a package list was produced.
type Strategy string

const (
	// StrategyWorkspace expands the patterns of a workspace declaration.
	StrategyWorkspace Strategy = "workspace"
	// StrategyScan walks the conventional package directories.
	StrategyScan Strategy = "scan"
	// StrategyWalk walks the whole repository.
	StrategyWalk Strategy = "walk"
)

// Result is the outcome of one discovery run.
type Result struct {
	Strategy Strategy
	// Source is the declaration file the patterns came from; empty unless
	// Strategy is StrategyWorkspace.
	Source string
	// Paths are absolute manifest paths in traversal order.
	Paths []string
}

// Packages discovers workspace member manifests under rootDir. A workspace
// declaration with at least one pattern is used exclusively; otherwise the
// conventional directories are scanned. Unreadable directories are skipped.
func Packages(env *util.Env, rootDir string) Result {
	if decl, ok := ReadDeclaration(env, rootDir); ok {
		env.Log.Debug("using workspace declaration", "source", decl.Source, "patterns", decl.Patterns)
		return Result{
			Strategy: StrategyWorkspace,
			Source:   decl.Source,
			Paths:    Expand(env, rootDir, decl.Patterns),
		}
	}

	env.Log.Debug("no workspace declaration, scanning", "dirs", ScanDirs)
	return Result{Strategy: StrategyScan, Paths: Scan(env, rootDir)}
}

// All returns every manifest below rootDir except the root one, skipping
// dependency caches and hidden directories.
func All(env *util.Env, rootDir string) Result {
	return Result{Strategy: StrategyWalk, Paths: Walk(env, rootDir)}
}

// RootManifest returns the path of the repository's own manifest.
func RootManifest(rootDir string) string {
	return filepath.Join(rootDir, util.ManifestFilename)
}
