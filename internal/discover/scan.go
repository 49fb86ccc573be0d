package discover

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/bolasblack/monosync/internal/util"
)

// ScanDirs are the top-level directories searched when no workspace is declared.
var ScanDirs = []string{"packages", "apps", "libs", "modules", "services", "tools", "examples"}

// ExcludedDirs are never descended into by Scan.
var ExcludedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"coverage":     true,
	".git":         true,
}

// Scan recursively collects manifests below the ScanDirs of rootDir.
func Scan(env *util.Env, rootDir string) []string {
	var paths []string
	for _, dir := range ScanDirs {
		paths = append(paths, collect(env, rootDir, filepath.Join(rootDir, dir), func(name string) bool {
			return ExcludedDirs[name]
		})...)
	}
	return paths
}

// Walk collects every manifest below rootDir, skipping node_modules and
// hidden directories.
func Walk(env *util.Env, rootDir string) []string {
	return collect(env, rootDir, rootDir, func(name string) bool {
		return name == "node_modules" || strings.HasPrefix(name, ".")
	})
}

func collect(env *util.Env, rootDir, start string, skipDir func(name string) bool) []string {
	rootManifest := RootManifest(rootDir)
	var paths []string
	_ = afero.Walk(env.Fs, start, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			env.Log.Debug("skipping unreadable path", "path", path, "error", err)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			if path != start && skipDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() == util.ManifestFilename && path != rootManifest {
			paths = append(paths, path)
		}
		return nil
	})
	return paths
}
