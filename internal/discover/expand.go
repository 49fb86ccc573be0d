package discover

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/bolasblack/monosync/internal/util"
)

// isGlobPattern reports whether a pattern segment contains wildcard characters.
func isGlobPattern(segment string) bool {
	return strings.ContainsAny(segment, "*?[")
}

// Expand resolves workspace patterns to manifest paths. Only directories that
// hold a manifest are returned, each once, in pattern order. The root manifest
// is never a member. Patterns starting
// with "!" remove matching directories from the result.
func Expand(env *util.Env, rootDir string, patterns []string) []string {
	var includes, excludes []string
	for _, p := range patterns {
		if strings.HasPrefix(p, "!") {
			excludes = append(excludes, strings.TrimPrefix(p, "!"))
		} else {
			includes = append(includes, p)
		}
	}

	rootManifest := RootManifest(rootDir)
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range includes {
		for _, dir := range expandPattern(env.Fs, rootDir, pattern) {
			if seen[dir] || excluded(dir, excludes) {
				continue
			}
			seen[dir] = true
			path := filepath.Join(rootDir, filepath.FromSlash(dir), util.ManifestFilename)
			if path == rootManifest {
				continue
			}
			paths = append(paths, path)
		}
	}
	return paths
}

// expandPattern returns the root-relative, slash-separated directories matching
// pattern that contain a manifest. Only the first wildcard segment is expanded,
// against the immediate subdirectories of the fixed prefix before it.
func expandPattern(fs afero.Fs, rootDir, pattern string) []string {
	segments := strings.Split(pattern, "/")
	wildcard := -1
	for i, seg := range segments {
		if isGlobPattern(seg) {
			wildcard = i
			break
		}
	}

	if wildcard < 0 {
		if hasManifest(fs, rootDir, pattern) {
			return []string{pattern}
		}
		return nil
	}

	prefix := path.Join(segments[:wildcard]...)
	suffix := path.Join(segments[wildcard+1:]...)
	entries, err := afero.ReadDir(fs, filepath.Join(rootDir, filepath.FromSlash(prefix)))
	if err != nil {
		return nil
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if ok, _ := path.Match(segments[wildcard], entry.Name()); !ok {
			continue
		}
		dir := path.Join(prefix, entry.Name(), suffix)
		if hasManifest(fs, rootDir, dir) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func excluded(dir string, excludes []string) bool {
	for _, pattern := range excludes {
		if pattern == dir {
			return true
		}
		if ok, _ := path.Match(pattern, dir); ok {
			return true
		}
	}
	return false
}

func hasManifest(fs afero.Fs, rootDir, dir string) bool {
	info, err := fs.Stat(filepath.Join(rootDir, filepath.FromSlash(dir), util.ManifestFilename))
	return err == nil && !info.IsDir()
}
