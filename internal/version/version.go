// Package version propagates the root manifest's version to package manifests.
package version

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/bolasblack/monosync/internal/manifest"
	"github.com/bolasblack/monosync/internal/util"
)

// RootManifestError reports a root manifest that cannot serve as the version source.
type RootManifestError struct {
	Path string
	Err  error
}

func (e *RootManifestError) Error() string {
	return fmt.Sprintf("could not read root package.json at %s: %v", e.Path, e.Err)
}

func (e *RootManifestError) Unwrap() error { return e.Err }

// Result is the outcome of updating one manifest.
type Result struct {
	// Name is the package name, or the root-relative path when unnamed.
	Name       string
	Path       string
	OldVersion string
	NewVersion string
	Changed    bool
}

// Failure is a manifest that could not be updated.
type Failure struct {
	Path string
	Err  error
}

// SourceVersion returns the version of the root manifest, "0.0.0" when unset.
func SourceVersion(env *util.Env, rootDir string) (string, error) {
	path := filepath.Join(rootDir, util.ManifestFilename)
	f, err := manifest.ReadFile(env.Fs, path)
	if err != nil {
		return "", &RootManifestError{Path: path, Err: err}
	}
	return f.Manifest.VersionOrDefault(), nil
}

// ValidateOverride checks an explicitly requested target version.
// Only the format is checked; versions are still compared as plain strings.
func ValidateOverride(v string) error {
	if _, err := semver.StrictNewVersion(v); err != nil {
		return fmt.Errorf("invalid version %q: %w", v, err)
	}
	return nil
}

// Apply sets the version of the manifest at path. A manifest whose version
// already equals newVersion is left untouched. Only the version value changes;
// every other key keeps its value and position.
func Apply(env *util.Env, path, newVersion, rootDir string) (Result, error) {
	f, err := manifest.ReadFile(env.Fs, path)
	if err != nil {
		return Result{}, err
	}

	m := f.Manifest
	result := Result{
		Name:       m.Name(),
		Path:       path,
		OldVersion: m.VersionOrDefault(),
		NewVersion: newVersion,
	}
	if result.Name == "" {
		result.Name = relPath(rootDir, path)
	}

	if result.OldVersion == newVersion {
		return result, nil
	}

	m.SetVersion(newVersion)
	changed, err := f.Save(env.Fs, m)
	if err != nil {
		return Result{}, err
	}
	result.Changed = changed
	return result, nil
}

// Sync applies version to every manifest in paths, in order. Failures are
// reported on w and returned separately; they never stop the batch.
func Sync(env *util.Env, w io.Writer, rootDir, version string, paths []string) ([]Result, []Failure) {
	var results []Result
	var failures []Failure
	for _, path := range paths {
		result, err := Apply(env, path, version, rootDir)
		if err != nil {
			util.Tagged(w, util.TagError, "Could not update %s: %v", relPath(rootDir, path), err)
			failures = append(failures, Failure{Path: path, Err: err})
			continue
		}
		if result.Changed {
			util.Tagged(w, util.TagVersionSync, "%s: %s → %s", result.Name, result.OldVersion, result.NewVersion)
		}
		results = append(results, result)
	}
	return results, failures
}

func relPath(rootDir, path string) string {
	if rel, err := filepath.Rel(rootDir, path); err == nil {
		return rel
	}
	return path
}
