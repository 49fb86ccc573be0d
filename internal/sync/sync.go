// Package sync drives monosync's passes over a repository: reorder, generate,
// validate and version sync. Each pass resolves its inputs, processes every
// package independently and prints a summary.
package sync

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/bolasblack/monosync/internal/config"
	"github.com/bolasblack/monosync/internal/util"
)

var (
	// ErrPackagesFailed indicates at least one package could not be processed.
	ErrPackagesFailed = errors.New("one or more packages failed")

	// ErrOutOfDate indicates a check run found manifests that would change.
	ErrOutOfDate = errors.New("manifests are out of date")
)

// SyncEnv holds dependencies for the sync module.
type SyncEnv struct {
	*util.Env
	// Out receives progress lines and summaries.
	Out io.Writer
	// DryRun marks summaries as previews; writes are expected to be staged by Env.Fs.
	DryRun bool
}

// NewSyncEnv creates a new SyncEnv from externally-created dependencies.
func NewSyncEnv(env *util.Env, out io.Writer) *SyncEnv {
	return &SyncEnv{Env: env, Out: out}
}

// Options select the repository and input files for a pass.
type Options struct {
	// RootDir is the absolute repository root.
	RootDir string
	// Config holds the template/configs location overrides.
	Config config.Options
	// Validate runs package validation before generating.
	Validate bool
	// Version overrides the root manifest version for SyncVersions.
	Version string
	// All makes SyncVersions walk the whole repository.
	All bool
}

// SyncResult is the outcome for one package.
type SyncResult struct {
	Name      string
	Directory string
	Success   bool
	// Changed reports whether the manifest was (or would be) rewritten.
	Changed bool
	Err     error
}

func (e *SyncEnv) rel(rootDir, path string) string {
	if rel, err := filepath.Rel(rootDir, path); err == nil {
		return rel
	}
	return path
}

func countResults(results []SyncResult) (succeeded, failed int) {
	for _, r := range results {
		if r.Success {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
