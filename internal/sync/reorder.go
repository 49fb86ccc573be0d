package sync

import (
	"fmt"
	"path/filepath"

	"github.com/bolasblack/monosync/internal/discover"
	"github.com/bolasblack/monosync/internal/manifest"
	"github.com/bolasblack/monosync/internal/merge"
	"github.com/bolasblack/monosync/internal/util"
)

// ReorderPackages normalizes every discovered manifest in place. Missing
// common fields are filled from the template when one is available.
func (e *SyncEnv) ReorderPackages(opts Options) ([]SyncResult, error) {
	util.Tagged(e.Out, util.TagPackageSync, "Starting package.json reordering...")

	tmpl, tmplPath, err := e.loadOptionalTemplate(opts, "reordering fields only")
	if err != nil {
		return nil, err
	}
	if tmpl != nil {
		util.Tagged(e.Out, util.TagPackageSync, "Template: %s", e.rel(opts.RootDir, tmplPath))
	}

	found := discover.Packages(e.Env, opts.RootDir)
	switch found.Strategy {
	case discover.StrategyWorkspace:
		util.Tagged(e.Out, util.TagPackageSync, "Discovered %d packages from %s", len(found.Paths), e.rel(opts.RootDir, found.Source))
	default:
		util.Tagged(e.Out, util.TagPackageSync, "Discovered %d packages by scanning %v", len(found.Paths), discover.ScanDirs)
	}
	if len(found.Paths) == 0 {
		util.Tagged(e.Out, util.TagWarn, "No packages found")
	}

	results := make([]SyncResult, 0, len(found.Paths))
	for _, path := range found.Paths {
		result := e.reorderOne(opts.RootDir, path, tmpl)
		if result.Err != nil {
			util.Tagged(e.Out, util.TagError, "%s: %v", result.Directory, result.Err)
		}
		results = append(results, result)
	}

	summary := Summary{Title: "PACKAGE REORDER COMPLETED"}
	if tmplPath != "" {
		summary.Details = append(summary.Details, "Template: "+e.rel(opts.RootDir, tmplPath))
	}
	e.finishPackages(summary, results)
	return results, packagesError(results)
}

func (e *SyncEnv) reorderOne(rootDir, path string, tmpl *manifest.Manifest) SyncResult {
	result := SyncResult{Directory: e.rel(rootDir, filepath.Dir(path))}
	result.Name = result.Directory

	f, err := manifest.ReadFile(e.Fs, path)
	if err != nil {
		result.Err = err
		return result
	}
	if name := f.Manifest.Name(); name != "" {
		result.Name = name
	}

	changed, err := f.Save(e.Fs, merge.Reorder(f.Manifest, tmpl))
	if err != nil {
		result.Err = err
		return result
	}
	result.Success = true
	result.Changed = changed
	e.Log.Debug("reordered manifest", "path", path, "changed", changed)
	return result
}

func packagesError(results []SyncResult) error {
	if _, failed := countResults(results); failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(results), ErrPackagesFailed)
	}
	return nil
}
