package sync

import (
	"errors"
	"path/filepath"

	"github.com/bolasblack/monosync/internal/config"
	"github.com/bolasblack/monosync/internal/manifest"
	"github.com/bolasblack/monosync/internal/merge"
	"github.com/bolasblack/monosync/internal/util"
	"github.com/bolasblack/monosync/internal/version"
)

// GeneratePackages writes every configured package's manifest from the
// template and its package configuration.
func (e *SyncEnv) GeneratePackages(opts Options) ([]SyncResult, error) {
	util.Tagged(e.Out, util.TagPackageSync, "Starting package.json synchronization...")

	if opts.Validate {
		if err := e.ValidatePackages(opts); err != nil {
			return nil, err
		}
	}

	ver, err := version.SourceVersion(e.Env, opts.RootDir)
	if err != nil {
		return nil, err
	}

	configsPath, err := config.Resolve(e.Env, config.KindConfigs, opts.RootDir, opts.Config)
	if err != nil {
		return nil, err
	}
	configs, err := config.LoadConfigs(e.Env, configsPath)
	if err != nil {
		return nil, err
	}

	tmpl, tmplPath, err := e.loadOptionalTemplate(opts, "generating from package configs only")
	if err != nil {
		return nil, err
	}
	if tmpl == nil {
		tmpl = manifest.New()
	}

	util.Tagged(e.Out, util.TagPackageSync, "Root version: %s", ver)
	if tmplPath != "" {
		util.Tagged(e.Out, util.TagPackageSync, "Template: %s", e.rel(opts.RootDir, tmplPath))
	}
	util.Tagged(e.Out, util.TagPackageSync, "Configs: %s", e.rel(opts.RootDir, configsPath))
	util.Tagged(e.Out, util.TagPackageSync, "Loaded template with %d base fields", tmpl.Len())
	util.Tagged(e.Out, util.TagPackageSync, "Found %d package configurations", len(configs.Packages))

	results := make([]SyncResult, 0, len(configs.Packages))
	for _, cfg := range configs.Packages {
		util.Tagged(e.Out, util.TagPackageSync, "Processing %s...", cfg.Name)
		result := e.generateOne(opts.RootDir, tmpl, cfg, ver)
		if result.Err != nil {
			util.Tagged(e.Out, util.TagError, "%s: %v", cfg.Name, result.Err)
		}
		results = append(results, result)
	}

	e.finishPackages(Summary{
		Title:   "PACKAGE SYNCHRONIZATION COMPLETED",
		Details: []string{"Version: " + ver},
	}, results)
	return results, packagesError(results)
}

var errNoDirectory = errors.New("no directory specified")

func (e *SyncEnv) generateOne(rootDir string, tmpl *manifest.Manifest, cfg config.PackageConfig, ver string) SyncResult {
	result := SyncResult{Name: cfg.Name, Directory: cfg.Directory}
	if cfg.Directory == "" {
		result.Err = errNoDirectory
		return result
	}

	path := filepath.Join(rootDir, cfg.Directory, util.ManifestFilename)
	changed, err := manifest.WriteIfChanged(e.Fs, path, merge.Generate(cfg.Name, tmpl, cfg, ver))
	if err != nil {
		result.Err = err
		return result
	}
	result.Success = true
	result.Changed = changed
	return result
}
