package config

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bolasblack/monosync/internal/util"
)

// entryPoints must all be declared by every package configuration.
var entryPoints = []string{"main", "module", "types"}

// Validate checks every package configuration against the repository at rootDir.
// All problems are collected before returning, as a *ValidationError.
func Validate(env *util.Env, rootDir string, configs *PackageConfigs) error {
	var problems []Problem
	report := func(pkg, msg string) {
		problems = append(problems, Problem{Package: pkg, Message: msg})
	}

	for _, cfg := range configs.Packages {
		if cfg.directoryInvalid {
			report(cfg.Name, "directory must be a string")
			continue
		}
		if cfg.Directory == "" {
			report(cfg.Name, "missing directory")
			continue
		}

		dir := filepath.Join(rootDir, cfg.Directory)
		if ok, err := afero.DirExists(env.Fs, dir); err != nil || !ok {
			report(cfg.Name, "directory does not exist: "+cfg.Directory)
			continue
		}

		if cfg.String("description") == "" {
			report(cfg.Name, "missing description")
		}

		for _, field := range entryPoints {
			if cfg.String(field) == "" {
				report(cfg.Name, "missing entry points (main/module/types)")
				break
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
