package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bolasblack/monosync/internal/util"
)

// Kind selects which monosync input file to resolve.
type Kind string

const (
	// KindTemplate is the shared package template.
	KindTemplate Kind = "template"
	// KindConfigs is the per-package configuration file.
	KindConfigs Kind = "configs"
)

// Filename returns the conventional file name for kind.
func (k Kind) Filename() string {
	if k == KindConfigs {
		return util.ConfigsFilename
	}
	return util.TemplateFilename
}

func (k Kind) label() string {
	if k == KindConfigs {
		return "Configs"
	}
	return "Template"
}

func (k Kind) flag() string {
	if k == KindConfigs {
		return "--configs"
	}
	return "--template"
}

func (k Kind) rcKey() string {
	if k == KindConfigs {
		return "configsPath"
	}
	return "templatePath"
}

// Options are the user-supplied location overrides.
type Options struct {
	// TemplatePath is an explicit template location.
	TemplatePath string
	// ConfigsPath is an explicit package-configs location.
	ConfigsPath string
	// ConfigDir is a directory holding both files; checked before the conventional locations.
	ConfigDir string
}

func (o Options) explicitPath(kind Kind) string {
	if kind == KindConfigs {
		return o.ConfigsPath
	}
	return o.TemplatePath
}

// legacyDir is where older setups kept their monosync files.
var legacyDir = filepath.Join("scripts", "build-system")

// SearchPaths returns the candidate locations for kind after the explicit and rc
// file strategies, in priority order.
func SearchPaths(kind Kind, rootDir, configDir string) []string {
	name := kind.Filename()
	var paths []string
	if configDir != "" {
		paths = append(paths, filepath.Join(absPath(rootDir, configDir), name))
	}
	return append(paths,
		filepath.Join(rootDir, util.ConfigDir, name),
		filepath.Join(rootDir, "config", "monosync", name),
		filepath.Join(rootDir, name),
		filepath.Join(rootDir, legacyDir, name),
	)
}

// Resolve finds the file for kind. The first match wins:
//
//  1. the explicit option path; if it does not exist an *ExplicitPathError is returned
//  2. the path from the project rc file
//  3. the config directory option
//  4. the conventional locations
//
// When nothing matches the returned error wraps ErrNotFound.
func Resolve(env *util.Env, kind Kind, rootDir string, opts Options) (string, error) {
	if explicit := opts.explicitPath(kind); explicit != "" {
		path := absPath(rootDir, explicit)
		if isFile(env.Fs, path) {
			return path, nil
		}
		return "", &ExplicitPathError{Kind: kind, Path: explicit}
	}

	if fromRC := LoadRC(env, rootDir).pathFor(kind); fromRC != "" {
		path := absPath(rootDir, fromRC)
		if isFile(env.Fs, path) {
			return path, nil
		}
		env.Log.Debug("rc file path does not exist", "kind", string(kind), "path", path)
	}

	for _, candidate := range SearchPaths(kind, rootDir, opts.ConfigDir) {
		if isFile(env.Fs, candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("could not find %s: %w; create one at %s (recommended) or specify it with %s or %q in %s",
		kind.Filename(), ErrNotFound, filepath.Join(util.ConfigDir, kind.Filename()), kind.flag(), kind.rcKey(), util.RCFilename)
}

func absPath(rootDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(rootDir, path)
}

func isFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}
