// generator.go provides the starter files written by monosync init.
//
// The template scaffold is prefilled from the root manifest so that the first
// sync does not change any shared field the repository already declares.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/bolasblack/monosync/internal/manifest"
	"github.com/bolasblack/monosync/internal/util"
)

// ErrScaffoldExists is returned when init would overwrite an existing file.
var ErrScaffoldExists = errors.New("file already exists")

// Scaffold identifies a starter file.
type Scaffold string

const (
	// ScaffoldTemplate is .monosync/package-template.json.
	ScaffoldTemplate Scaffold = "template"
	// ScaffoldConfigs is .monosync/package-configs.json.
	ScaffoldConfigs Scaffold = "configs"
	// ScaffoldRC is .monosyncrc.json.
	ScaffoldRC Scaffold = "rc"
)

// AllScaffolds lists every scaffold in the order init offers them.
var AllScaffolds = []Scaffold{ScaffoldTemplate, ScaffoldConfigs, ScaffoldRC}

// RelPath returns where the scaffold lives, relative to the repository root.
func (s Scaffold) RelPath() string {
	switch s {
	case ScaffoldConfigs:
		return filepath.Join(util.ConfigDir, util.ConfigsFilename)
	case ScaffoldRC:
		return util.RCFilename
	default:
		return filepath.Join(util.ConfigDir, util.TemplateFilename)
	}
}

// Description is a one-line summary used in prompts.
func (s Scaffold) Description() string {
	switch s {
	case ScaffoldConfigs:
		return "Per-package configuration for 'monosync generate'"
	case ScaffoldRC:
		return "Project settings pointing at the two files above"
	default:
		return "Shared fields (repository, author, license, engines, ...)"
	}
}

// ScaffoldInput is what the scaffolds are prefilled from.
type ScaffoldInput struct {
	// Root is the repository's root manifest; may be nil.
	Root *manifest.Manifest
	// Packages become the entries of the configs scaffold.
	Packages []PackageConfig
}

// templateFields are copied from the root manifest into the template scaffold.
var templateFields = []string{"license", "repository", "homepage", "bugs", "author", "engines"}

// GenerateScaffold returns the content for s.
func GenerateScaffold(s Scaffold, in ScaffoldInput) ([]byte, error) {
	switch s {
	case ScaffoldTemplate:
		return manifest.Encode(templateScaffold(in.Root))
	case ScaffoldConfigs:
		return manifest.Encode(configsScaffold(in.Packages))
	case ScaffoldRC:
		return manifest.Encode(manifest.ObjectOf(
			"templatePath", filepath.ToSlash(ScaffoldTemplate.RelPath()),
			"configsPath", filepath.ToSlash(ScaffoldConfigs.RelPath()),
		))
	default:
		return nil, fmt.Errorf("unknown scaffold: %s", s)
	}
}

func templateScaffold(root *manifest.Manifest) *manifest.Object {
	obj := manifest.ObjectOf(templateMarkerKey, true, templateVersionKey, "1.0.0")
	for _, field := range templateFields {
		if root == nil {
			break
		}
		if v, ok := root.Get(field); ok {
			obj.Set(field, manifest.CloneValue(v))
		}
	}
	if _, ok := obj.Get("license"); !ok {
		obj.Set("license", "MIT")
	}
	if _, ok := obj.Get("engines"); !ok {
		obj.Set("engines", manifest.ObjectOf("node", ">=18"))
	}
	return obj
}

func configsScaffold(packages []PackageConfig) *manifest.Object {
	entries := manifest.NewObject()
	for _, pkg := range packages {
		entry := manifest.ObjectOf(manifest.KeyDirectory, filepath.ToSlash(pkg.Directory))
		if pkg.Fields != nil {
			for pair := pkg.Fields.Oldest(); pair != nil; pair = pair.Next() {
				entry.Set(pair.Key, manifest.CloneValue(pair.Value))
			}
		}
		entries.Set(pkg.Name, entry)
	}
	return manifest.ObjectOf("packages", entries)
}

// WriteScaffold writes content to path, creating parent directories.
// Existing files are never overwritten.
func WriteScaffold(fs afero.Fs, path string, content []byte) error {
	if _, err := fs.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrScaffoldExists)
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	return afero.WriteFile(fs, path, content, 0644)
}
