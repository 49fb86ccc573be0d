package config

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"

	"github.com/bolasblack/monosync/internal/manifest"
	"github.com/bolasblack/monosync/internal/util"
)

// PackageConfig is one entry of package-configs.json.
type PackageConfig struct {
	// Name is the logical package name (the entry's key).
	Name string
	// Directory is the package directory relative to the repository root.
	Directory string
	// Fields holds the manifest overrides, in declaration order, without "directory".
	Fields *manifest.Object
	// directoryInvalid is set when "directory" was present but not a string.
	directoryInvalid bool
}

// String returns the string override for key, or "".
func (c PackageConfig) String(key string) string {
	if c.Fields == nil {
		return ""
	}
	v, _ := c.Fields.Get(key)
	s, _ := v.(string)
	return s
}

// PackageConfigs is the parsed package-configs.json, entries in file order.
type PackageConfigs struct {
	Packages []PackageConfig
}

// LoadConfigs reads and parses the package configurations at path.
func LoadConfigs(env *util.Env, path string) (*PackageConfigs, error) {
	data, err := afero.ReadFile(env.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("could not load package configs: %w", err)
	}
	configs, err := ParseConfigs(data)
	if err != nil {
		return nil, fmt.Errorf("could not load package configs from %s: %w", path, err)
	}
	return configs, nil
}

// ParseConfigs parses package-configs.json content.
func ParseConfigs(data []byte) (*PackageConfigs, error) {
	root, err := manifest.Decode(data)
	if err != nil {
		return nil, err
	}

	raw, ok := root.Get("packages")
	if !ok {
		return nil, errors.New(`missing "packages" object`)
	}
	packages, ok := raw.(*manifest.Object)
	if !ok || packages == nil {
		return nil, errors.New(`"packages" must be an object`)
	}

	configs := &PackageConfigs{}
	for pair := packages.Oldest(); pair != nil; pair = pair.Next() {
		entry, ok := pair.Value.(*manifest.Object)
		if !ok || entry == nil {
			return nil, fmt.Errorf("package %q: configuration must be an object", pair.Key)
		}
		configs.Packages = append(configs.Packages, newPackageConfig(pair.Key, entry))
	}
	return configs, nil
}

func newPackageConfig(name string, entry *manifest.Object) PackageConfig {
	cfg := PackageConfig{Name: name, Fields: manifest.NewObject()}
	for pair := entry.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == manifest.KeyDirectory {
			dir, ok := pair.Value.(string)
			cfg.Directory = dir
			cfg.directoryInvalid = !ok && pair.Value != nil
			continue
		}
		cfg.Fields.Set(pair.Key, manifest.CloneValue(pair.Value))
	}
	return cfg
}
