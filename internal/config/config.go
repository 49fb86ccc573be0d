// Package config locates and loads monosync's inputs: the project rc file,
// the shared package template and the per-package configuration file.
package config

import (
	"encoding/json"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/bolasblack/monosync/internal/util"
)

// MonosyncConfig is the project-level settings file (.monosyncrc.json or .monosyncrc.toml).
type MonosyncConfig struct {
	TemplatePath string `json:"templatePath,omitempty" toml:"templatePath,omitempty" jsonschema:"description=Path to package-template.json (absolute or relative to the repository root)"`
	ConfigsPath  string `json:"configsPath,omitempty" toml:"configsPath,omitempty" jsonschema:"description=Path to package-configs.json (absolute or relative to the repository root)"`
}

// pathFor returns the configured path for kind, or "".
func (c MonosyncConfig) pathFor(kind Kind) string {
	switch kind {
	case KindTemplate:
		return c.TemplatePath
	case KindConfigs:
		return c.ConfigsPath
	default:
		return ""
	}
}

// LoadRC reads the project rc file from rootDir. The rc file is optional:
// a missing, unreadable or malformed file yields an empty config.
// The JSON file takes precedence over the TOML one.
func LoadRC(env *util.Env, rootDir string) MonosyncConfig {
	jsonPath := filepath.Join(rootDir, util.RCFilename)
	if data, err := afero.ReadFile(env.Fs, jsonPath); err == nil {
		var cfg MonosyncConfig
		if err := json.Unmarshal(data, &cfg); err != nil {
			env.Log.Debug("ignoring unparsable rc file", "path", jsonPath, "error", err)
			return MonosyncConfig{}
		}
		return cfg
	}

	tomlPath := filepath.Join(rootDir, util.RCTomlFilename)
	if data, err := afero.ReadFile(env.Fs, tomlPath); err == nil {
		var cfg MonosyncConfig
		if err := toml.Unmarshal(data, &cfg); err != nil {
			env.Log.Debug("ignoring unparsable rc file", "path", tomlPath, "error", err)
			return MonosyncConfig{}
		}
		return cfg
	}

	return MonosyncConfig{}
}
