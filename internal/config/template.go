package config

import (
	"fmt"

	"github.com/bolasblack/monosync/internal/manifest"
	"github.com/bolasblack/monosync/internal/util"
)

// Bookkeeping keys a template may carry; they never reach a package manifest.
const (
	templateMarkerKey  = "_template"
	templateVersionKey = "_version"
)

// LoadTemplate reads the template at path and strips its bookkeeping keys.
func LoadTemplate(env *util.Env, path string) (*manifest.Manifest, error) {
	f, err := manifest.ReadFile(env.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("could not load package template: %w", err)
	}
	tmpl := f.Manifest
	tmpl.Delete(templateMarkerKey)
	tmpl.Delete(templateVersionKey)
	return tmpl, nil
}
