package merge

import (
	"github.com/bolasblack/monosync/internal/config"
	"github.com/bolasblack/monosync/internal/manifest"
)

// Generate builds a package manifest from the shared template and one package's
// configuration. Name and version always come from the caller; the config's
// directory is recorded under repository.directory, never as a top-level field.
func Generate(name string, template *manifest.Manifest, cfg config.PackageConfig, version string) *manifest.Manifest {
	base := manifest.NewObject()
	if template != nil {
		base = manifest.CloneObject(template.Object())
	}
	base.Set(manifest.KeyName, name)
	base.Set(manifest.KeyVersion, version)

	merged := DeepMerge(base, cfg.Fields)
	merged.Set(manifest.KeyName, name)
	merged.Set(manifest.KeyVersion, version)

	if cfg.Directory != "" {
		repo, _ := merged.Get(manifest.KeyRepository)
		merged.Set(manifest.KeyRepository, withDirectory(repo, cfg.Directory))
	}

	return manifest.FromObject(Canonicalize(merged))
}

// withDirectory returns repo with its directory set. Other repository fields are kept;
// string shorthand is expanded and a missing block becomes a minimal git one.
func withDirectory(repo any, directory string) *manifest.Object {
	switch r := repo.(type) {
	case *manifest.Object:
		if r != nil {
			out := manifest.CloneObject(r)
			out.Set(manifest.KeyDirectory, directory)
			return out
		}
	case string:
		if r != "" {
			return manifest.ObjectOf("type", "git", "url", r, manifest.KeyDirectory, directory)
		}
	}
	return manifest.ObjectOf("type", "git", manifest.KeyDirectory, directory)
}
