package merge

import "github.com/bolasblack/monosync/internal/manifest"

// Reorder returns m with its fields in canonical order. With a template, each
// CommonFields entry missing from m is copied from the template; values m already
// has are never replaced, except that when both sides carry a repository object the
// template's repository is used with m's own directory kept.
func Reorder(m *manifest.Manifest, template *manifest.Manifest) *manifest.Manifest {
	out := manifest.CloneObject(m.Object())

	if template != nil {
		for _, field := range CommonFields {
			if _, present := out.Get(field); present {
				continue
			}
			if v, ok := template.Get(field); ok {
				out.Set(field, manifest.CloneValue(v))
			}
		}

		own, ownOK := m.Repository()
		shared, sharedOK := template.Repository()
		if ownOK && sharedOK {
			out.Set(manifest.KeyRepository, mergeRepository(own, shared))
		}
	}

	return manifest.FromObject(Canonicalize(out))
}

// mergeRepository takes every field from shared and the directory from own,
// falling back to shared's directory when own has none.
func mergeRepository(own, shared *manifest.Object) *manifest.Object {
	out := manifest.CloneObject(shared)
	if dir, ok := own.Get(manifest.KeyDirectory); ok && dir != nil && dir != "" {
		out.Set(manifest.KeyDirectory, manifest.CloneValue(dir))
	}
	return out
}
