package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolasblack/monosync/internal/manifest"
)

func TestReorder_CanonicalOrderWithoutTemplate(t *testing.T) {
	m := parseManifest(t, `{
  "scripts": {"build": "tsc"},
  "customB": true,
  "name": "pkg",
  "customA": 1,
  "version": "1.0.0",
  "type": "module"
}`)

	got := Reorder(m, nil)

	assert.Equal(t, []string{"name", "version", "type", "scripts", "customB", "customA"}, got.Keys())
	assert.Equal(t, []string{"scripts", "customB", "name", "customA", "version", "type"}, m.Keys(), "input is not modified")
}

func TestReorder_FillsOnlyMissingCommonFields(t *testing.T) {
	m := parseManifest(t, `{"name": "pkg", "license": "ISC", "keywords": ["own"]}`)
	tmpl := parseManifest(t, `{
  "license": "MIT",
  "author": "Acme",
  "homepage": "https://acme.dev",
  "keywords": ["shared"],
  "description": "not a common field"
}`)

	got := Reorder(m, tmpl)

	assert.Equal(t, []string{"name", "license", "homepage", "author", "keywords"}, got.Keys())
	assert.Equal(t, "ISC", got.String("license"))
	assert.Equal(t, "Acme", got.String("author"))
	kw, _ := got.Get("keywords")
	assert.Equal(t, []any{"own"}, kw)
}

func TestReorder_Repository(t *testing.T) {
	tmpl := parseManifest(t, `{"repository": {"type": "git", "url": "git+https://github.com/acme/acme.git", "directory": "shared"}}`)

	tests := []struct {
		name     string
		manifest string
		want     string
	}{
		{
			name:     "own directory is kept, other fields from template",
			manifest: `{"repository": {"type": "svn", "url": "old", "directory": "packages/a"}}`,
			want:     `{"type": "git", "url": "git+https://github.com/acme/acme.git", "directory": "packages/a"}`,
		},
		{
			name:     "template directory when manifest has none",
			manifest: `{"repository": {"url": "old"}}`,
			want:     `{"type": "git", "url": "git+https://github.com/acme/acme.git", "directory": "shared"}`,
		},
		{
			name:     "missing repository copied from template",
			manifest: `{}`,
			want:     `{"type": "git", "url": "git+https://github.com/acme/acme.git", "directory": "shared"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reorder(parseManifest(t, tt.manifest), tmpl)

			repo, ok := got.Repository()
			require.True(t, ok)
			assert.Equal(t, encode(t, parseObject(t, tt.want)), encode(t, repo))
		})
	}
}

func TestReorder_StringRepositoryIsKept(t *testing.T) {
	m := parseManifest(t, `{"repository": "github:me/pkg"}`)
	tmpl := parseManifest(t, `{"repository": {"type": "git", "url": "u"}}`)

	got := Reorder(m, tmpl)

	repo, _ := got.Get(manifest.KeyRepository)
	assert.Equal(t, "github:me/pkg", repo)
}

func TestReorder_Properties(t *testing.T) {
	tmpl := parseManifest(t, `{
  "license": "MIT",
  "author": {"name": "Acme"},
  "engines": {"node": ">=18"},
  "bugs": {"url": "https://acme.dev/issues"},
  "homepage": "https://acme.dev"
}`)
	manifests := []string{
		`{}`,
		`{"name": "a", "version": "1.0.0"}`,
		`{"zz": 1, "license": "ISC", "name": "b", "aa": [1, 2]}`,
		`{"engines": {"bun": "1"}, "author": "Me", "exports": {".": "./x.js"}, "main": "x.js"}`,
		`{"peerDependenciesMeta": {}, "peerDependencies": {}, "devDependencies": {}, "dependencies": {}, "files": []}`,
	}

	for _, input := range manifests {
		t.Run(input, func(t *testing.T) {
			m := parseManifest(t, input)
			first := Reorder(m, tmpl)

			// Field preservation and template non-override.
			for _, key := range m.Keys() {
				got, ok := first.Get(key)
				require.True(t, ok, "key %q dropped", key)
				want, _ := m.Get(key)
				assert.True(t, manifest.Equal(want, got), "key %q overridden", key)
			}

			// Canonical keys appear in canonical order, then unknown keys in input order.
			var canonical, unknown []string
			for _, key := range first.Keys() {
				if IsCanonical(key) {
					require.Empty(t, unknown, "canonical key %q after unknown keys", key)
					canonical = append(canonical, key)
				} else {
					unknown = append(unknown, key)
				}
			}
			assert.True(t, isCanonicalSequence(canonical), "got %v", canonical)

			// Idempotence.
			second := Reorder(first, tmpl)
			assert.Equal(t, string(mustBytes(t, first)), string(mustBytes(t, second)))
		})
	}
}

func isCanonicalSequence(keys []string) bool {
	last := -1
	for _, key := range keys {
		idx := canonicalIndex[key]
		if idx <= last {
			return false
		}
		last = idx
	}
	return true
}
