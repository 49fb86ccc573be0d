package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolasblack/monosync/internal/config"
	"github.com/bolasblack/monosync/internal/manifest"
)

func parseManifest(t *testing.T, s string) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Parse([]byte(s))
	require.NoError(t, err)
	return m
}

func packageConfig(t *testing.T, name, body string) config.PackageConfig {
	t.Helper()
	configs, err := config.ParseConfigs([]byte(`{"packages": {"` + name + `": ` + body + `}}`))
	require.NoError(t, err)
	require.Len(t, configs.Packages, 1)
	return configs.Packages[0]
}

const sharedTemplate = `{
  "license": "MIT",
  "repository": {"type": "git", "url": "git+https://github.com/acme/acme.git"},
  "author": "Acme",
  "engines": {"node": ">=18"},
  "keywords": ["acme"],
  "name": "template-name",
  "version": "9.9.9"
}`

func TestGenerate(t *testing.T) {
	tmpl := parseManifest(t, sharedTemplate)
	cfg := packageConfig(t, "@acme/core", `{
  "directory": "packages/core",
  "description": "Core",
  "keywords": ["core", "acme"],
  "version": "0.0.1",
  "main": "dist/index.cjs",
  "publishConfig": {"access": "public"}
}`)

	got := Generate("@acme/core", tmpl, cfg, "2.1.0")

	assert.Equal(t, `{
  "name": "@acme/core",
  "version": "2.1.0",
  "license": "MIT",
  "description": "Core",
  "main": "dist/index.cjs",
  "repository": {
    "type": "git",
    "url": "git+https://github.com/acme/acme.git",
    "directory": "packages/core"
  },
  "author": "Acme",
  "keywords": [
    "acme",
    "core"
  ],
  "engines": {
    "node": ">=18"
  },
  "publishConfig": {
    "access": "public"
  }
}
`, string(mustBytes(t, got)))
	assert.False(t, got.Has(manifest.KeyDirectory))
}

func TestGenerate_DoesNotMutateTemplate(t *testing.T) {
	tmpl := parseManifest(t, sharedTemplate)
	before := string(mustBytes(t, tmpl))

	_ = Generate("a", tmpl, packageConfig(t, "a", `{"directory": "packages/a", "keywords": ["x"]}`), "1.0.0")

	assert.Equal(t, before, string(mustBytes(t, tmpl)))
}

func TestGenerate_RepositoryShapes(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "no repository",
			template: `{}`,
			want:     `{"type": "git", "directory": "packages/a"}`,
		},
		{
			name:     "string shorthand",
			template: `{"repository": "github:acme/acme"}`,
			want:     `{"type": "git", "url": "github:acme/acme", "directory": "packages/a"}`,
		},
		{
			name:     "existing directory is replaced",
			template: `{"repository": {"type": "git", "url": "u", "directory": "old"}}`,
			want:     `{"type": "git", "url": "u", "directory": "packages/a"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate("a", parseManifest(t, tt.template), packageConfig(t, "a", `{"directory": "packages/a"}`), "1.0.0")

			repo, ok := got.Repository()
			require.True(t, ok)
			assert.Equal(t, encode(t, parseObject(t, tt.want)), encode(t, repo))
		})
	}
}

func TestGenerate_WithoutDirectoryOrTemplate(t *testing.T) {
	got := Generate("a", nil, packageConfig(t, "a", `{"description": "d"}`), "1.0.0")

	assert.Equal(t, []string{"name", "version", "description"}, got.Keys())
}

func TestGenerate_Idempotent(t *testing.T) {
	tmpl := parseManifest(t, sharedTemplate)
	cfg := packageConfig(t, "a", `{"directory": "packages/a", "keywords": ["x"], "scripts": {"build": "tsc"}}`)

	first := mustBytes(t, Generate("a", tmpl, cfg, "1.0.0"))
	second := mustBytes(t, Generate("a", tmpl, cfg, "1.0.0"))

	assert.Equal(t, string(first), string(second))
}

func mustBytes(t *testing.T, m *manifest.Manifest) []byte {
	t.Helper()
	data, err := m.Bytes()
	require.NoError(t, err)
	return data
}
