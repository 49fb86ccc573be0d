package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bolasblack/monosync/internal/manifest"
)

func parseObject(t *testing.T, s string) *manifest.Object {
	t.Helper()
	obj, err := manifest.Decode([]byte(s))
	require.NoError(t, err)
	return obj
}

func encode(t *testing.T, obj *manifest.Object) string {
	t.Helper()
	data, err := manifest.Encode(obj)
	require.NoError(t, err)
	return string(data)
}

func TestDeepMerge(t *testing.T) {
	tests := []struct {
		name   string
		target string
		source string
		want   string
	}{
		{
			name:   "arrays concatenate without duplicates",
			target: `{"tags": ["a", "b"]}`,
			source: `{"tags": ["b", "c"]}`,
			want:   `{"tags": ["a", "b", "c"]}`,
		},
		{
			name:   "array missing from target",
			target: `{}`,
			source: `{"files": ["dist", "dist"]}`,
			want:   `{"files": ["dist"]}`,
		},
		{
			name:   "array of objects dedupes by value",
			target: `{"contributors": [{"name": "a", "email": "x"}]}`,
			source: `{"contributors": [{"email": "x", "name": "a"}, {"name": "b"}]}`,
			want:   `{"contributors": [{"name": "a", "email": "x"}, {"name": "b"}]}`,
		},
		{
			name:   "objects merge recursively",
			target: `{"engines": {"node": ">=18", "pnpm": ">=8"}}`,
			source: `{"engines": {"node": ">=20", "bun": ">=1"}}`,
			want:   `{"engines": {"node": ">=20", "pnpm": ">=8", "bun": ">=1"}}`,
		},
		{
			name:   "source scalar wins",
			target: `{"license": "MIT", "private": false}`,
			source: `{"license": "ISC", "private": true}`,
			want:   `{"license": "ISC", "private": true}`,
		},
		{
			name:   "object replaces scalar",
			target: `{"repository": "github:acme/acme"}`,
			source: `{"repository": {"type": "git"}}`,
			want:   `{"repository": {"type": "git"}}`,
		},
		{
			name:   "keys absent from source are untouched",
			target: `{"a": 1, "b": 2}`,
			source: `{"c": 3}`,
			want:   `{"a": 1, "b": 2, "c": 3}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeepMerge(parseObject(t, tt.target), parseObject(t, tt.source))
			assert.Equal(t, encode(t, parseObject(t, tt.want)), encode(t, got))
		})
	}
}

func TestDeepMerge_DoesNotMutateInputs(t *testing.T) {
	target := parseObject(t, `{"engines": {"node": ">=18"}, "tags": ["a"]}`)
	source := parseObject(t, `{"engines": {"node": ">=20"}, "tags": ["b"]}`)
	targetBefore := encode(t, target)
	sourceBefore := encode(t, source)

	_ = DeepMerge(target, source)

	assert.Equal(t, targetBefore, encode(t, target))
	assert.Equal(t, sourceBefore, encode(t, source))
}

func TestDeepMerge_NilInputs(t *testing.T) {
	assert.Equal(t, 0, DeepMerge(nil, nil).Len())
	assert.Equal(t, []string{"a"}, manifest.Keys(DeepMerge(nil, manifest.ObjectOf("a", "1"))))
	assert.Equal(t, []string{"a"}, manifest.Keys(DeepMerge(manifest.ObjectOf("a", "1"), nil)))
}
