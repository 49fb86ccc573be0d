// Package merge implements the field-merging rules used to build and normalize
// package manifests: deep merge, template defaults and canonical field order.
package merge

import "github.com/bolasblack/monosync/internal/manifest"

// CanonicalOrder is the field order every written manifest follows.
// Keys not listed here are placed after these, in their original relative order.
var CanonicalOrder = []string{
	"name",
	"version",
	"private",
	"type",
	"license",
	"description",
	"main",
	"module",
	"types",
	"repository",
	"homepage",
	"bugs",
	"author",
	"contributors",
	"keywords",
	"funding",
	"engines",
	"exports",
	"files",
	"scripts",
	"dependencies",
	"devDependencies",
	"peerDependencies",
	"peerDependenciesMeta",
}

// CommonFields are the fields reorder mode may copy from a template when a
// manifest lacks them entirely.
var CommonFields = []string{
	"repository",
	"homepage",
	"bugs",
	"author",
	"engines",
	"license",
}

var canonicalIndex = func() map[string]int {
	idx := make(map[string]int, len(CanonicalOrder))
	for i, key := range CanonicalOrder {
		idx[key] = i
	}
	return idx
}()

// IsCanonical reports whether key has a fixed position in CanonicalOrder.
func IsCanonical(key string) bool {
	_, ok := canonicalIndex[key]
	return ok
}

// Canonicalize returns a new object with obj's entries in canonical order.
// Values are shared with obj, not copied.
func Canonicalize(obj *manifest.Object) *manifest.Object {
	out := manifest.NewObject()
	for _, key := range CanonicalOrder {
		if v, ok := obj.Get(key); ok {
			out.Set(key, v)
		}
	}
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		if !IsCanonical(pair.Key) {
			out.Set(pair.Key, pair.Value)
		}
	}
	return out
}
