package manifest

import (
	"encoding/json"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Object is an insertion-ordered JSON object. Nested objects inside a manifest
// are always *Object so that key order survives a read/write round trip.
type Object = orderedmap.OrderedMap[string, any]

// NewObject returns an empty Object.
func NewObject() *Object {
	return orderedmap.New[string, any]()
}

// ObjectOf builds an Object from alternating key/value arguments.
// It panics on a non-string key or an odd argument count; intended for literals.
func ObjectOf(kv ...any) *Object {
	if len(kv)%2 != 0 {
		panic("manifest: ObjectOf needs key/value pairs")
	}
	obj := NewObject()
	for i := 0; i < len(kv); i += 2 {
		obj.Set(kv[i].(string), kv[i+1])
	}
	return obj
}

// Keys returns the keys of obj in order.
func Keys(obj *Object) []string {
	if obj == nil {
		return nil
	}
	keys := make([]string, 0, obj.Len())
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// CloneValue deep-copies a decoded JSON value. Scalars are returned as-is.
func CloneValue(v any) any {
	switch val := v.(type) {
	case *Object:
		return CloneObject(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return val
	}
}

// CloneObject deep-copies obj, preserving key order.
func CloneObject(obj *Object) *Object {
	if obj == nil {
		return nil
	}
	out := NewObject()
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(pair.Key, CloneValue(pair.Value))
	}
	return out
}

// Equal reports whether two decoded JSON values are equal.
// Object comparison ignores key order; array comparison does not.
func Equal(a, b any) bool {
	switch av := a.(type) {
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for pair := av.Oldest(); pair != nil; pair = pair.Next() {
			other, ok := bv.Get(pair.Key)
			if !ok || !Equal(pair.Value, other) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case json.Number:
		bv, ok := b.(json.Number)
		return ok && av.String() == bv.String()
	default:
		return reflect.DeepEqual(a, b)
	}
}
