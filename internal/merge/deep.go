package merge

import "github.com/bolasblack/monosync/internal/manifest"

// DeepMerge merges source onto target and returns the result; neither input is modified.
//
//   - arrays: target's items followed by source's, duplicates removed (first occurrence wins)
//   - objects: merged recursively
//   - anything else: source wins
//
// Keys absent from source keep target's value and position.
func DeepMerge(target, source *manifest.Object) *manifest.Object {
	result := manifest.CloneObject(target)
	if result == nil {
		result = manifest.NewObject()
	}
	if source == nil {
		return result
	}

	for pair := source.Oldest(); pair != nil; pair = pair.Next() {
		existing, _ := result.Get(pair.Key)

		switch src := pair.Value.(type) {
		case []any:
			base, _ := existing.([]any)
			result.Set(pair.Key, dedupe(append(append([]any{}, base...), manifest.CloneValue(src).([]any)...)))
		case *manifest.Object:
			if src == nil {
				result.Set(pair.Key, nil)
				continue
			}
			base, _ := existing.(*manifest.Object)
			result.Set(pair.Key, DeepMerge(base, src))
		default:
			result.Set(pair.Key, src)
		}
	}
	return result
}

func dedupe(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		seen := false
		for _, kept := range out {
			if manifest.Equal(kept, item) {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, item)
		}
	}
	return out
}
