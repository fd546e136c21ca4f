package config

import (
	"strings"
)

// Merge injects source into target and returns the result.
//
// For every key of source, nil values are skipped, so they never override or
// introduce keys. A dotted key such as "env.device" is expanded into nested
// mappings ({"env": {"device": v}}) before it is applied. Mapping values are
// merged recursively into an existing mapping under the same key; anything
// else overwrites the target value wholesale, lists included.
//
// Merge mutates target and returns it. If target is nil, source is returned
// as it is; if source is nil, target is. A mapping stored under a key the
// target lacks is deep-copied unchanged, so later merges never modify source.
func Merge(target, source map[string]any) map[string]any {
	if target == nil {
		return source
	}

	if source == nil {
		return target
	}

	for key, value := range source {
		if isNil(value) {
			continue
		}

		key, value = expand(key, value)

		incoming, isMapping := value.(map[string]any)
		existing, hasMapping := target[key].(map[string]any)

		switch {
		case isMapping && hasMapping && existing != nil:
			target[key] = Merge(existing, incoming)
		case isMapping:
			target[key] = deepCopy(incoming)
		default:
			target[key] = value
		}
	}

	return target
}

// expand turns a dotted key into its first segment and a chain of single-key
// mappings holding value, built from the innermost segment outwards.
func expand(key string, value any) (string, any) {
	if !strings.Contains(key, Separator) {
		return key, value
	}

	segments := strings.Split(key, Separator)
	for i := len(segments) - 1; i > 0; i-- {
		value = map[string]any{segments[i]: value}
	}

	return segments[0], value
}

// deepCopy copies nested mappings; leaves are shared.
func deepCopy(plain map[string]any) map[string]any {
	copied := make(map[string]any, len(plain))

	for key, value := range plain {
		if nested, ok := value.(map[string]any); ok && nested != nil {
			value = deepCopy(nested)
		}

		copied[key] = value
	}

	return copied
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	plain, ok := value.(map[string]any)

	return ok && plain == nil
}
