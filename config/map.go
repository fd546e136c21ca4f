package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
)

// Separator splits a dotted path into its segments.
const Separator = "."

// Map is a hierarchical configuration. Every value is either a leaf (scalar,
// list, or any other non-mapping value) or a nested *Map; plain
// map[string]any values are wrapped when they are inserted.
//
// Keys passed to Get and Set are dotted paths: "env.device" addresses the key
// "device" inside the nested map stored under "env".
type Map struct {
	keys    []string
	entries map[string]any
}

// New wraps a plain nested mapping. Nested map[string]any values are wrapped
// recursively, *Map values are stored as they are. A nil mapping yields an
// empty Map. Keys are inserted in sorted order.
func New(plain map[string]any) *Map {
	return newOrdered(plain, nil)
}

// newOrdered is like New but inserts keys in the order recorded by order,
// falling back to sorted order for keys it has not seen.
func newOrdered(plain map[string]any, order *keyOrder) *Map {
	m := &Map{entries: make(map[string]any, len(plain))}

	for _, key := range order.arrange(plain) {
		value := plain[key]

		if nested, ok := value.(map[string]any); ok {
			value = newOrdered(nested, order.child(key))
		}

		m.put(key, value)
	}

	return m
}

func wrap(value any) any {
	if plain, ok := value.(map[string]any); ok {
		return New(plain)
	}

	return value
}

func (m *Map) put(key string, value any) {
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}

	m.entries[key] = wrap(value)
}

// Get returns the value at the dotted path.
// Nested mappings are returned as *Map.
func (m *Map) Get(path string) (any, error) {
	segments := strings.Split(path, Separator)

	var node any = m

	for i, segment := range segments {
		current, ok := node.(*Map)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a mapping", ErrKeyNotFound, strings.Join(segments[:i], Separator))
		}

		node, ok = current.entries[segment]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, strings.Join(segments[:i+1], Separator))
		}
	}

	return node, nil
}

// Has reports whether the dotted path resolves to a value.
func (m *Map) Has(path string) bool {
	_, err := m.Get(path)

	return err == nil
}

// Set assigns value at the dotted path. Every segment but the last must
// already resolve to a mapping: missing intermediate nodes are not created
// and yield ErrKeyNotFound. Plain map[string]any values are wrapped.
func (m *Map) Set(path string, value any) error {
	node := m

	parent, last, nested := splitLast(path)
	if nested {
		resolved, err := m.Get(parent)
		if err != nil {
			return err
		}

		child, ok := resolved.(*Map)
		if !ok {
			return fmt.Errorf("%w: %q is not a mapping", ErrKeyNotFound, parent)
		}

		node = child
	}

	node.put(last, value)

	return nil
}

// splitLast splits path into the parent path and its final segment.
func splitLast(path string) (string, string, bool) {
	idx := strings.LastIndex(path, Separator)
	if idx < 0 {
		return "", path, false
	}

	return path[:idx], path[idx+len(Separator):], true
}

// Keys returns the top-level keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)

	return keys
}

// Len returns the number of top-level keys.
func (m *Map) Len() int {
	return len(m.keys)
}

// ToMap converts the Map back into a plain nested mapping.
// Leaves are returned as they are, without copying.
func (m *Map) ToMap() map[string]any {
	plain := make(map[string]any, len(m.entries))

	for key, value := range m.entries {
		if nested, ok := value.(*Map); ok {
			plain[key] = nested.ToMap()

			continue
		}

		plain[key] = value
	}

	return plain
}

// MapSlice converts the Map into an ordered mapping that follows Keys at every level.
func (m *Map) MapSlice() yaml.MapSlice {
	ordered := make(yaml.MapSlice, 0, len(m.keys))

	for _, key := range m.keys {
		value := m.entries[key]
		if nested, ok := value.(*Map); ok {
			value = nested.MapSlice()
		}

		ordered = append(ordered, yaml.MapItem{Key: key, Value: value})
	}

	return ordered
}

// Encode serializes the Map. Codecs implementing OrderedSerializer keep the key order of Keys.
func (m *Map) Encode(serializer Serializer) ([]byte, error) {
	if ordered, ok := serializer.(OrderedSerializer); ok {
		return ordered.SerializeOrdered(m.MapSlice())
	}

	return serializer.Serialize(m.ToMap())
}

// String returns the representation of the plain mapping.
func (m *Map) String() string {
	return fmt.Sprint(m.ToMap())
}

// Equal reports whether both maps hold the same plain mapping.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m == other
	}

	return reflect.DeepEqual(m.ToMap(), other.ToMap())
}

// Decode copies the subtree at the dotted path into target, matching struct
// fields by their yaml tag. An empty path decodes the whole map.
func (m *Map) Decode(path string, target any) error {
	var source any = m

	if path != "" {
		value, err := m.Get(path)
		if err != nil {
			return err
		}

		source = value
	}

	if nested, ok := source.(*Map); ok {
		source = nested.ToMap()
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "yaml",
		Result:  target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	err = decoder.Decode(source)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", path, err)
	}

	return nil
}
