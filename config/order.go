package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// keyOrder records, per nesting level, the order in which keys were first
// seen across the documents of a Load.
type keyOrder struct {
	keys     []string
	children map[string]*keyOrder
}

func newKeyOrder() *keyOrder {
	return &keyOrder{children: make(map[string]*keyOrder)}
}

// add records key and returns the order of its nested keys.
func (o *keyOrder) add(key string) *keyOrder {
	child, ok := o.children[key]
	if !ok {
		child = newKeyOrder()
		o.children[key] = child
		o.keys = append(o.keys, key)
	}

	return child
}

// addPath records a dotted key literally and, segment by segment, in the
// nested form Merge expands it to. It returns the nested orders of the literal
// key and of the last expanded segment; the latter is nil for undotted keys.
func (o *keyOrder) addPath(key string) (*keyOrder, *keyOrder) {
	literal := o.add(key)
	if !strings.Contains(key, Separator) {
		return literal, nil
	}

	node := o
	for _, segment := range strings.Split(key, Separator) {
		node = node.add(segment)
	}

	return literal, node
}

func (o *keyOrder) observeSlice(ordered yaml.MapSlice) {
	for _, item := range ordered {
		literal, expanded := o.addPath(keyString(item.Key))

		nested, ok := item.Value.(yaml.MapSlice)
		if !ok {
			continue
		}

		literal.observeSlice(nested)

		if expanded != nil {
			expanded.observeSlice(nested)
		}
	}
}

// observeMap records the keys of an unordered mapping in sorted order.
func (o *keyOrder) observeMap(plain map[string]any) {
	for _, key := range sortedKeys(plain) {
		if isNil(plain[key]) {
			continue
		}

		literal, expanded := o.addPath(key)

		nested, ok := plain[key].(map[string]any)
		if !ok {
			continue
		}

		literal.observeMap(nested)

		if expanded != nil {
			expanded.observeMap(nested)
		}
	}
}

func (o *keyOrder) child(key string) *keyOrder {
	if o == nil {
		return nil
	}

	return o.children[key]
}

// arrange returns the keys of plain: recorded keys first, in recorded order,
// then the rest sorted.
func (o *keyOrder) arrange(plain map[string]any) []string {
	if o == nil {
		return sortedKeys(plain)
	}

	keys := make([]string, 0, len(plain))
	placed := make(map[string]struct{}, len(plain))

	for _, key := range o.keys {
		if _, ok := plain[key]; ok {
			keys = append(keys, key)
			placed[key] = struct{}{}
		}
	}

	for _, key := range sortedKeys(plain) {
		if _, ok := placed[key]; !ok {
			keys = append(keys, key)
		}
	}

	return keys
}

func sortedKeys(plain map[string]any) []string {
	keys := make([]string, 0, len(plain))
	for key := range plain {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func keyString(key any) string {
	if text, ok := key.(string); ok {
		return text
	}

	return fmt.Sprint(key)
}
