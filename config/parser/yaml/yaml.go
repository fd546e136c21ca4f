package yaml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Extension is the file extension used for YAML configuration files.
const Extension = "yaml"

// ErrParse is returned when the input is not valid YAML.
var ErrParse = errors.New("malformed yaml")

// ErrNotMapping is returned when the top-level YAML document is not a mapping.
var ErrNotMapping = errors.New("yaml document is not a mapping")

// Codec implements config.Codec for YAML documents using goccy/go-yaml.
type Codec struct{}

// NewCodec creates a new YAML codec instance.
func NewCodec() *Codec {
	return &Codec{}
}

// Extension returns the file extension handled by the codec, without the leading dot.
func (c *Codec) Extension() string {
	return Extension
}

// Parse decodes a YAML document into a nested mapping.
// An empty document (or one that only holds null) yields a nil mapping and no error.
func (c *Codec) Parse(data []byte) (map[string]any, error) {
	ordered, err := c.ParseOrdered(data)
	if err != nil {
		return nil, err
	}

	return ToMap(ordered), nil
}

// ParseOrdered is like Parse but keeps the document order of mapping keys.
// Nested mappings, including those inside sequences, are yaml.MapSlice values.
func (c *Codec) ParseOrdered(data []byte) (yaml.MapSlice, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var document any

	err := yaml.UnmarshalWithOptions(data, &document, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	switch typed := document.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		if typed == nil {
			typed = yaml.MapSlice{}
		}

		return typed, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, document)
	}
}

// Serialize encodes a nested mapping as a YAML document with sorted keys.
func (c *Codec) Serialize(tree map[string]any) ([]byte, error) {
	data, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// SerializeOrdered encodes an ordered mapping as a YAML document, keeping its key order.
func (c *Codec) SerializeOrdered(tree yaml.MapSlice) ([]byte, error) {
	data, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// ToMap converts an ordered mapping into map[string]any, recursively,
// including mappings nested in sequences. Non-string keys are formatted with
// fmt.Sprint. A nil slice yields a nil map.
func ToMap(ordered yaml.MapSlice) map[string]any {
	if ordered == nil {
		return nil
	}

	plain := make(map[string]any, len(ordered))

	for _, item := range ordered {
		plain[keyString(item.Key)] = toPlainValue(item.Value)
	}

	return plain
}

func toPlainValue(value any) any {
	switch typed := value.(type) {
	case yaml.MapSlice:
		if typed == nil {
			return map[string]any{}
		}

		return ToMap(typed)
	case []any:
		converted := make([]any, len(typed))
		for i, element := range typed {
			converted[i] = toPlainValue(element)
		}

		return converted
	default:
		return value
	}
}

func keyString(key any) string {
	if text, ok := key.(string); ok {
		return text
	}

	return fmt.Sprint(key)
}

// ParseScalar decodes a single YAML value, such as the right-hand side of a
// "key=value" command-line assignment. Empty text decodes to nil.
func ParseScalar(text string) (any, error) {
	var value any

	err := yaml.Unmarshal([]byte(text), &value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrParse, text, err)
	}

	return value, nil
}
