// Package yaml provides a YAML codec for the config package.
//
// This package uses github.com/goccy/go-yaml to turn configuration files into
// nested map[string]any values and back. Mappings decode to map[string]any,
// sequences to []any, and scalars to their natural Go types (positive integers
// decode as uint64, negative ones as int64, floats as float64).
//
// Usage:
//
//	codec := yaml.NewCodec()
//	tree, err := codec.Parse(data)
//	out, err := codec.Serialize(tree)
//
// Error Handling:
//   - Malformed input wraps ErrParse
//   - A document whose root is a sequence or scalar wraps ErrNotMapping
//   - An empty document is not an error and yields a nil mapping
package yaml
