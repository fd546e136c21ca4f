package config

import (
	"errors"

	"github.com/goccy/go-yaml"
)

// ErrConfigFileNotFound is returned when the default file or an explicitly named override file is absent.
var ErrConfigFileNotFound = errors.New("config file not found")

// ErrNoConfigSpecified is returned when neither a default filename nor an override name is available.
var ErrNoConfigSpecified = errors.New("neither default nor named config specified")

// ErrKeyNotFound is returned when a dotted path traverses a missing or non-mapping node.
var ErrKeyNotFound = errors.New("key not found")

// ErrEmptyPath is returned when a directory path is set to an empty string.
var ErrEmptyPath = errors.New("directory path must not be empty")

// Parser turns raw configuration text into a nested mapping.
// A nil mapping with a nil error means the document was empty.
type Parser interface {
	Parse(data []byte) (map[string]any, error)
}

// Serializer turns a nested mapping into configuration text.
type Serializer interface {
	Serialize(tree map[string]any) ([]byte, error)
}

// OrderedParser is implemented by codecs that report the document order of mapping keys.
type OrderedParser interface {
	ParseOrdered(data []byte) (yaml.MapSlice, error)
}

// OrderedSerializer is implemented by codecs that can write keys in a given order.
type OrderedSerializer interface {
	SerializeOrdered(tree yaml.MapSlice) ([]byte, error)
}

// Codec is a configuration file format. Extension is the file extension
// without the leading dot, e.g. "yaml".
type Codec interface {
	Parser
	Serializer
	Extension() string
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}
