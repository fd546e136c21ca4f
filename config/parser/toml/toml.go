package toml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Extension is the file extension used for TOML configuration files.
const Extension = "toml"

// ErrParse is returned when the input is not valid TOML.
var ErrParse = errors.New("malformed toml")

// Codec implements config.Codec for TOML documents.
type Codec struct{}

// NewCodec creates a new TOML codec instance.
func NewCodec() *Codec {
	return &Codec{}
}

// Extension returns the file extension handled by the codec, without the leading dot.
func (c *Codec) Extension() string {
	return Extension
}

// Parse decodes a TOML document into a nested mapping. Empty input yields a nil mapping.
func (c *Codec) Parse(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var tree map[string]any

	err := toml.Unmarshal(data, &tree)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return tree, nil
}

// Serialize encodes a nested mapping as a TOML document.
func (c *Codec) Serialize(tree map[string]any) ([]byte, error) {
	data, err := toml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}
