package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Codec defines how a whole collection is read from and written to a file format.
type Codec interface {
	// Decode parses data into v, which must be a pointer to a slice.
	Decode(data []byte, v any) error
	// Encode renders v as pretty-printed bytes.
	Encode(v any) ([]byte, error)
	// Name identifies the format in logs and introspection.
	Name() string
}

// DefaultCodecs returns the standard set of codecs keyed by file extension.
func DefaultCodecs() map[string]Codec {
	return map[string]Codec{
		".json": JSONCodec{},
		".yaml": YAMLCodec{},
		".yml":  YAMLCodec{},
	}
}

// CodecFor picks the codec matching the extension of path, falling back to JSON.
func CodecFor(path string) Codec {
	if c, ok := DefaultCodecs()[strings.ToLower(filepath.Ext(path))]; ok {
		return c
	}
	return JSONCodec{}
}

// --- JSON Codec ---

// JSONCodec reads and writes JSON arrays indented with two spaces.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func (JSONCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// --- YAML Codec ---

// YAMLCodec reads and writes YAML sequences.
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Decode(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid yaml: %w", err)
	}
	return nil
}

func (YAMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
