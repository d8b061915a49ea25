package shapes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by LoadFile for unrecognized extensions.
var ErrUnknownFormat = errors.New("shapes: unknown document format")

// DecodeYAML reads a YAML document. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML shape document: %w", err)
	}
	return &doc, nil
}

// DecodeTOML reads a TOML document. Unknown fields are rejected.
func DecodeTOML(r io.Reader) (*Document, error) {
	var doc Document
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing TOML shape document: %w", err)
	}
	return &doc, nil
}

// LoadFile reads a document, choosing the format by extension: .yaml or
// .yml for YAML, .toml for TOML.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading shape document: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(bytes.NewReader(data))
	case ".toml":
		return DecodeTOML(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// EncodeYAML writes d as YAML.
func (d *Document) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding YAML shape document: %w", err)
	}
	return enc.Close()
}

// EncodeTOML writes d as TOML.
func (d *Document) EncodeTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(d); err != nil {
		return fmt.Errorf("encoding TOML shape document: %w", err)
	}
	return nil
}
