package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the manifest at path, applies defaults and environment
// overrides, and validates the result.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %q: %w", path, err)
	}

	if val := os.Getenv(EnvOutput); val != "" {
		m.Output = val
	}
	if m.Output != "" && !filepath.IsAbs(m.Output) {
		m.Output = filepath.Join(filepath.Dir(path), m.Output)
	}

	if err := Validate(m); err != nil {
		return nil, fmt.Errorf("manifest validation failed: %w", err)
	}
	return m, nil
}

// Parse decodes a manifest and applies defaults. Unknown fields are
// rejected; an empty document decodes to an empty manifest. Parse does not
// validate.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	ApplyDefaults(&m)
	return &m, nil
}
