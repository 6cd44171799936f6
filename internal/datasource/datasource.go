// Package datasource loads the YAML files holding person-specific CV content.
package datasource

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Extension is appended to datasource names.
const Extension = ".yml"

// Path returns the file path of the named datasource in dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+Extension)
}

// Load reads the named datasource from dir. The content is returned as
// decoded by yaml.v3: mappings with string keys become map[string]any,
// sequences []any.
func Load(dir, name string) (any, error) {
	path := Path(dir, name)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open datasource: %w", err)
	}
	defer f.Close()

	data, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse datasource %s: %w", path, err)
	}
	return data, nil
}

// Decode reads a single YAML document from r. An empty document yields an
// empty mapping.
func Decode(r io.Reader) (any, error) {
	var data any
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	if data == nil {
		return map[string]any{}, nil
	}
	return data, nil
}
