package content

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML decodes and validates a document from YAML. Unknown fields are
// tolerated so content files can carry authoring notes.
func LoadYAML(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("document is empty")
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadYAMLFile loads a document from a YAML file on disk.
func LoadYAMLFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()

	doc, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, nil
}
