package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed portfolio.yaml
var defaultYAML []byte

var defaultDocument = mustLoadDefault()

// Default returns the embedded portfolio document the binary ships with.
func Default() *Document {
	return defaultDocument
}

// Load reads a document from path, choosing the parser by file extension.
func Load(path string) (*Document, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAMLFile(path)
	case ".html", ".htm":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open content file: %w", err)
		}
		defer f.Close()
		doc, err := LoadHTML(f)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("unsupported content extension %q (want .yaml, .yml, .html or .htm)", ext)
	}
}

func mustLoadDefault() *Document {
	doc, err := LoadYAML(bytes.NewReader(defaultYAML))
	if err != nil {
		panic(err)
	}
	return doc
}
