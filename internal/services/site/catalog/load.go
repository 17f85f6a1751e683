package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/projects.yaml
var defaultProjects []byte

type catalogFile struct {
	Projects []Project `yaml:"projects"`
}

// Load decodes a YAML project list and validates it.
func Load(r io.Reader) (*Catalog, error) {
	if r == nil {
		return nil, fmt.Errorf("catalog reader is required")
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return New(nil)
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range file.Projects {
		file.Projects[i].Status = Status(strings.ToLower(strings.TrimSpace(string(file.Projects[i].Status))))
	}
	return New(file.Projects)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("catalog path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Default returns the embedded project catalog.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultProjects))
}
