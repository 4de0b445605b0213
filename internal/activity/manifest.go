package activity

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest lists the activities that make up a quiz.
type Manifest struct {
	Title   string   `yaml:"title"`
	Sources []string `yaml:"sources"`

	dir string
}

// LoadManifest reads a YAML quiz manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Sources) == 0 {
		return nil, fmt.Errorf("manifest %s lists no sources", path)
	}

	m.dir = filepath.Dir(path)
	return &m, nil
}

// Resolve builds the manifest's sources. Relative file paths are taken
// relative to the manifest's own directory.
func (m *Manifest) Resolve(r Resolver) ([]Source, error) {
	r.BaseDir = m.dir
	return r.ResolveAll(m.Sources)
}
