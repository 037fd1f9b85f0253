package manifest

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conestack/webresource/pkg/resource"
)

// YAML parses YAML resource manifests (*.yaml, *.yml).
type YAML struct{}

// Type returns "yaml".
func (p *YAML) Type() string { return "yaml" }

// Supports reports whether name has a .yaml or .yml extension.
func (p *YAML) Supports(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// Parse reads and builds the manifest at path.
func (p *YAML) Parse(path string) (*resource.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return Build(&doc)
}
