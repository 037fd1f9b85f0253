package manifest

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/conestack/webresource/pkg/resource"
)

// TOML parses TOML resource manifests (*.toml).
type TOML struct{}

// Type returns "toml".
func (p *TOML) Type() string { return "toml" }

// Supports reports whether name has a .toml extension.
func (p *TOML) Supports(name string) bool { return strings.HasSuffix(name, ".toml") }

// Parse reads and builds the manifest at path.
func (p *TOML) Parse(path string) (*resource.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return Build(&doc)
}
