package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/conestack/webresource/pkg/resource"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// Marshal converts a flat resource list to JSON bytes.
// Nodes are sorted by ID for deterministic output.
func Marshal(resources []*resource.Resource) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeGraphTo(resources, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a resource list as JSON to an io.Writer.
func Write(resources []*resource.Resource, w io.Writer) error {
	return writeGraphTo(resources, w)
}

// WriteFile writes a resource list to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(resources []*resource.Resource, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeGraphTo(resources, f)
}

// Read decodes a JSON graph from an io.Reader.
func Read(r io.Reader) (Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, fmt.Errorf("decode: %w", err)
	}
	return g, nil
}

// ReadFile reads a JSON file and returns the decoded graph.
func ReadFile(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeGraphTo(resources []*resource.Resource, w io.Writer) error {
	out := FromResources(resources)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
