// Package manifest loads declarative resource manifests.
//
// A manifest file declares a tree of resource groups and resources in
// TOML or YAML. The document root is a group; nested groups and
// resources appear in one ordered members list, so declaration order in
// the file is the declaration order the resolver ties on.
//
//	name = "root"
//	path = "res"
//
//	[[members]]
//	kind = "script"
//	name = "app"
//	file = "app.js"
//	depends = "jquery"
//
// The depends field accepts a single name or a list of names.
package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/conestack/webresource/pkg/resource"
)

// Parser reads a resource tree from a manifest file.
type Parser interface {
	// Parse reads the manifest at path and returns the declared group.
	Parse(path string) (*resource.Group, error)
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Type returns the manifest type identifier (e.g., "toml").
	Type() string
}

// Detect finds a parser that supports the given file path. Returns an
// error if no parser matches.
func Detect(path string, parsers ...Parser) (Parser, error) {
	name := filepath.Base(path)
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unsupported manifest: %s", name)
}

// Load parses the manifest at path using the built-in parsers (TOML and
// YAML, selected by file extension).
func Load(path string) (*resource.Group, error) {
	p, err := Detect(path, &TOML{}, &YAML{})
	if err != nil {
		return nil, err
	}
	return p.Parse(path)
}

// Node kinds accepted in manifest documents.
const (
	KindGroup  = "group"
	KindScript = "script"
	KindLink   = "link"
	KindStyle  = "style"
)

// Document is the schema shared by all manifest codecs. The root
// document is a group node; Kind may be omitted there.
type Document struct {
	Kind      string  `toml:"kind" yaml:"kind"`
	Name      string  `toml:"name" yaml:"name"`
	Path      string  `toml:"path" yaml:"path"`
	Directory string  `toml:"directory" yaml:"directory"`
	Include   *bool   `toml:"include" yaml:"include"`
	Depends   Depends `toml:"depends" yaml:"depends"`

	File           string            `toml:"file" yaml:"file"`
	Compressed     string            `toml:"compressed" yaml:"compressed"`
	URL            string            `toml:"url" yaml:"url"`
	Unique         bool              `toml:"unique" yaml:"unique"`
	Crossorigin    string            `toml:"crossorigin" yaml:"crossorigin"`
	Referrerpolicy string            `toml:"referrerpolicy" yaml:"referrerpolicy"`
	Type           string            `toml:"type" yaml:"type"`
	Attrs          map[string]string `toml:"attrs" yaml:"attrs"`

	Async         string `toml:"async" yaml:"async"`
	Defer         string `toml:"defer" yaml:"defer"`
	NoModule      string `toml:"nomodule" yaml:"nomodule"`
	Integrity     string `toml:"integrity" yaml:"integrity"`
	IntegrityAuto bool   `toml:"integrity_auto" yaml:"integrity_auto"`

	Hreflang string `toml:"hreflang" yaml:"hreflang"`
	Media    string `toml:"media" yaml:"media"`
	Rel      string `toml:"rel" yaml:"rel"`
	Sizes    string `toml:"sizes" yaml:"sizes"`
	Title    string `toml:"title" yaml:"title"`

	Members []Document `toml:"members" yaml:"members"`
}

// Build converts a parsed document into a resource group tree.
func Build(doc *Document) (*resource.Group, error) {
	if doc.Kind != "" && doc.Kind != KindGroup {
		return nil, fmt.Errorf("manifest root must be a group, got kind %q", doc.Kind)
	}
	return buildGroup(doc, nil)
}

func buildGroup(doc *Document, parent *resource.Group) (*resource.Group, error) {
	g := resource.NewGroup(resource.GroupOptions{
		Name:      doc.Name,
		Directory: doc.Directory,
		Path:      doc.Path,
		Include:   includeFlag(doc.Include),
		Group:     parent,
	})
	for i := range doc.Members {
		if err := buildNode(&doc.Members[i], g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func buildNode(doc *Document, parent *resource.Group) error {
	switch doc.Kind {
	case KindGroup:
		_, err := buildGroup(doc, parent)
		return err
	case KindScript, KindLink, KindStyle:
		opts := resource.Options{
			Name:           doc.Name,
			Depends:        doc.Depends,
			Directory:      doc.Directory,
			Path:           doc.Path,
			File:           doc.File,
			Compressed:     doc.Compressed,
			Include:        includeFlag(doc.Include),
			Unique:         doc.Unique,
			Group:          parent,
			URL:            doc.URL,
			Crossorigin:    doc.Crossorigin,
			Referrerpolicy: doc.Referrerpolicy,
			Type:           doc.Type,
			Attrs:          doc.Attrs,
			Async:          doc.Async,
			Defer:          doc.Defer,
			NoModule:       doc.NoModule,
			Integrity:      doc.Integrity,
			IntegrityAuto:  doc.IntegrityAuto,
			Hreflang:       doc.Hreflang,
			Media:          doc.Media,
			Rel:            doc.Rel,
			Sizes:          doc.Sizes,
			Title:          doc.Title,
		}
		var err error
		switch doc.Kind {
		case KindScript:
			_, err = resource.NewScript(opts)
		case KindLink:
			_, err = resource.NewLink(opts)
		case KindStyle:
			_, err = resource.NewStyle(opts)
		}
		if err != nil {
			return fmt.Errorf("resource %q: %w", doc.Name, err)
		}
		return nil
	case "":
		return fmt.Errorf("member %q: missing kind", doc.Name)
	default:
		return fmt.Errorf("member %q: unknown kind %q", doc.Name, doc.Kind)
	}
}

func includeFlag(v *bool) resource.Include {
	if v == nil {
		return nil
	}
	return resource.IncludeValue(*v)
}
