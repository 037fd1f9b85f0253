// Package pkg provides the core libraries for webresource.
//
// # Overview
//
// webresource manages declarative web resources (scripts, stylesheets,
// links) organized in hierarchical groups and renders them as HTML tags
// in dependency order. The pkg directory is organized by concern:
//
//  1. [resource] - The declaration model (resources, groups, inheritance)
//  2. [resolver] - Dependency ordering and tag rendering
//  3. [manifest] - TOML/YAML manifest loading
//  4. [graph] - JSON serialization of the dependency graph
//  5. [dot] - Graphviz DOT/SVG export
//  6. [cache] - Byte cache backends for the dev server
//
// # Architecture
//
// The typical data flow:
//
//	Manifest file or programmatic declarations
//	         ↓
//	    [resource] package (group tree with attribute inheritance)
//	         ↓
//	    [resolver] package (flatten + dependency sort)
//	         ↓
//	    HTML tags / DOT / SVG / JSON output
//
// # Quick Start
//
// Load a manifest and render the tags:
//
//	group, err := manifest.Load("site.toml")
//	if err != nil {
//	    return err
//	}
//	r, err := resolver.New(group)
//	if err != nil {
//	    return err
//	}
//	html, err := resolver.NewRenderer(r, "https://cdn.example.org").Render()
package pkg
