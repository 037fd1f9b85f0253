// Package resource provides the declarative data model for web resources.
//
// A web resource is a single renderable asset (a script, stylesheet or
// generic link) declared once with a unique name and an optional list of
// dependency names. Resources are organized in ordered, arbitrarily nested
// groups. Groups and resources share common attributes (inclusion flag,
// URL path, file directory) which are inherited lazily from the enclosing
// group when unset on the node itself.
//
// The package knows nothing about ordering: it only models declarations
// and renders individual HTML tags. Dependency ordering is performed by
// the resolver package, which consumes the [Node] tree declared here.
//
// # Declaring resources
//
//	scripts := resource.NewGroup(resource.GroupOptions{Name: "scripts"})
//	_, err := resource.NewScript(resource.Options{
//	    Name:    "app",
//	    Depends: []string{"jquery"},
//	    File:    "app.js",
//	    Group:   scripts,
//	})
//
// # Operation modes
//
// The process-wide [Config] settings select between development and
// production behavior. In production mode the compressed variant of a
// resource file is preferred and computed file hashes are memoized; in
// development mode the plain file is served and hashes are recomputed on
// every read.
package resource
