package resolver

import (
	"fmt"
	"strings"

	"github.com/conestack/webresource/pkg/resource"
)

// ConflictError is returned by [Resolver.Resolve] when the flattened
// resource list contains duplicate names. It is detected before any
// ordering work.
type ConflictError struct {
	// Names holds the duplicated resource names in sorted order.
	Names []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting resource names: %v", e.Names)
}

// MissingDependencyError is returned by [Resolver.Resolve] when a
// resource names a dependency that is absent from the flattened name
// set.
type MissingDependencyError struct {
	// Resource is the resource declaring the missing dependency.
	Resource *resource.Resource
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("resource defines missing dependency: %s", e.Resource)
}

// CircularDependencyError is returned by [Resolver.Resolve] when one or
// more resources could not be placed after exhausting all resolution
// passes.
type CircularDependencyError struct {
	// Resources holds the unplaceable resources in declaration order.
	Resources []*resource.Resource
}

func (e *CircularDependencyError) Error() string {
	names := make([]string, len(e.Resources))
	for i, r := range e.Resources {
		names[i] = r.Name()
	}
	return fmt.Sprintf("resources define circular dependencies: [%s]", strings.Join(names, " "))
}
