// Package resolver orders declared web resources by their dependencies.
//
// A [Resolver] walks a tree (or list) of resource nodes, flattens it to
// the included resources in depth-first declaration order, and produces
// a dependency-ordered list: every resource appears after all resources
// it transitively depends on, and resources with no dependency relation
// keep their relative declaration order as closely as the constraints
// allow. Conflicting names, missing dependencies and circular
// dependencies are detected and reported as distinct error types.
//
// Resolution is a pure in-memory read over an already constructed tree;
// it performs no I/O and never mutates the nodes. The resolver provides
// no synchronization: callers that mutate the tree (adding or removing
// members, toggling include predicates) while another goroutine
// resolves must serialize those accesses themselves.
//
//	r, err := resolver.New(group)
//	if err != nil { ... }
//	resources, err := r.Resolve()
//
// The [Renderer] and [GracefulRenderer] types consume the resolved
// order and concatenate each resource's HTML tag.
package resolver
