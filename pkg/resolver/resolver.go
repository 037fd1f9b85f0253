package resolver

import (
	"slices"
	"sort"
	"time"

	"github.com/conestack/webresource/pkg/observability"
	"github.com/conestack/webresource/pkg/resource"
)

// Resolver flattens a tree of resource nodes and orders the contained
// resources by their declared dependencies.
type Resolver struct {
	members []resource.Node
}

// New creates a resolver over the given root members. Members may be
// resources or groups in any mix; nested groups are walked recursively.
// Returns resource.ErrInvalidMember when a member is nil.
func New(members ...resource.Node) (*Resolver, error) {
	for _, m := range members {
		if m == nil {
			return nil, resource.ErrInvalidMember
		}
	}
	return &Resolver{members: members}, nil
}

// Members returns the resolver's root members.
func (r *Resolver) Members() []resource.Node { return r.members }

// Flat returns the included resources of the member tree as a flat list
// in depth-first pre-order. A node whose include flag evaluates false is
// pruned along with its entire subtree. The resulting order is the
// declaration-order baseline that Resolve preserves for resources with
// no dependency relation.
func (r *Resolver) Flat() []*resource.Resource {
	return flatten(r.members)
}

func flatten(members []resource.Node) []*resource.Resource {
	var resources []*resource.Resource
	for _, member := range members {
		if !member.Included() {
			continue
		}
		switch m := member.(type) {
		case *resource.Group:
			resources = append(resources, flatten(m.Members())...)
		case *resource.Resource:
			resources = append(resources, m)
		}
	}
	return resources
}

// Resolve returns all resources from the member tree as a flat list
// ordered by dependencies. Every resource is placed after all resources
// it transitively depends on; independent resources keep their relative
// declaration order as closely as the constraints allow. The same
// objects are returned on every call for an unmodified tree; resolution
// never mutates the nodes.
//
// Errors: *ConflictError when resource names repeat in the flattened
// list, *MissingDependencyError when a dependency name is absent from
// the name set, *CircularDependencyError when resources remain
// unplaceable.
func (r *Resolver) Resolve() ([]*resource.Resource, error) {
	start := time.Now()
	resolved, err := r.resolve()
	observability.Resolve().OnResolveComplete(len(resolved), time.Since(start), err)
	return resolved, err
}

func (r *Resolver) resolve() ([]*resource.Resource, error) {
	resources := r.Flat()

	counts := make(map[string]int, len(resources))
	for _, res := range resources {
		counts[res.Name()]++
	}
	if len(counts) != len(resources) {
		var conflicting []string
		for name, count := range counts {
			if count > 1 {
				conflicting = append(conflicting, name)
			}
		}
		sort.Strings(conflicting)
		return nil, &ConflictError{Names: conflicting}
	}

	// First pass: dependency-free resources keep their declaration
	// order; the rest become the pending worklist after their
	// dependency names are checked against the full name set.
	var resolved []*resource.Resource
	var pending []*resource.Resource
	placed := make(map[string]*resource.Resource, len(resources))
	for _, res := range resources {
		if len(res.Depends()) == 0 {
			placed[res.Name()] = res
			resolved = append(resolved, res)
			continue
		}
		for _, dep := range res.Depends() {
			if counts[dep] == 0 {
				return nil, &MissingDependencyError{Resource: res}
			}
		}
		pending = append(pending, res)
	}

	// Iterative passes: place the first pending resource whose
	// dependencies are all resolved, inserting it directly after its
	// latest-placed dependency (the hook index). This keeps a resource
	// adjacent to its dependencies instead of pushing it to the tail,
	// so independent resources retain declaration order. After each
	// placement the scan restarts from the first still-pending
	// resource. A pass with no placement means the remaining resources
	// depend on each other cyclically.
	for len(pending) > 0 {
		progress := false
		for i, res := range pending {
			hook, ok := hookIndex(res, resolved, placed)
			if !ok {
				continue
			}
			resolved = slices.Insert(resolved, hook+1, res)
			placed[res.Name()] = res
			pending = slices.Delete(pending, i, i+1)
			progress = true
			break
		}
		if !progress {
			return nil, &CircularDependencyError{Resources: pending}
		}
	}
	return resolved, nil
}

// hookIndex returns the maximum index among the already placed
// dependencies of res, or ok=false when a dependency is still pending.
// Indices are looked up by scanning the result list, keeping the
// ordering independent of map iteration order.
func hookIndex(res *resource.Resource, resolved []*resource.Resource, placed map[string]*resource.Resource) (int, bool) {
	hook := 0
	for _, name := range res.Depends() {
		dep, ok := placed[name]
		if !ok {
			return 0, false
		}
		if idx := slices.Index(resolved, dep); idx > hook {
			hook = idx
		}
	}
	return hook, true
}
