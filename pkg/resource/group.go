package resource

// GroupOptions configures a resource group.
type GroupOptions struct {
	// Name identifies the group. Group names are informational; only
	// resource names must be unique at resolve time.
	Name string
	// Directory is inherited by members that declare none themselves.
	Directory string
	// Path is inherited by members that declare none themselves.
	Path string
	// Include controls participation of the whole subtree. Nil means
	// included.
	Include Include
	// Group, when set, attaches the new group to the given parent group.
	Group *Group
}

// Group is an ordered container of Nodes (resources or nested groups).
// Member order is insertion order; it provides the declaration-order
// tie-break during dependency resolution. A group whose include flag
// evaluates false excludes its entire subtree from resolution,
// regardless of the members' own include flags.
type Group struct {
	base
	members []Node
}

// NewGroup creates a resource group.
func NewGroup(opts GroupOptions) *Group {
	g := &Group{}
	g.init(opts.Name, opts.Directory, opts.Path, opts.Include)
	if opts.Group != nil {
		// The parent only rejects nil members, so the error is
		// unreachable here.
		_ = opts.Group.Add(g)
	}
	return g
}

// Members returns the group's direct members in insertion order. The
// returned slice is the group's own; treat it as read-only.
func (g *Group) Members() []Node { return g.members }

// Add appends a member and sets its parent back-reference. Returns
// ErrInvalidMember for nil members.
func (g *Group) Add(n Node) error {
	if n == nil {
		return ErrInvalidMember
	}
	n.setParent(g)
	g.members = append(g.members, n)
	return nil
}

// Detach removes the group from its parent group, clearing the
// back-reference. Returns ErrNotMember when the group has no parent.
func (g *Group) Detach() error { return detach(g) }

func (g *Group) removeMember(n Node) {
	for i, member := range g.members {
		if member == n {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return
		}
	}
}

// Scripts returns all script resources contained in the group,
// descending into nested groups.
func (g *Group) Scripts() []*Resource { return g.filtered(KindScript) }

// Styles returns all stylesheet resources contained in the group,
// descending into nested groups.
func (g *Group) Styles() []*Resource { return g.filtered(KindStyle) }

// Links returns all generic link resources contained in the group,
// descending into nested groups.
func (g *Group) Links() []*Resource { return g.filtered(KindLink) }

func (g *Group) filtered(kind Kind) []*Resource {
	var resources []*Resource
	for _, member := range g.members {
		switch m := member.(type) {
		case *Group:
			resources = append(resources, m.filtered(kind)...)
		case *Resource:
			if m.kind == kind {
				resources = append(resources, m)
			}
		}
	}
	return resources
}

// Copy returns a deep copy of the group and its entire subtree. Parent
// and child links are rebuilt inside the copy; the copy root itself is
// detached and shares no mutable state with the original.
func (g *Group) Copy() *Group {
	c := &Group{base: g.copyBase()}
	for _, member := range g.members {
		var child Node
		switch m := member.(type) {
		case *Group:
			child = m.Copy()
		case *Resource:
			child = m.Copy()
		}
		child.setParent(c)
		c.members = append(c.members, child)
	}
	return c
}

func (g *Group) String() string {
	return "<group " + g.name + ">"
}
