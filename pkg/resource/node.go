package resource

import "path/filepath"

// Include decides whether a node (and, for a group, its entire subtree)
// takes part in resolution. It is evaluated fresh on every read, so a
// predicate implementation may reflect dynamic external state such as a
// feature flag. A nil Include means the node is included.
type Include interface {
	Included() bool
}

// IncludeFunc adapts a nullary predicate to the [Include] interface.
type IncludeFunc func() bool

// Included evaluates the predicate.
func (f IncludeFunc) Included() bool { return f() }

type includeValue bool

func (v includeValue) Included() bool { return bool(v) }

// IncludeValue returns a constant include flag.
func IncludeValue(include bool) Include { return includeValue(include) }

// Node is the common declaration unit: either a *Resource or a *Group.
// The interface is sealed; no implementations exist outside this package.
type Node interface {
	// Name returns the node identifier. Resource names must be unique
	// within a resolution pass; this is checked at resolve time, not at
	// declaration time.
	Name() string

	// Included evaluates the node's include flag.
	Included() bool

	// Parent returns the enclosing group, or nil for a root node.
	Parent() *Group

	// Path returns the URL path of the node. When unset, the path is
	// inherited from the nearest ancestor group that defines one.
	Path() string

	// Directory returns the absolute directory containing the node's
	// files. When unset, it is inherited like Path.
	Directory() string

	setParent(g *Group)
}

// base carries the attributes shared by Resource and Group. Path and
// directory are tri-state: a nil pointer means unset and delegates to
// the parent chain on read. Inheritance is computed lazily on every
// read and never cached.
type base struct {
	name      string
	include   Include
	parent    *Group
	path      *string
	directory *string
}

func (b *base) Name() string { return b.name }

func (b *base) Included() bool {
	if b.include == nil {
		return true
	}
	return b.include.Included()
}

// SetInclude replaces the node's include flag. A nil value includes the
// node unconditionally.
func (b *base) SetInclude(include Include) { b.include = include }

func (b *base) Parent() *Group { return b.parent }

func (b *base) setParent(g *Group) { b.parent = g }

func (b *base) Path() string {
	if b.path != nil {
		return *b.path
	}
	if b.parent != nil {
		return b.parent.Path()
	}
	return ""
}

// SetPath sets the node's own URL path, shadowing any inherited value.
func (b *base) SetPath(path string) { b.path = &path }

func (b *base) Directory() string {
	if b.directory != nil {
		return *b.directory
	}
	if b.parent != nil {
		return b.parent.Directory()
	}
	return ""
}

// SetDirectory sets the node's own file directory, shadowing any
// inherited value. The directory is normalized to an absolute path.
func (b *base) SetDirectory(dir string) {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	b.directory = &dir
}

// init applies the common constructor attributes. Empty path and
// directory stay unset so that inheritance applies.
func (b *base) init(name, dir, path string, include Include) {
	b.name = name
	b.include = include
	if dir != "" {
		b.SetDirectory(dir)
	}
	if path != "" {
		b.SetPath(path)
	}
}

// copyBase clones the shared attributes, detaching the copy from any
// parent group. Callers re-link parents when cloning whole subtrees.
func (b *base) copyBase() base {
	c := base{name: b.name, include: b.include}
	if b.path != nil {
		p := *b.path
		c.path = &p
	}
	if b.directory != nil {
		d := *b.directory
		c.directory = &d
	}
	return c
}

// detach removes n from its parent group and clears the back-reference.
func detach(n Node) error {
	g := n.Parent()
	if g == nil {
		return ErrNotMember
	}
	g.removeMember(n)
	n.setParent(nil)
	return nil
}
