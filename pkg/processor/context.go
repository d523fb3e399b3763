package processor

import "github.com/dmitrymomot/conform/pkg/maybe"

// DefaultMaxDepth bounds how deep Asks may derive before failing.
const DefaultMaxDepth = 256

// Context is a location inside the input together with the value found
// there. The only implementations are *Root and *Derived.
type Context interface {
	// Value is the value at this location, None when the location does not
	// exist in the input.
	Value() maybe.Option[any]
	// PathList is the ordered list of steps from the root to this location.
	PathList() []Path
	// Depth is len(PathList()).
	Depth() int
	// Derive moves one step down. It never fails.
	Derive(path Path) Context

	root() *Root
}

// Root is the context of the whole input.
type Root struct {
	value    maybe.Option[any]
	maxDepth int
}

// NewRoot returns a root context holding a present value.
func NewRoot(v any) *Root {
	return NewRootOption(maybe.Some(v))
}

// NewRootOption returns a root context for a possibly absent value.
func NewRootOption(v maybe.Option[any]) *Root {
	return &Root{value: v, maxDepth: DefaultMaxDepth}
}

func (r *Root) Value() maybe.Option[any] { return r.value }

func (r *Root) PathList() []Path { return []Path{} }

func (r *Root) Depth() int { return 0 }

func (r *Root) Derive(path Path) Context {
	return derive(r, path)
}

func (r *Root) root() *Root { return r }

// Derived is a context reached from Parent by one Path step.
type Derived struct {
	parent Context
	path   Path
	value  maybe.Option[any]
	depth  int
	top    *Root
}

func derive(parent Context, path Path) *Derived {
	return &Derived{
		parent: parent,
		path:   path,
		value:  project(parent.Value(), path),
		depth:  parent.Depth() + 1,
		top:    parent.root(),
	}
}

func (d *Derived) Parent() Context { return d.parent }

func (d *Derived) Path() Path { return d.path }

func (d *Derived) Value() maybe.Option[any] { return d.value }

func (d *Derived) Depth() int { return d.depth }

func (d *Derived) PathList() []Path {
	paths := make([]Path, d.depth)
	var cur Context = d
	for i := d.depth - 1; i >= 0; i-- {
		step, ok := cur.(*Derived)
		if !ok {
			break
		}
		paths[i] = step.path
		cur = step.parent
	}
	return paths
}

func (d *Derived) Derive(path Path) Context {
	return derive(d, path)
}

func (d *Derived) root() *Root { return d.top }

// withValue returns a context at the same location holding v.
func withValue(ctx Context, v any) Context {
	switch c := ctx.(type) {
	case *Root:
		return &Root{value: maybe.Some(v), maxDepth: c.maxDepth}
	case *Derived:
		d := *c
		d.value = maybe.Some(v)
		return &d
	}
	return ctx
}

// depthExceeded reports whether ctx is deeper than its run allows.
func depthExceeded(ctx Context) bool {
	limit := ctx.root().maxDepth
	return limit > 0 && ctx.Depth() > limit
}
