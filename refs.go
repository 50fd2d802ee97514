package docshape

import (
	"fmt"

	"github.com/signadot/docshape/dpath"
	"github.com/signadot/docshape/narrow"
	"github.com/signadot/docshape/resolve"
	"github.com/signadot/docshape/shape"
)

// DocRef is a resolved document reference: a path plus the union of
// shapes a document at that path can have.
type DocRef struct {
	store  *Store
	path   dpath.Path
	shapes shape.Union
}

func (r *DocRef) Path() dpath.Path {
	return r.path
}

// Shapes returns the resolved shape union.  Empty means the path denotes
// nothing in the declared tree.
func (r *DocRef) Shapes() shape.Union {
	return r.shapes
}

// Handle resolves the backend handle for this reference.  The path must
// be wildcard-free.  The handle is what the underlying client performs
// reads, writes and listens with.
func (r *DocRef) Handle() (Handle, error) {
	return r.store.handle(r.path)
}

// Collection descends into the named sub-collection.
func (r *DocRef) Collection(name string) (*ColRef, error) {
	p, err := r.path.Append(name)
	if err != nil {
		return nil, err
	}
	u, err := resolve.Collection(r.store.tree, p)
	if err != nil {
		return nil, err
	}
	return &ColRef{store: r.store, path: p, shapes: u}, nil
}

// ColRef is a resolved collection reference: either a path, or a
// collection-group name, plus the union of its member document shapes.
type ColRef struct {
	store  *Store
	path   dpath.Path
	group  string
	shapes shape.Union
}

func (c *ColRef) Path() dpath.Path {
	return c.path
}

// Group returns the collection-group name, or "" for path references.
func (c *ColRef) Group() string {
	return c.group
}

// Shapes returns the union of member document shapes.
func (c *ColRef) Shapes() shape.Union {
	return c.shapes
}

// Handle resolves the backend handle for this reference.  Collection
// groups have no single handle.
func (c *ColRef) Handle() (Handle, error) {
	if c.group != "" {
		return nil, fmt.Errorf("%w: collection group %q", ErrWildcard, c.group)
	}
	return c.store.handle(c.path)
}

// Doc descends to the named member document.
func (c *ColRef) Doc(name string) (*DocRef, error) {
	if c.group != "" {
		return nil, fmt.Errorf("%w: collection group %q has no document paths", dpath.ErrMalformedPath, c.group)
	}
	p, err := c.path.Append(name)
	if err != nil {
		return nil, err
	}
	u, err := resolve.Doc(c.store.tree, p)
	if err != nil {
		return nil, err
	}
	return &DocRef{store: c.store, path: p, shapes: u}, nil
}

// Query starts a query over the collection's member shapes.
func (c *ColRef) Query() *Query {
	return &Query{col: c, shapes: c.shapes}
}

// Where is shorthand for Query().Where.
func (c *ColRef) Where(field string, op narrow.Op, compare ...*shape.Value) *Query {
	return c.Query().Where(field, op, compare...)
}
