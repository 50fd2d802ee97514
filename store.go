package docshape

import (
	"context"

	"github.com/signadot/docshape/dpath"
	"github.com/signadot/docshape/resolve"
	"github.com/signadot/docshape/shape"
)

// Handle is an opaque node reference owned by the Backend.
type Handle any

// ChildKind tells a Backend which level a descent targets.
type ChildKind int

const (
	CollectionChild ChildKind = iota + 1
	DocumentChild
)

func (k ChildKind) String() string {
	switch k {
	case CollectionChild:
		return "collection"
	case DocumentChild:
		return "document"
	}
	return "invalid"
}

// Backend is the underlying document-store client.  The core consumes
// exactly two primitives from it: a one-level descent and a child
// enumeration (the latter used only by Verify).  Everything else about
// the client — reads, writes, listeners, transactions — stays on the
// client's side of this seam, keyed by the handles the core resolves.
type Backend interface {
	Child(parent Handle, kind ChildKind, name string) (Handle, error)
	Children(ctx context.Context, parent Handle) ([]string, error)
}

// Store binds a declared tree to a backend.  The tree is immutable and
// the store carries no other state, so a Store is safe for concurrent
// use.
type Store struct {
	tree    *shape.Tree
	backend Backend
	root    Handle
}

// New returns a store over tree.  backend may be nil for purely
// structural use; root is the backend's handle for the tree root.
func New(tree *shape.Tree, backend Backend, root Handle) *Store {
	return &Store{tree: tree, backend: backend, root: root}
}

// Tree returns the declared tree.
func (s *Store) Tree() *shape.Tree {
	return s.tree
}

// DocPath resolves a document-kind path string to a reference carrying
// the union of shapes the path denotes.
func (s *Store) DocPath(path string) (*DocRef, error) {
	p, err := dpath.Parse(path)
	if err != nil {
		return nil, err
	}
	u, err := resolve.Doc(s.tree, p)
	if err != nil {
		return nil, err
	}
	return &DocRef{store: s, path: p, shapes: u}, nil
}

// CollectionPath resolves a collection-kind path string to a reference
// carrying the union of its member document shapes.
func (s *Store) CollectionPath(path string) (*ColRef, error) {
	p, err := dpath.Parse(path)
	if err != nil {
		return nil, err
	}
	u, err := resolve.Collection(s.tree, p)
	if err != nil {
		return nil, err
	}
	return &ColRef{store: s, path: p, shapes: u}, nil
}

// CollectionGroup resolves every collection named name, anywhere in the
// tree, to a single reference over the union of all their member shapes.
func (s *Store) CollectionGroup(name string) (*ColRef, error) {
	u, err := resolve.Group(s.tree, name)
	if err != nil {
		return nil, err
	}
	return &ColRef{store: s, group: name, shapes: u}, nil
}

// handle walks the backend down p, one Child call per segment.
func (s *Store) handle(p dpath.Path) (Handle, error) {
	if s.backend == nil {
		return nil, ErrNoBackend
	}
	if p.Wild() {
		return nil, ErrWildcard
	}
	h := s.root
	for i, seg := range p {
		kind := CollectionChild
		if i%2 == 1 {
			kind = DocumentChild
		}
		var err error
		h, err = s.backend.Child(h, kind, seg.Name)
		if err != nil {
			return nil, err
		}
	}
	return h, nil
}
