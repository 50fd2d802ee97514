package docshape

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/docshape/shape"
)

// Verify walks the declared tree against the backend's child enumeration
// and reports where the two disagree: declared collections or literal
// documents the backend does not know.  maxDepth bounds the walk in
// collection levels, which also makes Verify usable on self-referential
// trees.  The result is advisory; an empty slice means no disagreement
// was found within the bound.
func (s *Store) Verify(ctx context.Context, maxDepth int) ([]string, error) {
	if s.backend == nil {
		return nil, ErrNoBackend
	}
	v := &verifier{store: s}
	if err := v.document(ctx, s.root, s.tree.Root(), "", maxDepth); err != nil {
		return nil, err
	}
	return v.problems, nil
}

type verifier struct {
	store    *Store
	problems []string
}

func (v *verifier) document(ctx context.Context, h Handle, d *shape.Document, at string, depth int) error {
	if depth <= 0 || len(d.Collections) == 0 {
		return nil
	}
	names, err := v.store.backend.Children(ctx, h)
	if err != nil {
		return err
	}
	for _, name := range d.CollectionNames() {
		if !slices.Contains(names, name) {
			v.problems = append(v.problems, fmt.Sprintf("collection %s missing from backend", join(at, name)))
			continue
		}
		ch, err := v.store.backend.Child(h, CollectionChild, name)
		if err != nil {
			return err
		}
		if err := v.collection(ctx, ch, d.Collections[name], join(at, name), depth-1); err != nil {
			return err
		}
	}
	return nil
}

func (v *verifier) collection(ctx context.Context, h Handle, c *shape.Collection, at string, depth int) error {
	names, err := v.store.backend.Children(ctx, h)
	if err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(c.Docs)) {
		if !slices.Contains(names, name) {
			v.problems = append(v.problems, fmt.Sprintf("document %s missing from backend", join(at, name)))
			continue
		}
		if err := v.member(ctx, h, c.Docs[name], name, at, depth); err != nil {
			return err
		}
	}
	if c.Generic == nil {
		return nil
	}
	// every undeclared name the backend holds carries the generic shape
	for _, name := range names {
		if _, ok := c.Docs[name]; ok {
			continue
		}
		if err := v.member(ctx, h, c.Generic, name, at, depth); err != nil {
			return err
		}
	}
	return nil
}

func (v *verifier) member(ctx context.Context, col Handle, d *shape.Document, name, at string, depth int) error {
	h, err := v.store.backend.Child(col, DocumentChild, name)
	if err != nil {
		return err
	}
	return v.document(ctx, h, d, join(at, name), depth)
}

func join(at, name string) string {
	if at == "" {
		return name
	}
	return at + "/" + name
}
