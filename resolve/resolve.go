// Package resolve walks a declared shape.Tree according to a parsed path,
// producing the union of document shapes the path can denote.
//
// Resolution fans out at wildcard segments and unions every live
// candidate; it never intersects.  A literal segment that names nothing
// kills its branch silently: an empty union is an expected result, not an
// error.  Only malformed input and path-kind mismatches are errors, and
// both are detected before any traversal.
//
// Each resolution performs exactly one descent per path segment, so
// self-referential trees are safe: recursion depth is the path length, not
// the tree depth.
package resolve

import (
	"fmt"

	"github.com/signadot/docshape/debug"
	"github.com/signadot/docshape/dpath"
	"github.com/signadot/docshape/shape"
)

// Doc resolves a document-kind path to the union of document shapes it
// denotes.  A collection-kind path is ErrPathKind.
func Doc(t *shape.Tree, p dpath.Path) (shape.Union, error) {
	if p.Kind() != dpath.DocumentKind {
		return nil, fmt.Errorf("%w: %q is a collection path, want document", dpath.ErrPathKind, p.String())
	}
	docs, _ := walk(t, p)
	var u shape.Union
	u = u.AddAll(docs)
	if debug.Resolve() {
		debug.Logf("resolve doc %q: %d variants\n", p.String(), len(u))
	}
	return u, nil
}

// Collection resolves a collection-kind path to the union of the shapes of
// the matched collections' member documents.  A document-kind path is
// ErrPathKind.
func Collection(t *shape.Tree, p dpath.Path) (shape.Union, error) {
	if p.Kind() != dpath.CollectionKind {
		return nil, fmt.Errorf("%w: %q is a document path, want collection", dpath.ErrPathKind, p.String())
	}
	_, cols := walk(t, p)
	var u shape.Union
	for _, col := range cols {
		u = u.AddAll(col.Members())
	}
	if debug.Resolve() {
		debug.Logf("resolve collection %q: %d variants\n", p.String(), len(u))
	}
	return u, nil
}

// walk descends the tree segment by segment, carrying the current
// candidate set.  Even positions select collections from the candidate
// documents, odd positions select documents from the candidate
// collections.  Exactly one of the returned slices is meaningful,
// according to the parity of p.
func walk(t *shape.Tree, p dpath.Path) (docs []*shape.Document, cols []*shape.Collection) {
	docs = []*shape.Document{t.Root()}
	for i, seg := range p {
		if i%2 == 0 {
			cols = stepCollections(docs, seg)
			docs = nil
		} else {
			docs = stepDocuments(cols, seg)
			cols = nil
		}
	}
	return docs, cols
}

// stepCollections moves from candidate documents into their
// sub-collections.  A wildcard fans out over every direct sub-collection;
// this is a local fan-out, not a whole-tree search.
func stepCollections(docs []*shape.Document, seg dpath.Segment) []*shape.Collection {
	var res []*shape.Collection
	seen := map[*shape.Collection]bool{}
	add := func(c *shape.Collection) {
		if c == nil || seen[c] {
			return
		}
		seen[c] = true
		res = append(res, c)
	}
	for _, d := range docs {
		if seg.Wild {
			for _, name := range d.CollectionNames() {
				add(d.Collections[name])
			}
			continue
		}
		add(d.Collection(seg.Name))
	}
	return res
}

// stepDocuments moves from candidate collections into their member
// documents.  A wildcard takes every literal member and the generic
// member; a literal name takes the named member, falling back to the
// generic shape.
func stepDocuments(cols []*shape.Collection, seg dpath.Segment) []*shape.Document {
	var res []*shape.Document
	seen := map[*shape.Document]bool{}
	add := func(d *shape.Document) {
		if d == nil || seen[d] {
			return
		}
		seen[d] = true
		res = append(res, d)
	}
	for _, c := range cols {
		if seg.Wild {
			for _, d := range c.Members() {
				add(d)
			}
			continue
		}
		add(c.Doc(seg.Name))
	}
	return res
}
