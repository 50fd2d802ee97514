package shape

import (
	"maps"
	"slices"
)

// Document is one named document slot: a field schema plus zero or more
// named sub-collections.  The schema never contains collections;
// collections are reachable only through Collections.
type Document struct {
	Fields      map[string]*Value
	Collections map[string]*Collection
}

// Collection maps document names to document shapes.  A collection has no
// schema of its own.  Generic, when non-nil, is the shape shared by every
// document name the collection was declared with the generic key for.
type Collection struct {
	Docs    map[string]*Document
	Generic *Document
}

// Tree is the root of a declared store: top-level collection name to
// collection shape.
type Tree struct {
	Collections map[string]*Collection
}

// Collection returns the named sub-collection, or nil.
func (d *Document) Collection(name string) *Collection {
	if d == nil {
		return nil
	}
	return d.Collections[name]
}

// CollectionNames returns the names of d's sub-collections, sorted.
func (d *Document) CollectionNames() []string {
	if d == nil || len(d.Collections) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(d.Collections))
}

// Field returns the declared type of the named field, or nil.
func (d *Document) Field(name string) *Value {
	if d == nil {
		return nil
	}
	return d.Fields[name]
}

// FieldNames returns the names of d's declared fields, sorted.
func (d *Document) FieldNames() []string {
	if d == nil || len(d.Fields) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(d.Fields))
}

// Doc returns the shape of the named member document.  A literal
// declaration wins; otherwise the generic shape applies, since the generic
// key means "any document name".  Returns nil when the collection has
// neither.
func (c *Collection) Doc(name string) *Document {
	if c == nil {
		return nil
	}
	if d, ok := c.Docs[name]; ok {
		return d
	}
	return c.Generic
}

// Members returns every member document shape of c: the literal
// declarations in name order, then the generic shape if present.
// Duplicate pointers are returned once.
func (c *Collection) Members() []*Document {
	if c == nil {
		return nil
	}
	var res []*Document
	seen := map[*Document]bool{}
	for _, name := range slices.Sorted(maps.Keys(c.Docs)) {
		d := c.Docs[name]
		if d == nil || seen[d] {
			continue
		}
		seen[d] = true
		res = append(res, d)
	}
	if c.Generic != nil && !seen[c.Generic] {
		res = append(res, c.Generic)
	}
	return res
}

// Collection returns the named top-level collection, or nil.
func (t *Tree) Collection(name string) *Collection {
	if t == nil {
		return nil
	}
	return t.Collections[name]
}

// Root returns a synthetic document whose sub-collections are the tree's
// top-level collections.  It lets traversals treat the root uniformly.
func (t *Tree) Root() *Document {
	return &Document{Collections: t.Collections}
}
