package shape

import "slices"

// Union is an unordered set of candidate document shapes.  It is the
// result type of path resolution and collection-group lookup whenever more
// than one document shape can occupy the named position, and the input and
// output type of predicate narrowing.
//
// Variants are carried together, never merged, so that narrowing can
// discriminate per variant.  The zero value is the empty union, which is
// the ordinary "path denotes nothing" result, not an error.
//
// Internally variants are kept sorted by CompareDocuments and deduplicated
// by structural equality, so unions built from the same shapes in any
// order are slices.Equal.
type Union []*Document

// Add returns u with d added, unless a structurally equal variant is
// already present.
func (u Union) Add(d *Document) Union {
	if d == nil {
		return u
	}
	i, found := slices.BinarySearchFunc(u, d, CompareDocuments)
	if found {
		return u
	}
	return slices.Insert(u, i, d)
}

// AddAll returns u with every document of ds added.
func (u Union) AddAll(ds []*Document) Union {
	for _, d := range ds {
		u = u.Add(d)
	}
	return u
}

// Merge returns the union of u and v.
func (u Union) Merge(v Union) Union {
	return u.AddAll(v)
}

// Contains reports whether a variant structurally equal to d is present.
func (u Union) Contains(d *Document) bool {
	_, found := slices.BinarySearchFunc(u, d, CompareDocuments)
	return found
}

// Empty reports whether the union has no variants.
func (u Union) Empty() bool {
	return len(u) == 0
}

// Equal reports whether u and v hold structurally equal variant sets.
func (u Union) Equal(v Union) bool {
	return slices.EqualFunc(u, v, EqualDocuments)
}
