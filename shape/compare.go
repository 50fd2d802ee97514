package shape

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Compare returns an integer comparing two value types.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// The order is total and structural; it exists so that sets of shapes can
// be kept sorted and deduplicated deterministically.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case ArrayKind:
		return Compare(a.Elem, b.Elem)
	case MapKind:
		return compareFieldMaps(a.Fields, b.Fields)
	}
	return 0
}

func compareFieldMaps(a, b map[string]*Value) int {
	keysA := slices.Sorted(maps.Keys(a))
	keysB := slices.Sorted(maps.Keys(b))
	minLen := min(len(keysA), len(keysB))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(a[keysA[i]], b[keysB[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}

// CompareDocuments returns an integer comparing two document shapes,
// fields first, then sub-collections.  Self-referential shapes compare by
// structure up to the first revisited pair of nodes, which is enough for a
// total order over finitely many distinct nodes.
func CompareDocuments(a, b *Document) int {
	c := &docComparer{seen: map[docPair]bool{}}
	return c.docs(a, b)
}

// EqualDocuments reports whether two document shapes are structurally
// equal.  Used to deduplicate union variants: dedup is by structure, not
// by path identity.
func EqualDocuments(a, b *Document) bool {
	return CompareDocuments(a, b) == 0
}

type docPair [2]*Document

type docComparer struct {
	seen map[docPair]bool
}

func (dc *docComparer) docs(a, b *Document) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	pair := docPair{a, b}
	if dc.seen[pair] {
		return 0
	}
	dc.seen[pair] = true

	if c := compareFieldMaps(a.Fields, b.Fields); c != 0 {
		return c
	}
	namesA := a.CollectionNames()
	namesB := b.CollectionNames()
	minLen := min(len(namesA), len(namesB))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(namesA[i], namesB[i]); c != 0 {
			return c
		}
		if c := dc.cols(a.Collections[namesA[i]], b.Collections[namesB[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(namesA), len(namesB))
}

func (dc *docComparer) cols(a, b *Collection) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	namesA := slices.Sorted(maps.Keys(a.Docs))
	namesB := slices.Sorted(maps.Keys(b.Docs))
	minLen := min(len(namesA), len(namesB))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(namesA[i], namesB[i]); c != 0 {
			return c
		}
		if c := dc.docs(a.Docs[namesA[i]], b.Docs[namesB[i]]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(namesA), len(namesB)); c != 0 {
		return c
	}
	return dc.docs(a.Generic, b.Generic)
}
