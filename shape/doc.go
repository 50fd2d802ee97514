// Package shape defines the declared shape of a hierarchically nested
// document store: a tree alternating between collections (named containers
// of documents) and documents (named records carrying a field schema and,
// possibly, further named sub-collections).
//
// A Tree is declared once, at startup, and never mutated afterwards.  All
// functions in this package and in the packages built on top of it
// (resolve, narrow) treat the tree as read-only, so a single Tree is safe
// to share across any number of concurrent callers without locking.
//
// Shapes may be self-referential: a Collection's document may, through its
// sub-collections, reach a Document that is already one of its ancestors.
// Such trees are structurally infinite but have finitely many distinct
// nodes; every traversal in this module is bounded either by the length of
// a caller-supplied path or by a visited set on node identity.
package shape
