// Package dpath implements the path grammar of a nested document store.
//
// A path is a sequence of segments separated by '/'.  Segments alternate
// in meaning, collection first:
//
//	users                    collection "users"
//	users/alice              document "alice" in collection "users"
//	users/alice/posts        collection "posts" under that document
//	users/{uid}/posts/{pid}  wildcards: every document of every user's posts
//
// A segment wrapped in '{' and '}' is a wildcard and matches every node at
// its position; the name inside is decorative and kept only for display.
// Whether a path denotes a collection or a document is a purely syntactic
// property: odd segment count means collection, even means document.
// Parsing never consults the declared tree.
package dpath
