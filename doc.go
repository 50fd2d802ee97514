// Package docshape resolves slash-separated paths over a declared
// document-store tree to the document shapes they denote, and statically
// narrows query predicates against those shapes.
//
// The package is the facade over the core: shape (the declared tree),
// dpath (the path grammar), resolve (path and collection-group
// resolution) and narrow (predicate narrowing).  A Store binds a declared
// tree to a Backend, the seam to the underlying document-store client;
// the core itself performs no I/O, caches nothing and validates no field
// values — it resolves structure only.
//
//	tree, _ := decl.ParseFile("store.yaml")
//	store := docshape.New(tree, backend, rootHandle)
//	col, _ := store.CollectionPath("users/{uid}/posts")
//	q, _ := col.Query().WhereExpr(`draft == bool`)
//	shapes := q.Shapes() // the narrowed union of post shapes
package docshape
