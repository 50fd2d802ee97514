package docshape

import (
	"slices"

	"github.com/signadot/docshape/narrow"
	"github.com/signadot/docshape/pred"
	"github.com/signadot/docshape/shape"
)

// Query narrows the member shapes of a collection reference predicate by
// predicate.  Queries are immutable; every method returns a new query, so
// partial chains can be shared and extended independently.
//
// The query itself never touches data: Shapes is the statically narrowed
// union, and Predicates is what the underlying client is handed to
// actually filter documents.
type Query struct {
	col    *ColRef
	shapes shape.Union
	preds  []narrow.Predicate
	sel    []string
}

// Where narrows the query by one predicate.
func (q *Query) Where(field string, op narrow.Op, compare ...*shape.Value) *Query {
	p := narrow.Predicate{Field: field, Op: op, Compare: compare}
	return q.with(p)
}

// WhereExpr narrows the query by a predicate expression, e.g.
// `age >= 21` or `tags contains "go"`.  See package pred for the grammar.
func (q *Query) WhereExpr(src string) (*Query, error) {
	p, err := pred.Parse(src)
	if err != nil {
		return nil, err
	}
	return q.with(p), nil
}

// Select projects the query's shapes onto the named fields.
func (q *Query) Select(fields ...string) *Query {
	return &Query{
		col:    q.col,
		shapes: narrow.Select(q.shapes, fields...),
		preds:  q.preds,
		sel:    slices.Clone(fields),
	}
}

// Shapes returns the narrowed union: the document shapes that could still
// satisfy every predicate applied so far.  Empty means no declared shape
// can match.
func (q *Query) Shapes() shape.Union {
	return q.shapes
}

// Predicates returns the accumulated predicates, for the underlying
// client to evaluate against data.
func (q *Query) Predicates() []narrow.Predicate {
	return slices.Clone(q.preds)
}

// Selected returns the projection fields, if any.
func (q *Query) Selected() []string {
	return slices.Clone(q.sel)
}

// Ref returns the collection reference the query ranges over.
func (q *Query) Ref() *ColRef {
	return q.col
}

func (q *Query) with(p narrow.Predicate) *Query {
	return &Query{
		col:    q.col,
		shapes: narrow.Narrow(q.shapes, p),
		preds:  append(slices.Clone(q.preds), p),
		sel:    q.sel,
	}
}
