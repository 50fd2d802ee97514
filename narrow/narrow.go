// Package narrow filters unions of document shapes by field predicates.
//
// Narrowing is purely structural: it decides which declared shapes could
// ever satisfy a predicate and never touches concrete data.  It is
// idempotent and commutative across predicates, and it never fails: a
// predicate the shapes cannot speak to simply stops narrowing.
package narrow

import (
	"strings"

	"github.com/signadot/docshape/debug"
	"github.com/signadot/docshape/shape"
)

// Predicate is one field condition of a query.  Compare carries the
// declared type(s) of the value(s) the field is compared against: one
// entry for scalar operators, several for In and ArrayContainsAny, none
// for HasField.
type Predicate struct {
	Field   string
	Op      Op
	Compare []*shape.Value
}

// Narrow returns the variants of u that could satisfy p.
//
// A variant whose shape cannot statically place p.Field — the lookup runs
// through an any-typed or open-map value — is kept unfiltered: predicates
// on dynamically named fields are legal, they just lose narrowing.
func Narrow(u shape.Union, p Predicate) shape.Union {
	var res shape.Union
	for _, d := range u {
		v, st := lookupField(d, p.Field)
		switch st {
		case lookupUnknown:
			res = res.Add(d)
		case lookupAbsent:
			// base case of every operator
		case lookupFound:
			if keep(v, p) {
				res = res.Add(d)
			}
		}
	}
	if debug.Narrow() {
		debug.Logf("narrow %s %s: %d -> %d variants\n", p.Field, p.Op, len(u), len(res))
	}
	return res
}

func keep(v *shape.Value, p Predicate) bool {
	switch p.Op {
	case HasField:
		return true
	case Eq, Lt, Le, Gt, Ge:
		return shape.Compatible(v, compareAt(p, 0))
	case Ne:
		return !v.AssignableTo(compareAt(p, 0))
	case In:
		for _, c := range p.Compare {
			if shape.Compatible(v, c) {
				return true
			}
		}
		return len(p.Compare) == 0
	case ArrayContains:
		return v.Kind == shape.ArrayKind &&
			shape.Compatible(v.ElemOrAny(), compareAt(p, 0))
	case ArrayContainsAny:
		if v.Kind != shape.ArrayKind {
			return false
		}
		for _, c := range p.Compare {
			if shape.Compatible(v.ElemOrAny(), c) {
				return true
			}
		}
		return len(p.Compare) == 0
	}
	return false
}

func compareAt(p Predicate, i int) *shape.Value {
	if i >= len(p.Compare) {
		return shape.Any()
	}
	return p.Compare[i]
}

type lookupState int

const (
	lookupFound lookupState = iota
	lookupAbsent
	lookupUnknown
)

// lookupField follows a dotted field path through a document's value
// schema.  It distinguishes a field that is declared absent from one the
// schema cannot speak to at all: descending through an any-typed value or
// an open map is unknown, not absent.
func lookupField(d *shape.Document, field string) (*shape.Value, lookupState) {
	if field == "" {
		return nil, lookupUnknown
	}
	parts := strings.Split(field, ".")
	v, ok := d.Fields[parts[0]]
	if !ok {
		if d.Fields == nil {
			return nil, lookupUnknown
		}
		return nil, lookupAbsent
	}
	for _, part := range parts[1:] {
		if v == nil || v.Kind == shape.AnyKind {
			return nil, lookupUnknown
		}
		if v.Kind != shape.MapKind {
			return nil, lookupAbsent
		}
		if v.Fields == nil {
			return nil, lookupUnknown
		}
		next, ok := v.Fields[part]
		if !ok {
			return nil, lookupAbsent
		}
		v = next
	}
	if v == nil {
		return nil, lookupUnknown
	}
	return v, lookupFound
}
