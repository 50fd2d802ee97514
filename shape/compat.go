package shape

// AssignableTo reports whether every value of type v is also a legal value
// of type to.  It is the subtype relation of the shape system:
//
//   - anything is assignable to any
//   - scalars are assignable to the same kind only
//   - arrays are covariant in their element type; an untyped element is any
//   - a declared map is assignable to a map declaring a subset of its
//     fields with assignable types; an open map (nil Fields) accepts all
//
// nil stands for any on either side.
func (v *Value) AssignableTo(to *Value) bool {
	if v == nil {
		v = Any()
	}
	if to == nil {
		to = Any()
	}
	if to.Kind == AnyKind {
		return true
	}
	if v.Kind != to.Kind {
		return false
	}
	switch v.Kind {
	case ArrayKind:
		return v.ElemOrAny().AssignableTo(to.ElemOrAny())
	case MapKind:
		if to.Fields == nil {
			return true
		}
		if v.Fields == nil {
			return false
		}
		for name, want := range to.Fields {
			got, ok := v.Fields[name]
			if !ok {
				return false
			}
			if !got.AssignableTo(want) {
				return false
			}
		}
		return true
	}
	return true
}

// Compatible reports whether a value of type a could ever satisfy a
// comparison against a value of type b: either type may be the more
// general one.  This is the relation equality and order predicates narrow
// by, deliberately weaker than AssignableTo in both directions.
func Compatible(a, b *Value) bool {
	return a.AssignableTo(b) || b.AssignableTo(a)
}
