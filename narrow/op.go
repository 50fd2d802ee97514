package narrow

// Op tags a predicate operator.  A single Narrow function parameterized by
// Op replaces the per-operator entry points a query surface would
// otherwise need.
type Op int

const (
	// HasField keeps variants that declare the field at all.  It is also
	// the base case of every other operator: a variant without the field
	// never survives.
	HasField Op = iota + 1

	Eq
	Ne
	Lt
	Le
	Gt
	Ge

	// In keeps variants whose field type is compatible with any of the
	// candidate compare types.
	In

	// ArrayContains keeps variants whose field is an array with an
	// element type compatible with the compare type; ArrayContainsAny
	// takes a set of candidate element types.
	ArrayContains
	ArrayContainsAny
)

func (op Op) String() string {
	switch op {
	case HasField:
		return "has"
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case In:
		return "in"
	case ArrayContains:
		return "contains"
	case ArrayContainsAny:
		return "contains-any"
	}
	return "invalid"
}
