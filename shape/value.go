package shape

// Kind enumerates the value types a document field may declare.
type Kind int

const (
	InvalidKind Kind = iota
	NullKind
	BoolKind
	NumberKind
	StringKind
	TimestampKind
	BytesKind
	ArrayKind
	MapKind
	AnyKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BoolKind:
		return "bool"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case TimestampKind:
		return "timestamp"
	case BytesKind:
		return "bytes"
	case ArrayKind:
		return "array"
	case MapKind:
		return "map"
	case AnyKind:
		return "any"
	}
	return "invalid"
}

// Kinds returns all valid kinds in rank order.
func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		NumberKind,
		StringKind,
		TimestampKind,
		BytesKind,
		ArrayKind,
		MapKind,
		AnyKind,
	}
}

// Value is the declared type of one document field.  A Value is a flat
// datum type: array and map values are themselves typed, but a Value never
// contains collections.  Collections are reachable only as named children
// of a Document.
type Value struct {
	Kind Kind

	// Elem is the element type of an ArrayKind value.  nil means the
	// elements are untyped (any).
	Elem *Value

	// Fields holds the declared fields of a MapKind value.  nil means an
	// open map with no declared fields.
	Fields map[string]*Value
}

func Null() *Value      { return &Value{Kind: NullKind} }
func Bool() *Value      { return &Value{Kind: BoolKind} }
func Number() *Value    { return &Value{Kind: NumberKind} }
func String() *Value    { return &Value{Kind: StringKind} }
func Timestamp() *Value { return &Value{Kind: TimestampKind} }
func Bytes() *Value     { return &Value{Kind: BytesKind} }
func Any() *Value       { return &Value{Kind: AnyKind} }

func ArrayOf(elem *Value) *Value {
	return &Value{Kind: ArrayKind, Elem: elem}
}

func MapOf(fields map[string]*Value) *Value {
	return &Value{Kind: MapKind, Fields: fields}
}

// ElemOrAny returns the element type of an array value, substituting any
// for an untyped element.
func (v *Value) ElemOrAny() *Value {
	if v.Elem == nil {
		return Any()
	}
	return v.Elem
}
