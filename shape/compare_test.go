package shape

import "testing"

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want int
	}{
		{"equal scalars", String(), String(), 0},
		{"kind order", Number(), String(), -1},
		{"nil first", nil, String(), -1},
		{"equal arrays", ArrayOf(String()), ArrayOf(String()), 0},
		{"array elems", ArrayOf(Number()), ArrayOf(String()), -1},
		{"untyped elem first", ArrayOf(nil), ArrayOf(String()), -1},
		{
			"map fields",
			MapOf(map[string]*Value{"a": String()}),
			MapOf(map[string]*Value{"a": String(), "b": Number()}),
			-1,
		},
		{
			"equal maps",
			MapOf(map[string]*Value{"a": String(), "b": Number()}),
			MapOf(map[string]*Value{"b": Number(), "a": String()}),
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare reversed = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestCompareDocuments(t *testing.T) {
	person := &Document{Fields: map[string]*Value{"name": String(), "age": Number()}}
	personCopy := &Document{Fields: map[string]*Value{"age": Number(), "name": String()}}
	post := &Document{Fields: map[string]*Value{"title": String()}}

	if CompareDocuments(person, personCopy) != 0 {
		t.Error("structurally equal documents compare nonzero")
	}
	if CompareDocuments(person, post) == 0 {
		t.Error("distinct documents compare zero")
	}
	if !EqualDocuments(person, personCopy) {
		t.Error("EqualDocuments = false for structural copies")
	}
}

func TestCompareDocumentsNested(t *testing.T) {
	a := &Document{
		Fields: map[string]*Value{"name": String()},
		Collections: map[string]*Collection{
			"posts": {Generic: &Document{Fields: map[string]*Value{"title": String()}}},
		},
	}
	b := &Document{
		Fields: map[string]*Value{"name": String()},
		Collections: map[string]*Collection{
			"posts": {Generic: &Document{Fields: map[string]*Value{"title": String(), "draft": Bool()}}},
		},
	}
	if CompareDocuments(a, b) == 0 {
		t.Error("documents differing in sub-collection shape compare zero")
	}
	if CompareDocuments(a, a) != 0 {
		t.Error("document not equal to itself")
	}
}

func TestCompareDocumentsSelfReferential(t *testing.T) {
	// node: {next: node} in two separately allocated copies
	mkNode := func() *Document {
		n := &Document{Fields: map[string]*Value{"label": String()}}
		n.Collections = map[string]*Collection{"next": {Generic: n}}
		return n
	}
	a, b := mkNode(), mkNode()
	// must terminate and find them equal
	if CompareDocuments(a, b) != 0 {
		t.Error("structurally identical recursive documents compare nonzero")
	}

	c := &Document{Fields: map[string]*Value{"label": Number()}}
	c.Collections = map[string]*Collection{"next": {Generic: c}}
	if CompareDocuments(a, c) == 0 {
		t.Error("recursive documents with different fields compare zero")
	}
}

func TestUnionAddDedup(t *testing.T) {
	person := &Document{Fields: map[string]*Value{"name": String()}}
	personCopy := &Document{Fields: map[string]*Value{"name": String()}}
	post := &Document{Fields: map[string]*Value{"title": String()}}

	var u Union
	u = u.Add(person)
	u = u.Add(personCopy)
	u = u.Add(post)
	if len(u) != 2 {
		t.Fatalf("len(u) = %d, want 2 (structural dedup)", len(u))
	}
	if !u.Contains(personCopy) || !u.Contains(post) {
		t.Error("union missing expected variants")
	}
	if u.Empty() {
		t.Error("Empty() on non-empty union")
	}

	// order independence
	var v Union
	v = v.Add(post)
	v = v.Add(person)
	if !u.Equal(v) {
		t.Error("unions built in different order are not Equal")
	}
}
