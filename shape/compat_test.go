package shape

import "testing"

func TestAssignableTo(t *testing.T) {
	openMap := MapOf(nil)
	declared := MapOf(map[string]*Value{"lang": String(), "n": Number()})
	narrower := MapOf(map[string]*Value{"lang": String()})

	tests := []struct {
		name  string
		v, to *Value
		want  bool
	}{
		{"same scalar", String(), String(), true},
		{"different scalar", String(), Number(), false},
		{"to any", String(), Any(), true},
		{"any to scalar", Any(), String(), false},
		{"nil is any", String(), nil, true},
		{"array covariant", ArrayOf(String()), ArrayOf(String()), true},
		{"array elem mismatch", ArrayOf(String()), ArrayOf(Number()), false},
		{"array to untyped array", ArrayOf(String()), ArrayOf(nil), true},
		{"untyped array to typed", ArrayOf(nil), ArrayOf(String()), false},
		{"declared map to open", declared, openMap, true},
		{"open map to declared", openMap, declared, false},
		{"wider map to narrower", declared, narrower, true},
		{"narrower map to wider", narrower, declared, false},
		{"map to scalar", openMap, String(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.AssignableTo(tt.to); got != tt.want {
				t.Errorf("AssignableTo = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"same kind", Number(), Number(), true},
		{"different kinds", Number(), String(), false},
		{"any either side", Any(), Number(), true},
		{"number vs any", Number(), Any(), true},
		{"typed vs untyped array", ArrayOf(String()), ArrayOf(nil), true},
		{"arrays of different elems", ArrayOf(String()), ArrayOf(Number()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compatible(tt.a, tt.b); got != tt.want {
				t.Errorf("Compatible = %v, want %v", got, tt.want)
			}
			if got := Compatible(tt.b, tt.a); got != tt.want {
				t.Errorf("Compatible reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollectionDoc(t *testing.T) {
	alice := &Document{Fields: map[string]*Value{"name": String()}}
	generic := &Document{Fields: map[string]*Value{"name": String(), "age": Number()}}
	col := &Collection{
		Docs:    map[string]*Document{"alice": alice},
		Generic: generic,
	}

	if col.Doc("alice") != alice {
		t.Error("literal lookup did not return literal declaration")
	}
	// the generic key means any document name
	if col.Doc("bob") != generic {
		t.Error("lookup of undeclared name did not fall back to generic")
	}
	noGeneric := &Collection{Docs: map[string]*Document{"alice": alice}}
	if noGeneric.Doc("bob") != nil {
		t.Error("lookup of undeclared name without generic should be nil")
	}

	members := col.Members()
	if len(members) != 2 || members[0] != alice || members[1] != generic {
		t.Errorf("Members() = %v, want [alice generic]", members)
	}
}
