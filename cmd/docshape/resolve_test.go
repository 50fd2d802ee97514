package main

import (
	"errors"
	"testing"

	"github.com/signadot/docshape/dpath"
	"github.com/signadot/docshape/shape"
)

func TestResolveAnyDispatchesOnParity(t *testing.T) {
	tree := &shape.Tree{Collections: map[string]*shape.Collection{
		"users": {Generic: &shape.Document{Fields: map[string]*shape.Value{
			"name": shape.String(),
		}}},
	}}

	u, err := resolveAny(tree, "users")
	if err != nil {
		t.Fatal(err)
	}
	if len(u) != 1 {
		t.Errorf("collection path: %d variants, want 1", len(u))
	}
	u, err = resolveAny(tree, "users/alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(u) != 1 {
		t.Errorf("document path: %d variants, want 1", len(u))
	}
	if _, err := resolveAny(tree, "users//x"); !errors.Is(err, dpath.ErrMalformedPath) {
		t.Errorf("malformed path error = %v, want %v", err, dpath.ErrMalformedPath)
	}
}
