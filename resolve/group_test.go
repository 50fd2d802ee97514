package resolve

import (
	"errors"
	"testing"

	"github.com/signadot/docshape/dpath"
	"github.com/signadot/docshape/shape"
)

func TestGroupAcrossDepths(t *testing.T) {
	// "posts" exists at depth 1 (top level) and depth 3 (under every
	// user); the group is the union of both
	tree := testTree()
	u, err := Group(tree, "posts")
	if err != nil {
		t.Fatal(err)
	}
	// {title}, {title,draft} — the user posts generic dedups with p1
	if len(u) != 2 {
		t.Fatalf("group posts: %d variants, want 2", len(u))
	}
	var hasDraft, hasPlain bool
	for _, d := range u {
		if d.Field("draft") != nil {
			hasDraft = true
		} else if d.Field("title") != nil {
			hasPlain = true
		}
	}
	if !hasDraft || !hasPlain {
		t.Errorf("group posts missing a depth's shapes: draft=%v plain=%v", hasDraft, hasPlain)
	}
}

func TestGroupAbsentName(t *testing.T) {
	u, err := Group(testTree(), "comments")
	if err != nil {
		t.Fatal(err)
	}
	if !u.Empty() {
		t.Errorf("group of absent name: %d variants, want empty", len(u))
	}
}

func TestGroupMalformedName(t *testing.T) {
	_, err := Group(testTree(), "a/b")
	if !errors.Is(err, dpath.ErrMalformedPath) {
		t.Fatalf("Group(a/b) error = %v, want %v", err, dpath.ErrMalformedPath)
	}
	_, err = Group(testTree(), "")
	if !errors.Is(err, dpath.ErrMalformedPath) {
		t.Fatalf("Group(\"\") error = %v, want %v", err, dpath.ErrMalformedPath)
	}
}

func TestGroupTerminatesOnSelfReferentialTree(t *testing.T) {
	node := &shape.Document{Fields: map[string]*shape.Value{"label": shape.String()}}
	node.Collections = map[string]*shape.Collection{"children": {Generic: node}}
	tree := &shape.Tree{Collections: map[string]*shape.Collection{
		"nodes": {Generic: node},
	}}

	u, err := Group(tree, "children")
	if err != nil {
		t.Fatal(err)
	}
	if len(u) != 1 {
		t.Fatalf("group children: %d variants, want 1", len(u))
	}
	if u[0] != node {
		t.Error("group children did not find the recursive member shape")
	}
}
