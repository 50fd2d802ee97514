package docshape

import (
	"context"
	"errors"
	"testing"

	"github.com/signadot/docshape/decl"
	"github.com/signadot/docshape/narrow"
	"github.com/signadot/docshape/shape"
)

const testDecl = `
collections:
  users:
    "*":
      $schema: {name: string, age: number, tags: "string[]"}
      posts:
        "*":
          $schema: {title: string, draft: bool}
  rooms:
    lobby:
      $schema: {topic: string}
`

// memNode is an in-memory backend: collection and document names
// alternate down the tree, so one child namespace per node suffices.
type memNode struct {
	name string
	kids map[string]*memNode
}

func mem(name string, kids ...*memNode) *memNode {
	n := &memNode{name: name, kids: map[string]*memNode{}}
	for _, k := range kids {
		n.kids[k.name] = k
	}
	return n
}

func (n *memNode) Child(parent Handle, kind ChildKind, name string) (Handle, error) {
	p := parent.(*memNode)
	c, ok := p.kids[name]
	if !ok {
		return nil, errors.New("no such " + kind.String() + ": " + name)
	}
	return c, nil
}

func (n *memNode) Children(_ context.Context, parent Handle) ([]string, error) {
	p := parent.(*memNode)
	names := make([]string, 0, len(p.kids))
	for name := range p.kids {
		names = append(names, name)
	}
	return names, nil
}

func testStore(t *testing.T) *Store {
	t.Helper()
	tree, err := decl.Parse([]byte(testDecl))
	if err != nil {
		t.Fatal(err)
	}
	root := mem("",
		mem("users",
			mem("alice",
				mem("posts", mem("hello")))),
		mem("rooms", mem("lobby")),
	)
	return New(tree, root, root)
}

func TestDocPath(t *testing.T) {
	s := testStore(t)
	r, err := s.DocPath("users/alice")
	if err != nil {
		t.Fatal(err)
	}
	u := r.Shapes()
	if len(u) != 1 || u[0].Field("age") == nil {
		t.Fatalf("users/alice shapes = %d variants", len(u))
	}
	h, err := r.Handle()
	if err != nil {
		t.Fatal(err)
	}
	if h.(*memNode).name != "alice" {
		t.Errorf("handle = %q, want alice", h.(*memNode).name)
	}
}

func TestDocPathKindMismatch(t *testing.T) {
	s := testStore(t)
	if _, err := s.DocPath("users"); !errors.Is(err, ErrPathKind) {
		t.Errorf("DocPath(users) error = %v, want %v", err, ErrPathKind)
	}
	if _, err := s.CollectionPath("users/alice"); !errors.Is(err, ErrPathKind) {
		t.Errorf("CollectionPath(users/alice) error = %v, want %v", err, ErrPathKind)
	}
}

func TestWildcardHasNoHandle(t *testing.T) {
	s := testStore(t)
	r, err := s.DocPath("users/{user}")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Shapes()) != 1 {
		t.Errorf("users/{user} shapes = %d variants", len(r.Shapes()))
	}
	if _, err := r.Handle(); !errors.Is(err, ErrWildcard) {
		t.Errorf("wildcard Handle error = %v, want %v", err, ErrWildcard)
	}
}

func TestNoBackend(t *testing.T) {
	tree, err := decl.Parse([]byte(testDecl))
	if err != nil {
		t.Fatal(err)
	}
	s := New(tree, nil, nil)
	r, err := s.DocPath("users/alice")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Handle(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Handle error = %v, want %v", err, ErrNoBackend)
	}
	if _, err := s.Verify(context.Background(), 4); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Verify error = %v, want %v", err, ErrNoBackend)
	}
}

func TestDescend(t *testing.T) {
	s := testStore(t)
	r, err := s.DocPath("users/alice")
	if err != nil {
		t.Fatal(err)
	}
	posts, err := r.Collection("posts")
	if err != nil {
		t.Fatal(err)
	}
	if posts.Path().String() != "users/alice/posts" {
		t.Errorf("descended path = %s", posts.Path())
	}
	hello, err := posts.Doc("hello")
	if err != nil {
		t.Fatal(err)
	}
	u := hello.Shapes()
	if len(u) != 1 || u[0].Field("title") == nil {
		t.Errorf("post shapes = %d variants", len(u))
	}
	if _, err := posts.Doc("a/b"); !errors.Is(err, ErrMalformedPath) {
		t.Errorf("Doc(a/b) error = %v, want %v", err, ErrMalformedPath)
	}
}

func TestCollectionGroup(t *testing.T) {
	s := testStore(t)
	g, err := s.CollectionGroup("posts")
	if err != nil {
		t.Fatal(err)
	}
	if g.Group() != "posts" || len(g.Shapes()) != 1 {
		t.Fatalf("group posts = %q, %d variants", g.Group(), len(g.Shapes()))
	}
	if _, err := g.Handle(); !errors.Is(err, ErrWildcard) {
		t.Errorf("group Handle error = %v, want %v", err, ErrWildcard)
	}
	if _, err := g.Doc("hello"); !errors.Is(err, ErrMalformedPath) {
		t.Errorf("group Doc error = %v, want %v", err, ErrMalformedPath)
	}
}

func TestQueryChain(t *testing.T) {
	s := testStore(t)
	users, err := s.CollectionPath("users")
	if err != nil {
		t.Fatal(err)
	}
	base := users.Query()

	q := base.Where("age", narrow.Eq, shape.Number())
	if !q.Shapes().Equal(users.Shapes()) {
		t.Error("compatible predicate changed the shapes")
	}
	q, err = q.WhereExpr(`tags contains "go"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(q.Predicates()) != 2 {
		t.Errorf("predicates = %d, want 2", len(q.Predicates()))
	}
	if len(base.Predicates()) != 0 {
		t.Error("chaining mutated the base query")
	}

	empty := base.Where("age", narrow.Eq, shape.String())
	if !empty.Shapes().Empty() {
		t.Error("incompatible predicate did not empty the shapes")
	}

	sel := q.Select("name")
	if got := sel.Selected(); len(got) != 1 || got[0] != "name" {
		t.Errorf("Selected = %v", got)
	}
	u := sel.Shapes()
	if len(u) != 1 || len(u[0].Fields) != 1 || u[0].Field("name") == nil {
		t.Errorf("projected shapes = %v", u)
	}
	if sel.Ref() != users {
		t.Error("Ref lost the collection reference")
	}
}

func TestWhereShorthand(t *testing.T) {
	s := testStore(t)
	users, err := s.CollectionPath("users")
	if err != nil {
		t.Fatal(err)
	}
	q := users.Where("name", narrow.HasField)
	if len(q.Predicates()) != 1 || q.Shapes().Empty() {
		t.Error("Where shorthand did not narrow")
	}
}

func TestCastToSchema(t *testing.T) {
	s := testStore(t)
	v := map[string]any{"name": "alice", "age": 30}
	typed, err := s.CastToSchema(v, "users/alice")
	if err != nil {
		t.Fatal(err)
	}
	if typed.Value == nil || len(typed.Shapes) != 1 {
		t.Errorf("cast = %v, %d variants", typed.Value, len(typed.Shapes))
	}
	// collection paths cast to the member shapes
	typed, err = s.CastToSchema([]any{v}, "users")
	if err != nil {
		t.Fatal(err)
	}
	if len(typed.Shapes) != 1 {
		t.Errorf("collection cast = %d variants", len(typed.Shapes))
	}
	if _, err := s.CastToSchema(v, "//"); !errors.Is(err, ErrMalformedPath) {
		t.Errorf("cast error = %v, want %v", err, ErrMalformedPath)
	}
}

func TestVerify(t *testing.T) {
	s := testStore(t)
	problems, err := s.Verify(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 0 {
		t.Errorf("verify problems = %v, want none", problems)
	}
}

func TestVerifyReportsMissing(t *testing.T) {
	tree, err := decl.Parse([]byte(testDecl))
	if err != nil {
		t.Fatal(err)
	}
	// backend without rooms/lobby and without alice's posts collection
	root := mem("",
		mem("users", mem("alice")),
		mem("rooms"),
	)
	s := New(tree, root, root)
	problems, err := s.Verify(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{
		"collection users/alice/posts missing from backend": true,
		"document rooms/lobby missing from backend":         true,
	}
	if len(problems) != len(want) {
		t.Fatalf("problems = %v, want %d", problems, len(want))
	}
	for _, p := range problems {
		if !want[p] {
			t.Errorf("unexpected problem %q", p)
		}
	}
}

func TestVerifyDepthBound(t *testing.T) {
	tree, err := decl.Parse([]byte(testDecl))
	if err != nil {
		t.Fatal(err)
	}
	// the missing posts collection sits one collection level down
	root := mem("",
		mem("users", mem("alice")),
		mem("rooms", mem("lobby")),
	)
	s := New(tree, root, root)
	problems, err := s.Verify(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 0 {
		t.Errorf("depth-bounded verify problems = %v, want none", problems)
	}
}
