package docshape

import (
	"github.com/signadot/docshape/dpath"
	"github.com/signadot/docshape/resolve"
	"github.com/signadot/docshape/shape"
)

// Typed pairs an already-fetched value with the shapes resolved at a
// path.
type Typed struct {
	Value  any
	Shapes shape.Union
}

// CastToSchema reinterprets v as whatever shape path resolves to, for
// either path kind.  This is a trusted escape hatch: v is not validated
// against the shapes, it is merely relabeled.
func (s *Store) CastToSchema(v any, path string) (*Typed, error) {
	p, err := dpath.Parse(path)
	if err != nil {
		return nil, err
	}
	var u shape.Union
	if p.Kind() == dpath.DocumentKind {
		u, err = resolve.Doc(s.tree, p)
	} else {
		u, err = resolve.Collection(s.tree, p)
	}
	if err != nil {
		return nil, err
	}
	return &Typed{Value: v, Shapes: u}, nil
}
