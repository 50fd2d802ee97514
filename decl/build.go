package decl

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/docshape/shape"
)

type builder struct {
	// defs holds a placeholder document per define entry, allocated before
	// any body is built so that $ref cycles resolve to stable pointers.
	defs map[string]*shape.Document
}

func build(raw map[string]any) (*shape.Tree, error) {
	b := &builder{defs: map[string]*shape.Document{}}

	defs, err := section(raw, DefineKey)
	if err != nil {
		return nil, err
	}
	for name := range defs {
		b.defs[name] = &shape.Document{}
	}
	for _, name := range slices.Sorted(maps.Keys(defs)) {
		if err := b.fillDocument(b.defs[name], defs[name], DefineKey+"."+name); err != nil {
			return nil, err
		}
	}

	cols, err := section(raw, CollectionsKey)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no %q section", ErrDecl, CollectionsKey)
	}
	tree := &shape.Tree{Collections: map[string]*shape.Collection{}}
	for _, name := range slices.Sorted(maps.Keys(cols)) {
		col, err := b.buildCollection(cols[name], name)
		if err != nil {
			return nil, err
		}
		tree.Collections[name] = col
	}

	for key := range raw {
		if key != DefineKey && key != CollectionsKey {
			return nil, fmt.Errorf("%w: unknown top-level key %q", ErrDecl, key)
		}
	}
	return tree, nil
}

func section(raw map[string]any, key string) (map[string]any, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a mapping, got %T", ErrDecl, key, v)
	}
	return m, nil
}

func (b *builder) buildCollection(v any, at string) (*shape.Collection, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: collection %q must be a mapping, got %T", ErrDecl, at, v)
	}
	col := &shape.Collection{}
	for _, name := range slices.Sorted(maps.Keys(m)) {
		doc, err := b.buildDocument(m[name], at+"."+name)
		if err != nil {
			return nil, err
		}
		if name == GenericKey {
			col.Generic = doc
			continue
		}
		if strings.Contains(name, "/") {
			return nil, fmt.Errorf("%w: document name %q in %q contains %q", ErrDecl, name, at, "/")
		}
		if col.Docs == nil {
			col.Docs = map[string]*shape.Document{}
		}
		col.Docs[name] = doc
	}
	return col, nil
}

func (b *builder) buildDocument(v any, at string) (*shape.Document, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: document %q must be a mapping, got %T", ErrDecl, at, v)
	}
	if ref, ok := m[RefKey]; ok {
		name, ok := ref.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q: %s must be a string", ErrDecl, at, RefKey)
		}
		doc, ok := b.defs[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q references undefined %q", ErrDecl, at, name)
		}
		if len(m) != 1 {
			return nil, fmt.Errorf("%w: %q mixes %s with other keys", ErrDecl, at, RefKey)
		}
		return doc, nil
	}
	doc := &shape.Document{}
	if err := b.fillDocument(doc, v, at); err != nil {
		return nil, err
	}
	return doc, nil
}

func (b *builder) fillDocument(doc *shape.Document, v any, at string) error {
	m, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: document %q must be a mapping, got %T", ErrDecl, at, v)
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		if key == SchemaKey {
			fields, err := b.buildFields(m[key], at)
			if err != nil {
				return err
			}
			doc.Fields = fields
			continue
		}
		if strings.Contains(key, "/") {
			return fmt.Errorf("%w: collection name %q in %q contains %q", ErrDecl, key, at, "/")
		}
		col, err := b.buildCollection(m[key], at+"."+key)
		if err != nil {
			return err
		}
		if doc.Collections == nil {
			doc.Collections = map[string]*shape.Collection{}
		}
		doc.Collections[key] = col
	}
	return nil
}

func (b *builder) buildFields(v any, at string) (map[string]*shape.Value, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q: %s must be a mapping, got %T", ErrDecl, at, SchemaKey, v)
	}
	fields := make(map[string]*shape.Value, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		val, err := b.buildValue(m[name], at+"."+name)
		if err != nil {
			return nil, err
		}
		fields[name] = val
	}
	return fields, nil
}

func (b *builder) buildValue(v any, at string) (*shape.Value, error) {
	switch x := v.(type) {
	case string:
		return parseTypeName(x, at)
	case map[string]any:
		fields, err := b.buildFields(x, at)
		if err != nil {
			return nil, err
		}
		return shape.MapOf(fields), nil
	}
	return nil, fmt.Errorf("%w: %q: value type must be a string or mapping, got %T", ErrDecl, at, v)
}

func parseTypeName(name string, at string) (*shape.Value, error) {
	if elem, ok := strings.CutSuffix(name, "[]"); ok {
		if elem == "" {
			return shape.ArrayOf(nil), nil
		}
		ev, err := parseTypeName(elem, at)
		if err != nil {
			return nil, err
		}
		return shape.ArrayOf(ev), nil
	}
	if name == "map" {
		return shape.MapOf(nil), nil
	}
	for _, k := range shape.Kinds() {
		if k == shape.ArrayKind || k == shape.MapKind {
			continue
		}
		if k.String() == name {
			return &shape.Value{Kind: k}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q: unknown value type %q", ErrDecl, at, name)
}
