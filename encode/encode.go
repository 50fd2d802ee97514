// Package encode renders document shapes and shape unions as indented
// text, optionally colored for terminals.
//
// A document renders as its fields followed by its sub-collections, the
// latter prefixed with '/' to keep the two namespaces apart:
//
//	name: string
//	tags: string[]
//	/posts:
//	  {*}:
//	    title: string
//
// Self-referential shapes render each revisited document as "...".
package encode

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/docshape/shape"
)

type encState struct {
	colors *Colors
	indent string
	seen   map[*shape.Document]bool
}

type EncodeOption func(*encState)

// EncodeColors sets the palette; the default renders plain text.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}

// Indent sets the indent unit, two spaces by default.
func Indent(s string) EncodeOption {
	return func(es *encState) { es.indent = s }
}

// Document renders one document shape.
func Document(w io.Writer, d *shape.Document, opts ...EncodeOption) error {
	es := newEncState(opts)
	return es.document(w, d, 0)
}

// Union renders every variant of u, separated by "---" lines.  The empty
// union renders as "(no match)".
func Union(w io.Writer, u shape.Union, opts ...EncodeOption) error {
	es := newEncState(opts)
	if u.Empty() {
		_, err := fmt.Fprintln(w, es.colors.Sep("(no match)"))
		return err
	}
	for i, d := range u {
		if i > 0 {
			if _, err := fmt.Fprintln(w, es.colors.Sep("---")); err != nil {
				return err
			}
		}
		es.seen = map[*shape.Document]bool{}
		if err := es.document(w, d, 0); err != nil {
			return err
		}
	}
	return nil
}

// String renders u with plain colors into a string, for diffing and
// tests.
func String(u shape.Union, opts ...EncodeOption) string {
	buf := &strings.Builder{}
	if err := Union(buf, u, opts...); err != nil {
		return fmt.Sprintf("encode error: %v", err)
	}
	return buf.String()
}

func newEncState(opts []EncodeOption) *encState {
	es := &encState{
		colors: NoColors(),
		indent: "  ",
		seen:   map[*shape.Document]bool{},
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *encState) document(w io.Writer, d *shape.Document, depth int) error {
	if d == nil {
		return nil
	}
	if es.seen[d] {
		_, err := fmt.Fprintf(w, "%s%s\n", es.pad(depth), es.colors.Sep("..."))
		return err
	}
	es.seen[d] = true
	defer delete(es.seen, d)

	if len(d.Fields) == 0 && len(d.Collections) == 0 {
		if _, err := fmt.Fprintf(w, "%s%s\n", es.pad(depth), es.colors.Type("{}")); err != nil {
			return err
		}
		return nil
	}
	for _, name := range d.FieldNames() {
		if err := es.field(w, name, d.Fields[name], depth); err != nil {
			return err
		}
	}
	for _, name := range d.CollectionNames() {
		if _, err := fmt.Fprintf(w, "%s%s:\n", es.pad(depth), es.colors.ColName("/"+name)); err != nil {
			return err
		}
		if err := es.collection(w, d.Collections[name], depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (es *encState) collection(w io.Writer, c *shape.Collection, depth int) error {
	for _, name := range slices.Sorted(maps.Keys(c.Docs)) {
		if _, err := fmt.Fprintf(w, "%s%s:\n", es.pad(depth), es.colors.Field(name)); err != nil {
			return err
		}
		if err := es.document(w, c.Docs[name], depth+1); err != nil {
			return err
		}
	}
	if c.Generic != nil {
		if _, err := fmt.Fprintf(w, "%s%s:\n", es.pad(depth), es.colors.Field("{*}")); err != nil {
			return err
		}
		if err := es.document(w, c.Generic, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (es *encState) field(w io.Writer, name string, v *shape.Value, depth int) error {
	if v != nil && v.Kind == shape.MapKind && v.Fields != nil {
		if _, err := fmt.Fprintf(w, "%s%s:\n", es.pad(depth), es.colors.Field(name)); err != nil {
			return err
		}
		for _, sub := range slices.Sorted(maps.Keys(v.Fields)) {
			if err := es.field(w, sub, v.Fields[sub], depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintf(w, "%s%s: %s\n", es.pad(depth), es.colors.Field(name), es.colors.Type(ValueString(v)))
	return err
}

func (es *encState) pad(depth int) string {
	return strings.Repeat(es.indent, depth)
}

// ValueString returns the compact type-name form of a value type, e.g.
// "string", "string[]", "map".
func ValueString(v *shape.Value) string {
	if v == nil {
		return shape.AnyKind.String()
	}
	switch v.Kind {
	case shape.ArrayKind:
		return ValueString(v.Elem) + "[]"
	case shape.MapKind:
		if v.Fields == nil {
			return "map"
		}
		parts := make([]string, 0, len(v.Fields))
		for _, name := range slices.Sorted(maps.Keys(v.Fields)) {
			parts = append(parts, name+": "+ValueString(v.Fields[name]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return v.Kind.String()
}
