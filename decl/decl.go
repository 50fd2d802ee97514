// Package decl builds a shape.Tree from a declaration document.
//
// Declarations are YAML (JSON is accepted, being a YAML subset):
//
//	define:
//	  person:
//	    $schema:
//	      name: string
//	      age: number
//	collections:
//	  users:
//	    "*":
//	      $schema:
//	        name: string
//	        tags: string[]
//	      posts:
//	        "*":
//	          $schema: {title: string}
//	  people:
//	    "*": {$ref: person}
//
// A collection maps document names to documents; the "*" key declares the
// generic document, the shape shared by any document name.  A document is
// a mapping holding the reserved $schema key (field name to value type)
// plus zero or more collection-name keys, or a {$ref: name} reference to a
// define entry.  References may form cycles; that is how self-referential
// trees are declared.
//
// Value types are "null", "bool", "number", "string", "timestamp",
// "bytes", "any", "map", a "[]"-suffixed element type, or a nested mapping
// of field name to value type.
package decl

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/signadot/docshape/debug"
	"github.com/signadot/docshape/shape"
)

// Reserved declaration keys.
const (
	DefineKey      = "define"
	CollectionsKey = "collections"
	SchemaKey      = "$schema"
	RefKey         = "$ref"
	GenericKey     = "*"
)

// ErrDecl is returned for declarations outside the grammar above.
var ErrDecl = errors.New("invalid declaration")

type config struct {
	patch []byte
}

type Option func(*config)

// WithPatch applies an RFC 6902 JSON patch to the declaration document
// before the tree is built.
func WithPatch(patch []byte) Option {
	return func(c *config) { c.patch = patch }
}

// Parse builds the declared tree from YAML data.
func Parse(data []byte, opts ...Option) (*shape.Tree, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.patch != nil {
		patched, err := applyPatch(data, cfg.patch)
		if err != nil {
			return nil, err
		}
		data = patched
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecl, err)
	}
	tree, err := build(raw)
	if err != nil {
		return nil, err
	}
	if debug.Decl() {
		debug.Logf("decl: %d top-level collections\n", len(tree.Collections))
	}
	return tree, nil
}

// ParseFile builds the declared tree from a YAML file.
func ParseFile(path string, opts ...Option) (*shape.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts...)
}
