// Package pred parses where-style predicate strings into narrow
// predicates.
//
// Predicates use expression syntax, with the field on the left:
//
//	age >= 21
//	meta.lang == "en"
//	state in ["active", "pending"]
//	tags contains "go"
//	containsAny(tags, ["go", "zig"])
//	has(nickname)
//
// Only the shape of the comparison survives parsing: literal values are
// reduced to their value types, which is all the narrowing algebra needs.
package pred

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"

	"github.com/signadot/docshape/debug"
	"github.com/signadot/docshape/narrow"
	"github.com/signadot/docshape/shape"
)

// ErrPredicate is returned for predicate expressions outside the supported
// grammar.
var ErrPredicate = errors.New("invalid predicate")

// Parse parses one predicate expression.
func Parse(src string) (narrow.Predicate, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return narrow.Predicate{}, fmt.Errorf("%w: %w", ErrPredicate, err)
	}
	p, err := fromNode(tree.Node)
	if err != nil {
		return narrow.Predicate{}, fmt.Errorf("%w: %q: %w", ErrPredicate, src, err)
	}
	if debug.Pred() {
		debug.Logf("pred %q -> %s %s (%d compare types)\n", src, p.Field, p.Op, len(p.Compare))
	}
	return p, nil
}

// ParseAll parses each expression in turn.
func ParseAll(srcs ...string) ([]narrow.Predicate, error) {
	res := make([]narrow.Predicate, 0, len(srcs))
	for _, src := range srcs {
		p, err := Parse(src)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, nil
}

var binaryOps = map[string]narrow.Op{
	"==": narrow.Eq,
	"!=": narrow.Ne,
	"<":  narrow.Lt,
	"<=": narrow.Le,
	">":  narrow.Gt,
	">=": narrow.Ge,
}

func fromNode(node ast.Node) (narrow.Predicate, error) {
	switch n := node.(type) {
	case *ast.BinaryNode:
		return fromBinary(n)
	case *ast.CallNode:
		return fromCall(n)
	}
	return narrow.Predicate{}, fmt.Errorf("unsupported expression %T", node)
}

func fromBinary(n *ast.BinaryNode) (narrow.Predicate, error) {
	field, err := fieldPath(n.Left)
	if err != nil {
		return narrow.Predicate{}, err
	}
	if op, ok := binaryOps[n.Operator]; ok {
		cv, err := valueShape(n.Right)
		if err != nil {
			return narrow.Predicate{}, err
		}
		return narrow.Predicate{Field: field, Op: op, Compare: []*shape.Value{cv}}, nil
	}
	switch n.Operator {
	case "in":
		cvs, err := valueShapes(n.Right)
		if err != nil {
			return narrow.Predicate{}, err
		}
		return narrow.Predicate{Field: field, Op: narrow.In, Compare: cvs}, nil
	case "contains":
		cv, err := valueShape(n.Right)
		if err != nil {
			return narrow.Predicate{}, err
		}
		return narrow.Predicate{Field: field, Op: narrow.ArrayContains, Compare: []*shape.Value{cv}}, nil
	}
	return narrow.Predicate{}, fmt.Errorf("unsupported operator %q", n.Operator)
}

func fromCall(n *ast.CallNode) (narrow.Predicate, error) {
	callee, ok := n.Callee.(*ast.IdentifierNode)
	if !ok {
		return narrow.Predicate{}, fmt.Errorf("unsupported call %T", n.Callee)
	}
	switch callee.Value {
	case "has":
		if len(n.Arguments) != 1 {
			return narrow.Predicate{}, fmt.Errorf("has wants 1 argument, got %d", len(n.Arguments))
		}
		field, err := fieldPath(n.Arguments[0])
		if err != nil {
			return narrow.Predicate{}, err
		}
		return narrow.Predicate{Field: field, Op: narrow.HasField}, nil
	case "containsAny":
		if len(n.Arguments) != 2 {
			return narrow.Predicate{}, fmt.Errorf("containsAny wants 2 arguments, got %d", len(n.Arguments))
		}
		field, err := fieldPath(n.Arguments[0])
		if err != nil {
			return narrow.Predicate{}, err
		}
		cvs, err := valueShapes(n.Arguments[1])
		if err != nil {
			return narrow.Predicate{}, err
		}
		return narrow.Predicate{Field: field, Op: narrow.ArrayContainsAny, Compare: cvs}, nil
	}
	return narrow.Predicate{}, fmt.Errorf("unsupported function %q", callee.Value)
}

// fieldPath renders the left-hand side of a predicate as a dotted field
// path.  Quoted strings are allowed so that fields that are not
// identifiers stay expressible.
func fieldPath(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.IdentifierNode:
		return n.Value, nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.MemberNode:
		base, err := fieldPath(n.Node)
		if err != nil {
			return "", err
		}
		prop, ok := n.Property.(*ast.StringNode)
		if !ok {
			return "", fmt.Errorf("dynamic member access in field path")
		}
		return base + "." + prop.Value, nil
	}
	return "", fmt.Errorf("field must be an identifier or dotted path, got %T", node)
}

// valueShape reduces a literal to its value type.
func valueShape(node ast.Node) (*shape.Value, error) {
	switch n := node.(type) {
	case *ast.StringNode:
		return shape.String(), nil
	case *ast.IntegerNode, *ast.FloatNode:
		return shape.Number(), nil
	case *ast.BoolNode:
		return shape.Bool(), nil
	case *ast.NilNode:
		return shape.Null(), nil
	case *ast.UnaryNode:
		if n.Operator == "-" || n.Operator == "+" {
			return valueShape(n.Node)
		}
		return nil, fmt.Errorf("unsupported unary %q", n.Operator)
	case *ast.ArrayNode:
		if len(n.Nodes) == 0 {
			return shape.ArrayOf(nil), nil
		}
		elem, err := valueShape(n.Nodes[0])
		if err != nil {
			return nil, err
		}
		return shape.ArrayOf(elem), nil
	case *ast.IdentifierNode:
		// bare type names stand for themselves: age == number
		if v, ok := typeName(n.Value); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("unsupported literal %T", node)
}

// valueShapes reduces an array literal to one value type per element.
func valueShapes(node ast.Node) ([]*shape.Value, error) {
	arr, ok := node.(*ast.ArrayNode)
	if !ok {
		v, err := valueShape(node)
		if err != nil {
			return nil, err
		}
		return []*shape.Value{v}, nil
	}
	res := make([]*shape.Value, 0, len(arr.Nodes))
	for _, el := range arr.Nodes {
		v, err := valueShape(el)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

func typeName(name string) (*shape.Value, bool) {
	if strings.HasSuffix(name, "_list") {
		if elem, ok := typeName(strings.TrimSuffix(name, "_list")); ok {
			return shape.ArrayOf(elem), true
		}
		return nil, false
	}
	for _, k := range shape.Kinds() {
		if k.String() == name {
			return &shape.Value{Kind: k}, true
		}
	}
	return nil, false
}
