package dpath

import (
	"fmt"
	"strings"
)

// Separator splits path strings into segments.
const Separator = "/"

// Segment is one step of a path: either a literal name or a wildcard.
// For a wildcard, Name holds the text between the braces.
type Segment struct {
	Name string
	Wild bool
}

func (s Segment) String() string {
	if s.Wild {
		return "{" + s.Name + "}"
	}
	return s.Name
}

// Kind tells whether a path denotes a collection or a document.  It is
// determined by segment count parity alone.
type Kind int

const (
	CollectionKind Kind = iota + 1
	DocumentKind
)

func (k Kind) String() string {
	switch k {
	case CollectionKind:
		return "collection"
	case DocumentKind:
		return "document"
	}
	return "invalid"
}

// Path is a parsed, validated sequence of segments.  Segments alternate
// collection/document/collection/..., starting at a collection.
type Path []Segment

// Kind returns CollectionKind for odd segment counts and DocumentKind for
// even ones.
func (p Path) Kind() Kind {
	if len(p)%2 == 1 {
		return CollectionKind
	}
	return DocumentKind
}

// Wild reports whether any segment of p is a wildcard.
func (p Path) Wild() bool {
	for _, seg := range p {
		if seg.Wild {
			return true
		}
	}
	return false
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = seg.String()
	}
	return strings.Join(parts, Separator)
}

// Append returns p extended by the given literal names, without modifying
// p.
func (p Path) Append(names ...string) (Path, error) {
	res := make(Path, len(p), len(p)+len(names))
	copy(res, p)
	for _, name := range names {
		seg, err := parseSegment(name)
		if err != nil {
			return nil, err
		}
		res = append(res, seg)
	}
	return res, nil
}

// Parse parses a '/'-separated path string.  The empty string and paths
// with empty segments are malformed.
func Parse(path string) (Path, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrMalformedPath)
	}
	return FromSegments(strings.Split(path, Separator))
}

// FromSegments parses an already split segment list.  A literal segment
// containing the separator is malformed: it can only arise when the caller
// split the path itself and got it wrong, so no partial result is
// returned.
func FromSegments(parts []string) (Path, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrMalformedPath)
	}
	res := make(Path, 0, len(parts))
	for _, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return nil, err
		}
		res = append(res, seg)
	}
	return res, nil
}

func parseSegment(s string) (Segment, error) {
	if s == "" {
		return Segment{}, fmt.Errorf("%w: empty segment", ErrMalformedPath)
	}
	if strings.Contains(s, Separator) {
		return Segment{}, fmt.Errorf("%w: segment %q contains %q", ErrMalformedPath, s, Separator)
	}
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return Segment{Name: s[1 : len(s)-1], Wild: true}, nil
	}
	return Segment{Name: s}, nil
}
