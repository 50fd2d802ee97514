package resolve

import (
	"fmt"
	"strings"

	"github.com/signadot/docshape/debug"
	"github.com/signadot/docshape/dpath"
	"github.com/signadot/docshape/shape"
)

// Group answers "every collection named name, anywhere in the tree": it
// visits every document reachable from the root, ignoring path position,
// and unions the member shapes of every collection keyed by name.
//
// An empty result means no collection in the tree uses the name; that is a
// valid answer, not an error.  The traversal is bounded by a visited set
// on document identity, so it terminates on self-referential trees, whose
// reachable node set is finite even though their unfolding is not.
func Group(t *shape.Tree, name string) (shape.Union, error) {
	if strings.Contains(name, dpath.Separator) {
		return nil, fmt.Errorf("%w: collection group name %q contains %q",
			dpath.ErrMalformedPath, name, dpath.Separator)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: empty collection group name", dpath.ErrMalformedPath)
	}

	var u shape.Union
	seen := map[*shape.Document]bool{}
	var visit func(d *shape.Document)
	visit = func(d *shape.Document) {
		if d == nil || seen[d] {
			return
		}
		seen[d] = true
		for _, cname := range d.CollectionNames() {
			col := d.Collections[cname]
			if cname == name {
				u = u.AddAll(col.Members())
			}
			for _, m := range col.Members() {
				visit(m)
			}
		}
	}
	visit(t.Root())

	if debug.Group() {
		debug.Logf("collection group %q: %d variants over %d visited docs\n", name, len(u), len(seen))
	}
	return u, nil
}
