package decl

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

// applyPatch overlays an RFC 6902 patch on a declaration.  Both the
// declaration and the patch may be YAML; they are taken through JSON for
// the patch application and the result is handed back to the YAML
// parser, a superset of JSON.
func applyPatch(data, patch []byte) ([]byte, error) {
	docJSON, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecl, err)
	}
	patchJSON, err := yaml.YAMLToJSON(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: patch: %w", ErrDecl, err)
	}
	p, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: patch: %w", ErrDecl, err)
	}
	patched, err := p.Apply(docJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: patch: %w", ErrDecl, err)
	}
	return patched, nil
}
