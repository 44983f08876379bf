package engine

import "github.com/figmark/figmark/internal/figma"

// ResolveToken maps a node property to a CSS var() expression when the
// property is bound to a known design variable, and to the literal
// fallback otherwise. A missing or unresolved token is never an error,
// only a loss of indirection.
func ResolveToken(n *figma.Node, property, fallback string, ctx Context) string {
	if n.BoundVariables == nil {
		return fallback
	}
	refs, ok := n.BoundVariables[property]
	if !ok || len(refs) == 0 {
		return fallback
	}
	tok, ok := ctx.resolveVariable(refs[0].ID)
	if !ok || tok.Name == "" {
		return fallback
	}
	return "var(" + tok.Name + ", " + fallback + ")"
}
