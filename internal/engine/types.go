// Package engine translates a design document tree into a markup tree.
//
// The engine is a pure, synchronous, per-node recursive transform: it
// performs no I/O and holds no mutable state of its own. Everything it
// needs — asset URLs, design tokens, component bindings — is handed in
// as read-only lookup tables on a Context, so identical inputs always
// produce identical output and independent translations can run in
// parallel without locking.
package engine

import "github.com/figmark/figmark/internal/figma"

// StyleDecl is a single CSS declaration. Declaration lists are ordered,
// not sets: when the same property appears twice, the later declaration
// wins, mirroring how repeated properties behave in a style attribute.
type StyleDecl struct {
	Property string
	Value    string
}

// MarkupNode is the engine's structured output unit, prior to text
// serialization by one of the flatteners.
type MarkupNode struct {
	Tag    string
	Styles []StyleDecl
	Attrs  map[string]string

	// Text carries the character content of text nodes.
	Text string

	// RawSVG carries pre-fetched inline vector markup, with width and
	// height attributes already rewritten for the node's sizing mode.
	RawSVG string

	// Children and Binding are mutually exclusive: a resolved component
	// binding replaces the node's subtree wholesale.
	Children []*MarkupNode
	Binding  *ComponentBinding
}

// ComponentBinding is a node replaced by an external target component:
// a normalized component name plus vocabulary-remapped props.
type ComponentBinding struct {
	SourceNodeID string
	Component    string
	Props        map[string]string

	// StyleOverrides are inline declarations the target component does
	// not express as props (currently the heading font-weight case).
	StyleOverrides []StyleDecl
}

// Token is a resolved design variable: a symbolic CSS custom property
// name and the literal value it falls back to.
type Token struct {
	Name    string
	Literal string
}

// AssetResolver supplies pre-fetched asset locations by node id. An
// empty return means the asset is missing; translation degrades to an
// empty box rather than failing.
type AssetResolver interface {
	ImageURL(nodeID string) string
	SVGContent(nodeID string) string
	VideoURL(nodeID string) string
	GIFURL(nodeID string) string
}

// TokenTable resolves a variable id to a design token.
type TokenTable interface {
	Resolve(variableID string) (Token, bool)
}

// BindingEntry is the raw, externally discovered mapping for one
// component-instance node.
type BindingEntry struct {
	Component string
	Props     map[string]string
}

// BindingTable supplies component bindings by node id, and the set of
// component names the target actually exports. A binding whose name is
// not a known export falls through to structural translation.
type BindingTable interface {
	Lookup(nodeID string) (BindingEntry, bool)
	KnownComponent(name string) bool
}

// Context bundles the three read-only lookup tables threaded through a
// compile pass. Nil fields behave as empty tables.
type Context struct {
	Assets   AssetResolver
	Tokens   TokenTable
	Bindings BindingTable
}

func (c Context) imageURL(id string) string {
	if c.Assets == nil {
		return ""
	}
	return c.Assets.ImageURL(id)
}

func (c Context) svgContent(id string) string {
	if c.Assets == nil {
		return ""
	}
	return c.Assets.SVGContent(id)
}

func (c Context) videoURL(id string) string {
	if c.Assets == nil {
		return ""
	}
	return c.Assets.VideoURL(id)
}

func (c Context) gifURL(id string) string {
	if c.Assets == nil {
		return ""
	}
	return c.Assets.GIFURL(id)
}

func (c Context) resolveVariable(id string) (Token, bool) {
	if c.Tokens == nil {
		return Token{}, false
	}
	return c.Tokens.Resolve(id)
}

// AssetTable is the map-backed AssetResolver used by the compiler and
// tests.
type AssetTable struct {
	Images map[string]string
	SVGs   map[string]string
	Videos map[string]string
	GIFs   map[string]string
}

// ImageURL implements AssetResolver.
func (t *AssetTable) ImageURL(nodeID string) string { return t.Images[nodeID] }

// SVGContent implements AssetResolver.
func (t *AssetTable) SVGContent(nodeID string) string { return t.SVGs[nodeID] }

// VideoURL implements AssetResolver.
func (t *AssetTable) VideoURL(nodeID string) string { return t.Videos[nodeID] }

// GIFURL implements AssetResolver.
func (t *AssetTable) GIFURL(nodeID string) string { return t.GIFs[nodeID] }

// TokenMap is the map-backed TokenTable.
type TokenMap map[string]Token

// Resolve implements TokenTable.
func (m TokenMap) Resolve(variableID string) (Token, bool) {
	tok, ok := m[variableID]
	return tok, ok
}

// BindingMap is the map-backed BindingTable. Exports is the target's
// known-exports set; a nil Exports map accepts every component name.
type BindingMap struct {
	Entries map[string]BindingEntry
	Exports map[string]bool
}

// Lookup implements BindingTable.
func (m *BindingMap) Lookup(nodeID string) (BindingEntry, bool) {
	entry, ok := m.Entries[nodeID]
	return entry, ok
}

// KnownComponent implements BindingTable.
func (m *BindingMap) KnownComponent(name string) bool {
	if m.Exports == nil {
		return true
	}
	return m.Exports[name]
}

// nodeAttrs builds the base attribute map every emitted node carries.
func nodeAttrs(n *figma.Node) map[string]string {
	return map[string]string{"data-node-id": n.ID}
}
