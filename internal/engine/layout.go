package engine

import "github.com/figmark/figmark/internal/figma"

// Per-axis sizing outcomes. Exactly one fires per axis per node: a node
// never gets both a fixed dimension and a flex-fill declaration on the
// same axis.
const (
	sizingFixed = "FIXED"
	sizingHug   = "HUG"
	sizingFill  = "FILL"
)

// constraintSentinel marks min/max values the design tool uses to mean
// "no constraint"; anything at or above it is not emitted.
const constraintSentinel = 10000.0

// ResolveLayout resolves the node's per-axis sizing and, when the node
// is an Auto-Layout container, its flex container properties.
// parentAutoLayout tells the resolver whether flex-fill declarations
// have a flex context to act in; without one, FILL degrades to the
// fixed bounding-box dimension.
func ResolveLayout(n *figma.Node, parentAutoLayout bool) []StyleDecl {
	decls := sizingDecls(n, parentAutoLayout)
	decls = append(decls, constraintDecls(n)...)
	decls = append(decls, autoLayoutDecls(n)...)
	return decls
}

// sizingDecls emits the per-axis sizing outcome: FILL stretches into
// the parent's flex context, HUG emits nothing (content-driven), and
// FIXED (the default when the field is absent) emits the bounding-box
// dimension rounded to one decimal place.
func sizingDecls(n *figma.Node, parentAutoLayout bool) []StyleDecl {
	var decls []StyleDecl

	horizontal := n.LayoutSizingHorizontal
	vertical := n.LayoutSizingVertical
	if !parentAutoLayout {
		if horizontal == sizingFill {
			horizontal = sizingFixed
		}
		if vertical == sizingFill {
			vertical = sizingFixed
		}
	}

	switch horizontal {
	case sizingFill:
		decls = append(decls,
			StyleDecl{"flex", "1"},
			StyleDecl{"align-self", "stretch"},
		)
	case sizingHug:
		// Width stays content-driven.
	default:
		if n.AbsoluteBoundingBox != nil && n.AbsoluteBoundingBox.Width > 0 {
			decls = append(decls, StyleDecl{"width", fmtPx(n.AbsoluteBoundingBox.Width)})
		}
	}

	switch vertical {
	case sizingFill:
		decls = append(decls, StyleDecl{"flex-grow", "1"})
	case sizingHug:
		// Height stays content-driven.
	default:
		if n.AbsoluteBoundingBox != nil && n.AbsoluteBoundingBox.Height > 0 {
			decls = append(decls, StyleDecl{"height", fmtPx(n.AbsoluteBoundingBox.Height)})
		}
	}

	return decls
}

// constraintDecls emits min/max constraints verbatim when present and
// below the unset sentinel.
func constraintDecls(n *figma.Node) []StyleDecl {
	var decls []StyleDecl
	if n.MinWidth > 0 && n.MinWidth < constraintSentinel {
		decls = append(decls, StyleDecl{"min-width", fmtPx(n.MinWidth)})
	}
	if n.MaxWidth > 0 && n.MaxWidth < constraintSentinel {
		decls = append(decls, StyleDecl{"max-width", fmtPx(n.MaxWidth)})
	}
	if n.MinHeight > 0 && n.MinHeight < constraintSentinel {
		decls = append(decls, StyleDecl{"min-height", fmtPx(n.MinHeight)})
	}
	if n.MaxHeight > 0 && n.MaxHeight < constraintSentinel {
		decls = append(decls, StyleDecl{"max-height", fmtPx(n.MaxHeight)})
	}
	return decls
}

var justifyContent = map[string]string{
	"MIN":           "flex-start",
	"CENTER":        "center",
	"MAX":           "flex-end",
	"SPACE_BETWEEN": "space-between",
}

var alignItems = map[string]string{
	"MIN":      "flex-start",
	"CENTER":   "center",
	"MAX":      "flex-end",
	"BASELINE": "baseline",
}

// autoLayoutDecls translates the Auto-Layout container fields into flex
// container declarations.
func autoLayoutDecls(n *figma.Node) []StyleDecl {
	if n.LayoutMode == "" || n.LayoutMode == "NONE" {
		return nil
	}

	direction := "row"
	if n.LayoutMode == "VERTICAL" {
		direction = "column"
	}

	decls := []StyleDecl{
		{"display", "flex"},
		{"flex-direction", direction},
	}

	justify, ok := justifyContent[n.PrimaryAxisAlignItems]
	if !ok {
		justify = "flex-start"
	}
	// space-between over a single child is visually undefined; the
	// source tool renders it centered, so the translation does too.
	if n.PrimaryAxisAlignItems == "SPACE_BETWEEN" && len(n.Children) == 1 {
		justify = "center"
	}
	decls = append(decls, StyleDecl{"justify-content", justify})

	align, ok := alignItems[n.CounterAxisAlignItems]
	if !ok {
		align = "stretch"
	}
	decls = append(decls, StyleDecl{"align-items", align})

	if n.ItemSpacing > 0 {
		decls = append(decls, StyleDecl{"gap", fmtPx(n.ItemSpacing)})
	}

	if n.PaddingTop != 0 || n.PaddingRight != 0 || n.PaddingBottom != 0 || n.PaddingLeft != 0 {
		decls = append(decls, StyleDecl{"padding",
			fmtPx(n.PaddingTop) + " " + fmtPx(n.PaddingRight) + " " +
				fmtPx(n.PaddingBottom) + " " + fmtPx(n.PaddingLeft)})
	}

	return decls
}
