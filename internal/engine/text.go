package engine

import "github.com/figmark/figmark/internal/figma"

// ResolveText resolves a text node's typography into declarations and
// infers a markup tag from its size and weight.
func ResolveText(n *figma.Node, ctx Context, parentAutoLayout bool) ([]StyleDecl, string) {
	decls := textSizingDecls(n, parentAutoLayout)
	decls = append(decls, constraintDecls(n)...)

	style := n.Style
	if style == nil {
		style = &figma.TypeStyle{}
	}

	if style.FontFamily != "" {
		decls = append(decls, StyleDecl{"font-family",
			ResolveToken(n, "fontFamily", style.FontFamily, ctx)})
	}
	if style.FontSize > 0 {
		decls = append(decls, StyleDecl{"font-size",
			ResolveToken(n, "fontSize", fmtPx(style.FontSize), ctx)})
	}
	if style.FontWeight > 0 {
		decls = append(decls, StyleDecl{"font-weight",
			ResolveToken(n, "fontWeight", fmtNum(style.FontWeight), ctx)})
	}
	if style.LetterSpacing != 0 {
		decls = append(decls, StyleDecl{"letter-spacing", fmtPx(style.LetterSpacing)})
	}

	if lh, ok := lineHeightValue(style); ok {
		decls = append(decls, StyleDecl{"line-height", lh})
	}

	switch style.TextAlignHorizontal {
	case "CENTER":
		decls = append(decls, StyleDecl{"text-align", "center"})
	case "RIGHT":
		decls = append(decls, StyleDecl{"text-align", "right"})
	case "JUSTIFIED":
		decls = append(decls, StyleDecl{"text-align", "justify"})
	}

	if fill, ok := firstVisibleSolidFill(n.Fills); ok && fill.Color != nil {
		value := cssColor(*fill.Color, fill.PaintOpacity())
		decls = append(decls, StyleDecl{"color", ResolveToken(n, "fills", value, ctx)})
	}

	return decls, InferTag(style.FontSize, style.FontWeight)
}

// textSizingDecls mirrors the layout resolver's per-axis sizing but
// also honors the legacy textAutoResize field: WIDTH_AND_HEIGHT hugs
// both axes, HEIGHT hugs vertically only.
func textSizingDecls(n *figma.Node, parentAutoLayout bool) []StyleDecl {
	adjusted := *n
	if n.Style != nil {
		switch n.Style.TextAutoResize {
		case "WIDTH_AND_HEIGHT":
			adjusted.LayoutSizingHorizontal = sizingHug
			adjusted.LayoutSizingVertical = sizingHug
		case "HEIGHT":
			adjusted.LayoutSizingVertical = sizingHug
		}
	}
	return sizingDecls(&adjusted, parentAutoLayout)
}

// lineHeightValue applies the line-height precedence: percent of font
// size, then legacy percent, then the literal pixel value. Only one is
// ever emitted.
func lineHeightValue(style *figma.TypeStyle) (string, bool) {
	switch {
	case style.LineHeightPercentFontSize > 0:
		return fmtNum(round1(style.LineHeightPercentFontSize)) + "%", true
	case style.LineHeightPercent > 0:
		return fmtNum(round1(style.LineHeightPercent)) + "%", true
	case style.LineHeightPx > 0:
		return fmtPx(style.LineHeightPx), true
	}
	return "", false
}

// InferTag picks a heading tag from font size and weight. This is a
// presentation heuristic, not an accessibility guarantee.
func InferTag(fontSize, fontWeight float64) string {
	switch {
	case fontSize >= 48 || (fontSize >= 32 && fontWeight >= 600):
		return "h1"
	case fontSize >= 32 || (fontSize >= 24 && fontWeight >= 600):
		return "h2"
	case fontSize >= 24 || (fontSize >= 18 && fontWeight >= 600):
		return "h3"
	}
	return "p"
}

// firstVisibleSolidFill returns the first visible solid fill, used for
// text color.
func firstVisibleSolidFill(fills []figma.Paint) (figma.Paint, bool) {
	for _, fill := range fills {
		if fill.IsVisible() && fill.Type == figma.PaintSolid {
			return fill, true
		}
	}
	return figma.Paint{}, false
}
