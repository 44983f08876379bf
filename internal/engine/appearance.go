package engine

import "github.com/figmark/figmark/internal/figma"

// ResolveAppearance composites the node's fills, strokes, effects,
// corner radius, and opacity into style declarations. Individual
// malformed entries are dropped; the resolver never fails.
func ResolveAppearance(n *figma.Node, ctx Context) []StyleDecl {
	var decls []StyleDecl

	decls = append(decls, backgroundDecls(n, ctx)...)
	decls = append(decls, cornerRadiusDecls(n)...)
	decls = append(decls, strokeDecls(n)...)
	decls = append(decls, effectDecls(n)...)

	if n.Opacity != nil && *n.Opacity < 1 {
		decls = append(decls, StyleDecl{"opacity", fmtNum(*n.Opacity)})
	}

	return decls
}

// backgroundDecls resolves the background from the first visible fill.
// When the fills array is empty, the legacy backgroundColor field is a
// fallback — fills always win when both exist, matching the source
// tool's observed behavior.
func backgroundDecls(n *figma.Node, ctx Context) []StyleDecl {
	fill, ok := firstVisibleFill(n.Fills)
	if !ok {
		if n.BackgroundColor != nil {
			return []StyleDecl{{"background-color", cssColor(*n.BackgroundColor, 1)}}
		}
		return nil
	}

	switch fill.Type {
	case figma.PaintSolid:
		if fill.Color == nil {
			return nil
		}
		value := cssColor(*fill.Color, fill.PaintOpacity())
		return []StyleDecl{{"background-color", ResolveToken(n, "fills", value, ctx)}}

	case figma.PaintImage:
		return imageBackgroundDecls(n, fill, ctx)

	case figma.PaintGradientLinear, figma.PaintGradientRadial,
		figma.PaintGradientAngular, figma.PaintGradientDiamond:
		if css, ok := gradientCSS(fill); ok {
			return []StyleDecl{{"background", css}}
		}
		return nil

	case figma.PaintVideo:
		// Video fills are handled upstream by the media classifier and
		// never reach background composition.
		return nil
	}

	return nil
}

// imageBackgroundDecls emits a background-image for an IMAGE fill,
// choosing size and position from the fill's scale mode. A missing
// asset URL emits nothing: an empty box, not an error.
func imageBackgroundDecls(n *figma.Node, fill figma.Paint, ctx Context) []StyleDecl {
	url := ctx.imageURL(n.ID)
	if url == "" {
		return nil
	}

	decls := []StyleDecl{{"background-image", "url(" + url + ")"}}
	switch fill.ScaleMode {
	case "FIT":
		decls = append(decls,
			StyleDecl{"background-size", "contain"},
			StyleDecl{"background-repeat", "no-repeat"},
			StyleDecl{"background-position", "center"},
		)
	case "TILE":
		decls = append(decls,
			StyleDecl{"background-size", "auto"},
			StyleDecl{"background-repeat", "repeat"},
		)
	default:
		decls = append(decls,
			StyleDecl{"background-size", "cover"},
			StyleDecl{"background-position", "center"},
		)
	}
	return decls
}

// cornerRadiusDecls emits the uniform scalar radius or the 4-corner
// shorthand when the corners differ.
func cornerRadiusDecls(n *figma.Node) []StyleDecl {
	if len(n.RectangleCornerRadii) == 4 {
		r := n.RectangleCornerRadii
		if r[0] != r[1] || r[1] != r[2] || r[2] != r[3] {
			return []StyleDecl{{"border-radius",
				fmtPx(r[0]) + " " + fmtPx(r[1]) + " " + fmtPx(r[2]) + " " + fmtPx(r[3])}}
		}
		if r[0] > 0 {
			return []StyleDecl{{"border-radius", fmtPx(r[0])}}
		}
		return nil
	}
	if n.CornerRadius > 0 {
		return []StyleDecl{{"border-radius", fmtPx(n.CornerRadius)}}
	}
	return nil
}

// strokeDecls turns the first visible solid stroke into a border.
// Gradient and image strokes have no inline-style representation and
// are dropped.
func strokeDecls(n *figma.Node) []StyleDecl {
	for _, stroke := range n.Strokes {
		if !stroke.IsVisible() || stroke.Type != figma.PaintSolid || stroke.Color == nil {
			continue
		}
		weight := n.StrokeWeight
		if weight <= 0 {
			weight = 1
		}
		return []StyleDecl{{"border",
			fmtPx(weight) + " solid " + cssColor(*stroke.Color, stroke.PaintOpacity())}}
	}
	return nil
}

// effectDecls maps each visible effect independently, concatenated in
// array order. Multiple shadows do not merge: under declaration-order
// semantics only the last box-shadow written survives, matching the
// behavior of repeated same-property style attributes.
func effectDecls(n *figma.Node) []StyleDecl {
	var decls []StyleDecl
	for _, effect := range n.Effects {
		if !effect.IsVisible() {
			continue
		}
		switch effect.Type {
		case figma.EffectDropShadow:
			decls = append(decls, StyleDecl{"box-shadow", shadowValue(effect, false)})
		case figma.EffectInnerShadow:
			decls = append(decls, StyleDecl{"box-shadow", shadowValue(effect, true)})
		case figma.EffectLayerBlur:
			decls = append(decls, StyleDecl{"filter", "blur(" + fmtPx(effect.Radius) + ")"})
		case figma.EffectBackgroundBlur:
			decls = append(decls, StyleDecl{"backdrop-filter", "blur(" + fmtPx(effect.Radius) + ")"})
		}
	}
	return decls
}

func shadowValue(e figma.Effect, inset bool) string {
	color := "rgba(0, 0, 0, 0.25)"
	if e.Color != nil {
		color = cssColor(*e.Color, 1)
	}
	value := fmtPx(e.Offset.X) + " " + fmtPx(e.Offset.Y) + " " + fmtPx(e.Radius)
	if e.Spread != 0 {
		value += " " + fmtPx(e.Spread)
	}
	value += " " + color
	if inset {
		return "inset " + value
	}
	return value
}

// firstVisibleFill returns the fill that determines the background.
func firstVisibleFill(fills []figma.Paint) (figma.Paint, bool) {
	for _, fill := range fills {
		if fill.IsVisible() {
			return fill, true
		}
	}
	return figma.Paint{}, false
}
