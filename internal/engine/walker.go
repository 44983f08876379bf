package engine

import (
	"errors"

	"github.com/figmark/figmark/internal/figma"
)

// ErrNilRoot is the only fatal condition translation itself reports;
// everything below the root degrades instead of propagating.
var ErrNilRoot = errors.New("nil root node")

// Translate runs a full compile pass over a document tree and returns
// the markup tree. The node tree and the Context tables are read-only
// for the duration of the call; two calls over the same inputs produce
// identical trees, declaration order included.
func Translate(root *figma.Node, ctx Context) (*MarkupNode, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	out := walk(root, ctx, false)
	if out == nil {
		// An invisible root still yields an empty container so callers
		// always get a serializable tree back.
		return &MarkupNode{Tag: "div", Attrs: nodeAttrs(root)}, nil
	}
	return out, nil
}

// walk translates one node. It returns nil for invisible nodes —
// pruning happens here, before any recursion, so no descendant of an
// invisible node is ever emitted.
func walk(n *figma.Node, ctx Context, parentAutoLayout bool) *MarkupNode {
	if !n.IsVisible() {
		return nil
	}

	if n.Kind().IsComposite() {
		if binding := ResolveBinding(n, ctx); binding != nil {
			// The binding replaces the subtree wholesale; the node's
			// own layout and style resolution is skipped.
			return &MarkupNode{Tag: "div", Attrs: nodeAttrs(n), Binding: binding}
		}
	}

	media := Classify(n, ctx)
	switch media.Kind {
	case MediaLottie:
		return lottieNode(n, media, parentAutoLayout)
	case MediaVideo:
		return videoNode(n, media, parentAutoLayout)
	case MediaGIF:
		return gifNode(n, media, parentAutoLayout)
	case MediaVector:
		return vectorNode(n, media, parentAutoLayout)
	}

	switch n.Kind() {
	case figma.KindText:
		return textNode(n, ctx, parentAutoLayout)
	default:
		// Frames, groups, shapes, components — and any unrecognized
		// future type — translate as containers that still recurse, so
		// unknown kinds stay forward-compatible instead of fatal.
		return containerNode(n, ctx, parentAutoLayout)
	}
}

// containerNode resolves the node's own layout and appearance, then
// recurses into children, threading down whether this node established
// an Auto-Layout context.
func containerNode(n *figma.Node, ctx Context, parentAutoLayout bool) *MarkupNode {
	m := &MarkupNode{Tag: "div", Attrs: nodeAttrs(n)}
	m.Styles = append(m.Styles, ResolveLayout(n, parentAutoLayout)...)
	m.Styles = append(m.Styles, ResolveAppearance(n, ctx)...)

	hasAutoLayout := n.LayoutMode != "" && n.LayoutMode != "NONE"
	for i := range n.Children {
		if child := walk(&n.Children[i], ctx, hasAutoLayout); child != nil {
			m.Children = append(m.Children, child)
		}
	}
	return m
}

func textNode(n *figma.Node, ctx Context, parentAutoLayout bool) *MarkupNode {
	decls, tag := ResolveText(n, ctx, parentAutoLayout)
	return &MarkupNode{
		Tag:    tag,
		Attrs:  nodeAttrs(n),
		Styles: decls,
		Text:   n.Characters,
	}
}

func lottieNode(n *figma.Node, media Media, parentAutoLayout bool) *MarkupNode {
	m := &MarkupNode{Tag: "div", Attrs: nodeAttrs(n)}
	m.Styles = ResolveLayout(n, parentAutoLayout)
	if media.Playable {
		m.Attrs["data-lottie-src"] = media.URL
	} else {
		// App-host URLs cannot be embedded; mark the placeholder so a
		// hydration layer can decide what to show.
		m.Attrs["data-lottie-placeholder"] = media.URL
	}
	return m
}

func videoNode(n *figma.Node, media Media, parentAutoLayout bool) *MarkupNode {
	m := &MarkupNode{Tag: "video", Attrs: nodeAttrs(n)}
	m.Styles = append(ResolveLayout(n, parentAutoLayout), StyleDecl{"object-fit", "cover"})
	if media.URL != "" {
		m.Attrs["src"] = media.URL
	}
	m.Attrs["autoplay"] = ""
	m.Attrs["loop"] = ""
	m.Attrs["muted"] = ""
	m.Attrs["playsinline"] = ""
	return m
}

func gifNode(n *figma.Node, media Media, parentAutoLayout bool) *MarkupNode {
	m := &MarkupNode{Tag: "img", Attrs: nodeAttrs(n)}
	m.Styles = append(ResolveLayout(n, parentAutoLayout), StyleDecl{"object-fit", "cover"})
	if media.URL != "" {
		m.Attrs["src"] = media.URL
	}
	return m
}

func vectorNode(n *figma.Node, media Media, parentAutoLayout bool) *MarkupNode {
	m := &MarkupNode{Tag: "div", Attrs: nodeAttrs(n)}
	m.Styles = ResolveLayout(n, parentAutoLayout)
	if media.SVG != "" {
		m.RawSVG = RewriteSVGSize(media.SVG, n, parentAutoLayout)
	}
	return m
}
