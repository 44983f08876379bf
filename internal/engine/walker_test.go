package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figmark/figmark/internal/figma"
)

func TestTranslateNilRoot(t *testing.T) {
	_, err := Translate(nil, Context{})
	assert.ErrorIs(t, err, ErrNilRoot)
}

func TestTranslateInvisibleRoot(t *testing.T) {
	hidden := false
	root := figma.Node{ID: "0:0", Type: "FRAME", Visible: &hidden}

	tree, err := Translate(&root, Context{})
	require.NoError(t, err)

	assert.Equal(t, "div", tree.Tag)
	assert.Empty(t, tree.Children)
}

func TestTranslatePrunesInvisibleSubtrees(t *testing.T) {
	hidden := false
	root := figma.Node{
		ID:   "0:0",
		Type: "FRAME",
		Children: []figma.Node{
			{ID: "1:1", Type: "RECTANGLE"},
			{
				ID: "1:2", Type: "FRAME", Visible: &hidden,
				Children: []figma.Node{
					{ID: "1:3", Type: "TEXT", Characters: "never emitted"},
				},
			},
		},
	}

	tree, err := Translate(&root, Context{})
	require.NoError(t, err)

	require.Len(t, tree.Children, 1)
	assert.Equal(t, "1:1", tree.Children[0].Attrs["data-node-id"])
}

func TestTranslateIdempotent(t *testing.T) {
	root := figma.Node{
		ID:         "0:0",
		Type:       "FRAME",
		LayoutMode: "VERTICAL",
		Fills: []figma.Paint{
			{Type: figma.PaintSolid, Color: &figma.Color{R: 0.95, G: 0.95, B: 0.95, A: 1}},
		},
		Children: []figma.Node{
			{
				ID: "1:1", Type: "TEXT", Characters: "Title",
				Style: &figma.TypeStyle{FontSize: 48, FontWeight: 700},
			},
			{
				ID: "1:2", Type: "RECTANGLE",
				AbsoluteBoundingBox: &figma.Rect{Width: 320, Height: 180},
				CornerRadius:        12,
			},
		},
	}
	ctx := Context{
		Tokens: TokenMap{"VariableID:1": {Name: "--surface", Literal: "#F2F2F2"}},
	}

	first, err := Translate(&root, ctx)
	require.NoError(t, err)
	second, err := Translate(&root, ctx)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("translation is not deterministic (-first +second):\n%s", diff)
	}
}

func TestTranslateAutoLayoutThreading(t *testing.T) {
	root := figma.Node{
		ID:         "0:0",
		Type:       "FRAME",
		LayoutMode: "HORIZONTAL",
		Children: []figma.Node{
			{
				ID: "1:1", Type: "FRAME",
				LayoutSizingHorizontal: "FILL",
				AbsoluteBoundingBox:    &figma.Rect{Width: 200, Height: 50},
				Children: []figma.Node{
					{
						// No auto-layout on the parent frame above, so FILL
						// degrades back to the fixed width.
						ID: "2:1", Type: "RECTANGLE",
						LayoutSizingHorizontal: "FILL",
						AbsoluteBoundingBox:    &figma.Rect{Width: 100, Height: 50},
					},
				},
			},
		},
	}

	tree, err := Translate(&root, Context{})
	require.NoError(t, err)

	child := tree.Children[0]
	assert.Contains(t, child.Styles, StyleDecl{"flex", "1"})

	grandchild := child.Children[0]
	assert.Contains(t, grandchild.Styles, StyleDecl{"width", "100px"})
	assert.NotContains(t, grandchild.Styles, StyleDecl{"flex", "1"})
}

func TestTranslateTextNode(t *testing.T) {
	root := figma.Node{
		ID:   "0:0",
		Type: "FRAME",
		Children: []figma.Node{
			{
				ID: "1:1", Type: "TEXT", Characters: "Big headline",
				Style: &figma.TypeStyle{FontSize: 48},
			},
		},
	}

	tree, err := Translate(&root, Context{})
	require.NoError(t, err)

	text := tree.Children[0]
	assert.Equal(t, "h1", text.Tag)
	assert.Equal(t, "Big headline", text.Text)
}

func TestTranslateBindingShortCircuit(t *testing.T) {
	root := figma.Node{
		ID:   "0:0",
		Type: "FRAME",
		Children: []figma.Node{
			{
				ID: "1:1", Type: "INSTANCE",
				Children: []figma.Node{
					{ID: "2:1", Type: "TEXT", Characters: "Save"},
				},
			},
		},
	}
	ctx := Context{
		Bindings: &BindingMap{
			Entries: map[string]BindingEntry{"1:1": {Component: "Button"}},
		},
	}

	tree, err := Translate(&root, ctx)
	require.NoError(t, err)

	bound := tree.Children[0]
	require.NotNil(t, bound.Binding)
	assert.Equal(t, "Button", bound.Binding.Component)
	// The subtree is replaced wholesale.
	assert.Empty(t, bound.Children)
}

func TestTranslateMediaNodes(t *testing.T) {
	ctx := Context{
		Assets: &AssetTable{
			Videos: map[string]string{"v": "https://cdn.example.com/clip.mp4"},
			GIFs:   map[string]string{"g": "https://cdn.example.com/anim.gif"},
			SVGs:   map[string]string{"s": `<svg width="24" height="24"></svg>`},
		},
	}
	root := figma.Node{
		ID:   "0:0",
		Type: "FRAME",
		Children: []figma.Node{
			{ID: "l", Name: "https://lottie.host/a.json", Type: "FRAME"},
			{ID: "p", Name: "https://app.lottiefiles.com/animation/1", Type: "FRAME"},
			{ID: "v", Name: "promo video", Type: "RECTANGLE", Fills: []figma.Paint{{Type: figma.PaintVideo}}},
			{ID: "g", Name: "fun.gif", Type: "RECTANGLE", Fills: []figma.Paint{{Type: figma.PaintVideo}}},
			{ID: "s", Type: "VECTOR", AbsoluteBoundingBox: &figma.Rect{Width: 24, Height: 24}},
		},
	}

	tree, err := Translate(&root, ctx)
	require.NoError(t, err)
	require.Len(t, tree.Children, 5)

	lottie := tree.Children[0]
	assert.Equal(t, "https://lottie.host/a.json", lottie.Attrs["data-lottie-src"])

	placeholder := tree.Children[1]
	assert.Equal(t, "https://app.lottiefiles.com/animation/1", placeholder.Attrs["data-lottie-placeholder"])

	video := tree.Children[2]
	assert.Equal(t, "video", video.Tag)
	assert.Equal(t, "https://cdn.example.com/clip.mp4", video.Attrs["src"])
	assert.Contains(t, video.Attrs, "autoplay")

	gif := tree.Children[3]
	assert.Equal(t, "img", gif.Tag)
	assert.Equal(t, "https://cdn.example.com/anim.gif", gif.Attrs["src"])

	vector := tree.Children[4]
	assert.Equal(t, `<svg width="24" height="24"></svg>`, vector.RawSVG)
}

func TestTranslateUnknownKind(t *testing.T) {
	root := figma.Node{
		ID:   "0:0",
		Type: "HOLOGRAM",
		Children: []figma.Node{
			{ID: "1:1", Type: "RECTANGLE"},
		},
	}

	// Unknown kinds translate as containers and keep recursing.
	tree, err := Translate(&root, Context{})
	require.NoError(t, err)
	assert.Equal(t, "div", tree.Tag)
	assert.Len(t, tree.Children, 1)
}
