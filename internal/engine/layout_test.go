package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/figmark/figmark/internal/figma"
)

func TestSizingDecls(t *testing.T) {
	tests := []struct {
		name             string
		node             figma.Node
		parentAutoLayout bool
		expected         []StyleDecl
	}{
		{
			name: "fixed dimensions rounded to one decimal",
			node: figma.Node{
				LayoutSizingHorizontal: "FIXED",
				LayoutSizingVertical:   "FIXED",
				AbsoluteBoundingBox:    &figma.Rect{Width: 123.45, Height: 67.89},
			},
			expected: []StyleDecl{
				{"width", "123.5px"},
				{"height", "67.9px"},
			},
		},
		{
			name: "absent sizing defaults to fixed",
			node: figma.Node{
				AbsoluteBoundingBox: &figma.Rect{Width: 100, Height: 40},
			},
			expected: []StyleDecl{
				{"width", "100px"},
				{"height", "40px"},
			},
		},
		{
			name: "fill inside auto-layout parent",
			node: figma.Node{
				LayoutSizingHorizontal: "FILL",
				LayoutSizingVertical:   "FILL",
				AbsoluteBoundingBox:    &figma.Rect{Width: 100, Height: 40},
			},
			parentAutoLayout: true,
			expected: []StyleDecl{
				{"flex", "1"},
				{"align-self", "stretch"},
				{"flex-grow", "1"},
			},
		},
		{
			name: "fill without flex context degrades to fixed",
			node: figma.Node{
				LayoutSizingHorizontal: "FILL",
				LayoutSizingVertical:   "FILL",
				AbsoluteBoundingBox:    &figma.Rect{Width: 100, Height: 40},
			},
			expected: []StyleDecl{
				{"width", "100px"},
				{"height", "40px"},
			},
		},
		{
			name: "hug emits nothing",
			node: figma.Node{
				LayoutSizingHorizontal: "HUG",
				LayoutSizingVertical:   "HUG",
				AbsoluteBoundingBox:    &figma.Rect{Width: 100, Height: 40},
			},
			expected: nil,
		},
		{
			name: "mixed axes",
			node: figma.Node{
				LayoutSizingHorizontal: "FILL",
				LayoutSizingVertical:   "HUG",
				AbsoluteBoundingBox:    &figma.Rect{Width: 100, Height: 40},
			},
			parentAutoLayout: true,
			expected: []StyleDecl{
				{"flex", "1"},
				{"align-self", "stretch"},
			},
		},
		{
			name: "missing bounding box emits nothing",
			node: figma.Node{
				LayoutSizingHorizontal: "FIXED",
				LayoutSizingVertical:   "FIXED",
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sizingDecls(&tt.node, tt.parentAutoLayout))
		})
	}
}

func TestConstraintDecls(t *testing.T) {
	tests := []struct {
		name     string
		node     figma.Node
		expected []StyleDecl
	}{
		{
			name: "all four constraints",
			node: figma.Node{MinWidth: 100, MaxWidth: 400, MinHeight: 20, MaxHeight: 80},
			expected: []StyleDecl{
				{"min-width", "100px"},
				{"max-width", "400px"},
				{"min-height", "20px"},
				{"max-height", "80px"},
			},
		},
		{
			name:     "sentinel values suppressed",
			node:     figma.Node{MaxWidth: 10000, MaxHeight: 12000},
			expected: nil,
		},
		{
			name:     "zero values suppressed",
			node:     figma.Node{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, constraintDecls(&tt.node))
		})
	}
}

func TestAutoLayoutDecls(t *testing.T) {
	tests := []struct {
		name     string
		node     figma.Node
		expected []StyleDecl
	}{
		{
			name:     "no layout mode",
			node:     figma.Node{},
			expected: nil,
		},
		{
			name:     "layout mode NONE",
			node:     figma.Node{LayoutMode: "NONE"},
			expected: nil,
		},
		{
			name: "horizontal with defaults",
			node: figma.Node{LayoutMode: "HORIZONTAL"},
			expected: []StyleDecl{
				{"display", "flex"},
				{"flex-direction", "row"},
				{"justify-content", "flex-start"},
				{"align-items", "stretch"},
			},
		},
		{
			name: "vertical centered with gap and padding",
			node: figma.Node{
				LayoutMode:            "VERTICAL",
				PrimaryAxisAlignItems: "CENTER",
				CounterAxisAlignItems: "CENTER",
				ItemSpacing:           8,
				PaddingTop:            10,
				PaddingRight:          20,
				PaddingBottom:         10,
				PaddingLeft:           20,
			},
			expected: []StyleDecl{
				{"display", "flex"},
				{"flex-direction", "column"},
				{"justify-content", "center"},
				{"align-items", "center"},
				{"gap", "8px"},
				{"padding", "10px 20px 10px 20px"},
			},
		},
		{
			name: "space-between with two children",
			node: figma.Node{
				LayoutMode:            "HORIZONTAL",
				PrimaryAxisAlignItems: "SPACE_BETWEEN",
				Children:              []figma.Node{{ID: "a"}, {ID: "b"}},
			},
			expected: []StyleDecl{
				{"display", "flex"},
				{"flex-direction", "row"},
				{"justify-content", "space-between"},
				{"align-items", "stretch"},
			},
		},
		{
			name: "space-between with a single child renders centered",
			node: figma.Node{
				LayoutMode:            "HORIZONTAL",
				PrimaryAxisAlignItems: "SPACE_BETWEEN",
				Children:              []figma.Node{{ID: "a"}},
			},
			expected: []StyleDecl{
				{"display", "flex"},
				{"flex-direction", "row"},
				{"justify-content", "center"},
				{"align-items", "stretch"},
			},
		},
		{
			name: "max alignment and baseline",
			node: figma.Node{
				LayoutMode:            "HORIZONTAL",
				PrimaryAxisAlignItems: "MAX",
				CounterAxisAlignItems: "BASELINE",
			},
			expected: []StyleDecl{
				{"display", "flex"},
				{"flex-direction", "row"},
				{"justify-content", "flex-end"},
				{"align-items", "baseline"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, autoLayoutDecls(&tt.node))
		})
	}
}
