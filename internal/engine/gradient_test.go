package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figmark/figmark/internal/figma"
)

func twoStops() []figma.ColorStop {
	return []figma.ColorStop{
		{Position: 0, Color: figma.Color{R: 1, G: 0, B: 0, A: 1}},
		{Position: 1, Color: figma.Color{R: 0, G: 0, B: 1, A: 1}},
	}
}

func TestGradientCSS(t *testing.T) {
	tests := []struct {
		name     string
		fill     figma.Paint
		expected string
		ok       bool
	}{
		{
			name: "linear left-to-right is 90deg",
			fill: figma.Paint{
				Type:                    figma.PaintGradientLinear,
				GradientStops:           twoStops(),
				GradientHandlePositions: []figma.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}},
			},
			expected: "linear-gradient(90deg, #FF0000 0%, #0000FF 100%)",
			ok:       true,
		},
		{
			name: "linear top-to-bottom is 180deg",
			fill: figma.Paint{
				Type:                    figma.PaintGradientLinear,
				GradientStops:           twoStops(),
				GradientHandlePositions: []figma.Vec{{X: 0, Y: 0}, {X: 0, Y: 1}},
			},
			expected: "linear-gradient(180deg, #FF0000 0%, #0000FF 100%)",
			ok:       true,
		},
		{
			name: "radial ignores handles",
			fill: figma.Paint{
				Type:          figma.PaintGradientRadial,
				GradientStops: twoStops(),
			},
			expected: "radial-gradient(circle, #FF0000 0%, #0000FF 100%)",
			ok:       true,
		},
		{
			name: "angular renders conic with degree stops",
			fill: figma.Paint{
				Type:                    figma.PaintGradientAngular,
				GradientStops:           twoStops(),
				GradientHandlePositions: []figma.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}},
			},
			expected: "conic-gradient(from 90deg at 50% 50%, #FF0000 0deg, #0000FF 360deg)",
			ok:       true,
		},
		{
			name: "single stop is malformed",
			fill: figma.Paint{
				Type: figma.PaintGradientLinear,
				GradientStops: []figma.ColorStop{
					{Position: 0, Color: figma.Color{A: 1}},
				},
				GradientHandlePositions: []figma.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}},
			},
			ok: false,
		},
		{
			name: "missing handles are malformed",
			fill: figma.Paint{
				Type:          figma.PaintGradientLinear,
				GradientStops: twoStops(),
			},
			ok: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			css, ok := gradientCSS(tt.fill)
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, css)
		})
	}
}

func TestDiamondGradientLayers(t *testing.T) {
	fill := figma.Paint{
		Type:          figma.PaintGradientDiamond,
		GradientStops: twoStops(),
	}

	css, ok := gradientCSS(fill)
	require.True(t, ok)

	// Four corner-anchored half-size layers.
	assert.Contains(t, css, "linear-gradient(to bottom right, #FF0000 0%, #0000FF 100%) bottom right / 50% 50% no-repeat")
	assert.Contains(t, css, "linear-gradient(to bottom left, ")
	assert.Contains(t, css, "linear-gradient(to top left, ")
	assert.Contains(t, css, "linear-gradient(to top right, ")
}

func TestGradientStopOpacity(t *testing.T) {
	opacity := 0.5
	fill := figma.Paint{
		Type:                    figma.PaintGradientLinear,
		Opacity:                 &opacity,
		GradientStops:           twoStops(),
		GradientHandlePositions: []figma.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}},
	}

	css, ok := gradientCSS(fill)
	require.True(t, ok)
	assert.Equal(t, "linear-gradient(90deg, rgba(255, 0, 0, 0.5) 0%, rgba(0, 0, 255, 0.5) 100%)", css)
}
