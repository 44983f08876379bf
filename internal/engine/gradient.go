package engine

import (
	"math"
	"strings"

	"github.com/figmark/figmark/internal/figma"
)

// gradientCSS renders a gradient fill as a CSS background value. It
// returns ok=false for malformed gradients (missing stops or handles),
// in which case the background declaration is omitted entirely rather
// than emitting invalid CSS.
func gradientCSS(fill figma.Paint) (string, bool) {
	if len(fill.GradientStops) < 2 {
		return "", false
	}

	switch fill.Type {
	case figma.PaintGradientLinear:
		deg, ok := handleAngle(fill.GradientHandlePositions, 90)
		if !ok {
			return "", false
		}
		return "linear-gradient(" + fmtNum(deg) + "deg, " + percentStops(fill) + ")", true

	case figma.PaintGradientRadial:
		// Radial gradients ignore the handle angle.
		return "radial-gradient(circle, " + percentStops(fill) + ")", true

	case figma.PaintGradientAngular:
		deg, ok := handleAngle(fill.GradientHandlePositions, 90)
		if !ok {
			return "", false
		}
		return "conic-gradient(from " + fmtNum(deg) + "deg at 50% 50%, " + degreeStops(fill) + ")", true

	case figma.PaintGradientDiamond:
		return diamondGradient(fill), true
	}

	return "", false
}

// handleAngle computes the CSS angle from the first two gradient handle
// positions. The design tool's math angle (atan2 over the handle
// vector) is offset to compensate for CSS's coordinate convention.
func handleAngle(handles []figma.Vec, offset float64) (float64, bool) {
	if len(handles) < 2 {
		return 0, false
	}
	start, end := handles[0], handles[1]
	mathAngle := math.Atan2(end.Y-start.Y, end.X-start.X) * 180 / math.Pi
	return math.Round(offset + mathAngle), true
}

// percentStops renders gradient stops with percent positions.
func percentStops(fill figma.Paint) string {
	parts := make([]string, 0, len(fill.GradientStops))
	for _, stop := range fill.GradientStops {
		parts = append(parts,
			cssColor(stop.Color, fill.PaintOpacity())+" "+fmtNum(round1(stop.Position*100))+"%")
	}
	return strings.Join(parts, ", ")
}

// degreeStops renders gradient stops with degree positions, used by
// conic gradients.
func degreeStops(fill figma.Paint) string {
	parts := make([]string, 0, len(fill.GradientStops))
	for _, stop := range fill.GradientStops {
		parts = append(parts,
			cssColor(stop.Color, fill.PaintOpacity())+" "+fmtNum(round1(stop.Position*360))+"deg")
	}
	return strings.Join(parts, ", ")
}

// diamondGradient approximates a diamond gradient, which has no native
// CSS equivalent, as four corner-anchored linear gradients layered into
// the background quadrants. A deliberate approximation, not a bug.
func diamondGradient(fill figma.Paint) string {
	stops := percentStops(fill)
	layers := []string{
		"linear-gradient(to bottom right, " + stops + ") bottom right / 50% 50% no-repeat",
		"linear-gradient(to bottom left, " + stops + ") bottom left / 50% 50% no-repeat",
		"linear-gradient(to top left, " + stops + ") top left / 50% 50% no-repeat",
		"linear-gradient(to top right, " + stops + ") top right / 50% 50% no-repeat",
	}
	return strings.Join(layers, ", ")
}
