package engine

import (
	"fmt"
	"math"
	"strconv"

	"github.com/figmark/figmark/internal/figma"
)

// round1 rounds to one decimal place, half up.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// fmtNum renders a float without trailing zeros: 123.5, 100, 0.5.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fmtPx renders a dimension rounded to one decimal place.
func fmtPx(v float64) string {
	return fmtNum(round1(v)) + "px"
}

// cssColor renders a color as #RRGGBB when fully opaque, rgba()
// otherwise. extraOpacity is the paint-level opacity multiplied into
// the color's own alpha.
func cssColor(c figma.Color, extraOpacity float64) string {
	a := c.A * extraOpacity
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))
	if a >= 1 {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, fmtNum(math.Round(a*100)/100))
}
