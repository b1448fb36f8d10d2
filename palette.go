package ggplot

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette returns n colors with evenly spaced hues at constant
// chroma and lightness, used for series without an explicit color.
func DefaultPalette(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	out := make([]color.Color, n)
	for i := range out {
		h := math.Mod(30+360*float64(i)/float64(n), 360)
		out[i] = colorful.Hcl(h, 0.6, 0.55).Clamped()
	}
	return out
}

// Blend mixes a towards b by t in CIE L*a*b* space. Nil inputs return the
// other color.
func Blend(a, b color.Color, t float64) color.Color {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	return ca.BlendLab(cb, t).Clamped()
}

var (
	colorBlack     = color.RGBA{A: 0xff}
	colorWhite     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorGridMajor = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
)
