// Package palette derives chart color series from one base color. The
// same algorithm is reachable twice: natively here for the live
// renderer, and as inline script text (Script) embedded into exported
// documents. Both copies are generated from the constants in this file
// so they cannot drift.
package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// hueStep is the hue rotation per pie slice, in degrees.
	hueStep = 30
	// fillOpacity is the canonical fill alpha for generated colors,
	// applied uniformly by both the live and exported renderers.
	fillOpacity = 0.6
)

// Color is one fill/stroke pair ready for a chart dataset.
type Color struct {
	Fill   string
	Stroke string
}

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B int
}

// ParseHex parses "#rrggbb" (the # is optional). Invalid input yields
// black, matching the tolerant behavior charts rely on.
func ParseHex(hex string) RGB {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return RGB{}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}
	}
	return RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

// HSL holds hue in degrees and saturation/lightness in [0,1].
type HSL struct {
	H, S, L float64
}

// ToHSL converts an RGB triple to HSL.
func (c RGB) ToHSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: l}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	return HSL{H: h * 60, S: s, L: l}
}

// ToRGB converts HSL back to an RGB triple.
func (c HSL) ToRGB() RGB {
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := c.L - chroma/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB{
		R: int(math.Round((r + m) * 255)),
		G: int(math.Round((g + m) * 255)),
		B: int(math.Round((b + m) * 255)),
	}
}

// ShiftHue rotates the color's hue by the given degrees, holding
// saturation and lightness constant.
func ShiftHue(c RGB, degrees float64) RGB {
	hsl := c.ToHSL()
	hsl.H = math.Mod(hsl.H+degrees, 360)
	return hsl.ToRGB()
}

func fill(c RGB) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, fillOpacity)
}

func stroke(c RGB) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Single returns the one fill/stroke pair used by bar and line charts:
// the base color at fill opacity, stroked fully opaque.
func Single(base string) Color {
	c := ParseHex(base)
	return Color{Fill: fill(c), Stroke: stroke(c)}
}

// Wheel returns n pie-slice color pairs, rotating the base color's hue
// in fixed hueStep increments per index.
func Wheel(base string, n int) []Color {
	c := ParseHex(base)
	out := make([]Color, 0, n)
	for i := 0; i < n; i++ {
		shifted := ShiftHue(c, float64(i*hueStep))
		out = append(out, Color{Fill: fill(shifted), Stroke: stroke(shifted)})
	}
	return out
}

// Series returns the color pairs for a chart: a single repeated pair for
// bar and line, one rotated pair per point for pie.
func Series(kind string, base string, n int) []Color {
	if kind == "pie" {
		return Wheel(base, n)
	}
	single := Single(base)
	out := make([]Color, n)
	for i := range out {
		out[i] = single
	}
	return out
}
