package perlin

import (
	"image/color"
	"math"
	"sort"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Gray creates an opaque gray from an 8-bit level.
func Gray(level uint8) RGBA {
	v := float64(level) / 255
	return RGB(v, v, v)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
// Malformed input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8:
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// to8 converts a [0, 1] component to 8 bits, rounding to nearest.
func to8(v float64) uint8 {
	return uint8(clamp255(v*255 + 0.5))
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)

// ColorMap maps a noise value to a color.
type ColorMap func(v float64) RGBA

// Grayscale maps [0, 1] onto 256 gray levels. Values at or above 1 are white
// and values at or below 0 are black, so the negative half of the noise
// range is clipped.
func Grayscale(v float64) RGBA {
	switch {
	case v >= 1:
		return Gray(255)
	case v <= 0 || math.IsNaN(v):
		return Gray(0)
	}
	return Gray(uint8(math.Floor(v * 256)))
}

// SignedGrayscale maps [-1, 1] linearly onto black..white.
func SignedGrayscale(v float64) RGBA {
	return Grayscale((v + 1) / 2)
}

// ColorStop places a color at a noise value.
type ColorStop struct {
	Value float64 // Noise value, usually within [-1, 1]
	Color RGBA    // Color at this value
}

// Ramp returns a ColorMap that interpolates linearly between stops.
// Values outside the stops take the color of the nearest end. An empty ramp
// maps everything to Transparent.
func Ramp(stops ...ColorStop) ColorMap {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value < sorted[j].Value
	})

	return func(v float64) RGBA {
		if len(sorted) == 0 {
			return Transparent
		}

		idx := sort.Search(len(sorted), func(i int) bool {
			return sorted[i].Value >= v
		})
		if idx == 0 {
			return sorted[0].Color
		}
		if idx >= len(sorted) {
			return sorted[len(sorted)-1].Color
		}

		s1, s2 := sorted[idx-1], sorted[idx]
		if s2.Value == s1.Value {
			return s1.Color
		}
		return s1.Color.Lerp(s2.Color, (v-s1.Value)/(s2.Value-s1.Value))
	}
}

// Terrain is a height-map ramp: deep and shallow water, sand, grass,
// rock and snow.
var Terrain = Ramp(
	ColorStop{Value: -1.0, Color: Hex("#0b1d51")},
	ColorStop{Value: -0.2, Color: Hex("#1f5fa8")},
	ColorStop{Value: -0.05, Color: Hex("#4f9bd9")},
	ColorStop{Value: 0.0, Color: Hex("#e6d69c")},
	ColorStop{Value: 0.08, Color: Hex("#5a9e3a")},
	ColorStop{Value: 0.35, Color: Hex("#2f6b24")},
	ColorStop{Value: 0.55, Color: Hex("#7a6a5a")},
	ColorStop{Value: 0.75, Color: Hex("#f4f4f4")},
)

// ColorMapByName returns a preset color map: "gray", "signed" or "terrain".
func ColorMapByName(name string) (ColorMap, bool) {
	switch name {
	case "gray", "grayscale":
		return Grayscale, true
	case "signed":
		return SignedGrayscale, true
	case "terrain":
		return Terrain, true
	}
	return nil, false
}
