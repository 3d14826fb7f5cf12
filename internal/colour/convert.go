// Package colour provides colour model conversion between hex, RGB and HSL.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToRGB parses a hex colour string into RGB channels.
// Accepts 3- or 6-digit forms, with or without a leading '#'.
// The function is total: an unparseable channel is treated as 0 and input of
// any other length yields black rather than an error.
func HexToRGB(hex string) RGB {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	// Expand shorthand: "abc" -> "aabbcc".
	if len(s) == 3 {
		s = fmt.Sprintf("%c%c%c%c%c%c", s[0], s[0], s[1], s[1], s[2], s[2])
	}
	if len(s) != 6 {
		return RGB{}
	}

	return RGB{
		R: hexChannel(s[0:2]),
		G: hexChannel(s[2:4]),
		B: hexChannel(s[4:6]),
	}
}

// hexChannel parses a two-digit hex channel, defaulting to 0 on bad input.
func hexChannel(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// RGBToHex returns the colour as a 6-digit lowercase hex string (e.g. "#1a2b3c").
func RGBToHex(rgb RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBToHexUpper returns the colour as a 6-digit uppercase hex string,
// the canonical display form (e.g. "#1A2B3C").
func RGBToHexUpper(rgb RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// NewRGB builds an RGB value from unclamped channel integers.
// Out-of-range channels are clamped into [0, 255].
func NewRGB(r, g, b int) RGB {
	return RGB{
		R: uint8(clampInt(r, 0, 255)),
		G: uint8(clampInt(g, 0, 255)),
		B: uint8(clampInt(b, 0, 255)),
	}
}

// NewHSL builds an HSL value from unclamped channel integers.
// Hue is wrapped onto the colour wheel; saturation and lightness are
// clamped into [0, 100].
func NewHSL(h, s, l int) HSL {
	h %= 360
	if h < 0 {
		h += 360
	}
	return HSL{
		H: h,
		S: clampInt(s, 0, 100),
		L: clampInt(l, 0, 100),
	}
}

// RGBToHSL converts RGB to HSL colour space.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	// Achromatic: hue and saturation are zero.
	if delta == 0 {
		return NewHSL(0, 0, int(math.Round(l*100)))
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h *= 60

	return NewHSL(int(math.Round(h)), int(math.Round(s*100)), int(math.Round(l*100)))
}

// HSLToRGB converts HSL to RGB colour space.
func HSLToRGB(hsl HSL) RGB {
	hsl = NewHSL(hsl.H, hsl.S, hsl.L)

	h := float64(hsl.H)
	s := float64(hsl.S) / 100.0
	l := float64(hsl.L) / 100.0

	if s == 0 {
		// Achromatic (grey).
		v := uint8(math.Round(l * 255))
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	r := hueToChannel(p, q, h+120)
	g := hueToChannel(p, q, h)
	b := hueToChannel(p, q, h-120)

	return RGB{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
	}
}

// hueToChannel is a helper for HSL to RGB conversion.
func hueToChannel(p, q, t float64) float64 {
	// Normalize t to 0-360 range.
	for t < 0 {
		t += 360
	}
	for t >= 360 {
		t -= 360
	}

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

// HexToHSL converts a hex colour string to HSL.
func HexToHSL(hex string) HSL {
	return RGBToHSL(HexToRGB(hex))
}

// HSLToHex converts an HSL colour to a lowercase hex string.
func HSLToHex(hsl HSL) string {
	return RGBToHex(HSLToRGB(hsl))
}

// clampInt clamps v into [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
