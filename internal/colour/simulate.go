// Package colour provides colour-vision deficiency simulation.
package colour

import "math"

// Deficiency identifies a simulated colour-vision deficiency type.
type Deficiency string

const (
	// Protanopia is the absence of red cones (red-blind).
	Protanopia Deficiency = "protanopia"
	// Deuteranopia is the absence of green cones (green-blind).
	Deuteranopia Deficiency = "deuteranopia"
	// Tritanopia is the absence of blue cones (blue-blind).
	Tritanopia Deficiency = "tritanopia"
	// Achromatopsia is total colour blindness (grayscale vision).
	Achromatopsia Deficiency = "achromatopsia"
)

// Deficiencies returns all supported deficiency types in a stable order.
func Deficiencies() []Deficiency {
	return []Deficiency{Protanopia, Deuteranopia, Tritanopia, Achromatopsia}
}

// ParseDeficiency validates a deficiency tag.
func ParseDeficiency(s string) (Deficiency, error) {
	for _, d := range Deficiencies() {
		if string(d) == s {
			return d, nil
		}
	}
	return "", &UnsupportedDeficiencyError{Type: s}
}

// cvdTransforms holds the linear approximation matrix for each dichromatic
// deficiency, applied to normalized RGB channels. Rows produce the new
// R, G and B from the original channels read atomically.
var cvdTransforms = map[Deficiency][3][3]float64{
	Protanopia: {
		{0.567, 0.433, 0.000},
		{0.558, 0.442, 0.000},
		{0.000, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0.000},
		{0.700, 0.300, 0.000},
		{0.000, 0.300, 0.700},
	},
	Tritanopia: {
		{0.950, 0.050, 0.000},
		{0.000, 0.433, 0.567},
		{0.000, 0.475, 0.525},
	},
}

// Luminance weights for achromatopsia grayscale (ITU-R BT.601).
const (
	grayWeightR = 0.299
	grayWeightG = 0.587
	grayWeightB = 0.114
)

// SimulateRGB approximates how an RGB colour appears under the given
// deficiency. All three source channels are read before any output channel
// is computed, so the transform matches the published matrices exactly.
func SimulateRGB(rgb RGB, d Deficiency) (RGB, error) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	if d == Achromatopsia {
		gray := grayWeightR*r + grayWeightG*g + grayWeightB*b
		v := clampChannel(gray)
		return RGB{R: v, G: v, B: v}, nil
	}

	m, ok := cvdTransforms[d]
	if !ok {
		return RGB{}, &UnsupportedDeficiencyError{Type: string(d)}
	}

	return RGB{
		R: clampChannel(m[0][0]*r + m[0][1]*g + m[0][2]*b),
		G: clampChannel(m[1][0]*r + m[1][1]*g + m[1][2]*b),
		B: clampChannel(m[2][0]*r + m[2][1]*g + m[2][2]*b),
	}, nil
}

// Simulate approximates how a hex colour appears under the given deficiency
// and re-encodes the result as a lowercase hex string.
func Simulate(hex string, d Deficiency) (string, error) {
	rgb, err := SimulateRGB(HexToRGB(hex), d)
	if err != nil {
		return "", err
	}
	return RGBToHex(rgb), nil
}

// SimulatePalette returns a new palette with every colour replaced by its
// simulated appearance. The input palette is not modified.
func SimulatePalette(p *Palette, d Deficiency) (*Palette, error) {
	if p == nil || len(p.Colours) == 0 {
		return nil, ErrEmptyPalette
	}

	colours := make([]Colour, len(p.Colours))
	for i, c := range p.Colours {
		rgb, err := SimulateRGB(c.RGB, d)
		if err != nil {
			return nil, err
		}
		colours[i] = newColourFromRGB(rgb, c.Name, c.Category, c.Usage)
	}

	return p.derive(colours, "("+string(d)+")"), nil
}

// clampChannel maps a normalized channel value back into [0, 255].
func clampChannel(v float64) uint8 {
	scaled := math.Round(v * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
