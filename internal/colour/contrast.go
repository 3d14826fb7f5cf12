// Package colour provides WCAG luminance and contrast calculations.
package colour

import "math"

// Reference colours used throughout the accessibility checks.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	rf := float64(rgb.R) / 255.0
	gf := float64(rgb.G) / 255.0
	bf := float64(rgb.B) / 255.0

	// Apply gamma correction.
	rf = gammaCorrect(rf)
	gf = gammaCorrect(gf)
	bf = gammaCorrect(bf)

	// Calculate luminance using WCAG formula.
	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white). The function is symmetric in its arguments.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatioHex calculates the WCAG contrast ratio between two hex
// colour strings. Malformed input is clamped by the hex parser.
func ContrastRatioHex(hex1, hex2 string) float64 {
	return ContrastRatio(HexToRGB(hex1), HexToRGB(hex2))
}
