// Package colour provides the deficiency-friendly hue remap.
package colour

// Hue anchors for the red-green confusion bands. Hues inside a band snap to
// the nearer anchor; hues outside both bands are left unchanged. This
// targets the red-green confusion of protanopia and deuteranopia without
// attempting full gamut correction.
const (
	redYellowBandEnd   = 60
	yellowGreenBandEnd = 180

	anchorOrange = 15
	anchorYellow = 45
	anchorLime   = 75
	anchorCyan   = 150

	minSaturationRedYellow   = 70
	minSaturationYellowGreen = 60
)

// remapColour applies the hue-band heuristic to a single colour.
func remapColour(c Colour) Colour {
	h, s := c.HSL.H, c.HSL.S

	switch {
	case h < redYellowBandEnd:
		h = nearerAnchor(h, anchorOrange, anchorYellow)
		s = max(s, minSaturationRedYellow)
	case h < yellowGreenBandEnd:
		h = nearerAnchor(h, anchorLime, anchorCyan)
		s = max(s, minSaturationYellowGreen)
	default:
		return c
	}

	rgb := HSLToRGB(HSL{H: h, S: s, L: c.HSL.L})
	return newColourFromRGB(rgb, c.Name, c.Category, c.Usage)
}

// nearerAnchor returns whichever anchor is closer to the hue; ties go to
// the lower anchor.
func nearerAnchor(h, lo, hi int) int {
	if h-lo <= hi-h {
		return lo
	}
	return hi
}

// DeficiencyFriendly derives a palette whose red-yellow and yellow-green
// hues are shifted onto anchor hues that stay separable under red-green
// colour-vision deficiencies. The input palette is not modified.
func DeficiencyFriendly(p *Palette) (*Palette, error) {
	if p == nil || len(p.Colours) == 0 {
		return nil, ErrEmptyPalette
	}

	colours := make([]Colour, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = remapColour(c)
	}

	return p.derive(colours, "(colour-blind friendly)"), nil
}
