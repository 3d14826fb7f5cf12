// Package colour provides the accessible-alternative lightness search.
package colour

import "fmt"

// Lightness scan parameters. The scan is a bounded linear search: at most
// 19 candidates in each direction.
const (
	lightnessStep = 5
	lightnessMax  = 95
	lightnessMin  = 5
)

// lightnessCandidates generates the candidate lightness values scanned from
// start in the given direction (+lightnessStep or -lightnessStep), exclusive
// of start and bounded at lightnessMin/lightnessMax. Exposing the sequence
// as a value keeps the termination policy independently checkable.
func lightnessCandidates(start, step int) []int {
	var out []int
	switch {
	case step > 0:
		for l := start + step; l <= lightnessMax; l += step {
			out = append(out, l)
		}
	case step < 0:
		for l := start + step; l >= lightnessMin; l += step {
			out = append(out, l)
		}
	}
	return out
}

// AccessibleAlternative searches for a variant of the colour whose contrast
// against white meets the target level, holding hue and saturation fixed.
// Lightness is scanned upward first, then downward, accepting the first
// candidate that both reaches the target ratio and strictly improves on the
// colour's current white-contrast. If neither scan improves, the original
// lightness is kept. The returned colour is renamed with the target level
// and its accessibility fields are recomputed.
func AccessibleAlternative(c Colour, target Level) (Colour, error) {
	threshold, ok := TargetRatio(target)
	if !ok {
		return Colour{}, fmt.Errorf("unsupported target level: %q", target)
	}

	best := ContrastRatio(c.RGB, White)
	lightness := c.HSL.L

	found := false
	for _, step := range []int{lightnessStep, -lightnessStep} {
		for _, cand := range lightnessCandidates(c.HSL.L, step) {
			rgb := HSLToRGB(HSL{H: c.HSL.H, S: c.HSL.S, L: cand})
			ratio := ContrastRatio(rgb, White)
			if ratio >= threshold && ratio > best {
				lightness = cand
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	rgb := HSLToRGB(HSL{H: c.HSL.H, S: c.HSL.S, L: lightness})
	name := c.Name
	if name != "" {
		name = fmt.Sprintf("%s (%s)", name, target)
	} else {
		name = string(target)
	}
	return newColourFromRGB(rgb, name, c.Category, c.Usage), nil
}

// AccessiblePalette derives a palette in which every colour has been run
// through the accessible-alternative search for the target level. Each
// colour is searched independently; the input palette is not modified.
func AccessiblePalette(p *Palette, target Level) (*Palette, error) {
	if p == nil || len(p.Colours) == 0 {
		return nil, ErrEmptyPalette
	}

	colours := make([]Colour, len(p.Colours))
	for i, c := range p.Colours {
		alt, err := AccessibleAlternative(c, target)
		if err != nil {
			return nil, err
		}
		colours[i] = alt
	}

	return p.derive(colours, "("+string(target)+")"), nil
}
