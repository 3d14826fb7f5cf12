// Package colour provides the colour confusability screen.
package colour

import "math"

// ConfusionDistanceThreshold is the Euclidean RGB distance below which two
// simulated colours are considered indistinguishable. This is a cheap
// nearest-pair screen, deliberately conservative rather than a full
// perceptual-distance model.
const ConfusionDistanceThreshold = 30.0

// ConfusablePair records two palette colours that collapse together under a
// simulated deficiency.
type ConfusablePair struct {
	Deficiency Deficiency `json:"deficiency"`
	Colour1    string     `json:"colour1"`
	Colour2    string     `json:"colour2"`
	Distance   float64    `json:"distance"`
}

// rgbDistance is the Euclidean distance between two colours in RGB space.
func rgbDistance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// ConfusablePairs simulates the palette under every deficiency type and
// returns each colour pair whose simulated distance falls below the
// threshold. Pairs are ordered by deficiency, then palette order.
func ConfusablePairs(p *Palette) []ConfusablePair {
	if p == nil || len(p.Colours) < 2 {
		return nil
	}

	var pairs []ConfusablePair
	for _, d := range Deficiencies() {
		simulated := make([]RGB, len(p.Colours))
		for i, c := range p.Colours {
			// Supported types only, so simulation cannot fail here.
			simulated[i], _ = SimulateRGB(c.RGB, d)
		}

		for i := 0; i < len(simulated); i++ {
			for j := i + 1; j < len(simulated); j++ {
				dist := rgbDistance(simulated[i], simulated[j])
				if dist < ConfusionDistanceThreshold {
					pairs = append(pairs, ConfusablePair{
						Deficiency: d,
						Colour1:    p.Colours[i].Hex,
						Colour2:    p.Colours[j].Hex,
						Distance:   dist,
					})
				}
			}
		}
	}
	return pairs
}

// Distinguishable reports whether every colour pair stays distinguishable
// under every simulated deficiency. Palettes with fewer than two colours
// are vacuously distinguishable.
func Distinguishable(p *Palette) bool {
	return len(ConfusablePairs(p)) == 0
}
