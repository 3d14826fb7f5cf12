// Package colour provides palette-level accessibility scoring.
package colour

const (
	whiteHex = "#FFFFFF"
	blackHex = "#000000"
)

// ContrastCheck records the WCAG contrast result for a single colour pair.
// A check is recomputed from its colours, never patched in place.
type ContrastCheck struct {
	Colour1        string  `json:"colour1"`
	Colour2        string  `json:"colour2"`
	Ratio          float64 `json:"ratio"`
	Level          Level   `json:"level"`
	IsTextReadable bool    `json:"is_text_readable"`
}

// NewContrastCheck computes and classifies the contrast between two hex
// colours at normal-text thresholds.
func NewContrastCheck(hex1, hex2 string) ContrastCheck {
	ratio := ContrastRatioHex(hex1, hex2)
	return ContrastCheck{
		Colour1:        hex1,
		Colour2:        hex2,
		Ratio:          ratio,
		Level:          Classify(ratio, false),
		IsTextReadable: ratio >= ReadableRatio,
	}
}

// AccessibilityScore aggregates the accessibility checks of a whole palette.
type AccessibilityScore struct {
	Overall         Level           `json:"overall"`
	Checks          []ContrastCheck `json:"checks"`
	ColourBlindSafe bool            `json:"colour_blind_safe"`
	Recommendations []string        `json:"recommendations"`
	PassedChecks    int             `json:"passed_checks"`
	TotalChecks     int             `json:"total_checks"`
}

// Score evaluates the accessibility of a palette. Checks run in a fixed
// order: every colour against white, every colour against black, then all
// distinct pairs in palette order. The overall level is the worst level
// observed. Scoring never fails: an empty palette yields a neutral score
// with zero checks.
func Score(p *Palette) AccessibilityScore {
	if p == nil || len(p.Colours) == 0 {
		return AccessibilityScore{
			Overall:         LevelAAA,
			Checks:          []ContrastCheck{},
			ColourBlindSafe: true,
			Recommendations: []string{"Palette is empty; add at least one colour to evaluate accessibility."},
		}
	}

	checks := make([]ContrastCheck, 0, 2*len(p.Colours)+len(p.Colours)*(len(p.Colours)-1)/2)

	for _, c := range p.Colours {
		checks = append(checks, NewContrastCheck(c.Hex, whiteHex))
	}
	for _, c := range p.Colours {
		checks = append(checks, NewContrastCheck(c.Hex, blackHex))
	}
	for i := 0; i < len(p.Colours); i++ {
		for j := i + 1; j < len(p.Colours); j++ {
			checks = append(checks, NewContrastCheck(p.Colours[i].Hex, p.Colours[j].Hex))
		}
	}

	overall := LevelAAA
	passed := 0
	failCount := 0
	aaCount := 0
	for _, check := range checks {
		overall = WorseLevel(overall, check.Level)
		switch check.Level {
		case LevelFail:
			failCount++
		case LevelAA:
			aaCount++
			passed++
		default:
			passed++
		}
	}

	safe := Distinguishable(p)

	return AccessibilityScore{
		Overall:         overall,
		Checks:          checks,
		ColourBlindSafe: safe,
		Recommendations: recommendations(scoreFacts{
			failCount:       failCount,
			aaCount:         aaCount,
			colourBlindSafe: safe,
			colourCount:     len(p.Colours),
			brightShare:     luminanceShare(p.Colours, func(l float64) bool { return l > 0.9 }),
			darkShare:       luminanceShare(p.Colours, func(l float64) bool { return l < 0.1 }),
		}),
		PassedChecks: passed,
		TotalChecks:  len(checks),
	}
}

// luminanceShare returns the fraction of colours whose relative luminance
// satisfies the predicate.
func luminanceShare(colours []Colour, match func(float64) bool) float64 {
	if len(colours) == 0 {
		return 0
	}
	n := 0
	for _, c := range colours {
		if match(Luminance(c.RGB)) {
			n++
		}
	}
	return float64(n) / float64(len(colours))
}
