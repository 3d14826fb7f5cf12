package colour

import "fmt"

// scoreFacts captures everything the recommendation rules look at, so each
// rule stays a pure predicate over a value.
type scoreFacts struct {
	failCount       int
	aaCount         int
	colourBlindSafe bool
	colourCount     int
	brightShare     float64
	darkShare       float64
}

// recommendationRule pairs a predicate with a message template. Rules are
// evaluated in order and every applicable rule contributes a message.
type recommendationRule struct {
	applies func(scoreFacts) bool
	message func(scoreFacts) string
}

var recommendationRules = []recommendationRule{
	{
		applies: func(f scoreFacts) bool { return f.failCount > 0 },
		message: func(f scoreFacts) string {
			return fmt.Sprintf("%d colour pair(s) fail WCAG contrast requirements; adjust lightness to increase separation.", f.failCount)
		},
	},
	{
		applies: func(f scoreFacts) bool { return f.aaCount > 0 },
		message: func(f scoreFacts) string {
			return fmt.Sprintf("%d colour pair(s) meet AA but not AAA; a larger lightness difference would reach AAA.", f.aaCount)
		},
	},
	{
		applies: func(f scoreFacts) bool { return !f.colourBlindSafe },
		message: func(scoreFacts) string {
			return "Some colours become hard to distinguish under colour-vision deficiencies; increase hue or lightness separation."
		},
	},
	{
		applies: func(f scoreFacts) bool { return f.colourCount < 3 },
		message: func(scoreFacts) string {
			return "Palette has fewer than 3 colours; consider adding more for flexible combinations."
		},
	},
	{
		applies: func(f scoreFacts) bool { return f.brightShare > 0.6 },
		message: func(scoreFacts) string {
			return "Most colours are very light; add darker colours to improve text contrast options."
		},
	},
	{
		applies: func(f scoreFacts) bool { return f.darkShare > 0.6 },
		message: func(scoreFacts) string {
			return "Most colours are very dark; add lighter colours to improve text contrast options."
		},
	},
}

// allClearMessage is emitted only when no other rule fired.
const allClearMessage = "Palette meets WCAG contrast requirements and is colour-vision friendly."

// recommendations evaluates the rule list in order and collects every
// applicable message, falling back to a single positive confirmation.
func recommendations(f scoreFacts) []string {
	out := []string{}
	for _, rule := range recommendationRules {
		if rule.applies(f) {
			out = append(out, rule.message(f))
		}
	}
	if len(out) == 0 {
		out = append(out, allClearMessage)
	}
	return out
}
