package colour

// Level represents a WCAG 2.0 contrast compliance level.
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelFail Level = "FAIL"
)

// WCAG 2.0 minimum contrast ratios.
// Large text is at least 18pt, or 14pt bold.
const (
	ThresholdAAANormal = 7.0
	ThresholdAANormal  = 4.5
	ThresholdAAALarge  = 4.5
	ThresholdAALarge   = 3.0

	// ReadableRatio is the minimum ratio for normal text to be readable (AA).
	ReadableRatio = 4.5
)

// Classify maps a contrast ratio to a WCAG compliance level.
func Classify(ratio float64, largeText bool) Level {
	aaa, aa := ThresholdAAANormal, ThresholdAANormal
	if largeText {
		aaa, aa = ThresholdAAALarge, ThresholdAALarge
	}

	switch {
	case ratio >= aaa:
		return LevelAAA
	case ratio >= aa:
		return LevelAA
	default:
		return LevelFail
	}
}

// levelRank orders levels from best (highest) to worst (lowest).
func levelRank(l Level) int {
	switch l {
	case LevelAAA:
		return 2
	case LevelAA:
		return 1
	default:
		return 0
	}
}

// WorseLevel returns the worse of two compliance levels.
func WorseLevel(a, b Level) Level {
	if levelRank(a) <= levelRank(b) {
		return a
	}
	return b
}

// TargetRatio returns the minimum normal-text contrast ratio required to
// reach the given level. Only AA and AAA are meaningful targets.
func TargetRatio(target Level) (float64, bool) {
	switch target {
	case LevelAAA:
		return ThresholdAAANormal, true
	case LevelAA:
		return ThresholdAANormal, true
	default:
		return 0, false
	}
}
