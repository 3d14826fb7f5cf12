package colour

import (
	"reflect"
	"testing"
)

func TestScoreSingleColour(t *testing.T) {
	p := NewPalette([]Colour{NewColour("#3B82F6", "Blue", CategoryPrimary, "")})
	score := Score(p)

	// One colour: white check and black check only, no pairwise entries.
	if score.TotalChecks != 2 {
		t.Fatalf("TotalChecks = %d, want 2", score.TotalChecks)
	}
	if score.Checks[0].Colour2 != "#FFFFFF" {
		t.Errorf("first check should be against white, got %s", score.Checks[0].Colour2)
	}
	if score.Checks[1].Colour2 != "#000000" {
		t.Errorf("second check should be against black, got %s", score.Checks[1].Colour2)
	}

	passed := 0
	for _, c := range score.Checks {
		if c.Level != LevelFail {
			passed++
		}
	}
	if score.PassedChecks != passed {
		t.Errorf("PassedChecks = %d, want %d", score.PassedChecks, passed)
	}
}

func TestScoreCheckOrdering(t *testing.T) {
	p := NewPalette([]Colour{
		NewColour("#000000", "Black", CategoryPrimary, ""),
		NewColour("#FFFFFF", "White", CategorySecondary, ""),
		NewColour("#FF0000", "Red", CategoryAccent, ""),
	})
	score := Score(p)

	// 3 white checks, 3 black checks, 3 pairwise checks.
	if score.TotalChecks != 9 {
		t.Fatalf("TotalChecks = %d, want 9", score.TotalChecks)
	}

	wantPairs := [][2]string{
		{"#000000", "#FFFFFF"},
		{"#FFFFFF", "#FFFFFF"},
		{"#FF0000", "#FFFFFF"},
		{"#000000", "#000000"},
		{"#FFFFFF", "#000000"},
		{"#FF0000", "#000000"},
		{"#000000", "#FFFFFF"},
		{"#000000", "#FF0000"},
		{"#FFFFFF", "#FF0000"},
	}
	for i, want := range wantPairs {
		got := score.Checks[i]
		if got.Colour1 != want[0] || got.Colour2 != want[1] {
			t.Errorf("check %d = (%s, %s), want (%s, %s)", i, got.Colour1, got.Colour2, want[0], want[1])
		}
	}
}

func TestScoreWorstLevelAggregation(t *testing.T) {
	// Black and white pair at AAA everywhere, but a mid grey fails against
	// both of them, so one failing check drags the overall level to FAIL.
	p := NewPalette([]Colour{
		NewColour("#000000", "Black", CategoryPrimary, ""),
		NewColour("#777777", "Grey", CategorySecondary, ""),
	})
	score := Score(p)

	hasFail := false
	for _, c := range score.Checks {
		if c.Level == LevelFail {
			hasFail = true
		}
	}
	if !hasFail {
		t.Fatal("expected at least one failing check in fixture")
	}
	if score.Overall != LevelFail {
		t.Errorf("Overall = %s, want FAIL", score.Overall)
	}
}

func TestScoreBlackWhiteAAA(t *testing.T) {
	p := NewPalette([]Colour{
		NewColour("#000000", "Black", CategoryPrimary, ""),
		NewColour("#FFFFFF", "White", CategorySecondary, ""),
	})
	score := Score(p)

	// The black/white pairwise check sits at ratio 21 and AAA.
	pair := score.Checks[len(score.Checks)-1]
	if pair.Level != LevelAAA {
		t.Errorf("black/white pair level = %s, want AAA", pair.Level)
	}
	if pair.Ratio < 20.9 || pair.Ratio > 21.0 {
		t.Errorf("black/white pair ratio = %f, want ~21", pair.Ratio)
	}
}

func TestScoreEmptyPalette(t *testing.T) {
	score := Score(NewPalette(nil))

	if score.TotalChecks != 0 {
		t.Errorf("TotalChecks = %d, want 0", score.TotalChecks)
	}
	if score.PassedChecks != 0 {
		t.Errorf("PassedChecks = %d, want 0", score.PassedChecks)
	}
	if len(score.Recommendations) != 1 {
		t.Fatalf("expected one neutral recommendation, got %v", score.Recommendations)
	}
	if !score.ColourBlindSafe {
		t.Error("empty palette should be vacuously colour-blind safe")
	}
}

func TestScoreNilPalette(t *testing.T) {
	score := Score(nil)
	if score.TotalChecks != 0 || len(score.Recommendations) != 1 {
		t.Errorf("nil palette should score like an empty one, got %+v", score)
	}
}

func TestScoreIdempotent(t *testing.T) {
	p := NewPalette([]Colour{
		NewColour("#3B82F6", "Blue", CategoryPrimary, ""),
		NewColour("#FF5733", "Orange", CategoryAccent, ""),
		NewColour("#FFFFFF", "White", CategorySecondary, ""),
	})

	first := Score(p)
	second := Score(p)

	if !reflect.DeepEqual(first, second) {
		t.Error("scoring the same palette twice produced different results")
	}
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	p := NewPalette([]Colour{
		NewColour("#3B82F6", "Blue", CategoryPrimary, ""),
		NewColour("#FF5733", "Orange", CategoryAccent, ""),
	})
	before := make([]Colour, len(p.Colours))
	copy(before, p.Colours)

	Score(p)

	if !reflect.DeepEqual(before, p.Colours) {
		t.Error("Score modified its input palette")
	}
}

func TestScoreMonochromePalette(t *testing.T) {
	// A monochrome palette must score without panicking even though every
	// pairwise ratio is 1.
	p := NewPalette([]Colour{
		NewColour("#808080", "Grey 1", CategoryPrimary, ""),
		NewColour("#808080", "Grey 2", CategorySecondary, ""),
	})
	score := Score(p)

	if score.Overall != LevelFail {
		t.Errorf("Overall = %s, want FAIL for identical colours", score.Overall)
	}
	if score.ColourBlindSafe {
		t.Error("identical colours should not be colour-blind safe")
	}
}

func TestRecommendationRuleOrder(t *testing.T) {
	tests := []struct {
		name  string
		facts scoreFacts
		want  int
	}{
		{
			name:  "all clear yields single positive message",
			facts: scoreFacts{colourBlindSafe: true, colourCount: 4},
			want:  1,
		},
		{
			name: "all rules fire together",
			facts: scoreFacts{
				failCount:       2,
				aaCount:         1,
				colourBlindSafe: false,
				colourCount:     2,
				brightShare:     0.7,
			},
			want: 5,
		},
		{
			name:  "dark palette rule",
			facts: scoreFacts{colourBlindSafe: true, colourCount: 4, darkShare: 0.75},
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recommendations(tt.facts)
			if len(got) != tt.want {
				t.Errorf("recommendations(%+v) = %v (len %d), want %d messages", tt.facts, got, len(got), tt.want)
			}
		})
	}
}

func TestRecommendationFailCountFirst(t *testing.T) {
	got := recommendations(scoreFacts{failCount: 3, colourBlindSafe: true, colourCount: 5})
	if len(got) != 1 {
		t.Fatalf("expected one message, got %v", got)
	}
	if want := "3 colour pair(s) fail"; len(got[0]) < len(want) || got[0][:len(want)] != want {
		t.Errorf("first recommendation = %q, want prefix %q", got[0], want)
	}
}
