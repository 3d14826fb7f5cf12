package colour

import (
	"errors"
	"testing"
)

func TestRemapColourRedYellowBand(t *testing.T) {
	tests := []struct {
		name     string
		hsl      HSL
		wantHue  int
		wantSMin int
	}{
		{
			name:     "red snaps to orange anchor",
			hsl:      HSL{H: 5, S: 80, L: 50},
			wantHue:  15,
			wantSMin: 70,
		},
		{
			name:     "orange-yellow snaps to yellow anchor",
			hsl:      HSL{H: 40, S: 50, L: 50},
			wantHue:  45,
			wantSMin: 70,
		},
		{
			name:     "band midpoint ties to lower anchor",
			hsl:      HSL{H: 30, S: 90, L: 50},
			wantHue:  15,
			wantSMin: 70,
		},
		{
			name:     "yellow-green snaps to lime anchor",
			hsl:      HSL{H: 80, S: 40, L: 50},
			wantHue:  75,
			wantSMin: 60,
		},
		{
			name:     "green snaps to cyan anchor",
			hsl:      HSL{H: 140, S: 40, L: 50},
			wantHue:  150,
			wantSMin: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := newColourFromRGB(HSLToRGB(tt.hsl), "c", CategoryAccent, "")
			out := remapColour(in)

			if absInt(out.HSL.H-tt.wantHue) > 1 {
				t.Errorf("hue = %d, want %d", out.HSL.H, tt.wantHue)
			}
			if out.HSL.S < tt.wantSMin-1 {
				t.Errorf("saturation = %d, want at least %d", out.HSL.S, tt.wantSMin)
			}
		})
	}
}

func TestRemapColourOutsideBandsUnchanged(t *testing.T) {
	for _, hsl := range []HSL{
		{H: 200, S: 40, L: 50},
		{H: 240, S: 90, L: 30},
		{H: 300, S: 20, L: 70},
	} {
		in := newColourFromRGB(HSLToRGB(hsl), "c", CategoryAccent, "")
		out := remapColour(in)
		if out != in {
			t.Errorf("hue %d outside remap bands changed: %+v -> %+v", hsl.H, in.HSL, out.HSL)
		}
	}
}

func TestRemapPreservesSaturationAboveFloor(t *testing.T) {
	// Saturation above the band floor is kept, not reduced.
	in := newColourFromRGB(HSLToRGB(HSL{H: 10, S: 95, L: 50}), "c", CategoryAccent, "")
	out := remapColour(in)
	if out.HSL.S < 94 {
		t.Errorf("saturation dropped from 95 to %d", out.HSL.S)
	}
}

func TestDeficiencyFriendly(t *testing.T) {
	p := NewPalette([]Colour{
		NewColour("#FF0000", "Red", CategoryPrimary, ""),
		NewColour("#0000FF", "Blue", CategorySecondary, ""),
	})

	out, err := DeficiencyFriendly(p)
	if err != nil {
		t.Fatalf("DeficiencyFriendly() error = %v", err)
	}

	if out.Len() != 2 {
		t.Fatalf("derived palette has %d colours, want 2", out.Len())
	}
	// Red (hue 0) moves to the orange anchor; blue (hue 240) is untouched.
	if absInt(out.Colours[0].HSL.H-15) > 1 {
		t.Errorf("red remapped to hue %d, want ~15", out.Colours[0].HSL.H)
	}
	if out.Colours[1] != p.Colours[1] {
		t.Errorf("blue should be unchanged, got %+v", out.Colours[1].HSL)
	}

	if p.Colours[0].HSL.H != 0 {
		t.Error("DeficiencyFriendly modified its input")
	}
}

func TestDeficiencyFriendlyEmpty(t *testing.T) {
	_, err := DeficiencyFriendly(NewPalette(nil))
	if !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("error = %v, want ErrEmptyPalette", err)
	}
}
