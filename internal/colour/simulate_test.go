package colour

import (
	"errors"
	"testing"
)

func TestSimulateProtanopia(t *testing.T) {
	// Pure red loses its red channel dominance: 0.567*255 and 0.558*255.
	got, err := Simulate("#FF0000", Protanopia)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if got != "#918e00" {
		t.Errorf("Simulate(#FF0000, protanopia) = %s, want #918e00", got)
	}
}

func TestSimulateDeuteranopia(t *testing.T) {
	got, err := Simulate("#00FF00", Deuteranopia)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	// Green maps to 0.375/0.3/0.3 of full scale.
	if got != "#604d4d" {
		t.Errorf("Simulate(#00FF00, deuteranopia) = %s, want #604d4d", got)
	}
}

func TestSimulateAchromatopsiaDesaturates(t *testing.T) {
	hexes := []string{"#FF0000", "#00FF00", "#0000FF", "#FF5733", "#3B82F6", "#ABCDEF"}

	for _, hex := range hexes {
		t.Run(hex, func(t *testing.T) {
			got, err := Simulate(hex, Achromatopsia)
			if err != nil {
				t.Fatalf("Simulate() error = %v", err)
			}
			hsl := HexToHSL(got)
			if hsl.S != 0 {
				t.Errorf("achromatopsia simulation of %s has saturation %d, want 0", hex, hsl.S)
			}
		})
	}
}

func TestSimulateAchromatopsiaGrayValue(t *testing.T) {
	// 0.299 of full red: round(0.299*255) = 76 = 0x4c.
	got, err := Simulate("#FF0000", Achromatopsia)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if got != "#4c4c4c" {
		t.Errorf("Simulate(#FF0000, achromatopsia) = %s, want #4c4c4c", got)
	}
}

func TestSimulateWhiteIsStable(t *testing.T) {
	// White stays white under every deficiency: every matrix row sums to 1.
	for _, d := range Deficiencies() {
		got, err := Simulate("#FFFFFF", d)
		if err != nil {
			t.Fatalf("Simulate(white, %s) error = %v", d, err)
		}
		if got != "#ffffff" {
			t.Errorf("Simulate(white, %s) = %s, want #ffffff", d, got)
		}
	}
}

func TestSimulateUnsupportedType(t *testing.T) {
	_, err := Simulate("#FF0000", Deficiency("monochromacy"))
	if err == nil {
		t.Fatal("expected error for unsupported deficiency")
	}

	var unsupported *UnsupportedDeficiencyError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error type = %T, want *UnsupportedDeficiencyError", err)
	}
	if unsupported.Type != "monochromacy" {
		t.Errorf("error Type = %s, want monochromacy", unsupported.Type)
	}
}

func TestParseDeficiency(t *testing.T) {
	for _, d := range Deficiencies() {
		got, err := ParseDeficiency(string(d))
		if err != nil {
			t.Errorf("ParseDeficiency(%s) error = %v", d, err)
		}
		if got != d {
			t.Errorf("ParseDeficiency(%s) = %s", d, got)
		}
	}

	if _, err := ParseDeficiency("rainbow"); err == nil {
		t.Error("expected error for unknown deficiency tag")
	}
}

func TestSimulatePalette(t *testing.T) {
	p := NewPalette([]Colour{
		NewColour("#FF0000", "Red", CategoryPrimary, "errors"),
		NewColour("#00FF00", "Green", CategoryAccent, "success"),
	})

	sim, err := SimulatePalette(p, Achromatopsia)
	if err != nil {
		t.Fatalf("SimulatePalette() error = %v", err)
	}

	if sim.Len() != p.Len() {
		t.Fatalf("simulated palette has %d colours, want %d", sim.Len(), p.Len())
	}
	for i, c := range sim.Colours {
		if c.HSL.S != 0 {
			t.Errorf("colour %d not desaturated: %+v", i, c.HSL)
		}
		if c.Name != p.Colours[i].Name || c.Usage != p.Colours[i].Usage {
			t.Errorf("colour %d lost its metadata", i)
		}
	}

	// The input palette is untouched.
	if p.Colours[0].Hex != "#FF0000" {
		t.Error("SimulatePalette modified its input")
	}
}

func TestSimulatePaletteEmpty(t *testing.T) {
	_, err := SimulatePalette(NewPalette(nil), Protanopia)
	if !errors.Is(err, ErrEmptyPalette) {
		t.Errorf("error = %v, want ErrEmptyPalette", err)
	}
}
