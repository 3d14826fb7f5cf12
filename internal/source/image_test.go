package source

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestImage encodes a two-tone PNG into dir and returns its path.
func writeTestImage(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if x < 10 {
				img.Set(x, y, color.RGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.RGBA{B: 255, A: 255})
			}
		}
	}

	path := filepath.Join(dir, "palette.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestImageSourceGenerate(t *testing.T) {
	path := writeTestImage(t, t.TempDir())

	src := NewImageSource(path, 1)
	p, err := src.Generate(t.Context(), Options{Count: 2})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if p.Len() != 2 {
		t.Fatalf("palette has %d colours, want 2", p.Len())
	}
	if p.Name != path {
		t.Errorf("palette name = %q, want %q", p.Name, path)
	}

	hexes := map[string]bool{}
	for _, c := range p.Colours {
		hexes[c.Hex] = true
	}
	if !hexes["#FF0000"] || !hexes["#0000FF"] {
		t.Errorf("extracted colours = %v, want pure red and blue", p.Hexes())
	}
}

func TestImageSourceGenerateDeterministic(t *testing.T) {
	path := writeTestImage(t, t.TempDir())

	first, err := NewImageSource(path, 42).Generate(t.Context(), Options{Count: 2})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	second, err := NewImageSource(path, 42).Generate(t.Context(), Options{Count: 2})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for i := range first.Colours {
		if first.Colours[i].Hex != second.Colours[i].Hex {
			t.Errorf("colour %d differs between runs: %s vs %s", i, first.Colours[i].Hex, second.Colours[i].Hex)
		}
	}
}

func TestImageSourceGenerateMissingFile(t *testing.T) {
	src := NewImageSource(filepath.Join(t.TempDir(), "absent.png"), 1)
	if _, err := src.Generate(t.Context(), Options{}); err == nil {
		t.Fatal("expected error for missing image file")
	}
}

func TestImageSourceGenerateInvalidCount(t *testing.T) {
	path := writeTestImage(t, t.TempDir())

	src := NewImageSource(path, 1)
	if _, err := src.Generate(t.Context(), Options{Count: 1000}); err == nil {
		t.Fatal("expected error for excessive colour count")
	}
}
