// Package colour implements the palette accessibility engine: colour model
// conversion, WCAG contrast analysis, colour-vision deficiency simulation
// and accessible palette transforms.
package colour

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// HSL represents a colour in HSL format with integer channels.
// Hue is in degrees (0-359), saturation and lightness are percentages (0-100).
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// String returns the HSL colour as a string in the format "hsl(h, s%, l%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
}

// Category describes the intended role of a colour within a palette.
type Category string

const (
	CategoryPrimary   Category = "primary"
	CategorySecondary Category = "secondary"
	CategoryAccent    Category = "accent"
)

// Accessibility holds the derived accessibility metrics of a single colour.
type Accessibility struct {
	ContrastWithWhite float64 `json:"contrast_with_white"`
	ContrastWithBlack float64 `json:"contrast_with_black"`
	WCAGLevel         Level   `json:"wcag_level"`
}

// Colour is an immutable colour record. Hex, RGB and HSL always describe the
// same colour within integer rounding tolerance; Accessibility is derived
// from the RGB channels at construction.
type Colour struct {
	Hex           string        `json:"hex"`
	RGB           RGB           `json:"rgb"`
	HSL           HSL           `json:"hsl"`
	Name          string        `json:"name,omitempty"`
	Category      Category      `json:"category,omitempty"`
	Usage         string        `json:"usage,omitempty"`
	Accessibility Accessibility `json:"accessibility"`
}

// NewColour builds a Colour from a hex string, deriving the RGB and HSL
// representations and the accessibility metrics. The stored hex is the
// canonical uppercase form. Malformed hex input is clamped, never rejected.
func NewColour(hex, name string, category Category, usage string) Colour {
	rgb := HexToRGB(hex)
	return newColourFromRGB(rgb, name, category, usage)
}

// newColourFromRGB is the single construction path for Colour values so the
// derived fields cannot drift between call sites.
func newColourFromRGB(rgb RGB, name string, category Category, usage string) Colour {
	white := ContrastRatio(rgb, White)
	black := ContrastRatio(rgb, Black)

	return Colour{
		Hex:      RGBToHexUpper(rgb),
		RGB:      rgb,
		HSL:      RGBToHSL(rgb),
		Name:     name,
		Category: category,
		Usage:    usage,
		Accessibility: Accessibility{
			ContrastWithWhite: white,
			ContrastWithBlack: black,
			// Classified against the better of the two backgrounds: the
			// colour is readable as text on at least one of white/black.
			WCAGLevel: Classify(max(white, black), false),
		},
	}
}

// Palette is an ordered collection of colours with identity metadata.
// Engine operations never mutate a palette; they return new values.
type Palette struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	Prompt    string    `json:"prompt,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	Colours   []Colour  `json:"colours"`
}

// NewPalette creates a new Palette with the given colours.
// The slice is copied so later mutation by the caller cannot leak in.
func NewPalette(colours []Colour) *Palette {
	owned := make([]Colour, len(colours))
	copy(owned, colours)

	return &Palette{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Colours:   owned,
	}
}

// derive returns a new palette with the given colours, carrying over the
// name and prompt of the source palette under a fresh identity.
func (p *Palette) derive(colours []Colour, suffix string) *Palette {
	out := NewPalette(colours)
	out.Prompt = p.Prompt
	out.Name = p.Name
	if suffix != "" && p.Name != "" {
		out.Name = p.Name + " " + suffix
	}
	return out
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Get returns the colour at the specified index.
// Returns an error if the index is out of bounds.
func (p *Palette) Get(index int) (Colour, error) {
	if index < 0 || index >= len(p.Colours) {
		return Colour{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colours))
	}
	return p.Colours[index], nil
}

// Hexes returns the canonical hex codes of all colours in palette order.
func (p *Palette) Hexes() []string {
	hexes := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexes[i] = c.Hex
	}
	return hexes
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, Colour) bool) {
	return func(yield func(int, Colour) bool) {
		for i, c := range p.Colours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// ToJSON renders the palette as indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex, c.RGB.String())
	}
	return result
}
