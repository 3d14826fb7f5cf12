package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tingekit/tinge/internal/colour"
)

// FileSource loads a palette from a file and/or manual colour
// specifications of the form "name=hex".
type FileSource struct {
	Path  string
	Specs []string
}

// NewFileSource creates a file source.
func NewFileSource(path string, specs []string) *FileSource {
	return &FileSource{Path: path, Specs: specs}
}

// Name returns the source name.
func (s *FileSource) Name() string { return "file" }

// Description returns the source description.
func (s *FileSource) Description() string {
	return "Load palette from a file or build from colour specifications"
}

// Validate checks that the source has something to load.
func (s *FileSource) Validate() error {
	if s.Path == "" && len(s.Specs) == 0 {
		return fmt.Errorf("must provide either a palette file or colour specifications")
	}
	for _, spec := range s.Specs {
		if !strings.Contains(spec, "=") {
			return fmt.Errorf("invalid colour format %q: expected 'name=hex'", spec)
		}
	}
	return nil
}

// colourRecord is the JSON form of a single palette entry.
type colourRecord struct {
	Hex      string `json:"hex"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
	Usage    string `json:"usage,omitempty"`
}

// paletteFile is the JSON envelope form of a palette file.
type paletteFile struct {
	Name    string         `json:"name,omitempty"`
	Prompt  string         `json:"prompt,omitempty"`
	Colours []colourRecord `json:"colours"`
}

// Generate builds a palette from the file and the manual specifications.
// Manual specifications are appended after file colours in the order given.
func (s *FileSource) Generate(_ context.Context, opts Options) (*colour.Palette, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	var records []colourRecord
	var name, prompt string

	if s.Path != "" {
		data, err := os.ReadFile(s.Path) // #nosec G304 - User-specified palette path, intended to be read
		if err != nil {
			return nil, fmt.Errorf("failed to read palette file: %w", err)
		}
		records, name, prompt, err = parsePaletteFile(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse palette file %s: %w", s.Path, err)
		}
		log.Debug("loaded palette file", "path", s.Path, "colours", len(records))
	}

	for _, spec := range s.Specs {
		specName, hex, _ := strings.Cut(spec, "=")
		records = append(records, colourRecord{Hex: hex, Name: specName})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("palette file %s contains no colours", s.Path)
	}

	colours := make([]colour.Colour, len(records))
	for i, rec := range records {
		colours[i] = colour.NewColour(rec.Hex, recordName(rec, i), recordCategory(rec, i), rec.Usage)
	}

	p := colour.NewPalette(colours)
	p.Name = name
	p.Prompt = prompt
	return p, nil
}

// parsePaletteFile decodes a palette file. Supported forms: a JSON envelope
// with a "colours" list, a bare JSON array of records or hex strings, or
// plain text with one hex code per line.
func parsePaletteFile(data []byte) (records []colourRecord, name, prompt string, err error) {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, "", "", fmt.Errorf("file is empty")
	}

	switch trimmed[0] {
	case '{':
		var envelope paletteFile
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, "", "", err
		}
		return envelope.Colours, envelope.Name, envelope.Prompt, nil
	case '[':
		// Try records first, then a plain list of hex strings.
		var recs []colourRecord
		if err := json.Unmarshal(data, &recs); err == nil {
			return recs, "", "", nil
		}
		var hexes []string
		if err := json.Unmarshal(data, &hexes); err != nil {
			return nil, "", "", err
		}
		for _, hex := range hexes {
			recs = append(recs, colourRecord{Hex: hex})
		}
		return recs, "", "", nil
	default:
		// Plain text: one hex code per line, '#' comments allowed after it.
		for _, line := range strings.Split(trimmed, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			records = append(records, colourRecord{Hex: strings.Fields(line)[0]})
		}
		return records, "", "", nil
	}
}

// recordName fills in a positional fallback name.
func recordName(rec colourRecord, index int) string {
	if rec.Name != "" {
		return rec.Name
	}
	return fmt.Sprintf("Colour %d", index+1)
}

// recordCategory honours an explicit category and falls back to position.
func recordCategory(rec colourRecord, index int) colour.Category {
	switch colour.Category(rec.Category) {
	case colour.CategoryPrimary, colour.CategorySecondary, colour.CategoryAccent:
		return colour.Category(rec.Category)
	default:
		return categoryFor(index)
	}
}
