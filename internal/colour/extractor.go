// Package colour provides colour extraction from images.
package colour

import (
	"fmt"
	"image"
)

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract extracts the given number of representative colours from an image.
	Extract(img image.Image, count int) ([]RGB, error)
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	ColourCount int
	Seed        int64
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		ColourCount: 5,
		Seed:        1,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if c.ColourCount < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.ColourCount)
	}
	if c.ColourCount > 256 {
		return fmt.Errorf("colour count too large: %d (maximum: 256)", c.ColourCount)
	}
	return nil
}
