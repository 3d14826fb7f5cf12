package source

import (
	"context"
	"fmt"

	"github.com/tingekit/tinge/internal/colour"
	"github.com/tingekit/tinge/internal/image"
)

// ImageSource extracts a palette from an image file by k-means clustering.
// The same image and seed always yield the same palette.
type ImageSource struct {
	Path string
	Seed int64

	loader image.Loader
}

// NewImageSource creates an image source for the given file.
func NewImageSource(path string, seed int64) *ImageSource {
	return &ImageSource{
		Path:   path,
		Seed:   seed,
		loader: image.NewFileLoader(),
	}
}

// Name returns the source name.
func (s *ImageSource) Name() string { return "image" }

// Description returns the source description.
func (s *ImageSource) Description() string {
	return "Extract a palette from an image file (JPEG, PNG, GIF, WebP)"
}

// Generate loads the image and extracts its representative colours.
func (s *ImageSource) Generate(ctx context.Context, opts Options) (*colour.Palette, error) {
	log := opts.logger()

	cfg := colour.DefaultExtractorConfig()
	cfg.Seed = s.Seed
	if opts.Count > 0 {
		cfg.ColourCount = opts.Count
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	img, err := s.loader.Load(s.Path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debug("extracting colours", "path", s.Path, "count", cfg.ColourCount, "seed", cfg.Seed)

	var extractor colour.Extractor = colour.NewKMeansExtractor(cfg.Seed)
	rgbs, err := extractor.Extract(img, cfg.ColourCount)
	if err != nil {
		return nil, fmt.Errorf("colour extraction failed: %w", err)
	}

	colours := make([]colour.Colour, len(rgbs))
	for i, rgb := range rgbs {
		colours[i] = colour.NewColour(colour.RGBToHex(rgb), fmt.Sprintf("Colour %d", i+1), categoryFor(i), "")
	}

	p := colour.NewPalette(colours)
	p.Name = s.Path
	return p, nil
}
