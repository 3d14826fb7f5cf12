package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tingekit/tinge/internal/colour"
	"github.com/tingekit/tinge/internal/source"
)

// paletteFlags holds the shared palette-input flags used by every command
// that operates on an existing palette.
type paletteFlags struct {
	file    string
	image   string
	colours []string
	count   int
	seed    int64
}

// register adds the palette-input flags to a flag set.
func (f *paletteFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&f.file, "file", "f", "", "Path to a palette file (JSON or text)")
	flags.StringVarP(&f.image, "image", "i", "", "Path to an image to extract a palette from")
	flags.StringArrayVarP(&f.colours, "colour", "c", nil, "Colour specification (name=hex, repeatable)")
	flags.IntVarP(&f.count, "count", "n", 0, "Number of colours to extract from an image")
	flags.Int64Var(&f.seed, "seed", 1, "Extraction seed for reproducible image palettes")
}

// resolve picks the palette source implied by the flags.
func (f *paletteFlags) resolve() (source.Source, error) {
	switch {
	case f.image != "" && (f.file != "" || len(f.colours) > 0):
		return nil, fmt.Errorf("--image cannot be combined with --file or --colour")
	case f.image != "":
		return source.NewImageSource(f.image, f.seed), nil
	case f.file != "" || len(f.colours) > 0:
		return source.NewFileSource(f.file, f.colours), nil
	default:
		return nil, fmt.Errorf("no palette input: provide --file, --image or --colour")
	}
}

// loadPalette resolves the flags to a source and generates the palette.
func (f *paletteFlags) loadPalette(cmd *cobra.Command) (*colour.Palette, error) {
	src, err := f.resolve()
	if err != nil {
		return nil, err
	}

	log := newLogger(cmd)
	log.Debug("loading palette", "source", src.Name())

	p, err := src.Generate(cmd.Context(), source.Options{
		Count:  f.count,
		Logger: log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load palette: %w", err)
	}
	return p, nil
}
