// Package source provides palette sources: ways to obtain a colour palette
// for the accessibility engine to work on. Sources are in-process; the
// engine itself never performs I/O.
package source

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/tingekit/tinge/internal/colour"
)

// Options holds options common to all palette sources.
type Options struct {
	// Count is the number of colours to produce, where the source has a
	// choice. Zero means the source default.
	Count int

	// Logger receives source debug output. Nil disables logging.
	Logger hclog.Logger
}

// logger returns the configured logger or a discard logger.
func (o Options) logger() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

// Source produces a colour palette.
type Source interface {
	// Name returns the source name.
	Name() string

	// Description returns a one-line description of the source.
	Description() string

	// Generate produces a new palette. The returned palette is owned by
	// the caller.
	Generate(ctx context.Context, opts Options) (*colour.Palette, error)
}

// categoryFor assigns a default category by palette position: the first
// colour is primary, the second secondary, the rest accents.
func categoryFor(index int) colour.Category {
	switch index {
	case 0:
		return colour.CategoryPrimary
	case 1:
		return colour.CategorySecondary
	default:
		return colour.CategoryAccent
	}
}
