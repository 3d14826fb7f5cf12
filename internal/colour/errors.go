package colour

import (
	"errors"
	"fmt"
)

// ErrEmptyPalette is returned by operations that need at least one colour
// to produce a derived palette.
var ErrEmptyPalette = errors.New("palette contains no colours")

// UnsupportedDeficiencyError is returned when a deficiency tag is not one
// of the supported simulation types.
type UnsupportedDeficiencyError struct {
	Type string
}

func (e *UnsupportedDeficiencyError) Error() string {
	return fmt.Sprintf("unsupported colour-vision deficiency: %q (valid types: %v)", e.Type, Deficiencies())
}
