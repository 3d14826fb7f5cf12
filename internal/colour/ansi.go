// Package colour provides terminal colour previews.
package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for truecolour terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Uses background colour with spaces for a solid block.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	block := strings.Repeat(" ", width)

	return bgColour + block + ansiReset
}

// PreviewWithText returns a colour preview with text overlay.
// The text colour is chosen to have good contrast with the background.
func PreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	// Pick black or white text depending on background luminance.
	fg := White
	if Luminance(c) > 0.5 {
		fg = Black
	}

	if len(text) > width {
		text = text[:width]
	}
	padded := text + strings.Repeat(" ", width-len(text))

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)

	return bgColour + fgColour + padded + ansiReset
}
