// Tinge - a colour palette accessibility auditor
//
// Tinge scores colour palettes against WCAG contrast requirements,
// simulates colour-vision deficiencies and derives accessible variants.
package main

import (
	"os"

	"github.com/tingekit/tinge/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
