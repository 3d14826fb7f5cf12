package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tingekit/tinge/internal/colour"
)

// newAlternativesCmd represents the alternatives command.
func newAlternativesCmd() *cobra.Command {
	flags := &paletteFlags{}
	var level string

	cmd := &cobra.Command{
		Use:   "alternatives",
		Short: "Derive a WCAG-compliant variant of a palette",
		Long: `Alternatives searches nearby lightness values for each colour, holding
hue and saturation fixed, to find a variant whose contrast against white
meets the target WCAG level. Colours that cannot be improved on the
search grid are returned unchanged.

Examples:
  tinge alternatives --file theme.json --level AA
  tinge alternatives --colour brand=#ff5733 --level AAA`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := colour.Level(strings.ToUpper(level))
			if _, ok := colour.TargetRatio(target); !ok {
				return fmt.Errorf("invalid target level %q (must be AA or AAA)", level)
			}

			p, err := flags.loadPalette(cmd)
			if err != nil {
				return err
			}

			out, err := colour.AccessiblePalette(p, target)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				data, err := out.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to encode palette: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			printDerived(cmd, p, out, useSwatches(cmd))
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&level, "level", "l", "AA", "Target WCAG level (AA or AAA)")
	return cmd
}

// printDerived renders an original/derived palette comparison.
func printDerived(cmd *cobra.Command, before, after *colour.Palette, swatches bool) {
	table := NewTable([]string{"Colour", "Before", "After", "vs White"})
	for i, c := range before.Colours {
		derived := after.Colours[i]
		orig, next := c.Hex, derived.Hex
		if swatches {
			orig = colour.Preview(c.RGB, 3) + " " + orig
			next = colour.Preview(derived.RGB, 3) + " " + next
		}
		table.AddRow([]string{
			c.Name,
			orig,
			next,
			fmt.Sprintf("%.2f -> %.2f", c.Accessibility.ContrastWithWhite, derived.Accessibility.ContrastWithWhite),
		})
	}
	cmd.Println(table.Render())
}
