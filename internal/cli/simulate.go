package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tingekit/tinge/internal/colour"
)

// newSimulateCmd represents the simulate command.
func newSimulateCmd() *cobra.Command {
	flags := &paletteFlags{}
	var defType string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Preview a palette under a colour-vision deficiency",
		Long: `Simulate shows how each palette colour appears under a colour-vision
deficiency. The simulated colours are a preview only; the original
palette is not changed.

Supported types: protanopia, deuteranopia, tritanopia, achromatopsia.

Examples:
  tinge simulate --file theme.json --type deuteranopia
  tinge simulate --colour success=#00aa00 --colour error=#cc0000 --type protanopia`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deficiency, err := colour.ParseDeficiency(defType)
			if err != nil {
				return err
			}

			p, err := flags.loadPalette(cmd)
			if err != nil {
				return err
			}

			sim, err := colour.SimulatePalette(p, deficiency)
			if err != nil {
				return err
			}

			if jsonOutput(cmd) {
				data, err := sim.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to encode palette: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			swatches := useSwatches(cmd)
			table := NewTable([]string{"Colour", "Original", "Simulated"})
			for i, c := range p.Colours {
				orig, simulated := c.Hex, sim.Colours[i].Hex
				if swatches {
					orig = colour.Preview(c.RGB, 3) + " " + orig
					simulated = colour.Preview(sim.Colours[i].RGB, 3) + " " + simulated
				}
				table.AddRow([]string{c.Name, orig, simulated})
			}
			cmd.Println(table.Render())

			if pairs := colour.ConfusablePairs(p); len(pairs) > 0 {
				cmd.Println("Confusable pairs:")
				for _, pair := range pairs {
					cmd.Printf("  %s: %s ~ %s (distance %.1f)\n", pair.Deficiency, pair.Colour1, pair.Colour2, pair.Distance)
				}
			}
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&defType, "type", "t", string(colour.Deuteranopia), "Deficiency type to simulate")
	return cmd
}
