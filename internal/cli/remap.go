package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tingekit/tinge/internal/colour"
)

// newRemapCmd represents the remap command.
func newRemapCmd() *cobra.Command {
	flags := &paletteFlags{}

	cmd := &cobra.Command{
		Use:   "remap",
		Short: "Shift confusion-prone hues onto colour-blind friendly anchors",
		Long: `Remap rewrites hues in the red-yellow and yellow-green bands onto
anchor hues that stay separable under red-green colour-vision
deficiencies, raising saturation where needed. Hues outside those bands
are left unchanged.

Examples:
  tinge remap --file theme.json
  tinge remap --colour success=#00aa00 --colour error=#cc0000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.loadPalette(cmd)
			if err != nil {
				return err
			}

			out, err := colour.DeficiencyFriendly(p)
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

			if colour.Distinguishable(out) {
				cmd.Println("Remapped palette has no confusable pairs.")
			} else {
				cmd.Println("Remapped palette still has confusable pairs; consider adjusting lightness as well.")
			}
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
