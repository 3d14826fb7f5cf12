package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tingekit/tinge/internal/colour"
)

// newAuditCmd represents the audit command.
func newAuditCmd() *cobra.Command {
	flags := &paletteFlags{}

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Score a palette against WCAG accessibility requirements",
		Long: `Audit computes the WCAG contrast checks for a palette: every colour
against white and black plus all pairwise combinations, the worst
compliance level observed, a colour-vision confusability screen, and
actionable recommendations.

Examples:
  # Audit a palette file
  tinge audit --file theme.json

  # Audit colours given on the command line
  tinge audit --colour background=#1e1e2e --colour accent=#f38ba8

  # Audit the palette of an image
  tinge audit --image wallpaper.jpg --count 6

  # Machine-readable output
  tinge audit --file theme.json --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.loadPalette(cmd)
			if err != nil {
				return err
			}

			score := colour.Score(p)

			if jsonOutput(cmd) {
				data, err := json.MarshalIndent(score, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode score: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			printAudit(cmd, p, score, useSwatches(cmd))
			return nil
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

// printAudit renders the human-readable audit report.
func printAudit(cmd *cobra.Command, p *colour.Palette, score colour.AccessibilityScore, swatches bool) {
	table := NewTable([]string{"Colour", "Hex", "HSL", "vs White", "vs Black", "Level"})
	for _, c := range p.Colours {
		name := c.Name
		if swatches {
			name = colour.Preview(c.RGB, 3) + " " + name
		}
		table.AddRow([]string{
			name,
			c.Hex,
			c.HSL.String(),
			fmt.Sprintf("%.2f", c.Accessibility.ContrastWithWhite),
			fmt.Sprintf("%.2f", c.Accessibility.ContrastWithBlack),
			string(c.Accessibility.WCAGLevel),
		})
	}
	cmd.Println(table.Render())

	cmd.Printf("Overall: %s (%d/%d checks passed)\n", score.Overall, score.PassedChecks, score.TotalChecks)
	if score.ColourBlindSafe {
		cmd.Println("Colour vision: no confusable pairs detected")
	} else {
		cmd.Println("Colour vision: confusable pairs detected")
		for _, pair := range colour.ConfusablePairs(p) {
			cmd.Printf("  %s: %s ~ %s (distance %.1f)\n", pair.Deficiency, pair.Colour1, pair.Colour2, pair.Distance)
		}
	}

	cmd.Println("\nRecommendations:")
	for _, rec := range score.Recommendations {
		cmd.Printf("  - %s\n", rec)
	}

	failing := failingChecks(score)
	if len(failing) > 0 {
		cmd.Println("\nFailing pairs:")
		for _, check := range failing {
			cmd.Printf("  %s vs %s: %.2f\n", check.Colour1, check.Colour2, check.Ratio)
		}
	}
}

// failingChecks filters the checks down to FAIL-level entries.
func failingChecks(score colour.AccessibilityScore) []colour.ContrastCheck {
	var out []colour.ContrastCheck
	for _, check := range score.Checks {
		if check.Level == colour.LevelFail && !strings.EqualFold(check.Colour1, check.Colour2) {
			out = append(out, check)
		}
	}
	return out
}
