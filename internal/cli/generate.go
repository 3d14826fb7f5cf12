package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tingekit/tinge/internal/colour"
	"github.com/tingekit/tinge/internal/source"
)

// newGenerateCmd represents the generate command.
func newGenerateCmd() *cobra.Command {
	var (
		prompt string
		model  string
		count  int
		save   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette from a text prompt and audit it",
		Long: `Generate asks a Google Gemini model for a colour palette matching a
text prompt, then runs the accessibility audit on the result.

Requires a GOOGLE_API_KEY (or GEMINI_API_KEY) environment variable; a
local .env file is honoured.

Examples:
  tinge generate --prompt "calm ocean sunrise"
  tinge generate --prompt "terminal theme, dark" --count 8 --save theme.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := source.NewGeminiSource(prompt, model)

			p, err := src.Generate(cmd.Context(), source.Options{
				Count:  count,
				Logger: newLogger(cmd),
			})
			if err != nil {
				return err
			}

			score := colour.Score(p)

			if save != "" {
				data, err := p.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to encode palette: %w", err)
				}
				if err := os.WriteFile(save, data, 0o600); err != nil {
					return fmt.Errorf("failed to save palette: %w", err)
				}
				cmd.Printf("Saved palette to %s\n", save)
			}

			if jsonOutput(cmd) {
				data, err := p.ToJSON()
				if err != nil {
					return fmt.Errorf("failed to encode palette: %w", err)
				}
				cmd.Println(string(data))
				return nil
			}

			printAudit(cmd, p, score, useSwatches(cmd))
			return nil
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "Palette description (required)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Gemini model to use")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Number of colours to request")
	cmd.Flags().StringVar(&save, "save", "", "Save the generated palette to a JSON file")
	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}
