// Package cli provides the command-line interface for Tinge.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tingekit/tinge/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
// This is called by main.main().
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tinge",
		Short: "A colour palette accessibility auditor",
		Long: `Tinge audits colour palettes for WCAG contrast compliance and
colour-vision deficiency friendliness.

Palettes can be loaded from files, extracted from images, or generated
from a text prompt, then scored, previewed under simulated colour-vision
deficiencies, and rewritten into accessible variants.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Pick up API keys from a local .env if present.
			_ = godotenv.Load()
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("json", false, "emit JSON instead of tables")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colour swatches in output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newAuditCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newAlternativesCmd())
	rootCmd.AddCommand(newRemapCmd())
	rootCmd.AddCommand(newGenerateCmd())

	return rootCmd
}

// newVersionCmd represents the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}

// newLogger builds the command logger: debug output on stderr under
// --verbose, discarded otherwise.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "tinge",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "tinge",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// jsonOutput reports whether the command should emit JSON.
func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

// useSwatches reports whether output may include ANSI colour swatches:
// stdout must be a terminal and --no-color unset.
func useSwatches(cmd *cobra.Command) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
