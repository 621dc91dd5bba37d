// Package cli implements the colorpick command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/crayonbox/colorpick"
)

// NewRootCmd builds the colorpick command tree.
func NewRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "colorpick",
		Short: "Convert, sample and pick colors",
		Long: `colorpick converts colors between hex, RGB, HSV, HSL and CMYK, renders the
saturation/value plane and hue strip of the picker, and runs an interactive
picker in the terminal.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				colorpick.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newPlaneCmd())
	root.AddCommand(newStripCmd())
	root.AddCommand(newSampleCmd())
	root.AddCommand(newPaletteCmd())
	root.AddCommand(newTUICmd())
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
