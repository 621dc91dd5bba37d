package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/crayonbox/colorpick"
)

func newPaletteCmd() *cobra.Command {
	var (
		rainbow int
		seed    uint64
		current string
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the preset colors or generate rainbow letter colors",
		Long: `List the preset colors, or with --rainbow print one color per letter the way
rainbow mode picks them.

Examples:
  colorpick palette
  colorpick palette --rainbow 12 --seed 7 --current "#33ff57"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if rainbow <= 0 {
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "LABEL\tHEX\tNAME")
				fmt.Fprintln(w, "-----\t---\t----")
				for _, s := range colorpick.Presets {
					fmt.Fprintf(w, "%s\t%s\t%s\n", s.Label, s.Hex, colorpick.Name(colorpick.HexToRGB(s.Hex)))
				}
				return w.Flush()
			}

			cur, err := colorpick.NormalizeHex(current)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			for _, hex := range colorpick.NewRainbow(seed).Colors(rainbow, cur) {
				fmt.Fprintln(out, hex)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&rainbow, "rainbow", 0, "Number of rainbow letter colors to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: time based)")
	cmd.Flags().StringVar(&current, "current", "#000000", "Color currently selected in the picker")
	return cmd
}
