package cli

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/crayonbox/colorpick"
	"github.com/crayonbox/colorpick/internal/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [hex]",
		Short: "Pick a color interactively in the terminal",
		Long: `Open the picker in the terminal. Drag on the plane and the hue strip with the
mouse, press 1-7 for a preset, enter to accept or esc to cancel. The accepted
color is printed on stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := colorpick.Presets[0].Hex
			if len(args) == 1 {
				c, err := colorpick.ParseHex(args[0])
				if err != nil {
					return err
				}
				start = colorpick.RGBToHex(c)
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to open terminal: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("failed to initialize terminal: %w", err)
			}

			hex, err := tui.New(screen, start).Run()
			screen.Fini()
			if errors.Is(err, tui.ErrCanceled) {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex)
			return nil
		},
	}
}
