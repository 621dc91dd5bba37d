package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.design/x/clipboard"

	"github.com/crayonbox/colorpick"
)

// copyText puts s on the system clipboard. Tests replace it.
var copyText = func(s string) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	<-clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}

func newConvertCmd() *cobra.Command {
	var (
		format  string
		copyHex bool
	)

	cmd := &cobra.Command{
		Use:   "convert <hex>",
		Short: "Show a color in every supported space",
		Long: `Show a hex color as RGB, CMYK, HSV and HSL together with its nearest CSS name.

Examples:
  colorpick convert "#ff5733"
  colorpick convert f80 --format json
  colorpick convert 3357ff --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := colorpick.ParseHex(args[0])
			if err != nil {
				return err
			}
			r := colorpick.NewReadout(c)

			switch format {
			case "text":
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				for _, row := range r.Rows() {
					fmt.Fprintf(w, "%s\t%s\n", row.Label, row.Value)
				}
				fmt.Fprintf(w, "NAME\t%s\n", r.Name)
				if err := w.Flush(); err != nil {
					return err
				}
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(r); err != nil {
					return fmt.Errorf("failed to encode readout: %w", err)
				}
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}

			if copyHex {
				if err := copyText(r.Hex); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s\n", r.Hex)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&copyHex, "copy", false, "Copy the normalized hex to the clipboard")
	return cmd
}
