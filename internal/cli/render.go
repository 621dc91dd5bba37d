package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crayonbox/colorpick"
)

func newPlaneCmd() *cobra.Command {
	var (
		hue           float64
		width, height int
		output        string
	)

	cmd := &cobra.Command{
		Use:   "plane",
		Short: "Render the saturation/value plane of a hue as PNG",
		Long: `Render the saturation/value plane of a hue as PNG.

Examples:
  colorpick plane --hue 210 --output plane.png
  colorpick plane --hue 0 --width 300 --height 200 --output - > plane.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := colorpick.NewPlane(hue, colorpick.Sz(float64(width), float64(height)))
			return writePNG(cmd, p.Render(width, height), output)
		},
	}
	cmd.Flags().Float64Var(&hue, "hue", 0, "Hue in degrees")
	cmd.Flags().IntVar(&width, "width", colorpick.DefaultPlaneWidth, "Width in pixels")
	cmd.Flags().IntVar(&height, "height", colorpick.DefaultPlaneHeight, "Height in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, or - for stdout (required)")
	cmd.MarkFlagRequired("output")
	return cmd
}

func newStripCmd() *cobra.Command {
	var (
		width, height int
		output        string
	)

	cmd := &cobra.Command{
		Use:   "strip",
		Short: "Render the hue strip as PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := colorpick.HueStrip{Width: float64(width)}
			return writePNG(cmd, s.Render(width, height), output)
		},
	}
	cmd.Flags().IntVar(&width, "width", colorpick.DefaultStripWidth, "Width in pixels")
	cmd.Flags().IntVar(&height, "height", 24, "Height in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, or - for stdout (required)")
	cmd.MarkFlagRequired("output")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var (
		hue, x, y     float64
		width, height float64
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the color at a point of the plane",
		Long: `Print the color a picker selects when the hue strip is at --hue and the
crosshair is at (--x, --y). Points outside the plane clamp to its edge.

Examples:
  colorpick sample --hue 120 --x 100 --y 200`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := colorpick.New("#000000",
				colorpick.WithPlaneSize(width, height),
				colorpick.WithStripWidth(360),
			)
			m.SetColorFromPlanePosition(colorpick.Pt(x, y), width, height)
			m.SetHueFromStripOffset(hue, 360)
			fmt.Fprintln(cmd.OutOrStdout(), m.Hex())
			return nil
		},
	}
	cmd.Flags().Float64Var(&hue, "hue", 0, "Hue in degrees [0, 360]")
	cmd.Flags().Float64Var(&x, "x", 0, "Crosshair x")
	cmd.Flags().Float64Var(&y, "y", 0, "Crosshair y")
	cmd.Flags().Float64Var(&width, "width", colorpick.DefaultPlaneWidth, "Plane width")
	cmd.Flags().Float64Var(&height, "height", colorpick.DefaultPlaneHeight, "Plane height")
	return cmd
}

func writePNG(cmd *cobra.Command, pm *colorpick.Pixmap, output string) error {
	if output == "-" {
		return pm.EncodePNG(cmd.OutOrStdout())
	}
	if err := pm.SavePNG(output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %dx%d %s\n", pm.Width(), pm.Height(), output)
	return nil
}
