package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixconv/color"
)

func newChromaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chroma",
		Short: "Print the largest in-gamut OKLCh chroma for a lightness and hue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, _ := cmd.Flags().GetFloat64("l")
			h, _ := cmd.Flags().GetFloat64("h")

			c := color.MaxChroma(l, h)
			rgb := color.OklabToRGB(color.OklchToOklab(color.Triplet{l, c, h}))

			pr := newPrinter(cmd)
			pr.printf("MaxChroma(%.4f, %.2f) = %.6f\n", l, h, c)
			pr.printf("sRGB: %s\n", fmt.Sprintf("#%02x%02x%02x",
				color.FloatToByte(rgb[0]), color.FloatToByte(rgb[1]), color.FloatToByte(rgb[2])))
			return nil
		},
	}
	cmd.Flags().Float64("l", 0.7, "OKLab lightness in [0, 1]")
	cmd.Flags().Float64("h", 0, "Hue in degrees")
	return cmd
}
