package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixconv/color"
	"github.com/gogpu/pixconv/pixbuf"
	"github.com/gogpu/pixconv/pixel"
)

func newScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "scale hue|saturation|lightness",
		Short:     "Render an OKHSL color picker slider as PNG",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"hue", "saturation", "lightness"},
		RunE: func(cmd *cobra.Command, args []string) error {
			h, _ := cmd.Flags().GetFloat64("h")
			s, _ := cmd.Flags().GetFloat64("s")
			l, _ := cmd.Flags().GetFloat64("l")
			height, _ := cmd.Flags().GetInt("height")
			out, _ := cmd.Flags().GetString("output")
			return runScale(cmd, args[0], h, s, l, height, out)
		},
	}
	cmd.Flags().Float64("h", 0, "Hue in degrees (saturation and lightness scales)")
	cmd.Flags().Float64("s", 1, "OKHSL saturation in [0, 1] (hue and lightness scales)")
	cmd.Flags().Float64("l", 0.6, "Lightness in [0, 1] (hue and saturation scales)")
	cmd.Flags().Int("height", 16, "Height of the strip in pixels")
	cmd.Flags().StringP("output", "o", "", "Output PNG file")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runScale(cmd *cobra.Command, kind string, h, s, l float64, height int, out string) error {
	var m color.Scale
	var strip []byte
	switch kind {
	case "hue":
		strip = color.RenderHueScale(s, l, &m)
	case "saturation":
		strip = color.RenderSaturationScale(h, l, &m)
	case "lightness":
		strip = color.RenderLightnessScale(h, s, &m)
	default:
		return fmt.Errorf("unknown scale %q", kind)
	}

	buf, err := pixel.NewBuffer(color.ScaleLength, height, pixel.FormatInterchange)
	if err != nil {
		return fmt.Errorf("allocating strip: %w", err)
	}
	for y := range height {
		copy(buf.RowBytes(y), strip)
	}

	pb, err := pixbuf.New(buf)
	if err != nil {
		return err
	}
	if err := pb.SavePNG(out); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	newPrinter(cmd).printf("Rendered %s scale %dx%d to %s\n", kind, color.ScaleLength, height, out)
	return nil
}
