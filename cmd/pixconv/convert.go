package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixconv/pixbuf"
	"github.com/gogpu/pixconv/pixel"
)

func newConvertCmd() *cobra.Command {
	background := &colorValue{text: "transparent"}
	interp := interpolationValue(pixel.InterpolationSRGB)

	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Round-trip an image through premultiplied pixels and write PNG",
		Long: `Decode IN, premultiply it into the native layout, optionally re-encode
its color as linear light, and write it back out as straight-alpha PNG.
Fully transparent pixels are replaced by the background color.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mask, _ := cmd.Flags().GetString("mask")
			return runConvert(cmd, args[0], args[1], background.argb,
				pixel.ColorInterpolation(interp), mask)
		},
	}

	cmd.Flags().Var(background, "background", "Color for fully transparent pixels (name or #rrggbb[aa])")
	cmd.Flags().Var(&interp, "interpolation", "Color encoding of the output (srgb, linearRGB)")
	cmd.Flags().String("mask", "", "Also write the alpha channel as a grayscale PNG to this path")
	return cmd
}

func runConvert(cmd *cobra.Command, in, out string, background uint32,
	interp pixel.ColorInterpolation, mask string) error {
	pb, err := pixbuf.Load(in, pixbuf.WithMIMEData(false))
	if err != nil {
		return fmt.Errorf("loading %s: %w", in, err)
	}

	buf, err := pb.Native()
	if err != nil {
		return fmt.Errorf("converting %s: %w", in, err)
	}
	buf.SetColorInterpolation(pixel.InterpolationSRGB)
	buf.SetColorInterpolation(interp)

	if mask != "" {
		if err := writeMask(mask, pixel.ExtractAlpha(buf)); err != nil {
			return err
		}
	}

	if err := buf.EnsureInterchange(background); err != nil {
		return fmt.Errorf("converting %s: %w", in, err)
	}
	if err := pb.SavePNG(out); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	pr := newPrinter(cmd)
	pr.printf("Converted %dx%d (%d pixels, %s)\n", pb.Width(), pb.Height(), pb.Width()*pb.Height(), interp)
	pr.printf("Output: %s\n", out)
	return nil
}

func writeMask(path string, alpha *pixel.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating mask: %w", err)
	}
	if err := png.Encode(f, alpha); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding mask: %w", err)
	}
	return f.Close()
}
