package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixconv/pixbuf"
	"github.com/gogpu/pixconv/pixel"
)

func newAverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "average IN",
		Short: "Print the mean color of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			premul, _ := cmd.Flags().GetBool("premultiplied")
			return runAverage(cmd, args[0], premul)
		},
	}
	cmd.Flags().Bool("premultiplied", false, "Report the premultiplied mean instead of the straight color")
	return cmd
}

func runAverage(cmd *cobra.Command, in string, premul bool) error {
	pb, err := pixbuf.Load(in, pixbuf.WithMIMEData(false))
	if err != nil {
		return fmt.Errorf("loading %s: %w", in, err)
	}
	buf, err := pb.Native()
	if err != nil {
		return fmt.Errorf("converting %s: %w", in, err)
	}

	average := pixel.AverageColor
	if premul {
		average = pixel.AverageColorPremul
	}
	r, g, b, a := average(buf)

	pr := newPrinter(cmd)
	pr.printf("Pixels: %d\n", buf.Width()*buf.Height())
	pr.printf("RGBA:   %.4f %.4f %.4f %.4f\n", r, g, b, a)
	pr.printf("Native: %s\n", fmt.Sprintf("#%08x", pixel.AverageColorARGB32(buf)))
	return nil
}
