package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixconv/pixbuf"
	"github.com/gogpu/pixconv/pixel"
)

func newCheckerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checker COLOR",
		Short: "Render the transparency checkerboard tile for a color as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var c colorValue
			if err := c.Set(args[0]); err != nil {
				return err
			}
			useAlpha, _ := cmd.Flags().GetBool("alpha")
			out, _ := cmd.Flags().GetString("output")

			tile := pixel.Checkerboard(c.RGBA(), useAlpha)
			pb, err := pixbuf.New(tile)
			if err != nil {
				return err
			}
			if err := pb.SavePNG(out); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			newPrinter(cmd).printf("Rendered %dx%d tile to %s\n", tile.Width(), tile.Height(), out)
			return nil
		},
	}
	cmd.Flags().Bool("alpha", false, "Composite the color over the tile at its own alpha")
	cmd.Flags().StringP("output", "o", "", "Output PNG file")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
