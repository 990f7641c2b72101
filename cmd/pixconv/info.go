package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixconv/pixbuf"
	"github.com/gogpu/pixconv/pixel"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info IN",
		Short: "Describe a decoded image and its pixel layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0])
		},
	}
}

func runInfo(cmd *cobra.Command, in string) error {
	pb, err := pixbuf.Load(in)
	if err != nil {
		return fmt.Errorf("loading %s: %w", in, err)
	}

	pr := newPrinter(cmd)
	pr.printf("File:       %s\n", pb.Path())
	pr.printf("Modified:   %s\n", pb.ModTime().Format(time.RFC3339))
	pr.printf("Dimensions: %d x %d\n", pb.Width(), pb.Height())
	pr.printf("Pixels:     %d\n", pb.Width()*pb.Height())

	if mime, data := pb.MIMEData(); mime != "" {
		pr.printf("MIME data:  %s (%d bytes)\n", mime, len(data))
	} else {
		pr.printf("MIME data:  none\n")
	}

	// Decoders produce straight pixels; show both layouts the image can take.
	printLayout(pr, pb.Buffer())
	native, err := pb.Native()
	if err != nil {
		return fmt.Errorf("converting %s: %w", in, err)
	}
	printLayout(pr, native)
	return nil
}

func printLayout(pr printer, buf *pixel.Buffer) {
	pr.printf("%-11s %d bytes/row, texture %v\n",
		buf.Format().String()+":", buf.Stride(), buf.Format().TextureFormat())
}
