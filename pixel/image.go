package pixel

import (
	"image"
	"image/color"
)

// Buffer implements draw.Image so it can take part in the standard image
// and golang.org/x/image/draw pipelines without a copy. Native pixels map
// to color.RGBA (premultiplied), interchange pixels to color.NRGBA and
// alpha-only pixels to color.Alpha.

// ColorModel returns the color model matching the buffer's current format.
func (b *Buffer) ColorModel() color.Model {
	switch b.format {
	case FormatInterchange:
		return color.NRGBAModel
	case FormatAlpha8:
		return color.AlphaModel
	default:
		return color.RGBAModel
	}
}

// Bounds returns the buffer rectangle anchored at the origin.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At returns the pixel at (x, y), or a transparent color outside the bounds.
func (b *Buffer) At(x, y int) color.Color {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return b.ColorModel().Convert(color.Transparent)
	}
	px := b.data[off:]
	l := b.format.Layout()
	switch b.format {
	case FormatInterchange:
		return color.NRGBA{R: px[l.R], G: px[l.G], B: px[l.B], A: px[l.A]}
	case FormatAlpha8:
		return color.Alpha{A: px[l.A]}
	default:
		return color.RGBA{R: px[l.R], G: px[l.G], B: px[l.B], A: px[l.A]}
	}
}

// Set stores c at (x, y), converting it to the buffer's model.
// Points outside the bounds are ignored.
func (b *Buffer) Set(x, y int, c color.Color) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return
	}
	px := b.data[off:]
	l := b.format.Layout()
	switch b.format {
	case FormatInterchange:
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		px[l.R], px[l.G], px[l.B], px[l.A] = n.R, n.G, n.B, n.A
	case FormatAlpha8:
		px[l.A] = color.AlphaModel.Convert(c).(color.Alpha).A
	default:
		n := color.RGBAModel.Convert(c).(color.RGBA)
		px[l.R], px[l.G], px[l.B], px[l.A] = n.R, n.G, n.B, n.A
	}
}
