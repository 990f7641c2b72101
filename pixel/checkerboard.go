package pixel

import "github.com/gogpu/pixconv/color"

// CheckerSize is the edge length in pixels of one checkerboard tile.
// A tile holds two squares of each shade.
const CheckerSize = 12

// checkerShift is the HSL lightness offset between the two shades.
const checkerShift = 0.08

// Checkerboard renders one opaque native tile of the transparency
// checkerboard for the straight 0xRRGGBBAA color rgba.
//
// The light squares use the color itself and the dark squares the same
// color shifted by 0.08 in HSL lightness (upwards for very dark colors).
// With useAlpha the color is then composited over the whole tile at its
// own alpha, so the pattern shows through in proportion to transparency.
func Checkerboard(rgba uint32, useAlpha bool) *Buffer {
	base := color.Triplet{
		float64(rgba>>24&0xFF) / 255,
		float64(rgba>>16&0xFF) / 255,
		float64(rgba>>8&0xFF) / 255,
	}
	hsl := color.RGBToHSL(base)
	if hsl[2] < checkerShift {
		hsl[2] += checkerShift
	} else {
		hsl[2] -= checkerShift
	}
	shade := color.HSLToRGB(hsl)

	// The light squares already hold the color, so only the dark ones
	// change under the overlay.
	if alpha := float64(rgba&0xFF) / 255; useAlpha && alpha > 0 {
		shade = over(base, shade, alpha)
	}
	light, dark := opaqueNative(base), opaqueNative(shade)

	const half = CheckerSize / 2
	buf, _ := NewBuffer(CheckerSize, CheckerSize, FormatNative)
	for y := range CheckerSize {
		row := buf.RowBytes(y)
		for x := range CheckerSize {
			px := light
			if (x < half) == (y < half) {
				px = dark
			}
			copy(row[4*x:], px[:])
		}
	}
	return buf
}

// over composites src at alpha a over an opaque dst.
func over(src, dst color.Triplet, a float64) color.Triplet {
	var out color.Triplet
	for i := range out {
		out[i] = src[i]*a + dst[i]*(1-a)
	}
	return out
}

func opaqueNative(rgb color.Triplet) [4]byte {
	l := FormatNative.Layout()
	var px [4]byte
	px[l.R] = color.FloatToByte(rgb[0])
	px[l.G] = color.FloatToByte(rgb[1])
	px[l.B] = color.FloatToByte(rgb[2])
	px[l.A] = 0xFF
	return px
}
