package pixel

import "math"

// sumChannels accumulates the channels of a 4-byte surface as fractions of
// 255 and returns the sums with the pixel count.
func sumChannels(b *Buffer) (r, g, bl, a float64, n int) {
	l := b.format.Layout()
	for y := range b.height {
		row := b.RowBytes(y)
		for x := 0; x < len(row); x += 4 {
			r += float64(row[x+l.R]) / 255
			g += float64(row[x+l.G]) / 255
			bl += float64(row[x+l.B]) / 255
			a += float64(row[x+l.A]) / 255
		}
	}
	return r, g, bl, a, b.width * b.height
}

// AverageColorPremul returns the mean of every channel of a native buffer,
// each in [0, 1]. Color channels stay premultiplied.
func AverageColorPremul(b *Buffer) (r, g, bl, a float64) {
	if b.format != FormatNative {
		return 0, 0, 0, 0
	}
	r, g, bl, a, n := sumChannels(b)
	fn := float64(n)
	return clampUnit(r / fn), clampUnit(g / fn), clampUnit(bl / fn), clampUnit(a / fn)
}

// AverageColor returns the alpha-weighted mean straight color of a native
// buffer and its mean alpha, each in [0, 1]. A fully transparent buffer
// has no color and yields transparent black.
func AverageColor(b *Buffer) (r, g, bl, a float64) {
	if b.format != FormatNative {
		return 0, 0, 0, 0
	}
	r, g, bl, a, n := sumChannels(b)
	if a == 0 {
		return 0, 0, 0, 0
	}
	return clampUnit(r / a), clampUnit(g / a), clampUnit(bl / a), clampUnit(a / float64(n))
}

// AverageColorARGB32 returns the premultiplied mean of a native buffer as
// a native word.
func AverageColorARGB32(b *Buffer) uint32 {
	r, g, bl, a := AverageColorPremul(b)
	return AssembleARGB(roundByte(a), roundByte(r), roundByte(g), roundByte(bl))
}

func clampUnit(v float64) float64 {
	return min(max(v, 0), 1)
}

func roundByte(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// ExtractAlpha returns a new FormatAlpha8 buffer holding the alpha channel
// of b.
func ExtractAlpha(b *Buffer) *Buffer {
	out := &Buffer{
		data:   make([]byte, b.width*b.height),
		width:  b.width,
		height: b.height,
		stride: b.width,
		format: FormatAlpha8,
	}
	a := b.format.Layout().A
	bpp := b.format.BytesPerPixel()
	for y := range b.height {
		row := b.RowBytes(y)
		dst := out.RowBytes(y)
		for x := range dst {
			dst[x] = row[x*bpp+a]
		}
	}
	return out
}
