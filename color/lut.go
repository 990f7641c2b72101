package color

// Byte-to-byte transfer tables used by the surface color-interpolation
// filters. Each entry is c/255 passed through the transfer function, scaled
// back by 255 and truncated, which is the rounding the compositing pipeline
// has always used. Truncation means FromLinear8(255) is 254; that value is
// kept for pixel-identical output.
var (
	toLinear8   [256]uint8
	fromLinear8 [256]uint8
)

func init() {
	for i := range 256 {
		c := float64(i) / 255.0
		toLinear8[i] = truncByte(ToLinear(c) * 255.0)
		fromLinear8[i] = truncByte(FromLinear(c) * 255.0)
	}
}

func truncByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// ToLinear8 converts an 8-bit sRGB component to an 8-bit linear component.
//
// Example:
//
//	ToLinear8(128) // 55, not 128
func ToLinear8(c uint8) uint8 {
	return toLinear8[c]
}

// FromLinear8 converts an 8-bit linear component to an 8-bit sRGB component.
//
// Example:
//
//	FromLinear8(128) // 187, not 128
func FromLinear8(c uint8) uint8 {
	return fromLinear8[c]
}
