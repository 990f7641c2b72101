package pixel

// Premultiply scales an 8-bit color component by an 8-bit alpha.
//
// The result equals round(c*a/255) for all inputs; it is computed with the
// shift-and-add sequence rather than a division so that output is bit
// identical to other renderers using the same formula.
func Premultiply(c, a uint8) uint8 {
	t := uint32(a)*uint32(c) + 128
	return uint8((t + t>>8) >> 8)
}

// Unpremultiply reverses Premultiply up to rounding.
// An alpha of 0 yields 0xFF. Results are clamped to 255 for components
// larger than alpha, which a valid premultiplied pixel never has.
func Unpremultiply(c, a uint8) uint8 {
	if a == 0 {
		return 0xFF
	}
	v := (255*uint32(c) + uint32(a)/2) / uint32(a)
	return uint8(min(v, 255))
}
