package pixel

// Packed words are 4-byte pixels read little-endian from a buffer, so a
// native pixel is 0xAARRGGBB and an interchange pixel is 0xAABBGGRR.
// The CSS-style words accepted by NativeFromRGBA and RGBAFromNative are
// 0xRRGGBBAA regardless of storage.

// ExtractARGB splits a native word into its channels.
func ExtractARGB(p uint32) (a, r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// AssembleARGB packs channels into a native word.
func AssembleARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// InterchangeToNative converts one straight-alpha interchange pixel into a
// premultiplied native pixel. A fully transparent input yields 0 whatever
// its color channels hold.
func InterchangeToNative(p uint32) uint32 {
	a := uint8(p >> 24)
	if a == 0 {
		return 0
	}
	r, g, b := uint8(p), uint8(p>>8), uint8(p>>16)
	return AssembleARGB(a, Premultiply(r, a), Premultiply(g, a), Premultiply(b, a))
}

// NativeToInterchange converts one premultiplied native pixel into a
// straight-alpha interchange pixel.
//
// Fully transparent pixels have no color to recover; they are replaced by
// fallback, given as a 0xAARRGGBB word and emitted as is (its own alpha
// included) in interchange byte order. A fallback of 0 keeps them
// transparent black.
func NativeToInterchange(p, fallback uint32) uint32 {
	a, r, g, b := ExtractARGB(p)
	if a == 0 {
		a, r, g, b = ExtractARGB(fallback)
		return interchangeWord(r, g, b, a)
	}
	return interchangeWord(Unpremultiply(r, a), Unpremultiply(g, a), Unpremultiply(b, a), a)
}

func interchangeWord(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// NativeFromRGBA converts a straight 0xRRGGBBAA color into a premultiplied
// native word.
func NativeFromRGBA(rgba uint32) uint32 {
	a := uint8(rgba)
	return AssembleARGB(a,
		Premultiply(uint8(rgba>>24), a),
		Premultiply(uint8(rgba>>16), a),
		Premultiply(uint8(rgba>>8), a))
}

// RGBAFromNative converts a premultiplied native word into a straight
// 0xRRGGBBAA color. Transparent pixels keep their (zero) channels.
func RGBAFromNative(p uint32) uint32 {
	a, r, g, b := ExtractARGB(p)
	if a != 0 {
		r, g, b = Unpremultiply(r, a), Unpremultiply(g, a), Unpremultiply(b, a)
	}
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a)
}
