package pixel

import "github.com/gogpu/pixconv/color"

// SurfaceSRGBToLinear converts a native surface from sRGB-encoded to
// linear-encoded color in place and returns the number of pixels.
//
// Each color channel is unpremultiplied, passed through the 8-bit
// transfer table and premultiplied again. Fully transparent pixels are
// left untouched.
func SurfaceSRGBToLinear(data []byte, width, height, stride int) int {
	return FilterSurface(data, width, height, stride, srgbToLinearPixel)
}

// SurfaceLinearToSRGB is the inverse of SurfaceSRGBToLinear.
func SurfaceLinearToSRGB(data []byte, width, height, stride int) int {
	return FilterSurface(data, width, height, stride, linearToSRGBPixel)
}

func srgbToLinearPixel(p uint32) uint32 {
	return transferNative(p, color.ToLinear8)
}

func linearToSRGBPixel(p uint32) uint32 {
	return transferNative(p, color.FromLinear8)
}

func transferNative(p uint32, transfer func(uint8) uint8) uint32 {
	a, r, g, b := ExtractARGB(p)
	if a == 0 {
		return p
	}
	return AssembleARGB(a,
		Premultiply(transfer(Unpremultiply(r, a)), a),
		Premultiply(transfer(Unpremultiply(g, a)), a),
		Premultiply(transfer(Unpremultiply(b, a)), a))
}

// transferInterchange maps the straight channels of an interchange word.
func transferInterchange(p uint32, transfer func(uint8) uint8) uint32 {
	if p>>24 == 0 {
		return p
	}
	return p&0xFF000000 |
		uint32(transfer(uint8(p>>16)))<<16 |
		uint32(transfer(uint8(p>>8)))<<8 |
		uint32(transfer(uint8(p)))
}

func toLinearInterchange(p uint32) uint32 {
	return transferInterchange(p, color.ToLinear8)
}

func fromLinearInterchange(p uint32) uint32 {
	return transferInterchange(p, color.FromLinear8)
}
