package pixel

import "encoding/binary"

// validSurface reports whether data can hold a width x height surface of
// bpp-byte pixels laid out with the given stride.
func validSurface(data []byte, width, height, stride, bpp int) bool {
	if width < 1 || height < 1 || stride < 1 {
		return false
	}
	if stride < width*bpp {
		return false
	}
	return len(data) >= (height-1)*stride+width*bpp
}

// ConvertInterchangeToNative rewrites a straight-alpha RGBA surface into
// premultiplied native pixels in place. Row padding is left untouched.
func ConvertInterchangeToNative(data []byte, width, height, stride int) {
	if !validSurface(data, width, height, stride, 4) {
		return
	}
	mapRows(data, data, width, height, stride, stride, InterchangeToNative)
}

// ConvertNativeToInterchange rewrites a premultiplied native surface into
// straight-alpha RGBA pixels in place. Fully transparent pixels become
// fallback (a 0xAARRGGBB color, see NativeToInterchange).
func ConvertNativeToInterchange(data []byte, width, height, stride int, fallback uint32) {
	if !validSurface(data, width, height, stride, 4) {
		return
	}
	mapRows(data, data, width, height, stride, stride, func(p uint32) uint32 {
		return NativeToInterchange(p, fallback)
	})
}

// mapRows applies fn to every pixel of src and stores the results in dst.
// dst and src may alias.
func mapRows(dst, src []byte, width, height, dstStride, srcStride int, fn func(uint32) uint32) {
	rowBytes := width * 4
	for y := range height {
		in := src[y*srcStride : y*srcStride+rowBytes]
		out := dst[y*dstStride : y*dstStride+rowBytes]
		for x := 0; x < rowBytes; x += 4 {
			binary.LittleEndian.PutUint32(out[x:], fn(binary.LittleEndian.Uint32(in[x:])))
		}
	}
}
