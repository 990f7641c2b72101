// Package pixel converts 32-bit pixel buffers between the premultiplied
// native layout used for rendering and the straight-alpha interchange
// layout used by image decoders and encoders.
//
// # Formats
//
// Both formats store four bytes per pixel in rows that may be padded to a
// stride larger than width*4. Their channel order is fixed by byte offset
// rather than by machine word order:
//
//	FormatNative       B G R A   premultiplied; read little-endian the word is 0xAARRGGBB
//	FormatInterchange  R G B A   straight alpha
//
// # Conversions
//
// ConvertInterchangeToNative and ConvertNativeToInterchange rewrite a
// buffer in place, row by row. Padding bytes at the end of each row are
// never touched. Fully transparent pixels carry no color: they become the
// all-zero native word, and on the way back they are replaced by a caller
// supplied fallback color.
//
// The premultiply formula is the exact integer sequence
//
//	t = a*c + 128
//	(t + t>>8) >> 8
//
// which equals round(a*c/255) for every 8-bit input.
//
// # Surface filters
//
// FilterSurface applies a per-pixel function over a native buffer.
// Surfaces larger than 2048 pixels are split into row bands that run on a
// shared worker pool sized by SetNumFilterThreads. The sRGB and linear RGB
// filters built on it drive the color-interpolation tag of Buffer.
//
// Codec and filter entry points never fail: degenerate geometry (non-positive
// width, height or stride, or a slice too short for the described surface)
// makes them a no-op. Buffer constructors validate their input and return
// errors instead.
package pixel
