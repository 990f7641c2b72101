// Package pixconv converts pixels between the premultiplied BGRA layout used
// by renderers and the straight-alpha RGBA layout used by image codecs, and
// provides the color transforms that go with it.
//
// # Overview
//
// The library is a thin surface over three packages:
//
//   - color: sRGB transfer, OKLab/OKLCh/OKHSL, MaxChroma and picker scales
//   - pixel: premultiply math, packed-word codecs, in-place buffer
//     conversion and the surface filters
//   - pixbuf: decoded images that can be switched between both layouts
//
// The functions in this package forward to those packages so that simple
// callers need a single import.
//
// # Quick Start
//
//	import "github.com/gogpu/pixconv"
//
//	// Straight RGBA from a decoder, converted in place for a renderer.
//	pixconv.ConvertInterchangeToNative(data, width, height, stride)
//
//	// And back for an encoder; fully transparent pixels become white.
//	pixconv.ConvertNativeToInterchange(data, width, height, stride, 0xFFFFFFFF)
//
//	// Largest in-gamut OKLCh chroma at lightness 0.7, hue 145 degrees.
//	c := pixconv.MaxChroma(0.7, 145)
//
// # Pixel Formats
//
// Native pixels are stored as bytes B, G, R, A and read as the little-endian
// word 0xAARRGGBB with color premultiplied by alpha. Interchange pixels are
// stored as bytes R, G, B, A with straight alpha. Rows may be padded; the
// stride is always honored and padding bytes are never written.
//
// # Concurrency
//
// All functions are safe for concurrent use as long as each goroutine
// works on its own buffer. The surface filters split large surfaces into
// row bands processed by a shared worker pool; see SetNumFilterThreads.
//
// # Logging
//
// pixconv is silent by default. Call SetLogger to receive diagnostics.
package pixconv

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
