// Package color implements the color transforms used throughout pixconv.
//
// It covers the sRGB transfer function (scalar and 8-bit table forms), the
// OKLab perceptual space with its polar (OKLCh) and gamut-normalised (OKHSL)
// parametrisations, the gamut-boundary solver MaxChroma, and rendering of
// the 1024-entry gradient strips used by color picker sliders.
//
// All functions are pure and safe for concurrent use. Degenerate inputs
// (extremal lightness, vanishing chroma) resolve to documented sentinel
// values rather than NaN.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - OKLab: https://bottosson.github.io/posts/oklab/
package color

// Triplet holds three color coordinates. Its meaning depends on the space:
//
//	linear RGB: R, G, B in [0, 1]
//	OKLab:      L in [0, 1], a, b roughly in [-0.4, 0.4]
//	OKLCh:      L, chroma, hue in degrees [0, 360)
//	OKHSL:      hue in [0, 1), saturation in [0, 1], lightness in [0, 1]
type Triplet [3]float64

// FloatToByte converts a component in [0,1] to a byte with rounding.
// Values outside the unit interval are clamped.
func FloatToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
