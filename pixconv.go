package pixconv

import (
	"github.com/gogpu/pixconv/color"
	"github.com/gogpu/pixconv/pixel"
)

// Triplet holds three color coordinates in one of the spaces handled by
// the color package.
type Triplet = color.Triplet

// Scale is an RGBA8 strip of color.ScaleLength pixels.
type Scale = color.Scale

// ToLinear applies the sRGB decoding curve to c.
func ToLinear(c float64) float64 { return color.ToLinear(c) }

// FromLinear applies the sRGB encoding curve to c.
func FromLinear(c float64) float64 { return color.FromLinear(c) }

// LinearRGBToOklab converts linear RGB to OKLab.
func LinearRGBToOklab(rgb Triplet) Triplet { return color.LinearRGBToOklab(rgb) }

// OklabToLinearRGB converts OKLab to linear RGB clamped to [0, 1].
func OklabToLinearRGB(lab Triplet) Triplet { return color.OklabToLinearRGB(lab) }

// OklabToOklch converts OKLab to OKLCh with hue in degrees.
func OklabToOklch(lab Triplet) Triplet { return color.OklabToOklch(lab) }

// OklchToOklab converts OKLCh with hue in degrees to OKLab.
func OklchToOklab(lch Triplet) Triplet { return color.OklchToOklab(lch) }

// OklchRadiansToOklab converts OKLCh with hue in radians to OKLab.
func OklchRadiansToOklab(lch Triplet) Triplet { return color.OklchRadiansToOklab(lch) }

// OklabToOkhsl converts OKLab to OKHSL.
func OklabToOkhsl(lab Triplet) Triplet { return color.OklabToOkhsl(lab) }

// OkhslToOklab converts OKHSL to OKLab.
func OkhslToOklab(hsl Triplet) Triplet { return color.OkhslToOklab(hsl) }

// MaxChroma returns the largest OKLCh chroma that stays inside the sRGB
// gamut at lightness l and hue hueDegrees.
func MaxChroma(l, hueDegrees float64) float64 { return color.MaxChroma(l, hueDegrees) }

// RenderHueScale fills m with a hue gradient at OKHSL saturation s and
// lightness l.
func RenderHueScale(s, l float64, m *Scale) []byte { return color.RenderHueScale(s, l, m) }

// RenderSaturationScale fills m with a chroma gradient at hue h (degrees)
// and lightness l.
func RenderSaturationScale(h, l float64, m *Scale) []byte {
	return color.RenderSaturationScale(h, l, m)
}

// RenderLightnessScale fills m with a lightness gradient at hue h (degrees)
// and OKHSL saturation s.
func RenderLightnessScale(h, s float64, m *Scale) []byte {
	return color.RenderLightnessScale(h, s, m)
}

// Premultiply scales component c by alpha a with the renderer's rounding.
func Premultiply(c, a uint8) uint8 { return pixel.Premultiply(c, a) }

// Unpremultiply divides component c by alpha a. Zero alpha yields 255.
func Unpremultiply(c, a uint8) uint8 { return pixel.Unpremultiply(c, a) }

// ConvertInterchangeToNative rewrites a straight RGBA surface in place as
// premultiplied BGRA. Degenerate geometry is ignored.
func ConvertInterchangeToNative(data []byte, width, height, stride int) {
	pixel.ConvertInterchangeToNative(data, width, height, stride)
}

// ConvertNativeToInterchange rewrites a premultiplied BGRA surface in place
// as straight RGBA. Fully transparent pixels are replaced by fallback, an
// 0xAARRGGBB word. Degenerate geometry is ignored.
func ConvertNativeToInterchange(data []byte, width, height, stride int, fallback uint32) {
	pixel.ConvertNativeToInterchange(data, width, height, stride, fallback)
}

// SurfaceSRGBToLinear decodes the color of a native surface from sRGB to
// linear light in place. It returns the number of pixels visited.
func SurfaceSRGBToLinear(data []byte, width, height, stride int) int {
	return pixel.SurfaceSRGBToLinear(data, width, height, stride)
}

// SurfaceLinearToSRGB encodes the color of a native surface from linear
// light to sRGB in place. It returns the number of pixels visited.
func SurfaceLinearToSRGB(data []byte, width, height, stride int) int {
	return pixel.SurfaceLinearToSRGB(data, width, height, stride)
}

// SetNumFilterThreads sets how many goroutines the surface filters may use.
// Values are clamped to [1, 256].
func SetNumFilterThreads(n int) { pixel.SetNumFilterThreads(n) }

// NumFilterThreads returns the current surface filter thread count.
func NumFilterThreads() int { return pixel.NumFilterThreads() }
