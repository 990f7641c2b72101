package color

const (
	// ScaleLength is the number of pixels in a rendered color scale.
	ScaleLength = 1024

	// ScaleIntervals is the number of sub-intervals on which the chroma
	// bound is probed when rendering a scale. Between probes the bound is
	// linearly interpolated; solving six cubics for each of the 1024 pixels
	// would be too slow for interactive sliders. Must be a power of two
	// smaller than ScaleLength.
	ScaleIntervals = 32
)

// Scale is an RGBA8 strip of ScaleLength opaque pixels.
type Scale [4 * ScaleLength]byte

// RenderHueScale fills m with a gradient of varying hue (0 to 360 degrees)
// at fixed OKHSL saturation s and lightness l. It returns m's bytes.
func RenderHueScale(s, l float64, m *Scale) []byte {
	const step = 360.0 / ScaleLength
	const probeStep = 360.0 / ScaleIntervals
	const intervalLength = ScaleLength / ScaleIntervals

	pos := 0
	h := 0.0
	bound := MaxChroma(l, h)
	for i := range ScaleIntervals {
		next := MaxChroma(l, float64(i+1)*probeStep)
		from, to := bound*s, next*s
		for j := range intervalLength {
			c := lerp(float64(j)/intervalLength, from, to)
			pos = putRGB(m, pos, OklabToRGB(OklchToOklab(Triplet{l, c, h})))
			h += step
		}
		bound = next
	}
	return m[:]
}

// RenderSaturationScale fills m with a gradient from gray to the most
// saturated in-gamut color at hue h (degrees) and OKHSL lightness l.
// If the lightness admits no chroma the strip is solid black, or solid
// white when l > 0.9.
func RenderSaturationScale(h, l float64, m *Scale) []byte {
	chromax := MaxChroma(l, h)
	if chromax == 0 {
		var bw byte
		if l > 0.9 {
			bw = 0xFF
		}
		for i := 0; i < len(m); i += 4 {
			m[i], m[i+1], m[i+2], m[i+3] = bw, bw, bw, 0xFF
		}
		return m[:]
	}

	step := chromax / ScaleLength
	c := 0.0
	pos := 0
	for range ScaleLength {
		pos = putRGB(m, pos, OklabToRGB(OklchToOklab(Triplet{l, c, h})))
		c += step
	}
	return m[:]
}

// RenderLightnessScale fills m with a gradient of varying lightness (0 to 1)
// at fixed hue h (degrees) and OKHSL saturation s.
func RenderLightnessScale(h, s float64, m *Scale) []byte {
	const step = 1.0 / ScaleLength
	const probeStep = 1.0 / ScaleIntervals
	const intervalLength = ScaleLength / ScaleIntervals

	pos := 0
	l := 0.0
	bound := MaxChroma(l, h)
	for i := range ScaleIntervals {
		next := MaxChroma(float64(i+1)*probeStep, h)
		from, to := bound*s, next*s
		for j := range intervalLength {
			c := lerp(float64(j)/intervalLength, from, to)
			pos = putRGB(m, pos, OklabToRGB(OklchToOklab(Triplet{l, c, h})))
			l += step
		}
		bound = next
	}
	return m[:]
}

func putRGB(m *Scale, pos int, rgb Triplet) int {
	m[pos] = FloatToByte(rgb[0])
	m[pos+1] = FloatToByte(rgb[1])
	m[pos+2] = FloatToByte(rgb[2])
	m[pos+3] = 0xFF
	return pos + 4
}

func lerp(t, a, b float64) float64 {
	return (1-t)*a + t*b
}
