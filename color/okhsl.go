package color

import "math"

// achromaticEpsilon is the absolute chroma below which a color is treated
// as gray when converting to OKHSL.
const achromaticEpsilon = 1e-7

// OklabToOkhsl converts OKLab to OKHSL.
//
// The result holds hue in [0, 1), saturation in [0, 1] and lightness in
// [0, 1]. Saturation is the absolute chroma divided by MaxChroma at the same
// lightness and hue, so 1 always means the most saturated in-gamut color.
// Near-gray colors map to hue 0 and saturation 0.
func OklabToOkhsl(lab Triplet) Triplet {
	var hsl Triplet
	hsl[2] = clamp01(lab[0])

	absChroma := math.Hypot(lab[1], lab[2])
	if absChroma < achromaticEpsilon {
		return hsl
	}

	hue := radians0(math.Atan2(lab[2], lab[1]))
	hsl[0] = hue / (2.0 * math.Pi)

	chromax := MaxChroma(hsl[2], degrees(hue))
	if chromax != 0 {
		hsl[1] = clamp01(absChroma / chromax)
	}
	return hsl
}

// OkhslToOklab converts OKHSL (hue in [0, 1)) to OKLab.
func OkhslToOklab(hsl Triplet) Triplet {
	l := clamp01(hsl[2])
	absChroma := hsl[1] * MaxChroma(l, hsl[0]*360.0)
	sin, cos := math.Sincos(hsl[0] * 2.0 * math.Pi)
	return Triplet{l, cos * absChroma, sin * absChroma}
}

// OkhslToRGB converts OKHSL to gamma-encoded sRGB in [0, 1].
func OkhslToRGB(hsl Triplet) Triplet {
	return OklabToRGB(OkhslToOklab(hsl))
}

// RGBToOkhsl converts gamma-encoded sRGB to OKHSL.
func RGBToOkhsl(rgb Triplet) Triplet {
	return OklabToOkhsl(RGBToOklab(rgb))
}
