package color

import "math"

// ToLinear converts an sRGB-encoded component to linear light
// (EOTF - Electro-Optical Transfer Function).
// Formula: if c < 0.04045: c/12.92; else: pow((c+0.055)/1.055, 2.4)
//
// The function is defined for all finite inputs; callers clamp as needed.
func ToLinear(c float64) float64 {
	if c < 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// FromLinear converts a linear component to sRGB encoding
// (OETF - Opto-Electronic Transfer Function).
// Formula: if c < 0.0031308: c*12.92; else: 1.055*pow(c, 1/2.4)-0.055
func FromLinear(c float64) float64 {
	if c < 0.0031308 {
		return c * 12.92
	}
	return math.Pow(c, 1.0/2.4)*1.055 - 0.055
}

// ToLinearTriplet applies ToLinear to each component.
func ToLinearTriplet(rgb Triplet) Triplet {
	return Triplet{ToLinear(rgb[0]), ToLinear(rgb[1]), ToLinear(rgb[2])}
}

// FromLinearTriplet applies FromLinear to each component.
func FromLinearTriplet(rgb Triplet) Triplet {
	return Triplet{FromLinear(rgb[0]), FromLinear(rgb[1]), FromLinear(rgb[2])}
}
