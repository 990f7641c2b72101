package color

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrices of the OKLab model, row-major.
var (
	// lrgbToCone maps linear RGB to linear cone responses.
	lrgbToCone = f64.Mat3{
		0.4122214708, 0.5363325363, 0.0514459929,
		0.2119034982, 0.6806995451, 0.1073969566,
		0.0883024619, 0.2817188376, 0.6299787005,
	}

	// coneToLRGB is the inverse of lrgbToCone.
	coneToLRGB = f64.Mat3{
		4.0767416613479942676681908333711298900607278264432, -3.30771159040819331315866078424893188865618253342, 0.230969928729427886449650619561935920170561518112,
		-1.2684380040921760691815055595117506020901414005992, 2.60975740066337143024050095284233623056192338553, -0.341319396310219620992658250306535533187548361872,
		-0.0041960865418371092973767821251846315637521173374, -0.70341861445944960601310996913659932654899822384, 1.707614700930944853864541790660472961199090408527,
	}

	// coneToLab maps cube-rooted cone responses to OKLab.
	coneToLab = f64.Mat3{
		0.2104542553, 0.793617785, -0.0040720468,
		1.9779984951, -2.428592205, 0.4505937099,
		0.0259040371, 0.7827717662, -0.808675766,
	}

	// labToCone is the inverse of coneToLab. The first column is not
	// exactly 1; this form is closer to the true numerical inverse.
	labToCone = f64.Mat3{
		0.99999999845051981426207542502031373637162589278552, 0.39633779217376785682345989261573192476766903603, 0.215803758060758803423141461830037892590617787467,
		1.00000000888176077671607524567047071276183677410134, -0.10556134232365634941095687705472233997368274024, -0.063854174771705903405254198817795633810975771082,
		1.00000005467241091770129286515344610721841028698942, -0.08948418209496575968905274586339134130669669716, -1.291485537864091739948928752914772401878545675371,
	}
)

// dotRow returns the dot product of row i of m with v.
func dotRow(m *f64.Mat3, i int, v Triplet) float64 {
	return m[3*i]*v[0] + m[3*i+1]*v[1] + m[3*i+2]*v[2]
}

// chromaEpsilon is the chroma below which OKLCh hue is reported as 0.
const chromaEpsilon = 0.001

// LinearRGBToOklab converts a linear RGB color to OKLab.
func LinearRGBToOklab(rgb Triplet) Triplet {
	var cones Triplet
	for i := range 3 {
		cones[i] = math.Cbrt(dotRow(&lrgbToCone, i, rgb))
	}
	var lab Triplet
	for i := range 3 {
		lab[i] = dotRow(&coneToLab, i, cones)
	}
	return lab
}

// OklabToLinearRGB converts an OKLab color to linear RGB.
// Each resulting channel is clamped to [0, 1].
func OklabToLinearRGB(lab Triplet) Triplet {
	var cones Triplet
	for i := range 3 {
		v := dotRow(&labToCone, i, lab)
		cones[i] = v * v * v
	}
	var rgb Triplet
	for i := range 3 {
		rgb[i] = clamp01(dotRow(&coneToLRGB, i, cones))
	}
	return rgb
}

// OklabToOklch converts OKLab to polar OKLCh with the hue in degrees [0, 360).
// When the chroma is 0.001 or less the hue is unstable and reported as 0.
func OklabToOklch(lab Triplet) Triplet {
	lch := Triplet{lab[0], math.Hypot(lab[1], lab[2]), 0}
	if lch[1] > chromaEpsilon {
		lch[2] = degrees(radians0(math.Atan2(lab[2], lab[1])))
	}
	return lch
}

// OklchToOklab converts OKLCh with the hue in degrees back to OKLab.
func OklchToOklab(lch Triplet) Triplet {
	return OklchRadiansToOklab(Triplet{lch[0], lch[1], lch[2] * math.Pi / 180.0})
}

// OklchRadiansToOklab converts OKLCh with the hue in radians to OKLab.
func OklchRadiansToOklab(lch Triplet) Triplet {
	sin, cos := math.Sincos(lch[2])
	return Triplet{lch[0], cos * lch[1], sin * lch[1]}
}

// OklabToRGB converts OKLab to gamma-encoded sRGB in [0, 1].
func OklabToRGB(lab Triplet) Triplet {
	return FromLinearTriplet(OklabToLinearRGB(lab))
}

// RGBToOklab converts gamma-encoded sRGB to OKLab.
func RGBToOklab(rgb Triplet) Triplet {
	return LinearRGBToOklab(ToLinearTriplet(rgb))
}

// radians0 normalises an angle into [0, 2π).
func radians0(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

func degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
