package color

import (
	"math"

	"github.com/gogpu/pixconv/internal/poly"
)

// chromaLine holds the coefficients of the cubic polynomial expressing one
// linear RGB channel as a function of OKLCh chroma c, for fixed lightness l
// and hue h. Field names spell the monomial each coefficient multiplies:
// c2.lcossin is the coefficient of l*cos(h)*sin(h) in the c^2 term.
// The constant term is always l^3.
type chromaLine struct {
	c1 struct{ l2cos, l2sin float64 }
	c2 struct{ lcos2, lcossin, lsin2 float64 }
	c3 struct{ cos3, cos2sin, cossin2, sin3 float64 }
}

// labBounds holds the chroma polynomials for the R, G and B channels.
var labBounds = [3]chromaLine{
	{
		c1: struct{ l2cos, l2sin float64 }{5.83279532899080641005754476131631984, 2.3780791275435732378965655753413412},
		c2: struct{ lcos2, lcossin, lsin2 float64 }{1.81614129917652075864819542521099165275, 2.11851258971260413543962953223104329409, 1.68484527361538384522450980300698198391},
		c3: struct{ cos3, cos2sin, cossin2, sin3 float64 }{0.257535869797624151773507242289856932594, 0.414490345667882332785000888243122224651, 0.126596511492002610582126014059213892767, -0.455702039844046560333204117380816048203},
	},
	{
		c1: struct{ l2cos, l2sin float64 }{-2.243030176177044107983968331289088261, 0.00129441240977850026657772225608},
		c2: struct{ lcos2, lcossin, lsin2 float64 }{-0.5187087369791308621879921351291952375, -0.7820717390897833607054953914674219281, -1.8531911425339782749638630868227383795},
		c3: struct{ cos3, cos2sin, cossin2, sin3 float64 }{-0.0817959138495637068389017598370049459, -0.1239788660641220973883495153116480854, 0.0792215342150077349794741576353537047, 0.7218132301017783162780535454552058572},
	},
	{
		c1: struct{ l2cos, l2sin float64 }{-0.2406412780923628220925350522352767957, -6.48404701978782955733370693958213669},
		c2: struct{ lcos2, lcossin, lsin2 float64 }{0.015528352128452044798222201797574285162, 1.153466975472590255156068122829360981648, 8.535379923500727607267514499627438513637},
		c3: struct{ cos3, cos2sin, cossin2, sin3 float64 }{-0.0006573855374563134769075967180540368, -0.0519029179849443823389557527273309386, -0.763927972885238036962716856256210617, -3.67825541507929556013845659620477582},
	},
}

// monomials caches the powers of lightness, hue cosine and hue sine.
type monomials struct {
	l, l2, l3 float64
	c, c2, c3 float64
	s, s2, s3 float64
}

func newMonomials(l, hueDegrees float64) monomials {
	m := monomials{l: l, l2: l * l}
	m.l3 = m.l2 * l
	m.s, m.c = math.Sincos(hueDegrees * math.Pi / 180.0)
	m.c2 = m.c * m.c
	m.c3 = m.c2 * m.c
	m.s2 = 1.0 - m.c2
	m.s3 = m.s2 * m.s
	return m
}

// coefficients returns the polynomial for channel index (0=R, 1=G, 2=B);
// element i is the coefficient of c^i.
func (m *monomials) coefficients(index int) [4]float64 {
	k := &labBounds[index]
	return [4]float64{
		m.l3,
		k.c1.l2cos*m.l2*m.c + k.c1.l2sin*m.l2*m.s,
		k.c2.lcos2*m.l*m.c2 + k.c2.lcossin*m.l*m.c*m.s + k.c2.lsin2*m.l*m.s2,
		k.c3.cos3*m.c3 + k.c3.cos2sin*m.c2*m.s + k.c3.cossin2*m.c*m.s2 + k.c3.sin3*m.s3,
	}
}

// chromaBoundEpsilon bounds both the usable lightness range and the
// smallest root accepted as a chroma bound.
const chromaBoundEpsilon = 1e-7

// MaxChroma returns the largest OKLCh chroma such that oklch(l, chroma, h)
// is still inside the sRGB gamut. The hue is in degrees.
//
// The ray of colors with fixed l and h maps to a cubic curve in linear RGB
// whose channels R(c), G(c), B(c) are degree-3 polynomials in the chroma c.
// The bound is the smallest positive solution of the six equations
// R=0, R=1, G=0, G=1, B=0, B=1.
//
// Pure black and white (l outside (ε, 1-ε)) admit no chroma and return 0.
// If no positive root exists, 0 is returned as well.
func MaxChroma(l, hueDegrees float64) float64 {
	if l < chromaBoundEpsilon || l > 1.0-chromaBoundEpsilon {
		return 0
	}

	bound := math.Inf(1)
	m := newMonomials(l, hueDegrees)
	for i := range 3 {
		k := m.coefficients(i)
		for _, target := range [2]float64{0, 1} {
			for _, root := range poly.SolveCubic(k[3], k[2], k[1], k[0]-target) {
				if root < chromaBoundEpsilon {
					continue
				}
				bound = min(bound, root)
				break
			}
		}
	}
	if math.IsInf(bound, 1) {
		return 0
	}
	return bound
}
