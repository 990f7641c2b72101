// Package poly finds the real roots of low-degree polynomials.
//
// The cubic solver follows Jim Blinn's "How to Solve a Cubic Equation" as
// presented at https://momentsingraphics.de/CubicRoots.html. Roots are
// returned in ascending order so callers can stop at the first one that
// satisfies their constraint.
package poly

import (
	"math"
	"slices"
)

// SolveQuadratic returns the real roots of a*x^2 + b*x + c = 0 in ascending order.
//
// A zero or vanishing leading coefficient degrades to the linear equation.
// If all coefficients are zero, the single root 0 is returned.
func SolveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		return solveLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		// Discriminant overflowed: x^2 + sc1*x ≈ 0 gives one root, Vieta the other.
		return sortedPair(-sc1, sc0/-sc1)
	}
	if arg < 0.0 {
		return nil
	}
	if arg == 0.0 {
		return []float64{-0.5 * sc1}
	}

	// Avoid cancellation by computing the larger root first.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedPair(root1, sc0/root1)
}

func solveLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	if c == 0.0 && b == 0.0 {
		return []float64{0.0}
	}
	return nil
}

func sortedPair(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		return []float64{r2, r1}
	}
	return []float64{r1, r2}
}

// SolveCubic returns the real roots of a*x^3 + b*x^2 + c*x + d = 0 in ascending order.
//
// When a is zero (or so small that scaling by 1/a overflows) the equation is
// solved as a quadratic.
func SolveCubic(a, b, c, d float64) []float64 {
	const oneThird = 1.0 / 3.0
	aRecip := 1.0 / a

	c2 := b * (oneThird * aRecip)
	c1 := c * (oneThird * aRecip)
	c0 := d * aRecip
	if !isFinite(c0) || !isFinite(c1) || !isFinite(c2) {
		return SolveQuadratic(b, c, d)
	}

	// Delta in Blinn's notation.
	d0 := (-c2)*c2 + c1
	d1 := (-c1)*c2 + c0
	d2 := c2*c0 - c1*c1

	disc := 4.0*d0*d2 - d1*d1
	de := (-2.0*c2)*d0 + d1

	if disc < 0.0 {
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return []float64{t1 - c2}
	}
	if disc == 0.0 {
		t1 := math.Copysign(math.Sqrt(-d0), de)
		return sortedPair(t1-c2, -2.0*t1-c2)
	}

	th := math.Atan2(math.Sqrt(disc), -de) * oneThird
	thSin, thCos := math.Sincos(th)
	ss3 := thSin * math.Sqrt(3.0)
	t := 2.0 * math.Sqrt(-d0)

	roots := []float64{
		t*thCos - c2,
		t*0.5*(-thCos+ss3) - c2,
		t*0.5*(-thCos-ss3) - c2,
	}
	slices.Sort(roots)
	return roots
}

// isFinite reports whether x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
