package color

// RGBToHSL converts gamma-encoded RGB in [0,1] to classic HSL.
// Hue is returned in [0, 1); gray colors have hue and saturation 0.
func RGBToHSL(rgb Triplet) Triplet {
	r, g, b := rgb[0], rgb[1], rgb[2]
	hi := max(r, g, b)
	lo := min(r, g, b)
	l := (hi + lo) / 2
	if hi == lo {
		return Triplet{0, 0, l}
	}

	d := hi - lo
	var s float64
	if l < 0.5 {
		s = d / (hi + lo)
	} else {
		s = d / (2 - hi - lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return Triplet{h / 6, s, l}
}

// HSLToRGB converts classic HSL (hue in [0, 1)) to gamma-encoded RGB.
func HSLToRGB(hsl Triplet) Triplet {
	h, s, l := hsl[0], hsl[1], hsl[2]
	if s == 0 {
		return Triplet{l, l, l}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return Triplet{
		hueToRGB(p, q, h+1.0/3),
		hueToRGB(p, q, h),
		hueToRGB(p, q, h-1.0/3),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
