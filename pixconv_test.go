package pixconv

import (
	"bytes"
	"math"
	"testing"
)

// The scenario below walks one small surface through both conversions the
// way an image loader and an exporter would.
func TestConvertScenario(t *testing.T) {
	data := []byte{
		255, 0, 0, 128, // half-transparent red
		10, 20, 30, 0, // transparent, color ignored
	}

	ConvertInterchangeToNative(data, 2, 1, 8)

	want := []byte{0, 0, 128, 128, 0, 0, 0, 0}
	if !bytes.Equal(data, want) {
		t.Fatalf("native bytes = %v, want %v", data, want)
	}

	ConvertNativeToInterchange(data, 2, 1, 8, 0xFFFFFFFF)

	want = []byte{255, 0, 0, 128, 255, 255, 255, 255}
	if !bytes.Equal(data, want) {
		t.Errorf("interchange bytes = %v, want %v", data, want)
	}
}

func TestPremultiplyFacade(t *testing.T) {
	if got := Premultiply(255, 128); got != 128 {
		t.Errorf("Premultiply(255, 128) = %d, want 128", got)
	}
	if got := Unpremultiply(128, 128); got != 255 {
		t.Errorf("Unpremultiply(128, 128) = %d, want 255", got)
	}
	if got := Unpremultiply(17, 0); got != 255 {
		t.Errorf("Unpremultiply(17, 0) = %d, want 255", got)
	}
}

func TestSurfaceTransferFacade(t *testing.T) {
	// One opaque mid-gray native pixel and one transparent pixel.
	data := []byte{128, 128, 128, 255, 0, 0, 0, 0}

	if n := SurfaceSRGBToLinear(data, 2, 1, 8); n != 2 {
		t.Errorf("SurfaceSRGBToLinear() = %d, want 2", n)
	}
	if data[0] != 55 || data[3] != 255 {
		t.Errorf("linear pixel = %v, want channels 55 and alpha 255", data[:4])
	}
	if n := SurfaceLinearToSRGB(data, 2, 1, 8); n != 2 {
		t.Errorf("SurfaceLinearToSRGB() = %d, want 2", n)
	}
	if data[0] != 127 {
		t.Errorf("sRGB channel = %d, want 127", data[0])
	}
	if !bytes.Equal(data[4:], []byte{0, 0, 0, 0}) {
		t.Errorf("transparent pixel changed: %v", data[4:])
	}

	if n := SurfaceSRGBToLinear(nil, 0, 0, 0); n != 0 {
		t.Errorf("degenerate surface = %d, want 0", n)
	}
}

func TestColorFacade(t *testing.T) {
	if got := FromLinear(ToLinear(0.5)); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("FromLinear(ToLinear(0.5)) = %v", got)
	}

	lab := LinearRGBToOklab(Triplet{1, 1, 1})
	if math.Abs(lab[0]-1) > 1e-7 || math.Abs(lab[1]) > 1e-7 || math.Abs(lab[2]) > 1e-7 {
		t.Errorf("white in OKLab = %v, want {1, 0, 0}", lab)
	}

	lch := OklabToOklch(Triplet{0.6, 0.1, 0.1})
	back := OklchToOklab(lch)
	for i := range back {
		if math.Abs(back[i]-[]float64{0.6, 0.1, 0.1}[i]) > 1e-7 {
			t.Errorf("OKLCh round trip = %v", back)
			break
		}
	}
	rad := OklchRadiansToOklab(Triplet{lch[0], lch[1], lch[2] * math.Pi / 180})
	if math.Abs(rad[1]-back[1]) > 1e-12 || math.Abs(rad[2]-back[2]) > 1e-12 {
		t.Errorf("radians variant = %v, degrees variant = %v", rad, back)
	}

	rgb := OklabToLinearRGB(OkhslToOklab(OklabToOkhsl(LinearRGBToOklab(Triplet{0.2, 0.4, 0.6}))))
	for i, want := range []float64{0.2, 0.4, 0.6} {
		if math.Abs(rgb[i]-want) > 1e-6 {
			t.Errorf("OKHSL round trip channel %d = %v, want %v", i, rgb[i], want)
		}
	}
}

func TestMaxChromaFacade(t *testing.T) {
	if c := MaxChroma(0, 120); c != 0 {
		t.Errorf("MaxChroma(0, 120) = %v, want 0", c)
	}
	if c := MaxChroma(0.6, 120); c <= 0 || c > 0.5 {
		t.Errorf("MaxChroma(0.6, 120) = %v, want in (0, 0.5]", c)
	}
}

func TestRenderScalesFacade(t *testing.T) {
	var m Scale
	renders := map[string]func() []byte{
		"hue":        func() []byte { return RenderHueScale(1, 0.6, &m) },
		"saturation": func() []byte { return RenderSaturationScale(140, 0.6, &m) },
		"lightness":  func() []byte { return RenderLightnessScale(140, 1, &m) },
	}
	for name, render := range renders {
		t.Run(name, func(t *testing.T) {
			out := render()
			if len(out) != len(m) {
				t.Fatalf("len = %d, want %d", len(out), len(m))
			}
			if &out[0] != &m[0] {
				t.Error("returned slice does not alias the scale buffer")
			}
			for i := 3; i < len(out); i += 4 {
				if out[i] != 255 {
					t.Fatalf("alpha at pixel %d = %d, want 255", i/4, out[i])
				}
			}
		})
	}
}

func TestFilterThreadsFacade(t *testing.T) {
	orig := NumFilterThreads()
	t.Cleanup(func() { SetNumFilterThreads(orig) })

	SetNumFilterThreads(8)
	if got := NumFilterThreads(); got != 8 {
		t.Errorf("NumFilterThreads() = %d, want 8", got)
	}
	SetNumFilterThreads(0)
	if got := NumFilterThreads(); got != 1 {
		t.Errorf("NumFilterThreads() after 0 = %d, want 1", got)
	}
}
