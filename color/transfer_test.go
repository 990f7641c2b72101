package color

import (
	"math"
	"testing"
)

func floatNear(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func TestToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"just below threshold", 0.04, 0.04 / 12.92},
		{"threshold", 0.04045, math.Pow((0.04045+0.055)/1.055, 2.4)},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
		{"negative stays linear", -0.1, -0.1 / 12.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToLinear(tt.input); !floatNear(got, tt.want, 1e-12) {
				t.Errorf("ToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"just below threshold", 0.003, 0.003 * 12.92},
		{"threshold", 0.0031308, 1.055*math.Pow(0.0031308, 1.0/2.4) - 0.055},
		{"mid gray linear", 0.21404, 1.055*math.Pow(0.21404, 1.0/2.4) - 0.055},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromLinear(tt.input); !floatNear(got, tt.want, 1e-12) {
				t.Errorf("FromLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTransferRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		c := float64(i) / 255.0
		if got := FromLinear(ToLinear(c)); !floatNear(got, c, 1e-9) {
			t.Errorf("FromLinear(ToLinear(%v)) = %v", c, got)
		}
		if got := ToLinear(FromLinear(c)); !floatNear(got, c, 1e-9) {
			t.Errorf("ToLinear(FromLinear(%v)) = %v", c, got)
		}
	}
}

func TestTransferMonotonic(t *testing.T) {
	prevLin, prevEnc := -1.0, -1.0
	for i := 0; i <= 1000; i++ {
		c := float64(i) / 1000
		lin, enc := ToLinear(c), FromLinear(c)
		if lin < prevLin || enc < prevEnc {
			t.Fatalf("transfer functions not monotonic at %v", c)
		}
		prevLin, prevEnc = lin, enc
	}
}

func TestTransferTables(t *testing.T) {
	tests := []struct {
		in, toLinear, fromLinear uint8
	}{
		{0, 0, 0},
		{1, 0, 12},
		{10, 0, 55},
		{128, 55, 187},
		{200, 147, 229},
		{254, 252, 254},
		{255, 255, 254},
	}

	for _, tt := range tests {
		if got := ToLinear8(tt.in); got != tt.toLinear {
			t.Errorf("ToLinear8(%d) = %d, want %d", tt.in, got, tt.toLinear)
		}
		if got := FromLinear8(tt.in); got != tt.fromLinear {
			t.Errorf("FromLinear8(%d) = %d, want %d", tt.in, got, tt.fromLinear)
		}
	}
}

func TestTransferTablesMatchFormula(t *testing.T) {
	for i := range 256 {
		c := float64(i) / 255.0
		if want := uint8(ToLinear(c) * 255.0); toLinear8[i] != want {
			t.Errorf("toLinear8[%d] = %d, want %d", i, toLinear8[i], want)
		}
		if want := uint8(FromLinear(c) * 255.0); fromLinear8[i] != want {
			t.Errorf("fromLinear8[%d] = %d, want %d", i, fromLinear8[i], want)
		}
	}
}

func TestFloatToByte(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{1.0 / 255, 1},
		{0.999, 255},
		{1, 255},
		{2, 255},
	}
	for _, tt := range tests {
		if got := FloatToByte(tt.in); got != tt.want {
			t.Errorf("FloatToByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func BenchmarkToLinear(b *testing.B) {
	for b.Loop() {
		_ = ToLinear(0.5)
	}
}

func BenchmarkToLinear8(b *testing.B) {
	var s uint8
	for b.Loop() {
		s += ToLinear8(s)
	}
}
