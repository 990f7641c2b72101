package pixel

import (
	"bytes"
	"encoding/binary"
	"math/rand/v2"
	"testing"
)

func TestConvertRoundTripScenario(t *testing.T) {
	// 2x1 interchange surface: half-transparent red and a transparent
	// pixel whose color channels hold garbage.
	data := []byte{
		255, 0, 0, 128,
		10, 20, 30, 0,
	}

	ConvertInterchangeToNative(data, 2, 1, 8)

	if got := binary.LittleEndian.Uint32(data[0:]); got != 0x80800000 {
		t.Errorf("pixel 0 native = %#08x, want 0x80800000", got)
	}
	if got := binary.LittleEndian.Uint32(data[4:]); got != 0 {
		t.Errorf("pixel 1 native = %#08x, want 0", got)
	}

	ConvertNativeToInterchange(data, 2, 1, 8, 0xFFFFFFFF)

	want := []byte{
		255, 0, 0, 128,
		255, 255, 255, 255,
	}
	if !bytes.Equal(data, want) {
		t.Errorf("round trip = %v, want %v", data, want)
	}
}

func TestConvertLeavesPaddingAlone(t *testing.T) {
	const (
		width  = 2
		height = 3
		stride = 12
	)
	data := bytes.Repeat([]byte{0xAB}, stride*height)
	for y := range height {
		for x := range width {
			copy(data[y*stride+4*x:], []byte{10, 20, 30, 200})
		}
	}

	ConvertInterchangeToNative(data, width, height, stride)
	ConvertNativeToInterchange(data, width, height, stride, 0)

	for y := range height {
		pad := data[y*stride+4*width : (y+1)*stride]
		for _, v := range pad {
			if v != 0xAB {
				t.Fatalf("row %d padding modified: %v", y, pad)
			}
		}
	}
}

func TestConvertRoundTripWithinOne(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	const width, height = 64, 16
	orig := make([]byte, 4*width*height)
	for i := 0; i < len(orig); i += 4 {
		orig[i] = uint8(r.Uint32())
		orig[i+1] = uint8(r.Uint32())
		orig[i+2] = uint8(r.Uint32())
		orig[i+3] = uint8(85 + r.IntN(171))
	}
	data := bytes.Clone(orig)

	ConvertInterchangeToNative(data, width, height, 4*width)
	ConvertNativeToInterchange(data, width, height, 4*width, 0)

	for i := range data {
		d := int(data[i]) - int(orig[i])
		if d < -1 || d > 1 {
			t.Fatalf("byte %d: got %d, want %d within 1", i, data[i], orig[i])
		}
	}
}

func TestConvertDegenerateGeometry(t *testing.T) {
	tests := []struct {
		name          string
		data          []byte
		width, height int
		stride        int
	}{
		{"nil data", nil, 1, 1, 4},
		{"zero width", make([]byte, 16), 0, 1, 4},
		{"zero height", make([]byte, 16), 1, 0, 4},
		{"zero stride", make([]byte, 16), 1, 1, 0},
		{"negative stride", make([]byte, 16), 1, 1, -4},
		{"stride shorter than row", make([]byte, 16), 2, 1, 4},
		{"data too short", make([]byte, 7), 2, 1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := range tt.data {
				tt.data[i] = 0x7F
			}
			before := bytes.Clone(tt.data)
			ConvertInterchangeToNative(tt.data, tt.width, tt.height, tt.stride)
			ConvertNativeToInterchange(tt.data, tt.width, tt.height, tt.stride, 0xFFFFFFFF)
			if !bytes.Equal(tt.data, before) {
				t.Errorf("data modified: %v", tt.data)
			}
		})
	}
}

func TestConvertLastRowWithoutPadding(t *testing.T) {
	// The final row may end right after its last pixel.
	data := make([]byte, 8+4)
	copy(data[8:], []byte{0, 0, 255, 255})

	ConvertInterchangeToNative(data, 1, 2, 8)

	if got := binary.LittleEndian.Uint32(data[8:]); got != 0xFF0000FF {
		t.Errorf("last pixel = %#08x, want 0xff0000ff", got)
	}
}

func BenchmarkConvertInterchangeToNative(b *testing.B) {
	const width, height = 512, 512
	data := bytes.Repeat([]byte{200, 100, 50, 180}, width*height)
	for b.Loop() {
		ConvertInterchangeToNative(data, width, height, 4*width)
	}
}
