package pixel

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		format  Format
		wantErr error
	}{
		{"valid native", 100, 100, FormatNative, nil},
		{"valid alpha", 50, 50, FormatAlpha8, nil},
		{"1x1 minimum", 1, 1, FormatInterchange, nil},
		{"zero width", 0, 100, FormatNative, ErrInvalidDimensions},
		{"zero height", 100, 0, FormatNative, ErrInvalidDimensions},
		{"negative width", -1, 100, FormatNative, ErrInvalidDimensions},
		{"invalid format", 100, 100, Format(255), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewBuffer(tt.width, tt.height, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewBuffer() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if buf.Format() != tt.format {
				t.Errorf("Format() = %v, want %v", buf.Format(), tt.format)
			}
			if want := tt.format.RowBytes(tt.width); buf.Stride() != want {
				t.Errorf("Stride() = %d, want %d", buf.Stride(), want)
			}
			if buf.ColorInterpolation() != InterpolationAuto {
				t.Errorf("ColorInterpolation() = %v, want auto", buf.ColorInterpolation())
			}
		})
	}
}

func TestNewBufferWithStride(t *testing.T) {
	tests := []struct {
		name    string
		stride  int
		wantErr error
	}{
		{"aligned stride", 512, nil},
		{"minimum stride", 400, nil},
		{"stride too small", 300, ErrInvalidStride},
		{"zero stride", 0, ErrInvalidStride},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBufferWithStride(100, 10, FormatNative, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewBufferWithStride() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromRaw(t *testing.T) {
	data := make([]byte, 8*2+4)

	buf, err := FromRaw(data, 1, 3, FormatNative, 8)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	buf.Data()[0] = 42
	if data[0] != 42 {
		t.Error("FromRaw copied the data")
	}

	if _, err := FromRaw(data[:19], 1, 3, FormatNative, 8); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data error = %v, want ErrDataTooSmall", err)
	}
	if _, err := FromRaw(data, 3, 1, FormatNative, 8); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("narrow stride error = %v, want ErrInvalidStride", err)
	}
}

func TestBufferEnsure(t *testing.T) {
	buf, _ := NewBuffer(2, 1, FormatInterchange)
	copy(buf.Data(), []byte{255, 0, 0, 128, 10, 20, 30, 0})

	if err := buf.Ensure(FormatInterchange); err != nil {
		t.Fatalf("Ensure(same) error = %v", err)
	}
	if !bytes.Equal(buf.Data(), []byte{255, 0, 0, 128, 10, 20, 30, 0}) {
		t.Fatal("Ensure with the current format modified pixels")
	}

	if err := buf.Ensure(FormatNative); err != nil {
		t.Fatalf("Ensure(native) error = %v", err)
	}
	if buf.Format() != FormatNative {
		t.Errorf("Format() = %v, want Native", buf.Format())
	}
	if want := []byte{0, 0, 128, 128, 0, 0, 0, 0}; !bytes.Equal(buf.Data(), want) {
		t.Errorf("native data = %v, want %v", buf.Data(), want)
	}

	if err := buf.EnsureInterchange(0xFF00FF00); err != nil {
		t.Fatalf("EnsureInterchange() error = %v", err)
	}
	if want := []byte{255, 0, 0, 128, 0, 255, 0, 255}; !bytes.Equal(buf.Data(), want) {
		t.Errorf("interchange data = %v, want %v", buf.Data(), want)
	}
}

func TestBufferEnsureAlphaOnly(t *testing.T) {
	alpha, _ := NewBuffer(2, 2, FormatAlpha8)
	if err := alpha.Ensure(FormatNative); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("Ensure on alpha buffer error = %v, want ErrFormatMismatch", err)
	}

	native, _ := NewBuffer(2, 2, FormatNative)
	if err := native.Ensure(FormatAlpha8); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("Ensure(Alpha8) error = %v, want ErrFormatMismatch", err)
	}
	if err := native.Ensure(Format(99)); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Ensure(invalid) error = %v, want ErrInvalidFormat", err)
	}
}

func TestSetColorInterpolation(t *testing.T) {
	opaque := func(f Format) *Buffer {
		buf, _ := NewBuffer(1, 1, f)
		// 128 gray, opaque; identical bytes in both layouts.
		copy(buf.Data(), []byte{128, 128, 128, 255})
		return buf
	}

	tests := []struct {
		name     string
		format   Format
		from, to ColorInterpolation
		want     byte
	}{
		{"auto to linear keeps pixels", FormatNative, InterpolationAuto, InterpolationLinearRGB, 128},
		{"srgb to auto keeps pixels", FormatNative, InterpolationSRGB, InterpolationAuto, 128},
		{"srgb to srgb keeps pixels", FormatNative, InterpolationSRGB, InterpolationSRGB, 128},
		{"srgb to linear", FormatNative, InterpolationSRGB, InterpolationLinearRGB, 55},
		{"linear to srgb", FormatNative, InterpolationLinearRGB, InterpolationSRGB, 187},
		{"interchange srgb to linear", FormatInterchange, InterpolationSRGB, InterpolationLinearRGB, 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := opaque(tt.format)
			buf.ci = tt.from
			buf.SetColorInterpolation(tt.to)
			if buf.ColorInterpolation() != tt.to {
				t.Errorf("tag = %v, want %v", buf.ColorInterpolation(), tt.to)
			}
			if got := buf.Data()[0]; got != tt.want {
				t.Errorf("channel = %d, want %d", got, tt.want)
			}
			if got := buf.Data()[3]; got != 255 {
				t.Errorf("alpha = %d, want 255", got)
			}
		})
	}
}

func TestSetColorInterpolationAlphaOnly(t *testing.T) {
	buf, _ := NewBuffer(2, 1, FormatAlpha8)
	buf.SetColorInterpolation(InterpolationLinearRGB)
	if buf.ColorInterpolation() != InterpolationAuto {
		t.Errorf("alpha buffer tag = %v, want auto", buf.ColorInterpolation())
	}
}

func TestCloneAndCreateIdentical(t *testing.T) {
	buf, _ := NewBufferWithStride(2, 2, FormatNative, 12)
	buf.SetColorInterpolation(InterpolationSRGB)
	for i := range buf.Data() {
		buf.Data()[i] = byte(i + 1)
	}

	clone := buf.Clone()
	if !bytes.Equal(clone.Data(), buf.Data()) {
		t.Error("Clone() data differs")
	}
	clone.Data()[0] = 0
	if buf.Data()[0] == 0 {
		t.Error("Clone() shares data")
	}

	ident := buf.CreateIdentical()
	if ident.Stride() != 12 || ident.Format() != FormatNative {
		t.Errorf("CreateIdentical() stride=%d format=%v", ident.Stride(), ident.Format())
	}
	if ident.ColorInterpolation() != InterpolationSRGB {
		t.Errorf("CreateIdentical() tag = %v, want sRGB", ident.ColorInterpolation())
	}
	for _, v := range ident.Data() {
		if v != 0 {
			t.Fatal("CreateIdentical() copied pixels")
		}
	}

	other, _ := NewBuffer(2, 2, FormatNative)
	other.CopyColorInterpolation(buf)
	if other.ColorInterpolation() != InterpolationSRGB {
		t.Errorf("CopyColorInterpolation() tag = %v, want sRGB", other.ColorInterpolation())
	}
}

func TestBlit(t *testing.T) {
	src, _ := NewBufferWithStride(2, 2, FormatNative, 12)
	for i := range src.Data() {
		src.Data()[i] = byte(i)
	}
	dst, _ := NewBuffer(2, 2, FormatNative)

	if err := dst.Blit(src); err != nil {
		t.Fatalf("Blit() error = %v", err)
	}
	for y := range 2 {
		if !bytes.Equal(dst.RowBytes(y), src.RowBytes(y)) {
			t.Errorf("row %d = %v, want %v", y, dst.RowBytes(y), src.RowBytes(y))
		}
	}

	small, _ := NewBuffer(1, 2, FormatNative)
	if err := small.Blit(src); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("size mismatch error = %v", err)
	}
	inter, _ := NewBuffer(2, 2, FormatInterchange)
	if err := inter.Blit(src); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("format mismatch error = %v", err)
	}
}

func TestPixelOffset(t *testing.T) {
	buf, _ := NewBufferWithStride(3, 2, FormatNative, 16)
	tests := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{2, 0, 8},
		{1, 1, 20},
		{3, 0, -1},
		{0, 2, -1},
		{-1, 0, -1},
	}
	for _, tt := range tests {
		if got := buf.PixelOffset(tt.x, tt.y); got != tt.want {
			t.Errorf("PixelOffset(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
	if buf.RowBytes(2) != nil {
		t.Error("RowBytes(out of range) should be nil")
	}
}
