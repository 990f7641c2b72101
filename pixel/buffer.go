package pixel

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixconv/internal/logging"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive
	// or two buffers differ in size.
	ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("pixel: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("pixel: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("pixel: data buffer too small")

	// ErrFormatMismatch is returned when an operation cannot apply to the
	// buffer's format, such as converting an alpha-only buffer.
	ErrFormatMismatch = errors.New("pixel: format mismatch")
)

// ColorInterpolation records how the color values of a buffer are encoded.
type ColorInterpolation uint8

const (
	// InterpolationAuto means the encoding was never set.
	InterpolationAuto ColorInterpolation = iota

	// InterpolationSRGB marks gamma-encoded sRGB values.
	InterpolationSRGB

	// InterpolationLinearRGB marks linear-light values.
	InterpolationLinearRGB
)

// String returns the CSS keyword for ci.
func (ci ColorInterpolation) String() string {
	switch ci {
	case InterpolationSRGB:
		return "sRGB"
	case InterpolationLinearRGB:
		return "linearRGB"
	default:
		return "auto"
	}
}

// Buffer is a rectangular pixel surface together with its format state.
//
// A 4-byte buffer is always in exactly one of FormatNative or
// FormatInterchange; Ensure moves between them by rewriting the pixels in
// place. The color-interpolation tag is independent of the format.
//
// Thread safety: Buffer is not safe for concurrent mutation.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
	ci     ColorInterpolation
}

// NewBuffer creates a zeroed buffer with a tightly packed stride.
func NewBuffer(width, height int, format Format) (*Buffer, error) {
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return NewBufferWithStride(width, height, format, format.RowBytes(width))
}

// NewBufferWithStride creates a zeroed buffer with a custom stride.
// Stride must be at least format.RowBytes(width).
func NewBufferWithStride(width, height int, format Format, stride int) (*Buffer, error) {
	if err := checkGeometry(width, height, format, stride); err != nil {
		return nil, err
	}
	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw wraps existing data without copying. The caller keeps ownership
// of data and must not resize it while the Buffer is in use.
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buffer, error) {
	if err := checkGeometry(width, height, format, stride); err != nil {
		return nil, err
	}
	required := (height-1)*stride + format.RowBytes(width)
	if len(data) < required {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(data), required)
	}
	return &Buffer{
		data:   data,
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

func checkGeometry(width, height int, format Format, stride int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !format.IsValid() {
		return ErrInvalidFormat
	}
	if stride < format.RowBytes(width) {
		return ErrInvalidStride
	}
	return nil
}

// Clone creates a deep copy of the buffer, including its tag.
func (b *Buffer) Clone() *Buffer {
	c := b.CreateIdentical()
	copy(c.data, b.data)
	return c
}

// CreateIdentical returns a zeroed buffer with the same size, stride,
// format and color-interpolation tag as b.
func (b *Buffer) CreateIdentical() *Buffer {
	return &Buffer{
		data:   make([]byte, len(b.data)),
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
		ci:     b.ci,
	}
}

// Blit copies the pixels of src into b. Both buffers must have the same
// size and format; strides may differ.
func (b *Buffer) Blit(src *Buffer) error {
	if b.width != src.width || b.height != src.height {
		return ErrInvalidDimensions
	}
	if b.format != src.format {
		return ErrFormatMismatch
	}
	if b.stride == src.stride && len(b.data) == len(src.data) {
		copy(b.data, src.data)
		return nil
	}
	for y := range b.height {
		copy(b.RowBytes(y), src.RowBytes(y))
	}
	return nil
}

// Width returns the width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *Buffer) Stride() int {
	return b.stride
}

// Format returns the current pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// Data returns the raw pixel data slice.
func (b *Buffer) Data() []byte {
	return b.data
}

// RowBytes returns the pixel bytes of row y without padding.
// Returns nil if y is out of bounds.
func (b *Buffer) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *Buffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// Ensure converts the buffer to format f in place. It is a no-op when the
// buffer is already in f. Fully transparent pixels become transparent
// black when converting to FormatInterchange.
func (b *Buffer) Ensure(f Format) error {
	return b.ensure(f, 0)
}

// EnsureInterchange converts the buffer to FormatInterchange, replacing
// fully transparent pixels with fallback (0xAARRGGBB).
func (b *Buffer) EnsureInterchange(fallback uint32) error {
	return b.ensure(FormatInterchange, fallback)
}

func (b *Buffer) ensure(f Format, fallback uint32) error {
	if f == b.format {
		return nil
	}
	if !f.IsValid() {
		return ErrInvalidFormat
	}
	if !f.HasColor() || !b.format.HasColor() {
		return fmt.Errorf("%w: cannot convert %s to %s", ErrFormatMismatch, b.format, f)
	}

	switch f {
	case FormatNative:
		ConvertInterchangeToNative(b.data, b.width, b.height, b.stride)
	case FormatInterchange:
		ConvertNativeToInterchange(b.data, b.width, b.height, b.stride, fallback)
	}
	logging.Logger().Debug("pixel: format converted",
		"from", b.format, "to", f, "width", b.width, "height", b.height)
	b.format = f
	return nil
}

// ColorInterpolation returns the buffer's color-interpolation tag.
func (b *Buffer) ColorInterpolation() ColorInterpolation {
	return b.ci
}

// SetColorInterpolation sets the tag to ci, re-encoding the pixels when
// the tag moves between InterpolationSRGB and InterpolationLinearRGB. Any
// transition involving InterpolationAuto only changes the tag. Alpha-only
// buffers carry no tag and are left alone.
func (b *Buffer) SetColorInterpolation(ci ColorInterpolation) {
	if !b.format.HasColor() {
		return
	}

	switch {
	case b.ci == InterpolationSRGB && ci == InterpolationLinearRGB:
		b.transfer(srgbToLinearPixel, toLinearInterchange)
	case b.ci == InterpolationLinearRGB && ci == InterpolationSRGB:
		b.transfer(linearToSRGBPixel, fromLinearInterchange)
	}
	b.ci = ci
}

// CopyColorInterpolation copies the tag of src without touching pixels.
func (b *Buffer) CopyColorInterpolation(src *Buffer) {
	b.ci = src.ci
}

func (b *Buffer) transfer(native, interchange func(uint32) uint32) {
	fn := native
	if b.format == FormatInterchange {
		fn = interchange
	}
	FilterSurface(b.data, b.width, b.height, b.stride, fn)
}
