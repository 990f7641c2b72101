package pixel

import "github.com/gogpu/gputypes"

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatNative is 32-bit premultiplied BGRA (0xAARRGGBB little-endian).
	// This is the format all rendering and filtering operates on.
	FormatNative Format = iota

	// FormatInterchange is 32-bit straight-alpha RGBA, the layout produced
	// by image decoders and consumed by encoders.
	FormatInterchange

	// FormatAlpha8 is 8-bit coverage only (1 byte per pixel).
	FormatAlpha8

	formatCount
)

// Layout maps channels to byte offsets inside one pixel.
// An offset of -1 means the channel is not stored.
type Layout struct {
	R, G, B, A int
}

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Layout is the byte position of every channel.
	Layout Layout

	// HasColor is false for alpha-only formats.
	HasColor bool

	// IsPremultiplied indicates if color channels are scaled by alpha.
	IsPremultiplied bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatNative: {
		BytesPerPixel:   4,
		Layout:          Layout{R: 2, G: 1, B: 0, A: 3},
		HasColor:        true,
		IsPremultiplied: true,
	},
	FormatInterchange: {
		BytesPerPixel:   4,
		Layout:          Layout{R: 0, G: 1, B: 2, A: 3},
		HasColor:        true,
		IsPremultiplied: false,
	},
	FormatAlpha8: {
		BytesPerPixel: 1,
		Layout:        Layout{R: -1, G: -1, B: -1, A: 0},
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// Layout returns the channel byte offsets of this format.
func (f Format) Layout() Layout {
	return f.Info().Layout
}

// HasColor returns false for alpha-only formats.
func (f Format) HasColor() bool {
	return f.Info().HasColor
}

// IsPremultiplied returns true if alpha is premultiplied.
func (f Format) IsPremultiplied() bool {
	return f.Info().IsPremultiplied
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatNative:
		return "Native"
	case FormatInterchange:
		return "Interchange"
	case FormatAlpha8:
		return "Alpha8"
	default:
		return "Unknown"
	}
}

// TextureFormat returns the GPU texture format with the same byte layout,
// for uploading a buffer without a swizzle pass. Premultiplication is not
// part of the GPU format and must be tracked by the caller.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatNative:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatInterchange:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatAlpha8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}
