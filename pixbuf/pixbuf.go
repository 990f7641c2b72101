// Package pixbuf wraps a pixel.Buffer loaded from an encoded image.
//
// A Pixbuf keeps a single copy of the pixels and converts it in place
// between the straight-alpha interchange layout that decoders and encoders
// use and the premultiplied native layout used for rendering. Callers ask
// for the layout they need with Ensure, Native or Image.
//
// Decoding goes through image.Decode with PNG, JPEG, GIF, BMP, TIFF and
// WebP registered.
package pixbuf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder

	"golang.org/x/image/draw"

	"github.com/gogpu/pixconv/internal/logging"
	"github.com/gogpu/pixconv/pixel"
)

// Errors returned while creating a Pixbuf.
var (
	// ErrEmptyData is returned when there is nothing to decode or the
	// decoded image has no pixels.
	ErrEmptyData = errors.New("pixbuf: empty data")

	// ErrInvalidDataURI is returned for strings that are not well-formed
	// data URIs.
	ErrInvalidDataURI = errors.New("pixbuf: invalid data URI")

	// ErrUnsupportedMIME is returned for data URIs whose payload is not a
	// base64 raster image.
	ErrUnsupportedMIME = errors.New("pixbuf: unsupported MIME type")
)

// MIME types retained as source data.
const (
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
)

// Pixbuf is an image whose pixels can be viewed in either pixel format.
//
// Thread safety: Pixbuf is not safe for concurrent use; conversions
// rewrite the shared pixels.
type Pixbuf struct {
	buf *pixel.Buffer

	mimeType string
	mimeData []byte

	path    string
	modTime time.Time
}

// New wraps an existing buffer. The Pixbuf takes ownership of buf, which
// must hold color; alpha-only buffers are rejected with
// pixel.ErrFormatMismatch.
func New(buf *pixel.Buffer) (*Pixbuf, error) {
	if !buf.Format().HasColor() {
		return nil, fmt.Errorf("pixbuf: new from %v buffer: %w", buf.Format(), pixel.ErrFormatMismatch)
	}
	return &Pixbuf{buf: buf}, nil
}

// FromImage copies any image into a new interchange-format Pixbuf.
// Images without an alpha channel become opaque.
func FromImage(img image.Image) (*Pixbuf, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, ErrEmptyData
	}

	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)

	buf, err := pixel.FromRaw(dst.Pix, bounds.Dx(), bounds.Dy(), pixel.FormatInterchange, dst.Stride)
	if err != nil {
		return nil, fmt.Errorf("pixbuf: wrap pixels: %w", err)
	}
	return New(buf)
}

// Decode reads and decodes an encoded image.
func Decode(r io.Reader, opts ...Option) (*Pixbuf, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pixbuf: read: %w", err)
	}
	return DecodeBytes(data, opts...)
}

// DecodeBytes decodes an encoded image held in memory.
// With MIME data enabled, data is retained by the Pixbuf and must not be
// modified afterwards.
func DecodeBytes(data []byte, opts ...Option) (*Pixbuf, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	o := applyOptions(opts)

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("pixbuf: decode: %w", err)
	}
	pb, err := FromImage(img)
	if err != nil {
		return nil, err
	}

	if o.keepMIME {
		pb.setMIMEData(format, data)
	}
	logging.Logger().Debug("pixbuf: decoded",
		"format", format, "width", pb.Width(), "height", pb.Height())
	return pb, nil
}

// Load reads and decodes an image file. The returned Pixbuf records the
// path and the file's modification time.
func Load(path string, opts ...Option) (*Pixbuf, error) {
	path = filepath.Clean(path)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("pixbuf: stat: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("pixbuf: %s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pixbuf: read file: %w", err)
	}
	pb, err := DecodeBytes(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	pb.path = path
	pb.modTime = info.ModTime()
	return pb, nil
}

// setMIMEData keeps the source bytes for formats exporters can embed.
func (p *Pixbuf) setMIMEData(format string, data []byte) {
	switch format {
	case "png":
		p.mimeType = MIMEPNG
	case "jpeg":
		p.mimeType = MIMEJPEG
	default:
		return
	}
	p.mimeData = data
}

// MIMEData returns the retained source bytes and their MIME type, or
// empty values when none were kept.
func (p *Pixbuf) MIMEData() (mimeType string, data []byte) {
	return p.mimeType, p.mimeData
}

// Width returns the width in pixels.
func (p *Pixbuf) Width() int {
	return p.buf.Width()
}

// Height returns the height in pixels.
func (p *Pixbuf) Height() int {
	return p.buf.Height()
}

// Format returns the current pixel format.
func (p *Pixbuf) Format() pixel.Format {
	return p.buf.Format()
}

// Path returns the file the Pixbuf was loaded from, if any.
func (p *Pixbuf) Path() string {
	return p.path
}

// ModTime returns the modification time of the source file, or the zero
// time for images not loaded from a file.
func (p *Pixbuf) ModTime() time.Time {
	return p.modTime
}

// Buffer returns the underlying buffer in its current format.
func (p *Pixbuf) Buffer() *pixel.Buffer {
	return p.buf
}

// Ensure converts the pixels to format f in place.
func (p *Pixbuf) Ensure(f pixel.Format) error {
	return p.buf.Ensure(f)
}

// Native returns the buffer converted to premultiplied native pixels.
func (p *Pixbuf) Native() (*pixel.Buffer, error) {
	if err := p.buf.Ensure(pixel.FormatNative); err != nil {
		return nil, fmt.Errorf("pixbuf: native: %w", err)
	}
	return p.buf, nil
}

// Image converts the pixels to the interchange format and returns an
// *image.NRGBA sharing their memory. The view is only valid until the next
// conversion to the native format.
func (p *Pixbuf) Image() (*image.NRGBA, error) {
	if err := p.buf.Ensure(pixel.FormatInterchange); err != nil {
		return nil, fmt.Errorf("pixbuf: image: %w", err)
	}
	return &image.NRGBA{
		Pix:    p.buf.Data(),
		Stride: p.buf.Stride(),
		Rect:   image.Rect(0, 0, p.buf.Width(), p.buf.Height()),
	}, nil
}

// Clone returns a deep copy of the Pixbuf. Retained MIME data is shared,
// since it is never modified.
func (p *Pixbuf) Clone() *Pixbuf {
	c := *p
	c.buf = p.buf.Clone()
	return &c
}

// EncodePNG writes the pixels as PNG, converting them to the interchange
// format first.
func (p *Pixbuf) EncodePNG(w io.Writer) error {
	img, err := p.Image()
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("pixbuf: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the pixels to a PNG file.
func (p *Pixbuf) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pixbuf: create file: %w", err)
	}
	if err := p.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
