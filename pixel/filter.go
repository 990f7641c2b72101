package pixel

import (
	"sync/atomic"

	"github.com/gogpu/pixconv/internal/logging"
	"github.com/gogpu/pixconv/internal/parallel"
)

const (
	// parallelThreshold is the pixel count above which a surface filter
	// splits its rows across the worker pool.
	parallelThreshold = 2048

	defaultFilterThreads = 4
	maxFilterThreads     = 256
)

var numFilterThreads atomic.Int32

func init() {
	numFilterThreads.Store(defaultFilterThreads)
}

// SetNumFilterThreads sets how many goroutines a surface filter may use.
// Values are clamped to [1, 256].
func SetNumFilterThreads(n int) {
	n = min(max(n, 1), maxFilterThreads)
	numFilterThreads.Store(int32(n))
	logging.Logger().Debug("pixel: filter threads set", "threads", n)
}

// NumFilterThreads returns the current surface filter thread count.
func NumFilterThreads() int {
	return int(numFilterThreads.Load())
}

// FilterSurface replaces every pixel p of a 4-byte-per-pixel surface with
// fn(p), in place. Pixels are passed as packed words (see ExtractARGB).
// It returns the number of pixels processed, which is 0 for degenerate
// geometry. fn must be safe for concurrent use.
func FilterSurface(data []byte, width, height, stride int, fn func(uint32) uint32) int {
	if !validSurface(data, width, height, stride, 4) {
		return 0
	}
	runRows(data, data, width, height, stride, stride, fn)
	return width * height
}

// FilterSurfaceTo writes fn(p) for every pixel p of src into dst. Both
// buffers must be 4-byte formats of the same size; they may be the same
// buffer. The destination keeps its format.
func FilterSurfaceTo(dst, src *Buffer, fn func(uint32) uint32) error {
	if src.format.BytesPerPixel() != 4 || dst.format.BytesPerPixel() != 4 {
		return ErrFormatMismatch
	}
	if dst.width != src.width || dst.height != src.height {
		return ErrInvalidDimensions
	}
	runRows(dst.data, src.data, src.width, src.height, dst.stride, src.stride, fn)
	return nil
}

func runRows(dst, src []byte, width, height, dstStride, srcStride int, fn func(uint32) uint32) {
	threads := NumFilterThreads()
	if threads <= 1 || width*height <= parallelThreshold {
		mapRows(dst, src, width, height, dstStride, srcStride, fn)
		return
	}
	parallel.Shared(threads).Rows(height, func(y0, y1 int) {
		mapRows(dst[y0*dstStride:], src[y0*srcStride:], width, y1-y0, dstStride, srcStride, fn)
	})
}
