package pixbuf

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"

	"github.com/gogpu/pixconv/internal/logging"
)

// dataURIParams is the parsed header of a data URI.
type dataURIParams struct {
	base64 bool
	image  bool
	svg    bool
}

// parseDataURIParams reads the ';'-separated parameters before the comma.
// Unknown parameters are skipped. A base64 payload is assumed to be an
// image even without a MIME type, as some editors omit it.
func parseDataURIParams(header string) dataURIParams {
	var p dataURIParams
	for _, param := range strings.Split(header, ";") {
		switch strings.ToLower(strings.TrimSpace(param)) {
		case "base64":
			p.base64 = true
			p.image = true
		case "image/png", "image/jpg", "image/jpeg", "image/jp2",
			"image/gif", "image/bmp", "image/tiff", "image/webp":
			p.image = true
		case "image/svg+xml":
			p.image = true
			p.svg = true
		}
	}
	return p
}

// FromDataURI decodes a "data:[<mime>][;base64],<payload>" URI holding a
// base64 raster image. SVG payloads and non-base64 payloads are rejected
// with ErrUnsupportedMIME.
func FromDataURI(uri string, opts ...Option) (*Pixbuf, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return nil, fmt.Errorf("%w: missing data: scheme", ErrInvalidDataURI)
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: missing payload separator", ErrInvalidDataURI)
	}
	if payload == "" {
		return nil, ErrEmptyData
	}

	params := parseDataURIParams(header)
	if !params.image || !params.base64 || params.svg {
		logging.Logger().Warn("pixbuf: unsupported data URI", "header", header)
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMIME, header)
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataURI, err)
	}
	return DecodeBytes(data, opts...)
}

// decodeBase64 decodes standard base64 while ignoring whitespace and
// missing padding, both common in hand-written documents.
func decodeBase64(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
