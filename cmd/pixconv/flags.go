package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/image/colornames"

	"github.com/gogpu/pixconv/pixel"
)

// colorValue is a pflag.Value holding a straight 0xAARRGGBB word. It
// accepts SVG color names and #rgb, #rrggbb or #rrggbbaa notation.
type colorValue struct {
	argb uint32
	text string
}

var _ pflag.Value = (*colorValue)(nil)

func (v *colorValue) String() string { return v.text }

func (v *colorValue) Type() string { return "color" }

func (v *colorValue) Set(s string) error {
	argb, err := parseColor(s)
	if err != nil {
		return err
	}
	v.argb, v.text = argb, s
	return nil
}

// RGBA returns the color as a 0xRRGGBBAA word.
func (v *colorValue) RGBA() uint32 {
	return v.argb<<8 | v.argb>>24
}

func parseColor(s string) (uint32, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[name]; ok {
		return pixel.AssembleARGB(c.A, c.R, c.G, c.B), nil
	}

	hex, ok := strings.CutPrefix(name, "#")
	if !ok {
		return 0, fmt.Errorf("unknown color %q", s)
	}
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("invalid hex color %q", s)
	}
	rgba, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return uint32(rgba>>8) | uint32(rgba&0xFF)<<24, nil
}

// interpolationValue is a pflag.Value selecting the color space pixels are
// written in.
type interpolationValue pixel.ColorInterpolation

var _ pflag.Value = (*interpolationValue)(nil)

func (v *interpolationValue) String() string {
	return pixel.ColorInterpolation(*v).String()
}

func (v *interpolationValue) Type() string { return "interpolation" }

func (v *interpolationValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "srgb":
		*v = interpolationValue(pixel.InterpolationSRGB)
	case "linearrgb", "linear":
		*v = interpolationValue(pixel.InterpolationLinearRGB)
	default:
		return fmt.Errorf("unknown interpolation %q (want srgb or linearRGB)", s)
	}
	return nil
}
