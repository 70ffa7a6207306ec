package colors

import (
	"fmt"
	"strconv"
	"strings"
)

type Color [4]float32

var (
	White    = Color{1, 1, 1, 1}
	Black    = Color{0, 0, 0, 1}
	Red      = Color{1, 0, 0, 1}
	Yellow   = Color{1, 1, 0, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
	Sparky   = Color{0.2, 0.3, 0.8, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

func (c Color) RGBA() (r, g, b, a float32) { return c[0], c[1], c[2], c[3] }

// Parse reads "#RRGGBB" or "#RRGGBBAA" (leading # optional).
func Parse(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("colors: %q is not #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: parse %q: %w", s, err)
	}
	return Color{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}
