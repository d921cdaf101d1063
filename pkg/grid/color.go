package grid

import (
	"image/color"
	"strconv"
	"strings"
)

// ParseHex parses a hex color string like "#5079a5" or the shorthand "#fff"
// into an opaque NRGBA value. The leading "#" is optional and shorthand
// digits are doubled ("#fff" -> "#ffffff"). Anything that is not exactly
// three or six hex digits returns fallback.
func ParseHex(value string, fallback color.NRGBA) color.NRGBA {
	text := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(text) == 3 {
		var b strings.Builder
		for _, ch := range text {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		text = b.String()
	}
	if len(text) != 6 {
		return fallback
	}
	n, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return fallback
	}
	return color.NRGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 255,
	}
}
