package render

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	zxingrender "github.com/ericlevine/zxingrender"
)

// PackColor packs c into the buffer layout A<<24 | B<<16 | G<<8 | R.
func PackColor(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// UnpackColor is the inverse of PackColor.
func UnpackColor(p uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB"; the '#' is optional. Six-digit
// colors are fully opaque.
func ParseColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #RRGGBB or #AARRGGBB: %w", s, zxingrender.ErrInvalidArgument)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %v: %w", s, err, zxingrender.ErrInvalidArgument)
	}
	if len(b) == 3 {
		return color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}, nil
	}
	return color.NRGBA{A: b[0], R: b[1], G: b[2], B: b[3]}, nil
}
