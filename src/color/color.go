// Package color converts the "#rrggbb" colors used by shape descriptions to
// packed 24-bit integers and back.
package color

import (
	"errors"
	"fmt"
)

// MaxColor is the largest packed color value (0xFFFFFF).
const MaxColor uint32 = 0xFFFFFF

// ErrInvalidColorFormat is returned when a color string is not '#' followed
// by exactly six hexadecimal digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

// HexToColor converts "#rrggbb" (case-insensitive) to its integer value.
func HexToColor(s string) (uint32, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	var val uint32
	for i := 1; i < len(s); i++ {
		d, ok := hexDigit(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
		val = val<<4 | d
	}
	return val, nil
}

// IsHexColor reports whether s would be accepted by HexToColor.
func IsHexColor(s string) bool {
	_, err := HexToColor(s)
	return err == nil
}

// ToHex renders the low 24 bits of c as a lowercase "#rrggbb" string.
func ToHex(c uint32) string {
	return fmt.Sprintf("#%06x", c&MaxColor)
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}
