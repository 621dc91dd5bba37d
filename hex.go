package colorpick

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

// ErrInvalidHex is returned when a string is not a hex color.
var ErrInvalidHex = errors.New("colorpick: invalid hex color")

// FallbackRGB is what HexToRGB returns for malformed input.
var FallbackRGB = RGB{R: 255}

// HexToRGB parses "#rrggbb" (the '#' is optional, digits are
// case-insensitive, full-width forms are folded). Malformed input yields
// FallbackRGB instead of an error; callers that need validation check IsHex
// or use ParseHex first.
func HexToRGB(hex string) RGB {
	s := strings.TrimPrefix(foldWidth(hex), "#")
	if len(s) != 6 {
		Logger().Debug("colorpick: malformed hex, using fallback", "hex", hex)
		return FallbackRGB
	}
	var v [3]uint8
	for i := range v {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			Logger().Debug("colorpick: malformed hex, using fallback", "hex", hex)
			return FallbackRGB
		}
		v[i] = hi<<4 | lo
	}
	return RGB{R: v[0], G: v[1], B: v[2]}
}

// RGBToHex formats c as "#rrggbb" with lowercase, zero-padded digits.
func RGBToHex(c RGB) string {
	const digits = "0123456789abcdef"
	b := [7]byte{'#'}
	for i, ch := range [3]uint8{c.R, c.G, c.B} {
		b[1+2*i] = digits[ch>>4]
		b[2+2*i] = digits[ch&0x0f]
	}
	return string(b[:])
}

// IsHex reports whether s is exactly '#' followed by six hex digits, after
// folding full-width characters ("＃ＦＦ５７３３" typed through an IME counts).
// This is the check a hex text field applies before pushing a value into a
// Model.
func IsHex(s string) bool {
	s = foldWidth(s)
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if _, ok := hexDigit(s[i]); !ok {
			return false
		}
	}
	return true
}

// ParseHex strictly parses a hex color. It accepts "rgb" and "rrggbb", each
// with or without a leading '#'. Short forms expand each digit ("#f80" is
// "#ff8800").
func ParseHex(s string) (RGB, error) {
	body := strings.TrimPrefix(strings.TrimSpace(foldWidth(s)), "#")

	var digits [6]uint8
	switch len(body) {
	case 3:
		for i := 0; i < 3; i++ {
			d, ok := hexDigit(body[i])
			if !ok {
				return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			digits[2*i], digits[2*i+1] = d, d
		}
	case 6:
		for i := 0; i < 6; i++ {
			d, ok := hexDigit(body[i])
			if !ok {
				return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
			}
			digits[i] = d
		}
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return RGB{
		R: digits[0]<<4 | digits[1],
		G: digits[2]<<4 | digits[3],
		B: digits[4]<<4 | digits[5],
	}, nil
}

// NormalizeHex returns the canonical "#rrggbb" form of any input ParseHex
// accepts.
func NormalizeHex(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return RGBToHex(c), nil
}

// foldWidth maps full-width and ideographic-space runes to their ASCII
// forms.
func foldWidth(s string) string {
	return width.Fold.String(s)
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
