package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedColor indicates a string did not match the &H…& color grammar.
var ErrMalformedColor = errors.New("literal: malformed color")

// Color is a normalized RGBA quadruple. ASS stores colors in BGR order on
// the wire (§6.1); Color always holds the normalized RGBA form so callers
// never have to remember the wire byte order.
type Color struct {
	R, G, B, A uint8
}

// ParseColor parses an ASS color/alpha literal: "&H" followed by 2, 6, or 8
// hex digits and an optional trailing "&". The 8-digit form is AABBGGRR,
// the 6-digit form is BBGGRR with alpha 0, and the 2-digit form is alpha
// only (color channels left zero). Parsing is lenient about the trailing
// "&", matching common producer output.
func ParseColor(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)

	if !strings.HasPrefix(upper, "&H") {
		return Color{}, fmt.Errorf("%w: %q: missing &H prefix", ErrMalformedColor, s)
	}
	hex := upper[2:]
	hex = strings.TrimSuffix(hex, "&")

	switch len(hex) {
	case 2:
		a, err := hexByte(hex[0:2])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %w", ErrMalformedColor, s, err)
		}
		return Color{A: a}, nil
	case 6:
		b, g, r, err := bgrBytes(hex)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %w", ErrMalformedColor, s, err)
		}
		return Color{R: r, G: g, B: b, A: 0}, nil
	case 8:
		a, err := hexByte(hex[0:2])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %w", ErrMalformedColor, s, err)
		}
		b, g, r, err := bgrBytes(hex[2:])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %w", ErrMalformedColor, s, err)
		}
		return Color{R: r, G: g, B: b, A: a}, nil
	default:
		return Color{}, fmt.Errorf("%w: %q: expected 2, 6, or 8 hex digits, got %d", ErrMalformedColor, s, len(hex))
	}
}

func bgrBytes(hex6 string) (b, g, r uint8, err error) {
	b, err = hexByte(hex6[0:2])
	if err != nil {
		return 0, 0, 0, err
	}
	g, err = hexByte(hex6[2:4])
	if err != nil {
		return 0, 0, 0, err
	}
	r, err = hexByte(hex6[4:6])
	if err != nil {
		return 0, 0, 0, err
	}
	return b, g, r, nil
}

func hexByte(pair string) (uint8, error) {
	v, err := strconv.ParseUint(pair, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("bad hex byte %q: %w", pair, err)
	}
	return uint8(v), nil
}

// FormatColor renders a Color back to the 8-digit "&HAABBGGRR&" form.
func FormatColor(c Color) string {
	return fmt.Sprintf("&H%02X%02X%02X%02X&", c.A, c.B, c.G, c.R)
}
