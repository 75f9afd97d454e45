// Package uuenc implements the UU-encoding variant used to embed font and
// graphic binary blobs in [Fonts]/[Graphics] sections: 80-character lines
// in a 64-symbol alphabet ('!' to '`'), six bits per symbol, no line-length
// prefix byte (spec §6.1).
package uuenc

import (
	"errors"
	"fmt"

	"github.com/limenime/limeass/ast"
)

// ErrMalformedUU indicates a line contained a byte outside the alphabet.
var ErrMalformedUU = errors.New("uuenc: malformed line")

// LineWidth is the number of alphabet characters per encoded line.
const LineWidth = 80

const alphabetBase = 33 // '!' encodes value 0; value = char - 33.

func encodeChar(v byte) byte { return v + alphabetBase }

func decodeChar(c byte) (byte, error) {
	if c < alphabetBase || c > alphabetBase+63 {
		return 0, fmt.Errorf("%w: byte %q out of range", ErrMalformedUU, c)
	}
	return c - alphabetBase, nil
}

// Encode returns the encoded character stream for data, not yet wrapped
// into LineWidth-character lines (use EncodeLines for that).
func Encode(data []byte) []byte {
	out := make([]byte, 0, (len(data)/3+1)*4)

	i := 0
	for ; i+3 <= len(data); i += 3 {
		b0, b1, b2 := data[i], data[i+1], data[i+2]
		out = append(out,
			encodeChar(b0>>2),
			encodeChar(((b0&0x03)<<4)|(b1>>4)),
			encodeChar(((b1&0x0F)<<2)|(b2>>6)),
			encodeChar(b2&0x3F),
		)
	}

	switch len(data) - i {
	case 1:
		b0 := data[i]
		out = append(out, encodeChar(b0>>2), encodeChar((b0&0x03)<<4))
	case 2:
		b0, b1 := data[i], data[i+1]
		out = append(out,
			encodeChar(b0>>2),
			encodeChar(((b0&0x03)<<4)|(b1>>4)),
			encodeChar((b1&0x0F)<<2),
		)
	}

	return out
}

// EncodeLines encodes data and wraps the result into LineWidth-character
// lines, the last one possibly shorter (spec §6.1).
func EncodeLines(data []byte) []string {
	stream := Encode(data)

	var lines []string
	for i := 0; i < len(stream); i += LineWidth {
		end := i + LineWidth
		if end > len(stream) {
			end = len(stream)
		}
		lines = append(lines, string(stream[i:end]))
	}
	return lines
}

// Decode reverses Encode: a character stream (as produced by Encode, or the
// concatenation of encoded lines) back into the original bytes. The final
// group of 2 or 3 characters (rather than 4) decodes to 1 or 2 bytes,
// tolerating a shorter final line (spec §6.1).
func Decode(stream []byte) ([]byte, error) {
	out := make([]byte, 0, len(stream)/4*3)

	i := 0
	for i < len(stream) {
		n := len(stream) - i
		if n > 4 {
			n = 4
		}

		vals := make([]byte, n)
		for j := 0; j < n; j++ {
			v, err := decodeChar(stream[i+j])
			if err != nil {
				return nil, err
			}
			vals[j] = v
		}

		switch n {
		case 4:
			out = append(out,
				(vals[0]<<2)|(vals[1]>>4),
				((vals[1]&0x0F)<<4)|(vals[2]>>2),
				((vals[2]&0x03)<<6)|vals[3],
			)
		case 3:
			out = append(out,
				(vals[0]<<2)|(vals[1]>>4),
				((vals[1]&0x0F)<<4)|(vals[2]>>2),
			)
		case 2:
			out = append(out, (vals[0]<<2)|(vals[1]>>4))
		case 1:
			return nil, fmt.Errorf("%w: trailing single character cannot decode to a byte", ErrMalformedUU)
		}

		i += n
	}

	return out, nil
}

// DecodeLines joins lines (as stored in ast.Font.Lines/ast.Graphic.Lines,
// one per source line) and decodes the concatenated stream.
func DecodeLines(lines []string) ([]byte, error) {
	total := 0
	for _, l := range lines {
		total += len(l)
	}
	stream := make([]byte, 0, total)
	for _, l := range lines {
		stream = append(stream, l...)
	}
	return Decode(stream)
}

// DecodeSpans materializes and decodes the line spans of an ast.Font or
// ast.Graphic entry against the owning Script's source.
func DecodeSpans(src []byte, lines []ast.Span) ([]byte, error) {
	strs := make([]string, len(lines))
	for i, s := range lines {
		strs[i] = s.Text(src)
	}
	return DecodeLines(strs)
}
