// Package token lexes ASS/SSA source bytes into a flat token stream:
// section headers, key/value lines, format lines, record lines, and raw
// (UU-encoded or unrecognized) lines (spec §4.1).
//
// The scalar scanner is the reference implementation; an optional
// byte-parallel ("SWAR") delimiter scan accelerates line splitting on
// 64-bit platforms and must agree with it byte-for-byte (spec's "SIMD path
// is a performance-only variation" — see scan_swar.go).
package token

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrEncoding is fatal: non-UTF-8 bytes were found outside a UU-encoded
// run (spec §4.1/§7).
var ErrEncoding = errors.New("token: invalid encoding")

// ErrSizeLimitExceeded is fatal: the source exceeds the configured ceiling
// (spec §5/§7).
var ErrSizeLimitExceeded = errors.New("token: size limit exceeded")

// DefaultSizeLimit is the default input size ceiling (spec §5): 64 MiB.
const DefaultSizeLimit = 64 << 20

// Kind discriminates a Token.
type Kind int

const (
	SectionHeader Kind = iota
	KeyValue
	FormatLine
	RecordLine
	BlankLine
	CommentLine
	RawLine
)

// Token is one lexed line. Which fields are populated depends on Kind:
//   - SectionHeader: Name
//   - KeyValue: Key, Value
//   - FormatLine: Fields
//   - RecordLine: RecordType, Fields
//   - CommentLine: Text
//   - RawLine: Text
//
// Start/End give the token's span, excluding the line terminator.
type Token struct {
	Kind       Kind
	Start, End int

	Name       string
	Key, Value string
	RecordType string
	Fields     []string
	Text       string

	// KeyStart and ValueStart are the absolute source offsets where Key and
	// Value begin, for KeyValue tokens, letting callers build exact spans
	// without re-searching the line for text that may repeat (spec §8
	// invariant 1).
	KeyStart, ValueStart int

	// Raw is the untouched remainder of a RecordLine after its keyword
	// (e.g. "Style:"), before comma splitting. Package parse splits it with
	// SplitFieldOffsets against the section's field order (the
	// version-default order when no Format: line preceded the record)
	// (spec §4.2).
	Raw string

	// RawStart is the absolute source offset where Raw begins, letting
	// callers turn a FieldOffset (relative to Raw) into an absolute Span.
	RawStart int
}

// Options configures the Tokenizer.
type Options struct {
	// SizeLimit caps the accepted input length. Zero means DefaultSizeLimit.
	SizeLimit int

	// InUUBlock reports whether byte offset off (0-based into the trimmed
	// source, after BOM removal) falls inside a UU-encoded line run, so the
	// scanner can relax UTF-8 validation there (spec §4.1: "UTF-8 is
	// required except inside UU-encoded line runs"). A nil func means no
	// UU-relaxation is applied. The tokenizer itself is line-oriented and
	// doesn't track sections; package parse does not set this func, so
	// parse.Parse validates every line as UTF-8.
	InUUBlock func(off int) bool

	// DisableSWAR forces the scalar line scanner even on platforms where
	// the SWAR path is available.
	DisableSWAR bool
}

// Tokenize lexes src into a slice of Tokens, or returns a fatal error.
// Every other line is still tokenized: a line whose keyword is not in
// recordKeywords becomes KeyValue when it contains ':' and RawLine
// otherwise. Only encoding and size problems abort here (spec §4.1
// "Failure").
func Tokenize(src []byte, opts Options) ([]Token, error) {
	limit := opts.SizeLimit
	if limit == 0 {
		limit = DefaultSizeLimit
	}
	if len(src) > limit {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit %d", ErrSizeLimitExceeded, len(src), limit)
	}

	src = trimBOM(src)

	lines := splitLines(src, !opts.DisableSWAR && swarAvailable)

	tokens := make([]Token, 0, len(lines))
	var currentFormat []string // most recently seen Format: field order, for RecordLine splitting

	for _, ln := range lines {
		raw := src[ln.start:ln.end]

		if !validUTF8InLine(raw, ln.start, opts.InUUBlock) {
			return nil, fmt.Errorf("%w: offset %d", ErrEncoding, ln.start)
		}

		tok := classifyLine(raw, ln.start, ln.end, currentFormat)
		if tok.Kind == FormatLine {
			currentFormat = tok.Fields
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}

func trimBOM(src []byte) []byte {
	const bom = "\xef\xbb\xbf"
	if len(src) >= 3 && string(src[:3]) == bom {
		return src[3:]
	}
	return src
}

func validUTF8InLine(line []byte, start int, inUU func(int) bool) bool {
	if inUU != nil && inUU(start) {
		return true
	}
	return utf8.Valid(line)
}
