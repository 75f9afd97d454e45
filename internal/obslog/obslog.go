// Package obslog provides structured logging handler construction for use
// with log/slog, grounded on the MacroPower-x log package's level/format
// idiom (SPEC_FULL.md §4.7). Package parse (and package incremental,
// through the parse.Options it forwards) accepts an optional *slog.Logger
// and logs only at Debug level; the other core packages do not log. This
// package is what cmd/limeass uses to build the handler
// that ends up behind slog.Default().
package obslog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format selects a slog handler's output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatText    Format = "text"
	FormatLogfmt  Format = "logfmt"
)

var (
	ErrUnknownLogLevel  = errors.New("obslog: unknown log level")
	ErrUnknownLogFormat = errors.New("obslog: unknown log format")
)

// AllLevelStrings lists the recognized level flag values, for CLI help
// text and shell completion.
func AllLevelStrings() []string {
	return []string{"debug", "info", "warn", "error"}
}

// AllFormatStrings lists the recognized format flag values.
func AllFormatStrings() []string {
	return []string{string(FormatJSON), string(FormatText), string(FormatLogfmt)}
}

// ParseLevel parses a level string into a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

// ParseFormat parses a format string into a Format.
func ParseFormat(format string) (Format, error) {
	f := Format(strings.ToLower(format))
	switch f {
	case FormatJSON, FormatText, FormatLogfmt:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

// NewHandler builds a slog.Handler writing to w with the given level and
// format. FormatText and FormatLogfmt both render as slog's text handler;
// the distinction exists for flag-string compatibility with tools that
// expect "logfmt" by name.
func NewHandler(w io.Writer, lvl slog.Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{AddSource: true, Level: lvl}
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// NewHandlerFromStrings parses level and format before delegating to
// NewHandler.
func NewHandlerFromStrings(w io.Writer, level, format string) (slog.Handler, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return NewHandler(w, lvl, f), nil
}
