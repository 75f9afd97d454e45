// Package literal implements the small, total grammars shared by the ASS
// field binder and the override-tag sublanguage: time literals
// (H:MM:SS.CC) and BGR color literals (&H[AA]BBGGRR[&]).
package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedTime indicates a string did not match the H:MM:SS.CC grammar.
var ErrMalformedTime = errors.New("literal: malformed time")

// Time is a parsed ASS time literal: the original source text plus its
// value in centiseconds, the format's native time unit.
type Time struct {
	Literal      string
	Centiseconds int
}

// ParseTime parses an ASS time literal "H:MM:SS.CC". H may be one or more
// digits and may exceed 24 (values beyond 24h are accepted per spec).
func ParseTime(s string) (Time, error) {
	trimmed := strings.TrimSpace(s)

	dot := strings.LastIndexByte(trimmed, '.')
	if dot < 0 {
		return Time{}, fmt.Errorf("%w: %q: missing centisecond separator", ErrMalformedTime, s)
	}

	cs := trimmed[dot+1:]
	if len(cs) != 2 || !isDigits(cs) {
		return Time{}, fmt.Errorf("%w: %q: centiseconds must be 2 digits", ErrMalformedTime, s)
	}

	hms := strings.Split(trimmed[:dot], ":")
	if len(hms) != 3 {
		return Time{}, fmt.Errorf("%w: %q: expected H:MM:SS", ErrMalformedTime, s)
	}

	h, mm, ss := hms[0], hms[1], hms[2]
	if len(h) == 0 || !isDigits(h) {
		return Time{}, fmt.Errorf("%w: %q: bad hour field", ErrMalformedTime, s)
	}
	if len(mm) != 2 || !isDigits(mm) {
		return Time{}, fmt.Errorf("%w: %q: minute field must be 2 digits", ErrMalformedTime, s)
	}
	if len(ss) != 2 || !isDigits(ss) {
		return Time{}, fmt.Errorf("%w: %q: second field must be 2 digits", ErrMalformedTime, s)
	}

	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(mm)
	seconds, _ := strconv.Atoi(ss)
	centi, _ := strconv.Atoi(cs)

	if minutes >= 60 || seconds >= 60 {
		return Time{}, fmt.Errorf("%w: %q: minute/second out of range", ErrMalformedTime, s)
	}

	total := ((hours*60+minutes)*60+seconds)*100 + centi

	return Time{Literal: trimmed, Centiseconds: total}, nil
}

// FormatTime renders centiseconds back into "H:MM:SS.CC" form. It is the
// canonical writer used by the idempotence property in spec §8.7; it does
// not attempt to reproduce a source literal's exact digit width beyond the
// grammar's own zero-padding rules.
func FormatTime(centiseconds int) string {
	if centiseconds < 0 {
		centiseconds = 0
	}

	cs := centiseconds % 100
	totalSeconds := centiseconds / 100
	s := totalSeconds % 60
	totalMinutes := totalSeconds / 60
	m := totalMinutes % 60
	h := totalMinutes / 60

	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
