package token

import "strings"

// recordKeywords lists the known record-line keywords across all section
// kinds; classifyLine recognizes any of these (case-sensitive, matching
// real-world producers) followed by ':' as a RecordLine.
var recordKeywords = []string{
	"Style", "Dialogue", "Comment", "Picture", "Sound", "Movie", "Command",
}

func classifyLine(raw []byte, start, end int, currentFormat []string) Token {
	line := string(raw)
	trimmed := strings.TrimSpace(line)
	leading := len(line) - len(strings.TrimLeft(line, " \t"))
	trimmedStart := start + leading

	if trimmed == "" {
		return Token{Kind: BlankLine, Start: start, End: end}
	}

	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		name := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
		return Token{Kind: SectionHeader, Start: start, End: end, Name: name}
	}

	if strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "!:") {
		return Token{Kind: CommentLine, Start: start, End: end, Text: trimmed}
	}

	if kw, rest, ok := matchKeyword(trimmed, "Format"); ok {
		fields := splitFormatFields(rest)
		return Token{Kind: FormatLine, Start: start, End: end, Fields: fields, Key: kw}
	}

	for _, kw := range recordKeywords {
		if rest, ok := matchRecordKeyword(trimmed, kw); ok {
			n := len(currentFormat)
			fields := splitRecordFields(rest, n)
			rawStart := trimmedStart + len(kw) + 1
			return Token{Kind: RecordLine, Start: start, End: end, RecordType: kw, Fields: fields, Raw: rest, RawStart: rawStart}
		}
	}

	if key, value, keyOff, valOff, ok := splitKeyValueOffsets(trimmed); ok {
		return Token{
			Kind: KeyValue, Start: start, End: end,
			Key: key, Value: value,
			KeyStart:  trimmedStart + keyOff,
			ValueStart: trimmedStart + valOff,
		}
	}

	return Token{Kind: RawLine, Start: start, End: end, Text: line}
}

func matchKeyword(trimmed, keyword string) (kw, rest string, ok bool) {
	if !strings.HasPrefix(trimmed, keyword+":") {
		return "", "", false
	}
	return keyword, strings.TrimSpace(trimmed[len(keyword)+1:]), true
}

func matchRecordKeyword(trimmed, keyword string) (rest string, ok bool) {
	prefix := keyword + ":"
	if !strings.HasPrefix(trimmed, prefix) {
		return "", false
	}
	return trimmed[len(prefix):], true
}

// splitFormatFields splits a Format: line's remainder by comma, trimming
// each field name (spec §4.1).
func splitFormatFields(rest string) []string {
	parts := strings.Split(rest, ",")
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return fields
}

// splitRecordFields splits a record line's remainder into exactly
// min(n, actual-comma-count+1) fields when n > 0, with the LAST field
// receiving the verbatim remainder of the line — commas inside it are not
// separators (spec §4.1, the Events Text field rule, generalized to any
// record type bound against a format with n fields). When n is 0 (no
// Format: line seen yet) or 1, the whole remainder is a single field.
func splitRecordFields(rest string, n int) []string {
	if n <= 1 {
		return []string{rest}
	}

	fields := make([]string, 0, n)
	remaining := rest
	for i := 0; i < n-1; i++ {
		idx := strings.IndexByte(remaining, ',')
		if idx < 0 {
			break
		}
		fields = append(fields, strings.TrimSpace(remaining[:idx]))
		remaining = remaining[idx+1:]
	}
	fields = append(fields, remaining)

	return fields
}

// FieldOffset is a field's byte range relative to the raw string it was
// split from (as returned by SplitFieldOffsets), letting callers recover
// an absolute span via Token.RawStart.
type FieldOffset struct {
	Start, End int
}

// SplitFieldOffsets mirrors splitRecordFields but reports each field's trimmed
// byte range within raw instead of its text, so package parse can build
// exact ast.Span values without re-searching the line for the value's text
// (which could find the wrong occurrence when a value repeats).
func SplitFieldOffsets(raw string, n int) []FieldOffset {
	if n <= 1 {
		return []FieldOffset{trimmedOffset(raw, 0, len(raw))}
	}

	offsets := make([]FieldOffset, 0, n)
	pos := 0
	for i := 0; i < n-1; i++ {
		idx := strings.IndexByte(raw[pos:], ',')
		if idx < 0 {
			break
		}
		offsets = append(offsets, trimmedOffset(raw, pos, pos+idx))
		pos = pos + idx + 1
	}
	offsets = append(offsets, trimmedOffset(raw, pos, len(raw)))

	return offsets
}

func trimmedOffset(s string, start, end int) FieldOffset {
	seg := s[start:end]
	lead := len(seg) - len(strings.TrimLeft(seg, " \t"))
	trail := len(strings.TrimRight(seg, " \t"))
	if trail < lead {
		trail = lead
	}
	return FieldOffset{Start: start + lead, End: start + trail}
}

// splitKeyValueOffsets splits trimmed on its first ':' and reports each
// side's trimmed text along with its byte offset relative to trimmed, so
// classifyLine can build exact KeyStart/ValueStart source offsets.
func splitKeyValueOffsets(trimmed string) (key, value string, keyOff, valOff int, ok bool) {
	idx := strings.IndexByte(trimmed, ':')
	if idx < 0 {
		return "", "", 0, 0, false
	}
	ko := trimmedOffset(trimmed, 0, idx)
	vo := trimmedOffset(trimmed, idx+1, len(trimmed))
	return trimmed[ko.Start:ko.End], trimmed[vo.Start:vo.End], ko.Start, vo.Start, true
}
