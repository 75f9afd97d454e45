// Package ast defines the node types produced by package parse: Script,
// its Sections, and the issues collected while building them.
//
// Every node borrows into a single source buffer for the lifetime of a
// parse result (spec §3/§9): nodes store byte offsets (Span), not copied
// strings. Script.Text materializes a span into a string on demand.
package ast

import "errors"

// ErrInternalInvariant names an internal-invariant failure: a bug in this
// module, not in the source being parsed. No function in this module
// returns it.
var ErrInternalInvariant = errors.New("ast: internal invariant violated")

// Version identifies the subtitle dialect a Script was written against.
type Version int

const (
	// VersionUnknown is never produced by a successful parse; it exists
	// so Version's zero value is distinguishable from a resolved version.
	VersionUnknown Version = iota
	SsaV4
	AssV4
	AssV4Plus
)

// String renders the version the way it is written in ScriptType:.
func (v Version) String() string {
	switch v {
	case SsaV4:
		return "SSA v4.00"
	case AssV4:
		return "ASS v4.00+"
	case AssV4Plus:
		return "ASS v4.00++"
	default:
		return "unknown"
	}
}

// Span is a byte-offset range into a Script's source buffer. End is
// exclusive. Spans never include line terminators.
type Span struct {
	Start, End int
}

// Len reports the span's width in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Text materializes the bytes a span covers in src.
func (s Span) Text(src []byte) string {
	if s.Start < 0 || s.End > len(src) || s.Start > s.End {
		return ""
	}
	return string(src[s.Start:s.End])
}

// Severity classifies a ParseIssue or LintIssue.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// IssueKind enumerates the recoverable problems recorded during parse.
type IssueKind string

const (
	KindMalformedStyle       IssueKind = "MalformedStyle"
	KindMalformedEvent       IssueKind = "MalformedEvent"
	KindUnknownStyleField    IssueKind = "UnknownStyleField"
	KindUnknownEventField    IssueKind = "UnknownEventField"
	KindUnknownSection       IssueKind = "UnknownSection"
	KindUnknownStyleRef      IssueKind = "UnknownStyleReference"
	KindDuplicateSection     IssueKind = "DuplicateSection"
	KindDuplicateFormatLine  IssueKind = "DuplicateFormatLine"
	KindMissingFormatLine    IssueKind = "MissingFormatLine"
	KindVersionMismatch      IssueKind = "VersionMismatch"
	KindTrailingGarbage      IssueKind = "TrailingGarbage"
	KindMalformedOverride    IssueKind = "MalformedOverride"
	KindOverrideDepthExceeded IssueKind = "OverrideDepthExceeded"
	KindHandlerReplaced      IssueKind = "HandlerReplaced"
)

// ParseIssue is a recoverable problem found during parsing. It never
// aborts the parse. A record dropped for a wrong field count gets one
// issue spanning its line; an event dropped for a malformed timestamp gets
// one issue per bad time field, spanning only that field. Lines no section
// handler binds (text before the first header, key/value or raw lines in
// [V4+ Styles] or [Events], a record keyword the section does not take)
// are skipped without an issue.
type ParseIssue struct {
	Severity Severity
	Kind     IssueKind
	Span     Span
	Message  string
}

// Script is the root of a parsed ASS/SSA document.
type Script struct {
	// Source is the full buffer every node's Span is relative to.
	Source []byte

	Version  Version
	Sections []Section

	// Issues is append-only; parse never mutates an entry after appending
	// it (spans are corrected in place only by package incremental, which
	// produces a new Script rather than mutating this one).
	Issues []ParseIssue
}

// Text materializes a span against this Script's source.
func (s *Script) Text(span Span) string { return span.Text(s.Source) }

// SectionKind discriminates the Section tagged union (spec §3).
type SectionKind int

const (
	SectionScriptInfo SectionKind = iota
	SectionStyles
	SectionEvents
	SectionFonts
	SectionGraphics
	SectionCustom
)

// Section is a tagged union over the six section variants. Exactly one of
// the Kind-matching fields is populated for a given Kind; the others are
// left at their zero value.
type Section struct {
	Kind HeaderKind
	Span Span

	ScriptInfo *ScriptInfo
	Styles     *Styles
	Events     *Events
	Fonts      *Fonts
	Graphics   *Graphics
	Custom     *Custom
}

// HeaderKind is the resolved section kind plus the header name it was
// declared under (several headers map to SectionStyles, e.g. "V4 Styles",
// "V4+ Styles", "V4++ Styles").
type HeaderKind struct {
	Kind       SectionKind
	HeaderName string
}

// ScriptInfoEntry is one key/value pair from [Script Info], preserved in
// declaration order even when a key repeats (last-wins semantically, all
// retained for round-trip per spec §3).
type ScriptInfoEntry struct {
	KeySpan   Span
	ValueSpan Span
}

// ScriptInfo holds the [Script Info] section's ordered key/value pairs.
type ScriptInfo struct {
	Entries []ScriptInfoEntry
}

// Value returns the last occurrence of key (case-sensitive, matching the
// header names in spec §3), or "" with ok=false if absent.
func (si *ScriptInfo) Value(src []byte, key string) (string, bool) {
	var (
		val string
		ok  bool
	)
	for _, e := range si.Entries {
		if e.KeySpan.Text(src) == key {
			val, ok = e.ValueSpan.Text(src), true
		}
	}
	return val, ok
}

// Custom is the payload for a plugin-owned or unrecognized section: its
// raw, un-interpreted lines.
type Custom struct {
	Name  string
	Lines []Span
}
