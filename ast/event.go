package ast

// EventType discriminates an Events record's Type field.
type EventType int

const (
	Dialogue EventType = iota
	Comment
	Picture
	Sound
	Movie
	Command
)

func (t EventType) String() string {
	switch t {
	case Dialogue:
		return "Dialogue"
	case Comment:
		return "Comment"
	case Picture:
		return "Picture"
	case Sound:
		return "Sound"
	case Movie:
		return "Movie"
	case Command:
		return "Command"
	default:
		return "Unknown"
	}
}

// Events holds an [Events] section: its declared Format: field order plus
// the bound Event records.
type Events struct {
	Format  []string
	Records []Event
}

// Event is one bound event record (Dialogue:, Comment:, …). Start/End carry
// both the source literal and the pre-parsed centisecond value (spec §3).
type Event struct {
	Span Span
	Type EventType

	Layer Span
	Start EventTime
	End   EventTime
	Style Span
	Name  Span

	MarginL Span
	MarginR Span

	HasMarginV bool
	MarginV    Span

	HasSplitMargins bool
	MarginT         Span
	MarginB         Span

	Effect Span

	// Text is the full, un-interpreted remainder of the record line (the
	// last Format: field). Its override/drawing structure is parsed lazily
	// by package override on demand (spec §4.3).
	Text Span

	// Extra carries format fields recognized by neither v4+ nor v4++
	// (spec §9 Open Question 1).
	Extra map[string]Span
}

// EventTime is a timestamp field bound from a record: the raw span plus
// the value parsed by package literal.
type EventTime struct {
	Span         Span
	Centiseconds int
	Valid        bool
}

// Font is one [Fonts] entry: a declared filename plus the UU-encoded lines
// that follow it, decoded lazily by package uuenc.
type Font struct {
	Name  Span
	Lines []Span
}

// Fonts holds a [Fonts] section's entries, in declaration order.
type Fonts struct {
	Entries []Font
}

// Graphic is one [Graphics] entry, structurally identical to Font.
type Graphic struct {
	Name  Span
	Lines []Span
}

// Graphics holds a [Graphics] section's entries, in declaration order.
type Graphics struct {
	Entries []Graphic
}
