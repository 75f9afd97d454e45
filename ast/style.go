package ast

// RelativeTo selects the v4++ style positioning coordinate space.
type RelativeTo int

const (
	RelativeToUnset RelativeTo = iota
	RelativeToWindow
	RelativeToVideo
	RelativeToScript
)

// Styles holds a [V4/V4+/V4++ Styles] section: its declared Format: field
// order plus the bound Style records.
type Styles struct {
	// Format is the ordered field names from the section's Format: line,
	// lower-cased and trimmed. Empty if no Format: line was seen (the
	// parser falls back to the version-default order and records a
	// KindMissingFormatLine warning).
	Format []string

	Records []Style
}

// Style is one bound Style: record. Fields are borrowed spans into the
// owning Script's source; version-specific fields are optional via the Has*
// flags rather than pointers, to keep Style a flat, allocation-free value.
type Style struct {
	Span Span

	Name            Span
	Fontname        Span
	Fontsize        Span
	PrimaryColour   Span
	SecondaryColour Span
	OutlineColour   Span
	BackColour      Span
	Bold            Span
	Italic          Span
	Underline       Span
	StrikeOut       Span
	ScaleX          Span
	ScaleY          Span
	Spacing         Span
	Angle           Span
	BorderStyle     Span
	Outline         Span
	Shadow          Span
	Alignment       Span
	MarginL         Span
	MarginR         Span

	// HasMarginV is set for v4/v4+ styles (MarginV field).
	HasMarginV bool
	MarginV    Span

	// HasSplitMargins is set for v4++ styles (MarginT/MarginB fields).
	HasSplitMargins bool
	MarginT         Span
	MarginB         Span

	Encoding Span

	// HasRelativeTo is set only for v4++ styles that declare a trailing
	// RelativeTo field.
	HasRelativeTo bool
	RelativeTo    Span

	// Extra carries format fields recognized by neither v4+ nor v4++,
	// keyed by their lower-cased Format: name (spec §9 Open Question 1).
	Extra map[string]Span
}
