package ast

// DefaultStyleFormat returns the specification-default Format: field order
// for a Styles section under the given version (spec §6.1), used when a
// record line precedes any Format: line.
func DefaultStyleFormat(v Version) []string {
	base := []string{
		"name", "fontname", "fontsize", "primarycolour", "secondarycolour",
		"outlinecolour", "backcolour", "bold", "italic", "underline",
		"strikeout", "scalex", "scaley", "spacing", "angle", "borderstyle",
		"outline", "shadow", "alignment", "marginl", "marginr",
	}
	if v == AssV4Plus {
		return append(append(append([]string{}, base...), "margint", "marginb", "encoding"), "relativeto")
	}
	return append(append([]string{}, base...), "marginv", "encoding")
}

// DefaultEventFormat returns the specification-default Format: field order
// for an Events section under the given version (spec §6.1).
func DefaultEventFormat(v Version) []string {
	base := []string{"layer", "start", "end", "style", "name", "marginl", "marginr"}
	if v == AssV4Plus {
		return append(append(append([]string{}, base...), "margint", "marginb"), "effect", "text")
	}
	return append(append(append([]string{}, base...), "marginv"), "effect", "text")
}
