package parse

import (
	"strings"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/token"
)

// uuEntry is the shape shared by [Fonts] and [Graphics]: a "fontname:" or
// "filename:" line starts an entry, and every line after it up to the next
// such line (or the section's end) is one of its UU-encoded data lines
// (spec §6.1). The UU alphabet includes ':', so other key/value-shaped
// lines are data lines.
type uuEntry struct {
	Name  ast.Span
	Lines []ast.Span
}

func collectUUEntries(body []token.Token) []uuEntry {
	var entries []uuEntry

	for _, t := range body {
		switch {
		case t.Kind == token.KeyValue && (strings.EqualFold(t.Key, "fontname") || strings.EqualFold(t.Key, "filename")):
			entries = append(entries, uuEntry{
				Name: ast.Span{Start: t.ValueStart, End: t.ValueStart + len(t.Value)},
			})
		case t.Kind == token.BlankLine:
			// Blank lines don't belong to any entry's data and don't
			// start one; they're simply skipped (spec §6.1).
		default:
			if len(entries) == 0 {
				continue
			}
			last := len(entries) - 1
			entries[last].Lines = append(entries[last].Lines, spanOf(t))
		}
	}

	return entries
}

func (p *parser) mergeFonts(headerStart, headerEnd int, headerName string, body []token.Token) {
	existing := p.findSection(ast.SectionFonts)
	fonts := &ast.Fonts{}
	if existing != nil {
		fonts = existing.Fonts
	}

	for _, e := range collectUUEntries(body) {
		fonts.Entries = append(fonts.Entries, ast.Font{Name: e.Name, Lines: e.Lines})
	}

	if existing != nil {
		existing.Span.End = bodyEnd(headerEnd, body)
		return
	}

	p.sections = append(p.sections, ast.Section{
		Kind:  ast.HeaderKind{Kind: ast.SectionFonts, HeaderName: headerName},
		Span:  ast.Span{Start: headerStart, End: bodyEnd(headerEnd, body)},
		Fonts: fonts,
	})
}

func (p *parser) mergeGraphics(headerStart, headerEnd int, headerName string, body []token.Token) {
	existing := p.findSection(ast.SectionGraphics)
	graphics := &ast.Graphics{}
	if existing != nil {
		graphics = existing.Graphics
	}

	for _, e := range collectUUEntries(body) {
		graphics.Entries = append(graphics.Entries, ast.Graphic{Name: e.Name, Lines: e.Lines})
	}

	if existing != nil {
		existing.Span.End = bodyEnd(headerEnd, body)
		return
	}

	p.sections = append(p.sections, ast.Section{
		Kind:     ast.HeaderKind{Kind: ast.SectionGraphics, HeaderName: headerName},
		Span:     ast.Span{Start: headerStart, End: bodyEnd(headerEnd, body)},
		Graphics: graphics,
	})
}
