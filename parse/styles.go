package parse

import (
	"strconv"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/token"
)

func (p *parser) mergeStyles(headerStart, headerEnd int, headerName string, body []token.Token) {
	existing := p.findSection(ast.SectionStyles)
	st := &ast.Styles{}
	if existing != nil {
		st = existing.Styles
	}

	sawFormat := len(st.Format) > 0
	sawRecordBeforeFormat := false

	for _, t := range body {
		switch t.Kind {
		case token.FormatLine:
			if sawFormat {
				p.addIssue(ast.Warning, ast.KindDuplicateFormatLine, spanOf(t), "duplicate Format: line; replacing previous style format")
			}
			st.Format = t.Fields
			sawFormat = true
		case token.RecordLine:
			if t.RecordType != "Style" {
				continue
			}
			format := st.Format
			if len(format) == 0 {
				format = ast.DefaultStyleFormat(p.version)
				if !sawRecordBeforeFormat {
					p.addIssue(ast.Warning, ast.KindMissingFormatLine, spanOf(t), "Style: record before any Format: line; using version-default field order")
					sawRecordBeforeFormat = true
				}
			}
			p.bindStyleRecord(t, format, st)
		}
	}

	if existing != nil {
		existing.Span.End = bodyEnd(headerEnd, body)
		return
	}

	p.sections = append(p.sections, ast.Section{
		Kind:   ast.HeaderKind{Kind: ast.SectionStyles, HeaderName: headerName},
		Span:   ast.Span{Start: headerStart, End: bodyEnd(headerEnd, body)},
		Styles: st,
	})
}

var styleFieldSetters = map[string]func(*ast.Style, ast.Span){
	"name":            func(s *ast.Style, v ast.Span) { s.Name = v },
	"fontname":        func(s *ast.Style, v ast.Span) { s.Fontname = v },
	"fontsize":        func(s *ast.Style, v ast.Span) { s.Fontsize = v },
	"primarycolour":   func(s *ast.Style, v ast.Span) { s.PrimaryColour = v },
	"secondarycolour": func(s *ast.Style, v ast.Span) { s.SecondaryColour = v },
	"outlinecolour":   func(s *ast.Style, v ast.Span) { s.OutlineColour = v },
	"backcolour":      func(s *ast.Style, v ast.Span) { s.BackColour = v },
	"bold":            func(s *ast.Style, v ast.Span) { s.Bold = v },
	"italic":          func(s *ast.Style, v ast.Span) { s.Italic = v },
	"underline":       func(s *ast.Style, v ast.Span) { s.Underline = v },
	"strikeout":       func(s *ast.Style, v ast.Span) { s.StrikeOut = v },
	"scalex":          func(s *ast.Style, v ast.Span) { s.ScaleX = v },
	"scaley":          func(s *ast.Style, v ast.Span) { s.ScaleY = v },
	"spacing":         func(s *ast.Style, v ast.Span) { s.Spacing = v },
	"angle":           func(s *ast.Style, v ast.Span) { s.Angle = v },
	"borderstyle":     func(s *ast.Style, v ast.Span) { s.BorderStyle = v },
	"outline":         func(s *ast.Style, v ast.Span) { s.Outline = v },
	"shadow":          func(s *ast.Style, v ast.Span) { s.Shadow = v },
	"alignment":       func(s *ast.Style, v ast.Span) { s.Alignment = v },
	"marginl":         func(s *ast.Style, v ast.Span) { s.MarginL = v },
	"marginr":         func(s *ast.Style, v ast.Span) { s.MarginR = v },
	"marginv":         func(s *ast.Style, v ast.Span) { s.HasMarginV = true; s.MarginV = v },
	"margint":         func(s *ast.Style, v ast.Span) { s.HasSplitMargins = true; s.MarginT = v },
	"marginb":         func(s *ast.Style, v ast.Span) { s.HasSplitMargins = true; s.MarginB = v },
	"encoding":        func(s *ast.Style, v ast.Span) { s.Encoding = v },
	"relativeto":      func(s *ast.Style, v ast.Span) { s.HasRelativeTo = true; s.RelativeTo = v },
}

func (p *parser) bindStyleRecord(t token.Token, format []string, st *ast.Styles) {
	offsets := token.SplitFieldOffsets(t.Raw, len(format))
	if len(offsets) != len(format) {
		p.addIssue(ast.Error, ast.KindMalformedStyle, spanOf(t),
			"Style: record has "+strconv.Itoa(len(offsets))+" fields, expected "+strconv.Itoa(len(format)))
		return
	}

	if extraCommas(t.Raw, len(format)) {
		p.addIssue(ast.Info, ast.KindTrailingGarbage, spanOf(t), "extra fields after the last declared Style: field were appended to it")
	}

	rec := ast.Style{Span: spanOf(t)}
	for i, name := range format {
		off := offsets[i]
		valSpan := ast.Span{Start: t.RawStart + off.Start, End: t.RawStart + off.End}
		setter, ok := styleFieldSetters[name]
		if !ok {
			if rec.Extra == nil {
				rec.Extra = map[string]ast.Span{}
			}
			rec.Extra[name] = valSpan
			p.addIssue(ast.Warning, ast.KindUnknownStyleField, valSpan, "unrecognized style format field "+strconv.Quote(name))
			continue
		}
		setter(&rec, valSpan)
	}

	st.Records = append(st.Records, rec)
}

// extraCommas reports whether raw contains more comma-separated tokens
// than n fields, meaning the last bound field absorbed trailing garbage
// rather than exactly one clean value (spec §4.2 "Trailing garbage").
// Style fields are fixed-arity (numbers, hex colors, names) and not
// expected to carry a literal comma, unlike an event's greedy Text field;
// callers must not run this against record kinds whose last field can
// legitimately contain commas.
func extraCommas(raw string, n int) bool {
	if n <= 0 {
		return false
	}
	count := 1
	for i := 0; i < len(raw); i++ {
		if raw[i] == ',' {
			count++
		}
	}
	return count > n
}

