package parse

import (
	"strconv"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/token"
)

// handleCustomSection dispatches a section header the parser doesn't
// recognize to a plugin-registered SectionHandler, falling back to an
// ast.Custom payload of raw lines when no handler claims it (spec §4.4).
func (p *parser) handleCustomSection(headerStart, headerEnd int, headerName string, body []token.Token) {
	if handler, ok := p.registry.Section(headerName); ok {
		lines := make([]string, 0, len(body))
		for _, t := range body {
			lines = append(lines, string(p.src[t.Start:t.End]))
		}

		sec, err := handler.HandleSection(headerName, lines)
		if err == nil {
			sec.Span = ast.Span{Start: headerStart, End: bodyEnd(headerEnd, body)}
			p.sections = append(p.sections, sec)
			return
		}
		p.addIssue(ast.Warning, ast.KindUnknownSection, ast.Span{Start: headerStart, End: headerEnd},
			"plugin handler for "+strconv.Quote(headerName)+" failed: "+err.Error())
	}

	p.addIssue(ast.Warning, ast.KindUnknownSection, ast.Span{Start: headerStart, End: headerEnd},
		"unrecognized section "+strconv.Quote(headerName)+"; preserved as raw lines")

	lines := make([]ast.Span, 0, len(body))
	for _, t := range body {
		if t.Kind == token.BlankLine {
			continue
		}
		lines = append(lines, spanOf(t))
	}

	p.sections = append(p.sections, ast.Section{
		Kind:   ast.HeaderKind{Kind: ast.SectionCustom, HeaderName: headerName},
		Span:   ast.Span{Start: headerStart, End: bodyEnd(headerEnd, body)},
		Custom: &ast.Custom{Name: headerName, Lines: lines},
	})
}
