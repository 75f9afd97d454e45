package parse

import (
	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/token"
)

func (p *parser) mergeScriptInfo(headerStart, headerEnd int, headerName string, body []token.Token) {
	existing := p.findSection(ast.SectionScriptInfo)
	if existing != nil {
		p.appendScriptInfoBody(existing.ScriptInfo, body)
		existing.Span.End = bodyEnd(headerEnd, body)
		return
	}

	si := &ast.ScriptInfo{}
	p.appendScriptInfoBody(si, body)

	p.sections = append(p.sections, ast.Section{
		Kind:       ast.HeaderKind{Kind: ast.SectionScriptInfo, HeaderName: headerName},
		Span:       ast.Span{Start: headerStart, End: bodyEnd(headerEnd, body)},
		ScriptInfo: si,
	})
}

func (p *parser) appendScriptInfoBody(si *ast.ScriptInfo, body []token.Token) {
	for _, t := range body {
		switch t.Kind {
		case token.KeyValue:
			keySpan := ast.Span{Start: t.KeyStart, End: t.KeyStart + len(t.Key)}
			valSpan := ast.Span{Start: t.ValueStart, End: t.ValueStart + len(t.Value)}
			si.Entries = append(si.Entries, ast.ScriptInfoEntry{KeySpan: keySpan, ValueSpan: valSpan})
		case token.CommentLine:
			// Comments in [Script Info] carry diagnostics only when they
			// look like one (spec §4.2); we don't attempt to detect that
			// heuristically here, so plain comments are silently dropped
			// from the AST (their bytes are still covered by the section
			// span, satisfying the "no overlaps, no gaps beyond whitespace"
			// invariant's intent for comment lines).
		}
	}
}

func bodyEnd(headerEnd int, body []token.Token) int {
	if len(body) == 0 {
		return headerEnd
	}
	return body[len(body)-1].End
}

func (p *parser) findSection(kind ast.SectionKind) *ast.Section {
	for i := range p.sections {
		if p.sections[i].Kind.Kind == kind {
			return &p.sections[i]
		}
	}
	return nil
}
