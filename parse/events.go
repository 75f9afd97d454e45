package parse

import (
	"strconv"
	"strings"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/literal"
	"github.com/limenime/limeass/token"
)

func (p *parser) mergeEvents(headerStart, headerEnd int, headerName string, body []token.Token) {
	existing := p.findSection(ast.SectionEvents)
	ev := &ast.Events{}
	if existing != nil {
		ev = existing.Events
	}

	sawFormat := len(ev.Format) > 0
	sawRecordBeforeFormat := false

	for _, t := range body {
		switch t.Kind {
		case token.FormatLine:
			if sawFormat {
				p.addIssue(ast.Warning, ast.KindDuplicateFormatLine, spanOf(t), "duplicate Format: line; replacing previous event format")
			}
			ev.Format = t.Fields
			sawFormat = true
		case token.RecordLine:
			typ, ok := eventTypeOf(t.RecordType)
			if !ok {
				continue
			}
			format := ev.Format
			if len(format) == 0 {
				format = ast.DefaultEventFormat(p.version)
				if !sawRecordBeforeFormat {
					p.addIssue(ast.Warning, ast.KindMissingFormatLine, spanOf(t), "event record before any Format: line; using version-default field order")
					sawRecordBeforeFormat = true
				}
			}
			p.bindEventRecord(t, typ, format, ev)
		}
	}

	if existing != nil {
		existing.Span.End = bodyEnd(headerEnd, body)
		return
	}

	p.sections = append(p.sections, ast.Section{
		Kind:   ast.HeaderKind{Kind: ast.SectionEvents, HeaderName: headerName},
		Span:   ast.Span{Start: headerStart, End: bodyEnd(headerEnd, body)},
		Events: ev,
	})
}

func eventTypeOf(recordType string) (ast.EventType, bool) {
	switch recordType {
	case "Dialogue":
		return ast.Dialogue, true
	case "Comment":
		return ast.Comment, true
	case "Picture":
		return ast.Picture, true
	case "Sound":
		return ast.Sound, true
	case "Movie":
		return ast.Movie, true
	case "Command":
		return ast.Command, true
	default:
		return 0, false
	}
}

func (p *parser) bindEventRecord(t token.Token, typ ast.EventType, format []string, ev *ast.Events) {
	offsets := token.SplitFieldOffsets(t.Raw, len(format))
	if len(offsets) != len(format) {
		p.addIssue(ast.Error, ast.KindMalformedEvent, spanOf(t),
			"event record has "+strconv.Itoa(len(offsets))+" fields, expected "+strconv.Itoa(len(format)))
		return
	}

	rec := ast.Event{Span: spanOf(t), Type: typ}
	valid := true
	for i, name := range format {
		off := offsets[i]
		valSpan := ast.Span{Start: t.RawStart + off.Start, End: t.RawStart + off.End}
		if !p.bindEventField(t, name, valSpan, &rec) {
			valid = false
		}
	}
	if !valid {
		return
	}

	ev.Records = append(ev.Records, rec)
}

// bindEventField binds one format field onto rec and reports whether the
// field was valid. Only "start"/"end" can invalidate a record: a malformed
// timestamp means the whole event is dropped (spec §4.2/§7), not just that
// one field.
func (p *parser) bindEventField(t token.Token, name string, valSpan ast.Span, rec *ast.Event) bool {
	switch name {
	case "layer":
		rec.Layer = valSpan
	case "start":
		et, ok := p.bindEventTime(valSpan)
		rec.Start = et
		return ok
	case "end":
		et, ok := p.bindEventTime(valSpan)
		rec.End = et
		return ok
	case "style":
		rec.Style = valSpan
	case "name", "actor":
		rec.Name = valSpan
	case "marginl":
		rec.MarginL = valSpan
	case "marginr":
		rec.MarginR = valSpan
	case "marginv":
		rec.HasMarginV = true
		rec.MarginV = valSpan
	case "margint":
		rec.HasSplitMargins = true
		rec.MarginT = valSpan
	case "marginb":
		rec.HasSplitMargins = true
		rec.MarginB = valSpan
	case "effect":
		rec.Effect = valSpan
	case "text":
		rec.Text = valSpan
	default:
		if rec.Extra == nil {
			rec.Extra = map[string]ast.Span{}
		}
		rec.Extra[name] = valSpan
		p.addIssue(ast.Warning, ast.KindUnknownEventField, valSpan, "unrecognized event format field "+strconv.Quote(name))
	}
	return true
}

// bindEventTime parses an event timestamp field. A malformed literal is an
// Error-severity issue: per spec §4.2/§7 the event is dropped from the AST
// entirely, not retained with Valid:false.
func (p *parser) bindEventTime(valSpan ast.Span) (ast.EventTime, bool) {
	literalText := strings.TrimSpace(valSpan.Text(p.src))
	t, err := literal.ParseTime(literalText)
	if err != nil {
		p.addIssue(ast.Error, ast.KindMalformedEvent, valSpan, "malformed time literal: "+err.Error())
		return ast.EventTime{Span: valSpan, Valid: false}, false
	}
	return ast.EventTime{Span: valSpan, Centiseconds: t.Centiseconds, Valid: true}, true
}
