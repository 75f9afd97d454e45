package incremental

import "github.com/limenime/limeass/ast"

func shiftSpan(s ast.Span, delta int) ast.Span {
	if delta == 0 {
		return s
	}
	return ast.Span{Start: s.Start + delta, End: s.End + delta}
}

func shiftSpans(spans []ast.Span, delta int) []ast.Span {
	if delta == 0 || spans == nil {
		return spans
	}
	out := make([]ast.Span, len(spans))
	for i, s := range spans {
		out[i] = shiftSpan(s, delta)
	}
	return out
}

func shiftSpanMap(m map[string]ast.Span, delta int) map[string]ast.Span {
	if delta == 0 || m == nil {
		return m
	}
	out := make(map[string]ast.Span, len(m))
	for k, v := range m {
		out[k] = shiftSpan(v, delta)
	}
	return out
}

func shiftIssue(iss ast.ParseIssue, delta int) ast.ParseIssue {
	iss.Span = shiftSpan(iss.Span, delta)
	return iss
}

func shiftScriptInfo(si *ast.ScriptInfo, delta int) *ast.ScriptInfo {
	if si == nil || delta == 0 {
		return si
	}
	entries := make([]ast.ScriptInfoEntry, len(si.Entries))
	for i, e := range si.Entries {
		entries[i] = ast.ScriptInfoEntry{
			KeySpan:   shiftSpan(e.KeySpan, delta),
			ValueSpan: shiftSpan(e.ValueSpan, delta),
		}
	}
	return &ast.ScriptInfo{Entries: entries}
}

func shiftStyle(st ast.Style, delta int) ast.Style {
	if delta == 0 {
		return st
	}
	st.Span = shiftSpan(st.Span, delta)
	st.Name = shiftSpan(st.Name, delta)
	st.Fontname = shiftSpan(st.Fontname, delta)
	st.Fontsize = shiftSpan(st.Fontsize, delta)
	st.PrimaryColour = shiftSpan(st.PrimaryColour, delta)
	st.SecondaryColour = shiftSpan(st.SecondaryColour, delta)
	st.OutlineColour = shiftSpan(st.OutlineColour, delta)
	st.BackColour = shiftSpan(st.BackColour, delta)
	st.Bold = shiftSpan(st.Bold, delta)
	st.Italic = shiftSpan(st.Italic, delta)
	st.Underline = shiftSpan(st.Underline, delta)
	st.StrikeOut = shiftSpan(st.StrikeOut, delta)
	st.ScaleX = shiftSpan(st.ScaleX, delta)
	st.ScaleY = shiftSpan(st.ScaleY, delta)
	st.Spacing = shiftSpan(st.Spacing, delta)
	st.Angle = shiftSpan(st.Angle, delta)
	st.BorderStyle = shiftSpan(st.BorderStyle, delta)
	st.Outline = shiftSpan(st.Outline, delta)
	st.Shadow = shiftSpan(st.Shadow, delta)
	st.Alignment = shiftSpan(st.Alignment, delta)
	st.MarginL = shiftSpan(st.MarginL, delta)
	st.MarginR = shiftSpan(st.MarginR, delta)
	st.MarginV = shiftSpan(st.MarginV, delta)
	st.MarginT = shiftSpan(st.MarginT, delta)
	st.MarginB = shiftSpan(st.MarginB, delta)
	st.Encoding = shiftSpan(st.Encoding, delta)
	st.RelativeTo = shiftSpan(st.RelativeTo, delta)
	st.Extra = shiftSpanMap(st.Extra, delta)
	return st
}

func shiftStyles(s *ast.Styles, delta int) *ast.Styles {
	if s == nil || delta == 0 {
		return s
	}
	records := make([]ast.Style, len(s.Records))
	for i, st := range s.Records {
		records[i] = shiftStyle(st, delta)
	}
	return &ast.Styles{Format: s.Format, Records: records}
}

func shiftEventTime(t ast.EventTime, delta int) ast.EventTime {
	t.Span = shiftSpan(t.Span, delta)
	return t
}

func shiftEvent(ev ast.Event, delta int) ast.Event {
	if delta == 0 {
		return ev
	}
	ev.Span = shiftSpan(ev.Span, delta)
	ev.Layer = shiftSpan(ev.Layer, delta)
	ev.Start = shiftEventTime(ev.Start, delta)
	ev.End = shiftEventTime(ev.End, delta)
	ev.Style = shiftSpan(ev.Style, delta)
	ev.Name = shiftSpan(ev.Name, delta)
	ev.MarginL = shiftSpan(ev.MarginL, delta)
	ev.MarginR = shiftSpan(ev.MarginR, delta)
	ev.MarginV = shiftSpan(ev.MarginV, delta)
	ev.MarginT = shiftSpan(ev.MarginT, delta)
	ev.MarginB = shiftSpan(ev.MarginB, delta)
	ev.Effect = shiftSpan(ev.Effect, delta)
	ev.Text = shiftSpan(ev.Text, delta)
	ev.Extra = shiftSpanMap(ev.Extra, delta)
	return ev
}

func shiftEvents(e *ast.Events, delta int) *ast.Events {
	if e == nil || delta == 0 {
		return e
	}
	records := make([]ast.Event, len(e.Records))
	for i, ev := range e.Records {
		records[i] = shiftEvent(ev, delta)
	}
	return &ast.Events{Format: e.Format, Records: records}
}

func shiftFonts(f *ast.Fonts, delta int) *ast.Fonts {
	if f == nil || delta == 0 {
		return f
	}
	entries := make([]ast.Font, len(f.Entries))
	for i, e := range f.Entries {
		entries[i] = ast.Font{Name: shiftSpan(e.Name, delta), Lines: shiftSpans(e.Lines, delta)}
	}
	return &ast.Fonts{Entries: entries}
}

func shiftGraphics(g *ast.Graphics, delta int) *ast.Graphics {
	if g == nil || delta == 0 {
		return g
	}
	entries := make([]ast.Graphic, len(g.Entries))
	for i, e := range g.Entries {
		entries[i] = ast.Graphic{Name: shiftSpan(e.Name, delta), Lines: shiftSpans(e.Lines, delta)}
	}
	return &ast.Graphics{Entries: entries}
}

func shiftCustom(c *ast.Custom, delta int) *ast.Custom {
	if c == nil || delta == 0 {
		return c
	}
	return &ast.Custom{Name: c.Name, Lines: shiftSpans(c.Lines, delta)}
}

func shiftSection(sec ast.Section, delta int) ast.Section {
	if delta == 0 {
		return sec
	}
	sec.Span = shiftSpan(sec.Span, delta)
	sec.ScriptInfo = shiftScriptInfo(sec.ScriptInfo, delta)
	sec.Styles = shiftStyles(sec.Styles, delta)
	sec.Events = shiftEvents(sec.Events, delta)
	sec.Fonts = shiftFonts(sec.Fonts, delta)
	sec.Graphics = shiftGraphics(sec.Graphics, delta)
	sec.Custom = shiftCustom(sec.Custom, delta)
	return sec
}

func shiftSections(sections []ast.Section, delta int) []ast.Section {
	if delta == 0 || sections == nil {
		return sections
	}
	out := make([]ast.Section, len(sections))
	for i, sec := range sections {
		out[i] = shiftSection(sec, delta)
	}
	return out
}
