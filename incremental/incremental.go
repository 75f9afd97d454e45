// Package incremental re-parses a bounded region of an edited source
// buffer and splices the result into a prior ast.Script, instead of
// re-running package parse over the whole buffer (spec §4.5).
package incremental

import (
	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/parse"
)

// EditRange describes a single replacement against the buffer a prior
// Script was parsed from: the bytes in [OldStart, OldEnd) of the old
// buffer were replaced by NewEnd-OldStart bytes in the new buffer, with
// everything before OldStart and after OldEnd unchanged and shifted by
// Delta().
type EditRange struct {
	OldStart, OldEnd, NewEnd int
}

// Delta is the net byte-length change the edit introduces; spans after
// the edit shift by this amount in the new buffer.
func (e EditRange) Delta() int {
	return e.NewEnd - e.OldEnd
}

// ApplyEdit produces the new buffer an EditRange describes, given the old
// buffer and the replacement bytes. Convenience for callers that have not
// already materialized the new buffer themselves.
func ApplyEdit(old []byte, edit EditRange, replacement []byte) []byte {
	out := make([]byte, 0, len(old)-(edit.OldEnd-edit.OldStart)+len(replacement))
	out = append(out, old[:edit.OldStart]...)
	out = append(out, replacement...)
	out = append(out, old[edit.OldEnd:]...)
	return out
}

// Reparse produces an updated Script for newSource, reusing prev's
// unaffected sections rather than re-parsing the whole buffer (spec §4.5
// steps 1-5). It falls back to a full parse.Parse when the edit touches a
// section header or the ScriptType: key (step 6), or when no existing
// section is affected (an edit landing entirely in inter-section
// whitespace, which may introduce a new section parse.Parse alone can
// see correctly).
//
// The result is always semantically equal to parse.Parse(newSource, opts)
// (spec §8 invariant 3); Reparse only changes how that result is computed.
func Reparse(prev *ast.Script, newSource []byte, edit EditRange, opts parse.Options) (*ast.Script, error) {
	if prev == nil {
		return parse.Parse(newSource, opts)
	}
	if requiresFullReparse(prev, edit) {
		return parse.Parse(newSource, opts)
	}

	dirty := dirtySectionIndices(prev, edit)
	if len(dirty) == 0 {
		return parse.Parse(newSource, opts)
	}

	first, last := dirty[0], dirty[len(dirty)-1]
	regionStart := prev.Sections[first].Span.Start
	regionOldEnd := prev.Sections[last].Span.End
	delta := edit.Delta()
	regionNewEnd := regionOldEnd + delta

	if regionStart < 0 || regionNewEnd > len(newSource) || regionStart > regionNewEnd {
		return parse.Parse(newSource, opts)
	}

	regionOpts := opts
	regionOpts.ForceVersion = prev.Version
	sub, err := parse.Parse(newSource[regionStart:regionNewEnd], regionOpts)
	if err != nil {
		return nil, err
	}

	next := &ast.Script{Source: newSource, Version: prev.Version}
	next.Sections = append(next.Sections, prev.Sections[:first]...)
	next.Sections = append(next.Sections, shiftSections(sub.Sections, regionStart)...)
	next.Sections = append(next.Sections, shiftSections(prev.Sections[last+1:], delta)...)

	for _, iss := range prev.Issues {
		switch {
		case iss.Span.End <= regionStart:
			next.Issues = append(next.Issues, iss)
		case iss.Span.Start >= regionOldEnd:
			next.Issues = append(next.Issues, shiftIssue(iss, delta))
		}
	}
	for _, iss := range sub.Issues {
		next.Issues = append(next.Issues, shiftIssue(iss, regionStart))
	}

	return next, nil
}

func rangesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// requiresFullReparse reports whether edit touches a section header line
// or the [Script Info] ScriptType: entry, either of which can change the
// version context the whole script is interpreted under (spec §4.5 step
// 6).
func requiresFullReparse(prev *ast.Script, edit EditRange) bool {
	for _, sec := range prev.Sections {
		headerEnd := sec.Span.Start
		for headerEnd < sec.Span.End && headerEnd < len(prev.Source) && prev.Source[headerEnd] != '\n' {
			headerEnd++
		}
		if rangesOverlap(edit.OldStart, edit.OldEnd, sec.Span.Start, headerEnd) {
			return true
		}

		if sec.Kind.Kind != ast.SectionScriptInfo || sec.ScriptInfo == nil {
			continue
		}
		for _, e := range sec.ScriptInfo.Entries {
			if e.KeySpan.Text(prev.Source) != "ScriptType" {
				continue
			}
			if rangesOverlap(edit.OldStart, edit.OldEnd, e.KeySpan.Start, e.ValueSpan.End) {
				return true
			}
		}
	}
	return false
}

// dirtySectionIndices returns the indices, in prev.Sections order, of
// every section whose span intersects the edit (spec §4.5 steps 1-2). A
// zero-length edit (pure insertion) is treated as touching a section when
// it lands anywhere inside that section's span, including its boundaries.
func dirtySectionIndices(prev *ast.Script, edit EditRange) []int {
	var idx []int
	for i, sec := range prev.Sections {
		if edit.OldStart == edit.OldEnd {
			if sec.Span.Start <= edit.OldStart && edit.OldStart <= sec.Span.End {
				idx = append(idx, i)
			}
			continue
		}
		if rangesOverlap(edit.OldStart, edit.OldEnd, sec.Span.Start, sec.Span.End) {
			idx = append(idx, i)
		}
	}
	return idx
}
