// Package analysis computes read-only, derived views over a parsed
// ast.Script: resolved numeric styles, per-event dialogue info, a timing
// overlap graph, and lint issues (spec §4.6). Every function here is a
// pure read of an immutable Script; nothing mutates the AST.
package analysis

import (
	"strconv"
	"strings"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/literal"
)

// ResolvedStyle is a fully computed, numeric snapshot of a Style record
// (spec §3 ResolvedStyle).
type ResolvedStyle struct {
	Name                                   string
	Fontname                               string
	Fontsize                                float64
	Primary, Secondary, Outline, Back       literal.Color
	Bold, Italic, Underline, StrikeOut      bool
	ScaleX, ScaleY, Spacing, Angle          float64
	BorderStyle                            int
	OutlineWidth, Shadow                   float64
	Alignment                              int
	MarginL, MarginR, MarginV              int
	Encoding                                int
	RelativeTo                              ast.RelativeTo
}

// DefaultResolvedStyle is the synthesized fallback used when an event
// references a style name that was never declared (spec §4.6 "Missing
// style → synthesized Default").
func DefaultResolvedStyle() ResolvedStyle {
	return ResolvedStyle{
		Name:      "Default",
		Fontname:  "Arial",
		Fontsize:  20,
		Primary:   literal.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0},
		Outline:   literal.Color{A: 0},
		Back:      literal.Color{A: 0},
		ScaleX:    100,
		ScaleY:    100,
		Alignment: 2,
	}
}

// ResolveStyles computes a ResolvedStyle for every declared Style record in
// script, keyed by style name.
func ResolveStyles(script *ast.Script) map[string]ResolvedStyle {
	out := map[string]ResolvedStyle{}
	for _, sec := range script.Sections {
		if sec.Kind.Kind != ast.SectionStyles || sec.Styles == nil {
			continue
		}
		for _, st := range sec.Styles.Records {
			rs := resolveStyle(script.Source, st)
			out[rs.Name] = rs
		}
	}
	return out
}

func resolveStyle(src []byte, st ast.Style) ResolvedStyle {
	rs := ResolvedStyle{
		Name:        st.Name.Text(src),
		Fontname:    st.Fontname.Text(src),
		Fontsize:    parseFloat(st.Fontsize.Text(src)),
		Primary:     parseColor(st.PrimaryColour.Text(src)),
		Secondary:   parseColor(st.SecondaryColour.Text(src)),
		Outline:     parseColor(st.OutlineColour.Text(src)),
		Back:        parseColor(st.BackColour.Text(src)),
		Bold:        parseBool(st.Bold.Text(src)),
		Italic:      parseBool(st.Italic.Text(src)),
		Underline:   parseBool(st.Underline.Text(src)),
		StrikeOut:   parseBool(st.StrikeOut.Text(src)),
		ScaleX:      parseFloat(st.ScaleX.Text(src)),
		ScaleY:      parseFloat(st.ScaleY.Text(src)),
		Spacing:     parseFloat(st.Spacing.Text(src)),
		Angle:       parseFloat(st.Angle.Text(src)),
		BorderStyle: parseInt(st.BorderStyle.Text(src)),
		OutlineWidth: parseFloat(st.Outline.Text(src)),
		Shadow:      parseFloat(st.Shadow.Text(src)),
		Alignment:   parseInt(st.Alignment.Text(src)),
		MarginL:     parseInt(st.MarginL.Text(src)),
		MarginR:     parseInt(st.MarginR.Text(src)),
		Encoding:    parseInt(st.Encoding.Text(src)),
	}

	switch {
	case st.HasSplitMargins:
		t := parseInt(st.MarginT.Text(src))
		b := parseInt(st.MarginB.Text(src))
		rs.MarginV = (t + b) / 2
	case st.HasMarginV:
		rs.MarginV = parseInt(st.MarginV.Text(src))
	}

	if st.HasRelativeTo {
		rs.RelativeTo = parseRelativeTo(st.RelativeTo.Text(src))
	}

	return rs
}

func parseRelativeTo(s string) ast.RelativeTo {
	switch strings.TrimSpace(s) {
	case "1":
		return ast.RelativeToVideo
	case "2":
		return ast.RelativeToScript
	case "0":
		return ast.RelativeToWindow
	default:
		return ast.RelativeToUnset
	}
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

func parseBool(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != "0"
}

func parseColor(s string) literal.Color {
	c, err := literal.ParseColor(s)
	if err != nil {
		return literal.Color{}
	}
	return c
}

// LayoutScale reports the scale factor between a script's authored
// LayoutRes and its display PlayRes, as (scaleX, scaleY, ok). ok is false
// when either resolution pair is absent or zero (spec's LayoutRes
// glossary entry).
func LayoutScale(script *ast.Script) (scaleX, scaleY float64, ok bool) {
	var si *ast.ScriptInfo
	for _, sec := range script.Sections {
		if sec.Kind.Kind == ast.SectionScriptInfo && sec.ScriptInfo != nil {
			si = sec.ScriptInfo
		}
	}
	if si == nil {
		return 0, 0, false
	}

	playX, okPX := si.Value(script.Source, "PlayResX")
	playY, okPY := si.Value(script.Source, "PlayResY")
	layoutX, okLX := si.Value(script.Source, "LayoutResX")
	layoutY, okLY := si.Value(script.Source, "LayoutResY")
	if !okPX || !okPY || !okLX || !okLY {
		return 0, 0, false
	}

	px, py := parseFloat(playX), parseFloat(playY)
	lx, ly := parseFloat(layoutX), parseFloat(layoutY)
	if lx == 0 || ly == 0 || px == 0 || py == 0 {
		return 0, 0, false
	}

	return px / lx, py / ly, true
}
