package analysis

import (
	"strings"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/override"
)

// KaraokeSyllable is one \k/\kf/\ko/\kt-delimited run of an event's text
// (spec §4.6 "karaoke syllable boundaries").
type KaraokeSyllable struct {
	// DurationCentiseconds is the syllable's own duration for \k/\kf/\ko,
	// or the absolute offset from the event start for \kt (spec §4.3).
	DurationCentiseconds int
	Absolute             bool
	Text                 string
}

// DialogueInfo is the derived presentation data for one event (spec §4.6
// "Dialogue info").
type DialogueInfo struct {
	DurationMs  int
	PlainText   string
	Runs        []override.Run
	Karaoke     []KaraokeSyllable
	Animations  []ast.Span
	DrawingOnly bool
}

// AnalyzeEvent computes DialogueInfo for one event. opts configures the
// override parse (nesting depth, plugin registry).
func AnalyzeEvent(script *ast.Script, ev ast.Event, opts override.Options) DialogueInfo {
	text := ev.Text.Text(script.Source)
	runs, _ := override.ParseText(text, ev.Text.Start, opts)

	info := DialogueInfo{
		DurationMs: (ev.End.Centiseconds - ev.Start.Centiseconds) * 10,
		Runs:       runs,
	}

	var plain strings.Builder
	var pendingText strings.Builder
	var karaokeDuration int
	var karaokeAbsolute bool
	haveKaraoke := false

	flushSyllable := func() {
		if !haveKaraoke {
			return
		}
		info.Karaoke = append(info.Karaoke, KaraokeSyllable{
			DurationCentiseconds: karaokeDuration,
			Absolute:             karaokeAbsolute,
			Text:                 pendingText.String(),
		})
		pendingText.Reset()
	}

	sawAnyLiteral := false
	sawAnyDrawing := false

	for _, r := range runs {
		switch r.Kind {
		case override.RunLiteral:
			sawAnyLiteral = true
			plain.WriteString(r.Literal)
			pendingText.WriteString(r.Literal)
		case override.RunDrawing:
			sawAnyDrawing = true
		case override.RunOverride:
			for _, tag := range r.Tags {
				if tag.Name == "t" {
					info.Animations = append(info.Animations, tag.Span)
				}
				if d, ok := tag.Karaoke(); ok {
					flushSyllable()
					karaokeDuration = d
					karaokeAbsolute = tag.Name == "kt"
					haveKaraoke = true
				}
			}
		}
	}
	flushSyllable()

	info.PlainText = plain.String()
	info.DrawingOnly = sawAnyDrawing && !sawAnyLiteral

	return info
}
