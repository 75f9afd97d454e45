package incremental_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/incremental"
	"github.com/limenime/limeass/parse"
)

const baseDoc = `[Script Info]
ScriptType: v4.00+
PlayResX: 1920
PlayResY: 1080

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,20,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,2,10,10,10,0

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:01.00,0:00:04.00,Default,,0,0,0,,Hello
`

func findSection(script *ast.Script, kind ast.SectionKind) *ast.Section {
	for i := range script.Sections {
		if script.Sections[i].Kind.Kind == kind {
			return &script.Sections[i]
		}
	}
	return nil
}

func TestReparseEditWithinEventsPreservesOtherSections(t *testing.T) {
	t.Parallel()

	prev, err := parse.Parse([]byte(baseDoc), parse.Options{})
	require.NoError(t, err)

	oldStart := len(baseDoc) - len("Hello\n")
	oldEnd := oldStart + len("Hello")
	replacement := []byte("Hello, world")

	edit := incremental.EditRange{OldStart: oldStart, OldEnd: oldEnd, NewEnd: oldStart + len(replacement)}
	newSource := incremental.ApplyEdit([]byte(baseDoc), edit, replacement)

	updated, err := incremental.Reparse(prev, newSource, edit, parse.Options{})
	require.NoError(t, err)

	full, err := parse.Parse(newSource, parse.Options{})
	require.NoError(t, err)

	assert.Equal(t, full.Version, updated.Version)
	assert.Equal(t, len(full.Sections), len(updated.Sections))

	fullEvents := findSection(full, ast.SectionEvents)
	updatedEvents := findSection(updated, ast.SectionEvents)
	require.NotNil(t, fullEvents)
	require.NotNil(t, updatedEvents)
	assert.Equal(t, fullEvents.Events.Records[0].Text.Text(newSource), updatedEvents.Events.Records[0].Text.Text(newSource))
	assert.Equal(t, "Hello, world", updatedEvents.Events.Records[0].Text.Text(newSource))

	prevScriptInfo := findSection(prev, ast.SectionScriptInfo)
	updatedScriptInfo := findSection(updated, ast.SectionScriptInfo)
	require.NotNil(t, prevScriptInfo)
	require.NotNil(t, updatedScriptInfo)
	assert.Same(t, prevScriptInfo.ScriptInfo, updatedScriptInfo.ScriptInfo, "untouched section should be reused, not reparsed")
}

func TestReparseFullyEquivalentToFullParse(t *testing.T) {
	t.Parallel()

	prev, err := parse.Parse([]byte(baseDoc), parse.Options{})
	require.NoError(t, err)

	oldStart := len(baseDoc) - len("Hello\n")
	oldEnd := oldStart + len("Hello")
	replacement := []byte("Goodbye")

	edit := incremental.EditRange{OldStart: oldStart, OldEnd: oldEnd, NewEnd: oldStart + len(replacement)}
	newSource := incremental.ApplyEdit([]byte(baseDoc), edit, replacement)

	updated, err := incremental.Reparse(prev, newSource, edit, parse.Options{})
	require.NoError(t, err)

	full, err := parse.Parse(newSource, parse.Options{})
	require.NoError(t, err)

	require.Len(t, updated.Sections, len(full.Sections))
	for i := range full.Sections {
		assert.Equal(t, full.Sections[i].Kind, updated.Sections[i].Kind)
		assert.Equal(t, full.Sections[i].Span, updated.Sections[i].Span)
	}
}

func TestReparseFallsBackOnHeaderEdit(t *testing.T) {
	t.Parallel()

	prev, err := parse.Parse([]byte(baseDoc), parse.Options{})
	require.NoError(t, err)

	headerStart := len("[Script Info]\nScriptType: v4.00+\nPlayResX: 1920\nPlayResY: 1080\n\n")
	edit := incremental.EditRange{OldStart: headerStart, OldEnd: headerStart + len("[V4+ Styles]"), NewEnd: headerStart + len("[V4++ Styles]")}
	replacement := []byte("[V4++ Styles]")
	newSource := incremental.ApplyEdit([]byte(baseDoc), edit, replacement)

	updated, err := incremental.Reparse(prev, newSource, edit, parse.Options{})
	require.NoError(t, err)

	full, err := parse.Parse(newSource, parse.Options{})
	require.NoError(t, err)
	assert.Equal(t, full.Version, updated.Version)
}

func TestEditRangeDelta(t *testing.T) {
	t.Parallel()

	e := incremental.EditRange{OldStart: 10, OldEnd: 15, NewEnd: 20}
	assert.Equal(t, 5, e.Delta())
}
