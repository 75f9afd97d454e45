package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/analysis"
	"github.com/limenime/limeass/parse"
)

const resolveDoc = `[Script Info]
ScriptType: v4.00+
PlayResX: 1920
PlayResY: 1080
LayoutResX: 1280
LayoutResY: 720

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,20,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,-1,0,0,0,100,100,0,0,1,2,2,2,10,10,10,0
`

func TestResolveStyles(t *testing.T) {
	t.Parallel()

	script, err := parse.Parse([]byte(resolveDoc), parse.Options{})
	require.NoError(t, err)

	styles := analysis.ResolveStyles(script)
	require.Contains(t, styles, "Default")

	rs := styles["Default"]
	assert.Equal(t, "Arial", rs.Fontname)
	assert.Equal(t, 20.0, rs.Fontsize)
	assert.True(t, rs.Bold)
	assert.Equal(t, 10, rs.MarginV)
	assert.Equal(t, 2, rs.Alignment)
}

func TestDefaultResolvedStyle(t *testing.T) {
	t.Parallel()

	d := analysis.DefaultResolvedStyle()
	assert.Equal(t, "Default", d.Name)
	assert.Equal(t, "Arial", d.Fontname)
	assert.Equal(t, 20.0, d.Fontsize)
}

func TestLayoutScale(t *testing.T) {
	t.Parallel()

	script, err := parse.Parse([]byte(resolveDoc), parse.Options{})
	require.NoError(t, err)

	scaleX, scaleY, ok := analysis.LayoutScale(script)
	require.True(t, ok)
	assert.InDelta(t, 1.5, scaleX, 0.001)
	assert.InDelta(t, 1.5, scaleY, 0.001)
}

func TestLayoutScaleAbsentIsNotOK(t *testing.T) {
	t.Parallel()

	script, err := parse.Parse([]byte("[Script Info]\nScriptType: v4.00+\n"), parse.Options{})
	require.NoError(t, err)

	_, _, ok := analysis.LayoutScale(script)
	assert.False(t, ok)
}
