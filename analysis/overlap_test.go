package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/analysis"
	"github.com/limenime/limeass/parse"
)

const overlapDoc = `[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:00.00,0:00:05.00,Default,,0,0,0,,first
Dialogue: 0,0:00:03.00,0:00:08.00,Default,,0,0,0,,second
Dialogue: 1,0:00:03.00,0:00:08.00,Default,,0,0,0,,different layer
Comment: 0,0:00:00.00,0:00:05.00,Default,,0,0,0,,ignored comment
`

func TestTimingOverlaps(t *testing.T) {
	t.Parallel()

	script, err := parse.Parse([]byte(overlapDoc), parse.Options{})
	require.NoError(t, err)

	overlaps := analysis.TimingOverlaps(script)
	require.Len(t, overlaps, 1)
	assert.Equal(t, analysis.Overlap{A: 0, B: 1}, overlaps[0])
}

func TestTimingOverlapsNoEvents(t *testing.T) {
	t.Parallel()

	script, err := parse.Parse([]byte("[Script Info]\nScriptType: v4.00+\n"), parse.Options{})
	require.NoError(t, err)

	assert.Nil(t, analysis.TimingOverlaps(script))
}
