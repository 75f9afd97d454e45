package analysis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/analysis"
	"github.com/limenime/limeass/override"
	"github.com/limenime/limeass/parse"
)

const concurrencyDoc = `[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,one
Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,two
Dialogue: 0,0:00:02.00,0:00:03.00,Default,,0,0,0,,three
`

func TestAnalyzeEventsSequentialMatchesConcurrent(t *testing.T) {
	t.Parallel()

	script, err := parse.Parse([]byte(concurrencyDoc), parse.Options{})
	require.NoError(t, err)

	seq, err := analysis.AnalyzeEvents(context.Background(), script, override.Options{}, 1)
	require.NoError(t, err)

	par, err := analysis.AnalyzeEvents(context.Background(), script, override.Options{}, 4)
	require.NoError(t, err)

	require.Len(t, seq, 3)
	require.Len(t, par, 3)
	for i := range seq {
		assert.Equal(t, seq[i].PlainText, par[i].PlainText)
	}
}

func TestAnalyzeEventsNoEventsSection(t *testing.T) {
	t.Parallel()

	script, err := parse.Parse([]byte("[Script Info]\nScriptType: v4.00+\n"), parse.Options{})
	require.NoError(t, err)

	out, err := analysis.AnalyzeEvents(context.Background(), script, override.Options{}, 1)
	require.NoError(t, err)
	assert.Nil(t, out)
}
