package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/analysis"
	"github.com/limenime/limeass/parse"
	"github.com/limenime/limeass/uuenc"
)

func TestDecodeEmbeddedAssets(t *testing.T) {
	t.Parallel()

	payload := []byte("a tiny font payload")
	lines := uuenc.EncodeLines(payload)

	doc := "[Fonts]\nfontname: tiny.ttf\n"
	for _, l := range lines {
		doc += l + "\n"
	}

	script, err := parse.Parse([]byte(doc), parse.Options{})
	require.NoError(t, err)

	assets := analysis.DecodeEmbeddedAssets(script)
	require.Len(t, assets, 1)
	assert.Equal(t, "tiny.ttf", assets[0].Name)
	assert.NoError(t, assets[0].Err)
	assert.Equal(t, payload, assets[0].Data)
}
