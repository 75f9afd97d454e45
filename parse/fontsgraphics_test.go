package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/parse"
)

func TestParseFontsSection(t *testing.T) {
	t.Parallel()

	doc := "[Fonts]\n" +
		"fontname: ARIAL.TTF\n" +
		"M''#OEuGEuDP''#4\n" +
		"(aPaPaP\n" +
		"fontname: COMIC.TTF\n" +
		"M''#OEuGE\n"

	script, err := parse.Parse([]byte(doc), parse.Options{})
	require.NoError(t, err)

	var fonts *ast.Section
	for i := range script.Sections {
		if script.Sections[i].Kind.Kind == ast.SectionFonts {
			fonts = &script.Sections[i]
		}
	}
	require.NotNil(t, fonts)
	require.Len(t, fonts.Fonts.Entries, 2)

	assert.Equal(t, "ARIAL.TTF", fonts.Fonts.Entries[0].Name.Text(script.Source))
	assert.Len(t, fonts.Fonts.Entries[0].Lines, 2)

	assert.Equal(t, "COMIC.TTF", fonts.Fonts.Entries[1].Name.Text(script.Source))
	assert.Len(t, fonts.Fonts.Entries[1].Lines, 1)
}

func TestParseGraphicsSection(t *testing.T) {
	t.Parallel()

	doc := "[Graphics]\nfilename: logo.png\nM(some uu data)\n"

	script, err := parse.Parse([]byte(doc), parse.Options{})
	require.NoError(t, err)

	var graphics *ast.Section
	for i := range script.Sections {
		if script.Sections[i].Kind.Kind == ast.SectionGraphics {
			graphics = &script.Sections[i]
		}
	}
	require.NotNil(t, graphics)
	require.Len(t, graphics.Graphics.Entries, 1)
	assert.Equal(t, "logo.png", graphics.Graphics.Entries[0].Name.Text(script.Source))
	assert.Len(t, graphics.Graphics.Entries[0].Lines, 1)
}
