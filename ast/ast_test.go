package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limenime/limeass/ast"
)

func TestSpanTextAndLen(t *testing.T) {
	t.Parallel()

	src := []byte("Hello, world")
	span := ast.Span{Start: 7, End: 12}

	assert.Equal(t, "world", span.Text(src))
	assert.Equal(t, 5, span.Len())
}

func TestSpanTextOutOfRangeIsEmpty(t *testing.T) {
	t.Parallel()

	src := []byte("short")
	assert.Equal(t, "", ast.Span{Start: 0, End: 100}.Text(src))
	assert.Equal(t, "", ast.Span{Start: 3, End: 1}.Text(src))
}

func TestVersionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SSA v4.00", ast.SsaV4.String())
	assert.Equal(t, "ASS v4.00+", ast.AssV4.String())
	assert.Equal(t, "ASS v4.00++", ast.AssV4Plus.String())
	assert.Equal(t, "unknown", ast.VersionUnknown.String())
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", ast.Info.String())
	assert.Equal(t, "warning", ast.Warning.String())
	assert.Equal(t, "error", ast.Error.String())
}

func TestScriptInfoValueLastOccurrenceWins(t *testing.T) {
	t.Parallel()

	src := []byte("Title:first\nTitle:second\n")
	si := &ast.ScriptInfo{Entries: []ast.ScriptInfoEntry{
		{KeySpan: ast.Span{Start: 0, End: 5}, ValueSpan: ast.Span{Start: 6, End: 11}},
		{KeySpan: ast.Span{Start: 12, End: 17}, ValueSpan: ast.Span{Start: 18, End: 24}},
	}}

	val, ok := si.Value(src, "Title")
	assert.True(t, ok)
	assert.Equal(t, "second", val)

	_, ok = si.Value(src, "Missing")
	assert.False(t, ok)
}
