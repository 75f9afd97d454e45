package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/analysis"
	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/parse"
)

const lintDoc = `[Script Info]
ScriptType: v4.00+

[V4+ Styles]
Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding
Style: Default,Arial,-12,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,2,20,10,10,-5,0

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:05.00,0:00:01.00,Missing,,0,0,0,,text
`

func findRule(issues []analysis.LintIssue, rule string) bool {
	for _, i := range issues {
		if i.Rule == rule {
			return true
		}
	}
	return false
}

func TestLintDefaultRules(t *testing.T) {
	t.Parallel()

	script, err := parse.Parse([]byte(lintDoc), parse.Options{})
	require.NoError(t, err)

	issues := analysis.Lint(script, analysis.LintConfig{})

	assert.True(t, findRule(issues, "negative-font-size"))
	assert.True(t, findRule(issues, "invalid-alignment"))
	assert.True(t, findRule(issues, "negative-margins"))
	assert.True(t, findRule(issues, "start-after-end"))
	assert.True(t, findRule(issues, "undefined-style-reference"))
}

func TestLintDisabledRules(t *testing.T) {
	t.Parallel()

	script, err := parse.Parse([]byte(lintDoc), parse.Options{})
	require.NoError(t, err)

	issues := analysis.Lint(script, analysis.LintConfig{DisabledRules: []string{"negative-font-size"}})
	assert.False(t, findRule(issues, "negative-font-size"))
	assert.True(t, findRule(issues, "invalid-alignment"))
}

const ktNonPlusDoc = `[Script Info]
ScriptType: v4.00+

[Events]
Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text
Dialogue: 0,0:00:00.00,0:00:01.00,Default,,0,0,0,,{\kt20}text
`

func TestLintKtNonPlus(t *testing.T) {
	t.Parallel()

	script, err := parse.Parse([]byte(ktNonPlusDoc), parse.Options{})
	require.NoError(t, err)
	assert.Equal(t, ast.AssV4, script.Version)

	issues := analysis.Lint(script, analysis.LintConfig{})
	assert.True(t, findRule(issues, "kt-non-plus"))
}

func TestLintCustomRuleSet(t *testing.T) {
	t.Parallel()

	script, err := parse.Parse([]byte(lintDoc), parse.Options{})
	require.NoError(t, err)

	called := false
	custom := analysis.NewRule("always-fires", func(*ast.Script) []analysis.LintIssue {
		called = true
		return nil
	})

	issues := analysis.Lint(script, analysis.LintConfig{Rules: []analysis.Rule{custom}})
	assert.True(t, called)
	assert.Empty(t, issues)
}

func TestRuleRegistryRegisterUnregister(t *testing.T) {
	t.Parallel()

	reg := analysis.NewRuleRegistry()
	baseline := len(reg.Rules())

	reg.Register(analysis.NewRule("extra", func(*ast.Script) []analysis.LintIssue { return nil }))
	assert.Len(t, reg.Rules(), baseline+1)

	reg.Register(analysis.NewRule("extra", func(*ast.Script) []analysis.LintIssue { return nil }))
	assert.Len(t, reg.Rules(), baseline+1, "re-registering the same name replaces rather than appends")

	assert.True(t, reg.Unregister("extra"))
	assert.Len(t, reg.Rules(), baseline)
	assert.False(t, reg.Unregister("extra"))
}

func TestLintWithRegistry(t *testing.T) {
	t.Parallel()

	script, err := parse.Parse([]byte(lintDoc), parse.Options{})
	require.NoError(t, err)

	reg := analysis.NewRuleRegistry()
	issues := analysis.LintWithRegistry(script, reg, analysis.LintConfig{})
	assert.True(t, findRule(issues, "negative-font-size"))
}

func TestNilRuleRegistryIsEmpty(t *testing.T) {
	t.Parallel()

	var reg *analysis.RuleRegistry
	assert.Nil(t, reg.Rules())
}
