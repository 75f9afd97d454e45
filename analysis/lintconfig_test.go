package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/analysis"
)

func TestLoadLintConfig(t *testing.T) {
	t.Parallel()

	cfg, err := analysis.LoadLintConfig([]byte("disabledRules:\n  - negative-font-size\n  - invalid-alignment\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"negative-font-size", "invalid-alignment"}, cfg.DisabledRules)
}

func TestLoadLintConfigEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := analysis.LoadLintConfig([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.DisabledRules)
}

func TestLoadLintConfigMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := analysis.LoadLintConfig([]byte("disabledRules: [unterminated\n"))
	assert.Error(t, err)
}
