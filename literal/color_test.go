package literal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/literal"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    literal.Color
		expectError bool
	}{
		"8 digit with trailing amp": {
			input:    "&HFF0000FF&",
			expected: literal.Color{R: 0xFF, G: 0, B: 0, A: 0xFF},
		},
		"6 digit red primary": {
			input:    "&H0000FF&",
			expected: literal.Color{R: 0xFF, G: 0x00, B: 0x00, A: 0},
		},
		"2 digit alpha only": {
			input:    "&H80&",
			expected: literal.Color{A: 0x80},
		},
		"lenient without trailing amp": {
			input:    "&H0000FF",
			expected: literal.Color{R: 0xFF},
		},
		"bad prefix": {
			input:       "0000FF",
			expectError: true,
		},
		"bad length": {
			input:       "&HFFF&",
			expectError: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := literal.ParseColor(tc.input)
			if tc.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFormatColorRoundTrip(t *testing.T) {
	t.Parallel()

	c := literal.Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}
	again, err := literal.ParseColor(literal.FormatColor(c))
	require.NoError(t, err)
	assert.Equal(t, c, again)
}
