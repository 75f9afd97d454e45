package literal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/literal"
)

func TestParseTime(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expectedCS  int
		expectError bool
	}{
		"zero": {
			input:      "0:00:00.00",
			expectedCS: 0,
		},
		"five seconds": {
			input:      "0:00:05.00",
			expectedCS: 500,
		},
		"hours minutes seconds centiseconds": {
			input:      "1:02:03.04",
			expectedCS: ((1*60+2)*60 + 3) * 100 + 4,
		},
		"multi-digit hour beyond 24h": {
			input:      "30:00:00.00",
			expectedCS: 30 * 3600 * 100,
		},
		"missing centiseconds": {
			input:       "0:00:00",
			expectError: true,
		},
		"minute out of range": {
			input:       "0:60:00.00",
			expectError: true,
		},
		"non numeric": {
			input:       "a:bb:cc.dd",
			expectError: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := literal.ParseTime(tc.input)
			if tc.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedCS, got.Centiseconds)
		})
	}
}

func TestFormatTimeRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"0:00:00.00",
		"0:00:05.00",
		"1:02:03.04",
		"23:59:59.99",
	}

	for _, in := range inputs {
		parsed, err := literal.ParseTime(in)
		require.NoError(t, err)
		assert.Equal(t, in, literal.FormatTime(parsed.Centiseconds))
	}
}
