package token

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitLinesSWARMatchesScalar is the differential test spec §4.1/§9
// calls for: the SWAR scanner must agree with the scalar reference on
// every input, including ones engineered to straddle word boundaries.
func TestSplitLinesSWARMatchesScalar(t *testing.T) {
	t.Parallel()

	fixtures := [][]byte{
		nil,
		[]byte(""),
		[]byte("\n"),
		[]byte("\r\n"),
		[]byte("\r"),
		[]byte("a"),
		[]byte("abcdefgh\nabcdefgh"),   // exactly one word then newline
		[]byte("abcdefg\nabcdefg\n"),   // newline just before a word boundary
		[]byte("\n\n\n\n"),
		[]byte("a\r\nb\rc\nd"),
		[]byte(string(make([]byte, 17)) + "\n"), // NUL bytes, no terminator until the end
	}

	for i, f := range fixtures {
		scalar := splitLinesScalar(f)
		swar := splitLinesSWAR(f)
		assert.Equalf(t, scalar, swar, "fixture %d: %q", i, f)
	}

	rng := rand.New(rand.NewPCG(1, 2))
	alphabet := []byte("ab\n\rcd")
	for i := 0; i < 200; i++ {
		n := rng.IntN(64)
		buf := make([]byte, n)
		for j := range buf {
			buf[j] = alphabet[rng.IntN(len(alphabet))]
		}
		scalar := splitLinesScalar(buf)
		swar := splitLinesSWAR(buf)
		assert.Equalf(t, scalar, swar, "random fixture %d: %q", i, buf)
	}
}

func TestHasByteWord(t *testing.T) {
	t.Parallel()

	assert.True(t, hasByteWord(0x0A00000000000000, '\n'))
	assert.True(t, hasByteWord(0x000000000000000A, '\n'))
	assert.False(t, hasByteWord(0x0101010101010101, '\n'))
	assert.True(t, hasByteWord(0x0D0D0D0D0D0D0D0D, '\r'))
}
