package uuenc_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/uuenc"
)

func TestRoundTripFixtures(t *testing.T) {
	t.Parallel()

	fixtures := [][]byte{
		nil,
		[]byte("a"),
		[]byte("ab"),
		[]byte("abc"),
		[]byte("abcd"),
		[]byte("Hello, World! This is a font payload."),
	}

	for _, f := range fixtures {
		stream := uuenc.Encode(f)
		decoded, err := uuenc.Decode(stream)
		require.NoError(t, err)
		assert.Equal(t, f, decoded)
	}
}

func TestRoundTripRandomPayloads(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		n := rng.IntN(4096)
		data := make([]byte, n)
		for j := range data {
			data[j] = byte(rng.IntN(256))
		}

		lines := uuenc.EncodeLines(data)
		decoded, err := uuenc.DecodeLines(lines)
		require.NoErrorf(t, err, "payload length %d", n)
		assert.Equalf(t, data, decoded, "payload length %d", n)
	}
}

func TestEncodeLinesWidth(t *testing.T) {
	t.Parallel()

	data := make([]byte, 300)
	lines := uuenc.EncodeLines(data)
	for i, l := range lines[:len(lines)-1] {
		assert.Lenf(t, l, uuenc.LineWidth, "line %d", i)
	}
	assert.LessOrEqual(t, len(lines[len(lines)-1]), uuenc.LineWidth)
}

func TestDecodeRejectsOutOfRangeByte(t *testing.T) {
	t.Parallel()

	_, err := uuenc.Decode([]byte{' ', ' ', ' ', ' '})
	assert.ErrorIs(t, err, uuenc.ErrMalformedUU)
}
