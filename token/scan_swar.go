package token

import "encoding/binary"

// swarAvailable gates the byte-parallel scanner. The technique (word-wise
// "does this word contain byte b" test) is architecture-independent, so it
// is always available in this build; the flag exists so Tokenize's
// DisableSWAR option and differential tests have something to compare
// against and so a future build-constrained variant can turn it off for a
// given GOARCH without touching callers.
const swarAvailable = true

const swarWordSize = 8

// splitLinesSWAR is behaviorally identical to splitLinesScalar but scans
// 8 bytes at a time looking for '\n' or '\r', falling back to a byte-wise
// scan only for the final partial word. This is the optimization spec §4.1
// calls out as a performance-only variation over the scalar reference; the
// scalar scanner remains the behavioral definition (spec §9).
func splitLinesSWAR(src []byte) []lineSpan {
	var lines []lineSpan

	start := 0
	i := 0
	n := len(src)

	for i < n {
		// Find the next '\n' or '\r' at or after i, scanning a machine
		// word at a time while a full word remains.
		j := i
		for j+swarWordSize <= n {
			word := binary.LittleEndian.Uint64(src[j : j+swarWordSize])
			if !hasByteWord(word, '\n') && !hasByteWord(word, '\r') {
				j += swarWordSize
				continue
			}
			break
		}
		// Scalar scan within the remaining bytes (either the final
		// partial word, or the word that the coarse check flagged as
		// containing a candidate — re-checking byte-by-byte is required
		// since hasByteWord can only prove absence cheaply, not locate
		// the match).
		k := j
		for k < n && src[k] != '\n' && src[k] != '\r' {
			k++
		}

		if k >= n {
			break
		}

		lines = append(lines, lineSpan{start, k})
		if src[k] == '\r' && k+1 < n && src[k+1] == '\n' {
			k++
		}
		k++
		start = k
		i = k
	}

	if start < n || n == 0 {
		lines = append(lines, lineSpan{start, n})
	}

	return lines
}

// hasByteWord reports whether any of the 8 bytes packed in word equals b,
// using the classic SWAR "haszero(word ^ broadcast(b))" trick: XOR-ing a
// byte broadcast of b into word turns every occurrence of b into a zero
// byte, and haszero finds it without a branch per byte.
func hasByteWord(word uint64, b byte) bool {
	const lo = 0x0101010101010101
	const hi = 0x8080808080808080
	x := word ^ (lo * uint64(b))
	return (x-lo)&^x&hi != 0
}
