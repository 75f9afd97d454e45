package token

// lineSpan is a half-open [start, end) byte range excluding the line
// terminator that followed it.
type lineSpan struct {
	start, end int
}

// splitLines splits src into lines, recognizing \n, \r\n, and \r
// terminators (spec §4.1). When useSWAR is true and the platform supports
// it, newline scanning uses the byte-parallel scanner in scan_swar.go;
// otherwise it falls back to the scalar scan below. Both MUST produce
// identical results — see scan_swar_test.go's differential test.
func splitLines(src []byte, useSWAR bool) []lineSpan {
	if useSWAR {
		return splitLinesSWAR(src)
	}
	return splitLinesScalar(src)
}

func splitLinesScalar(src []byte) []lineSpan {
	var lines []lineSpan

	start := 0
	i := 0
	for i < len(src) {
		c := src[i]
		if c == '\n' {
			lines = append(lines, lineSpan{start, i})
			i++
			start = i
			continue
		}
		if c == '\r' {
			lines = append(lines, lineSpan{start, i})
			i++
			if i < len(src) && src[i] == '\n' {
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(src) || len(src) == 0 {
		lines = append(lines, lineSpan{start, len(src)})
	}

	return lines
}
