package override

import (
	"strconv"
	"strings"

	"github.com/limenime/limeass/ast"
)

// DrawingCommandKind discriminates a DrawingCommand (spec §3/§4.3).
type DrawingCommandKind int

const (
	DrawMove DrawingCommandKind = iota
	DrawMoveNoClose
	DrawLine
	DrawBezier
	DrawBSpline
	DrawExtendBSpline
	DrawCloseBSpline
	DrawBaselineOffset
)

// coordCount is how many numbers each drawing command letter consumes per
// repetition (spec §4.3: "m x y", "b x1 y1 x2 y2 x3 y3", ...).
var coordCount = map[byte]int{
	'm': 2, 'n': 2, 'l': 2, 'b': 6, 's': 2, 'p': 2, 'c': 0,
}

// DrawingCommand is one command in a \p drawing-mode run: a command letter
// plus its coordinate list, repeated for commands (l, b, s) that accept
// more than one group of coordinates per letter.
type DrawingCommand struct {
	Kind   DrawingCommandKind
	Coords []float64
	Span   ast.Span
}

func kindForLetter(c byte) (DrawingCommandKind, bool) {
	switch c {
	case 'm':
		return DrawMove, true
	case 'n':
		return DrawMoveNoClose, true
	case 'l':
		return DrawLine, true
	case 'b':
		return DrawBezier, true
	case 's':
		return DrawBSpline, true
	case 'p':
		return DrawExtendBSpline, true
	case 'c':
		return DrawCloseBSpline, true
	default:
		return 0, false
	}
}

// parseDrawingCommands tokenizes a drawing-mode literal run into
// DrawingCommands. offset is the run's absolute start offset in the
// source.
func parseDrawingCommands(text string, offset int) ([]DrawingCommand, []ast.ParseIssue) {
	toks := strings.Fields(text)
	// positions tracks each token's byte offset within text, since
	// strings.Fields discards it.
	positions := fieldOffsets(text)

	var cmds []DrawingCommand
	var issues []ast.ParseIssue

	i := 0
	for i < len(toks) {
		letter := toks[i]
		if len(letter) != 1 {
			issues = append(issues, ast.ParseIssue{
				Severity: ast.Info, Kind: ast.KindMalformedOverride,
				Span:    ast.Span{Start: offset + positions[i], End: offset + positions[i] + len(letter)},
				Message: "expected a single drawing command letter",
			})
			i++
			continue
		}

		n, ok := coordCount[letter[0]]
		if !ok {
			issues = append(issues, ast.ParseIssue{
				Severity: ast.Info, Kind: ast.KindMalformedOverride,
				Span:    ast.Span{Start: offset + positions[i], End: offset + positions[i] + 1},
				Message: "unknown drawing command letter " + strconv.Quote(letter),
			})
			i++
			continue
		}

		kind, _ := kindForLetter(letter[0])
		start := positions[i]
		i++

		if n == 0 {
			cmds = append(cmds, DrawingCommand{Kind: kind, Span: ast.Span{Start: offset + start, End: offset + positions[i-1] + 1}})
			continue
		}

		// l, b and s accept repeated coordinate groups until the next
		// command letter (spec §4.3); every other command takes one group.
		for i+n <= len(toks) && allNumeric(toks[i:i+n]) {
			coords := make([]float64, n)
			for j := 0; j < n; j++ {
				coords[j], _ = strconv.ParseFloat(toks[i+j], 64)
			}
			end := positions[i+n-1] + len(toks[i+n-1])
			cmds = append(cmds, DrawingCommand{Kind: kind, Coords: coords, Span: ast.Span{Start: offset + start, End: offset + end}})
			i += n
			if kind != DrawLine && kind != DrawBezier && kind != DrawBSpline {
				break
			}
		}
	}

	return cmds, issues
}

func allNumeric(toks []string) bool {
	for _, t := range toks {
		if _, err := strconv.ParseFloat(t, 64); err != nil {
			return false
		}
	}
	return true
}

// fieldOffsets returns, for each whitespace-separated field
// strings.Fields(text) would produce, its byte offset within text.
func fieldOffsets(text string) []int {
	var offsets []int
	inField := false
	for i := 0; i < len(text); i++ {
		isSpace := text[i] == ' ' || text[i] == '\t' || text[i] == '\n' || text[i] == '\r'
		if !isSpace && !inField {
			offsets = append(offsets, i)
			inField = true
		} else if isSpace {
			inField = false
		}
	}
	return offsets
}
