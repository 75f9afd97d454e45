// Package override parses the contents of an event's text field on demand
// into a sequence of literal, override-block, and drawing runs (spec §4.3).
// Parsing is lazy and pure: nothing here touches package parse's AST beyond
// borrowing ast.Span and ast.ParseIssue.
package override

import (
	"strings"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/plugin"
)

// DefaultMaxDepth bounds \t(...) nesting when Options.MaxDepth is zero
// (spec §4.3/§5).
const DefaultMaxDepth = 8

// Options configures ParseText.
type Options struct {
	// MaxDepth bounds \t nesting depth. Zero means DefaultMaxDepth.
	MaxDepth int

	// Registry holds plugin TagHandlers (spec §4.4). ParseText does not
	// consult it: a tag name this package does not recognize natively is
	// kept as a Tag with Unknown set and its raw argument text, and no
	// TagHandler is called for it.
	Registry *plugin.Registry
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// RunKind discriminates a Run.
type RunKind int

const (
	RunLiteral RunKind = iota
	RunOverride
	RunDrawing
)

// Run is one contiguous piece of an event's text: plain text, an override
// block, or (while drawing mode is active) a run of drawing commands.
type Run struct {
	Kind RunKind
	Span ast.Span

	Literal  string           // populated for RunLiteral
	Tags     []Tag            // populated for RunOverride
	Commands []DrawingCommand // populated for RunDrawing
}

// ParseText parses text (the materialized content of an ast.Event.Text
// span) into Runs. base is the absolute source offset text starts at, so
// issue and run spans are expressed in the Script's coordinate space.
func ParseText(text string, base int, opts Options) ([]Run, []ast.ParseIssue) {
	p := &textParser{src: text, base: base, opts: opts}
	return p.parse()
}

type textParser struct {
	src  string
	base int
	opts Options

	runs   []Run
	issues []ast.ParseIssue

	drawing bool
}

func (p *textParser) addIssue(sev ast.Severity, kind ast.IssueKind, start, end int, msg string) {
	p.issues = append(p.issues, ast.ParseIssue{
		Severity: sev, Kind: kind,
		Span:    ast.Span{Start: p.base + start, End: p.base + end},
		Message: msg,
	})
}

func (p *textParser) parse() ([]Run, []ast.ParseIssue) {
	pos := 0
	litStart := 0

	flushLiteral := func(end int) {
		if end <= litStart {
			return
		}
		p.emitLiteralRun(litStart, end)
	}

	for pos < len(p.src) {
		switch p.src[pos] {
		case '{':
			flushLiteral(pos)
			closeIdx := findUnescapedBrace(p.src, pos+1)
			if closeIdx < 0 {
				p.addIssue(ast.Warning, ast.KindMalformedOverride, pos, len(p.src), "unmatched '{' in event text")
				p.emitLiteralRun(pos, len(p.src))
				litStart = len(p.src)
				pos = len(p.src)
				continue
			}
			content := p.src[pos+1 : closeIdx]
			tags := p.parseTagSequence(content, pos+1, 1)
			p.runs = append(p.runs, Run{
				Kind: RunOverride,
				Span: ast.Span{Start: p.base + pos, End: p.base + closeIdx + 1},
				Tags: tags,
			})
			p.applyDrawingState(tags)
			pos = closeIdx + 1
			litStart = pos
		case '}':
			p.addIssue(ast.Warning, ast.KindMalformedOverride, pos, pos+1, "unmatched '}' in event text")
			pos++
		default:
			pos++
		}
	}
	flushLiteral(len(p.src))

	return p.runs, p.issues
}

func (p *textParser) emitLiteralRun(start, end int) {
	text := p.src[start:end]
	if p.drawing {
		cmds, issues := parseDrawingCommands(text, p.base+start)
		p.issues = append(p.issues, issues...)
		p.runs = append(p.runs, Run{
			Kind:     RunDrawing,
			Span:     ast.Span{Start: p.base + start, End: p.base + end},
			Commands: cmds,
		})
		return
	}
	p.runs = append(p.runs, Run{
		Kind:    RunLiteral,
		Span:    ast.Span{Start: p.base + start, End: p.base + end},
		Literal: text,
	})
}

// applyDrawingState updates p.drawing from any \p tags found at the top
// level of an override block just emitted (spec §4.3: "\p n>0 switches ...
// until the next \p 0").
func (p *textParser) applyDrawingState(tags []Tag) {
	for _, t := range tags {
		if t.Name != "p" {
			continue
		}
		n, ok := t.BareNumber()
		if !ok {
			continue
		}
		p.drawing = n > 0
	}
}

// findUnescapedBrace finds the next '}' at or after pos, returning an
// absolute index into s (or -1). Override blocks do not nest, so the first
// '}' encountered closes the block.
func findUnescapedBrace(s string, pos int) int {
	idx := strings.IndexByte(s[pos:], '}')
	if idx < 0 {
		return -1
	}
	return pos + idx
}
