package override

import (
	"strconv"
	"strings"

	"github.com/limenime/limeass/ast"
)

// TagArg is one argument to a parenthesized tag. Exactly one of Atom or
// Nested is meaningful, selected by IsNested — \t's final argument is a
// nested override-tag sequence rather than a plain value (spec §4.3).
type TagArg struct {
	Atom     string
	Nested   []Tag
	IsNested bool
}

// Tag is one parsed override tag: a name plus its arguments, and the span
// of source it was parsed from (spec §3 OverrideBlock/Tag).
type Tag struct {
	Name    string
	Args    []TagArg
	Span    ast.Span
	Unknown bool
}

// BareNumber reports the tag's sole bare numeric argument (the form used
// by \p, \pbo, \b, \i, and similar tags), if it parsed as an integer.
func (t Tag) BareNumber() (int, bool) {
	if len(t.Args) != 1 || t.Args[0].IsNested {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(t.Args[0].Atom))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parenTagNames take explicit "(...)" argument lists; every other known
// name takes a bare argument running to the next tag or end of block.
var parenTagNames = map[string]bool{
	"pos": true, "move": true, "org": true,
	"clip": true, "iclip": true,
	"fad": true, "fade": true,
	"t": true,
}

// knownTagNames lists every tag name this package recognizes natively,
// longest first, for greedy prefix matching against tag text (spec §4.3
// tag registry). Longest-first matters where one name extends another:
// "fsp" must be tried before "fs", "kf" before "k", "pos" before "p".
var knownTagNames = sortedByLengthDesc([]string{
	"fscx", "fscy", "frx", "fry", "frz", "fax", "fay",
	"xbord", "ybord", "xshad", "yshad",
	"bord", "shad", "blur", "be",
	"fs", "fsp", "fe", "fn",
	"1c", "2c", "3c", "4c", "1a", "2a", "3a", "4a",
	"alpha", "c", "a", "an",
	"b", "i", "u", "s", "q",
	"k", "kf", "ko", "kt",
	"p", "pbo", "r",
	"pos", "move", "org", "clip", "iclip", "fad", "fade", "t",
})

func sortedByLengthDesc(names []string) []string {
	out := append([]string(nil), names...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j]) > len(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// parseTagSequence parses content (the raw text of an override block, or
// the nested-tag-sequence portion of a \t argument) into Tags. offset is
// content's absolute offset into the original event text; depth tracks \t
// nesting against opts.maxDepth().
func (p *textParser) parseTagSequence(content string, offset, depth int) []Tag {
	var tags []Tag

	pos := 0
	for pos < len(content) {
		c := content[pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			pos++
			continue
		}
		if c != '\\' {
			// Stray character outside any tag: spec treats an unmatched
			// brace this way; generalize to any stray byte between tags.
			p.addIssue(ast.Info, ast.KindMalformedOverride, offset+pos, offset+pos+1, "unexpected character between override tags")
			pos++
			continue
		}
		pos++ // consume '\'

		name, nameLen := matchTagName(content[pos:])
		tagStart := pos - 1

		var args []TagArg
		argsEnd := pos + nameLen

		if nameLen == 0 {
			// No recognized name at all (bare '\' or unmatched symbol):
			// skip the backslash itself as an unknown zero-length tag.
			tags = append(tags, Tag{Name: "", Unknown: true, Span: ast.Span{Start: offset + tagStart, End: offset + pos}})
			continue
		}

		rest := content[pos+nameLen:]
		if parenTagNames[name] && strings.HasPrefix(strings.TrimLeft(rest, " \t"), "(") {
			trimmed := strings.TrimLeft(rest, " \t")
			skipped := len(rest) - len(trimmed)
			closeIdx := matchingParen(trimmed)
			if closeIdx < 0 {
				p.addIssue(ast.Warning, ast.KindMalformedOverride, offset+pos+nameLen, offset+len(content), "unmatched '(' in \\"+name)
				argsEnd = len(content)
			} else {
				inner := trimmed[1:closeIdx]
				args = p.parseArgList(name, inner, offset+pos+nameLen+skipped+1, depth)
				argsEnd = pos + nameLen + skipped + closeIdx + 1
			}
		} else {
			// Bare-argument tag: everything up to the next tag (the next
			// unescaped '\') or end of block is this tag's argument.
			next := strings.IndexByte(rest, '\\')
			var arg string
			if next < 0 {
				arg = rest
				argsEnd = len(content)
			} else {
				arg = rest[:next]
				argsEnd = pos + nameLen + next
			}
			if trimmedArg := strings.TrimSpace(arg); trimmedArg != "" {
				args = []TagArg{{Atom: trimmedArg}}
			}
		}

		tags = append(tags, Tag{
			Name:    name,
			Args:    args,
			Span:    ast.Span{Start: offset + tagStart, End: offset + argsEnd},
			Unknown: !isKnownTagName(name),
		})
		pos = argsEnd
	}

	return tags
}

// matchTagName greedily matches the longest known tag name at the start of
// s, falling back to the longest run of letters/digits if nothing in the
// registry matches (preserved as an unknown tag, spec §4.3).
func matchTagName(s string) (name string, length int) {
	for _, candidate := range knownTagNames {
		if strings.HasPrefix(s, candidate) {
			return candidate, len(candidate)
		}
	}

	n := 0
	for n < len(s) && isAlnum(s[n]) {
		n++
	}
	if n == 0 {
		return "", 0
	}
	return s[:n], n
}

func isKnownTagName(name string) bool {
	for _, n := range knownTagNames {
		if n == name {
			return true
		}
	}
	return false
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// matchingParen returns the index (within s) of the ')' matching s[0]=='(',
// accounting for nested parens (a nested \t or \clip inside a \t's tag
// list may itself use parens).
func matchingParen(s string) int {
	if len(s) == 0 || s[0] != '(' {
		return -1
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// parseArgList splits a tag's parenthesized content on top-level commas. A
// \t tag's content is special: up to three leading purely-numeric fields
// (t1, t2, accel) are followed by a mandatory nested tag sequence rather
// than more comma-separated atoms (spec §4.3 \t grammar).
func (p *textParser) parseArgList(tagName, content string, offset, depth int) []TagArg {
	if tagName == "t" {
		return p.parseTransformArgs(content, offset, depth)
	}

	var args []TagArg
	pos := 0
	fieldStart := 0
	parenDepth := 0
	for pos < len(content) {
		switch content[pos] {
		case '(':
			parenDepth++
		case ')':
			parenDepth--
		case ',':
			if parenDepth == 0 {
				args = append(args, TagArg{Atom: strings.TrimSpace(content[fieldStart:pos])})
				fieldStart = pos + 1
			}
		}
		pos++
	}
	args = append(args, TagArg{Atom: strings.TrimSpace(content[fieldStart:])})
	return args
}

func (p *textParser) parseTransformArgs(content string, offset, depth int) []TagArg {
	var args []TagArg

	pos := 0
	for len(args) < 3 {
		idx := strings.IndexAny(content[pos:], ",\\")
		if idx < 0 {
			break
		}
		if content[pos+idx] == '\\' {
			break
		}
		candidate := strings.TrimSpace(content[pos : pos+idx])
		if !isNumericAtom(candidate) {
			break
		}
		args = append(args, TagArg{Atom: candidate})
		pos = pos + idx + 1
	}

	rest := strings.TrimSpace(content[pos:])
	if rest == "" {
		return args
	}

	if depth >= p.opts.maxDepth() {
		p.addIssue(ast.Warning, ast.KindOverrideDepthExceeded, offset+pos, offset+len(content), "\\t nesting exceeds configured depth")
		args = append(args, TagArg{Atom: rest})
		return args
	}

	nested := p.parseTagSequence(rest, offset+pos, depth+1)
	args = append(args, TagArg{Nested: nested, IsNested: true})
	return args
}

func isNumericAtom(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		if c == '-' && i == 0 {
			continue
		}
		if c == '.' {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
