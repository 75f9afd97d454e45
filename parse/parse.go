// Package parse consumes the token stream from package token and builds an
// ast.Script: it dispatches section headers to handlers, binds record
// fields by the declared Format: line, resolves the script's version, and
// collects recoverable problems as ast.ParseIssue values (spec §4.2).
package parse

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/plugin"
	"github.com/limenime/limeass/token"
)

// Options configures Parse.
type Options struct {
	// SizeLimit is forwarded to the tokenizer (spec §5). Zero means
	// token.DefaultSizeLimit.
	SizeLimit int

	// Registry supplies section/tag handlers for plugin-owned sections
	// (spec §4.4). A nil Registry means no plugin dispatch: unknown
	// sections always become ast.Section{Custom: ...}.
	Registry *plugin.Registry

	// Logger receives Debug-level dispatch diagnostics. Defaults to
	// slog.Default() when nil; the parser never logs above Debug (spec
	// §4.7 — a pure parse must not spam a host application's logs).
	Logger *slog.Logger

	// ForceVersion pins the version context instead of auto-detecting it
	// from ScriptType:/the styles header. Used by package incremental when
	// reparsing a bounded region that carries no [Script Info] of its own
	// (spec §4.5 step 3, "the parser interprets the region with the same
	// version context as the full script").
	ForceVersion ast.Version
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// Parse tokenizes and parses source into an ast.Script. Only encoding and
// size-limit problems are fatal (returned as error with a nil Script);
// every other problem becomes an ast.ParseIssue on the returned Script
// (spec §4.2/§7).
func Parse(source []byte, opts Options) (*ast.Script, error) {
	log := opts.logger()

	toks, err := token.Tokenize(source, token.Options{SizeLimit: opts.SizeLimit})
	if err != nil {
		return nil, err
	}
	// Token offsets are relative to the BOM-stripped buffer, so that is the
	// buffer every Span and Script.Source refer to.
	source = bytes.TrimPrefix(source, []byte("\xef\xbb\xbf"))

	p := &parser{
		src:      source,
		tokens:   toks,
		registry: opts.Registry,
		log:      log,
	}

	if opts.ForceVersion != ast.VersionUnknown {
		p.version = opts.ForceVersion
		log.Debug("parse: version pinned by caller", "version", p.version.String())
	} else {
		p.detectVersion()
	}
	p.run()
	p.checkCoherence()

	return &ast.Script{
		Source:   source,
		Version:  p.version,
		Sections: p.sections,
		Issues:   p.issues,
	}, nil
}

// parser holds the mutable state threaded through a single Parse call. It
// is not reused across calls and is not safe for concurrent use — matching
// spec §5's "synchronous, single-threaded per operation" model.
type parser struct {
	src      []byte
	tokens   []token.Token
	registry *plugin.Registry
	log      *slog.Logger

	version  ast.Version
	sections []ast.Section
	issues   []ast.ParseIssue

	pos int // cursor into p.tokens
}

func (p *parser) addIssue(sev ast.Severity, kind ast.IssueKind, span ast.Span, msg string) {
	p.issues = append(p.issues, ast.ParseIssue{Severity: sev, Kind: kind, Span: span, Message: msg})
}

// detectVersion scans for the first ScriptType: key, or infers the version
// from a styles-section header name, defaulting to AssV4Plus (spec §4.2
// step 1).
func (p *parser) detectVersion() {
	var fromScriptType, fromHeader ast.Version

	for _, t := range p.tokens {
		if t.Kind == token.KeyValue && strings.EqualFold(t.Key, "ScriptType") {
			if v, ok := versionFromScriptType(t.Value); ok && fromScriptType == ast.VersionUnknown {
				fromScriptType = v
			}
		}
		if t.Kind == token.SectionHeader {
			if v, ok := versionFromHeader(t.Name); ok && fromHeader == ast.VersionUnknown {
				fromHeader = v
			}
		}
	}

	switch {
	case fromScriptType != ast.VersionUnknown && fromHeader != ast.VersionUnknown:
		p.version = fromScriptType
		if fromScriptType != fromHeader {
			p.addIssue(ast.Warning, ast.KindVersionMismatch, ast.Span{}, "ScriptType: disagrees with styles section header version")
		}
	case fromScriptType != ast.VersionUnknown:
		p.version = fromScriptType
	case fromHeader != ast.VersionUnknown:
		p.version = fromHeader
	default:
		p.version = ast.AssV4Plus
	}

	p.log.Debug("parse: version detected", "version", p.version.String())
}

func versionFromScriptType(value string) (ast.Version, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.Contains(v, "v4.00++"):
		return ast.AssV4Plus, true
	case strings.Contains(v, "v4.00+"):
		return ast.AssV4, true
	case strings.Contains(v, "v4.00"):
		return ast.SsaV4, true
	}
	return ast.VersionUnknown, false
}

func versionFromHeader(name string) (ast.Version, bool) {
	v := strings.ToLower(strings.TrimSpace(name))
	switch v {
	case "v4++ styles":
		return ast.AssV4Plus, true
	case "v4+ styles":
		return ast.AssV4, true
	case "v4 styles":
		return ast.SsaV4, true
	}
	return ast.VersionUnknown, false
}

func resolveHeaderKind(name string) ast.SectionKind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "script info":
		return ast.SectionScriptInfo
	case "v4 styles", "v4+ styles", "v4++ styles":
		return ast.SectionStyles
	case "events":
		return ast.SectionEvents
	case "fonts":
		return ast.SectionFonts
	case "graphics":
		return ast.SectionGraphics
	default:
		return ast.SectionCustom
	}
}

// run walks the token stream once, dispatching each SectionHeader to its
// handler (spec §4.2 step 2). Handlers consume tokens up to (but not
// including) the next SectionHeader or end of stream.
func (p *parser) run() {
	seenHeaders := map[ast.SectionKind]bool{}

	for p.pos < len(p.tokens) {
		t := p.tokens[p.pos]
		if t.Kind != token.SectionHeader {
			// Stray content before any header: ignored (not an event or
			// style record, nothing to bind it to).
			p.pos++
			continue
		}

		kind := resolveHeaderKind(t.Name)
		if seenHeaders[kind] && kind != ast.SectionCustom {
			p.addIssue(ast.Warning, ast.KindDuplicateSection, ast.Span{t.Start, t.End}, "duplicate "+t.Name+" section; records appended to the existing section")
		}
		seenHeaders[kind] = true

		p.log.Debug("parse: dispatching section", "header", t.Name, "kind", int(kind))

		headerStart := t.Start
		p.pos++ // consume header

		body := p.consumeUntilNextHeader()

		switch kind {
		case ast.SectionScriptInfo:
			p.mergeScriptInfo(headerStart, t.End, t.Name, body)
		case ast.SectionStyles:
			p.mergeStyles(headerStart, t.End, t.Name, body)
		case ast.SectionEvents:
			p.mergeEvents(headerStart, t.End, t.Name, body)
		case ast.SectionFonts:
			p.mergeFonts(headerStart, t.End, t.Name, body)
		case ast.SectionGraphics:
			p.mergeGraphics(headerStart, t.End, t.Name, body)
		default:
			p.handleCustomSection(headerStart, t.End, t.Name, body)
		}
	}
}

// consumeUntilNextHeader advances p.pos past all tokens belonging to the
// current section and returns them.
func (p *parser) consumeUntilNextHeader() []token.Token {
	start := p.pos
	for p.pos < len(p.tokens) && p.tokens[p.pos].Kind != token.SectionHeader {
		p.pos++
	}
	return p.tokens[start:p.pos]
}

func spanOf(t token.Token) ast.Span { return ast.Span{Start: t.Start, End: t.End} }
