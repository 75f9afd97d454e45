package analysis

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/literal"
)

// LintIssue is one rule-based finding, independent of the parser's own
// ParseIssue channel (spec §4.6 "Lint issues").
type LintIssue struct {
	Severity ast.Severity
	Rule     string
	Span     ast.Span
	Message  string
}

// Rule checks a Script and reports LintIssues.
type Rule interface {
	Name() string
	Check(script *ast.Script) []LintIssue
}

type funcRule struct {
	name string
	fn   func(*ast.Script) []LintIssue
}

func (r funcRule) Name() string                       { return r.name }
func (r funcRule) Check(script *ast.Script) []LintIssue { return r.fn(script) }

// NewRule builds a Rule from a name and check function, for callers
// registering their own rules (spec §4.6 "Rules are pluggable via a rule
// registry parallel to §4.4").
func NewRule(name string, fn func(*ast.Script) []LintIssue) Rule {
	return funcRule{name: name, fn: fn}
}

// DefaultRules returns the specification's default lint rule set (spec
// §4.6).
func DefaultRules() []Rule {
	return []Rule{
		NewRule("negative-font-size", ruleNegativeFontSize),
		NewRule("invalid-alignment", ruleInvalidAlignment),
		NewRule("start-after-end", ruleStartAfterEnd),
		NewRule("undefined-style-reference", ruleUndefinedStyleReference),
		NewRule("negative-margins", ruleNegativeMargins),
		NewRule("malformed-color", ruleMalformedColor),
		NewRule("drawing-outside-drawing-mode", ruleDrawingOutsideDrawingMode),
		NewRule("kt-non-plus", ruleKtNonPlus),
		NewRule("layout-res-unused", ruleLayoutResUnused),
		NewRule("relative-to-non-plus", ruleRelativeToNonPlus),
	}
}

// Lint runs rules (DefaultRules() when cfg.Rules is nil) over script,
// skipping any rule named in cfg.DisabledRules.
func Lint(script *ast.Script, cfg LintConfig) []LintIssue {
	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRules()
	}

	disabled := make(map[string]bool, len(cfg.DisabledRules))
	for _, name := range cfg.DisabledRules {
		disabled[name] = true
	}

	var issues []LintIssue
	for _, rule := range rules {
		if disabled[rule.Name()] {
			continue
		}
		issues = append(issues, rule.Check(script)...)
	}
	return issues
}

// RuleRegistry is a copy-on-write registry of lint Rules, mirroring
// package plugin's Registry (spec §4.6 "a rule registry parallel to
// §4.4"). Hosts use it to add or remove rules at runtime without
// recompiling a fixed LintConfig.Rules slice.
type RuleRegistry struct {
	mu    sync.Mutex
	state atomic.Pointer[[]Rule]
}

// NewRuleRegistry returns a registry preloaded with DefaultRules().
func NewRuleRegistry() *RuleRegistry {
	r := &RuleRegistry{}
	rules := DefaultRules()
	r.state.Store(&rules)
	return r
}

// Rules returns the registry's current rule set. Safe to call on a nil
// RuleRegistry (returns nil).
func (r *RuleRegistry) Rules() []Rule {
	if r == nil {
		return nil
	}
	rules := r.state.Load()
	if rules == nil {
		return nil
	}
	return *rules
}

// Register appends rule to the registry, replacing any existing rule of
// the same name.
func (r *RuleRegistry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.Rules()
	next := make([]Rule, 0, len(old)+1)
	for _, existing := range old {
		if existing.Name() == rule.Name() {
			continue
		}
		next = append(next, existing)
	}
	next = append(next, rule)
	r.state.Store(&next)
}

// Unregister removes the named rule, reporting whether one was present.
func (r *RuleRegistry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.Rules()
	next := make([]Rule, 0, len(old))
	removed := false
	for _, existing := range old {
		if existing.Name() == name {
			removed = true
			continue
		}
		next = append(next, existing)
	}
	if !removed {
		return false
	}
	r.state.Store(&next)
	return true
}

// LintWithRegistry runs reg's current rule set over script, honoring
// cfg.DisabledRules. A nil reg falls back to DefaultRules().
func LintWithRegistry(script *ast.Script, reg *RuleRegistry, cfg LintConfig) []LintIssue {
	cfg.Rules = reg.Rules()
	if cfg.Rules == nil {
		cfg.Rules = DefaultRules()
	}
	return Lint(script, cfg)
}

func forEachStyle(script *ast.Script, fn func(ast.Style)) {
	for _, sec := range script.Sections {
		if sec.Kind.Kind != ast.SectionStyles || sec.Styles == nil {
			continue
		}
		for _, st := range sec.Styles.Records {
			fn(st)
		}
	}
}

func forEachEvent(script *ast.Script, fn func(ast.Event)) {
	for _, sec := range script.Sections {
		if sec.Kind.Kind != ast.SectionEvents || sec.Events == nil {
			continue
		}
		for _, ev := range sec.Events.Records {
			fn(ev)
		}
	}
}

func ruleNegativeFontSize(script *ast.Script) []LintIssue {
	var issues []LintIssue
	forEachStyle(script, func(st ast.Style) {
		if parseFloat(st.Fontsize.Text(script.Source)) < 0 {
			issues = append(issues, LintIssue{
				Severity: ast.Warning, Rule: "negative-font-size", Span: st.Fontsize,
				Message: "style has a negative font size",
			})
		}
	})
	return issues
}

func ruleInvalidAlignment(script *ast.Script) []LintIssue {
	var issues []LintIssue
	forEachStyle(script, func(st ast.Style) {
		a := parseInt(st.Alignment.Text(script.Source))
		if a < 1 || a > 11 {
			issues = append(issues, LintIssue{
				Severity: ast.Warning, Rule: "invalid-alignment", Span: st.Alignment,
				Message: "alignment value " + strconv.Itoa(a) + " outside the valid 1-11 range",
			})
		}
	})
	return issues
}

func ruleStartAfterEnd(script *ast.Script) []LintIssue {
	var issues []LintIssue
	forEachEvent(script, func(ev ast.Event) {
		if ev.Start.Valid && ev.End.Valid && ev.Start.Centiseconds >= ev.End.Centiseconds {
			issues = append(issues, LintIssue{
				Severity: ast.Warning, Rule: "start-after-end", Span: ev.Span,
				Message: "event start is at or after its end",
			})
		}
	})
	return issues
}

func ruleUndefinedStyleReference(script *ast.Script) []LintIssue {
	names := map[string]bool{}
	forEachStyle(script, func(st ast.Style) { names[st.Name.Text(script.Source)] = true })

	var issues []LintIssue
	forEachEvent(script, func(ev ast.Event) {
		name := ev.Style.Text(script.Source)
		if name == "" || name == "*Default" || names[name] {
			return
		}
		issues = append(issues, LintIssue{
			Severity: ast.Warning, Rule: "undefined-style-reference", Span: ev.Style,
			Message: "event references undefined style " + strconv.Quote(name),
		})
	})
	return issues
}

func ruleNegativeMargins(script *ast.Script) []LintIssue {
	var issues []LintIssue
	flag := func(span ast.Span, field string) {
		if span.Len() == 0 {
			return
		}
		if parseInt(span.Text(script.Source)) < 0 {
			issues = append(issues, LintIssue{
				Severity: ast.Warning, Rule: "negative-margins", Span: span,
				Message: field + " margin is negative",
			})
		}
	}
	forEachStyle(script, func(st ast.Style) {
		flag(st.MarginL, "left")
		flag(st.MarginR, "right")
		if st.HasMarginV {
			flag(st.MarginV, "vertical")
		}
		if st.HasSplitMargins {
			flag(st.MarginT, "top")
			flag(st.MarginB, "bottom")
		}
	})
	forEachEvent(script, func(ev ast.Event) {
		flag(ev.MarginL, "left")
		flag(ev.MarginR, "right")
		if ev.HasMarginV {
			flag(ev.MarginV, "vertical")
		}
		if ev.HasSplitMargins {
			flag(ev.MarginT, "top")
			flag(ev.MarginB, "bottom")
		}
	})
	return issues
}

func ruleMalformedColor(script *ast.Script) []LintIssue {
	var issues []LintIssue
	check := func(span ast.Span, field string) {
		text := span.Text(script.Source)
		if text == "" {
			return
		}
		if _, err := literal.ParseColor(text); err != nil {
			issues = append(issues, LintIssue{
				Severity: ast.Warning, Rule: "malformed-color", Span: span,
				Message: field + " is not a valid color literal: " + err.Error(),
			})
		}
	}
	forEachStyle(script, func(st ast.Style) {
		check(st.PrimaryColour, "PrimaryColour")
		check(st.SecondaryColour, "SecondaryColour")
		check(st.OutlineColour, "OutlineColour")
		check(st.BackColour, "BackColour")
	})
	return issues
}

// ruleDrawingOutsideDrawingMode heuristically flags event text that reads
// like a drawing-command stream (a single recognized command letter
// followed by numeric tokens) but appears outside any \p>0 run, a common
// producer mistake (spec §4.6).
func ruleDrawingOutsideDrawingMode(script *ast.Script) []LintIssue {
	var issues []LintIssue
	forEachEvent(script, func(ev ast.Event) {
		text := strings.TrimSpace(ev.Text.Text(script.Source))
		if looksLikeDrawingStream(text) && !strings.Contains(text, `\p`) {
			issues = append(issues, LintIssue{
				Severity: ast.Info, Rule: "drawing-outside-drawing-mode", Span: ev.Text,
				Message: "event text resembles drawing commands but no \\p tag activates drawing mode",
			})
		}
	})
	return issues
}

func looksLikeDrawingStream(text string) bool {
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return false
	}
	if len(fields[0]) != 1 || !strings.ContainsRune("mnlbspc", rune(fields[0][0])) {
		return false
	}
	numeric := 0
	for _, f := range fields[1:] {
		if _, err := strconv.ParseFloat(f, 64); err == nil {
			numeric++
		}
	}
	return numeric >= len(fields)-2
}

func ruleKtNonPlus(script *ast.Script) []LintIssue {
	if script.Version == ast.AssV4Plus {
		return nil
	}
	var issues []LintIssue
	forEachEvent(script, func(ev ast.Event) {
		text := ev.Text.Text(script.Source)
		if strings.Contains(text, `\kt`) {
			issues = append(issues, LintIssue{
				Severity: ast.Warning, Rule: "kt-non-plus", Span: ev.Text,
				Message: "\\kt karaoke is an ASS v4.00++ extension, used in a " + script.Version.String() + " script",
			})
		}
	})
	return issues
}

func ruleLayoutResUnused(script *ast.Script) []LintIssue {
	var si *ast.ScriptInfo
	var siSpan ast.Span
	for _, sec := range script.Sections {
		if sec.Kind.Kind == ast.SectionScriptInfo && sec.ScriptInfo != nil {
			si = sec.ScriptInfo
			siSpan = sec.Span
		}
	}
	if si == nil {
		return nil
	}

	lx, okLX := si.Value(script.Source, "LayoutResX")
	ly, okLY := si.Value(script.Source, "LayoutResY")
	if !okLX || !okLY {
		return nil
	}

	px, _ := si.Value(script.Source, "PlayResX")
	py, _ := si.Value(script.Source, "PlayResY")
	if parseFloat(lx) == parseFloat(px) && parseFloat(ly) == parseFloat(py) {
		return []LintIssue{{
			Severity: ast.Info, Rule: "layout-res-unused", Span: siSpan,
			Message: "LayoutResX/Y equal PlayResX/Y; declared but has no scaling effect",
		}}
	}
	return nil
}

func ruleRelativeToNonPlus(script *ast.Script) []LintIssue {
	if script.Version == ast.AssV4Plus {
		return nil
	}
	var issues []LintIssue
	forEachStyle(script, func(st ast.Style) {
		if st.HasRelativeTo {
			issues = append(issues, LintIssue{
				Severity: ast.Warning, Rule: "relative-to-non-plus", Span: st.RelativeTo,
				Message: "RelativeTo is an ASS v4.00++ extension, used in a " + script.Version.String() + " script",
			})
		}
	})
	return issues
}
