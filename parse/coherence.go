package parse

import (
	"strconv"

	"github.com/limenime/limeass/ast"
)

// checkCoherence runs the cross-section checks that need every section
// fully bound first: currently, flagging event Style references that name
// no declared style (spec §4.2 step 3).
func (p *parser) checkCoherence() {
	stylesSec := p.findSection(ast.SectionStyles)
	eventsSec := p.findSection(ast.SectionEvents)
	if stylesSec == nil || eventsSec == nil {
		return
	}

	names := make(map[string]bool, len(stylesSec.Styles.Records))
	for _, st := range stylesSec.Styles.Records {
		names[st.Name.Text(p.src)] = true
	}

	for _, ev := range eventsSec.Events.Records {
		name := ev.Style.Text(p.src)
		if name == "" || name == "*Default" || names[name] {
			continue
		}
		p.addIssue(ast.Warning, ast.KindUnknownStyleRef, ev.Style,
			"event references undefined style "+strconv.Quote(name))
	}
}
