package jsp

import (
	"github.com/leapstack-labs/leapweb/pkg/core"
	"github.com/leapstack-labs/leapweb/pkg/lint"
	"github.com/leapstack-labs/leapweb/pkg/markup"
)

func init() {
	lint.Register(MultiplePageDirectives)
}

// MultiplePageDirectives flags files that split page settings over several
// page directives. Directives carrying an import attribute are exempt.
var MultiplePageDirectives = lint.RuleDef{
	ID:          "MultiplePageDirectivesCheck",
	Name:        "jsp.multiple_page_directives",
	Group:       "jsp",
	Description: "Page directives other than imports should be combined into one",
	Severity:    core.SeverityWarning,
	New:         func() lint.Check { return &pageDirectivesCheck{} },

	Rationale: `Page attributes scattered over several directives are hard to audit,
and conflicting values are easy to introduce.`,
	BadExample: `<%@ page session="false" %>
<%@ page contentType="text/html" %>`,
	GoodExample: `<%@ page session="false" contentType="text/html" %>`,
}

type pageDirectivesCheck struct {
	lint.CheckBase
	directives []*markup.Node
}

func (c *pageDirectivesCheck) Clone() lint.Check {
	return &pageDirectivesCheck{}
}

func (c *pageDirectivesCheck) VisitNode(_ *lint.Context, n *markup.Node) {
	if n.IsDirective("page") && !n.HasAttr("import") {
		c.directives = append(c.directives, n)
	}
}

func (c *pageDirectivesCheck) EndDocument(ctx *lint.Context) {
	if len(c.directives) > 1 {
		ctx.Reportf(c.directives[1].StartLine(), "Combine these %d page directives into one.", len(c.directives))
	}
}
