// Package header provides HeaderCheck, which requires every file to start
// with a configured copyright or license header.
package header

import (
	"github.com/leapstack-labs/leapweb/pkg/core"
	"github.com/leapstack-labs/leapweb/pkg/lint"
)

// Rule ID and option keys.
const (
	RuleID               = "HeaderCheck"
	OptHeaderFormat      = "headerFormat"
	OptRegularExpression = "isRegularExpression"
)

// Message is reported once per non-compliant file, at line 0.
const Message = "Add or update the header of this file."

// Rule is the HeaderCheck rule definition.
var Rule = lint.RuleDef{
	ID:          RuleID,
	Name:        "header.copyright",
	Group:       "header",
	Description: "Files should start with the expected copyright and license header",
	Severity:    core.SeverityWarning,
	Params: []lint.Param{
		{Key: OptHeaderFormat, Default: "", Description: "Expected copyright and license header (plain text)"},
		{Key: OptRegularExpression, Default: false, Description: "Whether the headerFormat is a regular expression"},
	},
	New: func() lint.Check { return &Check{} },

	Rationale: `Legal and licensing policies often require every source file to carry
the same header. A missing or outdated header is easy to overlook in review.`,
	BadExample: `<html>
<body>...</body>
</html>`,
	GoodExample: `<!-- Copyright (c) ACME Corp. All rights reserved. -->
<html>
<body>...</body>
</html>`,
	Fix: "Copy the configured header to the top of the file.",
}

func init() {
	lint.Register(Rule)
}

// Check verifies the file header. Its only per-file state lives in the
// matcher created inside StartDocument, so one instance serves all files.
type Check struct {
	format  string
	isRegex bool
	spec    *Spec
}

var _ lint.DocumentStarter = (*Check)(nil)

// Configure implements lint.Check.
func (c *Check) Configure(opts lint.Options) error {
	c.format = lint.GetStringOption(opts, OptHeaderFormat, "")
	isRegex, err := lint.ParseBoolOption(opts, OptRegularExpression, false)
	if err != nil {
		return err
	}
	c.isRegex = isRegex
	return nil
}

// Init implements lint.Check.
func (c *Check) Init() error {
	spec, err := NewSpec(c.format, c.isRegex)
	if err != nil {
		return err
	}
	c.spec = spec
	return nil
}

// StartDocument implements lint.DocumentStarter.
func (c *Check) StartDocument(ctx *lint.Context) error {
	ok, err := c.spec.Match(ctx.File())
	if err != nil {
		return err
	}
	if !ok {
		ctx.Report(0, Message)
	}
	return nil
}
