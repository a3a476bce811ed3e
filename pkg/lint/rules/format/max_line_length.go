package format

import (
	"fmt"
	"unicode/utf8"

	"github.com/leapstack-labs/leapweb/pkg/core"
	"github.com/leapstack-labs/leapweb/pkg/lint"
)

func init() {
	lint.Register(MaxLineLength)
}

// DefaultMaximumLineLength is the default limit in characters.
const DefaultMaximumLineLength = 120

// MaxLineLength flags lines longer than maximumLineLength characters.
var MaxLineLength = lint.RuleDef{
	ID:          "MaxLineLengthCheck",
	Name:        "format.max_line_length",
	Group:       "format",
	Description: "Lines should not be too long",
	Severity:    core.SeverityInfo,
	Params: []lint.Param{
		{Key: "maximumLineLength", Default: DefaultMaximumLineLength, Description: "The maximum authorized line length"},
	},
	New: func() lint.Check { return &maxLineLengthCheck{} },

	Rationale: "Long lines force horizontal scrolling and make side-by-side diffs hard to read.",
	Fix:       "Break the line at an attribute or element boundary.",
}

type maxLineLengthCheck struct {
	max int
}

func (c *maxLineLengthCheck) Configure(opts lint.Options) error {
	n, err := lint.ParseIntOption(opts, "maximumLineLength", DefaultMaximumLineLength)
	if err != nil {
		return err
	}
	c.max = n
	return nil
}

func (c *maxLineLengthCheck) Init() error {
	if c.max <= 0 {
		return fmt.Errorf("maximumLineLength must be positive, got %d", c.max)
	}
	return nil
}

func (c *maxLineLengthCheck) StartDocument(ctx *lint.Context) error {
	return ctx.File().Lines(func(line int, text string) bool {
		if n := utf8.RuneCountInString(text); n > c.max {
			ctx.Reportf(line, "Split this %d characters long line (which is greater than %d authorized).", n, c.max)
		}
		return true
	})
}
