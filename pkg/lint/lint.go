package lint

import (
	"github.com/leapstack-labs/leapweb/pkg/core"
)

// Issue is a single finding emitted by a check.
// Line is 1-based; 0 marks a file-level issue with no specific line.
type Issue struct {
	RuleID   string
	Line     int
	Message  string
	Severity core.Severity

	// DocumentationURL points at the rule documentation, e.g.
	// "https://leapweb.dev/docs/rules/headercheck".
	DocumentationURL string
}

// IsFileLevel reports whether the issue is not tied to a line.
func (i Issue) IsFileLevel() bool {
	return i.Line == 0
}
