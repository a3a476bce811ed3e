package lint

import (
	"fmt"

	"github.com/leapstack-labs/leapweb/pkg/core"
	"github.com/leapstack-labs/leapweb/pkg/source"
)

// Context is what a check sees while analyzing one file. A Context is bound
// to a single check and a single file.
type Context struct {
	ruleID   string
	severity core.Severity
	docURL   string
	file     *source.File
	sink     *IssueSink
}

// NewContext returns a context that reports into sink on behalf of ruleID.
func NewContext(ruleID string, severity core.Severity, file *source.File, sink *IssueSink) *Context {
	return &Context{
		ruleID:   ruleID,
		severity: severity,
		docURL:   BuildDocURL(ruleID),
		file:     file,
		sink:     sink,
	}
}

// File returns the file under analysis. Checks may read its raw content.
func (c *Context) File() *source.File { return c.file }

// RuleID returns the identifier of the check this context belongs to.
func (c *Context) RuleID() string { return c.ruleID }

// Report emits an issue at line. Use line 0 for a file-level issue.
func (c *Context) Report(line int, message string) {
	c.sink.Add(Issue{
		RuleID:           c.ruleID,
		Line:             line,
		Message:          message,
		Severity:         c.severity,
		DocumentationURL: c.docURL,
	})
}

// Reportf emits an issue with a formatted message.
func (c *Context) Reportf(line int, format string, args ...any) {
	c.Report(line, fmt.Sprintf(format, args...))
}
