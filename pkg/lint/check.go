package lint

import (
	"github.com/leapstack-labs/leapweb/pkg/markup"
)

// Options holds the option values bound to a check, keyed by option name.
type Options map[string]any

// Check is the contract every rule check implements.
type Check interface {
	// Configure binds option values. opts already contains the rule's
	// declared defaults overlaid with user configuration.
	Configure(opts Options) error

	// Init derives immutable state from the bound options. It runs once,
	// after Configure and before the first file.
	Init() error
}

// DocumentStarter is implemented by checks that run before traversal.
// A returned error aborts analysis of the current file only.
type DocumentStarter interface {
	StartDocument(ctx *Context) error
}

// NodeVisitor is implemented by checks that inspect nodes on entry.
type NodeVisitor interface {
	VisitNode(ctx *Context, n *markup.Node)
}

// NodeLeaver is implemented by checks that inspect nodes after their
// children.
type NodeLeaver interface {
	LeaveNode(ctx *Context, n *markup.Node)
}

// DocumentEnder is implemented by checks that run after traversal.
type DocumentEnder interface {
	EndDocument(ctx *Context)
}

// Cloner is implemented by checks with per-file state. Clone must return a
// copy that shares the configured state and has fresh per-file state.
type Cloner interface {
	Clone() Check
}

// CheckBase provides no-op Configure and Init. Embed it in checks that take
// no options.
type CheckBase struct{}

// Configure implements Check.
func (CheckBase) Configure(Options) error { return nil }

// Init implements Check.
func (CheckBase) Init() error { return nil }

// Hook names reported by Hooks.
const (
	HookStartDocument = "start_document"
	HookVisitNode     = "visit_node"
	HookLeaveNode     = "leave_node"
	HookEndDocument   = "end_document"
)

// Hooks lists the lifecycle hooks c implements, in call order.
func Hooks(c Check) []string {
	var hooks []string
	if _, ok := c.(DocumentStarter); ok {
		hooks = append(hooks, HookStartDocument)
	}
	if _, ok := c.(NodeVisitor); ok {
		hooks = append(hooks, HookVisitNode)
	}
	if _, ok := c.(NodeLeaver); ok {
		hooks = append(hooks, HookLeaveNode)
	}
	if _, ok := c.(DocumentEnder); ok {
		hooks = append(hooks, HookEndDocument)
	}
	return hooks
}
