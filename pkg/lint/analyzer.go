package lint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leapweb/pkg/core"
	"github.com/leapstack-labs/leapweb/pkg/markup"
	"github.com/leapstack-labs/leapweb/pkg/source"
)

// Analyzer runs configured checks against markup files. It is safe for
// concurrent use once constructed.
type Analyzer struct {
	config *Config
	logger *slog.Logger
	checks []configuredCheck
}

type configuredCheck struct {
	def      RuleDef
	check    Check
	severity core.Severity
}

// NewAnalyzer creates an analyzer over every registered rule not disabled
// by config. Each check is configured and initialized here; the first
// failure is returned as a *ConfigurationError.
func NewAnalyzer(config *Config, logger *slog.Logger) (*Analyzer, error) {
	return NewAnalyzerWithRules(config, logger, GetAll())
}

// NewAnalyzerWithRules is NewAnalyzer over an explicit rule set. Rules run
// in the order given.
func NewAnalyzerWithRules(config *Config, logger *slog.Logger, rules []RuleDef) (*Analyzer, error) {
	if config == nil {
		config = NewConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &Analyzer{config: config, logger: logger}
	for _, def := range rules {
		if config.IsDisabled(def.ID) {
			logger.Debug("rule disabled", "rule", def.ID)
			continue
		}
		check, err := setupCheck(def, config.GetRuleOptions(def.ID))
		if err != nil {
			return nil, err
		}
		a.checks = append(a.checks, configuredCheck{
			def:      def,
			check:    check,
			severity: config.GetSeverity(def.ID, def.Severity),
		})
	}
	return a, nil
}

func setupCheck(def RuleDef, userOpts Options) (Check, error) {
	if def.New == nil {
		return nil, &ConfigurationError{RuleID: def.ID, Err: errors.New("rule has no check factory")}
	}
	check := def.New()
	if err := check.Configure(MergeOptions(def.Defaults(), userOpts)); err != nil {
		return nil, &ConfigurationError{RuleID: def.ID, Err: err}
	}
	if err := check.Init(); err != nil {
		return nil, &ConfigurationError{RuleID: def.ID, Err: err}
	}
	return check, nil
}

// Rules returns the definitions of the active rules in run order.
func (a *Analyzer) Rules() []RuleDef {
	defs := make([]RuleDef, len(a.checks))
	for i, cc := range a.checks {
		defs[i] = cc.def
	}
	return defs
}

// fileCheck is a check bound to one file.
type fileCheck struct {
	check Check
	ctx   *Context
}

// AnalyzeFile parses file once and runs every active check over it: start
// hooks, a single pre-order walk dispatching node hooks, then end hooks.
// Cancellation, a read failure or a StartDocument error aborts this file
// with an *IOError.
func (a *Analyzer) AnalyzeFile(ctx context.Context, file *source.File) ([]Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, &IOError{Path: file.Path(), Err: err}
	}

	r, err := file.Reader()
	if err != nil {
		return nil, &IOError{Path: file.Path(), Err: err}
	}
	root, err := markup.Parse(r)
	if err != nil {
		return nil, &IOError{Path: file.Path(), Err: err}
	}

	sink := NewIssueSink()
	checks := make([]fileCheck, len(a.checks))
	for i, cc := range a.checks {
		check := cc.check
		if cl, ok := check.(Cloner); ok {
			check = cl.Clone()
		}
		checks[i] = fileCheck{
			check: check,
			ctx:   NewContext(cc.def.ID, cc.severity, file, sink),
		}
	}

	for _, fc := range checks {
		starter, ok := fc.check.(DocumentStarter)
		if !ok {
			continue
		}
		if err := starter.StartDocument(fc.ctx); err != nil {
			var ioErr *IOError
			if errors.As(err, &ioErr) {
				return nil, ioErr
			}
			return nil, &IOError{Path: file.Path(), RuleID: fc.ctx.RuleID(), Err: err}
		}
	}

	markup.Traverse(root, newDispatcher(checks))

	for _, fc := range checks {
		if ender, ok := fc.check.(DocumentEnder); ok {
			ender.EndDocument(fc.ctx)
		}
	}

	issues := sink.Issues()
	a.logger.Debug("analyzed file", "path", file.Path(), "issues", len(issues))
	return issues, nil
}

// AnalyzeString analyzes in-memory UTF-8 content. name is used for
// reporting only.
func (a *Analyzer) AnalyzeString(name, content string) ([]Issue, error) {
	issues, err := a.AnalyzeFile(context.Background(), source.FromString(name, content))
	if err != nil {
		return nil, fmt.Errorf("analyze %s: %w", name, err)
	}
	return issues, nil
}

// dispatcher fans one traversal out to every check with node hooks.
type dispatcher struct {
	visitors []nodeHook
	leavers  []nodeHook
}

type nodeHook struct {
	ctx   *Context
	visit func(*Context, *markup.Node)
}

func newDispatcher(checks []fileCheck) *dispatcher {
	d := &dispatcher{}
	for _, fc := range checks {
		if v, ok := fc.check.(NodeVisitor); ok {
			d.visitors = append(d.visitors, nodeHook{ctx: fc.ctx, visit: v.VisitNode})
		}
		if l, ok := fc.check.(NodeLeaver); ok {
			d.leavers = append(d.leavers, nodeHook{ctx: fc.ctx, visit: l.LeaveNode})
		}
	}
	return d
}

func (d *dispatcher) Enter(n *markup.Node) bool {
	for _, h := range d.visitors {
		h.visit(h.ctx, n)
	}
	return true
}

func (d *dispatcher) Leave(n *markup.Node) {
	for _, h := range d.leavers {
		h.visit(h.ctx, n)
	}
}
