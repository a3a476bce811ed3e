package lint

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/leapweb/pkg/core"
)

// Param declares an option a rule accepts.
type Param struct {
	Key         string
	Default     any
	Description string
}

// RuleDef is a rule definition: metadata plus a factory for its check.
type RuleDef struct {
	ID          string        // Unique identifier, e.g., "HeaderCheck"
	Name        string        // Human-readable name, e.g., "header.copyright"
	Group       string        // Category, e.g., "header", "jsp", "format"
	Description string        // Human-readable description
	Severity    core.Severity // Default severity
	Params      []Param       // Declared options and their defaults
	New         func() Check  // Returns an unconfigured check

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Markup showing the anti-pattern
	GoodExample string // Markup showing the correct pattern
	Fix         string // How to fix violations (when not obvious)
}

// ConfigKeys returns the option keys the rule accepts.
func (d RuleDef) ConfigKeys() []string {
	keys := make([]string, 0, len(d.Params))
	for _, p := range d.Params {
		keys = append(keys, p.Key)
	}
	return keys
}

// Defaults returns the declared option defaults.
func (d RuleDef) Defaults() Options {
	opts := make(Options, len(d.Params))
	for _, p := range d.Params {
		opts[p.Key] = p.Default
	}
	return opts
}

// Info extracts metadata for documentation/tooling.
func (d RuleDef) Info() core.RuleInfo {
	info := core.RuleInfo{
		ID:              d.ID,
		Name:            d.Name,
		Group:           d.Group,
		Description:     d.Description,
		DefaultSeverity: d.Severity,
		ConfigKeys:      d.ConfigKeys(),
		Rationale:       d.Rationale,
		BadExample:      d.BadExample,
		GoodExample:     d.GoodExample,
		Fix:             d.Fix,
	}
	if len(d.Params) > 0 {
		info.Defaults = d.Defaults()
	}
	if d.New != nil {
		info.Hooks = Hooks(d.New())
	}
	return info
}

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	rules: make(map[string]RuleDef),
}

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef // keyed by ID
}

// Register adds a rule to the global registry, replacing any rule with the
// same ID. Call this from init() functions in rule packages.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID] = rule
}

// GetAll returns all registered rules sorted by ID.
func GetAll() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sortRules(rules)
	return rules
}

// GetByID returns a rule by its ID.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[id]
	return rule, ok
}

// GetByGroup returns all rules in a specific group sorted by ID.
func GetByGroup(group string) []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []RuleDef
	for _, rule := range globalRegistry.rules {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	sortRules(rules)
	return rules
}

// AllRules returns metadata for all registered rules sorted by ID.
func AllRules() []core.RuleInfo {
	rules := GetAll()
	infos := make([]core.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, rule.Info())
	}
	return infos
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]RuleDef)
}

func sortRules(rules []RuleDef) {
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})
}
