// Package core defines the shared language of the LeapWeb system.
//
// This package contains:
//   - Severity levels and parsing
//   - Rule metadata (RuleInfo)
//   - Configuration types (LintConfig, RuleOptions)
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
