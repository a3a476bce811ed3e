// Package lint runs rule checks over markup files.
//
// # Check lifecycle
//
// A check is created from its RuleDef, configured once with the merged
// rule options and initialized once:
//
//	Configure(opts) -> Init() -> per file: StartDocument -> VisitNode/LeaveNode ... -> EndDocument
//
// Only Configure and Init are required. The per-file hooks are optional
// capabilities (DocumentStarter, NodeVisitor, NodeLeaver, DocumentEnder);
// the Analyzer discovers them with type assertions and never calls a hook a
// check does not implement. Embed CheckBase to get no-op Configure and Init.
//
// Configured checks are shared by every file an Analyzer processes. A check
// that keeps per-file state in its fields implements Cloner and receives a
// fresh copy for each file.
//
// # Rule Registration
//
// Rules register themselves via init() functions when their packages are
// imported:
//
//	import _ "github.com/leapstack-labs/leapweb/pkg/lint/rules"
//
// # Configuration
//
// Use Config to control which rules run, their severity and options:
//
//	config := lint.NewConfig()
//	config.Disable("MaxLineLengthCheck")
//	config.SetSeverity("HeaderCheck", core.SeverityError)
//	config.SetRuleOptions("HeaderCheck", lint.Options{"headerFormat": "<!-- (c) ACME -->"})
//
// # Errors
//
// NewAnalyzer returns a *ConfigurationError when a check rejects its options
// or fails to initialize. AnalyzeFile returns an *IOError when a file cannot
// be read or a check fails to start on it. Neither error stops other files.
package lint
