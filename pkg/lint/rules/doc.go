// Package rules provides the markup lint rule implementations for LeapWeb.
//
// Rules are organized by category:
//   - header: file header compliance (HeaderCheck)
//   - jsp: JSP directive usage (MultiplePageDirectivesCheck)
//   - format: physical layout of files (MaxLineLengthCheck)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/leapstack-labs/leapweb/pkg/lint/rules"
//
// Individual rule categories can also be imported:
//
//	import _ "github.com/leapstack-labs/leapweb/pkg/lint/rules/header"
package rules
