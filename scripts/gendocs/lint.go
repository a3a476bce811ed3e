package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/leapweb/pkg/lint"
	_ "github.com/leapstack-labs/leapweb/pkg/lint/rules"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"format": "Rules about the physical layout of source lines.",
	"header": "Rules about copyright and license headers.",
	"jsp":    "Rules about JSP directives and constructs.",
}

var groupTitle = cases.Title(language.English)

// generateLintDocs writes an index page and one page per rule. Page names
// follow lint.BuildDocURL so issue links resolve.
func generateLintDocs(outDir string) error {
	log.Printf("Generating lint docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := lint.GetAll()

	if err := generateLintIndex(outDir, rules); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, rule := range rules {
		name := rulePageName(rule.ID)
		if err := generateRulePage(outDir, rule); err != nil {
			return fmt.Errorf("failed to generate %s: %w", name, err)
		}
		log.Printf("  Generated %s", name)
	}

	return nil
}

func rulePageName(id string) string {
	return strings.ToLower(id) + ".md"
}

// generateLintIndex generates the rule overview page.
func generateLintIndex(outDir string, rules []lint.RuleDef) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Lint Rules", "Markup lint rules for leapweb")
	w.GeneratedMarker()

	w.Header(1, "Lint Rules")
	w.Paragraph(fmt.Sprintf("leapweb includes **%d rules**. Each rule reports issues with the line they "+
		"apply to; line 0 means the whole file.", len(rules)))

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "Critical issue that should be fixed"},
			{InlineCode("warning"), "Potential issue that should be reviewed"},
			{InlineCode("info"), "Informational feedback"},
			{InlineCode("hint"), "Suggestion for improvement"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules can be configured in `leapweb.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled:
    - MultiplePageDirectivesCheck   # disable rule
  severity:
    HeaderCheck: error              # override severity
  rules:
    MaxLineLengthCheck:
      maximumLineLength: 100        # rule-specific option`)

	grouped := groupRules(rules)
	groups := make([]string, 0, len(grouped))
	for g := range grouped {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	for _, group := range groups {
		w.Header(2, groupTitle.String(group))
		if desc, ok := groupDescriptions[group]; ok {
			w.Paragraph(desc)
		}

		var rows [][]string
		for _, rule := range grouped[group] {
			link := fmt.Sprintf("[%s](%s)", InlineCode(rule.ID), rulePageName(rule.ID))
			rows = append(rows, []string{link, rule.Name, InlineCode(rule.Severity.String()), cleanDescription(rule.Description)})
		}
		w.Table([]string{"Rule", "Name", "Severity", "Description"}, rows)
	}

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// groupRules organizes rules by their Group field, sorted by ID.
func groupRules(rules []lint.RuleDef) map[string][]lint.RuleDef {
	grouped := make(map[string][]lint.RuleDef)
	for _, r := range rules {
		grouped[r.Group] = append(grouped[r.Group], r)
	}
	for group := range grouped {
		sort.Slice(grouped[group], func(i, j int) bool {
			return grouped[group][i].ID < grouped[group][j].ID
		})
	}
	return grouped
}

// generateRulePage writes the documentation page of a single rule.
func generateRulePage(outDir string, rule lint.RuleDef) error {
	w := NewMarkdownWriter()
	info := rule.Info()

	w.Frontmatter(rule.ID, rule.Description)
	w.GeneratedMarker()

	w.Header(1, fmt.Sprintf("%s - %s", rule.ID, rule.Name))

	w.Line(fmt.Sprintf("%s %s | %s %s", Bold("Group:"), groupTitle.String(rule.Group),
		Bold("Severity:"), InlineCode(rule.Severity.String())))
	w.Newline()

	w.Paragraph(cleanDescription(rule.Description))

	if len(info.Hooks) > 0 {
		hooks := make([]string, len(info.Hooks))
		for i, h := range info.Hooks {
			hooks[i] = InlineCode(h)
		}
		w.Paragraph(Bold("Hooks:") + " " + strings.Join(hooks, ", "))
	}

	if rule.Rationale != "" {
		w.Header(2, "Why This Matters")
		w.Paragraph(strings.TrimSpace(rule.Rationale))
	}

	if rule.BadExample != "" {
		w.Header(2, "Bad")
		w.CodeBlock("html", rule.BadExample)
	}

	if rule.GoodExample != "" {
		w.Header(2, "Good")
		w.CodeBlock("html", rule.GoodExample)
	}

	if rule.Fix != "" {
		w.Header(2, "How to Fix")
		w.Paragraph(strings.TrimSpace(rule.Fix))
	}

	if len(rule.Params) > 0 {
		w.Header(2, "Configuration")
		var rows [][]string
		for _, p := range rule.Params {
			rows = append(rows, []string{InlineCode(p.Key), InlineCode(fmt.Sprintf("%#v", p.Default)), p.Description})
		}
		w.Table([]string{"Option", "Default", "Description"}, rows)
	}

	return os.WriteFile(filepath.Join(outDir, rulePageName(rule.ID)), w.Bytes(), 0600)
}
