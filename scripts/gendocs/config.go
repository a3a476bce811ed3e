package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapweb/internal/cli/config"
)

// generateConfigDocs generates the leapweb.yaml reference.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := generateConfigurationDoc(outDir); err != nil {
		return fmt.Errorf("failed to generate configuration.md: %w", err)
	}
	log.Printf("  Generated configuration.md")

	return nil
}

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
	Env         bool // settable through LEAPWEB_<NAME>
}

// configSchema returns the configuration schema definition.
// This is based on internal/cli/config/types.go Config.
func configSchema() []ConfigField {
	def := config.Default()
	return []ConfigField{
		{Name: "include", Type: "[]string", Default: strings.Join(def.Include, ", "), Description: "Glob patterns of files to lint", Env: true},
		{Name: "exclude", Type: "[]string", Description: "Glob patterns of files and directories to skip", Env: true},
		{Name: "charset", Type: "string", Default: def.Charset, Description: "Charset of source files", Env: true},
		{Name: "jobs", Type: "int", Default: strconv.Itoa(def.Jobs), Description: "Files analyzed in parallel (0 = number of CPUs)", Env: true},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Enable debug logging", Env: true},
		{Name: "output", Type: "string", Default: def.OutputFormat, Description: "Output format: auto, text, markdown, json", Env: true},
		{Name: "lint.disabled", Type: "[]string", Description: "Rule IDs to disable"},
		{Name: "lint.severity", Type: "map[string]string", Description: "Severity override per rule ID"},
		{Name: "lint.rules", Type: "map[string]map[string]any", Description: "Options per rule ID"},
	}
}

// generateConfigurationDoc generates the configuration reference page.
func generateConfigurationDoc(outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "leapweb configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("leapweb is configured via %s (or %s) in your project root. "+
		"The file is searched upward from the working directory; %s selects one explicitly.",
		InlineCode(config.ConfigFileNames[0]), InlineCode(config.ConfigFileNames[1]), InlineCode("--config")))

	w.Header(2, "Fields")
	headers := []string{"Field", "Type", "Default", "Description"}
	var rows [][]string
	for _, f := range configSchema() {
		defVal := f.Default
		if defVal == "" {
			defVal = "-"
		}
		rows = append(rows, []string{InlineCode(f.Name), f.Type, InlineCode(defVal), f.Description})
	}
	w.Table(headers, rows)

	w.Header(2, "Patterns")
	w.Paragraph("Include and exclude patterns use Go " + InlineCode("path.Match") + " syntax against the " +
		"slash-separated path relative to the linted directory. A pattern without a slash also matches " +
		"the base name, so " + InlineCode("*.jsp") + " selects JSP files at any depth. Hidden directories are skipped.")

	w.Header(2, "Example")
	w.CodeBlock("yaml", `include:
  - "*.html"
  - "*.jsp"
exclude:
  - node_modules
charset: utf-8
lint:
  disabled:
    - MaxLineLengthCheck
  severity:
    HeaderCheck: error
  rules:
    HeaderCheck:
      headerFormat: "<!-- Copyright (c) ACME -->"`)

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}
