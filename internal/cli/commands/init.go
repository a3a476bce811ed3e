package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/leapweb/internal/cli/config"
	"github.com/leapstack-labs/leapweb/pkg/lint"
	"github.com/leapstack-labs/leapweb/pkg/lint/rules/header"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// exampleHeader is the header carried by the example project's pages.
const exampleHeader = "<!-- Copyright (c) Example Corp. All rights reserved. -->"

const configPreamble = `# leapweb configuration
# Every rule is listed with its default options. See 'leapweb rules <rule-id>'.
`

// InitOptions holds options for the init command.
type InitOptions struct {
	Force      bool   // Overwrite an existing config
	Example    bool   // Also create an example web application
	HeaderFile string // Seed HeaderCheck.headerFormat from this file
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a leapweb.yaml configuration",
		Long: `Create a leapweb.yaml configuration with default settings.

The generated file lists the include patterns, the source charset and every
registered rule with its default options, ready to edit.

Use --example to also create a small web application with HTML and JSP pages,
some of which break the default rules.`,
		Example: `  # Initialize in current directory
  leapweb init

  # Use an existing license header for HeaderCheck
  leapweb init --header LICENSE_HEADER.txt

  # Initialize a new directory with an example application
  leapweb init my-site --example

  # Force overwrite existing config
  leapweb init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&opts.Example, "example", false, "Create an example web application")
	cmd.Flags().StringVar(&opts.HeaderFile, "header", "", "File whose content becomes the required header")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, opts *InitOptions) error {
	r := NewCommandContext(cmd, "").Renderer

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, config.ConfigFileNames[0])
	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", config.ConfigFileNames[0])
	}

	headerFormat := ""
	switch {
	case opts.HeaderFile != "":
		content, err := os.ReadFile(opts.HeaderFile)
		if err != nil {
			return fmt.Errorf("failed to read header file: %w", err)
		}
		headerFormat = string(content)
	case opts.Example:
		headerFormat = exampleHeader
	}

	content, err := starterConfig(headerFormat)
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	r.Success("Created " + configPath)

	if opts.Example {
		if err := copyTemplate("example", dir, opts.Force); err != nil {
			return fmt.Errorf("failed to create example: %w", err)
		}
		files, err := listTemplateFiles("example")
		if err != nil {
			return err
		}
		r.Println("")
		r.Header(2, "Example application")
		for _, f := range files {
			r.Println("  " + filepath.Join(dir, filepath.FromSlash(f)))
		}
	}

	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Set lint.rules.HeaderCheck.headerFormat to your license header")
	r.Println("  2. Run 'leapweb lint' to check your pages")
	r.Println("  3. Run 'leapweb rules' to see all rules")

	return nil
}

// starterConfig renders leapweb.yaml with defaults for every registered rule.
func starterConfig(headerFormat string) ([]byte, error) {
	cfg := config.Default()
	cfg.OutputFormat = ""
	cfg.Lint = &config.LintConfig{Rules: make(map[string]config.RuleOptions)}

	for _, def := range lint.GetAll() {
		if len(def.Params) == 0 {
			continue
		}
		cfg.Lint.Rules[def.ID] = config.RuleOptions(def.Defaults())
	}
	if opts, ok := cfg.Lint.Rules[header.RuleID]; ok && headerFormat != "" {
		opts[header.OptHeaderFormat] = headerFormat
	}

	var buf bytes.Buffer
	buf.WriteString(configPreamble)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
