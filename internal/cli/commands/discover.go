package commands

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/leapweb/internal/cli/output"
	"github.com/leapstack-labs/leapweb/pkg/source"
	"github.com/spf13/cobra"
)

// NewDiscoverCommand creates the discover command.
func NewDiscoverCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover [paths...]",
		Short: "List the files lint would analyze",
		Long: `List the files selected by the include and exclude patterns.

Useful to check leapweb.yaml patterns before running lint.

Output adapts to environment:
  - Terminal: Styled summary with success indicator
  - Piped/Scripted: Markdown format (agent-friendly)`,
		Example: `  # List files under the current directory
  leapweb discover

  # List files under a web root
  leapweb discover src/main/webapp

  # Output as JSON
  leapweb discover --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscover(cmd, args)
		},
	}

	return cmd
}

func runDiscover(cmd *cobra.Command, roots []string) error {
	cmdCtx := NewCommandContext(cmd, "")
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	charset, err := source.ResolveCharset(cfg.Charset)
	if err != nil {
		return err
	}

	paths, err := newFileSelector(cfg.Include, cfg.Exclude).Discover(roots)
	if err != nil {
		return err
	}

	files := make([]output.DiscoverFile, len(paths))
	summary := output.DiscoverSummary{
		TotalFiles: len(paths),
		ByKind:     make(map[string]int),
		Charset:    charset.Name(),
	}
	for i, p := range paths {
		kind := fileKind(p)
		files[i] = output.DiscoverFile{Path: p, Kind: kind}
		summary.ByKind[kind]++
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(output.DiscoverOutput{Files: files, Summary: summary})
	case output.ModeMarkdown:
		return discoverMarkdown(r, files, summary)
	default:
		return discoverText(r, files, summary)
	}
}

// fileKind names a file by extension, without the dot.
func fileKind(p string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(p)), ".")
	if ext == "" {
		return "other"
	}
	return ext
}

func kindCounts(summary output.DiscoverSummary) string {
	kinds := make([]string, 0, len(summary.ByKind))
	for k := range summary.ByKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = fmt.Sprintf("%d %s", summary.ByKind[k], k)
	}
	return strings.Join(parts, ", ")
}

// discoverText outputs discovery results in styled text format.
func discoverText(r *output.Renderer, files []output.DiscoverFile, summary output.DiscoverSummary) error {
	for _, f := range files {
		r.Println(r.Styles().FilePath.Render(f.Path))
	}
	if len(files) > 0 {
		r.Println("")
	}
	r.Success(fmt.Sprintf("Discovered %d files", summary.TotalFiles))
	if summary.TotalFiles > 0 {
		r.Muted(fmt.Sprintf("%s (charset %s)", kindCounts(summary), summary.Charset))
	}
	return nil
}

// discoverMarkdown outputs discovery results in markdown format.
func discoverMarkdown(r *output.Renderer, files []output.DiscoverFile, summary output.DiscoverSummary) error {
	r.Println(output.FormatHeader(1, "Discovery Results"))
	r.Println("")
	r.Println(output.FormatKeyValue("Files", fmt.Sprintf("%d", summary.TotalFiles)))
	if summary.TotalFiles > 0 {
		r.Println(output.FormatKeyValue("Kinds", kindCounts(summary)))
	}
	r.Println(output.FormatKeyValue("Charset", summary.Charset))
	r.Println("")

	if len(files) > 0 {
		r.Println(output.FormatHeader(2, "Files"))
		for _, f := range files {
			r.Printf("- %s\n", f.Path)
		}
	}

	return nil
}
