package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/leapweb/internal/cli/config"
	"github.com/leapstack-labs/leapweb/internal/cli/output"
	"github.com/leapstack-labs/leapweb/internal/watch"
	"github.com/leapstack-labs/leapweb/pkg/core"
	"github.com/leapstack-labs/leapweb/pkg/lint"
	_ "github.com/leapstack-labs/leapweb/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/leapweb/pkg/source"
	"github.com/spf13/cobra"
)

// ErrLintIssues is returned when issues at or above the threshold were found.
var ErrLintIssues = errors.New("lint issues found")

// LintOptions holds options for the lint command.
type LintOptions struct {
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
	Watch    bool     // Re-lint on change
}

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	opts := &LintOptions{}
	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Run lint rules on markup files",
		Long: `Analyze HTML and JSP files for rule violations.

Directories are walked recursively; files are selected with the include and
exclude patterns from leapweb.yaml. Files named explicitly are always linted
unless excluded. Rules can be configured in leapweb.yaml.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Lint the current directory
  leapweb lint

  # Lint specific paths
  leapweb lint src/main/webapp index.html

  # Output as JSON
  leapweb lint --format json

  # Disable specific rules
  leapweb lint --disable MaxLineLengthCheck

  # Only run the header check
  leapweb lint --rule HeaderCheck

  # Report informational issues too
  leapweb lint --severity info

  # Re-lint whenever a file changes
  leapweb lint --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "warning", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch for changes and re-lint")

	return cmd
}

func runLint(cmd *cobra.Command, paths []string, opts *LintOptions) error {
	if _, err := output.ParseMode(opts.Format); err != nil {
		return err
	}
	cmdCtx := NewCommandContext(cmd, opts.Format)

	threshold, ok := core.ParseSeverity(opts.Severity)
	if !ok {
		return fmt.Errorf("invalid severity %q: must be one of error, warning, info, hint", opts.Severity)
	}

	l, err := newLinter(cmdCtx, opts, threshold)
	if err != nil {
		return err
	}

	if opts.Watch {
		return l.watch(cmd.Context(), paths)
	}

	summary, err := l.lint(cmd.Context(), paths)
	if err != nil {
		return err
	}
	return summaryError(summary)
}

// linter holds everything needed to lint a set of roots repeatedly.
type linter struct {
	selector  *fileSelector
	runner    *lint.Runner
	charset   source.Charset
	threshold core.Severity
	r         *output.Renderer
	logger    *slog.Logger
}

func newLinter(cmdCtx *CommandContext, opts *LintOptions, threshold core.Severity) (*linter, error) {
	cfg := cmdCtx.Cfg

	lintCfg, err := buildLintConfig(cfg, opts)
	if err != nil {
		return nil, err
	}

	charset, err := source.ResolveCharset(cfg.Charset)
	if err != nil {
		return nil, err
	}

	analyzer, err := lint.NewAnalyzer(lintCfg, cmdCtx.Logger)
	if err != nil {
		return nil, err
	}
	if len(analyzer.Rules()) == 0 {
		cmdCtx.Renderer.Warning("no lint rules enabled")
	}

	return &linter{
		selector:  newFileSelector(cfg.Include, cfg.Exclude),
		runner:    lint.NewRunner(analyzer, cfg.Jobs, cmdCtx.Logger),
		charset:   charset,
		threshold: threshold,
		r:         cmdCtx.Renderer,
		logger:    cmdCtx.Logger,
	}, nil
}

func buildLintConfig(cfg *config.Config, opts *LintOptions) (*lint.Config, error) {
	// Apply project config first (lower precedence)
	var projectLint *core.LintConfig
	if cfg != nil {
		projectLint = cfg.Lint
	}
	lintCfg, err := lint.FromLintConfig(projectLint)
	if err != nil {
		return nil, err
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		if id = strings.TrimSpace(id); id != "" {
			lintCfg.Disable(id)
		}
	}

	// If --rule specified, disable all others
	for _, id := range opts.Rules {
		if id = strings.TrimSpace(id); id != "" {
			if _, ok := lint.GetByID(id); !ok {
				return nil, fmt.Errorf("unknown rule %q\nHint: run 'leapweb rules' to list available rules", id)
			}
			lintCfg.Only(id)
		}
	}

	return lintCfg, nil
}

// lint analyzes every file selected under roots and renders the results.
func (l *linter) lint(ctx context.Context, roots []string) (output.LintSummary, error) {
	paths, err := l.selector.Discover(roots)
	if err != nil {
		return output.LintSummary{}, err
	}

	files := make([]*source.File, len(paths))
	for i, p := range paths {
		files[i] = source.Open(p, l.charset)
	}
	// Each run gets an ID so watch-mode reruns can be told apart in logs.
	logger := l.logger.With("run", uuid.NewString())
	l.r.StatusLine(fmt.Sprintf("Linting %d files...", len(files)))
	logger.Debug("linting", "files", len(files), "charset", l.charset.Name())
	start := time.Now()

	results, err := l.runner.Run(ctx, files)
	if err != nil {
		return output.LintSummary{}, err
	}

	results = filterBySeverity(results, l.threshold)
	summary := renderLintResults(l.r, results)
	logger.Debug("lint finished", "issues", summary.TotalIssues, "failed", summary.FilesFailed,
		"duration", time.Since(start).Round(time.Millisecond))
	return summary, nil
}

// watch lints once, then again after every batch of relevant changes.
func (l *linter) watch(ctx context.Context, roots []string) error {
	if len(roots) == 0 {
		roots = []string{"."}
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	w, err := watch.New(roots, watch.Options{
		Match:  func(p string) bool { return l.selector.Matches(roots, p) },
		Logger: l.logger,
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	l.relint(ctx, roots)
	return w.Run(ctx, func(ctx context.Context, changed []string) {
		l.r.StatusLine(fmt.Sprintf("Change detected: %s", strings.Join(changed, ", ")))
		l.relint(ctx, roots)
	})
}

func (l *linter) relint(ctx context.Context, roots []string) {
	if _, err := l.lint(ctx, roots); err != nil && ctx.Err() == nil {
		l.r.Error(err.Error())
	}
	l.r.StatusLine("Watching for changes. Press Ctrl+C to stop.")
}

func summaryError(summary output.LintSummary) error {
	if summary.TotalIssues > 0 {
		return ErrLintIssues
	}
	if summary.FilesFailed > 0 {
		return fmt.Errorf("%d files could not be analyzed", summary.FilesFailed)
	}
	return nil
}

func filterBySeverity(results []lint.FileResult, threshold core.Severity) []lint.FileResult {
	filtered := make([]lint.FileResult, len(results))
	for i, res := range results {
		filtered[i] = lint.FileResult{Path: res.Path, Err: res.Err}
		for _, issue := range res.Issues {
			if issue.Severity <= threshold {
				filtered[i].Issues = append(filtered[i].Issues, issue)
			}
		}
	}
	return filtered
}

func summarize(results []lint.FileResult) output.LintSummary {
	summary := output.LintSummary{FilesAnalyzed: len(results)}
	for _, res := range results {
		if res.Err != nil {
			summary.FilesFailed++
		}
		summary.TotalIssues += len(res.Issues)
		for _, issue := range res.Issues {
			switch issue.Severity {
			case core.SeverityError:
				summary.Errors++
			case core.SeverityWarning:
				summary.Warnings++
			case core.SeverityInfo:
				summary.Info++
			case core.SeverityHint:
				summary.Hints++
			}
		}
	}
	return summary
}

func renderLintResults(r *output.Renderer, results []lint.FileResult) output.LintSummary {
	summary := summarize(results)

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.LintOutput{Summary: summary, Files: []output.LintFileResult{}}
		for _, res := range results {
			if len(res.Issues) == 0 && res.Err == nil {
				continue
			}
			fileResult := output.LintFileResult{Path: res.Path}
			if res.Err != nil {
				fileResult.Error = res.Err.Error()
			}
			for _, issue := range res.Issues {
				fileResult.Diagnostics = append(fileResult.Diagnostics, output.LintDiagnostic{
					RuleID:           issue.RuleID,
					Severity:         issue.Severity.String(),
					Message:          issue.Message,
					Line:             issue.Line,
					DocumentationURL: issue.DocumentationURL,
				})
			}
			jsonOutput.Files = append(jsonOutput.Files, fileResult)
		}
		_ = r.JSON(jsonOutput)
		return summary
	}

	styles := r.Styles()
	for _, res := range results {
		if res.Err != nil {
			r.Warning(res.Err.Error())
		}
		if len(res.Issues) == 0 {
			continue
		}
		r.Println(styles.FilePath.Render(res.Path))
		for _, issue := range res.Issues {
			loc := "-"
			if !issue.IsFileLevel() {
				loc = strconv.Itoa(issue.Line)
			}
			r.Printf("  %s  %s  %s  %s\n",
				styles.Muted.Render(fmt.Sprintf("%-5s", loc)),
				severityStyle(r, issue.Severity),
				styles.Bold.Render(issue.RuleID),
				issue.Message,
			)
		}
		r.Println("")
	}

	if summary.TotalIssues == 0 && summary.FilesFailed == 0 {
		r.Success(fmt.Sprintf("No lint issues found in %d files", summary.FilesAnalyzed))
		return summary
	}

	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	if summary.FilesFailed > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d files failed", summary.FilesFailed))
	}
	r.Printf("Summary: %s in %d files\n", strings.Join(summaryParts, ", "), summary.FilesAnalyzed)

	return summary
}

func severityStyle(r *output.Renderer, sev core.Severity) string {
	switch sev {
	case core.SeverityError:
		return r.Styles().Error.Render("error  ")
	case core.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case core.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case core.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
