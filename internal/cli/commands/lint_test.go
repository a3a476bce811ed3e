package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapweb/internal/cli/config"
	"github.com/leapstack-labs/leapweb/internal/cli/output"
	"github.com/leapstack-labs/leapweb/internal/cli/testutil"
	"github.com/leapstack-labs/leapweb/pkg/core"
	"github.com/leapstack-labs/leapweb/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const copyrightHeader = testutil.ProjectHeader

// setupProject writes files (slash-separated relative paths) and an optional
// leapweb.yaml into a temp dir, loads its config and changes into it.
func setupProject(t *testing.T, cfgYAML string, files map[string]string) string {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	dir := t.TempDir()
	testutil.WriteFiles(t, dir, files)
	cfgPath := ""
	if cfgYAML != "" {
		cfgPath = filepath.Join(dir, "leapweb.yaml")
		require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0600))
	}
	t.Chdir(dir)

	_, err := config.LoadConfig(cfgPath, nil)
	require.NoError(t, err)
	return dir
}

func runLintCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewLintCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func decodeLintOutput(t *testing.T, s string) output.LintOutput {
	t.Helper()
	var doc output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(s), &doc), "output: %s", s)
	return doc
}

const headerConfig = `lint:
  rules:
    HeaderCheck:
      headerFormat: "` + copyrightHeader + `"
`

func TestNewLintCommand(t *testing.T) {
	cmd := NewLintCommand()

	assert.Equal(t, "lint [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	// Verify flags exist
	flags := []string{"format", "disable", "severity", "rule", "watch"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestBuildLintConfig(t *testing.T) {
	t.Run("empty options", func(t *testing.T) {
		cfg, err := buildLintConfig(nil, &LintOptions{})
		require.NoError(t, err)
		assert.False(t, cfg.IsDisabled("HeaderCheck"))
	})

	t.Run("disable rules", func(t *testing.T) {
		cfg, err := buildLintConfig(nil, &LintOptions{Disable: []string{" HeaderCheck ", "MaxLineLengthCheck"}})
		require.NoError(t, err)
		assert.True(t, cfg.IsDisabled("HeaderCheck"))
		assert.True(t, cfg.IsDisabled("MaxLineLengthCheck"))
		assert.False(t, cfg.IsDisabled("MultiplePageDirectivesCheck"))
	})

	t.Run("enable only specific rules", func(t *testing.T) {
		cfg, err := buildLintConfig(nil, &LintOptions{Rules: []string{"HeaderCheck"}})
		require.NoError(t, err)
		assert.False(t, cfg.IsDisabled("HeaderCheck"))
		assert.True(t, cfg.IsDisabled("MaxLineLengthCheck"))
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := buildLintConfig(nil, &LintOptions{Rules: []string{"NoSuchCheck"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown rule "NoSuchCheck"`)
	})

	t.Run("project config then CLI", func(t *testing.T) {
		projectCfg := &config.Config{Lint: &config.LintConfig{
			Disabled: []string{"MultiplePageDirectivesCheck"},
			Severity: map[string]string{"HeaderCheck": "error"},
			Rules:    map[string]config.RuleOptions{"MaxLineLengthCheck": {"maximumLineLength": 80}},
		}}
		cfg, err := buildLintConfig(projectCfg, &LintOptions{Disable: []string{"HeaderCheck"}})
		require.NoError(t, err)

		assert.True(t, cfg.IsDisabled("MultiplePageDirectivesCheck"))
		assert.True(t, cfg.IsDisabled("HeaderCheck"))
		assert.Equal(t, core.SeverityError, cfg.GetSeverity("HeaderCheck", core.SeverityWarning))
		assert.Equal(t, 80, cfg.GetRuleOptions("MaxLineLengthCheck")["maximumLineLength"])
	})

	t.Run("invalid project severity", func(t *testing.T) {
		projectCfg := &config.Config{Lint: &config.LintConfig{Severity: map[string]string{"HeaderCheck": "loud"}}}
		_, err := buildLintConfig(projectCfg, &LintOptions{})
		require.Error(t, err)
	})
}

func TestLintCommand_Clean(t *testing.T) {
	setupProject(t, headerConfig, map[string]string{
		"index.html": copyrightHeader + "\n<html></html>\n",
	})

	out, _, err := runLintCmd(t, "--format", "json")
	require.NoError(t, err)

	doc := decodeLintOutput(t, out)
	assert.Equal(t, 1, doc.Summary.FilesAnalyzed)
	assert.Equal(t, 0, doc.Summary.TotalIssues)
	assert.Empty(t, doc.Files)
}

func TestLintCommand_MissingHeader(t *testing.T) {
	setupProject(t, headerConfig, map[string]string{
		"ok.html":         copyrightHeader + "\n<p>fine</p>\n",
		"pages/bad.jsp":   "<html></html>\n",
		"notes/readme.md": "not linted\n",
	})

	out, _, err := runLintCmd(t, "--format", "json")
	require.ErrorIs(t, err, ErrLintIssues)

	doc := decodeLintOutput(t, out)
	assert.Equal(t, 2, doc.Summary.FilesAnalyzed)
	assert.Equal(t, 1, doc.Summary.TotalIssues)
	assert.Equal(t, 1, doc.Summary.Warnings)

	require.Len(t, doc.Files, 1)
	assert.Equal(t, filepath.Join("pages", "bad.jsp"), doc.Files[0].Path)
	require.Len(t, doc.Files[0].Diagnostics, 1)
	diag := doc.Files[0].Diagnostics[0]
	assert.Equal(t, "HeaderCheck", diag.RuleID)
	assert.Equal(t, 0, diag.Line)
	assert.Equal(t, "warning", diag.Severity)
	assert.Equal(t, "Add or update the header of this file.", diag.Message)
	assert.Equal(t, lint.BuildDocURL("HeaderCheck"), diag.DocumentationURL)
}

func TestLintCommand_SeverityThreshold(t *testing.T) {
	long := strings.Repeat("x", 130)
	setupProject(t, "", map[string]string{"wide.html": long + "\n"})

	// MaxLineLengthCheck reports at info, below the default warning threshold.
	out, _, err := runLintCmd(t, "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, 0, decodeLintOutput(t, out).Summary.TotalIssues)

	out, _, err = runLintCmd(t, "--format", "json", "--severity", "info")
	require.ErrorIs(t, err, ErrLintIssues)
	doc := decodeLintOutput(t, out)
	require.Len(t, doc.Files, 1)
	assert.Equal(t, "MaxLineLengthCheck", doc.Files[0].Diagnostics[0].RuleID)
	assert.Equal(t, 1, doc.Files[0].Diagnostics[0].Line)
	assert.Equal(t, "Split this 130 characters long line (which is greater than 120 authorized).",
		doc.Files[0].Diagnostics[0].Message)
}

func TestLintCommand_PageDirectives(t *testing.T) {
	setupProject(t, "", map[string]string{
		"view.jsp": "<%@ page contentType=\"text/html\" %>\n<%@ page import=\"java.util.List\" %>\n<%@ page session=\"false\" %>\n",
	})

	out, _, err := runLintCmd(t, "--format", "json", "--rule", "MultiplePageDirectivesCheck")
	require.ErrorIs(t, err, ErrLintIssues)

	doc := decodeLintOutput(t, out)
	require.Len(t, doc.Files, 1)
	require.Len(t, doc.Files[0].Diagnostics, 1)
	assert.Equal(t, 3, doc.Files[0].Diagnostics[0].Line)
	assert.Equal(t, "Combine these 2 page directives into one.", doc.Files[0].Diagnostics[0].Message)
}

func TestLintCommand_MarkdownOutput(t *testing.T) {
	setupProject(t, headerConfig, map[string]string{"a.html": "<p></p>\n"})

	out, _, err := runLintCmd(t, "--format", "markdown")
	require.ErrorIs(t, err, ErrLintIssues)

	assert.Contains(t, out, "a.html")
	assert.Contains(t, out, "HeaderCheck")
	assert.Contains(t, out, "-    ")
	assert.Contains(t, out, "Summary: 1 issues, 1 warnings in 1 files")
	assert.NotContains(t, out, "\x1b[")
}

func TestLintCommand_ExplicitPaths(t *testing.T) {
	setupProject(t, headerConfig, map[string]string{
		"a.html":         "<p></p>\n",
		"sub/b.html":     "<p></p>\n",
		"sub/vendor.txt": "ignored\n",
	})

	out, _, err := runLintCmd(t, "--format", "json", "sub")
	require.ErrorIs(t, err, ErrLintIssues)
	doc := decodeLintOutput(t, out)
	assert.Equal(t, 1, doc.Summary.FilesAnalyzed)
	assert.Equal(t, filepath.Join("sub", "b.html"), doc.Files[0].Path)
}

func TestLintCommand_NoFiles(t *testing.T) {
	setupProject(t, "", nil)

	out, _, err := runLintCmd(t, "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "No lint issues found in 0 files")
}

func TestLintCommand_ConfigurationError(t *testing.T) {
	setupProject(t, `lint:
  rules:
    HeaderCheck:
      headerFormat: "(unclosed"
      isRegularExpression: true
`, map[string]string{"a.html": "<p></p>\n"})

	_, _, err := runLintCmd(t, "--format", "json")
	require.Error(t, err)

	var cfgErr *lint.ConfigurationError
	require.True(t, errors.As(err, &cfgErr), "got %T: %v", err, err)
	assert.Equal(t, "HeaderCheck", cfgErr.RuleID)
	assert.Contains(t, err.Error(), "[HeaderCheck] Unable to compile the regular expression: (unclosed")
}

func TestLintCommand_InvalidFlags(t *testing.T) {
	setupProject(t, "", nil)

	_, _, err := runLintCmd(t, "--severity", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid severity")

	_, _, err = runLintCmd(t, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")

	_, _, err = runLintCmd(t, "missing-dir")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot lint missing-dir")
}

func TestFilterBySeverity(t *testing.T) {
	results := []lint.FileResult{
		{Path: "a.html", Issues: []lint.Issue{
			{RuleID: "A", Severity: core.SeverityError},
			{RuleID: "B", Severity: core.SeverityInfo},
		}},
		{Path: "b.html", Err: errors.New("boom")},
	}

	filtered := filterBySeverity(results, core.SeverityWarning)
	require.Len(t, filtered, 2)
	require.Len(t, filtered[0].Issues, 1)
	assert.Equal(t, "A", filtered[0].Issues[0].RuleID)
	assert.Error(t, filtered[1].Err, "failed files are kept")
	assert.Len(t, results[0].Issues, 2, "input is not modified")
}

func TestSummarize(t *testing.T) {
	summary := summarize([]lint.FileResult{
		{Issues: []lint.Issue{{Severity: core.SeverityError}, {Severity: core.SeverityHint}}},
		{Issues: []lint.Issue{{Severity: core.SeverityWarning}, {Severity: core.SeverityInfo}}},
		{Err: errors.New("unreadable")},
	})

	assert.Equal(t, output.LintSummary{
		FilesAnalyzed: 3, FilesFailed: 1, TotalIssues: 4,
		Errors: 1, Warnings: 1, Info: 1, Hints: 1,
	}, summary)
}

func TestSummaryError(t *testing.T) {
	require.NoError(t, summaryError(output.LintSummary{FilesAnalyzed: 2}))
	require.ErrorIs(t, summaryError(output.LintSummary{TotalIssues: 1, FilesFailed: 1}), ErrLintIssues)

	err := summaryError(output.LintSummary{FilesFailed: 2})
	require.Error(t, err)
	assert.Equal(t, "2 files could not be analyzed", err.Error())
}

func TestLintCommand_TestProject(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	dir := testutil.SetupTestProject(t)
	t.Chdir(dir)
	_, err := config.LoadConfig("", nil)
	require.NoError(t, err)

	out, _, err := runLintCmd(t, "--format", "json")
	require.ErrorIs(t, err, ErrLintIssues)

	doc := decodeLintOutput(t, out)
	assert.Equal(t, 2, doc.Summary.FilesAnalyzed, "css is not selected")
	require.Len(t, doc.Files, 1)
	assert.Equal(t, filepath.Join("views", "home.jsp"), doc.Files[0].Path)
	assert.Len(t, doc.Files[0].Diagnostics, 2)
}

func TestRenderLintResults(t *testing.T) {
	results := []lint.FileResult{
		{Path: "clean.html"},
		{Path: "page.jsp", Issues: []lint.Issue{
			{RuleID: "HeaderCheck", Line: 0, Message: "Add or update the header of this file.", Severity: core.SeverityWarning},
			{RuleID: "MaxLineLengthCheck", Line: 12, Message: "too long", Severity: core.SeverityInfo},
		}},
		{Path: "broken.html", Err: &lint.IOError{Path: "broken.html", Err: os.ErrPermission}},
	}

	t.Run("text", func(t *testing.T) {
		tr := testutil.NewTestRendererText()
		summary := renderLintResults(tr.Renderer, results)

		assert.Equal(t, 2, summary.TotalIssues)
		assert.Equal(t, 1, summary.FilesFailed)
		out := tr.Output()
		assert.Contains(t, out, "page.jsp")
		assert.Contains(t, out, "HeaderCheck")
		assert.Contains(t, out, "12")
		assert.NotContains(t, out, "clean.html")
		assert.Contains(t, out, "Summary: 2 issues, 1 warnings, 1 info, 1 files failed in 3 files")
		assert.Contains(t, tr.ErrorOutput(), "Warning: broken.html: permission denied")
	})

	t.Run("markdown", func(t *testing.T) {
		tr := testutil.NewTestRendererMarkdown()
		renderLintResults(tr.Renderer, results)
		testutil.AssertOutputMode(t, tr, output.ModeMarkdown)
	})

	t.Run("json", func(t *testing.T) {
		tr := testutil.NewTestRendererJSON()
		renderLintResults(tr.Renderer, results)
		testutil.AssertOutputMode(t, tr, output.ModeJSON)

		doc := decodeLintOutput(t, tr.Output())
		require.Len(t, doc.Files, 2)
		assert.Equal(t, "page.jsp", doc.Files[0].Path)
		assert.Equal(t, "broken.html", doc.Files[1].Path)
		assert.Equal(t, "broken.html: permission denied", doc.Files[1].Error)
		assert.Empty(t, tr.ErrorOutput())
	})

	t.Run("clean", func(t *testing.T) {
		tr := testutil.NewTestRendererText()
		renderLintResults(tr.Renderer, results[:1])
		assert.Contains(t, tr.Output(), "No lint issues found in 1 files")
	})
}
