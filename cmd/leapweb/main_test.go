// Package main provides tests for the leapweb CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapweb/internal/cli"
	"github.com/leapstack-labs/leapweb/internal/cli/config"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, _, err := runCLI(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	if !strings.HasPrefix(output, "leapweb v"+cli.Version) {
		t.Errorf("version output should start with 'leapweb v%s', got: %s", cli.Version, output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, _, err := runCLI(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	expectedCommands := []string{"lint", "rules", "discover", "init", "version", "completion"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	output, _, err := runCLI(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion command error = %v", err)
	}
	if !strings.Contains(output, "leapweb") {
		t.Errorf("bash completion should mention leapweb, got %d bytes", len(output))
	}

	if _, _, err := runCLI(t, "completion", "tcsh"); err == nil {
		t.Error("completion should reject unsupported shells")
	}
}

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}
	t.Chdir(dir)
	return dir
}

func TestLintCommand_OutputFlag(t *testing.T) {
	writeProject(t, map[string]string{
		"leapweb.yaml": "lint:\n  rules:\n    HeaderCheck:\n      headerFormat: \"<!-- (c) -->\"\n",
		"a.html":       "<p>no header</p>\n",
	})

	output, _, err := runCLI(t, "--output", "json", "lint")
	if err == nil {
		t.Fatal("lint should fail when issues are found")
	}

	var doc struct {
		Summary struct {
			TotalIssues int `json:"total_issues"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(output), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if doc.Summary.TotalIssues != 1 {
		t.Errorf("total_issues = %d, want 1", doc.Summary.TotalIssues)
	}
}

func TestLintCommand_InvalidConfig(t *testing.T) {
	writeProject(t, map[string]string{
		"leapweb.yaml": "charset: klingon\n",
	})

	_, _, err := runCLI(t, "lint")
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("expected invalid configuration error, got %v", err)
	}
}

func TestVerboseLogging(t *testing.T) {
	writeProject(t, map[string]string{
		"leapweb.yaml": "output: json\n",
		"a.html":       "<p>ok</p>\n",
	})

	_, errOutput, err := runCLI(t, "-v", "lint")
	if err != nil {
		t.Fatalf("lint error = %v", err)
	}
	if !strings.Contains(errOutput, "using config file") {
		t.Errorf("verbose run should log the config file, got: %s", errOutput)
	}
}
