package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapweb/pkg/lint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readDoc(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(content)
}

func TestGenerateLintDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateLintDocs(dir))

	index := readDoc(t, dir, "index.md")
	assert.Contains(t, index, "# Lint Rules")
	assert.Contains(t, index, "## Header")
	assert.Contains(t, index, "[`HeaderCheck`](headercheck.md)")

	for _, rule := range lint.GetAll() {
		// Page names match the URLs attached to issues.
		assert.True(t, strings.HasSuffix(lint.BuildDocURL(rule.ID), strings.TrimSuffix(rulePageName(rule.ID), ".md")))
		assert.FileExists(t, filepath.Join(dir, rulePageName(rule.ID)))
	}

	page := readDoc(t, dir, "maxlinelengthcheck.md")
	assert.Contains(t, page, "# MaxLineLengthCheck - format.max_line_length")
	assert.Contains(t, page, "`maximumLineLength`")
	assert.Contains(t, page, "`120`")
	assert.Equal(t, 0, strings.Count(page, "```")%2, "balanced fences")
}

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	index := readDoc(t, dir, "index.md")
	assert.Contains(t, index, "`LEAPWEB_CHARSET`")
	assert.Contains(t, index, "`--config`")

	lintPage := readDoc(t, dir, "lint.md")
	assert.Contains(t, lintPage, "leapweb lint [paths...]")
	assert.Contains(t, lintPage, "`--severity`")
}

func TestGenerateConfigDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateConfigDocs(dir))

	doc := readDoc(t, dir, "configuration.md")
	assert.Contains(t, doc, "`leapweb.yaml`")
	assert.Contains(t, doc, "`utf-8`")
	assert.Contains(t, doc, "`lint.rules`")
}

func TestMarkdownWriter(t *testing.T) {
	w := NewMarkdownWriter()
	w.Header(0, "Title")
	w.Table([]string{"A"}, nil)
	w.BulletList([]string{"one", "two"})
	w.CodeBlock("html", "<p>\n")

	assert.Equal(t, "# Title\n\n- one\n- two\n\n```html\n<p>\n```\n\n", string(w.Bytes()))
	assert.Equal(t, "a b", cleanDescription("  a\n\tb "))
}
