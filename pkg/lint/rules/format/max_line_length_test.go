package format

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapweb/pkg/lint"
)

func newAnalyzer(t *testing.T, opts lint.Options) *lint.Analyzer {
	t.Helper()
	config := lint.NewConfig().SetRuleOptions(MaxLineLength.ID, opts)
	a, err := lint.NewAnalyzerWithRules(config, nil, []lint.RuleDef{MaxLineLength})
	require.NoError(t, err)
	return a
}

func TestMaxLineLength(t *testing.T) {
	a := newAnalyzer(t, lint.Options{"maximumLineLength": 10})

	content := strings.Join([]string{
		"short",
		strings.Repeat("x", 10),
		strings.Repeat("y", 11),
		"",
		strings.Repeat("z", 25),
	}, "\r\n")
	issues, err := a.AnalyzeString("long.html", content)
	require.NoError(t, err)

	require.Len(t, issues, 2)
	assert.Equal(t, 3, issues[0].Line)
	assert.Equal(t, "Split this 11 characters long line (which is greater than 10 authorized).", issues[0].Message)
	assert.Equal(t, 5, issues[1].Line)
	assert.Equal(t, "Split this 25 characters long line (which is greater than 10 authorized).", issues[1].Message)
}

func TestMaxLineLength_CountsCharactersNotBytes(t *testing.T) {
	a := newAnalyzer(t, lint.Options{"maximumLineLength": 5})

	issues, err := a.AnalyzeString("utf8.html", "ééééé\néééééé")
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Line)
}

func TestMaxLineLength_Default(t *testing.T) {
	a := newAnalyzer(t, nil)

	issues, err := a.AnalyzeString("x.html", strings.Repeat("a", 120)+"\n"+strings.Repeat("b", 121))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Message, "greater than 120 authorized")
}

func TestMaxLineLength_MinifiedLine(t *testing.T) {
	a := newAnalyzer(t, nil)

	n := 17 << 20
	issues, err := a.AnalyzeString("min.html", "<!-- header -->\n"+strings.Repeat("x", n))
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Line)
	assert.Contains(t, issues[0].Message, fmt.Sprintf("Split this %d characters", n))
}

func TestMaxLineLength_StringOption(t *testing.T) {
	a := newAnalyzer(t, lint.Options{"maximumLineLength": "3"})

	issues, err := a.AnalyzeString("x.html", "abcd")
	require.NoError(t, err)
	assert.Len(t, issues, 1)
}

func TestMaxLineLength_InvalidOption(t *testing.T) {
	for _, v := range []any{0, -4, "wide"} {
		config := lint.NewConfig().SetRuleOptions(MaxLineLength.ID, lint.Options{"maximumLineLength": v})
		_, err := lint.NewAnalyzerWithRules(config, nil, []lint.RuleDef{MaxLineLength})

		var cfgErr *lint.ConfigurationError
		require.True(t, errors.As(err, &cfgErr), "value %v", v)
		assert.Equal(t, "MaxLineLengthCheck", cfgErr.RuleID)
	}
}
