package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapweb/pkg/core"
)

func TestFromLintConfig(t *testing.T) {
	lc := &core.LintConfig{
		Disabled: []string{"MaxLineLengthCheck"},
		Severity: map[string]string{"HeaderCheck": "error"},
		Rules: map[string]core.RuleOptions{
			"HeaderCheck": {"headerFormat": "<!-- (c) -->"},
		},
	}

	c, err := FromLintConfig(lc)
	require.NoError(t, err)

	assert.True(t, c.IsDisabled("MaxLineLengthCheck"))
	assert.False(t, c.IsDisabled("HeaderCheck"))
	assert.Equal(t, core.SeverityError, c.GetSeverity("HeaderCheck", core.SeverityWarning))
	assert.Equal(t, core.SeverityInfo, c.GetSeverity("Other", core.SeverityInfo))
	assert.Equal(t, Options{"headerFormat": "<!-- (c) -->"}, c.GetRuleOptions("HeaderCheck"))
}

func TestFromLintConfig_InvalidSeverity(t *testing.T) {
	_, err := FromLintConfig(&core.LintConfig{Severity: map[string]string{"HeaderCheck": "fatal"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fatal")
}

func TestFromLintConfig_Nil(t *testing.T) {
	c, err := FromLintConfig(nil)
	require.NoError(t, err)
	assert.False(t, c.IsDisabled("anything"))
}

func TestConfig_NilSafe(t *testing.T) {
	var c *Config
	assert.False(t, c.IsDisabled("X"))
	assert.Equal(t, core.SeverityHint, c.GetSeverity("X", core.SeverityHint))
	assert.Nil(t, c.GetRuleOptions("X"))
}

func TestConfig_OnlyAndDisable(t *testing.T) {
	c := NewConfig().Only("A", "B").Disable("B")
	assert.False(t, c.IsDisabled("A"))
	assert.True(t, c.IsDisabled("B"))
	assert.True(t, c.IsDisabled("C"))
}
