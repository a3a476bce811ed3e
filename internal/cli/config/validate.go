package config

import (
	"fmt"
	"path"

	"github.com/leapstack-labs/leapweb/internal/cli/output"
	"github.com/leapstack-labs/leapweb/pkg/core"
	"github.com/leapstack-labs/leapweb/pkg/source"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be zero or positive, got %d", c.Jobs)
	}
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		return err
	}
	if _, err := source.ResolveCharset(c.Charset); err != nil {
		return fmt.Errorf("invalid charset: %w", err)
	}
	for _, p := range c.Include {
		if err := validatePattern("include", p); err != nil {
			return err
		}
	}
	for _, p := range c.Exclude {
		if err := validatePattern("exclude", p); err != nil {
			return err
		}
	}
	if c.Lint != nil {
		for id, sev := range c.Lint.Severity {
			if _, ok := core.ParseSeverity(sev); !ok {
				return fmt.Errorf("lint.severity.%s: invalid severity %q\nHint: use one of error, warning, info, hint", id, sev)
			}
		}
	}
	return nil
}

func validatePattern(field, p string) error {
	if _, err := path.Match(p, ""); err != nil {
		return fmt.Errorf("%s: invalid pattern %q: %w", field, p, err)
	}
	return nil
}
