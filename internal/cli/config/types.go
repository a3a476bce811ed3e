// Package config provides configuration management for the leapweb CLI.
//
// Settings are layered with koanf: built-in defaults, then leapweb.yaml,
// then LEAPWEB_* environment variables, then explicitly set flags. The lint
// section reuses the shared types from pkg/core.
package config

import "github.com/leapstack-labs/leapweb/pkg/core"

// LintConfig is an alias for the shared lint configuration.
type LintConfig = core.LintConfig

// RuleOptions is an alias for the shared rule options type.
type RuleOptions = core.RuleOptions

// Config holds all CLI configuration options.
type Config struct {
	Include      []string    `koanf:"include" yaml:"include,omitempty"`
	Exclude      []string    `koanf:"exclude" yaml:"exclude,omitempty"`
	Charset      string      `koanf:"charset" yaml:"charset,omitempty"`
	Jobs         int         `koanf:"jobs" yaml:"jobs,omitempty"`
	Verbose      bool        `koanf:"verbose" yaml:"verbose,omitempty"`
	OutputFormat string      `koanf:"output" yaml:"output,omitempty"`
	Lint         *LintConfig `koanf:"lint" yaml:"lint,omitempty"`

	// ProjectRoot is the directory holding the config file, or the working
	// directory when none was found.
	ProjectRoot string `koanf:"-" yaml:"-"`
}

// Default configuration values.
const (
	DefaultCharset = "utf-8"
	DefaultJobs    = 0      // GOMAXPROCS
	DefaultOutput  = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// ConfigFileNames lists the file names searched for, in order.
var ConfigFileNames = []string{"leapweb.yaml", "leapweb.yml"}

// DefaultInclude returns the default include patterns.
func DefaultInclude() []string {
	return []string{"*.html", "*.htm", "*.xhtml", "*.jsp", "*.jspf", "*.jspx", "*.tag"}
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Include:      DefaultInclude(),
		Charset:      DefaultCharset,
		Jobs:         DefaultJobs,
		OutputFormat: DefaultOutput,
	}
}
