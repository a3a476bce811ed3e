package lint

import "fmt"

// ConfigurationError reports a check that rejected its options or failed to
// initialize. It is returned before any file is analyzed.
type ConfigurationError struct {
	RuleID string
	Err    error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("[%s] %v", e.RuleID, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// IOError reports a file that could not be analyzed. Only that file is
// affected.
type IOError struct {
	Path   string
	RuleID string // set when a check failed to start on the file
	Err    error
}

func (e *IOError) Error() string {
	if e.RuleID != "" {
		return fmt.Sprintf("%s: [%s] %v", e.Path, e.RuleID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
