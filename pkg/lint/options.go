package lint

import (
	"fmt"
	"strconv"
	"strings"
)

// MergeOptions overlays user options on declared defaults. User keys that
// match a declared key case-insensitively take the declared spelling, since
// env-sourced keys arrive lower-cased. Neither input is modified.
func MergeOptions(defaults, user Options) Options {
	merged := make(Options, len(defaults)+len(user))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range user {
		merged[canonicalKey(defaults, k)] = v
	}
	return merged
}

func canonicalKey(defaults Options, key string) string {
	if _, ok := defaults[key]; ok {
		return key
	}
	for k := range defaults {
		if strings.EqualFold(k, key) {
			return k
		}
	}
	return key
}

// GetOption extracts a typed option with a default value.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if typed, ok := v.(T); ok {
		return typed
	}
	return defaultVal
}

// GetIntOption extracts an int option, handling float64 from JSON and
// numeric strings from env vars.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	n, err := ParseIntOption(opts, key, defaultVal)
	if err != nil {
		return defaultVal
	}
	return n
}

// ParseIntOption is GetIntOption that reports values of the wrong type.
func ParseIntOption(opts map[string]any, key string, defaultVal int) (int, error) {
	v, ok := opts[key]
	if !ok || v == nil {
		return defaultVal, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return defaultVal, fmt.Errorf("option %s: %q is not an integer", key, n)
		}
		return i, nil
	default:
		return defaultVal, fmt.Errorf("option %s: unsupported type %T", key, v)
	}
}

// GetStringOption extracts a string option.
func GetStringOption(opts map[string]any, key string, defaultVal string) string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	if s, ok := v.(string); ok {
		return s
	}
	return defaultVal
}

// GetBoolOption extracts a bool option. The strings "true" and "false" are
// accepted too, as produced by env vars and quoted YAML.
func GetBoolOption(opts map[string]any, key string, defaultVal bool) bool {
	b, err := ParseBoolOption(opts, key, defaultVal)
	if err != nil {
		return defaultVal
	}
	return b
}

// ParseBoolOption is GetBoolOption that reports values of the wrong type.
func ParseBoolOption(opts map[string]any, key string, defaultVal bool) (bool, error) {
	v, ok := opts[key]
	if !ok || v == nil {
		return defaultVal, nil
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return defaultVal, fmt.Errorf("option %s: %q is not a boolean", key, b)
	default:
		return defaultVal, fmt.Errorf("option %s: unsupported type %T", key, v)
	}
}

// GetStringSliceOption extracts a string slice option.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	if opts == nil {
		return defaultVal
	}
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	switch s := v.(type) {
	case []string:
		return s
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return defaultVal
	}
}
