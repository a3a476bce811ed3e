package source

import "strings"

// cutLine splits s at the first "\r\n", "\n" or lone "\r". ok is false when
// s holds no terminator, in which case line is all of s.
func cutLine(s string) (line, rest string, ok bool) {
	i := strings.IndexAny(s, "\r\n")
	if i < 0 {
		return s, "", false
	}
	if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
		return s[:i], s[i+2:], true
	}
	return s[:i], s[i+1:], true
}

// SplitLines splits s on "\r\n", "\n" and "\r".
// Every separator produces a boundary, so empty lines (including a trailing
// one after a final separator) are kept. SplitLines("") returns [""].
func SplitLines(s string) []string {
	var lines []string
	for {
		line, rest, ok := cutLine(s)
		lines = append(lines, line)
		if !ok {
			return lines
		}
		s = rest
	}
}
