package header

import (
	"regexp"

	"github.com/leapstack-labs/leapweb/pkg/source"
)

// Mode selects how the configured header is interpreted.
type Mode int

// Header modes.
const (
	ModeLiteral Mode = iota
	ModePattern
)

func (m Mode) String() string {
	if m == ModePattern {
		return "pattern"
	}
	return "literal"
}

// PatternError reports a header expression that does not compile.
type PatternError struct {
	Expr string
	Err  error
}

func (e *PatternError) Error() string {
	return "Unable to compile the regular expression: " + e.Expr
}

func (e *PatternError) Unwrap() error { return e.Err }

// Spec is the expected header of a file. Exactly one of lines or pattern is
// in use, selected by mode. A Spec is immutable and safe to share.
type Spec struct {
	mode    Mode
	lines   []string
	pattern *regexp.Regexp
}

// NewSpec builds a Spec from the configured header text.
//
// In pattern mode format is compiled with "." matching newlines; the header
// matches when the leftmost match starts at offset 0. In literal mode format
// is split into lines on "\r\n", "\n" and "\r".
func NewSpec(format string, isRegularExpression bool) (*Spec, error) {
	if isRegularExpression {
		re, err := regexp.Compile("(?s)" + format)
		if err != nil {
			return nil, &PatternError{Expr: format, Err: err}
		}
		return &Spec{mode: ModePattern, pattern: re}, nil
	}
	return &Spec{mode: ModeLiteral, lines: splitHeader(format)}, nil
}

// splitHeader splits on every newline convention, keeping interior empty
// lines and dropping trailing ones. The empty string yields no lines.
func splitHeader(format string) []string {
	lines := source.SplitLines(format)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Mode returns the active interpretation.
func (s *Spec) Mode() Mode { return s.mode }

// Lines returns the expected lines in literal mode.
func (s *Spec) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Match reports whether f starts with the header. Literal mode reads only
// as many lines as the automaton needs.
func (s *Spec) Match(f *source.File) (bool, error) {
	if s.mode == ModePattern {
		text, err := f.Text()
		if err != nil {
			return false, err
		}
		return s.MatchText(text), nil
	}

	m := newLineMatcher(s.lines)
	if err := f.Lines(func(_ int, line string) bool {
		return m.feed(line)
	}); err != nil {
		return false, err
	}
	return m.verdict(), nil
}

// MatchText applies pattern mode to the full file content.
func (s *Spec) MatchText(text string) bool {
	loc := s.pattern.FindStringIndex(text)
	return loc != nil && loc[0] == 0
}

// MatchLines applies literal mode to an already split file. It returns the
// verdict and how many lines the automaton consumed.
func (s *Spec) MatchLines(lines []string) (matched bool, consumed int) {
	m := newLineMatcher(s.lines)
	for _, line := range lines {
		consumed++
		if !m.feed(line) {
			break
		}
	}
	return m.verdict(), consumed
}

// lineMatcher compares file lines against the expected header one at a
// time. It always reads one line past a full match before stopping, and a
// file shorter than the header never matches.
type lineMatcher struct {
	expected []string
	matched  bool
	seen     int
}

func newLineMatcher(expected []string) *lineMatcher {
	return &lineMatcher{expected: expected}
}

// feed consumes the next line and reports whether another is wanted.
func (m *lineMatcher) feed(line string) bool {
	m.seen++
	if m.seen == 1 {
		m.matched = true
	}
	if m.seen > len(m.expected) {
		return false
	}
	if line == m.expected[m.seen-1] {
		return true
	}
	m.matched = false
	return false
}

func (m *lineMatcher) verdict() bool {
	return m.matched && m.seen >= len(m.expected)
}
