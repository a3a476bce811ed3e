package lint

import "sync"

// IssueSink collects the issues emitted for one file. It is append-only and
// safe for concurrent use. Issues keep emission order.
type IssueSink struct {
	mu     sync.Mutex
	issues []Issue
}

// NewIssueSink returns an empty sink.
func NewIssueSink() *IssueSink {
	return &IssueSink{}
}

// Add appends an issue.
func (s *IssueSink) Add(issue Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issues = append(s.issues, issue)
}

// Issues returns a copy of the collected issues in emission order.
func (s *IssueSink) Issues() []Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Issue, len(s.issues))
	copy(out, s.issues)
	return out
}

// Len returns the number of collected issues.
func (s *IssueSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.issues)
}

// ByRule groups the collected issues by rule ID.
func (s *IssueSink) ByRule() map[string][]Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]Issue)
	for _, issue := range s.issues {
		out[issue.RuleID] = append(out[issue.RuleID], issue)
	}
	return out
}
