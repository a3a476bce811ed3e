// Package token defines source positions shared by the markup parser and the
// lint engine.
package token

// Position represents a location in the source code.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// StartOfFile is the position of the first byte of a file.
var StartOfFile = Position{Line: 1, Column: 1, Offset: 0}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Advance returns the position reached after consuming s.
// "\r\n", "\n" and a lone "\r" each end a line.
func (p Position) Advance(s string) Position {
	for i := 0; i < len(s); i++ {
		p.Offset++
		switch s[i] {
		case '\n':
			p.Line++
			p.Column = 1
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				// The '\n' ends the line.
				p.Column++
				continue
			}
			p.Line++
			p.Column = 1
		default:
			p.Column++
		}
	}
	return p
}

// Span represents a range in source code.
type Span struct {
	Start Position
	End   Position
}

// Contains returns true if the span contains the given offset.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

// IsValid returns true if both start and end positions are valid.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid()
}
