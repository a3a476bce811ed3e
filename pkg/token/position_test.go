package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_Advance(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Position
	}{
		{"empty", "", Position{Line: 1, Column: 1, Offset: 0}},
		{"single line", "abc", Position{Line: 1, Column: 4, Offset: 3}},
		{"lf", "a\nb", Position{Line: 2, Column: 2, Offset: 3}},
		{"crlf", "a\r\nb", Position{Line: 2, Column: 2, Offset: 4}},
		{"lone cr", "a\rb", Position{Line: 2, Column: 2, Offset: 3}},
		{"mixed", "a\r\n\r\nb\rc\n", Position{Line: 5, Column: 1, Offset: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartOfFile.Advance(tt.input))
		})
	}
}

func TestSpan_Contains(t *testing.T) {
	s := Span{
		Start: Position{Line: 1, Column: 1, Offset: 2},
		End:   Position{Line: 1, Column: 5, Offset: 6},
	}
	assert.False(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(6))
	assert.True(t, s.IsValid())
	assert.False(t, Span{}.IsValid())
}
