// Package scanner finds #include directives in C and C++ sources.
package scanner

import (
	"sort"
	"strings"

	"go.trai.ch/incinfo/internal/core/domain"
)

// SourceText is an immutable buffer with an offset to line/column map.
type SourceText struct {
	text       string
	lineStarts []int
}

// NewSourceText indexes the line starts of text.
func NewSourceText(text string) *SourceText {
	starts := make([]int, 1, strings.Count(text, "\n")+1)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &SourceText{text: text, lineStarts: starts}
}

// Text returns the underlying buffer.
func (s *SourceText) Text() string {
	return s.text
}

// Len returns the buffer length in bytes.
func (s *SourceText) Len() int {
	return len(s.text)
}

// LineCount counts lines the way editors do: a trailing newline opens one more, empty, line.
func (s *SourceText) LineCount() int {
	return len(s.lineStarts)
}

// PositionAt converts a byte offset into a position. Offsets are clamped to the buffer.
func (s *SourceText) PositionAt(offset int) domain.Position {
	offset = max(0, min(offset, len(s.text)))
	line := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	return domain.Position{Line: line, Column: offset - s.lineStarts[line]}
}

// OffsetAt converts a position into a byte offset.
func (s *SourceText) OffsetAt(pos domain.Position) (int, bool) {
	if pos.Line < 0 || pos.Line >= len(s.lineStarts) || pos.Column < 0 {
		return 0, false
	}
	offset := s.lineStarts[pos.Line] + pos.Column
	if offset > s.lineEnd(pos.Line) {
		return 0, false
	}
	return offset, true
}

// Line returns line n without its terminator.
func (s *SourceText) Line(n int) (string, bool) {
	if n < 0 || n >= len(s.lineStarts) {
		return "", false
	}
	return strings.TrimSuffix(s.text[s.lineStarts[n]:s.lineEnd(n)], "\r"), true
}

// lineEnd is the offset of the '\n' ending line n, or the buffer length for the last line.
func (s *SourceText) lineEnd(n int) int {
	if n+1 < len(s.lineStarts) {
		return s.lineStarts[n+1] - 1
	}
	return len(s.text)
}
