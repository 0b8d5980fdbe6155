package scanner

import (
	"iter"
	"slices"
	"strings"

	"go.trai.ch/incinfo/internal/core/domain"
)

const includeKeyword = "include"

// Directives yields the include directives of an already stripped source in order of appearance.
func Directives(src *SourceText) iter.Seq[domain.IncludeDirective] {
	return func(yield func(domain.IncludeDirective) bool) {
		for n := range src.LineCount() {
			line, _ := src.Line(n)
			d, ok := ParseLine(line)
			if !ok {
				continue
			}
			d.Position = src.PositionAt(src.lineStarts[n] + d.Position.Column)
			if !yield(d) {
				return
			}
		}
	}
}

// Scan strips comments from text and returns all of its include directives.
func Scan(text string) []domain.IncludeDirective {
	return slices.Collect(Directives(NewSourceText(Strip(text))))
}

// ParseLine recognises a single directive line of the form
// `# include <name>` or `#include "name"`. The '#' must be the first
// non-blank character. The returned position has line 0 and the column of
// the first byte of the trimmed name. Lines without a matching closing
// delimiter, or with an empty name, are rejected.
func ParseLine(line string) (domain.IncludeDirective, bool) {
	i := skipBlank(line, 0)
	if i >= len(line) || line[i] != '#' {
		return domain.IncludeDirective{}, false
	}
	i = skipBlank(line, i+1)
	if !strings.HasPrefix(line[i:], includeKeyword) {
		return domain.IncludeDirective{}, false
	}
	i += len(includeKeyword)

	j := skipBlank(line, i)
	if j >= len(line) {
		return domain.IncludeDirective{}, false
	}

	var closing byte
	switch line[j] {
	case '"':
		closing = '"'
	case '<':
		closing = '>'
	default:
		return domain.IncludeDirective{}, false
	}

	end := strings.IndexByte(line[j+1:], closing)
	if end < 0 {
		return domain.IncludeDirective{}, false
	}
	raw := line[j+1 : j+1+end]
	name := strings.TrimSpace(raw)
	if name == "" {
		return domain.IncludeDirective{}, false
	}
	lead := len(raw) - len(strings.TrimLeft(raw, " \t\v\f"))

	return domain.IncludeDirective{
		Name:     name,
		Quoted:   closing == '"',
		Position: domain.Position{Column: j + 1 + lead},
	}, true
}

// DirectiveAt returns the directive on the line of pos, if that line holds one.
func DirectiveAt(src *SourceText, pos domain.Position) (domain.IncludeDirective, bool) {
	line, ok := src.Line(pos.Line)
	if !ok {
		return domain.IncludeDirective{}, false
	}
	d, ok := ParseLine(line)
	if !ok {
		return domain.IncludeDirective{}, false
	}
	d.Position.Line = pos.Line
	return d, true
}

func skipBlank(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\v', '\f':
			i++
		default:
			return i
		}
	}
	return i
}
