package domain

import "fmt"

// Position is a zero-based line and byte column inside a document.
type Position struct {
	Line   int
	Column int
}

// String renders the position one-based, as editors and compilers print it.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// IncludeDirective is one #include found in a file.
type IncludeDirective struct {
	// Name is the header name between the delimiters, trimmed.
	Name string
	// Quoted is true for "name" and false for <name>.
	Quoted bool
	// Position is the start of Name in the including file.
	Position Position
}

// Spelling renders the directive target with its original delimiters.
func (d IncludeDirective) Spelling() string {
	if d.Quoted {
		return `"` + d.Name + `"`
	}
	return "<" + d.Name + ">"
}
