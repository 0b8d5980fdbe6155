package domain

// DefinitionTarget is a single result of a definition lookup.
// Hosts report either a plain Location or a LocationLink; both collapse to
// one canonical Location before the engine looks at them.
type DefinitionTarget interface {
	Target() Location
}

// Location is a position inside a specific file.
type Location struct {
	File     FileIdentity
	Position Position
}

// Target implements DefinitionTarget.
func (l Location) Target() Location {
	return l
}

// LocationLink connects an origin range in the requesting document to a target file.
type LocationLink struct {
	// Origin is where the link starts in the including file, if known.
	Origin Position
	// File is the linked file.
	File FileIdentity
	// Selection is the position inside File the link points at.
	Selection Position
}

// Target implements DefinitionTarget.
func (l LocationLink) Target() Location {
	return Location{File: l.File, Position: l.Selection}
}

var (
	_ DefinitionTarget = Location{}
	_ DefinitionTarget = LocationLink{}
)
