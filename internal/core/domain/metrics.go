package domain

import (
	"maps"
	"time"
)

// FileMetrics is what the engine knows about one resolved file.
type FileMetrics struct {
	Identity FileIdentity

	// LineCount and ByteCount describe the file itself; in recursive mode they
	// hold the totals over the file and every distinct transitive include.
	LineCount int
	ByteCount int

	// IncludedCount is always the number of direct includes.
	IncludedCount int
	// IncludedNames maps each direct include name to where it appears.
	IncludedNames map[string]IncludeDirective

	// Standard is true for standard library headers.
	Standard bool

	// ModTime is the freshness token observed when the file was scanned.
	ModTime       time.Time
	Digest        uint64
	LastValidated time.Time

	// Transitive is set only for recursive resolutions.
	Transitive *Aggregate
}

// Aggregate summarises a recursive resolution.
type Aggregate struct {
	// Files counts distinct files contributing to the totals, the root included.
	Files int
	// Cycles counts back edges that were excluded from the totals.
	Cycles int
	// Unresolved lists "includer: spelling" for children that could not be resolved.
	Unresolved []string
}

// Clone returns a deep copy so callers cannot mutate cached state.
func (m FileMetrics) Clone() FileMetrics {
	out := m
	if m.IncludedNames != nil {
		out.IncludedNames = maps.Clone(m.IncludedNames)
	}
	if m.Transitive != nil {
		agg := *m.Transitive
		agg.Unresolved = append([]string(nil), m.Transitive.Unresolved...)
		out.Transitive = &agg
	}
	return out
}

// Positions returns the direct include map as name -> position.
func (m FileMetrics) Positions() map[string]Position {
	out := make(map[string]Position, len(m.IncludedNames))
	for name, d := range m.IncludedNames {
		out[name] = d.Position
	}
	return out
}

// CacheEntry pairs metrics with the validity rule they were stored under.
type CacheEntry struct {
	Metrics FileMetrics
	// Standard entries are valid for the whole session.
	Standard bool
	// Token is the modification time recorded at scan time.
	Token time.Time
}

// ValidFor reports whether the entry may be served for the given freshness token.
func (e CacheEntry) ValidFor(token time.Time) bool {
	if e.Standard {
		return true
	}
	return e.Token.Equal(token)
}
