package ports

import (
	"time"

	"go.trai.ch/incinfo/internal/core/domain"
)

// ResolutionCache stores scanned metrics per file for the lifetime of a session.
// Implementations perform no I/O; callers supply freshness tokens.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ResolutionCache interface {
	// Get returns the entry for id if one was stored.
	Get(id domain.FileIdentity) (domain.CacheEntry, bool)
	// Put stores or overwrites the entry for id.
	Put(id domain.FileIdentity, entry domain.CacheEntry)
	// Has reports whether an entry exists for id.
	Has(id domain.FileIdentity) bool
	// IsValid reports whether the entry for id may be served for the given token.
	IsValid(id domain.FileIdentity, token time.Time) bool
	// Len returns the number of entries.
	Len() int
}
