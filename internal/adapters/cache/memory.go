// Package cache provides the in-memory resolution cache.
package cache

import (
	"sync"
	"time"

	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/incinfo/internal/core/ports"
)

var _ ports.ResolutionCache = (*Memory)(nil)

// Memory is a session scoped ResolutionCache.
//
// Entries are never removed. Standard header entries stay valid for the
// whole session; project header entries are overwritten when a rescan is
// stored under a newer freshness token.
type Memory struct {
	mu      sync.RWMutex
	entries map[domain.FileIdentity]domain.CacheEntry
}

// NewMemory creates an empty cache.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[domain.FileIdentity]domain.CacheEntry),
	}
}

// Get returns a copy of the stored entry.
func (c *Memory) Get(id domain.FileIdentity) (domain.CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[id]
	if !ok {
		return domain.CacheEntry{}, false
	}
	entry.Metrics = entry.Metrics.Clone()
	return entry, true
}

// Put stores entry under id, replacing any previous entry.
func (c *Memory) Put(id domain.FileIdentity, entry domain.CacheEntry) {
	entry.Metrics = entry.Metrics.Clone()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[id] = entry
}

// Has reports whether an entry exists for id.
func (c *Memory) Has(id domain.FileIdentity) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.entries[id]
	return ok
}

// IsValid reports whether the entry for id can be served for token.
func (c *Memory) IsValid(id domain.FileIdentity, token time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[id]
	return ok && entry.ValidFor(token)
}

// Len returns the number of stored entries.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
