package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/incinfo/internal/adapters/cache"
	"go.trai.ch/incinfo/internal/core/domain"
)

var (
	t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Minute)
)

func entry(id domain.FileIdentity, lines int, std bool, token time.Time) domain.CacheEntry {
	return domain.CacheEntry{
		Metrics: domain.FileMetrics{
			Identity:      id,
			LineCount:     lines,
			IncludedNames: map[string]domain.IncludeDirective{"x.h": {Name: "x.h", Quoted: true}},
			Standard:      std,
			ModTime:       token,
		},
		Standard: std,
		Token:    token,
	}
}

func TestMemory_Miss(t *testing.T) {
	c := cache.NewMemory()
	id := domain.NewFileIdentity("/p/a.h")

	_, ok := c.Get(id)
	assert.False(t, ok)
	assert.False(t, c.Has(id))
	assert.False(t, c.IsValid(id, t0))
	assert.Zero(t, c.Len())
}

func TestMemory_ProjectHeaderValidity(t *testing.T) {
	c := cache.NewMemory()
	id := domain.NewFileIdentity("/p/a.h")

	c.Put(id, entry(id, 10, false, t0))

	require.True(t, c.Has(id))
	assert.True(t, c.IsValid(id, t0))
	assert.False(t, c.IsValid(id, t1))

	got, ok := c.Get(id)
	require.True(t, ok)
	assert.Equal(t, 10, got.Metrics.LineCount)

	c.Put(id, entry(id, 12, false, t1))
	assert.True(t, c.IsValid(id, t1))
	assert.False(t, c.IsValid(id, t0))
	assert.Equal(t, 1, c.Len())

	got, _ = c.Get(id)
	assert.Equal(t, 12, got.Metrics.LineCount)
}

func TestMemory_StandardHeaderAlwaysValid(t *testing.T) {
	c := cache.NewMemory()
	id := domain.NewFileIdentity("/usr/include/c++/13/vector")

	c.Put(id, entry(id, 200, true, t0))

	assert.True(t, c.IsValid(id, t0))
	assert.True(t, c.IsValid(id, t1))
	assert.True(t, c.IsValid(id, time.Time{}))
}

func TestMemory_CanonicalKey(t *testing.T) {
	c := cache.NewMemory()
	c.Put(domain.NewFileIdentity("/p/inc/../inc/a.h"), entry(domain.NewFileIdentity("/p/inc/a.h"), 3, false, t0))

	assert.True(t, c.Has(domain.NewFileIdentity("/p/inc/a.h")))
}

func TestMemory_ReturnsCopies(t *testing.T) {
	c := cache.NewMemory()
	id := domain.NewFileIdentity("/p/a.h")
	e := entry(id, 1, false, t0)
	c.Put(id, e)

	e.Metrics.IncludedNames["leak.h"] = domain.IncludeDirective{}
	got, _ := c.Get(id)
	got.Metrics.IncludedNames["leak2.h"] = domain.IncludeDirective{}

	again, _ := c.Get(id)
	assert.Len(t, again.Metrics.IncludedNames, 1)
}

func TestMemory_Concurrent(t *testing.T) {
	c := cache.NewMemory()
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := domain.NewFileIdentity(fmt.Sprintf("/p/h%d.h", i%10))
			c.Put(id, entry(id, i, false, t0))
			_, _ = c.Get(id)
			_ = c.IsValid(id, t0)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, c.Len())
}
