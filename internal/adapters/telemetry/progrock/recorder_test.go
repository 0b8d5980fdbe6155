package progrock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	rec "go.trai.ch/incinfo/internal/adapters/telemetry/progrock"
	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/incinfo/internal/core/ports"
)

// captureWriter keeps every vertex update it receives.
type captureWriter struct {
	mu       sync.Mutex
	vertexes []*progrock.Vertex
	closed   bool
}

func (w *captureWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.vertexes = append(w.vertexes, update.Vertexes...)
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *captureWriter) cachedNames() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []string
	for _, v := range w.vertexes {
		if v.Cached {
			out = append(out, v.Name)
		}
	}
	return out
}

func TestRecorder_Stats(t *testing.T) {
	w := &captureWriter{}
	r := rec.NewRecorder(w)
	ctx := context.Background()

	_, ok := r.Record(ctx, "resolve a.h")
	ok.Log(domain.LogLevelDebug, "scanned a.h")
	ok.Complete(nil)

	_, cached := r.Record(ctx, "resolve a.h")
	cached.Cached()
	cached.Complete(nil)

	_, failed := r.Record(ctx, "resolve b.h")
	failed.Complete(errors.New("boom"))

	assert.Equal(t, rec.Stats{Started: 3, Completed: 1, Cached: 1, Failed: 1}, r.Stats())
	assert.Equal(t, "3 resolutions: 1 scanned, 1 cached, 1 failed", r.Stats().String())
	assert.Contains(t, w.cachedNames(), "resolve a.h")

	require.NoError(t, r.Close())
	assert.True(t, w.closed)
}

func TestRecorder_ContextCarriesVertex(t *testing.T) {
	r := rec.New()
	ctx, v := r.Record(context.Background(), "resolve x")

	got, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, v, got)

	_, err := v.Stdout().Write([]byte("output\n"))
	require.NoError(t, err)
	v.Complete(nil)
	require.NoError(t, r.Close())
}
