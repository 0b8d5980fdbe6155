// Package progrock records resolution work as progrock vertices.
package progrock

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/incinfo/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Stats counts vertices by outcome.
type Stats struct {
	Started   int64
	Completed int64
	Cached    int64
	Failed    int64
}

// String renders the counts for a verbose summary line.
func (s Stats) String() string {
	return fmt.Sprintf("%d resolutions: %d scanned, %d cached, %d failed",
		s.Started, s.Completed, s.Cached, s.Failed)
}

type counters struct {
	started, completed, cached, failed atomic.Int64
}

// Recorder implements ports.Telemetry on a progrock tape.
type Recorder struct {
	w     progrock.Writer
	rec   *progrock.Recorder
	seq   atomic.Int64
	stats counters
}

// New creates a Recorder writing to an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{w: w, rec: progrock.NewRecorder(w)}
}

// Record starts a vertex. Repeated names get distinct vertices, since the
// same directive may be resolved many times in one session.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(fmt.Sprintf("%s#%d", name, r.seq.Add(1)))
	r.stats.started.Add(1)

	vertex := &Vertex{vertex: r.rec.Vertex(d, name), stats: &r.stats}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Stats returns a snapshot of the vertex counts.
func (r *Recorder) Stats() Stats {
	return Stats{
		Started:   r.stats.started.Load(),
		Completed: r.stats.completed.Load(),
		Cached:    r.stats.cached.Load(),
		Failed:    r.stats.failed.Load(),
	}
}

// Close closes the writer if it can be closed.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
