package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/incinfo/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
	stats  *counters
	once   sync.Once
}

// Stdout returns the vertex's output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Log writes a levelled line to the vertex output.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
}

// Complete finishes the vertex. Only the first Complete or Cached counts.
func (v *Vertex) Complete(err error) {
	v.once.Do(func() {
		if err != nil {
			v.stats.failed.Add(1)
		} else {
			v.stats.completed.Add(1)
		}
		v.vertex.Done(err)
	})
}

// Cached finishes the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.once.Do(func() {
		v.stats.cached.Add(1)
		v.vertex.Cached()
		v.vertex.Done(nil)
	})
}
