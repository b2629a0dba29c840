package progrock

import (
	"github.com/vito/progrock"
)

// Vertex implements ports.Span wrapping a *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write sends output to the vertex's stdout stream.
func (v *Vertex) Write(p []byte) (n int, err error) {
	return v.vertex.Stdout().Write(p)
}

// RecordError remembers the failure to be reported when the span ends.
func (v *Vertex) RecordError(err error) {
	v.err = err
}

// End marks the vertex as done, carrying any recorded error.
func (v *Vertex) End() {
	v.vertex.Done(v.err)
}
