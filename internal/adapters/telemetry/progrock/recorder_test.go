package progrock_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	progrockadapter "github.com/hackeros/hbuild/internal/adapters/telemetry/progrock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
)

// captureWriter collects every status update emitted by the recorder.
type captureWriter struct {
	mu      sync.Mutex
	updates []*progrock.StatusUpdate
	closed  bool
}

func (w *captureWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, update)
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *captureWriter) vertexes() []*progrock.Vertex {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []*progrock.Vertex
	for _, u := range w.updates {
		out = append(out, u.Vertexes...)
	}
	return out
}

func TestRecorder_SpanLifecycle(t *testing.T) {
	w := &captureWriter{}
	tracer := progrockadapter.NewRecorder(w)

	_, span := tracer.Start(context.Background(), "compile main.c")
	_, err := span.Write([]byte("warning: unused variable\n"))
	require.NoError(t, err)
	span.End()

	require.NoError(t, tracer.Close())
	assert.True(t, w.closed)

	vertexes := w.vertexes()
	require.NotEmpty(t, vertexes)
	assert.Equal(t, "compile main.c", vertexes[0].Name)

	var completed bool
	for _, v := range vertexes {
		if v.Completed != nil {
			completed = true
			assert.Nil(t, v.Error)
		}
	}
	assert.True(t, completed)
}

func TestRecorder_SpanError(t *testing.T) {
	w := &captureWriter{}
	tracer := progrockadapter.NewRecorder(w)

	_, span := tracer.Start(context.Background(), "build c")
	span.RecordError(errors.New("compilation failed"))
	span.End()
	require.NoError(t, tracer.Close())

	var sawError bool
	for _, v := range w.vertexes() {
		if v.Error != nil {
			sawError = true
			assert.Contains(t, *v.Error, "compilation failed")
		}
	}
	assert.True(t, sawError)
}
