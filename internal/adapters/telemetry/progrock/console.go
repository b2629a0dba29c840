package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
)

// consoleWriter renders vertex lifecycle transitions as plain lines. The
// recorder re-emits a vertex on every status flush, so each transition is
// printed once per vertex.
type consoleWriter struct {
	out io.Writer

	mu   sync.Mutex
	seen map[string]string
}

const (
	phaseStarted   = "started"
	phaseCompleted = "completed"
)

func newConsoleWriter(out io.Writer) *consoleWriter {
	return &consoleWriter{out: out, seen: make(map[string]string)}
}

func (w *consoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range update.Vertexes {
		phase := phaseStarted
		if v.Completed != nil {
			phase = phaseCompleted
		}
		if w.seen[v.Id] == phase {
			continue
		}
		w.seen[v.Id] = phase

		switch {
		case v.Completed == nil:
			fmt.Fprintf(w.out, "=> %s\n", v.Name)
		case v.Error != nil:
			fmt.Fprintf(w.out, "!! %s: %s\n", v.Name, *v.Error)
		default:
			fmt.Fprintf(w.out, "ok %s\n", v.Name)
		}
	}
	return nil
}

func (w *consoleWriter) Close() error {
	return nil
}
