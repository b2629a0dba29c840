package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for recording units of build work.
type Tracer interface {
	// Start begins a new span covering one unit of work (a language step or a
	// single compile).
	Start(ctx context.Context, name string) (context.Context, Span)

	// Close flushes the recording session.
	Close() error
}

// Span represents one unit of work in progress. Writes go to the span's
// output stream.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records a failure for the span.
	RecordError(err error)
}
