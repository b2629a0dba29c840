// Package telemetry provides tracer adapters for recording build progress.
package telemetry

import (
	"context"

	"github.com/hackeros/hbuild/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer. It is the default
// when no progress recording was requested.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start creates a new no-op span.
func (t *NoOpTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// Close does nothing.
func (t *NoOpTracer) Close() error { return nil }

// NoOpSpan is a no-op implementation of ports.Span.
type NoOpSpan struct{}

// End does nothing.
func (s *NoOpSpan) End() {}

// RecordError does nothing.
func (s *NoOpSpan) RecordError(_ error) {}

// Write does nothing and reports the full length as written.
func (s *NoOpSpan) Write(p []byte) (n int, err error) {
	return len(p), nil
}
