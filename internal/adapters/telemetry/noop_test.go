package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hackeros/hbuild/internal/adapters/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, span := tracer.Start(context.Background(), "compile main.c")
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	n, err := span.Write([]byte("output"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	span.RecordError(errors.New("boom"))
	span.End()

	assert.NoError(t, tracer.Close())
}
