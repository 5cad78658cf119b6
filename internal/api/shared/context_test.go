package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()
		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)
		assert.Len(t, traceID, TraceIDLength*2)
	})

	t.Run("missing trace ID is empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, GetTraceID(context.Background()))
	})

	t.Run("IDs are unique per request", func(t *testing.T) {
		t.Parallel()
		a := GetTraceID(SetTraceID(context.Background()))
		b := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, a, b)
	})
}
