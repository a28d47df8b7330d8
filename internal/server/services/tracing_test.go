package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestServices_RecordSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	rm := newMemoryManager()
	users := NewUserService(rm, testConfig())
	tasks := NewTaskService(rm)
	ctx := context.Background()

	user, err := users.Register(ctx, "alice", "pw")
	require.NoError(t, err)
	task, err := tasks.Create(ctx, user.ID, "x")
	require.NoError(t, err)
	_, err = tasks.Update(ctx, "someone-else", task.ID, "y")
	require.Error(t, err)

	names := map[string]bool{}
	for _, s := range recorder.Ended() {
		names[s.Name()] = true
	}
	assert.True(t, names["UserService.Register"])
	assert.True(t, names["TaskService.Create"])
	assert.True(t, names["TaskService.Update"])
}
