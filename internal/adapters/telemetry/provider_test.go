package telemetry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/buildtrigger/internal/adapters/telemetry"
	"go.trai.ch/buildtrigger/internal/core/domain"
)

func setupMonitor(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := trace.NewTracerProvider(trace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr
}

func attrMap(attrs []attribute.KeyValue) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, kv := range attrs {
		m[string(kv.Key)] = kv.Value.Emit()
	}
	return m
}

func TestOTelTracer_StartAndEnd(t *testing.T) {
	sr := setupMonitor(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(context.Background(), "codebuild.poll")
	span.SetAttribute("poll", 2)
	span.SetAttribute("status", domain.StatusInProgress)
	span.SetAttribute("build_id", "proj:1")
	span.SetAttribute("interval", 10*time.Second)
	span.SetAttribute("terminal", false)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "codebuild.poll", spans[0].Name())

	attrs := attrMap(spans[0].Attributes())
	assert.Equal(t, "2", attrs["poll"])
	assert.Equal(t, "IN_PROGRESS", attrs["status"])
	assert.Equal(t, "proj:1", attrs["build_id"])
	assert.Equal(t, "10s", attrs["interval"])
	assert.Equal(t, "false", attrs["terminal"])
}

func TestOTelSpan_RecordError(t *testing.T) {
	sr := setupMonitor(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	_, span := tracer.Start(context.Background(), "codebuild.start")
	span.RecordError(errors.New("access denied"))
	span.RecordError(nil)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "access denied", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestOTelTracer_ChildSpan(t *testing.T) {
	sr := setupMonitor(t)
	tracer := telemetry.NewOTelTracer("test-tracer")

	ctx, parent := tracer.Start(context.Background(), "buildtrigger.invoke")
	_, child := tracer.Start(ctx, "codebuild.start")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	gotCtx, span := tracer.Start(ctx, "anything")
	assert.Equal(t, ctx, gotCtx)

	assert.NotPanics(t, func() {
		span.SetAttribute("k", "v")
		span.RecordError(errors.New("x"))
		span.End()
	})
}
