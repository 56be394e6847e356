package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/xcscheme/internal/adapters/telemetry"
	"go.trai.ch/xcscheme/internal/core/ports"
)

func setupRecorder(t *testing.T) (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return sr, tp
}

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
}

func TestOTelTracer_Start(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test-tracer")

	_, span := tracer.Start(context.Background(), "scheme.create",
		ports.WithAttribute("scheme", "App"),
		ports.WithAttribute("shared", true),
	)
	span.SetAttribute("entries", 2)
	span.SetAttribute("targets", []string{"App", "AppTests"})
	span.SetAttribute("other", struct{}{})
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "scheme.create", spans[0].Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "App", attrs["scheme"].AsString())
	assert.True(t, attrs["shared"].AsBool())
	assert.Equal(t, int64(2), attrs["entries"].AsInt64())
	assert.Equal(t, []string{"App", "AppTests"}, attrs["targets"].AsStringSlice())
	assert.Equal(t, "{}", attrs["other"].AsString())
}

func TestOTelTracer_RecordError(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test-tracer")

	_, span := tracer.Start(context.Background(), "scheme.save")
	span.RecordError(nil)
	span.RecordError(errors.New("disk full"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "disk full", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}

func TestOTelTracer_Nested(t *testing.T) {
	sr, tp := setupRecorder(t)
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test-tracer")

	ctx, parent := tracer.Start(context.Background(), "fmt")
	_, child := tracer.Start(ctx, "fmt.file")
	child.End()
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID())
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	assert.NotNil(t, tracer)

	ctx := context.Background()
	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)
	assert.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
