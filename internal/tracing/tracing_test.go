package tracing_test

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupDisabled(t *testing.T) {
	p, err := tracing.Setup(context.Background(), &config.Otel{Enabled: false}, "test")
	require.NoError(t, err)

	_, span := p.Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsSampled())
	span.End()

	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewTracerProvider(t *testing.T) {
	t.Run("Ratio one records every span", func(t *testing.T) {
		recorder := tracetest.NewSpanRecorder()
		tp := tracing.NewTracerProvider(&config.Otel{ServiceName: "storefront", SamplerRatio: 1}, "test",
			sdktrace.WithSpanProcessor(recorder))

		_, span := tp.Tracer("test").Start(context.Background(), "listing")
		span.End()

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "listing", spans[0].Name())
		assert.Contains(t, spans[0].Resource().Attributes(), attribute.String("service.name", "storefront"))

		require.NoError(t, tp.Shutdown(context.Background()))
	})

	t.Run("Ratio zero samples nothing", func(t *testing.T) {
		recorder := tracetest.NewSpanRecorder()
		tp := tracing.NewTracerProvider(&config.Otel{ServiceName: "storefront", SamplerRatio: 0}, "test",
			sdktrace.WithSpanProcessor(recorder))

		_, span := tp.Tracer("test").Start(context.Background(), "listing")
		span.End()

		assert.Empty(t, recorder.Ended())
	})
}
