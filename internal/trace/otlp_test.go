package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	p, err := NewProvider(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, p)

	// A nil provider still hands out a usable tracer.
	_, span := p.Tracer().Start(context.Background(), "grid.key")
	span.End()
	assert.False(t, span.SpanContext().IsValid())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProviderWithOptions_RecordsSpans(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	p := NewProviderWithOptions("", sdktrace.WithSyncer(exp))
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	_, span := p.Tracer().Start(context.Background(), "grid.key")
	span.SetAttributes(AttrKey.String("right"), AttrCursorRow.Int(0), AttrCursorColumn.Int(1))
	span.End()

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "grid.key", spans[0].Name)
	assert.Contains(t, spans[0].Attributes, AttrKey.String("right"))
	assert.Contains(t, spans[0].Attributes, AttrCursorColumn.Int(1))
	assert.Contains(t, spans[0].Resource.Attributes(), attribute.String("service.name", DefaultServiceName))
}
