// Package trace sets up OpenTelemetry tracing for key handling.
//
// Tracing is off unless OTEL_EXPORTER_OTLP_ENDPOINT is set; a disabled
// (nil) Provider hands out no-op tracers so callers never branch.
package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// EndpointEnv enables the OTLP/HTTP exporter when set.
	EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"
	// DefaultServiceName is used when no service name is configured.
	DefaultServiceName = "locgrid"

	instrumentationName = "locgrid/ui"
)

// Span attribute keys.
const (
	AttrKey          = attribute.Key("locgrid.key")
	AttrCursorRow    = attribute.Key("locgrid.cursor.row")
	AttrCursorColumn = attribute.Key("locgrid.cursor.column")
	AttrMode         = attribute.Key("locgrid.mode")
)

// Provider owns an SDK tracer provider.
type Provider struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewProvider creates an OTLP/HTTP provider if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled). The exporter reads
// the standard OTEL_EXPORTER_OTLP_* variables itself.
func NewProvider(ctx context.Context, serviceName string) (*Provider, error) {
	if os.Getenv(EndpointEnv) == "" {
		return nil, nil
	}
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	return NewProviderWithOptions(serviceName, sdktrace.WithBatcher(exporter)), nil
}

// NewProviderWithOptions builds a provider from SDK options, e.g. a syncer
// around an in-memory exporter.
func NewProviderWithOptions(serviceName string, opts ...sdktrace.TracerProviderOption) *Provider {
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	opts = append([]sdktrace.TracerProviderOption{sdktrace.WithResource(res)}, opts...)
	provider := sdktrace.NewTracerProvider(opts...)
	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(instrumentationName),
	}
}

// Tracer returns the provider's tracer, or a no-op tracer when disabled.
func (p *Provider) Tracer() oteltrace.Tracer {
	if p == nil {
		return noop.NewTracerProvider().Tracer(instrumentationName)
	}
	return p.tracer
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
