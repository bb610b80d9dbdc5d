package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

// Tracer wraps an OTel tracer provider backed by a Jaeger collector.
// Disabled (nil provider) when no endpoint is configured.
type Tracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// NewTracer builds a tracer provider exporting to the given Jaeger
// collector endpoint. An empty endpoint returns a no-op tracer.
func NewTracer(serviceName, jaegerEndpoint string) (*Tracer, error) {
	if jaegerEndpoint == "" {
		return &Tracer{tracer: otel.Tracer(serviceName)}, nil
	}

	exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Jaeger exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)
	otel.SetTracerProvider(provider)

	return &Tracer{
		provider: provider,
		tracer:   provider.Tracer(serviceName),
	}, nil
}

// StartJobSpan starts a span for a single job execution.
func (t *Tracer) StartJobSpan(ctx context.Context, taskType string, jobKey int64) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, taskType, trace.WithAttributes(
		attribute.String("task.type", taskType),
		attribute.Int64("job.key", jobKey),
	))
}

func (t *Tracer) Shutdown() {
	if t.provider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		t.provider.Shutdown(ctx)
	}
}
