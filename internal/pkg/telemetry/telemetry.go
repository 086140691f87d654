// Package telemetry sets up OpenTelemetry tracing and the slog bridge used by gRPC logging.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

// Config controls trace export
type Config struct {
	ServiceName string
	// Endpoint is the OTLP/HTTP collector URL; empty disables tracing
	Endpoint string
	Enabled  bool
}

// ShutdownFunc flushes pending spans
type ShutdownFunc func(context.Context) error

// Setup installs a global tracer provider exporting to cfg.Endpoint.
// Tracing is opt-in: with no endpoint, or Enabled false, a no-op shutdown is
// returned and the global provider is left alone.
func Setup(ctx context.Context, cfg Config) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	if !cfg.Enabled || cfg.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(cfg.Endpoint))
	if err != nil {
		return noop, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create trace exporter")
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return noop, errors.WrapWithCode(err, errors.CodeInternal, "failed to build trace resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
