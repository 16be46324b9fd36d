// Package observability provides OpenTelemetry integration and audit logging
// for intercepted calls.
package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/victoralfred/execshim/intercept"
)

// TelemetryConfig configures telemetry.
type TelemetryConfig struct {
	// ServiceName is the service name for tracing.
	ServiceName string `yaml:"service_name"`

	// ServiceVersion is the service version.
	ServiceVersion string `yaml:"service_version"`

	// Environment is the deployment environment.
	Environment string `yaml:"environment"`

	// EnableTracing enables distributed tracing.
	EnableTracing bool `yaml:"enable_tracing"`

	// EnableMetrics enables metrics collection.
	EnableMetrics bool `yaml:"enable_metrics"`
}

// DefaultTelemetryConfig returns default configuration.
func DefaultTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		ServiceName:    "execshim",
		ServiceVersion: "1.0.0",
		Environment:    "development",
		EnableTracing:  true,
		EnableMetrics:  true,
	}
}

// Telemetry is the OTEL-backed observability provider. It satisfies
// intercept.Telemetry and can be installed via Builder.WithTelemetry.
type Telemetry struct {
	config TelemetryConfig
	tracer trace.Tracer
	meter  metric.Meter

	// Metrics
	interceptCounter metric.Int64Counter
	redirectCounter  metric.Int64Counter
	errorCounter     metric.Int64Counter
}

// NewTelemetry creates a new telemetry instance.
func NewTelemetry(config TelemetryConfig) (*Telemetry, error) {
	t := &Telemetry{
		config: config,
		tracer: otel.Tracer(config.ServiceName),
		meter:  otel.Meter(config.ServiceName),
	}

	var err error

	t.interceptCounter, err = t.meter.Int64Counter(
		intercept.MetricIntercepts,
		metric.WithDescription("Total number of intercepted calls"),
	)
	if err != nil {
		return nil, err
	}

	t.redirectCounter, err = t.meter.Int64Counter(
		intercept.MetricRedirects,
		metric.WithDescription("Total number of redirected calls"),
	)
	if err != nil {
		return nil, err
	}

	t.errorCounter, err = t.meter.Int64Counter(
		intercept.MetricExecErrors,
		metric.WithDescription("Total number of process replacement failures"),
	)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// StartSpan implements intercept.Telemetry.
func (t *Telemetry) StartSpan(ctx context.Context, name string) (context.Context, func()) {
	if !t.config.EnableTracing {
		return ctx, func() {}
	}

	ctx, span := t.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, func() {
		span.End()
	}
}

// RecordCounter implements intercept.Telemetry.
// Unknown metric names are ignored.
func (t *Telemetry) RecordCounter(name string, labels map[string]string) {
	if !t.config.EnableMetrics {
		return
	}

	attrs := labelsToAttributes(labels)

	switch name {
	case intercept.MetricIntercepts:
		t.interceptCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	case intercept.MetricRedirects:
		t.redirectCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	case intercept.MetricExecErrors:
		t.errorCounter.Add(context.Background(), 1, metric.WithAttributes(attrs...))
	}
}

// labelsToAttributes converts labels to OTEL attributes.
func labelsToAttributes(labels map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for k, v := range labels {
		attrs = append(attrs, attribute.String(k, v))
	}
	return attrs
}

// NoopTelemetry returns a no-op telemetry implementation.
func NoopTelemetry() intercept.Telemetry {
	return &noopTelemetry{}
}

type noopTelemetry struct{}

func (t *noopTelemetry) StartSpan(ctx context.Context, name string) (context.Context, func()) {
	return ctx, func() {}
}

func (t *noopTelemetry) RecordCounter(name string, labels map[string]string) {}
