package observability

import (
	"context"
	"fmt"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Config selects the exporters of an Observability instance.
type Config struct {
	ServiceName    string
	TracingEnabled bool
	JaegerEndpoint string
	SampleRatio    float64
	// Registerer receives the otel prometheus collector. Nil means the default registry.
	Registerer promclient.Registerer
}

// Option tunes New beyond what Config carries.
type Option func(*options)

type options struct {
	spanProcessors []sdktrace.SpanProcessor
}

// WithSpanProcessor registers an extra span processor and turns tracing on even when
// no jaeger endpoint is configured.
func WithSpanProcessor(sp sdktrace.SpanProcessor) Option {
	return func(o *options) { o.spanProcessors = append(o.spanProcessors, sp) }
}

// Observability bundles the otel meter and tracer used around every job.
type Observability struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	meter          otelmetric.Meter
	tracer         trace.Tracer
	jobCounter     otelmetric.Int64Counter
	jobDuration    otelmetric.Float64Histogram
	scoredCounter  otelmetric.Int64Counter
}

// New wires the otel prometheus exporter and, when enabled, a jaeger trace pipeline.
func New(cfg Config, opts ...Option) (*Observability, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "orientation-workers"
	}

	exporterOpts := []prometheus.Option{}
	if cfg.Registerer != nil {
		exporterOpts = append(exporterOpts, prometheus.WithRegisterer(cfg.Registerer))
	}
	exporter, err := prometheus.New(exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)
	meter := provider.Meter(cfg.ServiceName)

	jobCounter, err := meter.Int64Counter(
		"jobs.processed",
		otelmetric.WithDescription("Number of jobs processed"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create jobs.processed counter: %w", err)
	}

	jobDuration, err := meter.Float64Histogram(
		"jobs.duration",
		otelmetric.WithDescription("Job processing duration"),
		otelmetric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create jobs.duration histogram: %w", err)
	}

	scoredCounter, err := meter.Int64Counter(
		"assessments.scored",
		otelmetric.WithDescription("Number of score records produced"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create assessments.scored counter: %w", err)
	}

	tp, tracer, err := newTracer(cfg, o)
	if err != nil {
		_ = provider.Shutdown(context.Background())
		return nil, err
	}

	return &Observability{
		meterProvider:  provider,
		tracerProvider: tp,
		meter:          meter,
		tracer:         tracer,
		jobCounter:     jobCounter,
		jobDuration:    jobDuration,
		scoredCounter:  scoredCounter,
	}, nil
}

func (o *Observability) RecordJobProcessed(ctx context.Context, taskType, status string) {
	if o == nil || o.jobCounter == nil {
		return
	}
	o.jobCounter.Add(ctx, 1, otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
		attribute.String("status", status),
	))
}

func (o *Observability) RecordJobDuration(ctx context.Context, taskType string, duration time.Duration, status string) {
	if o == nil || o.jobDuration == nil {
		return
	}
	o.jobDuration.Record(ctx, float64(duration.Microseconds())/1000, otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
		attribute.String("status", status),
	))
}

// RecordScored counts a score record for the instrument.
func (o *Observability) RecordScored(ctx context.Context, instrument string) {
	if o == nil || o.scoredCounter == nil {
		return
	}
	o.scoredCounter.Add(ctx, 1, otelmetric.WithAttributes(attribute.String("instrument", instrument)))
}

// Shutdown flushes pending spans and stops both providers.
func (o *Observability) Shutdown(ctx context.Context) error {
	if o == nil {
		return nil
	}
	var firstErr error
	if o.tracerProvider != nil {
		if err := o.tracerProvider.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if o.meterProvider != nil {
		if err := o.meterProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
