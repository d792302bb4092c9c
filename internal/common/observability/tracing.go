package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "orientation-workers/assessment"

// Span attribute keys.
const (
	AttrTaskType     = "job.task_type"
	AttrJobKey       = "job.key"
	AttrInstrument   = "assessment.instrument"
	AttrSubmissionID = "assessment.submission_id"
	AttrDominant     = "assessment.dominant"
	AttrDefaulted    = "assessment.defaulted_answers"
)

func newTracer(cfg Config, o options) (*sdktrace.TracerProvider, trace.Tracer, error) {
	enabled := (cfg.TracingEnabled && cfg.JaegerEndpoint != "") || len(o.spanProcessors) > 0
	if !enabled {
		return nil, noop.NewTracerProvider().Tracer(tracerName), nil
	}

	ratio := cfg.SampleRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}

	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))
	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	}

	if cfg.TracingEnabled && cfg.JaegerEndpoint != "" {
		exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(cfg.JaegerEndpoint)))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create jaeger exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exporter))
	}
	for _, sp := range o.spanProcessors {
		tpOpts = append(tpOpts, sdktrace.WithSpanProcessor(sp))
	}

	provider := sdktrace.NewTracerProvider(tpOpts...)
	otel.SetTracerProvider(provider)
	return provider, provider.Tracer(tracerName), nil
}

// StartSpan starts a span under ctx. It is safe on a nil receiver.
func (o *Observability) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if o == nil || o.tracer == nil {
		return noop.NewTracerProvider().Tracer(tracerName).Start(ctx, name)
	}
	return o.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records err on the span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
