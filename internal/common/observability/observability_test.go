package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewWithoutTracing(t *testing.T) {
	obs, err := New(Config{ServiceName: "test", Registerer: prometheus.NewRegistry()})
	require.NoError(t, err)
	defer func() { assert.NoError(t, obs.Shutdown(context.Background())) }()

	_, span := obs.StartSpan(context.Background(), "score")
	assert.False(t, span.SpanContext().IsValid(), "noop tracer yields invalid span contexts")
	EndSpan(span, nil)
}

func TestStartSpanRecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	obs, err := New(Config{ServiceName: "test", Registerer: prometheus.NewRegistry()}, WithSpanProcessor(recorder))
	require.NoError(t, err)
	defer obs.Shutdown(context.Background())

	ctx, span := obs.StartSpan(context.Background(), "score-riasec",
		attribute.String(AttrInstrument, "riasec"))
	_, child := obs.StartSpan(ctx, "scoring.Score")
	EndSpan(child, nil)
	EndSpan(span, errors.New("boom"))

	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "scoring.Score", ended[0].Name())
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())

	root := ended[1]
	assert.Equal(t, codes.Error, root.Status().Code)
	assert.Contains(t, root.Attributes(), attribute.String(AttrInstrument, "riasec"))
	assert.Len(t, root.Events(), 1)
}

func TestRecordersOnConfiguredMeter(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := New(Config{ServiceName: "test", Registerer: reg})
	require.NoError(t, err)
	defer obs.Shutdown(context.Background())

	ctx := context.Background()
	obs.RecordJobProcessed(ctx, "score-riasec", "success")
	obs.RecordJobDuration(ctx, "score-riasec", 3*time.Millisecond, "success")
	obs.RecordScored(ctx, "riasec")

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "jobs.processed_total")
	assert.Contains(t, names, "assessments.scored_total")
}

func TestNilObservabilityIsSafe(t *testing.T) {
	var obs *Observability
	ctx := context.Background()
	obs.RecordJobProcessed(ctx, "x", "success")
	obs.RecordJobDuration(ctx, "x", time.Second, "success")
	obs.RecordScored(ctx, "riasec")
	_, span := obs.StartSpan(ctx, "x")
	EndSpan(span, nil)
	assert.NoError(t, obs.Shutdown(ctx))
}
