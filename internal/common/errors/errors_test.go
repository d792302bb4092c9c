package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"orientation-workers/internal/common/camunda/camundatest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureLogger struct {
	messages []string
	fields   []map[string]interface{}
}

func (l *captureLogger) Error(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
	l.fields = append(l.fields, fields)
}

func TestConvertToBPMNError(t *testing.T) {
	tests := []struct {
		name      string
		err       *StandardError
		code      string
		retries   int
		retryable bool
		category  string
	}{
		{"parse", NewParseError(fmt.Errorf("unexpected EOF")), "PARSE_ERROR", 0, false, "VALIDATION"},
		{"invalid input", NewAssessmentInputInvalidError("responses: is required"), "ASSESSMENT_INPUT_INVALID", 0, false, "VALIDATION"},
		{"unknown instrument", NewUnknownInstrumentError("astrology"), "UNKNOWN_INSTRUMENT", 0, false, "SCORING"},
		{"timeout", NewScoringTimeoutError("riasec"), "SCORING_TIMEOUT", 2, true, "SCORING"},
		{"completion", NewJobCompletionFailedError(fmt.Errorf("unavailable")), "JOB_COMPLETION_FAILED", 3, true, "WORKFLOW"},
		{"broker unavailable", NewBrokerError(ErrCodeBrokerUnavailable, "topology", fmt.Errorf("connection refused")), "BROKER_UNAVAILABLE", 3, true, "WORKFLOW"},
		{"broker rejected", NewBrokerError(ErrCodeBrokerRejected, "complete", fmt.Errorf("not found")), "BROKER_REJECTED", 0, false, "WORKFLOW"},
		{"internal", NewInternalError(fmt.Errorf("nil map")), "INTERNAL_ERROR", 0, false, "OTHER"},
		{"unmapped", &StandardError{Code: "CUSTOM", Message: "custom"}, "CUSTOM", 0, false, "OTHER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ConvertToBPMNError(tt.err)
			assert.Equal(t, tt.code, b.Code)
			assert.Equal(t, tt.retries, b.Retries)
			assert.Equal(t, tt.retryable, b.Retryable)
			assert.Equal(t, tt.category, GetErrorCategory(tt.err.Code))
			assert.Equal(t, string(tt.err.Code), b.ErrorVariables["originalErrorCode"])
		})
	}
}

func TestMetadataBecomesErrorVariables(t *testing.T) {
	err := NewAssessmentInputInvalidError("bad").WithMetadata("instrument", "riasec")
	vars := ConvertToBPMNError(err).ToErrorVariables()

	assert.Equal(t, "riasec", vars["instrument"])
	assert.Equal(t, "ASSESSMENT_INPUT_INVALID", vars["errorCode"])
	assert.Equal(t, "bad", vars["errorDetails"])
	assert.Equal(t, false, vars["retryable"])
}

func TestAsStandardError(t *testing.T) {
	base := NewUnknownInstrumentError("x")
	wrapped := fmt.Errorf("dispatch: %w", base)

	got, ok := AsStandardError(wrapped)
	require.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsStandardError(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestHandleJobErrorThrowsBusinessErrors(t *testing.T) {
	client := camundatest.NewJobClient()
	log := &captureLogger{}
	h := NewErrorHandler(log)

	job := camundatest.NewJob(7, "score-riasec", 3, nil)
	h.HandleJobError(context.Background(), client, job, NewAssessmentInputInvalidError("responses: is required"))

	require.Len(t, client.Gateway.Thrown, 1)
	assert.Empty(t, client.Gateway.Failed)
	thrown := client.Gateway.Thrown[0]
	assert.Equal(t, int64(7), thrown.JobKey)
	assert.Equal(t, "ASSESSMENT_INPUT_INVALID", thrown.ErrorCode)

	var vars map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(thrown.Variables), &vars))
	assert.Equal(t, "responses: is required", vars["errorDetails"])

	require.Len(t, log.fields, 1)
	assert.Equal(t, "VALIDATION", log.fields[0]["errorCategory"])
}

func TestHandleJobErrorFailsRetryableErrors(t *testing.T) {
	tests := []struct {
		name        string
		jobRetries  int32
		wantFailed  bool
		wantRetries int32
	}{
		{"budget caps remaining retries", 10, true, 3},
		{"job retries decrement", 3, true, 2},
		{"last retry throws", 1, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := camundatest.NewJobClient()
			h := NewErrorHandler(&captureLogger{})
			job := camundatest.NewJob(9, "score-riasec", tt.jobRetries, nil)

			h.HandleJobError(context.Background(), client, job, NewJobCompletionFailedError(fmt.Errorf("unavailable")))

			if !tt.wantFailed {
				assert.Empty(t, client.Gateway.Failed)
				require.Len(t, client.Gateway.Thrown, 1)
				return
			}
			require.Len(t, client.Gateway.Failed, 1)
			assert.Equal(t, tt.wantRetries, client.Gateway.Failed[0].Retries)
			assert.Equal(t, "Failed to complete job", client.Gateway.Failed[0].ErrorMessage)
		})
	}
}

func TestHandleJobErrorNormalizesPlainErrors(t *testing.T) {
	client := camundatest.NewJobClient()
	h := NewErrorHandler(&captureLogger{})

	h.HandleJobError(context.Background(), client, camundatest.NewJob(1, "score-riasec", 3, nil), fmt.Errorf("boom"))

	require.Len(t, client.Gateway.Thrown, 1)
	assert.Equal(t, "INTERNAL_ERROR", client.Gateway.Thrown[0].ErrorCode)
}

func TestHandleJobErrorLogsRejectedReports(t *testing.T) {
	client := camundatest.NewJobClient()
	log := &captureLogger{}
	h := NewErrorHandler(log)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h.HandleJobError(ctx, client, camundatest.NewJob(5, "score-riasec", 3, nil), NewScoringTimeoutError("riasec"))

	assert.Empty(t, client.Gateway.Failed)
	require.Len(t, log.messages, 2)
	assert.Equal(t, "Failed to report job error", log.messages[1])
	assert.Equal(t, "fail", log.fields[1]["command"])
	assert.Contains(t, log.fields[1]["error"], "context canceled")
}
