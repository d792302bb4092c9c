package camunda

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"orientation-workers/internal/common/camunda/camundatest"
	"orientation-workers/internal/common/errors"
	"orientation-workers/internal/common/logger"
	"orientation-workers/internal/common/metrics"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var fastRetry = &RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 4 * time.Millisecond}

func TestMapZeebeError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		code      errors.ErrorCode
		retryable bool
	}{
		{"grpc unavailable", status.Error(codes.Unavailable, "no leader"), errors.ErrCodeBrokerUnavailable, true},
		{"grpc resource exhausted", status.Error(codes.ResourceExhausted, "backpressure"), errors.ErrCodeBrokerUnavailable, true},
		{"grpc deadline", status.Error(codes.DeadlineExceeded, "slow"), errors.ErrCodeBrokerTimeout, true},
		{"grpc not found", status.Error(codes.NotFound, "job 7 not found"), errors.ErrCodeBrokerRejected, false},
		{"context deadline", fmt.Errorf("send: %w", context.DeadlineExceeded), errors.ErrCodeBrokerTimeout, true},
		{"refused message", fmt.Errorf("dial tcp: connection refused"), errors.ErrCodeBrokerUnavailable, true},
		{"other message", fmt.Errorf("invalid variables"), errors.ErrCodeBrokerRejected, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapZeebeError(tt.err, "complete")
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.retryable, got.Retryable)
			assert.Contains(t, got.Message, "complete")
		})
	}
}

func TestMapZeebeErrorKeepsStandardErrors(t *testing.T) {
	orig := errors.NewInternalError(fmt.Errorf("boom"))
	assert.Same(t, orig, MapZeebeError(fmt.Errorf("wrapped: %w", orig), "op"))
}

func TestRetry(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), fastRetry, logger.NewTestLogger(t), "topology", func(context.Context) error {
			calls++
			if calls < 3 {
				return status.Error(codes.Unavailable, "starting")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on rejected", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), fastRetry, logger.NewTestLogger(t), "complete", func(context.Context) error {
			calls++
			return status.Error(codes.InvalidArgument, "bad")
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)

		stdErr, ok := errors.AsStandardError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeBrokerRejected, stdErr.Code)
		assert.Equal(t, 1, stdErr.Metadata["attempts"])
	})

	t.Run("exhausts budget", func(t *testing.T) {
		calls := 0
		err := Retry(context.Background(), fastRetry, logger.NewTestLogger(t), "topology", func(context.Context) error {
			calls++
			return status.Error(codes.Unavailable, "down")
		})
		require.Error(t, err)
		assert.Equal(t, fastRetry.MaxRetries+1, calls)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cfg := &RetryConfig{MaxRetries: 5, BaseDelay: time.Hour}
		calls := 0
		err := Retry(ctx, cfg, logger.NewTestLogger(t), "topology", func(context.Context) error {
			calls++
			cancel()
			return status.Error(codes.Unavailable, "down")
		})
		stdErr, ok := errors.AsStandardError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeBrokerTimeout, stdErr.Code)
		assert.Equal(t, 1, calls)
	})
}

func TestNewClientWithConfigRetriesDial(t *testing.T) {
	orig := newZeebeClient
	t.Cleanup(func() { newZeebeClient = orig })

	dials := 0
	newZeebeClient = func(*zbc.ClientConfig) (zbc.Client, error) {
		dials++
		return nil, status.Error(codes.Unavailable, "gateway down")
	}

	_, err := NewClientWithConfig(context.Background(), &ClientConfig{
		GatewayAddress: "localhost:26500",
		RetryConfig:    &RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond},
	}, logger.NewTestLogger(t))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "localhost:26500")
	assert.Equal(t, 3, dials)
	var stdErr *errors.StandardError
	require.True(t, stderrors.As(err, &stdErr))
	assert.Equal(t, errors.ErrCodeBrokerUnavailable, stdErr.Code)
}

func TestCompleteJob(t *testing.T) {
	client := camundatest.NewJobClient()
	job := camundatest.NewJob(42, "score-riasec", 3, nil)

	require.NoError(t, CompleteJob(context.Background(), client, job, map[string]interface{}{"instrument": "riasec"}))

	vars, err := client.CompletedVariables(0)
	require.NoError(t, err)
	assert.Equal(t, "riasec", vars["instrument"])
	assert.Equal(t, int64(42), client.Gateway.Completed[0].JobKey)

	client.Gateway.CompleteErr = status.Error(codes.NotFound, "job gone")
	assert.Error(t, CompleteJob(context.Background(), client, job, map[string]interface{}{}))
}

func TestInstrumentRecoversPanics(t *testing.T) {
	const taskType = "score-test-panic"
	client := camundatest.NewJobClient()
	log := logger.NewTestLogger(t)
	errHandler := errors.NewErrorHandler(log)

	var panicking worker.JobHandler = func(worker.JobClient, entities.Job) {
		panic("nil catalog")
	}
	wrapped := Instrument(taskType, panicking, nil, errHandler, log)

	assert.NotPanics(t, func() {
		wrapped(client, camundatest.NewJob(5, taskType, 3, nil))
	})

	require.Len(t, client.Gateway.Thrown, 1)
	assert.Equal(t, "INTERNAL_ERROR", client.Gateway.Thrown[0].ErrorCode)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.WorkerJobsFailed.WithLabelValues(taskType, "INTERNAL_ERROR")))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.WorkerJobsActive.WithLabelValues(taskType)))
}

func TestInstrumentPassesThrough(t *testing.T) {
	const taskType = "score-test-pass"
	client := camundatest.NewJobClient()
	log := logger.NewTestLogger(t)

	called := false
	wrapped := Instrument(taskType, func(c worker.JobClient, job entities.Job) {
		called = true
		assert.Equal(t, float64(1), testutil.ToFloat64(metrics.WorkerJobsActive.WithLabelValues(taskType)))
		require.NoError(t, CompleteJob(context.Background(), c, job, map[string]interface{}{}))
	}, nil, errors.NewErrorHandler(log), log)

	wrapped(client, camundatest.NewJob(6, taskType, 3, nil))

	assert.True(t, called)
	assert.Len(t, client.Gateway.Completed, 1)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.WorkerJobsActive.WithLabelValues(taskType)))
}
