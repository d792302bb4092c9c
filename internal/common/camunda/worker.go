// internal/common/camunda/worker.go
package camunda

import (
	"context"
	"fmt"
	"time"

	"orientation-workers/internal/common/config"
	"orientation-workers/internal/common/errors"
	"orientation-workers/internal/common/logger"
	"orientation-workers/internal/common/metrics"
	"orientation-workers/internal/common/observability"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// JobHandler is implemented by every task handler.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
	// WorkerConfig holds the settings the job worker is opened with.
	WorkerConfig() config.WorkerConfig
}

// Instrument wraps a job handler with the active-jobs gauge, the duration
// histograms and panic recovery. A panicking handler fails the job with
// INTERNAL_ERROR instead of taking the worker down.
func Instrument(taskType string, next worker.JobHandler, obs *observability.Observability, errHandler *errors.ErrorHandler, log logger.Logger) worker.JobHandler {
	return func(client worker.JobClient, job entities.Job) {
		start := time.Now()
		metrics.WorkerJobsActive.WithLabelValues(taskType).Inc()
		status := "handled"

		defer func() {
			if r := recover(); r != nil {
				status = "panicked"
				err := errors.NewInternalError(fmt.Errorf("handler panic: %v", r))
				log.Error("handler panicked", map[string]interface{}{
					"taskType": taskType,
					"jobKey":   job.Key,
					"panic":    fmt.Sprint(r),
				})
				metrics.WorkerJobsFailed.WithLabelValues(taskType, string(err.Code)).Inc()
				errHandler.HandleJobError(context.Background(), client, job, err)
			}

			metrics.WorkerJobsActive.WithLabelValues(taskType).Dec()
			elapsed := time.Since(start)
			metrics.WorkerJobDuration.WithLabelValues(taskType).Observe(elapsed.Seconds())
			obs.RecordJobDuration(context.Background(), taskType, elapsed, status)
		}()

		next(client, job)
	}
}

// CompleteJob sends the complete command with the output encoded as job variables.
func CompleteJob(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		return fmt.Errorf("failed to create complete job command: %w", err)
	}

	if _, err := cmd.Send(ctx); err != nil {
		return err
	}
	return nil
}

// StartWorker opens a job worker for taskType unless it is disabled. The returned
// worker is nil when disabled.
func StartWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handler worker.JobHandler, log logger.Logger) worker.JobWorker {
	if !wcfg.Enabled {
		log.Info("worker disabled", map[string]interface{}{"taskType": taskType})
		return nil
	}

	jobWorker := client.NewJobWorker().
		JobType(taskType).
		Handler(handler).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(config.GetDuration(wcfg.Timeout)).
		Name(taskType).
		Open()

	log.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeout_ms":    wcfg.Timeout,
	})
	return jobWorker
}
