// Package assessment holds the job flow shared by every scoring worker: parse and
// validate the job variables, score, record metrics, complete or fail the job.
package assessment

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"orientation-workers/internal/common/camunda"
	"orientation-workers/internal/common/errors"
	"orientation-workers/internal/common/logger"
	"orientation-workers/internal/common/metrics"
	"orientation-workers/internal/common/observability"
	"orientation-workers/internal/common/validation"
	"orientation-workers/internal/scoring"
	"orientation-workers/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultTimeout = 10 * time.Second

// reportTimeout bounds the fail or throw command sent after a job error. It is
// detached from the job context, which may already have expired.
const reportTimeout = 5 * time.Second

// ScoreFunc scores a parsed input. It returns the record used for metrics and the
// output sent as job variables.
type ScoreFunc func(ctx context.Context, input *Input) (scoring.Record, interface{}, error)

type Options struct {
	TaskType      string
	Instrument    scoring.InstrumentID
	Timeout       time.Duration
	Logger        logger.Logger
	Observability *observability.Observability
	// Registry supplies the input schema. Nil means the built-in registry.
	Registry     *registry.ActivityRegistry
	ErrorHandler *errors.ErrorHandler

	Now   func() time.Time
	NewID func() string
}

type Runner struct {
	taskType   string
	instrument scoring.InstrumentID
	timeout    time.Duration
	schema     *validation.Schema
	logger     logger.Logger
	obs        *observability.Observability
	errHandler *errors.ErrorHandler
	now        func() time.Time
	newID      func() string
}

func NewRunner(opts Options) (*Runner, error) {
	if _, ok := scoring.Lookup(opts.Instrument); !ok {
		return nil, errors.NewUnknownInstrumentError(string(opts.Instrument))
	}

	reg := opts.Registry
	if reg == nil {
		reg = registry.Default()
	}
	activity, ok := reg.Lookup(opts.TaskType)
	if !ok {
		return nil, fmt.Errorf("no activity registered for task type %s", opts.TaskType)
	}
	schema, err := validation.Compile(activity.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("activity %s: %w", activity.ID, err)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	log = log.WithFields(map[string]interface{}{"taskType": opts.TaskType})

	r := &Runner{
		taskType:   opts.TaskType,
		instrument: opts.Instrument,
		timeout:    opts.Timeout,
		schema:     schema,
		logger:     log,
		obs:        opts.Observability,
		errHandler: opts.ErrorHandler,
		now:        opts.Now,
		newID:      opts.NewID,
	}
	if r.timeout <= 0 {
		r.timeout = DefaultTimeout
	}
	if r.errHandler == nil {
		r.errHandler = errors.NewErrorHandler(log)
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.newID == nil {
		r.newID = func() string { return uuid.NewString() }
	}
	return r, nil
}

func (r *Runner) Run(client worker.JobClient, job entities.Job, score ScoreFunc) {
	startTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	ctx, span := r.obs.StartSpan(ctx, "score "+string(r.instrument),
		attribute.String(observability.AttrTaskType, r.taskType),
		attribute.Int64(observability.AttrJobKey, job.Key),
		attribute.String(observability.AttrInstrument, string(r.instrument)),
	)

	r.logger.Info("processing job", map[string]interface{}{
		"jobKey":             job.Key,
		"processInstanceKey": job.ProcessInstanceKey,
	})

	input, err := r.ParseInput(job)
	if err != nil {
		r.fail(client, job, err)
		observability.EndSpan(span, err)
		return
	}
	if input.SubmissionID != "" {
		span.SetAttributes(attribute.String(observability.AttrSubmissionID, input.SubmissionID))
	}

	record, output, err := score(ctx, input)
	if err != nil {
		r.fail(client, job, err)
		observability.EndSpan(span, err)
		return
	}

	defaulted := scoring.MissingAnswers(r.instrument, input.Responses)
	dominant := record.Dominant()
	metrics.RecordAssessment(string(r.instrument), dominant, defaulted)
	r.obs.RecordScored(ctx, string(r.instrument))
	span.SetAttributes(
		attribute.StringSlice(observability.AttrDominant, dominant),
		attribute.Int(observability.AttrDefaulted, defaulted),
	)

	r.logger.Info("assessment scored", map[string]interface{}{
		"jobKey":       job.Key,
		"submissionId": input.SubmissionID,
		"instrument":   string(r.instrument),
		"dominant":     dominant,
		"defaulted":    defaulted,
		"confidence":   record.Confidence(),
	})

	if err := camunda.CompleteJob(ctx, client, job, output); err != nil {
		stdErr := errors.NewJobCompletionFailedError(err)
		r.fail(client, job, stdErr)
		observability.EndSpan(span, stdErr)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(r.taskType).Inc()
	r.obs.RecordJobProcessed(ctx, r.taskType, "completed")
	r.logger.Debug("job completed", map[string]interface{}{
		"jobKey":   job.Key,
		"duration": time.Since(startTime).String(),
	})
	observability.EndSpan(span, nil)
}

// ParseInput decodes the job variables after checking them against the activity schema.
func (r *Runner) ParseInput(job entities.Job) (*Input, error) {
	variables, err := job.GetVariablesAsMap()
	if err != nil {
		return nil, errors.NewParseError(err)
	}

	result := r.schema.Validate(variables)
	if !result.Valid {
		return nil, errors.NewAssessmentInputInvalidError(strings.Join(result.GetErrorMessages(), "; ")).
			WithMetadata("instrument", string(r.instrument))
	}

	input := &Input{}
	if s, ok := variables["submissionId"].(string); ok {
		input.SubmissionID = s
	}
	if s, ok := variables["userId"].(string); ok {
		input.UserID = s
	}
	if s, ok := variables["variant"].(string); ok {
		input.Variant = s
	}
	input.Responses, _ = variables["responses"].([]interface{})
	return input, nil
}

// Score runs the instrument analyzer unless ctx has already expired.
func (r *Runner) Score(ctx context.Context, input *Input, opts ...scoring.Option) (scoring.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewScoringTimeoutError(string(r.instrument))
	}
	record, err := scoring.Score(r.instrument, input.Responses, opts...)
	if stderrors.Is(err, scoring.ErrUnknownInstrument) {
		return nil, errors.NewUnknownInstrumentError(string(r.instrument))
	}
	return record, err
}

// Envelope builds the output header for a fresh score record.
func (r *Runner) Envelope(input *Input) Envelope {
	return Envelope{
		ScoringID:    r.newID(),
		Instrument:   r.instrument,
		SubmissionID: input.SubmissionID,
		UserID:       input.UserID,
		ScoredAt:     r.now().UTC().Format(time.RFC3339),
	}
}

// UnexpectedRecord reports a record type the handler does not know how to emit.
func UnexpectedRecord(rec scoring.Record) error {
	return errors.NewInternalError(fmt.Errorf("unexpected record type %T", rec))
}

func (r *Runner) fail(client worker.JobClient, job entities.Job, err error) {
	code := string(errors.ErrCodeInternal)
	if stdErr, ok := errors.AsStandardError(err); ok {
		code = string(stdErr.Code)
	}
	metrics.WorkerJobsFailed.WithLabelValues(r.taskType, code).Inc()

	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()
	r.obs.RecordJobProcessed(ctx, r.taskType, "failed")
	r.errHandler.HandleJobError(ctx, client, job, err)
}
