package scorecareertransition

import (
	"context"
	"fmt"

	"orientation-workers/internal/common/config"
	"orientation-workers/internal/common/logger"
	"orientation-workers/internal/common/observability"
	"orientation-workers/internal/scoring"
	"orientation-workers/internal/workers/assessment"
	"orientation-workers/pkg/registry"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

var TaskType = registry.TaskTypeFor(scoring.InstrumentCareerTransition)

type Handler struct {
	config *Config
	runner *assessment.Runner
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Logger        logger.Logger
	Observability *observability.Observability
	Registry      *registry.ActivityRegistry
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	cfg := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}

	runner, err := assessment.NewRunner(assessment.Options{
		TaskType:      TaskType,
		Instrument:    scoring.InstrumentCareerTransition,
		Timeout:       cfg.Timeout,
		Logger:        opts.Logger,
		Observability: opts.Observability,
		Registry:      opts.Registry,
	})
	if err != nil {
		return nil, err
	}
	return &Handler{config: cfg, runner: runner}, nil
}

// WorkerConfig reports the job worker settings the handler was built with.
func (h *Handler) WorkerConfig() config.WorkerConfig {
	return h.config.WorkerConfig()
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.runner.Run(client, job, func(ctx context.Context, input *assessment.Input) (scoring.Record, interface{}, error) {
		output, err := h.Execute(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return output.Result, output, nil
	})
}

// Execute combines the pre-scored transition dimensions.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	record, err := h.runner.Score(ctx, input)
	if err != nil {
		return nil, err
	}
	result, ok := record.(scoring.CareerTransitionResult)
	if !ok {
		return nil, assessment.UnexpectedRecord(record)
	}

	return &Output{
		Envelope: h.runner.Envelope(input),
		Result:   result,
	}, nil
}
