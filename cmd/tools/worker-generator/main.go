// cmd/tools/worker-generator/main.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"orientation-workers/internal/scoring"
	"orientation-workers/pkg/registry"
)

// WorkerData holds data for templates
type WorkerData struct {
	Name          string
	PackageName   string
	TaskType      string
	Description   string
	InstrumentRef string
	ResultType    string
	MaxJobsActive int
	ErrorCodes    []string
}

// instrumentSymbols maps an instrument id to its scoring constant and record type.
var instrumentSymbols = map[scoring.InstrumentID][2]string{
	scoring.InstrumentRIASEC:               {"InstrumentRIASEC", "RIASECResult"},
	scoring.InstrumentMultipleIntelligence: {"InstrumentMultipleIntelligence", "IntelligenceResult"},
	scoring.InstrumentLearningStyle:        {"InstrumentLearningStyle", "LearningStyleResult"},
	scoring.InstrumentEntrepreneurial:      {"InstrumentEntrepreneurial", "EntrepreneurialResult"},
	scoring.InstrumentCareerTransition:     {"InstrumentCareerTransition", "CareerTransitionResult"},
	scoring.InstrumentNoDiploma:            {"InstrumentNoDiploma", "NoDiplomaResult"},
}

const configTemplate = `package {{ .PackageName }}

import (
	"fmt"
	"time"

	"orientation-workers/internal/common/config"
)

type Config struct {
	Enabled       bool          ` + "`mapstructure:\"enabled\"`" + `
	MaxJobsActive int           ` + "`mapstructure:\"max_jobs_active\"`" + `
	Timeout       time.Duration ` + "`mapstructure:\"timeout\"`" + `
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: {{ .MaxJobsActive }},
		Timeout:       10 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxJobsActive <= 0 {
		return fmt.Errorf("max_jobs_active must be positive")
	}
	return nil
}

// WorkerConfig converts the handler settings into job worker settings.
func (c *Config) WorkerConfig() config.WorkerConfig {
	return config.WorkerConfig{
		Enabled:       c.Enabled,
		MaxJobsActive: c.MaxJobsActive,
		Timeout:       int(c.Timeout / time.Millisecond),
	}
}

func createConfigFromAppConfig(appCfg *config.Config, custom *Config) *Config {
	if custom != nil {
		return custom
	}
	cfg := DefaultConfig()
	if appCfg == nil {
		return cfg
	}
	wcfg := config.GetWorkerConfig(appCfg, TaskType)
	cfg.Enabled = wcfg.Enabled
	cfg.MaxJobsActive = wcfg.MaxJobsActive
	cfg.Timeout = config.GetDuration(wcfg.Timeout)
	return cfg
}
`

const modelsTemplate = `package {{ .PackageName }}

import (
	"orientation-workers/internal/scoring"
	"orientation-workers/internal/workers/assessment"
)

type Input = assessment.Input

type Output struct {
	assessment.Envelope
	Result scoring.{{ .ResultType }} ` + "`json:\"result\"`" + `
}
`

const handlerTemplate = `package {{ .PackageName }}

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

// TaskType of the {{ .Name }} activity. Error codes: {{ join .ErrorCodes ", " }}.
var TaskType = registry.TaskTypeFor(scoring.{{ .InstrumentRef }})

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
		Instrument:    scoring.{{ .InstrumentRef }},
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

// Execute {{ .Description }}
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	record, err := h.runner.Score(ctx, input)
	if err != nil {
		return nil, err
	}
	result, ok := record.(scoring.{{ .ResultType }})
	if !ok {
		return nil, assessment.UnexpectedRecord(record)
	}

	return &Output{
		Envelope: h.runner.Envelope(input),
		Result:   result,
	}, nil
}
`

var templates = map[string]string{
	"config.go":  configTemplate,
	"models.go":  modelsTemplate,
	"handler.go": handlerTemplate,
}

func main() {
	activity := flag.String("activity", "", "Activity ID from registry (e.g., assessment.score.riasec)")
	outputDir := flag.String("output", "./internal/workers/", "Output directory for the generated worker")
	registryPath := flag.String("registry", "", "Path to the activity registry JSON file (empty uses the built-in registry)")
	force := flag.Bool("force", false, "Overwrite existing files")
	flag.Parse()

	if *activity == "" {
		fmt.Println("Usage: worker-generator --activity <id> [--output <dir>] [--registry <path>] [--force]")
		fmt.Println("\nExample:")
		fmt.Println("  go run ./cmd/tools/worker-generator --activity assessment.score.riasec")
		os.Exit(1)
	}

	reg, err := registry.Load(*registryPath)
	if err != nil {
		fmt.Printf("Error loading registry: %v\n", err)
		os.Exit(1)
	}

	files, err := generate(reg, *activity, *outputDir, *force)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	for _, f := range files {
		fmt.Printf("Generated %s\n", f)
	}
	fmt.Printf("\nNext steps:\n")
	fmt.Printf("  1. Write handler_test.go for the new worker\n")
	fmt.Printf("  2. Register the worker in cmd/worker-manager/main.go\n")
	fmt.Printf("  3. Add the worker to configs/config.yaml\n")
}

// generate renders the worker scaffold of one registry activity and returns the written paths.
func generate(reg *registry.ActivityRegistry, activityID, outputDir string, force bool) ([]string, error) {
	var found *registry.Activity
	for i := range reg.Activities {
		if reg.Activities[i].ID == activityID {
			found = &reg.Activities[i]
			break
		}
	}
	if found == nil {
		return nil, fmt.Errorf("activity %q not found in registry", activityID)
	}

	symbols, ok := instrumentSymbols[scoring.InstrumentID(found.Instrument)]
	if !ok {
		return nil, fmt.Errorf("activity %s: no scoring symbols for instrument %q", found.ID, found.Instrument)
	}

	data := WorkerData{
		Name:          found.DisplayName,
		PackageName:   strings.ReplaceAll(found.TaskType, "-", ""),
		TaskType:      found.TaskType,
		Description:   strings.TrimSuffix(lowerFirst(found.Description), ".") + ".",
		InstrumentRef: symbols[0],
		ResultType:    symbols[1],
		MaxJobsActive: 10,
		ErrorCodes:    found.ErrorCodes,
	}

	workerDir := filepath.Join(outputDir, mapCategoryToDirectory(found.Category), found.TaskType)
	if err := os.MkdirAll(workerDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	funcMap := template.FuncMap{"join": strings.Join}
	var written []string
	for _, name := range []string{"config.go", "models.go", "handler.go"} {
		path := filepath.Join(workerDir, name)
		if _, err := os.Stat(path); err == nil && !force {
			return written, fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		tmpl, err := template.New(name).Funcs(funcMap).Parse(templates[name])
		if err != nil {
			return written, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return written, fmt.Errorf("failed to execute template %s: %w", name, err)
		}
		src, err := format.Source(buf.Bytes())
		if err != nil {
			return written, fmt.Errorf("generated %s does not format: %w", name, err)
		}
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// mapCategoryToDirectory maps registry categories to directory names
func mapCategoryToDirectory(category string) string {
	switch category {
	case registry.CategoryName:
		return "assessment"
	default:
		return strings.ToLower(category)
	}
}
