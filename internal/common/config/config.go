package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig               `mapstructure:"app"`
	Camunda       CamundaConfig           `mapstructure:"camunda"`
	Workers       map[string]WorkerConfig `mapstructure:"workers" validate:"dive"`
	Logging       LoggingConfig           `mapstructure:"logging"`
	Observability ObservabilityConfig     `mapstructure:"observability"`
	Scoring       ScoringConfig           `mapstructure:"scoring"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment" validate:"omitempty,oneof=development staging production test"`
}

type CamundaConfig struct {
	BrokerAddress          string `mapstructure:"broker_address" validate:"required,hostname_port"`
	UsePlaintextConnection bool   `mapstructure:"use_plaintext_connection"`
	MaxJobsActive          int    `mapstructure:"max_jobs_active" validate:"gte=1"`
	Timeout                int    `mapstructure:"timeout" validate:"gte=1"`         // milliseconds
	RequestTimeout         int    `mapstructure:"request_timeout" validate:"gte=1"` // milliseconds
	ConnectRetries         int    `mapstructure:"connect_retries" validate:"gte=0,lte=20"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active" validate:"gte=1"`
	Timeout       int  `mapstructure:"timeout" validate:"gte=1"` // milliseconds
	MaxRetries    int  `mapstructure:"max_retries" validate:"gte=0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
	Output string `mapstructure:"output"`
}

// ObservabilityConfig holds the metrics endpoint and tracing pipeline settings.
type ObservabilityConfig struct {
	MetricsAddress string  `mapstructure:"metrics_address" validate:"required"`
	TracingEnabled bool    `mapstructure:"tracing_enabled"`
	JaegerEndpoint string  `mapstructure:"jaeger_endpoint" validate:"omitempty,url"`
	SampleRatio    float64 `mapstructure:"sample_ratio" validate:"gte=0,lte=1"`
}

// ScoringConfig holds assessment scoring settings.
type ScoringConfig struct {
	RIASECVariant string `mapstructure:"riasec_variant" validate:"oneof=standard hook"`
	// RegistryPath points to an activity registry JSON file overriding the built-in one.
	RegistryPath string `mapstructure:"registry_path"`
}

func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
