package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default worker settings used when a task type has no workers entry.
const (
	DefaultWorkerMaxJobsActive = 5
	DefaultWorkerTimeout       = 30000
	DefaultWorkerMaxRetries    = 3
)

// Load reads configs/config.yaml, merges configs/config.<APP_ENVIRONMENT>.yaml over it,
// then applies environment overrides, defaults and validation.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")
	if root := findProjectRoot(); root != "" {
		v.AddConfigPath(filepath.Join(root, "configs"))
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig()

	cfg, err := finalize(v)
	if err != nil {
		return nil, err
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = env
	}
	return cfg, nil
}

// LoadFromFile reads a single YAML file with the same override, default and validation steps.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return finalize(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	// CAMUNDA_BROKER_ADDRESS overrides camunda.broker_address.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "orientation-workers")
	v.SetDefault("camunda.broker_address", "localhost:26500")
	v.SetDefault("camunda.use_plaintext_connection", true)
	v.SetDefault("camunda.max_jobs_active", 10)
	v.SetDefault("camunda.timeout", 30000)
	v.SetDefault("camunda.request_timeout", 30000)
	v.SetDefault("camunda.connect_retries", 5)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("observability.metrics_address", ":8080")
	v.SetDefault("observability.sample_ratio", 1.0)
	v.SetDefault("scoring.riasec_variant", "standard")
}

func finalize(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// loadEnvFile loads the first .env found from the working directory upwards.
// A missing file is not an error; the process environment is used as is.
func loadEnvFile() string {
	possiblePaths := []string{".env", "../.env", "../../.env", "../../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return path
			}
		}
	}
	return ""
}

func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// expandEnvVars replaces ${VAR} placeholders in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok || !strings.Contains(strVal, "$") {
			continue
		}
		if expanded := os.ExpandEnv(strVal); expanded != strVal && expanded != "" {
			v.Set(key, expanded)
		}
	}
}

func applyDefaults(cfg *Config) {
	for key, worker := range cfg.Workers {
		if worker.MaxJobsActive == 0 {
			worker.MaxJobsActive = DefaultWorkerMaxJobsActive
		}
		if worker.Timeout == 0 {
			worker.Timeout = DefaultWorkerTimeout
		}
		if worker.MaxRetries == 0 {
			worker.MaxRetries = DefaultWorkerMaxRetries
		}
		cfg.Workers[key] = worker
	}
}

var validate = validator.New()

func validateConfig(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	if cfg.Observability.TracingEnabled && cfg.Observability.JaegerEndpoint == "" {
		return fmt.Errorf("observability.jaeger_endpoint is required when tracing is enabled")
	}
	return nil
}

func GetWorkerConfig(cfg *Config, workerName string) WorkerConfig {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker
	}
	return WorkerConfig{
		Enabled:       true,
		MaxJobsActive: DefaultWorkerMaxJobsActive,
		Timeout:       DefaultWorkerTimeout,
		MaxRetries:    DefaultWorkerMaxRetries,
	}
}
