package scorecareertransition

import (
	"fmt"
	"time"

	"orientation-workers/internal/common/config"
)

type Config struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxJobsActive int           `mapstructure:"max_jobs_active"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 5,
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
