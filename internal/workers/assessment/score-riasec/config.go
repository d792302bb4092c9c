package scoreriasec

import (
	"fmt"
	"time"

	"orientation-workers/internal/common/config"
	"orientation-workers/internal/scoring"
)

type Config struct {
	Enabled       bool                  `mapstructure:"enabled"`
	MaxJobsActive int                   `mapstructure:"max_jobs_active"`
	Timeout       time.Duration         `mapstructure:"timeout"`
	Variant       scoring.RIASECVariant `mapstructure:"riasec_variant"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 10,
		Timeout:       10 * time.Second,
		Variant:       scoring.RIASECVariantStandard,
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxJobsActive <= 0 {
		return fmt.Errorf("max_jobs_active must be positive")
	}
	switch c.Variant {
	case scoring.RIASECVariantStandard, scoring.RIASECVariantHook:
	default:
		return fmt.Errorf("unknown riasec variant %q", c.Variant)
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

// createConfigFromAppConfig layers the workers and scoring sections of the app
// config over the defaults. A custom config wins over both.
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
	if appCfg.Scoring.RIASECVariant != "" {
		cfg.Variant = scoring.RIASECVariant(appCfg.Scoring.RIASECVariant)
	}
	return cfg
}
