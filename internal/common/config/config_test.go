package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFileAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: orientation-workers
workers:
  score-riasec:
    enabled: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "localhost:26500", cfg.Camunda.BrokerAddress)
	assert.Equal(t, 30000, cfg.Camunda.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Observability.MetricsAddress)
	assert.Equal(t, "standard", cfg.Scoring.RIASECVariant)

	w := cfg.Workers["score-riasec"]
	assert.True(t, w.Enabled)
	assert.Equal(t, DefaultWorkerMaxJobsActive, w.MaxJobsActive)
	assert.Equal(t, DefaultWorkerTimeout, w.Timeout)
	assert.Equal(t, DefaultWorkerMaxRetries, w.MaxRetries)
}

func TestLoadFromFileEnvironmentOverrides(t *testing.T) {
	t.Setenv("CAMUNDA_BROKER_ADDRESS", "zeebe:26500")
	t.Setenv("SCORING_RIASEC_VARIANT", "hook")
	t.Setenv("TEST_JAEGER_URL", "http://jaeger:14268/api/traces")

	path := writeConfig(t, `
app:
  name: orientation-workers
observability:
  tracing_enabled: true
  jaeger_endpoint: ${TEST_JAEGER_URL}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "zeebe:26500", cfg.Camunda.BrokerAddress)
	assert.Equal(t, "hook", cfg.Scoring.RIASECVariant)
	assert.Equal(t, "http://jaeger:14268/api/traces", cfg.Observability.JaegerEndpoint)
}

func TestLoadFromFileRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "unknown riasec variant",
			body:    "scoring:\n  riasec_variant: quick\n",
			wantErr: "RIASECVariant failed on oneof",
		},
		{
			name:    "sample ratio above one",
			body:    "observability:\n  sample_ratio: 2\n",
			wantErr: "SampleRatio failed on lte",
		},
		{
			name:    "log level",
			body:    "logging:\n  level: verbose\n",
			wantErr: "Level failed on oneof",
		},
		{
			name:    "broker address without port",
			body:    "camunda:\n  broker_address: zeebe\n",
			wantErr: "BrokerAddress failed on hostname_port",
		},
		{
			name:    "tracing without endpoint",
			body:    "observability:\n  tracing_enabled: true\n",
			wantErr: "jaeger_endpoint is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadReadsProjectConfig(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Environment)
	assert.Len(t, cfg.Workers, 6)
	assert.True(t, GetWorkerConfig(cfg, "score-no-diploma").Enabled)
}

func TestWorkerLookups(t *testing.T) {
	cfg := &Config{Workers: map[string]WorkerConfig{
		"score-riasec": {Enabled: false, MaxJobsActive: 2, Timeout: 500, MaxRetries: 1},
	}}

	assert.False(t, GetWorkerConfig(cfg, "score-riasec").Enabled)
	assert.Equal(t, 2, GetWorkerConfig(cfg, "score-riasec").MaxJobsActive)
	fallback := GetWorkerConfig(cfg, "score-learning-style")
	assert.True(t, fallback.Enabled)
	assert.Equal(t, DefaultWorkerTimeout, fallback.Timeout)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
