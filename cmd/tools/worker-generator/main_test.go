package main

import (
	"os"
	"path/filepath"
	"testing"

	"orientation-workers/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScaffold(t *testing.T) {
	dir := t.TempDir()

	files, err := generate(registry.Default(), "assessment.score.learning-style", dir, false)
	require.NoError(t, err)
	require.Len(t, files, 3)

	workerDir := filepath.Join(dir, "assessment", "score-learning-style")
	handler, err := os.ReadFile(filepath.Join(workerDir, "handler.go"))
	require.NoError(t, err)
	assert.Contains(t, string(handler), "package scorelearningstyle")
	assert.Contains(t, string(handler), "registry.TaskTypeFor(scoring.InstrumentLearningStyle)")
	assert.Contains(t, string(handler), "record.(scoring.LearningStyleResult)")
	assert.Contains(t, string(handler), "ASSESSMENT_INPUT_INVALID")
	assert.Contains(t, string(handler), "func (h *Handler) WorkerConfig() config.WorkerConfig")

	cfg, err := os.ReadFile(filepath.Join(workerDir, "config.go"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "Timeout:       int(c.Timeout / time.Millisecond)")

	models, err := os.ReadFile(filepath.Join(workerDir, "models.go"))
	require.NoError(t, err)
	assert.Contains(t, string(models), "Result scoring.LearningStyleResult `json:\"result\"`")

	_, err = generate(registry.Default(), "assessment.score.learning-style", dir, false)
	assert.ErrorContains(t, err, "already exists")

	_, err = generate(registry.Default(), "assessment.score.learning-style", dir, true)
	assert.NoError(t, err)
}

func TestGenerateUnknownActivity(t *testing.T) {
	_, err := generate(registry.Default(), "assessment.score.mbti", t.TempDir(), false)
	assert.ErrorContains(t, err, "not found")

	reg := registry.Default()
	reg.Activities[0].Instrument = "mbti"
	_, err = generate(reg, reg.Activities[0].ID, t.TempDir(), false)
	assert.ErrorContains(t, err, "no scoring symbols")
}
