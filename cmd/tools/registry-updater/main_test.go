package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"orientation-workers/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportUpdateValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "configs", "activity-registry.json")

	require.NoError(t, run("export", []string{"-path", path}))
	require.NoError(t, run("validate", []string{"-path", path}))

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, updateActivity(path, "assessment.score.riasec", "status", registry.StatusVerified, now))

	reg, err := registry.LoadRegistry(path)
	require.NoError(t, err)
	activity, ok := reg.Lookup("score-riasec")
	require.True(t, ok)
	assert.Equal(t, registry.StatusVerified, activity.ImplementationStatus)
	assert.Equal(t, now.Format(time.RFC3339), reg.LastUpdated)
}

func TestUpdateRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity-registry.json")
	require.NoError(t, run("export", []string{"-path", path}))

	assert.ErrorContains(t, updateActivity(path, "assessment.score.riasec", "retries", "-1", time.Now()), "invalid retries")
	assert.ErrorContains(t, updateActivity(path, "assessment.score.unknown", "status", "verified", time.Now()), "not found")
	assert.Error(t, run("update", []string{"-path", path}))
	assert.Error(t, run("validate", []string{"-path", filepath.Join(t.TempDir(), "missing.json")}))
	assert.Error(t, run("publish", nil))
}

func TestHelpEndsWithSingleNewline(t *testing.T) {
	var out bytes.Buffer
	help(&out)

	text := out.String()
	assert.Contains(t, text, "Usage: registry-updater <command> [flags]")
	assert.True(t, strings.HasSuffix(text, "about a command.\n"))
	assert.False(t, strings.HasSuffix(text, "\n\n"))
}
