package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"orientation-workers/internal/scoring"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	require.NoError(t, reg.Validate())
	require.Len(t, reg.Activities, len(scoring.Instruments()))

	for _, id := range scoring.Instruments() {
		activity, ok := reg.Lookup(TaskTypeFor(id))
		require.True(t, ok, "no activity for %s", id)
		assert.Equal(t, string(id), activity.Instrument)
		assert.Equal(t, StatusImplemented, activity.ImplementationStatus)
		assert.NotEmpty(t, activity.Description)
		assert.Contains(t, activity.ErrorCodes, "ASSESSMENT_INPUT_INVALID")
	}

	riasec, _ := reg.Lookup("score-riasec")
	assert.Contains(t, riasec.InputSchema["properties"], "variant")
	noDiploma, _ := reg.Lookup("score-no-diploma")
	assert.NotContains(t, noDiploma.InputSchema["properties"], "variant")
}

func TestInstrumentFor(t *testing.T) {
	id, ok := InstrumentFor("score-learning-style")
	assert.True(t, ok)
	assert.Equal(t, scoring.InstrumentLearningStyle, id)

	_, ok = InstrumentFor("score-astrology")
	assert.False(t, ok)
	_, ok = InstrumentFor("riasec")
	assert.False(t, ok)
}

func TestInputValidators(t *testing.T) {
	validators, err := Default().InputValidators()
	require.NoError(t, err)

	riasec := validators["score-riasec"]
	require.NotNil(t, riasec)

	ok := riasec.Validate(map[string]interface{}{
		"responses":  []interface{}{5, 4, "3", nil},
		"variant":    "hook",
		"processRef": "unrelated process variable",
	})
	assert.True(t, ok.Valid, ok.GetErrorMessages())

	missing := riasec.Validate(map[string]interface{}{"submissionId": "s-1"})
	assert.True(t, missing.HasErrors("responses"))

	badVariant := riasec.Validate(map[string]interface{}{"responses": []interface{}{}, "variant": "short"})
	assert.True(t, badVariant.HasErrors("variant"))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "activity-registry.json")
	reg := Default()
	reg.Touch(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	require.NoError(t, SaveRegistry(reg, path))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01T12:00:00Z", loaded.LastUpdated)
	if diff := cmp.Diff(reg.TaskTypes(), loaded.TaskTypes()); diff != "" {
		t.Errorf("task types mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	reg, err := Load("")
	require.NoError(t, err)
	assert.Len(t, reg.Activities, 6)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0.0","activities":[]}`), 0o600))
	_, err := Load(path)
	assert.ErrorContains(t, err, "no activities")

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse registry")

	_, err = Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestValidateReportsAllProblems(t *testing.T) {
	reg := Default()
	reg.Activities[0].DisplayName = ""
	reg.Activities[1].TaskType = "Score_Everything"
	reg.Activities[2].Timeout = "soon"
	reg.Activities[3].InputSchema = map[string]interface{}{"type": 12}
	reg.Activities = append(reg.Activities, reg.Activities[4])

	err := reg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "missing required field: DisplayName")
	assert.Contains(t, msg, "kebab-case")
	assert.Contains(t, msg, `invalid timeout "soon"`)
	assert.Contains(t, msg, "input schema")
	assert.Contains(t, msg, "duplicate activity ID")
}

func TestUpdateField(t *testing.T) {
	reg := Default()
	id := reg.Activities[0].ID

	require.NoError(t, reg.UpdateField(id, "status", StatusVerified))
	require.NoError(t, reg.UpdateField(id, "retries", "5"))
	require.NoError(t, reg.UpdateField(id, "timeout", "30s"))
	assert.Equal(t, StatusVerified, reg.Activities[0].ImplementationStatus)
	assert.Equal(t, 5, reg.Activities[0].Retries)
	assert.Equal(t, "30s", reg.Activities[0].Timeout)

	assert.Error(t, reg.UpdateField(id, "status", "done"))
	assert.Error(t, reg.UpdateField(id, "retries", "-1"))
	assert.Error(t, reg.UpdateField(id, "timeout", "later"))
	assert.Error(t, reg.UpdateField(id, "taskType", "score-x"))
	assert.ErrorContains(t, reg.UpdateField("missing.id", "version", "2"), "not found")
}
