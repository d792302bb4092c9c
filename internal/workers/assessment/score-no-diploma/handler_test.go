package scorenodiploma

import (
	"context"
	"testing"
	"time"

	"orientation-workers/internal/common/camunda/camundatest"
	"orientation-workers/internal/common/config"
	"orientation-workers/internal/common/logger"
	"orientation-workers/internal/common/metrics"
	"orientation-workers/pkg/registry"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T) *Handler {
	t.Helper()
	h, err := NewHandler(HandlerOptions{Logger: logger.NewTestLogger(t), Registry: registry.Default()})
	require.NoError(t, err)
	return h
}

func TestHandleEmptyResponsesUseFallbacks(t *testing.T) {
	h := createTestHandler(t)
	client := camundatest.NewJobClient()
	before := testutil.ToFloat64(metrics.AssessmentDefaultedAnswers.WithLabelValues("no-diploma"))

	h.Handle(client, camundatest.NewJob(1, TaskType, 3, map[string]interface{}{"responses": []interface{}{}}))

	require.Len(t, client.Gateway.Completed, 1)
	vars, err := client.CompletedVariables(0)
	require.NoError(t, err)
	assert.Equal(t, "no-diploma", vars["instrument"])

	result := vars["result"].(map[string]interface{})
	for _, k := range []string{"practicalSkills", "interpersonalSkills", "creativity", "technicalAffinity", "autonomy", "motivation"} {
		assert.Equal(t, float64(50), result[k], k)
	}
	assert.Equal(t, float64(50), result["employabilityScore"])
	assert.Equal(t, float64(50), result["trainingReadiness"])
	assert.Equal(t, []interface{}{"Commerce", "Logistique", "Services à la personne"}, result["recommendedFields"])
	assert.Equal(t, []interface{}{"Accompagnement France Travail", "Formation courte certifiante"}, result["recommendedPaths"])
	assert.Equal(t, float64(85), result["confidenceScore"])

	assert.Equal(t, before+6, testutil.ToFloat64(metrics.AssessmentDefaultedAnswers.WithLabelValues("no-diploma")))
}

func TestExecuteFixedClockAndID(t *testing.T) {
	h := createTestHandler(t)
	out, err := h.Execute(context.Background(), &Input{SubmissionID: "s-1", Responses: []interface{}{80, 80, 80, 80, 80, 80}})
	require.NoError(t, err)

	assert.Equal(t, "s-1", out.SubmissionID)
	assert.NotEmpty(t, out.ScoringID)
	_, err = time.Parse(time.RFC3339, out.ScoredAt)
	assert.NoError(t, err)
	assert.Equal(t, 80, out.Result.EmployabilityScore)
	assert.Equal(t, 80, out.Result.TrainingReadiness)
	assert.NotEmpty(t, out.Result.RecommendedFields)
}

func TestWorkerConfigFollowsHandlerConfig(t *testing.T) {
	h, err := NewHandler(HandlerOptions{AppConfig: &config.Config{Workers: map[string]config.WorkerConfig{
		TaskType: {Enabled: false, MaxJobsActive: 3, Timeout: 1500},
	}}})
	require.NoError(t, err)
	assert.Equal(t, config.WorkerConfig{Enabled: false, MaxJobsActive: 3, Timeout: 1500}, h.WorkerConfig())

	h, err = NewHandler(HandlerOptions{})
	require.NoError(t, err)
	assert.Equal(t, config.WorkerConfig{Enabled: true, MaxJobsActive: DefaultConfig().MaxJobsActive, Timeout: 10000}, h.WorkerConfig())
}
