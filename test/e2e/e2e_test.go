//go:build e2e

// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orientation-workers/internal/common/camunda"
	"orientation-workers/internal/common/errors"
	"orientation-workers/internal/common/logger"

	ct "orientation-workers/internal/workers/assessment/score-career-transition"
	en "orientation-workers/internal/workers/assessment/score-entrepreneurial"
	ls "orientation-workers/internal/workers/assessment/score-learning-style"
	mi "orientation-workers/internal/workers/assessment/score-multiple-intelligence"
	nd "orientation-workers/internal/workers/assessment/score-no-diploma"
	ri "orientation-workers/internal/workers/assessment/score-riasec"
)

const processID = "assessment-scoring"

var client *camunda.Client

// TestMain needs a running broker: E2E_ZEEBE_ADDRESS=localhost:26500 go test -tags e2e ./test/e2e
func TestMain(m *testing.M) {
	address := os.Getenv("E2E_ZEEBE_ADDRESS")
	if address == "" {
		fmt.Println("E2E_ZEEBE_ADDRESS not set, skipping e2e tests")
		os.Exit(0)
	}

	var err error
	client, err = camunda.NewClient(context.Background(), address, logger.NewNoOpLogger())
	if err != nil {
		panic(fmt.Sprintf("failed to connect to Zeebe: %v", err))
	}

	code := m.Run()
	client.Close()
	os.Exit(code)
}

func TestAssessmentScoringProcess(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	_, err := client.GetClient().NewDeployResourceCommand().
		AddResourceFile("testdata/assessment-scoring.bpmn").
		Send(ctx)
	require.NoError(t, err)

	startWorkers(t)

	tests := []struct {
		taskType  string
		responses []interface{}
		check     func(t *testing.T, result map[string]interface{})
	}{
		{ri.TaskType, riasecScenario(), func(t *testing.T, r map[string]interface{}) {
			assert.Equal(t, "REA", r["personalityCode"])
		}},
		{mi.TaskType, []interface{}{"hands-on", "sport", "coordinate"}, func(t *testing.T, r map[string]interface{}) {
			assert.Equal(t, []interface{}{"bodily", "interpersonal", "linguistic"}, r["dominantIntelligences"])
		}},
		{ls.TaskType, []interface{}{5, 2, 4}, func(t *testing.T, r map[string]interface{}) {
			assert.Equal(t, "visual", r["primary"])
		}},
		{en.TaskType, []interface{}{90, 90, 90, 90, 90, 90}, func(t *testing.T, r map[string]interface{}) {
			assert.Equal(t, float64(90), r["entrepreneurialPotential"])
		}},
		{ct.TaskType, []interface{}{10, 90, 90, 90, 90}, func(t *testing.T, r map[string]interface{}) {
			assert.Equal(t, float64(82), r["transitionReadiness"])
		}},
		{nd.TaskType, []interface{}{}, func(t *testing.T, r map[string]interface{}) {
			assert.Equal(t, float64(50), r["employabilityScore"])
		}},
	}

	for _, tt := range tests {
		t.Run(tt.taskType, func(t *testing.T) {
			cmd, err := client.GetClient().NewCreateInstanceCommand().
				BPMNProcessId(processID).
				LatestVersion().
				VariablesFromMap(map[string]interface{}{
					"taskType":     tt.taskType,
					"submissionId": "e2e-" + tt.taskType,
					"responses":    tt.responses,
				})
			require.NoError(t, err)

			resp, err := cmd.WithResult().Send(ctx)
			require.NoError(t, err)

			var vars map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(resp.GetVariables()), &vars))
			assert.Equal(t, "e2e-"+tt.taskType, vars["submissionId"])
			assert.NotEmpty(t, vars["scoringId"])
			tt.check(t, vars["result"].(map[string]interface{}))
		})
	}
}

func startWorkers(t *testing.T) {
	t.Helper()
	log := logger.NewTestLogger(t)
	errHandler := errors.NewErrorHandler(log)

	handlers := map[string]camunda.JobHandler{}
	add := func(taskType string, h camunda.JobHandler, err error) {
		require.NoError(t, err)
		handlers[taskType] = h
	}
	riasec, err := ri.NewHandler(ri.HandlerOptions{Logger: log})
	add(ri.TaskType, riasec, err)
	intelligence, err := mi.NewHandler(mi.HandlerOptions{Logger: log})
	add(mi.TaskType, intelligence, err)
	learning, err := ls.NewHandler(ls.HandlerOptions{Logger: log})
	add(ls.TaskType, learning, err)
	entrepreneurial, err := en.NewHandler(en.HandlerOptions{Logger: log})
	add(en.TaskType, entrepreneurial, err)
	transition, err := ct.NewHandler(ct.HandlerOptions{Logger: log})
	add(ct.TaskType, transition, err)
	noDiploma, err := nd.NewHandler(nd.HandlerOptions{Logger: log})
	add(nd.TaskType, noDiploma, err)

	var workers []worker.JobWorker
	for taskType, h := range handlers {
		workers = append(workers, camunda.StartWorker(
			client.GetClient(), taskType, h.WorkerConfig(),
			camunda.Instrument(taskType, h.Handle, nil, errHandler, log), log,
		))
	}
	t.Cleanup(func() {
		for _, w := range workers {
			w.Close()
			w.AwaitClose()
		}
	})
}

func riasecScenario() []interface{} {
	var out []interface{}
	for _, v := range []int{5, 1, 3, 2, 4, 1} {
		for i := 0; i < 5; i++ {
			out = append(out, v)
		}
	}
	return out
}
