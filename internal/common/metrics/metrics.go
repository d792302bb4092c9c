package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "worker_job_duration_seconds",
			Help:    "Duration of job processing in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)

	AssessmentsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_scored_total",
			Help: "Total number of score records produced per instrument",
		},
		[]string{"instrument"},
	)

	AssessmentDominantCategory = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_dominant_category_total",
			Help: "Number of times a category or label led a score record",
		},
		[]string{"instrument", "category"},
	)

	AssessmentDefaultedAnswers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_defaulted_answers_total",
			Help: "Answers replaced by the instrument's missing-input default",
		},
		[]string{"instrument"},
	)
)

// RecordAssessment counts one score record. Only the leading entry of dominant is
// counted, to keep the category label bounded by the catalog.
func RecordAssessment(instrument string, dominant []string, defaulted int) {
	AssessmentsScored.WithLabelValues(instrument).Inc()
	if len(dominant) > 0 {
		AssessmentDominantCategory.WithLabelValues(instrument, dominant[0]).Inc()
	}
	if defaulted > 0 {
		AssessmentDefaultedAnswers.WithLabelValues(instrument).Add(float64(defaulted))
	}
}
