package assessment

import "orientation-workers/internal/scoring"

// Input is the job variable document shared by every scoring task.
type Input struct {
	SubmissionID string        `json:"submissionId,omitempty"`
	UserID       string        `json:"userId,omitempty"`
	Responses    []interface{} `json:"responses"`
	Variant      string        `json:"variant,omitempty"`
}

// Envelope is embedded in every task output next to the typed result.
type Envelope struct {
	ScoringID    string               `json:"scoringId"`
	Instrument   scoring.InstrumentID `json:"instrument"`
	SubmissionID string               `json:"submissionId,omitempty"`
	UserID       string               `json:"userId,omitempty"`
	ScoredAt     string               `json:"scoredAt"`
}
