package scoremultipleintelligence

import (
	"orientation-workers/internal/scoring"
	"orientation-workers/internal/workers/assessment"
)

type Input = assessment.Input

type Output struct {
	assessment.Envelope
	Result scoring.IntelligenceResult `json:"result"`
}
