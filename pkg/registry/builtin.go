package registry

import (
	"fmt"
	"strings"

	"orientation-workers/internal/common/errors"
	"orientation-workers/internal/scoring"
)

const (
	RegistryVersion = "1.0.0"
	CategoryName    = "assessment"
	TaskTypePrefix  = "score-"

	defaultTimeout = "10s"
	defaultRetries = 3
)

var descriptions = map[scoring.InstrumentID]string{
	scoring.InstrumentRIASEC:               "Scores the 30 Holland interest statements into six normalized RIASEC types and a three-letter personality code",
	scoring.InstrumentMultipleIntelligence: "Scores the three Gardner questionnaire choices into eight intelligence scores and the three dominant intelligences",
	scoring.InstrumentLearningStyle:        "Scores the visual, auditory and kinesthetic ratings into primary and secondary learning styles with strategies",
	scoring.InstrumentEntrepreneurial:      "Combines six pre-scored entrepreneurial dimensions into a potential score, profile type and recommendations",
	scoring.InstrumentCareerTransition:     "Combines five pre-scored transition dimensions into a readiness score, timeline and recommendations",
	scoring.InstrumentNoDiploma:            "Combines six pre-scored dimensions into employability, training readiness and accessible fields",
}

// TaskTypeFor returns the zeebe task type serving an instrument.
func TaskTypeFor(id scoring.InstrumentID) string {
	return TaskTypePrefix + string(id)
}

// InstrumentFor resolves the instrument served by a task type.
func InstrumentFor(taskType string) (scoring.InstrumentID, bool) {
	if !strings.HasPrefix(taskType, TaskTypePrefix) {
		return "", false
	}
	id := scoring.InstrumentID(strings.TrimPrefix(taskType, TaskTypePrefix))
	if _, ok := scoring.Lookup(id); !ok {
		return "", false
	}
	return id, true
}

// Default builds the registry of every scoring activity this module serves.
func Default() *ActivityRegistry {
	ids := scoring.Instruments()
	reg := &ActivityRegistry{
		Version:    RegistryVersion,
		Activities: make([]Activity, 0, len(ids)),
	}
	for _, id := range ids {
		in, _ := scoring.Lookup(id)
		reg.Activities = append(reg.Activities, Activity{
			ID:                   fmt.Sprintf("%s.score.%s", CategoryName, id),
			DisplayName:          in.Name,
			Description:          descriptions[id],
			Category:             CategoryName,
			Version:              RegistryVersion,
			TaskType:             TaskTypeFor(id),
			Instrument:           string(id),
			ImplementationStatus: StatusImplemented,
			InputSchema:          inputSchema(id),
			OutputSchema:         outputSchema(),
			ErrorCodes: []string{
				string(errors.ErrCodeParseError),
				string(errors.ErrCodeAssessmentInputInvalid),
				string(errors.ErrCodeUnknownInstrument),
			},
			Timeout:   defaultTimeout,
			Retries:   defaultRetries,
			Workflows: []string{"career-orientation"},
			Tags:      []string{"psychometric", string(id)},
		})
	}
	return reg
}

// inputSchema accepts any process variables as long as responses is an array.
// Individual answers are not typed: unusable entries fall back to the instrument default.
func inputSchema(id scoring.InstrumentID) map[string]interface{} {
	props := map[string]interface{}{
		"submissionId": map[string]interface{}{"type": "string"},
		"userId":       map[string]interface{}{"type": "string"},
		"responses": map[string]interface{}{
			"type":        "array",
			"description": "Answers in catalog order",
		},
	}
	if id == scoring.InstrumentRIASEC {
		props["variant"] = map[string]interface{}{
			"type": "string",
			"enum": []interface{}{string(scoring.RIASECVariantStandard), string(scoring.RIASECVariantHook)},
		}
	}
	return map[string]interface{}{
		"type":       "object",
		"required":   []interface{}{"responses"},
		"properties": props,
	}
}

func outputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"scoringId", "instrument", "result", "scoredAt"},
		"properties": map[string]interface{}{
			"scoringId":    map[string]interface{}{"type": "string"},
			"instrument":   map[string]interface{}{"type": "string"},
			"submissionId": map[string]interface{}{"type": "string"},
			"userId":       map[string]interface{}{"type": "string"},
			"result":       map[string]interface{}{"type": "object"},
			"scoredAt":     map[string]interface{}{"type": "string"},
		},
	}
}
