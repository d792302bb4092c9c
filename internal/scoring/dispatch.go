package scoring

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownInstrument is returned by Score for an id with no registered catalog.
var ErrUnknownInstrument = errors.New("unknown instrument")

type options struct {
	riasecVariant RIASECVariant
}

// Option tunes a Score call.
type Option func(*options)

// WithRIASECVariant selects the RIASEC confidence variant. Other instruments ignore it.
func WithRIASECVariant(v RIASECVariant) Option {
	return func(o *options) {
		if v != "" {
			o.riasecVariant = v
		}
	}
}

// Score routes loosely typed answers, as decoded from JSON job variables or CLI input,
// to the analyzer of the given instrument.
func Score(id InstrumentID, responses []any, opts ...Option) (Record, error) {
	o := options{riasecVariant: RIASECVariantStandard}
	for _, opt := range opts {
		opt(&o)
	}

	switch id {
	case InstrumentRIASEC:
		return ScoreRIASECVariant(toInts(responses, RIASECMissingWeight), o.riasecVariant), nil
	case InstrumentMultipleIntelligence:
		return ScoreMultipleIntelligence(toStrings(responses)), nil
	case InstrumentLearningStyle:
		return ScoreLearningStyle(responses), nil
	case InstrumentEntrepreneurial:
		return ScoreEntrepreneurial(toInts(responses, PreScoredDefault)), nil
	case InstrumentCareerTransition:
		return ScoreCareerTransition(toInts(responses, PreScoredDefault)), nil
	case InstrumentNoDiploma:
		return ScoreNoDiploma(toInts(responses, PreScoredDefault)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, id)
	}
}

// MissingAnswers counts the catalog positions whose answer is absent or unusable and
// therefore replaced by the instrument's missing-input default.
func MissingAnswers(id InstrumentID, responses []any) int {
	in, ok := Lookup(id)
	if !ok {
		return 0
	}
	missing := 0
	for i, q := range in.Questions {
		if i >= len(responses) {
			missing++
			continue
		}
		if !usable(id, q, responses[i]) {
			missing++
		}
	}
	return missing
}

func usable(id InstrumentID, q Question, raw any) bool {
	switch id {
	case InstrumentMultipleIntelligence:
		s, ok := raw.(string)
		if !ok {
			return false
		}
		_, ok = matchOption(q, s)
		return ok
	case InstrumentRIASEC:
		v, ok := numeric(raw)
		return ok && roundHalfUp(v) >= LikertMin && roundHalfUp(v) <= LikertMax
	default:
		_, ok := numeric(raw)
		return ok
	}
}

// toInts rounds numeric answers half-up. Non-numeric answers become def.
func toInts(responses []any, def int) []int {
	out := make([]int, len(responses))
	for i, raw := range responses {
		v, ok := numeric(raw)
		if !ok {
			out[i] = def
			continue
		}
		out[i] = roundHalfUp(math.Max(math.Min(v, math.MaxInt32), math.MinInt32))
	}
	return out
}

// toStrings keeps string answers; anything else becomes an empty, unrecognized answer.
func toStrings(responses []any) []string {
	out := make([]string, len(responses))
	for i, raw := range responses {
		if s, ok := raw.(string); ok {
			out[i] = s
		}
	}
	return out
}
