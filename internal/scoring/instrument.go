// Package scoring converts the raw answers of a test-taking session into normalized
// score records. Every analyzer is a pure function over a static question catalog:
// no I/O, no shared mutable state, safe for concurrent use.
package scoring

import "sort"

// InstrumentID identifies one complete test definition.
type InstrumentID string

const (
	InstrumentRIASEC               InstrumentID = "riasec"
	InstrumentMultipleIntelligence InstrumentID = "multiple-intelligence"
	InstrumentLearningStyle        InstrumentID = "learning-style"
	InstrumentEntrepreneurial      InstrumentID = "entrepreneurial"
	InstrumentCareerTransition     InstrumentID = "career-transition"
	InstrumentNoDiploma            InstrumentID = "no-diploma"
)

// Category is a trait or aptitude axis scored independently within an instrument.
type Category struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// AnswerOption is a discrete answer carrying pre-declared category bonuses.
type AnswerOption struct {
	Key     string         `json:"key"`
	Label   string         `json:"label"`
	Bonuses map[string]int `json:"bonuses,omitempty"`
	Value   int            `json:"value,omitempty"`
}

// Question is immutable and belongs to exactly one category.
type Question struct {
	ID       int            `json:"id"`
	Text     string         `json:"text"`
	Category string         `json:"category"`
	Options  []AnswerOption `json:"options,omitempty"`
}

// Instrument bundles a static catalog with its scoring constants.
type Instrument struct {
	ID             InstrumentID `json:"id"`
	Name           string       `json:"name"`
	Categories     []Category   `json:"categories"`
	Questions      []Question   `json:"questions"`
	MaxWeight      int          `json:"maxWeight,omitempty"`
	MissingDefault int          `json:"missingDefault"`
	Confidence     int          `json:"confidenceScore"`
}

// QuestionsIn counts the catalog questions tagged with the given category key.
func (in Instrument) QuestionsIn(category string) int {
	n := 0
	for _, q := range in.Questions {
		if q.Category == category {
			n++
		}
	}
	return n
}

// Record is the uniform view over every instrument-specific result.
type Record interface {
	Instrument() InstrumentID
	// Scores maps every scored dimension and composite to its 0-100 value.
	Scores() map[string]int
	// Dominant lists the leading categories or labels, in rank order.
	Dominant() []string
	Confidence() int
}

var instruments = map[InstrumentID]*Instrument{
	InstrumentRIASEC:               &riasecInstrument,
	InstrumentMultipleIntelligence: &intelligenceInstrument,
	InstrumentLearningStyle:        &learningStyleInstrument,
	InstrumentEntrepreneurial:      &entrepreneurialInstrument,
	InstrumentCareerTransition:     &careerTransitionInstrument,
	InstrumentNoDiploma:            &noDiplomaInstrument,
}

// Lookup returns the static definition of an instrument. The returned value is a copy
// of the definition header; its slices are shared and must not be modified.
func Lookup(id InstrumentID) (Instrument, bool) {
	in, ok := instruments[id]
	if !ok {
		return Instrument{}, false
	}
	return *in, true
}

// Instruments lists every known instrument id, sorted.
func Instruments() []InstrumentID {
	ids := make([]InstrumentID, 0, len(instruments))
	for id := range instruments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
