package scoring

import "strings"

const intelligenceDominantCount = 3

var intelligenceCategories = []Category{
	{Key: "linguistic", Name: "Linguistique"},
	{Key: "logical", Name: "Logico-mathématique"},
	{Key: "spatial", Name: "Spatiale"},
	{Key: "musical", Name: "Musicale"},
	{Key: "bodily", Name: "Corporelle-kinesthésique"},
	{Key: "interpersonal", Name: "Interpersonnelle"},
	{Key: "intrapersonal", Name: "Intrapersonnelle"},
	{Key: "naturalist", Name: "Naturaliste"},
}

func bonus(category string) map[string]int {
	return map[string]int{category: IntelligenceBonus}
}

// Each question is tagged with the category its options mostly measure; scoring goes
// through the option bonuses, not the question category.
var intelligenceInstrument = Instrument{
	ID:             InstrumentMultipleIntelligence,
	Name:           "Intelligences multiples",
	Categories:     intelligenceCategories,
	MissingDefault: IntelligenceBaseline,
	Confidence:     IntelligenceConfidence,
	Questions: []Question{
		{
			ID:       1,
			Category: "linguistic",
			Text:     "Comment préférez-vous apprendre quelque chose de nouveau ?",
			Options: []AnswerOption{
				{Key: "reading", Label: "En lisant un livre ou un article", Bonuses: bonus("linguistic")},
				{Key: "puzzles", Label: "En résolvant des énigmes ou des problèmes", Bonuses: bonus("logical")},
				{Key: "diagrams", Label: "En regardant des schémas ou des vidéos", Bonuses: bonus("spatial")},
				{Key: "hands-on", Label: "En manipulant et en essayant par moi-même", Bonuses: bonus("bodily")},
			},
		},
		{
			ID:       2,
			Category: "musical",
			Text:     "Que faites-vous le plus volontiers pendant votre temps libre ?",
			Options: []AnswerOption{
				{Key: "music", Label: "J'écoute ou je joue de la musique", Bonuses: bonus("musical")},
				{Key: "friends", Label: "Je passe du temps avec mes amis", Bonuses: bonus("interpersonal")},
				{Key: "nature", Label: "Je me promène dans la nature", Bonuses: bonus("naturalist")},
				{Key: "sport", Label: "Je fais du sport", Bonuses: bonus("bodily")},
			},
		},
		{
			ID:       3,
			Category: "interpersonal",
			Text:     "Dans un projet de groupe, quel rôle prenez-vous naturellement ?",
			Options: []AnswerOption{
				{Key: "reflect", Label: "Je prends du recul pour réfléchir seul", Bonuses: bonus("intrapersonal")},
				{Key: "coordinate", Label: "Je coordonne l'équipe", Bonuses: bonus("interpersonal")},
				{Key: "write", Label: "Je rédige les documents", Bonuses: bonus("linguistic")},
				{Key: "analyze", Label: "J'analyse les données et les chiffres", Bonuses: bonus("logical")},
				{Key: "design", Label: "Je m'occupe de la présentation visuelle", Bonuses: bonus("spatial")},
			},
		},
	},
}

// IntelligenceResult is the score record of the multiple intelligence instrument.
type IntelligenceResult struct {
	Linguistic            int             `json:"linguistic"`
	Logical               int             `json:"logical"`
	Spatial               int             `json:"spatial"`
	Musical               int             `json:"musical"`
	Bodily                int             `json:"bodily"`
	Interpersonal         int             `json:"interpersonal"`
	Intrapersonal         int             `json:"intrapersonal"`
	Naturalist            int             `json:"naturalist"`
	DominantIntelligences []string        `json:"dominantIntelligences"`
	ConfidenceScore       int             `json:"confidenceScore"`
	Categories            []CategoryScore `json:"categories"`
}

// ScoreMultipleIntelligence scores one selected option per question. A response
// matches an option by key or label; anything else adds nothing.
func ScoreMultipleIntelligence(responses []string) IntelligenceResult {
	in := intelligenceInstrument
	raw := make(map[string]int, len(in.Categories))
	for _, c := range in.Categories {
		raw[c.Key] = in.MissingDefault
	}

	for i, q := range in.Questions {
		if i >= len(responses) {
			break
		}
		opt, ok := matchOption(q, responses[i])
		if !ok {
			continue
		}
		for category, b := range opt.Bonuses {
			raw[category] += b
		}
	}

	scores := make([]CategoryScore, len(in.Categories))
	for i, c := range in.Categories {
		scores[i] = CategoryScore{
			Category:        c.Key,
			RawSum:          raw[c.Key],
			NormalizedScore: clamp(raw[c.Key], ScoreMin, ScoreMax),
		}
	}
	ranked := Rank(scores)

	return IntelligenceResult{
		Linguistic:            scores[0].NormalizedScore,
		Logical:               scores[1].NormalizedScore,
		Spatial:               scores[2].NormalizedScore,
		Musical:               scores[3].NormalizedScore,
		Bodily:                scores[4].NormalizedScore,
		Interpersonal:         scores[5].NormalizedScore,
		Intrapersonal:         scores[6].NormalizedScore,
		Naturalist:            scores[7].NormalizedScore,
		DominantIntelligences: Top(ranked, intelligenceDominantCount),
		ConfidenceScore:       in.Confidence,
		Categories:            ranked,
	}
}

func matchOption(q Question, response string) (AnswerOption, bool) {
	response = strings.TrimSpace(response)
	if response == "" {
		return AnswerOption{}, false
	}
	for _, opt := range q.Options {
		if strings.EqualFold(response, opt.Key) || strings.EqualFold(response, opt.Label) {
			return opt, true
		}
	}
	return AnswerOption{}, false
}

func (r IntelligenceResult) Instrument() InstrumentID { return InstrumentMultipleIntelligence }

func (r IntelligenceResult) Scores() map[string]int {
	return map[string]int{
		"linguistic":    r.Linguistic,
		"logical":       r.Logical,
		"spatial":       r.Spatial,
		"musical":       r.Musical,
		"bodily":        r.Bodily,
		"interpersonal": r.Interpersonal,
		"intrapersonal": r.Intrapersonal,
		"naturalist":    r.Naturalist,
	}
}

func (r IntelligenceResult) Dominant() []string { return r.DominantIntelligences }

func (r IntelligenceResult) Confidence() int { return r.ConfidenceScore }
