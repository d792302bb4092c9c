package scoring

const learningStyleScale = 20

var learningStyleCategories = []Category{
	{Key: "visual", Name: "Visuel"},
	{Key: "auditory", Name: "Auditif"},
	{Key: "kinesthetic", Name: "Kinesthésique"},
}

var learningStyleInstrument = Instrument{
	ID:             InstrumentLearningStyle,
	Name:           "Style d'apprentissage",
	Categories:     learningStyleCategories,
	MaxWeight:      LikertMax,
	MissingDefault: LearningStyleDefaultRating,
	Confidence:     LearningStyleConfidence,
	Questions: []Question{
		{ID: 1, Category: "visual", Text: "Je retiens mieux une information quand je la vois (schémas, images, couleurs)."},
		{ID: 2, Category: "auditory", Text: "Je retiens mieux une information quand je l'entends ou l'explique à voix haute."},
		{ID: 3, Category: "kinesthetic", Text: "Je retiens mieux une information quand je la mets en pratique."},
	},
}

var learningStrategies = map[string][]string{
	"visual": {
		"Utilisez des cartes mentales et des schémas pour organiser vos idées",
		"Surlignez vos notes avec un code couleur",
		"Privilégiez les vidéos et les infographies",
	},
	"auditory": {
		"Enregistrez vos cours et réécoutez-les",
		"Expliquez les notions à voix haute ou à un camarade",
		"Participez à des groupes de discussion",
	},
	"kinesthetic": {
		"Apprenez par des exercices pratiques et des mises en situation",
		"Faites des pauses actives pendant vos révisions",
		"Manipulez des objets ou construisez des modèles",
	},
}

// LearningStyleResult is the score record of the learning style instrument.
type LearningStyleResult struct {
	Visual                int      `json:"visual"`
	Auditory              int      `json:"auditory"`
	Kinesthetic           int      `json:"kinesthetic"`
	Primary               string   `json:"primary"`
	Secondary             string   `json:"secondary"`
	DominantStyle         string   `json:"dominantStyle"`
	RecommendedStrategies []string `json:"recommendedStrategies"`
	Recommendations       []string `json:"recommendations"`
	ConfidenceScore       int      `json:"confidenceScore"`
}

// ScoreLearningStyle reads the first three answers as visual, auditory and kinesthetic
// ratings. Each style is scored on its own as round(rating × 20).
func ScoreLearningStyle(responses []any) LearningStyleResult {
	in := learningStyleInstrument
	scores := make([]int, len(in.Categories))
	for i := range in.Categories {
		rating := float64(in.MissingDefault)
		if i < len(responses) {
			if v, ok := numeric(responses[i]); ok {
				rating = v
			}
		}
		if rating < LikertMin {
			rating = LikertMin
		}
		if rating > LikertMax {
			rating = LikertMax
		}
		scores[i] = roundHalfUp(rating * learningStyleScale)
	}

	primary := argmax(scores, -1)
	secondary := argmax(scores, primary)
	primaryKey := in.Categories[primary].Key

	strategies := learningStrategies[primaryKey]
	return LearningStyleResult{
		Visual:                scores[0],
		Auditory:              scores[1],
		Kinesthetic:           scores[2],
		Primary:               primaryKey,
		Secondary:             in.Categories[secondary].Key,
		DominantStyle:         primaryKey,
		RecommendedStrategies: append([]string(nil), strategies...),
		Recommendations:       append([]string(nil), strategies...),
		ConfidenceScore:       in.Confidence,
	}
}

// argmax returns the index of the highest score, skipping index skip. The earliest
// index wins ties.
func argmax(scores []int, skip int) int {
	best := -1
	for i, s := range scores {
		if i == skip {
			continue
		}
		if best < 0 || s > scores[best] {
			best = i
		}
	}
	return best
}

func (r LearningStyleResult) Instrument() InstrumentID { return InstrumentLearningStyle }

func (r LearningStyleResult) Scores() map[string]int {
	return map[string]int{
		"visual":      r.Visual,
		"auditory":    r.Auditory,
		"kinesthetic": r.Kinesthetic,
	}
}

func (r LearningStyleResult) Dominant() []string { return []string{r.Primary, r.Secondary} }

func (r LearningStyleResult) Confidence() int { return r.ConfidenceScore }
