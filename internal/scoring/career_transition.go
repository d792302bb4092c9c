package scoring

// Positional dimensions of the career transition instrument.
const (
	ctSatisfaction = iota
	ctTransferability
	ctAdaptability
	ctRiskTolerance
	ctLearningCapacity
)

var careerTransitionCategories = []Category{
	{Key: "currentSatisfaction", Name: "Satisfaction actuelle"},
	{Key: "skillTransferability", Name: "Transférabilité des compétences"},
	{Key: "adaptability", Name: "Adaptabilité"},
	{Key: "riskTolerance", Name: "Tolérance au risque"},
	{Key: "learningCapacity", Name: "Capacité d'apprentissage"},
}

var careerTransitionWeights = []float64{0.1, 0.25, 0.25, 0.2, 0.2}

var careerTransitionInstrument = Instrument{
	ID:             InstrumentCareerTransition,
	Name:           "Reconversion professionnelle",
	Categories:     careerTransitionCategories,
	MissingDefault: PreScoredDefault,
	Confidence:     CareerTransitionConfidence,
	Questions: dimensionQuestions(careerTransitionCategories, []string{
		"Êtes-vous satisfait de votre situation professionnelle actuelle ?",
		"Vos compétences actuelles sont-elles utilisables dans un autre métier ?",
		"Vous adaptez-vous facilement à un nouvel environnement ?",
		"Êtes-vous prêt à accepter une période d'incertitude financière ?",
		"Aimez-vous apprendre de nouvelles choses ?",
	}),
}

var careerTransitionTable = recommendationTable{
	rules: []recommendationRule{
		{
			when:    above(ctTransferability),
			primary: []string{"Technologie", "Conseil"},
			paths:   []string{"Mobilité vers un métier proche"},
		},
		{
			when:    above(ctLearningCapacity),
			primary: []string{"Formation"},
			paths:   []string{"Formation continue", "Reconversion académique"},
		},
		{
			when:    both(above(ctRiskTolerance), above(ctAdaptability)),
			primary: []string{"Entrepreneuriat"},
			paths:   []string{"Création d'entreprise"},
		},
		{
			when:    above(ctAdaptability),
			primary: []string{"Gestion de projet"},
		},
		{
			when:  below(ctSatisfaction),
			paths: []string{"Bilan de compétences"},
		},
		{
			when:  below(ctRiskTolerance),
			paths: []string{"Transition progressive à temps partiel"},
		},
	},
	fallbackPrimary: []string{"Services", "Commerce", "Administration"},
	fallbackPaths:   []string{"Bilan de compétences", "Accompagnement personnalisé"},
}

// Transition timelines derived from the readiness score.
const (
	TimelineShort  = "court terme (0-6 mois)"
	TimelineMedium = "moyen terme (6-18 mois)"
	TimelineLong   = "long terme (plus de 18 mois)"
)

// CareerTransitionResult is the score record of the career transition instrument.
type CareerTransitionResult struct {
	CurrentSatisfaction  int      `json:"currentSatisfaction"`
	SkillTransferability int      `json:"skillTransferability"`
	Adaptability         int      `json:"adaptability"`
	RiskTolerance        int      `json:"riskTolerance"`
	LearningCapacity     int      `json:"learningCapacity"`
	TransitionReadiness  int      `json:"transitionReadiness"`
	TransitionTimeline   string   `json:"transitionTimeline"`
	RecommendedSectors   []string `json:"recommendedSectors"`
	RecommendedPaths     []string `json:"recommendedPaths"`
	ConfidenceScore      int      `json:"confidenceScore"`
}

// ScoreCareerTransition scores the five pre-scored transition dimensions.
func ScoreCareerTransition(responses []int) CareerTransitionResult {
	in := careerTransitionInstrument
	d := preScored(responses, len(in.Categories))
	readiness := weightedComposite(d, careerTransitionWeights)
	sectors, paths := careerTransitionTable.apply(d)

	return CareerTransitionResult{
		CurrentSatisfaction:  d[ctSatisfaction],
		SkillTransferability: d[ctTransferability],
		Adaptability:         d[ctAdaptability],
		RiskTolerance:        d[ctRiskTolerance],
		LearningCapacity:     d[ctLearningCapacity],
		TransitionReadiness:  readiness,
		TransitionTimeline:   transitionTimeline(readiness),
		RecommendedSectors:   sectors,
		RecommendedPaths:     paths,
		ConfidenceScore:      in.Confidence,
	}
}

func transitionTimeline(readiness int) string {
	switch {
	case readiness >= 75:
		return TimelineShort
	case readiness >= 50:
		return TimelineMedium
	default:
		return TimelineLong
	}
}

func (r CareerTransitionResult) Instrument() InstrumentID { return InstrumentCareerTransition }

func (r CareerTransitionResult) Scores() map[string]int {
	m := dimensionMap(careerTransitionCategories, []int{
		r.CurrentSatisfaction, r.SkillTransferability, r.Adaptability, r.RiskTolerance, r.LearningCapacity,
	})
	m["transitionReadiness"] = r.TransitionReadiness
	return m
}

func (r CareerTransitionResult) Dominant() []string { return r.RecommendedSectors }

func (r CareerTransitionResult) Confidence() int { return r.ConfidenceScore }
