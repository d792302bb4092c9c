package scoring

// Positional dimensions of the entrepreneurial aptitude instrument.
const (
	enRiskTaking = iota
	enInnovation
	enLeadership
	enResilience
	enAutonomy
	enOpportunity
)

var entrepreneurialCategories = []Category{
	{Key: "riskTaking", Name: "Prise de risque"},
	{Key: "innovation", Name: "Innovation"},
	{Key: "leadership", Name: "Leadership"},
	{Key: "resilience", Name: "Résilience"},
	{Key: "autonomy", Name: "Autonomie"},
	{Key: "opportunityRecognition", Name: "Détection d'opportunités"},
}

var entrepreneurialWeights = []float64{0.2, 0.2, 0.15, 0.2, 0.1, 0.15}

var entrepreneurialInstrument = Instrument{
	ID:             InstrumentEntrepreneurial,
	Name:           "Aptitude entrepreneuriale",
	Categories:     entrepreneurialCategories,
	MissingDefault: PreScoredDefault,
	Confidence:     EntrepreneurialConfidence,
	Questions: dimensionQuestions(entrepreneurialCategories, []string{
		"Êtes-vous prêt à investir vos économies dans un projet incertain ?",
		"Proposez-vous souvent des idées nouvelles ou des améliorations ?",
		"Les autres vous suivent-ils naturellement dans vos initiatives ?",
		"Rebondissez-vous rapidement après un échec ?",
		"Préférez-vous organiser votre travail sans supervision ?",
		"Repérez-vous facilement des besoins non satisfaits autour de vous ?",
	}),
}

var entrepreneurialTable = recommendationTable{
	rules: []recommendationRule{
		{
			when:    above(enInnovation),
			primary: []string{"Technologie", "Startups"},
			paths:   []string{"Incubateur de startups"},
		},
		{
			when:    above(enLeadership),
			primary: []string{"Management", "Conseil"},
			paths:   []string{"Reprise d'entreprise"},
		},
		{
			when:    both(above(enRiskTaking), above(enResilience)),
			primary: []string{"Création d'entreprise"},
			paths:   []string{"Création d'entreprise innovante"},
		},
		{
			when:    above(enOpportunity),
			primary: []string{"Commerce", "E-commerce"},
			paths:   []string{"Franchise"},
		},
		{
			when:  above(enAutonomy),
			paths: []string{"Micro-entreprise / freelance"},
		},
		{
			when:  below(enRiskTaking),
			paths: []string{"Intrapreneuriat"},
		},
	},
	fallbackPrimary: []string{"Services", "Artisanat", "Économie sociale et solidaire"},
	fallbackPaths:   []string{"Formation à l'entrepreneuriat", "Accompagnement par un réseau d'entrepreneurs"},
}

// Entrepreneurial profile labels derived from the potential score.
const (
	ProfileSerialFounder    = "Entrepreneur né"
	ProfilePotentialFounder = "Entrepreneur potentiel"
	ProfileIntrapreneur     = "Intrapreneur"
	ProfileEmployee         = "Profil salarié"
)

// EntrepreneurialResult is the score record of the entrepreneurial aptitude instrument.
type EntrepreneurialResult struct {
	RiskTaking               int      `json:"riskTaking"`
	Innovation               int      `json:"innovation"`
	Leadership               int      `json:"leadership"`
	Resilience               int      `json:"resilience"`
	Autonomy                 int      `json:"autonomy"`
	OpportunityRecognition   int      `json:"opportunityRecognition"`
	EntrepreneurialPotential int      `json:"entrepreneurialPotential"`
	ProfileType              string   `json:"profileType"`
	RecommendedSectors       []string `json:"recommendedSectors"`
	RecommendedPaths         []string `json:"recommendedPaths"`
	ConfidenceScore          int      `json:"confidenceScore"`
}

// ScoreEntrepreneurial scores the six pre-scored entrepreneurial dimensions.
func ScoreEntrepreneurial(responses []int) EntrepreneurialResult {
	in := entrepreneurialInstrument
	d := preScored(responses, len(in.Categories))
	potential := weightedComposite(d, entrepreneurialWeights)
	sectors, paths := entrepreneurialTable.apply(d)

	return EntrepreneurialResult{
		RiskTaking:               d[enRiskTaking],
		Innovation:               d[enInnovation],
		Leadership:               d[enLeadership],
		Resilience:               d[enResilience],
		Autonomy:                 d[enAutonomy],
		OpportunityRecognition:   d[enOpportunity],
		EntrepreneurialPotential: potential,
		ProfileType:              entrepreneurialProfile(potential),
		RecommendedSectors:       sectors,
		RecommendedPaths:         paths,
		ConfidenceScore:          in.Confidence,
	}
}

func entrepreneurialProfile(potential int) string {
	switch {
	case potential >= 75:
		return ProfileSerialFounder
	case potential >= 55:
		return ProfilePotentialFounder
	case potential >= 40:
		return ProfileIntrapreneur
	default:
		return ProfileEmployee
	}
}

func (r EntrepreneurialResult) Instrument() InstrumentID { return InstrumentEntrepreneurial }

func (r EntrepreneurialResult) Scores() map[string]int {
	m := dimensionMap(entrepreneurialCategories, []int{
		r.RiskTaking, r.Innovation, r.Leadership, r.Resilience, r.Autonomy, r.OpportunityRecognition,
	})
	m["entrepreneurialPotential"] = r.EntrepreneurialPotential
	return m
}

func (r EntrepreneurialResult) Dominant() []string { return r.RecommendedSectors }

func (r EntrepreneurialResult) Confidence() int { return r.ConfidenceScore }
