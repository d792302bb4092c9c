package scoring

// Positional dimensions of the no-diploma career instrument.
const (
	ndPractical = iota
	ndInterpersonal
	ndCreativity
	ndTechnical
	ndAutonomy
	ndMotivation
)

var noDiplomaCategories = []Category{
	{Key: "practicalSkills", Name: "Compétences pratiques"},
	{Key: "interpersonalSkills", Name: "Aisance relationnelle"},
	{Key: "creativity", Name: "Créativité"},
	{Key: "technicalAffinity", Name: "Affinité technique"},
	{Key: "autonomy", Name: "Autonomie"},
	{Key: "motivation", Name: "Motivation"},
}

var noDiplomaWeights = []float64{0.2, 0.2, 0.1, 0.15, 0.15, 0.2}

var noDiplomaInstrument = Instrument{
	ID:             InstrumentNoDiploma,
	Name:           "Métiers sans diplôme",
	Categories:     noDiplomaCategories,
	MissingDefault: PreScoredDefault,
	Confidence:     NoDiplomaConfidence,
	Questions: dimensionQuestions(noDiplomaCategories, []string{
		"Aimez-vous les tâches concrètes et manuelles ?",
		"Êtes-vous à l'aise au contact de clients ou du public ?",
		"Aimez-vous inventer, décorer ou créer ?",
		"Êtes-vous attiré par les outils, les machines ou l'informatique ?",
		"Savez-vous travailler sans qu'on vous dise quoi faire ?",
		"Êtes-vous prêt à vous former rapidement pour trouver un emploi ?",
	}),
}

var noDiplomaTable = recommendationTable{
	rules: []recommendationRule{
		{
			when:    above(ndPractical),
			primary: []string{"Bâtiment", "Artisanat", "Logistique"},
			paths:   []string{"Apprentissage"},
		},
		{
			when:    above(ndInterpersonal),
			primary: []string{"Commerce", "Hôtellerie-restauration", "Aide à la personne"},
			paths:   []string{"Contrat de professionnalisation"},
		},
		{
			when:    above(ndCreativity),
			primary: []string{"Métiers d'art", "Cuisine"},
			paths:   []string{"Formation courte certifiante"},
		},
		{
			when:    above(ndTechnical),
			primary: []string{"Maintenance", "Informatique", "Électricité"},
			paths:   []string{"Titre professionnel"},
		},
		{
			when:    both(above(ndAutonomy), above(ndMotivation)),
			primary: []string{"Création d'activité"},
			paths:   []string{"Micro-entreprise"},
		},
		{
			when:  above(ndMotivation),
			paths: []string{"Validation des acquis de l'expérience (VAE)"},
		},
		{
			when:  below(ndMotivation),
			paths: []string{"Accompagnement Mission Locale"},
		},
	},
	fallbackPrimary: []string{"Commerce", "Logistique", "Services à la personne"},
	fallbackPaths:   []string{"Accompagnement France Travail", "Formation courte certifiante"},
	limit:           NoDiplomaMaxRecommendations,
}

// NoDiplomaResult is the score record of the no-diploma career instrument.
type NoDiplomaResult struct {
	PracticalSkills     int      `json:"practicalSkills"`
	InterpersonalSkills int      `json:"interpersonalSkills"`
	Creativity          int      `json:"creativity"`
	TechnicalAffinity   int      `json:"technicalAffinity"`
	Autonomy            int      `json:"autonomy"`
	Motivation          int      `json:"motivation"`
	EmployabilityScore  int      `json:"employabilityScore"`
	TrainingReadiness   int      `json:"trainingReadiness"`
	RecommendedFields   []string `json:"recommendedFields"`
	RecommendedPaths    []string `json:"recommendedPaths"`
	ConfidenceScore     int      `json:"confidenceScore"`
}

// ScoreNoDiploma scores the six pre-scored no-diploma dimensions. Each recommendation
// list holds at most NoDiplomaMaxRecommendations entries.
func ScoreNoDiploma(responses []int) NoDiplomaResult {
	in := noDiplomaInstrument
	d := preScored(responses, len(in.Categories))
	fields, paths := noDiplomaTable.apply(d)

	return NoDiplomaResult{
		PracticalSkills:     d[ndPractical],
		InterpersonalSkills: d[ndInterpersonal],
		Creativity:          d[ndCreativity],
		TechnicalAffinity:   d[ndTechnical],
		Autonomy:            d[ndAutonomy],
		Motivation:          d[ndMotivation],
		EmployabilityScore:  weightedComposite(d, noDiplomaWeights),
		TrainingReadiness:   roundHalfUp(float64(d[ndMotivation]+d[ndTechnical]) / 2),
		RecommendedFields:   fields,
		RecommendedPaths:    paths,
		ConfidenceScore:     in.Confidence,
	}
}

func (r NoDiplomaResult) Instrument() InstrumentID { return InstrumentNoDiploma }

func (r NoDiplomaResult) Scores() map[string]int {
	m := dimensionMap(noDiplomaCategories, []int{
		r.PracticalSkills, r.InterpersonalSkills, r.Creativity, r.TechnicalAffinity, r.Autonomy, r.Motivation,
	})
	m["employabilityScore"] = r.EmployabilityScore
	m["trainingReadiness"] = r.TrainingReadiness
	return m
}

func (r NoDiplomaResult) Dominant() []string { return r.RecommendedFields }

func (r NoDiplomaResult) Confidence() int { return r.ConfidenceScore }
