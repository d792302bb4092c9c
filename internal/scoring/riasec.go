package scoring

import "strings"

// RIASECVariant selects which confidence constant a RIASEC record reports.
type RIASECVariant string

const (
	RIASECVariantStandard RIASECVariant = "standard"
	RIASECVariantHook     RIASECVariant = "hook"
)

const riasecDominantCount = 3

var riasecCategories = []Category{
	{Key: "realistic", Name: "Réaliste", Code: "R"},
	{Key: "investigative", Name: "Investigateur", Code: "I"},
	{Key: "artistic", Name: "Artistique", Code: "A"},
	{Key: "social", Name: "Social", Code: "S"},
	{Key: "enterprising", Name: "Entreprenant", Code: "E"},
	{Key: "conventional", Name: "Conventionnel", Code: "C"},
}

var riasecInstrument = Instrument{
	ID:             InstrumentRIASEC,
	Name:           "Test RIASEC (Holland)",
	Categories:     riasecCategories,
	MaxWeight:      LikertMax,
	MissingDefault: RIASECMissingWeight,
	Confidence:     RIASECConfidence,
	Questions: []Question{
		{ID: 1, Category: "realistic", Text: "J'aime réparer des objets ou des machines."},
		{ID: 2, Category: "realistic", Text: "Je préfère travailler avec mes mains plutôt que derrière un bureau."},
		{ID: 3, Category: "realistic", Text: "J'aime travailler en plein air."},
		{ID: 4, Category: "realistic", Text: "Utiliser des outils ou conduire des engins me plaît."},
		{ID: 5, Category: "realistic", Text: "Je suis à l'aise avec les activités physiques et concrètes."},
		{ID: 6, Category: "investigative", Text: "J'aime comprendre comment les choses fonctionnent."},
		{ID: 7, Category: "investigative", Text: "Résoudre des problèmes complexes me stimule."},
		{ID: 8, Category: "investigative", Text: "Je m'intéresse aux sciences et à la recherche."},
		{ID: 9, Category: "investigative", Text: "J'aime analyser des données pour en tirer des conclusions."},
		{ID: 10, Category: "investigative", Text: "Je me pose souvent des questions sur le pourquoi des choses."},
		{ID: 11, Category: "artistic", Text: "J'aime créer des œuvres originales (dessin, musique, écriture)."},
		{ID: 12, Category: "artistic", Text: "J'ai besoin de liberté pour m'exprimer dans mon travail."},
		{ID: 13, Category: "artistic", Text: "Je suis sensible à l'esthétique et au design."},
		{ID: 14, Category: "artistic", Text: "J'aime imaginer des idées nouvelles et inhabituelles."},
		{ID: 15, Category: "artistic", Text: "Les activités culturelles occupent une place importante dans ma vie."},
		{ID: 16, Category: "social", Text: "J'aime aider les autres à résoudre leurs problèmes."},
		{ID: 17, Category: "social", Text: "Enseigner ou expliquer des choses me plaît."},
		{ID: 18, Category: "social", Text: "Je suis à l'écoute des personnes qui m'entourent."},
		{ID: 19, Category: "social", Text: "Travailler en équipe est important pour moi."},
		{ID: 20, Category: "social", Text: "Je m'engage volontiers dans des actions solidaires."},
		{ID: 21, Category: "enterprising", Text: "J'aime convaincre et négocier."},
		{ID: 22, Category: "enterprising", Text: "Prendre des décisions et diriger un projet me motive."},
		{ID: 23, Category: "enterprising", Text: "Je suis attiré par le monde des affaires."},
		{ID: 24, Category: "enterprising", Text: "J'aime prendre des risques pour atteindre un objectif."},
		{ID: 25, Category: "enterprising", Text: "Je me vois bien créer ma propre entreprise."},
		{ID: 26, Category: "conventional", Text: "J'aime l'ordre et l'organisation."},
		{ID: 27, Category: "conventional", Text: "Suivre des procédures précises me rassure."},
		{ID: 28, Category: "conventional", Text: "Je suis à l'aise avec les chiffres et les tableaux."},
		{ID: 29, Category: "conventional", Text: "Classer et archiver des documents ne me dérange pas."},
		{ID: 30, Category: "conventional", Text: "Je suis minutieux et attentif aux détails."},
	},
}

// RIASECResult is the score record of the RIASEC instrument.
type RIASECResult struct {
	Realistic       int             `json:"realistic"`
	Investigative   int             `json:"investigative"`
	Artistic        int             `json:"artistic"`
	Social          int             `json:"social"`
	Enterprising    int             `json:"enterprising"`
	Conventional    int             `json:"conventional"`
	DominantTypes   []string        `json:"dominantTypes"`
	PersonalityCode string          `json:"personalityCode"`
	ConfidenceScore int             `json:"confidenceScore"`
	Categories      []CategoryScore `json:"categories"`
}

// ScoreRIASEC scores Likert answers given in catalog order with the standard confidence.
func ScoreRIASEC(responses []int) RIASECResult {
	return ScoreRIASECVariant(responses, RIASECVariantStandard)
}

// ScoreRIASECVariant scores like ScoreRIASEC and reports the confidence of the given
// variant. Unknown variants report the standard confidence.
func ScoreRIASECVariant(responses []int, variant RIASECVariant) RIASECResult {
	in := riasecInstrument
	raw := make(map[string]int, len(in.Categories))
	for i, q := range in.Questions {
		if i >= len(responses) {
			break
		}
		w := responses[i]
		if w < LikertMin || w > LikertMax {
			w = in.MissingDefault
		}
		raw[q.Category] += w
	}

	scores := make([]CategoryScore, len(in.Categories))
	byKey := make(map[string]int, len(in.Categories))
	for i, c := range in.Categories {
		n := Normalize(raw[c.Key], in.QuestionsIn(c.Key), in.MaxWeight)
		scores[i] = CategoryScore{Category: c.Key, RawSum: raw[c.Key], NormalizedScore: n}
		byKey[c.Key] = n
	}
	ranked := Rank(scores)

	codes := make([]string, 0, riasecDominantCount)
	for _, key := range Top(ranked, riasecDominantCount) {
		codes = append(codes, riasecCode(key))
	}

	confidence := RIASECConfidence
	if variant == RIASECVariantHook {
		confidence = RIASECHookConfidence
	}

	return RIASECResult{
		Realistic:       byKey["realistic"],
		Investigative:   byKey["investigative"],
		Artistic:        byKey["artistic"],
		Social:          byKey["social"],
		Enterprising:    byKey["enterprising"],
		Conventional:    byKey["conventional"],
		DominantTypes:   codes,
		PersonalityCode: strings.Join(codes, ""),
		ConfidenceScore: confidence,
		Categories:      ranked,
	}
}

func riasecCode(key string) string {
	for _, c := range riasecCategories {
		if c.Key == key {
			return c.Code
		}
	}
	return ""
}

func (r RIASECResult) Instrument() InstrumentID { return InstrumentRIASEC }

func (r RIASECResult) Scores() map[string]int {
	return map[string]int{
		"realistic":     r.Realistic,
		"investigative": r.Investigative,
		"artistic":      r.Artistic,
		"social":        r.Social,
		"enterprising":  r.Enterprising,
		"conventional":  r.Conventional,
	}
}

func (r RIASECResult) Dominant() []string { return r.DominantTypes }

func (r RIASECResult) Confidence() int { return r.ConfidenceScore }
