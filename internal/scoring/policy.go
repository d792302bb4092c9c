package scoring

// Missing-input policy. Analyzers never fail on short or malformed input; they
// substitute these values instead.
const (
	// RIASECMissingWeight is what a missing or out-of-range Likert answer adds to its category.
	RIASECMissingWeight = 0
	// IntelligenceBaseline is the starting score of every intelligence category.
	IntelligenceBaseline = 30
	// LearningStyleDefaultRating replaces a missing or unparseable learning-style rating.
	LearningStyleDefaultRating = 3
	// PreScoredDefault replaces a missing dimension of the pre-scored instruments.
	PreScoredDefault = 50
)

// Scale bounds.
const (
	LikertMin         = 1
	LikertMax         = 5
	ScoreMin          = 0
	ScoreMax          = 100
	IntelligenceBonus = 20
)

// Confidence constants. They are fixed per instrument and not derived from the answers.
const (
	RIASECConfidence           = 85
	RIASECHookConfidence       = 90
	IntelligenceConfidence     = 80
	LearningStyleConfidence    = 85
	EntrepreneurialConfidence  = 85
	CareerTransitionConfidence = 85
	NoDiplomaConfidence        = 85
)

// NoDiplomaMaxRecommendations caps each no-diploma recommendation list.
const NoDiplomaMaxRecommendations = 5
