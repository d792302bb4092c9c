package scoring

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// CategoryScore is the aggregated and normalized score of one category.
type CategoryScore struct {
	Category        string `json:"category"`
	RawSum          int    `json:"rawSum"`
	NormalizedScore int    `json:"normalizedScore"`
}

// roundHalfUp rounds .5 upwards, the way the scores have always been rounded.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Normalize rescales a raw category sum to 0-100 against questions × maxWeight.
func Normalize(rawSum, questions, maxWeight int) int {
	maxPossible := questions * maxWeight
	if maxPossible <= 0 {
		return ScoreMin
	}
	return clamp(roundHalfUp(float64(rawSum)/float64(maxPossible)*100), ScoreMin, ScoreMax)
}

// Rank orders category scores by normalized score, descending. The sort is stable,
// so equal scores keep their declaration order.
func Rank(scores []CategoryScore) []CategoryScore {
	ranked := make([]CategoryScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].NormalizedScore > ranked[j].NormalizedScore
	})
	return ranked
}

// Top returns the categories of the first n ranked scores.
func Top(ranked []CategoryScore, n int) []string {
	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]string, 0, n)
	for _, s := range ranked[:n] {
		out = append(out, s.Category)
	}
	return out
}

// weightedComposite computes round(Σ value_i × weight_i), clamped to 0-100.
func weightedComposite(values []int, weights []float64) int {
	total := 0.0
	for i, w := range weights {
		if i < len(values) {
			total += float64(values[i]) * w
		}
	}
	return clamp(roundHalfUp(total), ScoreMin, ScoreMax)
}

// preScored reads positional 0-100 dimensions. Missing entries become PreScoredDefault,
// present ones are clamped to 0-100, and entries past n are ignored.
func preScored(responses []int, n int) []int {
	out := make([]int, n)
	for i := range out {
		if i < len(responses) {
			out[i] = clamp(responses[i], ScoreMin, ScoreMax)
		} else {
			out[i] = PreScoredDefault
		}
	}
	return out
}

// numeric converts a loosely typed answer (JSON number, Go integer, numeric string)
// into a float. ok is false when the value is absent, not numeric, NaN or infinite.
func numeric(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(v, ",", ".")), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	default:
		return 0, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// appendUnique appends items not already present, preserving order.
func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		seen := false
		for _, existing := range list {
			if existing == item {
				seen = true
				break
			}
		}
		if !seen {
			list = append(list, item)
		}
	}
	return list
}
