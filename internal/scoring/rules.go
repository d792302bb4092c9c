package scoring

// Thresholds of the pre-scored decision tables.
const (
	highThreshold = 70
	lowThreshold  = 30
)

// recommendationRule adds entries to the two recommendation lists when its condition
// holds over the positional dimensions.
type recommendationRule struct {
	when    func(d []int) bool
	primary []string
	paths   []string
}

type recommendationTable struct {
	rules           []recommendationRule
	fallbackPrimary []string
	fallbackPaths   []string
	// limit caps each list; zero means unbounded.
	limit int
}

// apply evaluates every rule in declaration order. Rules are additive and duplicates
// are dropped. Both fallback lists are used only when no rule fired, so a rule that
// adds to one list leaves the other as it is, possibly empty.
func (t recommendationTable) apply(dims []int) (primary, paths []string) {
	primary = []string{}
	paths = []string{}
	fired := false
	for _, r := range t.rules {
		if !r.when(dims) {
			continue
		}
		fired = true
		primary = appendUnique(primary, r.primary...)
		paths = appendUnique(paths, r.paths...)
	}
	if !fired {
		primary = appendUnique(primary, t.fallbackPrimary...)
		paths = appendUnique(paths, t.fallbackPaths...)
	}
	if t.limit > 0 {
		if len(primary) > t.limit {
			primary = primary[:t.limit]
		}
		if len(paths) > t.limit {
			paths = paths[:t.limit]
		}
	}
	return primary, paths
}

func above(i int) func(d []int) bool {
	return func(d []int) bool { return d[i] > highThreshold }
}

func below(i int) func(d []int) bool {
	return func(d []int) bool { return d[i] < lowThreshold }
}

func both(a, b func(d []int) bool) func(d []int) bool {
	return func(d []int) bool { return a(d) && b(d) }
}

// preScoredScale maps the five answer positions of a pre-scored question to its value.
var preScoredScale = []AnswerOption{
	{Key: "0", Label: "Pas du tout", Value: 10},
	{Key: "1", Label: "Un peu", Value: 30},
	{Key: "2", Label: "Moyennement", Value: 50},
	{Key: "3", Label: "Beaucoup", Value: 70},
	{Key: "4", Label: "Tout à fait", Value: 90},
}

// dimensionQuestions builds one question per positional dimension.
func dimensionQuestions(categories []Category, texts []string) []Question {
	qs := make([]Question, len(categories))
	for i, c := range categories {
		qs[i] = Question{ID: i + 1, Category: c.Key, Text: texts[i], Options: preScoredScale}
	}
	return qs
}

// PreScored reports whether id takes positional 0-100 dimensions.
func PreScored(id InstrumentID) bool {
	switch id {
	case InstrumentEntrepreneurial, InstrumentCareerTransition, InstrumentNoDiploma:
		return true
	}
	return false
}

// MapChoices converts 0-based answer positions of a pre-scored instrument into the
// 0-100 values its analyzer expects. Unknown positions map to PreScoredDefault.
func MapChoices(id InstrumentID, choices []int) []int {
	in, ok := Lookup(id)
	out := make([]int, len(choices))
	for i, c := range choices {
		out[i] = PreScoredDefault
		if !ok || i >= len(in.Questions) {
			continue
		}
		opts := in.Questions[i].Options
		if c >= 0 && c < len(opts) && opts[c].Value > 0 {
			out[i] = opts[c].Value
		}
	}
	return out
}

func dimensionMap(categories []Category, dims []int) map[string]int {
	out := make(map[string]int, len(categories)+2)
	for i, c := range categories {
		out[c.Key] = dims[i]
	}
	return out
}
