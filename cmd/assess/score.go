package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"orientation-workers/internal/scoring"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score <instrument>",
	Short: "Score one questionnaire",
	Long:  "Scores one answer sequence given inline with --answers (comma separated), as 0-based scale positions with --choices (pre-scored instruments only), or read from a JSON file with --file. The file holds either an answer array or a submission object with a responses array.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

var (
	scoreAnswers  string
	scoreChoices  string
	scoreFilePath string
	scoreVariant  string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreAnswers, "answers", "a", "", "Comma separated answers in catalog order")
	scoreCmd.Flags().StringVar(&scoreChoices, "choices", "", "Comma separated 0-based scale positions of a pre-scored instrument")
	scoreCmd.Flags().StringVar(&scoreFilePath, "file", "", "Path to a JSON answer array or submission")
	scoreCmd.Flags().StringVar(&scoreVariant, "variant", "", "RIASEC confidence variant: standard or hook")
	scoreCmd.MarkFlagsMutuallyExclusive("answers", "choices", "file")

	rootCmd.AddCommand(scoreCmd)
}

// submission is the file form of one questionnaire.
type submission struct {
	SubmissionID string               `json:"submissionId,omitempty"`
	Instrument   scoring.InstrumentID `json:"instrument,omitempty"`
	Variant      string               `json:"variant,omitempty"`
	Responses    []interface{}        `json:"responses"`
}

// scored is the CLI output for one questionnaire.
type scored struct {
	File         string               `json:"file,omitempty"`
	SubmissionID string               `json:"submissionId,omitempty"`
	Instrument   scoring.InstrumentID `json:"instrument,omitempty"`
	Defaulted    int                  `json:"defaultedAnswers"`
	Result       scoring.Record       `json:"result,omitempty"`
	Error        string               `json:"error,omitempty"`
}

func runScore(cmd *cobra.Command, args []string) error {
	id, err := parseInstrument(args[0])
	if err != nil {
		return err
	}

	sub := &submission{Instrument: id, Variant: scoreVariant}
	switch {
	case scoreFilePath != "":
		loaded, err := loadSubmission(scoreFilePath)
		if err != nil {
			return err
		}
		sub.SubmissionID = loaded.SubmissionID
		sub.Responses = loaded.Responses
		if sub.Variant == "" {
			sub.Variant = loaded.Variant
		}
	case scoreAnswers != "":
		sub.Responses = parseAnswers(scoreAnswers)
	case scoreChoices != "":
		responses, err := parseChoices(id, scoreChoices)
		if err != nil {
			return err
		}
		sub.Responses = responses
	default:
		return fmt.Errorf("one of --answers, --choices or --file is required")
	}

	out, err := scoreSubmission(sub)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), out, outputFormat)
}

// parseAnswers splits a comma separated answer list. Empty entries stay missing; the
// analyzers coerce numeric strings themselves.
func parseAnswers(csv string) []interface{} {
	parts := strings.Split(csv, ",")
	out := make([]interface{}, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out[i] = p
	}
	return out
}

// parseChoices maps comma separated scale positions to the instrument's 0-100 values.
// Empty entries are kept as unknown positions.
func parseChoices(id scoring.InstrumentID, csv string) ([]interface{}, error) {
	if !scoring.PreScored(id) {
		return nil, fmt.Errorf("--choices applies to pre-scored instruments only, not %s", id)
	}
	parts := strings.Split(csv, ",")
	positions := make([]int, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			positions[i] = -1
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid choice %q at position %d", p, i+1)
		}
		positions[i] = n
	}

	values := scoring.MapChoices(id, positions)
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out, nil
}

func loadSubmission(path string) (*submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file %s: %w", path, err)
	}

	var answers []interface{}
	if err := json.Unmarshal(data, &answers); err == nil {
		return &submission{Responses: answers}, nil
	}

	var sub submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}
	if sub.Responses == nil {
		return nil, fmt.Errorf("answers file %s has no responses array", path)
	}
	return &sub, nil
}

func scoreSubmission(sub *submission) (*scored, error) {
	if sub.Variant == "" {
		sub.Variant = defaultVariant
	}
	switch scoring.RIASECVariant(sub.Variant) {
	case "", scoring.RIASECVariantStandard, scoring.RIASECVariantHook:
	default:
		return nil, fmt.Errorf("unknown riasec variant %q", sub.Variant)
	}

	record, err := scoring.Score(sub.Instrument, sub.Responses, scoring.WithRIASECVariant(scoring.RIASECVariant(sub.Variant)))
	if err != nil {
		return nil, err
	}
	return &scored{
		SubmissionID: sub.SubmissionID,
		Instrument:   sub.Instrument,
		Defaulted:    scoring.MissingAnswers(sub.Instrument, sub.Responses),
		Result:       record,
	}, nil
}
