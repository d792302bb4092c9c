package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"orientation-workers/internal/scoring"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Score every submission file in a directory",
	Long:  "Scores every *.json submission in a directory concurrently. Each file holds {submissionId, instrument, variant, responses}; files that cannot be scored are reported with an error entry.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatchCmd,
}

var (
	batchConcurrency int
	batchInstrument  string
)

func init() {
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 4, "Maximum submissions scored at once")
	batchCmd.Flags().StringVarP(&batchInstrument, "instrument", "i", "", "Instrument used when a file does not name one")

	rootCmd.AddCommand(batchCmd)
}

func runBatchCmd(cmd *cobra.Command, args []string) error {
	var fallback scoring.InstrumentID
	if batchInstrument != "" {
		id, err := parseInstrument(batchInstrument)
		if err != nil {
			return err
		}
		fallback = id
	}

	results, err := runBatch(cmd.Context(), args[0], fallback, batchConcurrency)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), results, outputFormat)
}

// runBatch scores the submission files of dir, at most concurrency at a time. Results
// follow the sorted file names.
func runBatch(ctx context.Context, dir string, fallback scoring.InstrumentID, concurrency int) ([]*scored, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".json") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	results := make([]*scored, len(files))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = scoreFile(filepath.Join(dir, name), fallback)
			results[i].File = name
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func scoreFile(path string, fallback scoring.InstrumentID) *scored {
	sub, err := loadSubmission(path)
	if err != nil {
		return &scored{Error: err.Error()}
	}
	if sub.Instrument == "" {
		sub.Instrument = fallback
	}
	if sub.Instrument == "" {
		return &scored{SubmissionID: sub.SubmissionID, Error: "submission names no instrument"}
	}

	out, err := scoreSubmission(sub)
	if err != nil {
		return &scored{SubmissionID: sub.SubmissionID, Instrument: sub.Instrument, Error: err.Error()}
	}
	return out
}
