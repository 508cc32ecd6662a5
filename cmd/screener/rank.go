package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-screener/internal/observability"
	"github.com/jonathan/cv-screener/internal/sorting"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score and rank candidates against a job description",
	Long:  "Scores every candidate deterministically against the job description and prints a ranked table. The same inputs always produce the same scores.",
	RunE:  runRank,
}

var (
	rankCandidates string
	rankJob        string
	rankSort       string
	rankOrder      string
	rankExplain    string
	rankShowJob    bool
	rankJSON       bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to candidates JSON file")
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to job description JSON file")
	rankCmd.Flags().StringVar(&rankSort, "sort", string(sorting.KeyMatchScore), "Sort key: experience, matchScore, name, matchedKeywords")
	rankCmd.Flags().StringVar(&rankOrder, "order", string(sorting.Descending), "Sort order: asc or desc")
	rankCmd.Flags().StringVar(&rankExplain, "explain", "", "Print the full match explanation for the candidate with this ID or name")
	rankCmd.Flags().BoolVar(&rankShowJob, "show-job", false, "Print the job description summary before the ranking")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Emit the scored candidates as JSON instead of a table")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	scored, job, err := loadScoredCorpus(cmd.Context(), cfg, rankCandidates, rankJob)
	if err != nil {
		return err
	}

	sorted, err := sorting.Sort(scored, sorting.Key(rankSort), sorting.Order(rankOrder))
	if err != nil {
		return err
	}

	if rankJSON {
		out, err := json.MarshalIndent(sorted, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal ranking to JSON: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	if rankShowJob {
		printer.PrintJob(job)
	}

	if rankExplain != "" {
		for i := range sorted {
			c := &sorted[i].Candidate
			if c.ID == rankExplain || strings.EqualFold(c.Name, rankExplain) {
				printer.PrintExplanation(&sorted[i])
				return nil
			}
		}
		return fmt.Errorf("no candidate with ID or name %q", rankExplain)
	}

	printer.PrintRanking(sorted)
	return nil
}
