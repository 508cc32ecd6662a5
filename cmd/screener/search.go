package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-screener/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the candidate corpus for a phrase",
	Long:  "Runs a case-insensitive substring search over the raw text of every candidate document and prints one snippet per matching candidate.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var (
	searchCandidates string
	searchJob        string
	searchSeed       int64
)

func init() {
	searchCmd.Flags().StringVarP(&searchCandidates, "candidates", "c", "", "Path to candidates JSON file")
	searchCmd.Flags().StringVarP(&searchJob, "job", "j", "", "Path to job description JSON file")
	searchCmd.Flags().Int64Var(&searchSeed, "seed", 0, "Fix the relevance jitter seed for reproducible output (0 seeds from the clock)")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	scored, _, err := loadScoredCorpus(cmd.Context(), cfg, searchCandidates, searchJob)
	if err != nil {
		return err
	}

	seed := searchSeed
	if seed == 0 {
		seed = cfg.SearchSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	results := search.New(rand.NewSource(seed)).Search(args[0], scored)
	if len(results) == 0 {
		fmt.Println("No matches.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tRELEVANCE\tSNIPPET")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\n", r.SourceLabel, r.Relevance, r.Snippet)
	}
	return tw.Flush()
}
