package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-screener/internal/qa"
	"github.com/jonathan/cv-screener/internal/search"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a question about the candidate corpus",
	Long:  "Routes a free-text question to a templated answer grounded in the uploaded CVs and job description, with citations into the source documents.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAsk,
}

var (
	askCandidates string
	askJob        string
)

func init() {
	askCmd.Flags().StringVarP(&askCandidates, "candidates", "c", "", "Path to candidates JSON file")
	askCmd.Flags().StringVarP(&askJob, "job", "j", "", "Path to job description JSON file")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	scored, job, err := loadScoredCorpus(cmd.Context(), cfg, askCandidates, askJob)
	if err != nil {
		return err
	}

	seed := cfg.SearchSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	router := qa.NewRouter(search.New(rand.NewSource(seed)))

	answer := router.Answer(args[0], scored, job)
	fmt.Println(answer.Text)

	if len(answer.Citations) > 0 {
		fmt.Println("\nSources:")
		for _, cit := range answer.Citations {
			fmt.Printf("  [%s] %s\n", cit.Source, cit.Snippet)
		}
	}
	return nil
}
