package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-screener/internal/filtering"
	"github.com/jonathan/cv-screener/internal/observability"
	"github.com/jonathan/cv-screener/internal/types"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter the scored candidate list",
	Long:  "Applies filter dimensions to the scored candidate list. Dimensions combine with AND; selections within a dimension combine with OR. Keywords are ANDed.",
	RunE:  runFilter,
}

var (
	filterCandidates   string
	filterJob          string
	filterEducation    []string
	filterMinYears     float64
	filterMaxYears     float64
	filterCompanySizes []string
	filterMinAdjacency int
	filterBands        []string
	filterKeywords     []string
)

func init() {
	filterCmd.Flags().StringVarP(&filterCandidates, "candidates", "c", "", "Path to candidates JSON file")
	filterCmd.Flags().StringVarP(&filterJob, "job", "j", "", "Path to job description JSON file")
	filterCmd.Flags().StringSliceVar(&filterEducation, "education", nil, "Education levels to keep (high_school, other, bachelors, masters, phd)")
	filterCmd.Flags().Float64Var(&filterMinYears, "min-years", types.DefaultMinYears, "Minimum total years of experience")
	filterCmd.Flags().Float64Var(&filterMaxYears, "max-years", types.DefaultMaxYears, "Maximum total years of experience")
	filterCmd.Flags().StringSliceVar(&filterCompanySizes, "company-size", nil, "Company sizes to keep (startup, small, medium, large, enterprise)")
	filterCmd.Flags().IntVar(&filterMinAdjacency, "min-adjacency", 0, "Minimum tech adjacency score (0-100)")
	filterCmd.Flags().StringSliceVar(&filterBands, "band", nil, "Match bands to keep (high, medium, low)")
	filterCmd.Flags().StringSliceVar(&filterKeywords, "keyword", nil, "Keywords that must appear among a candidate's matched keywords")

	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	scored, _, err := loadScoredCorpus(cmd.Context(), cfg, filterCandidates, filterJob)
	if err != nil {
		return err
	}

	filters := types.FilterState{
		EducationLevels:    toEducationLevels(filterEducation),
		MinYearsExperience: filterMinYears,
		MaxYearsExperience: filterMaxYears,
		CompanySizes:       toCompanySizes(filterCompanySizes),
		MinTechAdjacency:   filterMinAdjacency,
		MatchBands:         toMatchBands(filterBands),
		Keywords:           filterKeywords,
	}
	if err := filters.Validate(); err != nil {
		return err
	}

	filtered := filtering.Apply(scored, filters)
	observability.NewPrinter(os.Stdout).PrintRanking(filtered)
	return nil
}

func toEducationLevels(values []string) []types.EducationLevel {
	levels := make([]types.EducationLevel, len(values))
	for i, v := range values {
		levels[i] = types.EducationLevel(v)
	}
	return levels
}

func toCompanySizes(values []string) []types.CompanySize {
	sizes := make([]types.CompanySize, len(values))
	for i, v := range values {
		sizes[i] = types.CompanySize(v)
	}
	return sizes
}

func toMatchBands(values []string) []types.MatchBand {
	bands := make([]types.MatchBand, len(values))
	for i, v := range values {
		bands[i] = types.MatchBand(v)
	}
	return bands
}
