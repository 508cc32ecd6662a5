package main

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-screener/internal/config"
	"github.com/jonathan/cv-screener/internal/dataset"
	"github.com/jonathan/cv-screener/internal/matching"
	"github.com/jonathan/cv-screener/internal/types"
)

// resolveConfig loads the config file named by --config, or the defaults with
// environment overrides when no file is given
func resolveConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadScoredCorpus loads the dataset and scores every candidate against the
// job. Flag values take precedence over config file paths.
func loadScoredCorpus(ctx context.Context, cfg *config.Config, candidatesFlag, jobFlag string) ([]types.ScoredCandidate, *types.JobDescription, error) {
	candidatesPath := candidatesFlag
	if candidatesPath == "" {
		candidatesPath = cfg.Candidates
	}
	jobPath := jobFlag
	if jobPath == "" {
		jobPath = cfg.Job
	}
	if candidatesPath == "" {
		return nil, nil, fmt.Errorf("no candidates file given: use --candidates, the config file, or SCREENER_CANDIDATES")
	}
	if jobPath == "" {
		return nil, nil, fmt.Errorf("no job file given: use --job, the config file, or SCREENER_JOB")
	}

	candidates, err := dataset.LoadCandidates(candidatesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	job, err := dataset.LoadJob(jobPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load job description: %w", err)
	}

	scored, err := matching.ScoreAll(ctx, candidates, job)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to score candidates: %w", err)
	}
	return scored, job, nil
}
