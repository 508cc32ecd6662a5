package matching

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-screener/internal/types"
)

// ScoreAll scores every candidate against the job. Candidates are
// independent, so scoring runs concurrently; the output preserves input
// order so downstream filtering and sorting see a deterministic, fully
// scored snapshot.
func ScoreAll(ctx context.Context, candidates []types.Candidate, job *types.JobDescription) ([]types.ScoredCandidate, error) {
	scored := make([]types.ScoredCandidate, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range candidates {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			scored[i] = types.ScoredCandidate{
				Candidate: candidates[i],
				Match:     ComputeMatch(&candidates[i], job),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scored, nil
}
