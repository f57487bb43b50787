// Package nominate ranks expert roles against a query and decides which
// nominations are worth surfacing.
package nominate

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/daniel/expert-panel/internal/scoring"
	"github.com/daniel/expert-panel/internal/types"
)

// batchConcurrency bounds the number of queries scored in parallel.
const batchConcurrency = 8

// Ranker scores candidate roles and orders them by confidence.
type Ranker struct {
	scorer *scoring.Scorer
}

// New constructs a Ranker over the given scorer.
func New(scorer *scoring.Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// Rank scores every candidate role against the query and returns results in
// strictly descending score order. The sort is stable: tied roles keep their
// relative order from the input slice.
func (r *Ranker) Rank(roleIDs []string, query string, ctx types.ScoreContext) []types.ScoreResult {
	results := make([]types.ScoreResult, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		results = append(results, r.scorer.Score(roleID, query, ctx))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// ShouldRecommend reports whether a score clears the recommendation gate
// (the MEDIUM confidence threshold).
func ShouldRecommend(score int) bool {
	return score >= types.ThresholdMedium
}

// ScoreBatch scores one role against many queries concurrently and returns
// one result per query in query order.
func (r *Ranker) ScoreBatch(ctx context.Context, roleID string, queries []string, scoreCtx types.ScoreContext) ([]types.ScoreResult, error) {
	results := make([]types.ScoreResult, len(queries))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, query := range queries {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = r.scorer.Score(roleID, query, scoreCtx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
