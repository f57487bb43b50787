package nominate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/expert-panel/internal/scoring"
	"github.com/daniel/expert-panel/internal/taxonomy"
	"github.com/daniel/expert-panel/internal/terms"
	"github.com/daniel/expert-panel/internal/types"
)

func newTestRanker(t *testing.T) *Ranker {
	t.Helper()

	catalog, err := taxonomy.LoadDefault()
	require.NoError(t, err)

	store, err := terms.LoadDefault()
	require.NoError(t, err)

	return New(scoring.New(catalog, store, scoring.NewWeights()))
}

func TestRank_DescendingByScore(t *testing.T) {
	ranker := newTestRanker(t)

	catalog, err := taxonomy.LoadDefault()
	require.NoError(t, err)

	results := ranker.Rank(catalog.Keys(), "I need help with machine learning model training", types.ScoreContext{})
	require.Len(t, results, catalog.Len())

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
	assert.Equal(t, "ai-ml-engineer", results[0].RoleID)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	ranker := newTestRanker(t)

	// Roles with no term hits and no cluster hit from a nonsense query all
	// tie; ties must preserve the input order.
	roleIDs := []string{"finance-analyst", "legal-advisor", "product-manager"}
	results := ranker.Rank(roleIDs, "zzzz qqqq", types.ScoreContext{})
	require.Len(t, results, 3)

	scores := map[string]int{}
	for _, result := range results {
		scores[result.RoleID] = result.Score
	}
	if scores["finance-analyst"] == scores["legal-advisor"] && scores["legal-advisor"] == scores["product-manager"] {
		assert.Equal(t, "finance-analyst", results[0].RoleID)
		assert.Equal(t, "legal-advisor", results[1].RoleID)
		assert.Equal(t, "product-manager", results[2].RoleID)
	}
}

func TestRank_EmptyCandidateList(t *testing.T) {
	ranker := newTestRanker(t)
	assert.Empty(t, ranker.Rank(nil, "anything", types.ScoreContext{}))
}

func TestShouldRecommend_ThresholdConsistency(t *testing.T) {
	for score := 0; score <= 100; score++ {
		assert.Equal(t, score >= 40, ShouldRecommend(score), "score %d", score)
	}
}

func TestScoreBatch_PreservesQueryOrder(t *testing.T) {
	ranker := newTestRanker(t)

	queries := []string{
		"machine learning question",
		"totally unrelated gardening advice",
		"training a neural network for deep learning",
	}

	results, err := ranker.ScoreBatch(context.Background(), "ai-ml-engineer", queries, types.ScoreContext{})
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	// Each slot corresponds to its query, not to rank order.
	assert.Contains(t, results[0].Matches.ExactMatches, "machine learning")
	assert.Empty(t, results[1].Matches.ExactMatches)
	assert.Contains(t, results[2].Matches.ExactMatches, "neural network")
}

func TestScoreBatch_MatchesSequentialScoring(t *testing.T) {
	ranker := newTestRanker(t)

	queries := []string{"api design", "machine learning", "contract review", "wireframe feedback"}
	batch, err := ranker.ScoreBatch(context.Background(), "backend-engineer", queries, types.ScoreContext{})
	require.NoError(t, err)

	sequential := make([]types.ScoreResult, len(queries))
	for i, query := range queries {
		sequential[i] = ranker.scorer.Score("backend-engineer", query, types.ScoreContext{})
	}

	assert.Equal(t, sequential, batch)
}

func TestScoreBatch_CancelledContext(t *testing.T) {
	ranker := newTestRanker(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ranker.ScoreBatch(ctx, "backend-engineer", []string{"api"}, types.ScoreContext{})
	assert.Error(t, err)
}
