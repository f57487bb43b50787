package scoring

import (
	"math"
	"strings"

	"github.com/daniel/expert-panel/internal/taxonomy"
	"github.com/daniel/expert-panel/internal/terms"
	"github.com/daniel/expert-panel/internal/types"
)

// Base point units. These are the fixed per-signal contributions before
// factor weighting; only the weights are configurable.
const (
	basePrimaryPoints   = 15
	baseSecondaryPoints = 8
	baseNegativePoints  = 10
	baseClusterPoints   = 10
	baseCategoryPoints  = 15
	complexityBonus     = 10
	multiMatchBonus     = 15
	capabilityScale     = 20

	// multiMatchCount is the number of exact matches needed for the bonus.
	multiMatchCount = 3

	scoreMin = 0
	scoreMax = 100
)

// Scorer computes confidence scores for roles against free-text queries.
// Scoring is a pure function of the catalog, the term store, the current
// weights, and the inputs; the Scorer itself holds no per-call state and is
// safe for concurrent use.
type Scorer struct {
	catalog *taxonomy.Catalog
	terms   *terms.Store
	weights *Weights
}

// New constructs a Scorer over the given catalog, term store, and weights.
func New(catalog *taxonomy.Catalog, store *terms.Store, weights *Weights) *Scorer {
	return &Scorer{catalog: catalog, terms: store, weights: weights}
}

// Weights exposes the scorer's weight state for the feedback surface.
func (s *Scorer) Weights() *Weights {
	return s.weights
}

// Score computes the bounded [0,100] match score between a query and a role.
//
// An unknown role id is not an error: scoring degrades to the cluster and
// category signals so that every candidate role can be evaluated even when
// sparsely defined. This leniency is deliberate and differs from the strict
// lookup on the template surface.
func (s *Scorer) Score(roleID, query string, ctx types.ScoreContext) types.ScoreResult {
	weights := s.weights.Snapshot()
	loweredQuery := strings.ToLower(query)

	var score float64
	var matches types.MatchDetails

	// Term passes. A role with no registered term set contributes nothing
	// here; the cluster and category passes below still apply.
	if set, ok := s.terms.TermSet(roleID); ok {
		for _, term := range set.Primary {
			if strings.Contains(loweredQuery, strings.ToLower(term)) {
				score += basePrimaryPoints * weights[FactorExactMatch]
				matches.ExactMatches = append(matches.ExactMatches, term)
			}
		}
		for _, term := range set.Secondary {
			if strings.Contains(loweredQuery, strings.ToLower(term)) {
				score += baseSecondaryPoints * weights[FactorSemanticMatch]
				matches.SemanticMatches = append(matches.SemanticMatches, term)
			}
		}
		for _, term := range set.Negative {
			if strings.Contains(loweredQuery, strings.ToLower(term)) {
				// The negative weight is negative by default, so this
				// subtracts from the running score.
				score += baseNegativePoints * weights[FactorNegativeMatch]
				matches.NegativeMatches = append(matches.NegativeMatches, term)
			}
		}
	}

	// Semantic cluster pass. The bonus is added once no matter how many
	// clusters match; the recorded name is the last match in catalog order.
	roleTokens := strings.Fields(strings.ToLower(roleID))
	queryTokens := strings.Fields(loweredQuery)
	clusterMatched := false
	for _, cluster := range s.terms.Clusters() {
		if clusterHits(cluster.Terms, roleTokens) || clusterHits(cluster.Terms, queryTokens) {
			clusterMatched = true
			matches.SemanticCluster = cluster.Name
		}
	}
	if clusterMatched {
		score += baseClusterPoints * weights[FactorSemanticMatch]
	}

	// Category hint.
	if ctx.Category != "" && ctx.Category == s.catalog.CategoryOf(roleID).String() {
		score += baseCategoryPoints * weights[FactorCategoryMatch]
		matches.CategoryMatch = true
	}

	// Complexity bonus requires both a complex query and at least one
	// exact match.
	if assessComplexity(query) > complexityThreshold && len(matches.ExactMatches) > 0 {
		score += complexityBonus
		matches.ComplexityBonus = true
	}

	// Multi-match bonus.
	if len(matches.ExactMatches) >= multiMatchCount {
		score += multiMatchBonus
		matches.MultiMatchBonus = true
	}

	// Capability relevance against the role id.
	if len(ctx.Capabilities) > 0 {
		loweredRole := strings.ToLower(roleID)
		hits := 0
		for _, capability := range ctx.Capabilities {
			if strings.Contains(loweredRole, strings.ToLower(capability)) {
				hits++
			}
		}
		relevance := float64(hits) / float64(len(ctx.Capabilities))
		score += relevance * capabilityScale * weights[FactorCapabilityMatch]
		matches.CapabilityRelevance = relevance
	}

	clamped := clampScore(score)

	return types.ScoreResult{
		RoleID:     roleID,
		Score:      clamped,
		Confidence: types.ConfidenceFromScore(clamped),
		Matches:    matches,
		Reasoning:  buildReasoning(matches),
	}
}

// clusterHits reports whether any cluster term appears as a substring of
// any token.
func clusterHits(clusterTerms, tokens []string) bool {
	for _, term := range clusterTerms {
		for _, token := range tokens {
			if strings.Contains(token, term) {
				return true
			}
		}
	}
	return false
}

// clampScore rounds and clamps the accumulated score to [0,100].
func clampScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < scoreMin {
		return scoreMin
	}
	if rounded > scoreMax {
		return scoreMax
	}
	return rounded
}
