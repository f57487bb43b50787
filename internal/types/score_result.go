// Package types provides type definitions for structured data used throughout the expert-panel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoreResult is the outcome of scoring one role against one query. It is
// created fresh per scoring call and never persisted; the caller owns it.
type ScoreResult struct {
	RoleID     string          `json:"role_id"`
	Score      int             `json:"score"`
	Confidence ConfidenceLabel `json:"confidence"`
	Matches    MatchDetails    `json:"matches"`
	Reasoning  string          `json:"reasoning"`
}

// MatchDetails records which signals contributed to a score.
type MatchDetails struct {
	// ExactMatches are primary terms found in the query.
	ExactMatches []string `json:"exact_matches,omitempty"`
	// SemanticMatches are secondary terms found in the query.
	SemanticMatches []string `json:"semantic_matches,omitempty"`
	// NegativeMatches are competing-domain terms found in the query.
	NegativeMatches []string `json:"negative_matches,omitempty"`
	// SemanticCluster names the matched cluster. When several clusters
	// match, only the last one in catalog order is retained.
	SemanticCluster string `json:"semantic_cluster,omitempty"`
	// CategoryMatch is set when the context category equals the role's.
	CategoryMatch bool `json:"category_match,omitempty"`
	// ComplexityBonus is set when a complex query also had exact matches.
	ComplexityBonus bool `json:"complexity_bonus,omitempty"`
	// MultiMatchBonus is set when three or more primary terms matched.
	MultiMatchBonus bool `json:"multi_match_bonus,omitempty"`
	// CapabilityRelevance is the fraction of requested capabilities
	// reflected in the role id, in [0,1].
	CapabilityRelevance float64 `json:"capability_relevance,omitempty"`
}
