package scoring

import (
	"strings"

	"github.com/daniel/expert-panel/internal/types"
)

// reasoningRule pairs a trigger with the sentence it contributes. Rules are
// evaluated in fixed order and only triggered sentences appear in the
// generated explanation.
type reasoningRule struct {
	applies  func(m types.MatchDetails) bool
	sentence func(m types.MatchDetails) string
}

var reasoningRules = []reasoningRule{
	{
		applies: func(m types.MatchDetails) bool { return len(m.ExactMatches) > 0 },
		sentence: func(m types.MatchDetails) string {
			return "Strong domain alignment with terms: " + strings.Join(m.ExactMatches, ", ")
		},
	},
	{
		applies: func(m types.MatchDetails) bool { return len(m.SemanticMatches) > 0 },
		sentence: func(m types.MatchDetails) string {
			return "Related concepts identified: " + strings.Join(m.SemanticMatches, ", ")
		},
	},
	{
		applies: func(m types.MatchDetails) bool { return len(m.NegativeMatches) > 0 },
		sentence: func(m types.MatchDetails) string {
			return "Competing domain indicators: " + strings.Join(m.NegativeMatches, ", ")
		},
	},
	{
		applies:  func(m types.MatchDetails) bool { return m.CategoryMatch },
		sentence: func(types.MatchDetails) string { return "Category alignment confirmed" },
	},
	{
		applies:  func(m types.MatchDetails) bool { return m.ComplexityBonus },
		sentence: func(types.MatchDetails) string { return "Complex query with strong matches" },
	},
	{
		applies:  func(m types.MatchDetails) bool { return m.MultiMatchBonus },
		sentence: func(types.MatchDetails) string { return "Multiple strong indicators present" },
	},
}

// buildReasoning renders the human-readable explanation for a score from
// its match details.
func buildReasoning(matches types.MatchDetails) string {
	var parts []string
	for _, rule := range reasoningRules {
		if rule.applies(matches) {
			parts = append(parts, rule.sentence(matches))
		}
	}
	if len(parts) == 0 {
		return "Limited matching indicators found."
	}
	return strings.Join(parts, ". ") + "."
}
