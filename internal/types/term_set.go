// Package types provides type definitions for structured data used throughout the expert-panel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// TermSet holds the matching vocabulary for a single role. Terms are
// lowercase phrases matched case-insensitively as substrings of the query.
//
// The three lists are disjoint by convention, not enforcement: a term that
// appears in both primary and negative will contribute both signals.
type TermSet struct {
	// Primary terms are strong positive signals for the role.
	Primary []string `json:"primary"`
	// Secondary terms are weaker, related-concept signals.
	Secondary []string `json:"secondary"`
	// Negative terms indicate a competing domain and penalize the score.
	Negative []string `json:"negative"`
}

// Clone returns a deep copy of the term set. Callers that hand a TermSet to
// concurrent readers should clone it rather than share backing arrays with
// a mutable store.
func (ts *TermSet) Clone() TermSet {
	return TermSet{
		Primary:   append([]string(nil), ts.Primary...),
		Secondary: append([]string(nil), ts.Secondary...),
		Negative:  append([]string(nil), ts.Negative...),
	}
}

// TermUpdate represents an additive change to a role's TermSet. There is no
// removal operation: updates only ever append vocabulary.
type TermUpdate struct {
	Primary   []string `json:"primary,omitempty"`
	Secondary []string `json:"secondary,omitempty"`
	Negative  []string `json:"negative,omitempty"`
}

// IsEmpty returns true when the update adds no terms to any list.
func (tu *TermUpdate) IsEmpty() bool {
	return len(tu.Primary) == 0 && len(tu.Secondary) == 0 && len(tu.Negative) == 0
}
