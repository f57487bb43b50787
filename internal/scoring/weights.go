// Package scoring implements the confidence scorer: a point-additive,
// bounded match score between a free-text query and an expert role.
package scoring

import (
	"sync"

	"github.com/daniel/expert-panel/internal/types"
)

// Weight factor names recognized by the scorer and the feedback hook.
const (
	FactorExactMatch        = "exact_match"
	FactorSemanticMatch     = "semantic_match"
	FactorCategoryMatch     = "category_match"
	FactorCapabilityMatch   = "capability_match"
	FactorContextRelevance  = "context_relevance"
	FactorDomainSpecificity = "domain_specificity"
	FactorNegativeMatch     = "negative_match"
)

// Adaptation bounds. Accurate feedback scales a factor by 1.1 up to the cap;
// inaccurate feedback scales by 0.9 down to the floor. The floor applies to
// the negative_match weight too, so repeated inaccurate feedback can raise
// it from negative territory up to 0.1.
const (
	adaptGrowth = 1.1
	adaptDecay  = 0.9
	weightCap   = 1.0
	weightFloor = 0.1
)

// Weights is the process-wide mutable factor scaling. Reads take a snapshot;
// mutation happens only through Adapt and is serialized by the lock. State
// is in-memory only and resets on restart.
type Weights struct {
	mu     sync.RWMutex
	values map[string]float64
}

// NewWeights returns weights at their fixed defaults.
func NewWeights() *Weights {
	return &Weights{
		values: map[string]float64{
			FactorExactMatch:        1.0,
			FactorSemanticMatch:     1.0,
			FactorCategoryMatch:     1.0,
			FactorCapabilityMatch:   1.0,
			FactorContextRelevance:  0.8,
			FactorDomainSpecificity: 0.9,
			FactorNegativeMatch:     -0.5,
		},
	}
}

// Snapshot returns a consistent copy of all factor weights. Scoring reads
// exactly one snapshot per call so a concurrent Adapt cannot tear a result.
func (w *Weights) Snapshot() map[string]float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make(map[string]float64, len(w.values))
	for name, value := range w.values {
		out[name] = value
	}
	return out
}

// Get returns the current value of a single factor. Unknown factors are 0.
func (w *Weights) Get(name string) float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.values[name]
}

// Known reports whether the factor name is a recognized weight key.
func (w *Weights) Known(name string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.values[name]
	return ok
}

// Adapt adjusts the named factors according to feedback. Unrecognized
// factor names are silently ignored. There is no rollback: callers needing
// auditability must snapshot weights before calling.
func (w *Weights) Adapt(feedback types.Feedback) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, name := range feedback.Factors {
		value, ok := w.values[name]
		if !ok {
			continue
		}
		if feedback.Accurate {
			value *= adaptGrowth
			if value > weightCap {
				value = weightCap
			}
		} else {
			value *= adaptDecay
			if value < weightFloor {
				value = weightFloor
			}
		}
		w.values[name] = value
	}
}
