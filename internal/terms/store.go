// Package terms provides the per-role matching vocabulary and the semantic
// cluster groupings consumed by the confidence scorer.
//
// Unlike the role taxonomy, term data is mutable at runtime: callers may
// append vocabulary to a role's term set (additive only, there is no removal
// operation). All mutation is serialized behind the store's lock; readers
// receive defensive copies.
package terms

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/daniel/expert-panel/internal/schemas"
	"github.com/daniel/expert-panel/internal/types"
)

// Store holds term sets and clusters. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	sets     map[string]types.TermSet
	clusters []types.SemanticCluster
}

// storeDocument mirrors the on-disk term database layout.
type storeDocument struct {
	TermSets map[string]types.TermSet `json:"term_sets"`
	Clusters []types.SemanticCluster  `json:"clusters"`
}

// Load parses and validates a term database document.
func Load(data []byte) (*Store, error) {
	if err := schemas.Validate(schemas.TermSets, data); err != nil {
		return nil, fmt.Errorf("term database rejected by schema: %w", err)
	}

	var doc storeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse term database JSON: %w", err)
	}

	sets := make(map[string]types.TermSet, len(doc.TermSets))
	for key, set := range doc.TermSets {
		sets[key] = set.Clone()
	}

	return &Store{sets: sets, clusters: doc.Clusters}, nil
}

// LoadDefault loads the embedded term database.
func LoadDefault() (*Store, error) {
	return Load(defaultTerms())
}

// TermSet returns a copy of the vocabulary for a role. The second return is
// false when the role has no registered term set; scoring then proceeds on
// cluster and category signals alone.
func (s *Store) TermSet(roleID string) (types.TermSet, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.sets[roleID]
	if !ok {
		return types.TermSet{}, false
	}
	return set.Clone(), true
}

// Update appends vocabulary to a role's term set, creating the set if the
// role has none yet. Updates are additive: existing terms are never removed.
func (s *Store) Update(roleID string, update types.TermUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.sets[roleID]
	set.Primary = append(set.Primary, update.Primary...)
	set.Secondary = append(set.Secondary, update.Secondary...)
	set.Negative = append(set.Negative, update.Negative...)
	s.sets[roleID] = set
}

// Clusters returns a copy of the semantic clusters in catalog order.
func (s *Store) Clusters() []types.SemanticCluster {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.SemanticCluster, len(s.clusters))
	for i, cluster := range s.clusters {
		out[i] = types.SemanticCluster{
			Name:  cluster.Name,
			Terms: append([]string(nil), cluster.Terms...),
		}
	}
	return out
}

// Export serializes the store back to the on-disk term database layout.
// The output round-trips through Load.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Nil slices would serialize as null, which the schema rejects on
	// reload; normalize them to empty arrays.
	sets := make(map[string]types.TermSet, len(s.sets))
	for key, set := range s.sets {
		if set.Primary == nil {
			set.Primary = []string{}
		}
		if set.Secondary == nil {
			set.Secondary = []string{}
		}
		if set.Negative == nil {
			set.Negative = []string{}
		}
		sets[key] = set
	}

	doc := storeDocument{
		TermSets: sets,
		Clusters: s.clusters,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize term database: %w", err)
	}
	return data, nil
}

// Keys returns the role keys that have term sets, sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.sets))
	for key := range s.sets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
