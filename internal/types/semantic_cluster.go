// Package types provides type definitions for structured data used throughout the expert-panel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SemanticCluster is a coarse, role-independent grouping of related words
// (e.g. "technical" covering engineer, developer, architect). Clusters
// provide a weak bonus signal during scoring and are not tied 1:1 to roles.
type SemanticCluster struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}
