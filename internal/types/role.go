// Package types provides type definitions for structured data used throughout the expert-panel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Role represents a single expert role in the taxonomy catalog.
// Roles are immutable after catalog load; runtime term updates mutate the
// role's TermSet, never the Role itself.
type Role struct {
	Key          string   `json:"key" validate:"required"`
	Category     Category `json:"category" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
	Frameworks   []string `json:"frameworks,omitempty"`
}

// PrimaryCapability returns the first capability in the role's ordered
// capability list, or an empty string if the role declares none.
// Capability order matters: index 0 is treated as the role's primary
// capability in generated explanations.
func (r *Role) PrimaryCapability() string {
	if len(r.Capabilities) == 0 {
		return ""
	}
	return r.Capabilities[0]
}
