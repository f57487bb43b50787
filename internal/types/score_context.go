// Package types provides type definitions for structured data used throughout the expert-panel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ScoreContext carries optional hints supplied by the caller alongside a
// query. The zero value means "no context": every field is optional and a
// missing field simply skips the corresponding score contribution.
type ScoreContext struct {
	// Category is a hint that the caller's task belongs to a particular
	// role category. A match with the role's category earns a bonus.
	Category string `json:"category,omitempty"`
	// Capabilities lists capability phrases required by the caller's task.
	Capabilities []string `json:"capabilities,omitempty"`
}

// IsZero returns true when no context hints were supplied.
func (c *ScoreContext) IsZero() bool {
	return c.Category == "" && len(c.Capabilities) == 0
}
