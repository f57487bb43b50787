// Package types provides type definitions for structured data used throughout the expert-panel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Feedback reports whether a nomination was accurate, and which scoring
// factors the reporter believes drove the outcome. Factor names that are not
// recognized weight keys are silently ignored during adaptation.
type Feedback struct {
	Accurate bool     `json:"accurate"`
	Factors  []string `json:"factors"`
}
