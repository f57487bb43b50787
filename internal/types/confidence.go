// Package types provides type definitions for structured data used throughout the expert-panel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ConfidenceLabel is one of five ordered bands derived from a numeric score.
type ConfidenceLabel string

// Confidence bands, highest to lowest.
const (
	ConfidenceVeryHigh ConfidenceLabel = "VERY HIGH"
	ConfidenceHigh     ConfidenceLabel = "HIGH"
	ConfidenceMedium   ConfidenceLabel = "MEDIUM"
	ConfidenceLow      ConfidenceLabel = "LOW"
	ConfidenceVeryLow  ConfidenceLabel = "VERY LOW"
)

// Band thresholds. Checked from highest to lowest; every integer in [0,100]
// maps to exactly one band.
const (
	ThresholdVeryHigh = 80
	ThresholdHigh     = 60
	ThresholdMedium   = 40
	ThresholdLow      = 20
)

// ConfidenceFromScore maps a clamped score to its confidence band.
func ConfidenceFromScore(score int) ConfidenceLabel {
	switch {
	case score >= ThresholdVeryHigh:
		return ConfidenceVeryHigh
	case score >= ThresholdHigh:
		return ConfidenceHigh
	case score >= ThresholdMedium:
		return ConfidenceMedium
	case score >= ThresholdLow:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}

// String returns the string representation of the label.
func (l ConfidenceLabel) String() string {
	return string(l)
}
