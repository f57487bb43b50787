// Package types provides type definitions for structured data used throughout the expert-panel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidenceFromScore_BandBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  ConfidenceLabel
	}{
		{0, ConfidenceVeryLow},
		{19, ConfidenceVeryLow},
		{20, ConfidenceLow},
		{39, ConfidenceLow},
		{40, ConfidenceMedium},
		{59, ConfidenceMedium},
		{60, ConfidenceHigh},
		{79, ConfidenceHigh},
		{80, ConfidenceVeryHigh},
		{100, ConfidenceVeryHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidenceFromScore(tt.score), "score %d", tt.score)
	}
}

func TestConfidenceFromScore_ExhaustiveAndExclusive(t *testing.T) {
	// Every integer in [0,100] must map to exactly one band.
	counts := make(map[ConfidenceLabel]int)
	for score := 0; score <= 100; score++ {
		label := ConfidenceFromScore(score)
		switch label {
		case ConfidenceVeryLow, ConfidenceLow, ConfidenceMedium, ConfidenceHigh, ConfidenceVeryHigh:
			counts[label]++
		default:
			t.Fatalf("score %d produced unknown label %q", score, label)
		}
	}

	assert.Equal(t, 20, counts[ConfidenceVeryLow])
	assert.Equal(t, 20, counts[ConfidenceLow])
	assert.Equal(t, 20, counts[ConfidenceMedium])
	assert.Equal(t, 20, counts[ConfidenceHigh])
	assert.Equal(t, 21, counts[ConfidenceVeryHigh])
}
