package scoring

import (
	"regexp"
	"strings"
)

// Query-complexity factors. The complexity value is the sum of four binary
// contributions and lands in [0,1].
const (
	complexityLongQuery   = 0.3
	complexityTechnical   = 0.3
	complexitySpecificity = 0.2
	complexityConjunction = 0.2

	longQueryWordCount = 10

	// complexityThreshold gates the flat complexity bonus; the bonus also
	// requires at least one exact primary match.
	complexityThreshold = 0.7
)

var (
	technicalTermsRe   = regexp.MustCompile(`(?i)api|database|algorithm|architecture|framework`)
	specificityTermsRe = regexp.MustCompile(`(?i)specific|particular|exact|precise`)
	conjunctionRe      = regexp.MustCompile(`\band\b`)
)

// assessComplexity computes the query-complexity score in [0,1].
func assessComplexity(query string) float64 {
	complexity := 0.0

	if len(strings.Fields(query)) > longQueryWordCount {
		complexity += complexityLongQuery
	}
	if technicalTermsRe.MatchString(query) {
		complexity += complexityTechnical
	}
	if specificityTermsRe.MatchString(query) {
		complexity += complexitySpecificity
	}
	if len(conjunctionRe.FindAllString(strings.ToLower(query), -1)) > 1 {
		complexity += complexityConjunction
	}

	return complexity
}
