// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/daniel/expert-panel/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintNominations outputs the top ranked roles with scores and matched terms.
func (p *Printer) PrintNominations(results []types.ScoreResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Roles evaluated: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.RoleID))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", result.Score, result.Confidence))
		if len(result.Matches.ExactMatches) > 0 {
			matched := strings.Join(result.Matches.ExactMatches, ", ")
			if len(matched) > 40 {
				matched = matched[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Terms: %s\n", matched))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more roles", len(results)-maxItemsToShow))
	}

	p.printBox("NOMINATED EXPERTS", sb.String())
}

// PrintScoreDetail outputs the full signal breakdown for a single score.
func (p *Printer) PrintScoreDetail(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s\n", result.RoleID))
	sb.WriteString(fmt.Sprintf("Score:      %d\n", result.Score))
	sb.WriteString(fmt.Sprintf("Confidence: %s\n", result.Confidence))
	sb.WriteString("\n")

	if len(result.Matches.ExactMatches) > 0 {
		sb.WriteString(fmt.Sprintf("Primary matches:   %s\n", strings.Join(result.Matches.ExactMatches, ", ")))
	}
	if len(result.Matches.SemanticMatches) > 0 {
		sb.WriteString(fmt.Sprintf("Secondary matches: %s\n", strings.Join(result.Matches.SemanticMatches, ", ")))
	}
	if len(result.Matches.NegativeMatches) > 0 {
		sb.WriteString(fmt.Sprintf("Negative matches:  %s\n", strings.Join(result.Matches.NegativeMatches, ", ")))
	}
	if result.Matches.SemanticCluster != "" {
		sb.WriteString(fmt.Sprintf("Cluster:           %s\n", result.Matches.SemanticCluster))
	}
	if result.Matches.CategoryMatch {
		sb.WriteString("Category match:    yes\n")
	}
	if result.Matches.ComplexityBonus {
		sb.WriteString("Complexity bonus:  yes\n")
	}
	if result.Matches.MultiMatchBonus {
		sb.WriteString("Multi-match bonus: yes\n")
	}

	sb.WriteString("\n")
	sb.WriteString(result.Reasoning)

	p.printBox("SCORE DETAIL", strings.TrimSuffix(sb.String(), "\n"))
}
