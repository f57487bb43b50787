package reasoning

import (
	"strings"
)

// Suggestion is an adapted few-shot recommendation derived from a stored
// example.
type Suggestion struct {
	Category     string `json:"category"`
	ExampleInput string `json:"example_input"`
	Suggestion   string `json:"suggestion"`
}

// FewShotSuggestion finds the first stored example in the category whose
// leading word appears in the caller's input and returns an adapted
// suggestion referencing that example's expected output. Returns nil when
// the category is unknown or no example's leading token matches.
func (e *Engine) FewShotSuggestion(category, input string) *Suggestion {
	examples, ok := e.fewShot[category]
	if !ok {
		return nil
	}

	loweredInput := strings.ToLower(input)
	for _, example := range examples {
		fields := strings.Fields(example.Input)
		if len(fields) == 0 {
			continue
		}
		if strings.Contains(loweredInput, strings.ToLower(fields[0])) {
			return &Suggestion{
				Category:     category,
				ExampleInput: example.Input,
				Suggestion:   "Based on a similar case (" + example.Input + "): " + example.Output,
			}
		}
	}

	return nil
}

// FewShotCategories returns the known few-shot categories.
func (e *Engine) FewShotCategories() []string {
	return sortedKeys(e.fewShot)
}
