package reasoning

import (
	"strings"
)

// ChainResult is a rendered chain-of-thought template.
type ChainResult struct {
	TemplateName string `json:"template_name"`
	Text         string `json:"text"`
}

// RenderChain renders a chain-of-thought template by replacing every
// {variableName} placeholder with its binding.
//
// Placeholders with no supplied binding pass through verbatim. This is a
// deliberate tolerance of partial variable sets, useful for progressive
// prompt construction, not an error condition.
func (e *Engine) RenderChain(templateName string, vars map[string]string) (ChainResult, error) {
	tmpl, ok := e.chains[templateName]
	if !ok {
		return ChainResult{}, &ErrTemplateNotFound{Name: templateName}
	}

	text := tmpl.Template
	for name, value := range vars {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}

	return ChainResult{TemplateName: tmpl.Name, Text: text}, nil
}
