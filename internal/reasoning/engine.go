// Package reasoning provides the template engine for named reasoning
// frameworks: flat chain-of-thought templates rendered by placeholder
// substitution, and nested tree-of-thoughts templates populated by
// leaf-level substitution with a derived analysis summary.
package reasoning

import (
	"encoding/json"
	"fmt"

	"github.com/daniel/expert-panel/internal/schemas"
)

// ErrTemplateNotFound indicates a template name absent from the catalog.
// Unlike scoring, template lookup is strict: rendering an unknown template
// would silently produce garbage, so it fails instead.
type ErrTemplateNotFound struct {
	Name string
}

func (e *ErrTemplateNotFound) Error() string {
	return fmt.Sprintf("template not found: %s", e.Name)
}

// chainTemplate is a flat template with {placeholder} slots.
type chainTemplate struct {
	Name     string `json:"name"`
	Template string `json:"template"`
}

// treeTemplate is a nested structure whose string leaves are placeholder
// names.
type treeTemplate struct {
	Name      string         `json:"name"`
	Structure map[string]any `json:"structure"`
}

// Example is a stored few-shot input/output pair.
type Example struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// engineDocument mirrors the on-disk framework catalog layout.
type engineDocument struct {
	ChainOfThought struct {
		Templates map[string]chainTemplate `json:"templates"`
	} `json:"chain_of_thought"`
	TreeOfThoughts struct {
		Templates map[string]treeTemplate `json:"templates"`
	} `json:"tree_of_thoughts"`
	FewShot    map[string][]Example `json:"few_shot"`
	Principles []string             `json:"principles"`
}

// Engine executes reasoning templates. All catalog data is immutable after
// load; every render call is stateless and safe for concurrent use.
type Engine struct {
	chains     map[string]chainTemplate
	trees      map[string]treeTemplate
	fewShot    map[string][]Example
	principles []string
}

// Load parses and validates a framework catalog document.
func Load(data []byte) (*Engine, error) {
	if err := schemas.Validate(schemas.Frameworks, data); err != nil {
		return nil, fmt.Errorf("framework catalog rejected by schema: %w", err)
	}

	var doc engineDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse framework catalog JSON: %w", err)
	}

	return &Engine{
		chains:     doc.ChainOfThought.Templates,
		trees:      doc.TreeOfThoughts.Templates,
		fewShot:    doc.FewShot,
		principles: doc.Principles,
	}, nil
}

// LoadDefault loads the embedded framework catalog.
func LoadDefault() (*Engine, error) {
	return Load(defaultFrameworks())
}

// ChainTemplateNames returns the chain-of-thought template names.
func (e *Engine) ChainTemplateNames() []string {
	return sortedKeys(e.chains)
}

// TreeTemplateNames returns the tree-of-thoughts template names.
func (e *Engine) TreeTemplateNames() []string {
	return sortedKeys(e.trees)
}

// Principles returns the constitutional principle catalog.
func (e *Engine) Principles() []string {
	return append([]string(nil), e.principles...)
}
