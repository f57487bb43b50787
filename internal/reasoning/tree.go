package reasoning

import (
	"fmt"
	"strings"
)

// analysisHeader is the first line of every tree analysis, including for
// structures that match none of the recognized shapes.
const analysisHeader = "Tree-of-Thoughts Analysis:"

// TreeResult is a populated tree-of-thoughts template with its derived
// analysis summary.
type TreeResult struct {
	TemplateName string         `json:"template_name"`
	Structure    map[string]any `json:"structure"`
	Analysis     string         `json:"analysis"`
}

// RenderTree populates a tree-of-thoughts template and derives its analysis.
//
// Substitution is leaf-level and exact-match: a string leaf is replaced only
// when it equals a binding key. Tree leaves are structural placeholders, not
// prose, so the chain engine's substring interpolation does not apply here.
func (e *Engine) RenderTree(templateName string, vars map[string]string) (TreeResult, error) {
	tmpl, ok := e.trees[templateName]
	if !ok {
		return TreeResult{}, &ErrTemplateNotFound{Name: templateName}
	}

	populated, _ := substituteLeaves(deepCopy(tmpl.Structure), vars).(map[string]any)

	return TreeResult{
		TemplateName: tmpl.Name,
		Structure:    populated,
		Analysis:     analyzeTree(populated),
	}, nil
}

// deepCopy clones a JSON-shaped value (maps, slices, scalars).
func deepCopy(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = deepCopy(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = deepCopy(item)
		}
		return out
	default:
		return v
	}
}

// substituteLeaves replaces every string leaf that exactly matches a binding
// key with the binding's value. Leaves with no binding stay as-is.
func substituteLeaves(value any, vars map[string]string) any {
	switch v := value.(type) {
	case map[string]any:
		for key, item := range v {
			v[key] = substituteLeaves(item, vars)
		}
		return v
	case []any:
		for i, item := range v {
			v[i] = substituteLeaves(item, vars)
		}
		return v
	case string:
		if bound, ok := vars[v]; ok {
			return bound
		}
		return v
	default:
		return v
	}
}

// analyzeTree derives the textual summary for a populated structure. The
// shape is detected structurally by the presence of a branches,
// exploration_paths, or scenarios field; unrecognized shapes yield only the
// header line.
func analyzeTree(structure map[string]any) string {
	var sb strings.Builder
	sb.WriteString(analysisHeader)

	switch {
	case structure["branches"] != nil:
		for _, item := range asSlice(structure["branches"]) {
			branch, ok := item.(map[string]any)
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("\n- Branch %v with probability %v", branch["decision"], branch["probability"]))
			for _, outcomeItem := range asSlice(branch["outcomes"]) {
				outcome, ok := outcomeItem.(map[string]any)
				if !ok {
					continue
				}
				sb.WriteString(fmt.Sprintf("\n  * Outcome %v: %v", outcome["name"], outcome["value"]))
			}
		}
	case structure["exploration_paths"] != nil:
		for _, item := range asSlice(structure["exploration_paths"]) {
			path, ok := item.(map[string]any)
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("\n- Path %v scored %v", path["path"], path["evaluation_score"]))
		}
	case structure["scenarios"] != nil:
		for _, item := range asSlice(structure["scenarios"]) {
			scenario, ok := item.(map[string]any)
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf("\n- Scenario %v: %v", scenario["name"], scenario["outcome"]))
		}
	}

	return sb.String()
}

func asSlice(value any) []any {
	slice, _ := value.([]any)
	return slice
}
