package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/daniel/expert-panel/internal/nominate"
	"github.com/daniel/expert-panel/internal/types"
)

// defaultNominationLimit bounds how many candidates nominate_expert returns
// when the caller does not ask for a specific count.
const defaultNominationLimit = 3

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	s.addTool("nominate_expert",
		"Rank all expert roles against a task description and return the top candidates",
		s.handleNominateExpert)
	s.addTool("score_role",
		"Score a single expert role against a task description",
		s.handleScoreRole)
	s.addTool("list_roles",
		"List the cataloged expert roles, optionally filtered by category",
		s.handleListRoles)
	s.addTool("render_framework",
		"Render a reasoning framework template (chain-of-thought or tree-of-thoughts)",
		s.handleRenderFramework)
	s.addTool("few_shot_example",
		"Suggest an approach based on a stored worked example in a category",
		s.handleFewShotExample)
	s.addTool("constitutional_check",
		"Run a recommendation through the panel's principle checks",
		s.handleConstitutionalCheck)
	s.addTool("submit_feedback",
		"Report nomination accuracy to adapt the scoring weights",
		s.handleSubmitFeedback)
	s.addTool("extend_terms",
		"Append matching vocabulary to a role's term set",
		s.handleExtendTerms)
}

// addTool registers one tool with an argument-map handler.
func (s *Server) addTool(name, description string, handler func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error)) {
	tool := mcp.NewTool(name, mcp.WithDescription(description))

	s.mcpServer.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})
		s.logger.Debug("tool invoked", "tool", name)
		return handler(ctx, args)
	})
}

func (s *Server) handleNominateExpert(_ context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	query := argString(args, "query")
	if query == "" {
		return errorResult("query is required"), nil
	}

	limit := argInt(args, "limit", defaultNominationLimit)
	if limit < 1 {
		limit = defaultNominationLimit
	}

	ranked := s.ranker.Rank(s.catalog.Keys(), query, scoreContext(args))
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	recommended := len(ranked) > 0 && nominate.ShouldRecommend(ranked[0].Score)

	return &mcp.CallToolResult{StructuredContent: map[string]interface{}{
		"nominations": ranked,
		"recommended": recommended,
	}}, nil
}

func (s *Server) handleScoreRole(_ context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	roleID := argString(args, "role_id")
	if roleID == "" {
		return errorResult("role_id is required"), nil
	}

	result := s.scorer.Score(roleID, argString(args, "query"), scoreContext(args))

	return &mcp.CallToolResult{StructuredContent: result}, nil
}

func (s *Server) handleListRoles(_ context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	roles := s.catalog.List(argString(args, "category"))

	return &mcp.CallToolResult{StructuredContent: map[string]interface{}{
		"roles": roles,
		"count": len(roles),
	}}, nil
}

func (s *Server) handleRenderFramework(_ context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	kind := argString(args, "kind")
	name := argString(args, "name")
	if name == "" {
		return errorResult("name is required"), nil
	}
	vars := argStringMap(args, "variables")

	switch kind {
	case "chain", "":
		result, err := s.engine.RenderChain(name, vars)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return &mcp.CallToolResult{StructuredContent: result}, nil
	case "tree":
		result, err := s.engine.RenderTree(name, vars)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return &mcp.CallToolResult{StructuredContent: result}, nil
	default:
		return errorResult(fmt.Sprintf("unknown framework kind: %s", kind)), nil
	}
}

func (s *Server) handleFewShotExample(_ context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	category := argString(args, "category")
	input := argString(args, "input")
	if category == "" || input == "" {
		return errorResult("category and input are required"), nil
	}

	suggestion := s.engine.FewShotSuggestion(category, input)
	if suggestion == nil {
		return errorResult("no similar example found"), nil
	}

	return &mcp.CallToolResult{StructuredContent: suggestion}, nil
}

func (s *Server) handleConstitutionalCheck(_ context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	recommendation := argString(args, "recommendation")
	if recommendation == "" {
		return errorResult("recommendation is required"), nil
	}

	return &mcp.CallToolResult{StructuredContent: map[string]interface{}{
		"checks": s.engine.ConstitutionalCheck(recommendation),
	}}, nil
}

func (s *Server) handleSubmitFeedback(_ context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	accurate, ok := args["accurate"].(bool)
	if !ok {
		return errorResult("accurate is required and must be a boolean"), nil
	}
	factors := argStringSlice(args, "factors")
	if len(factors) == 0 {
		return errorResult("factors is required"), nil
	}

	s.scorer.Weights().Adapt(types.Feedback{Accurate: accurate, Factors: factors})
	s.logger.Info("weights adapted", "accurate", accurate, "factors", factors)

	return &mcp.CallToolResult{StructuredContent: map[string]interface{}{
		"weights": s.scorer.Weights().Snapshot(),
	}}, nil
}

func (s *Server) handleExtendTerms(_ context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	roleID := argString(args, "role_id")
	if roleID == "" {
		return errorResult("role_id is required"), nil
	}
	if !s.catalog.Has(roleID) {
		return errorResult(fmt.Sprintf("role not found: %s", roleID)), nil
	}

	update := types.TermUpdate{
		Primary:   argStringSlice(args, "primary"),
		Secondary: argStringSlice(args, "secondary"),
		Negative:  argStringSlice(args, "negative"),
	}
	if update.IsEmpty() {
		return errorResult("update adds no terms"), nil
	}

	s.terms.Update(roleID, update)
	termSet, _ := s.terms.TermSet(roleID)

	return &mcp.CallToolResult{StructuredContent: map[string]interface{}{
		"role_id": roleID,
		"terms":   termSet,
	}}, nil
}

// errorResult wraps a tool-level failure message. Argument problems are
// reported this way rather than as transport errors so the client sees them
// as tool output.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: message}},
	}
}

// scoreContext extracts the optional scoring hints from tool arguments.
func scoreContext(args map[string]interface{}) types.ScoreContext {
	return types.ScoreContext{
		Category:     argString(args, "category"),
		Capabilities: argStringSlice(args, "capabilities"),
	}
}

func argString(args map[string]interface{}, key string) string {
	value, _ := args[key].(string)
	return value
}

func argInt(args map[string]interface{}, key string, defaultValue int) int {
	// JSON numbers decode as float64.
	if value, ok := args[key].(float64); ok {
		return int(value)
	}
	return defaultValue
}

func argStringSlice(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func argStringMap(args map[string]interface{}, key string) map[string]string {
	raw, ok := args[key].(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
