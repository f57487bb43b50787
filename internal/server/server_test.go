package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniel/expert-panel/internal/reasoning"
	"github.com/daniel/expert-panel/internal/taxonomy"
	"github.com/daniel/expert-panel/internal/terms"
	"github.com/daniel/expert-panel/internal/types"
)

// newTestServer creates a server backed by the embedded catalogs.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("PANEL_AUTH_SECRET", "test-secret")

	catalog, err := taxonomy.LoadDefault()
	require.NoError(t, err)
	store, err := terms.LoadDefault()
	require.NoError(t, err)
	engine, err := reasoning.LoadDefault()
	require.NoError(t, err)

	srv, err := New(Config{
		Port:    0,
		Catalog: catalog,
		Terms:   store,
		Engine:  engine,
	})
	require.NoError(t, err)
	t.Cleanup(srv.rateLimiter.Stop)

	return srv
}

// doJSON performs a request against the full middleware chain and decodes
// the JSON response into out.
func doJSON(t *testing.T, srv *Server, method, path string, body any, headers map[string]string, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reqBody).Encode(body))
	}

	req := httptest.NewRequest(method, path, &reqBody)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()

	srv.httpServer.Handler.ServeHTTP(w, req)

	if out != nil && w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	}
	return w
}

func TestServer_New_RequiresDependencies(t *testing.T) {
	t.Setenv("PANEL_AUTH_SECRET", "test-secret")

	_, err := New(Config{Port: 0})
	assert.Error(t, err)
}

func TestServer_New_RequiresAuthSecret(t *testing.T) {
	t.Setenv("PANEL_AUTH_SECRET", "")

	catalog, err := taxonomy.LoadDefault()
	require.NoError(t, err)
	store, err := terms.LoadDefault()
	require.NoError(t, err)
	engine, err := reasoning.LoadDefault()
	require.NoError(t, err)

	_, err = New(Config{Catalog: catalog, Terms: store, Engine: engine})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PANEL_AUTH_SECRET")
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp map[string]any
	w := doJSON(t, srv, http.MethodGet, "/health", nil, nil, &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(srv.catalog.Len()), resp["roles"])
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/health", nil, nil, nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = doJSON(t, srv, http.MethodGet, "/health", nil, map[string]string{"X-Request-ID": "abc-123"}, nil)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestScoreEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var result types.ScoreResult
	w := doJSON(t, srv, http.MethodPost, "/score", map[string]any{
		"role_id": "ai-ml-engineer",
		"query":   "help me train a machine learning model",
	}, nil, &result)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ai-ml-engineer", result.RoleID)
	assert.Greater(t, result.Score, 0)
	assert.NotEmpty(t, result.Reasoning)
}

func TestScoreEndpoint_UnknownRoleIsLenient(t *testing.T) {
	srv := newTestServer(t)

	var result types.ScoreResult
	w := doJSON(t, srv, http.MethodPost, "/score", map[string]any{
		"role_id": "quantum-plumber",
		"query":   "fix the instantaneous pipes",
	}, nil, &result)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, result.Score)
	assert.Equal(t, types.ConfidenceVeryLow, result.Confidence)
}

func TestScoreEndpoint_MissingRoleID(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/score", map[string]any{
		"query": "anything",
	}, nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "role_id")
}

func TestScoreEndpoint_UnknownFieldRejected(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/score", map[string]any{
		"role_id": "backend-engineer",
		"querry":  "typo",
	}, nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestScoreBatchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp struct {
		RoleID  string             `json:"role_id"`
		Results []types.ScoreResult `json:"results"`
		Count   int                `json:"count"`
	}
	w := doJSON(t, srv, http.MethodPost, "/score/batch", map[string]any{
		"role_id": "backend-engineer",
		"queries": []string{"design a rest endpoint", "draw me a wireframe", "scale the microservice"},
	}, nil, &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "backend-engineer", resp.RoleID)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Results, 3)
	// Results come back in query order.
	assert.Greater(t, resp.Results[0].Score, resp.Results[1].Score)
}

func TestScoreBatchEndpoint_EmptyQueries(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/score/batch", map[string]any{
		"role_id": "backend-engineer",
		"queries": []string{},
	}, nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNominationsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp struct {
		Nominations []types.ScoreResult `json:"nominations"`
		Recommended bool                `json:"recommended"`
	}
	w := doJSON(t, srv, http.MethodPost, "/nominations", map[string]any{
		"query": "train a deep learning model with machine learning on our data pipeline",
	}, nil, &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Nominations, 3)
	assert.True(t, resp.Recommended)
	assert.Equal(t, "ai-ml-engineer", resp.Nominations[0].RoleID)

	// Ranked descending.
	for i := 1; i < len(resp.Nominations); i++ {
		assert.GreaterOrEqual(t, resp.Nominations[i-1].Score, resp.Nominations[i].Score)
	}
}

func TestNominationsEndpoint_Limit(t *testing.T) {
	srv := newTestServer(t)

	var resp struct {
		Nominations []types.ScoreResult `json:"nominations"`
	}
	w := doJSON(t, srv, http.MethodPost, "/nominations", map[string]any{
		"query": "review the api",
		"limit": 5,
	}, nil, &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Nominations, 5)
}

func TestListRolesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp struct {
		Roles []types.Role `json:"roles"`
		Count int          `json:"count"`
	}
	w := doJSON(t, srv, http.MethodGet, "/roles", nil, nil, &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, srv.catalog.Len(), resp.Count)
}

func TestListRolesEndpoint_CategoryFilter(t *testing.T) {
	srv := newTestServer(t)

	var resp struct {
		Roles []types.Role `json:"roles"`
		Count int          `json:"count"`
	}
	w := doJSON(t, srv, http.MethodGet, "/roles?category=data", nil, nil, &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotZero(t, resp.Count)
	for _, role := range resp.Roles {
		assert.Equal(t, types.CategoryData, role.Category)
	}

	// Unknown category yields an empty list, not an error.
	w = doJSON(t, srv, http.MethodGet, "/roles?category=astrology", nil, nil, &resp)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, resp.Count)
}

func TestGetRoleEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var role types.Role
	w := doJSON(t, srv, http.MethodGet, "/roles/backend-engineer", nil, nil, &role)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, types.CategoryEngineering, role.Category)
}

func TestGetRoleEndpoint_NotFound(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/roles/quantum-plumber", nil, nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "quantum-plumber")
}

func TestGetTermsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp struct {
		RoleID string        `json:"role_id"`
		Terms  types.TermSet `json:"terms"`
	}
	w := doJSON(t, srv, http.MethodGet, "/roles/backend-engineer/terms", nil, nil, &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "backend-engineer", resp.RoleID)
	assert.Contains(t, resp.Terms.Primary, "backend")
}

func TestUpdateTermsEndpoint_RequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/roles/backend-engineer/terms", map[string]any{
		"primary": []string{"event sourcing"},
	}, nil, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateTermsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	token, err := srv.jwtService.GenerateToken("admin")
	require.NoError(t, err)
	headers := map[string]string{"Authorization": "Bearer " + token}

	var resp struct {
		RoleID string        `json:"role_id"`
		Terms  types.TermSet `json:"terms"`
	}
	w := doJSON(t, srv, http.MethodPost, "/roles/backend-engineer/terms", map[string]any{
		"primary": []string{"event sourcing"},
	}, headers, &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, resp.Terms.Primary, "event sourcing")

	// The new term now contributes to scoring.
	var result types.ScoreResult
	w = doJSON(t, srv, http.MethodPost, "/score", map[string]any{
		"role_id": "backend-engineer",
		"query":   "introduce event sourcing",
	}, nil, &result)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, result.Matches.ExactMatches, "event sourcing")
}

func TestUpdateTermsEndpoint_EmptyUpdate(t *testing.T) {
	srv := newTestServer(t)

	token, err := srv.jwtService.GenerateToken("admin")
	require.NoError(t, err)
	headers := map[string]string{"Authorization": "Bearer " + token}

	w := doJSON(t, srv, http.MethodPost, "/roles/backend-engineer/terms", map[string]any{}, headers, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no terms")
}

func TestUpdateTermsEndpoint_UnknownRole(t *testing.T) {
	srv := newTestServer(t)

	token, err := srv.jwtService.GenerateToken("admin")
	require.NoError(t, err)
	headers := map[string]string{"Authorization": "Bearer " + token}

	w := doJSON(t, srv, http.MethodPost, "/roles/quantum-plumber/terms", map[string]any{
		"primary": []string{"pipes"},
	}, headers, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeedbackEndpoint_RequiresAuth(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/feedback", map[string]any{
		"accurate": true,
		"factors":  []string{"exact_match"},
	}, nil, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFeedbackEndpoint(t *testing.T) {
	srv := newTestServer(t)

	token, err := srv.jwtService.GenerateToken("admin")
	require.NoError(t, err)
	headers := map[string]string{"Authorization": "Bearer " + token}

	var resp struct {
		Weights map[string]float64 `json:"weights"`
	}
	w := doJSON(t, srv, http.MethodPost, "/feedback", map[string]any{
		"accurate": false,
		"factors":  []string{"exact_match"},
	}, headers, &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 0.9, resp.Weights["exact_match"], 1e-9)
}

func TestGetWeightsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp struct {
		Weights map[string]float64 `json:"weights"`
	}
	w := doJSON(t, srv, http.MethodGet, "/weights", nil, nil, &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 1.0, resp.Weights["exact_match"], 1e-9)
	assert.InDelta(t, -0.5, resp.Weights["negative_match"], 1e-9)
}

func TestListFrameworksEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp struct {
		Chains     []string `json:"chains"`
		Trees      []string `json:"trees"`
		FewShot    []string `json:"few_shot"`
		Principles []string `json:"principles"`
	}
	w := doJSON(t, srv, http.MethodGet, "/frameworks", nil, nil, &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, resp.Chains, "problem_solving")
	assert.Contains(t, resp.Trees, "decision_tree")
	assert.Contains(t, resp.FewShot, "debugging")
	assert.NotEmpty(t, resp.Principles)
}

func TestRenderChainEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var result reasoning.ChainResult
	w := doJSON(t, srv, http.MethodPost, "/frameworks/chain/problem_solving", map[string]any{
		"variables": map[string]string{"problem": "slow queries"},
	}, nil, &result)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Systematic Problem Solving", result.TemplateName)
	assert.Contains(t, result.Text, "slow queries")
	// Unbound placeholders pass through verbatim.
	assert.Contains(t, result.Text, "{constraints}")
}

func TestRenderChainEndpoint_NotFound(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/frameworks/chain/no_such_template", map[string]any{
		"variables": map[string]string{},
	}, nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRenderTreeEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var result reasoning.TreeResult
	w := doJSON(t, srv, http.MethodPost, "/frameworks/tree/decision_tree", map[string]any{
		"substitutions": map[string]string{"option_a": "rewrite", "option_b": "refactor"},
	}, nil, &result)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Decision Tree Analysis", result.TemplateName)
	assert.Contains(t, result.Analysis, "Tree-of-Thoughts Analysis:")
	assert.Contains(t, result.Analysis, "rewrite")
}

func TestFewShotEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var suggestion reasoning.Suggestion
	w := doJSON(t, srv, http.MethodPost, "/frameworks/few-shot", map[string]any{
		"category": "debugging",
		"input":    "the crash happens on startup",
	}, nil, &suggestion)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "debugging", suggestion.Category)
	assert.NotEmpty(t, suggestion.Suggestion)
}

func TestFewShotEndpoint_NoMatch(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/frameworks/few-shot", map[string]any{
		"category": "debugging",
		"input":    "zzz nothing similar here",
	}, nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConstitutionalEndpoint(t *testing.T) {
	srv := newTestServer(t)

	var resp struct {
		Checks []reasoning.PrincipleCheck `json:"checks"`
	}
	w := doJSON(t, srv, http.MethodPost, "/frameworks/constitutional", map[string]any{
		"recommendation": "nominate the backend engineer",
	}, nil, &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, resp.Checks)
	for _, check := range resp.Checks {
		assert.True(t, check.Applied)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&taxonomy.ErrRoleNotFound{Key: "x"}))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&reasoning.ErrTemplateNotFound{Name: "x"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "body", Message: "bad"}))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(&ErrUnauthorized{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
