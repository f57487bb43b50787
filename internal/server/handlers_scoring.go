package server

import (
	"net/http"

	"github.com/daniel/expert-panel/internal/nominate"
	"github.com/daniel/expert-panel/internal/types"
)

// scoreRequest is the body for POST /score.
type scoreRequest struct {
	RoleID  string             `json:"role_id" validate:"required"`
	Query   string             `json:"query"`
	Context types.ScoreContext `json:"context"`
}

// scoreBatchRequest is the body for POST /score/batch.
type scoreBatchRequest struct {
	RoleID  string             `json:"role_id" validate:"required"`
	Queries []string           `json:"queries" validate:"required,min=1,max=100"`
	Context types.ScoreContext `json:"context"`
}

// nominationsRequest is the body for POST /nominations.
type nominationsRequest struct {
	Query   string             `json:"query" validate:"required"`
	Context types.ScoreContext `json:"context"`
	Limit   int                `json:"limit" validate:"omitempty,min=1,max=50"`
}

// handleScore scores a single role against a query.
// Unknown roles score low rather than failing; scoring is lenient so that
// callers can probe speculative role ids.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := s.scorer.Score(req.RoleID, req.Query, req.Context)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleScoreBatch scores one role against many queries concurrently.
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req scoreBatchRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	results, err := s.ranker.ScoreBatch(r.Context(), req.RoleID, req.Queries, req.Context)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"role_id": req.RoleID,
		"results": results,
		"count":   len(results),
	})
}

// handleNominations ranks every cataloged role against the query and
// returns the top candidates.
func (s *Server) handleNominations(w http.ResponseWriter, r *http.Request) {
	var req nominationsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = 3
	}

	ranked := s.ranker.Rank(s.catalog.Keys(), req.Query, req.Context)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	recommended := len(ranked) > 0 && nominate.ShouldRecommend(ranked[0].Score)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"nominations": ranked,
		"recommended": recommended,
	})
}
