package server

import (
	"net/http"

	"github.com/daniel/expert-panel/internal/types"
)

// feedbackRequest is the body for POST /feedback.
type feedbackRequest struct {
	Accurate bool     `json:"accurate"`
	Factors  []string `json:"factors" validate:"required,min=1,dive,min=1"`
}

// handleFeedback adjusts scoring weights from nomination feedback.
// Requires a valid bearer token. Unrecognized factor names are ignored.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.scorer.Weights().Adapt(types.Feedback{
		Accurate: req.Accurate,
		Factors:  req.Factors,
	})

	s.logger.Info("weights adapted", "accurate", req.Accurate, "factors", req.Factors)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"weights": s.scorer.Weights().Snapshot(),
	})
}

// handleGetWeights returns the current scoring weights.
func (s *Server) handleGetWeights(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"weights": s.scorer.Weights().Snapshot(),
	})
}
