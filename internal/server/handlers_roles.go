package server

import (
	"net/http"

	"github.com/daniel/expert-panel/internal/types"
)

// termUpdateRequest is the body for POST /roles/{id}/terms.
type termUpdateRequest struct {
	Primary   []string `json:"primary" validate:"omitempty,dive,min=1"`
	Secondary []string `json:"secondary" validate:"omitempty,dive,min=1"`
	Negative  []string `json:"negative" validate:"omitempty,dive,min=1"`
}

// handleListRoles lists cataloged roles, optionally filtered by category.
// An unknown category yields an empty list, not an error.
func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	roles := s.catalog.List(category)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"roles": roles,
		"count": len(roles),
	})
}

// handleGetRole retrieves a single role by its catalog key.
func (s *Server) handleGetRole(w http.ResponseWriter, r *http.Request) {
	roleID := r.PathValue("id")

	role, err := s.catalog.Get(roleID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, role)
}

// handleGetTerms retrieves the matching vocabulary for a role.
func (s *Server) handleGetTerms(w http.ResponseWriter, r *http.Request) {
	roleID := r.PathValue("id")

	if _, err := s.catalog.Get(roleID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	termSet, ok := s.terms.TermSet(roleID)
	if !ok {
		// Cataloged role without a vocabulary still scores via clusters.
		termSet = types.TermSet{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"role_id": roleID,
		"terms":   termSet,
	})
}

// handleUpdateTerms appends vocabulary to a role's term set. Requires a
// valid bearer token. Updates are additive; there is no removal.
func (s *Server) handleUpdateTerms(w http.ResponseWriter, r *http.Request) {
	roleID := r.PathValue("id")

	if _, err := s.catalog.Get(roleID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req termUpdateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	update := types.TermUpdate{
		Primary:   req.Primary,
		Secondary: req.Secondary,
		Negative:  req.Negative,
	}
	if update.IsEmpty() {
		s.errorResponse(w, http.StatusBadRequest, "update adds no terms")
		return
	}

	s.terms.Update(roleID, update)

	termSet, _ := s.terms.TermSet(roleID)
	s.logger.Info("term set extended",
		"role_id", roleID,
		"primary", len(req.Primary),
		"secondary", len(req.Secondary),
		"negative", len(req.Negative))

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"role_id": roleID,
		"terms":   termSet,
	})
}
