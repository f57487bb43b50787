package server

import (
	"net/http"
)

// renderChainRequest is the body for POST /frameworks/chain/{name}.
type renderChainRequest struct {
	Variables map[string]string `json:"variables"`
}

// renderTreeRequest is the body for POST /frameworks/tree/{name}.
type renderTreeRequest struct {
	Substitutions map[string]string `json:"substitutions"`
}

// fewShotRequest is the body for POST /frameworks/few-shot.
type fewShotRequest struct {
	Category string `json:"category" validate:"required"`
	Input    string `json:"input" validate:"required"`
}

// constitutionalRequest is the body for POST /frameworks/constitutional.
type constitutionalRequest struct {
	Recommendation string `json:"recommendation" validate:"required"`
}

// handleListFrameworks lists the available reasoning templates.
func (s *Server) handleListFrameworks(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"chains":     s.engine.ChainTemplateNames(),
		"trees":      s.engine.TreeTemplateNames(),
		"few_shot":   s.engine.FewShotCategories(),
		"principles": s.engine.Principles(),
	})
}

// handleRenderChain renders a chain-of-thought template with the supplied
// variables. Unknown template names are an error; unbound placeholders are
// left in the output verbatim.
func (s *Server) handleRenderChain(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var req renderChainRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.engine.RenderChain(name, req.Variables)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleRenderTree renders a tree-of-thoughts template with the supplied
// leaf substitutions and returns the structure plus its analysis.
func (s *Server) handleRenderTree(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var req renderTreeRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.engine.RenderTree(name, req.Substitutions)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleFewShot returns a worked-example suggestion for the input, or 404
// when no example in the category resembles it.
func (s *Server) handleFewShot(w http.ResponseWriter, r *http.Request) {
	var req fewShotRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	suggestion := s.engine.FewShotSuggestion(req.Category, req.Input)
	if suggestion == nil {
		s.errorResponse(w, http.StatusNotFound, "no similar example found")
		return
	}

	s.jsonResponse(w, http.StatusOK, suggestion)
}

// handleConstitutional runs a recommendation through the principle checks.
func (s *Server) handleConstitutional(w http.ResponseWriter, r *http.Request) {
	var req constitutionalRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	checks := s.engine.ConstitutionalCheck(req.Recommendation)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"checks": checks,
	})
}
