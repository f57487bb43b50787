// Package server provides the HTTP REST API for the expert panel.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/daniel/expert-panel/internal/reasoning"
	"github.com/daniel/expert-panel/internal/taxonomy"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnauthorized indicates a missing or invalid admin token
type ErrUnauthorized struct{}

func (e *ErrUnauthorized) Error() string {
	return "missing or invalid authorization token"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var roleErr *taxonomy.ErrRoleNotFound
	if errors.As(err, &roleErr) {
		return http.StatusNotFound
	}
	var tmplErr *reasoning.ErrTemplateNotFound
	if errors.As(err, &tmplErr) {
		return http.StatusNotFound
	}

	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
