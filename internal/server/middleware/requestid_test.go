package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var contextID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextID = GetRequestID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/roles", nil)
	w := httptest.NewRecorder()

	RequestID(handler).ServeHTTP(w, req)

	headerID := w.Header().Get(RequestIDHeader)
	require.NotEmpty(t, headerID)
	assert.Equal(t, headerID, contextID)

	_, err := uuid.Parse(headerID)
	assert.NoError(t, err, "generated ID should be a valid UUID")
}

func TestRequestID_HonorsClientSupplied(t *testing.T) {
	var contextID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextID = GetRequestID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/roles", nil)
	req.Header.Set(RequestIDHeader, "client-id-42")
	w := httptest.NewRecorder()

	RequestID(handler).ServeHTTP(w, req)

	assert.Equal(t, "client-id-42", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "client-id-42", contextID)
}

func TestGetRequestID_Unassigned(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/roles", nil)

	assert.Empty(t, GetRequestID(req))
}
