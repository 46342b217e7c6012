package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/assetbook/backend/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) respond(w http.ResponseWriter, _ *http.Request, body any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.respond(w, r, errorResponse{Error: message}, status)
}

// serviceError maps use case failures to HTTP responses. Not-found (which also
// covers not-owned) becomes 404; anything else is an opaque 500 so engine
// error text never reaches clients.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		s.respondError(w, r, http.StatusNotFound, "not found")
		return
	}

	s.logger.WithError(err).Error("request failed")
	s.respondError(w, r, http.StatusInternalServerError, "internal server error")
}

// decode parses a JSON request body into dst, reporting malformed payloads as
// a client error.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
