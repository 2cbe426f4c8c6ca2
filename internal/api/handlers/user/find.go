package user

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"Ripple/internal/core/users"
)

// FindHandler serves user lookups
type FindHandler struct {
	service users.Service
}

// NewFindHandler creates a new user find handler
func NewFindHandler(service users.Service) *FindHandler {
	return &FindHandler{service: service}
}

// HandleFind handles GET /rpc/user.find?id=<userId>
//
// A missing user is a 200 with a null body, not a 404 - callers probe
// for profiles and treat null as "no such user".
func (h *FindHandler) HandleFind(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if strings.TrimSpace(id) == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id is required")
		return
	}

	found, err := h.service.Find(r.Context(), id)
	if err != nil && !errors.Is(err, users.ErrUserNotFound) {
		log.Printf("Unexpected error in user find handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(found); err != nil {
		log.Printf("Failed to encode user response: %v", err)
	}
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
