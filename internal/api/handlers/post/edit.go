package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// EditHandler handles post edit requests
type EditHandler struct {
	service posts.Service
}

// NewEditHandler creates a new edit handler
func NewEditHandler(service posts.Service) *EditHandler {
	return &EditHandler{service: service}
}

// HandleEdit handles POST /rpc/post.edit
//
// Request body: { "id": 123, "content": "..." }
// Response: {}
//
// Strictly owner-only; the admin role does not grant edit rights.
func (h *EditHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 16*1024)

	var req posts.EditPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	viewer := middleware.GetViewer(r)
	if viewer == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Edit(r.Context(), viewer, req); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(struct{}{}); err != nil {
		log.Printf("Failed to encode edit response: %v", err)
	}
}
