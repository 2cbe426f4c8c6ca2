package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new handler for deleting posts
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// DeletePostInput is the request body for post.delete
type DeletePostInput struct {
	ID int64 `json:"id"`
}

// HandleDelete handles POST /rpc/post.delete
//
// Request body: { "id": 123 }
// Response: {}
//
// Allowed for the post's author or an admin. Likes on the post are
// removed by the store's cascade.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 16*1024)

	var input DeletePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	viewer := middleware.GetViewer(r)
	if viewer == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), viewer, input.ID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(struct{}{}); err != nil {
		log.Printf("Failed to encode delete response: %v", err)
	}
}
