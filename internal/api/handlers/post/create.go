package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Ripple/internal/api/middleware"
	"Ripple/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /rpc/post.create
//
// Request body: { "content": "..." }
// Response: the created post, enriched like a feed entry.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Content caps at 256 characters; 16KB leaves room for encoding slack
	// while bounding abuse
	r.Body = http.MaxBytesReader(w, r.Body, 16*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	viewer := middleware.GetViewer(r)
	if viewer == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	view, err := h.service.Create(r.Context(), viewer, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Printf("Failed to encode post creation response: %v", err)
	}
}
