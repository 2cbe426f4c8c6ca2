package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Ripple/internal/core/posts"
)

// FetchByIDHandler serves single-post lookups
type FetchByIDHandler struct {
	service posts.Service
}

// NewFetchByIDHandler creates a new single-post fetch handler
func NewFetchByIDHandler(service posts.Service) *FetchByIDHandler {
	return &FetchByIDHandler{service: service}
}

// HandleFetchByID handles GET /rpc/post.fetchById?id=<postId>
// Returns the post with its full like list, or 404 when missing.
func (h *FetchByIDHandler) HandleFetchByID(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id is required")
		return
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id must be a post id")
		return
	}

	view, err := h.service.FetchByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Printf("Failed to encode post response: %v", err)
	}
}
