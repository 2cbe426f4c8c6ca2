package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Ripple/internal/core/posts"
)

// FetchHandler serves feed pages
type FetchHandler struct {
	service posts.Service
}

// NewFetchHandler creates a new feed fetch handler
func NewFetchHandler(service posts.Service) *FetchHandler {
	return &FetchHandler{service: service}
}

// HandleFetch handles GET /rpc/post.fetch
//
// Query parameters:
//
//	limit  - page size, defaults to 20
//	cursor - id of the first excluded post from the previous page
//
// Public read; no authentication required.
func (h *FetchHandler) HandleFetch(w http.ResponseWriter, r *http.Request) {
	req := posts.FetchRequest{}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "limit must be an integer")
			return
		}
		req.Limit = &limit
	}

	if raw := r.URL.Query().Get("cursor"); raw != "" {
		cursor, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest", "cursor must be a post id")
			return
		}
		req.Cursor = &cursor
	}

	page, err := h.service.Fetch(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// Encode an empty page as posts: [] rather than null
	if page.Posts == nil {
		page.Posts = []*posts.PostView{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(page); err != nil {
		log.Printf("Failed to encode feed response: %v", err)
	}
}
