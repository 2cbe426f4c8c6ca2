package like

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Ripple/internal/api/middleware"
	"Ripple/internal/core/likes"
)

// SetLikeStateHandler handles like/unlike requests
type SetLikeStateHandler struct {
	service likes.Service
}

// NewSetLikeStateHandler creates a new like toggle handler
func NewSetLikeStateHandler(service likes.Service) *SetLikeStateHandler {
	return &SetLikeStateHandler{service: service}
}

// HandleSetLikeState handles POST /rpc/post.setLikeState
//
// Request body: { "postId": 123, "liked": true }
// Response: {}
//
// Idempotent: repeating the same call produces no duplicate rows and no
// error. The client owns optimistic count adjustment; the server only
// persists the boolean state.
func (h *SetLikeStateHandler) HandleSetLikeState(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 16*1024)

	var req likes.SetLikeStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	viewer := middleware.GetViewer(r)
	if viewer == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.SetLikeState(r.Context(), viewer, req); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(struct{}{}); err != nil {
		log.Printf("Failed to encode like response: %v", err)
	}
}

// handleServiceError maps like service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, likes.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "PostNotFound", "Post not found")

	default:
		log.Printf("Unexpected error in like handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
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
