package session

import (
	"encoding/json"
	"log"
	"net/http"

	"Ripple/internal/api/middleware"
)

// LogoutHandler clears the session cookie
type LogoutHandler struct {
	authMw *middleware.AuthMiddleware
}

// NewLogoutHandler creates a new session logout handler
func NewLogoutHandler(authMw *middleware.AuthMiddleware) *LogoutHandler {
	return &LogoutHandler{authMw: authMw}
}

// HandleLogout handles POST /rpc/session.logout
// Always succeeds, logged in or not.
func (h *LogoutHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.authMw.ClearSession(w, r); err != nil {
		log.Printf("Failed to clear session: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(struct{}{}); err != nil {
		log.Printf("Failed to encode logout response: %v", err)
	}
}
