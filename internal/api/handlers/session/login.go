package session

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Ripple/internal/api/middleware"
	"Ripple/internal/auth"
	"Ripple/internal/core/users"
)

// LoginHandler exchanges an identity-provider token for a session cookie
type LoginHandler struct {
	users       users.Service
	authMw      *middleware.AuthMiddleware
	tokenSecret []byte
}

// NewLoginHandler creates a new session login handler
func NewLoginHandler(userService users.Service, authMw *middleware.AuthMiddleware, tokenSecret []byte) *LoginHandler {
	return &LoginHandler{
		users:       userService,
		authMw:      authMw,
		tokenSecret: tokenSecret,
	}
}

// LoginInput is the request body for session.login
type LoginInput struct {
	Token string `json:"token"`
}

// LoginOutput echoes the established identity
type LoginOutput struct {
	UserID string   `json:"userId"`
	Roles  []string `json:"roles"`
}

// HandleLogin handles POST /rpc/session.login
//
// Verifies the identity-provider token, indexes the user so it is
// immediately resolvable via user.find, and issues the session cookie
// used by browser clients that don't attach bearer tokens.
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Token == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "token is required")
		return
	}

	claims, err := auth.VerifyToken(input.Token, h.tokenSecret)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			writeError(w, http.StatusUnauthorized, "AuthRequired", "Invalid or expired token")
			return
		}
		log.Printf("Unexpected error verifying login token: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	err = h.users.IndexUser(r.Context(), users.IndexUserRequest{
		ID:          claims.Viewer.UserID,
		DisplayName: claims.DisplayName,
		AvatarURL:   claims.AvatarURL,
	})
	if err != nil {
		log.Printf("Failed to index user on login: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	if err := h.authMw.SaveSession(w, r, &claims.Viewer); err != nil {
		log.Printf("Failed to save session: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	roles := make([]string, len(claims.Viewer.Roles))
	for i, role := range claims.Viewer.Roles {
		roles[i] = string(role)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(LoginOutput{
		UserID: claims.Viewer.UserID,
		Roles:  roles,
	}); err != nil {
		log.Printf("Failed to encode login response: %v", err)
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
