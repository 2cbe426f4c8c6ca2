package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"Ripple/internal/auth"
)

// Context keys for storing viewer information
type contextKey string

const (
	// ViewerKey holds the authenticated *auth.Viewer in the request context
	ViewerKey contextKey = "viewer"
)

// SessionName is the cookie name for browser sessions
const SessionName = "ripple_session"

// Session value keys. Roles are stored comma-joined so the cookie stays a
// flat string map and needs no gob registration.
const (
	sessionUserIDKey = "user_id"
	sessionRolesKey  = "roles"
)

// AuthMiddleware resolves the caller's identity from either a bearer token
// (Authorization header, verified against the identity provider's secret)
// or the session cookie issued by the session login handler.
type AuthMiddleware struct {
	tokenSecret []byte
	store       *sessions.CookieStore
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokenSecret []byte, store *sessions.CookieStore) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSecret: tokenSecret,
		store:       store,
	}
}

// RequireAuth ensures the request carries a valid identity.
// If not authenticated, returns 401. If authenticated, injects the viewer
// into the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer, err := m.resolveViewer(r)
		if err != nil {
			log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeAuthError(w, "Invalid or expired credentials")
			return
		}
		if viewer == nil {
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), ViewerKey, viewer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the viewer when credentials are present but lets
// anonymous requests through. Invalid credentials are treated as anonymous
// rather than rejected.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer, err := m.resolveViewer(r)
		if err == nil && viewer != nil {
			ctx := context.WithValue(r.Context(), ViewerKey, viewer)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// resolveViewer checks the bearer token first, then the session cookie.
// Returns (nil, nil) when no credentials are present at all.
func (m *AuthMiddleware) resolveViewer(r *http.Request) (*auth.Viewer, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return nil, auth.ErrInvalidToken
		}
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := auth.VerifyToken(token, m.tokenSecret)
		if err != nil {
			return nil, err
		}
		return &claims.Viewer, nil
	}

	return m.viewerFromSession(r)
}

// viewerFromSession reads the viewer from the session cookie, if any
func (m *AuthMiddleware) viewerFromSession(r *http.Request) (*auth.Viewer, error) {
	session, err := m.store.Get(r, SessionName)
	if err != nil {
		// A cookie that fails authentication is treated as absent; the
		// caller simply isn't logged in anymore.
		return nil, nil
	}
	if session.IsNew {
		return nil, nil
	}

	userID, ok := session.Values[sessionUserIDKey].(string)
	if !ok || userID == "" {
		return nil, nil
	}

	viewer := &auth.Viewer{UserID: userID}
	if rolesStr, ok := session.Values[sessionRolesKey].(string); ok && rolesStr != "" {
		for _, role := range strings.Split(rolesStr, ",") {
			viewer.Roles = append(viewer.Roles, auth.Role(role))
		}
	}

	return viewer, nil
}

// SaveSession writes the viewer into the session cookie. Used by the
// session login handler after verifying an identity token.
func (m *AuthMiddleware) SaveSession(w http.ResponseWriter, r *http.Request, viewer *auth.Viewer) error {
	session, _ := m.store.Get(r, SessionName)

	roles := make([]string, len(viewer.Roles))
	for i, role := range viewer.Roles {
		roles[i] = string(role)
	}

	session.Values[sessionUserIDKey] = viewer.UserID
	session.Values[sessionRolesKey] = strings.Join(roles, ",")
	session.Options.HttpOnly = true
	session.Options.SameSite = http.SameSiteLaxMode

	return session.Save(r, w)
}

// ClearSession expires the session cookie
func (m *AuthMiddleware) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// GetViewer extracts the authenticated viewer from the request context.
// Returns nil for anonymous requests.
func GetViewer(r *http.Request) *auth.Viewer {
	viewer, _ := r.Context().Value(ViewerKey).(*auth.Viewer)
	return viewer
}

// writeAuthError writes a 401 JSON error response
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode auth error response: %v", err)
	}
}
