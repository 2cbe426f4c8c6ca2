package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"

	"Ripple/internal/auth"
)

var testTokenSecret = []byte("test-token-secret")

func newTestMiddleware() *AuthMiddleware {
	store := sessions.NewCookieStore([]byte("test-session-secret"))
	return NewAuthMiddleware(testTokenSecret, store)
}

// okHandler records the viewer seen by the downstream handler
func okHandler(got **auth.Viewer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = GetViewer(r)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_NoCredentials(t *testing.T) {
	m := newTestMiddleware()

	req := httptest.NewRequest(http.MethodPost, "/rpc/post.create", nil)
	w := httptest.NewRecorder()

	var got *auth.Viewer
	m.RequireAuth(okHandler(&got)).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
	if got != nil {
		t.Error("Handler should not have run")
	}
}

func TestRequireAuth_ValidBearerToken(t *testing.T) {
	m := newTestMiddleware()

	token, err := auth.MintToken(auth.Viewer{
		UserID: "user-1",
		Roles:  []auth.Role{auth.RoleAdmin},
	}, testTokenSecret, time.Hour)
	if err != nil {
		t.Fatalf("MintToken failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/rpc/post.create", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	var got *auth.Viewer
	m.RequireAuth(okHandler(&got)).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	if got == nil || got.UserID != "user-1" {
		t.Fatalf("Expected viewer user-1 in context, got %+v", got)
	}
	if !got.IsAdmin() {
		t.Error("Expected admin role to be carried through")
	}
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	m := newTestMiddleware()

	req := httptest.NewRequest(http.MethodPost, "/rpc/post.create", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()

	var got *auth.Viewer
	m.RequireAuth(okHandler(&got)).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for non-bearer header, got %d", w.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	m := newTestMiddleware()

	token, err := auth.MintToken(auth.Viewer{UserID: "user-1"}, testTokenSecret, -time.Minute)
	if err != nil {
		t.Fatalf("MintToken failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/rpc/post.create", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	var got *auth.Viewer
	m.RequireAuth(okHandler(&got)).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for expired token, got %d", w.Code)
	}
}

func TestRequireAuth_SessionCookie(t *testing.T) {
	m := newTestMiddleware()

	// Establish a session the way the login handler does
	loginReq := httptest.NewRequest(http.MethodPost, "/rpc/session.login", nil)
	loginW := httptest.NewRecorder()
	viewer := &auth.Viewer{UserID: "user-2", Roles: []auth.Role{auth.RoleAdmin}}
	if err := m.SaveSession(loginW, loginReq, viewer); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	cookies := loginW.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Expected a session cookie to be set")
	}

	req := httptest.NewRequest(http.MethodPost, "/rpc/post.create", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()

	var got *auth.Viewer
	m.RequireAuth(okHandler(&got)).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	if got == nil || got.UserID != "user-2" {
		t.Fatalf("Expected viewer user-2 from cookie, got %+v", got)
	}
	if !got.IsAdmin() {
		t.Error("Expected roles to survive the cookie round trip")
	}
}

func TestOptionalAuth_Anonymous(t *testing.T) {
	m := newTestMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/rpc/post.fetch", nil)
	w := httptest.NewRecorder()

	ran := false
	m.OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		if GetViewer(r) != nil {
			t.Error("Expected anonymous viewer")
		}
	})).ServeHTTP(w, req)

	if !ran {
		t.Error("Handler should have run for anonymous request")
	}
}

func TestOptionalAuth_InvalidTokenTreatedAsAnonymous(t *testing.T) {
	m := newTestMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/rpc/post.fetch", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()

	ran := false
	m.OptionalAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		if GetViewer(r) != nil {
			t.Error("Invalid token should not produce a viewer")
		}
	})).ServeHTTP(w, req)

	if !ran {
		t.Error("Handler should have run despite invalid token")
	}
}
