package post

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Ripple/internal/auth"
	"Ripple/internal/core/posts"
)

func TestEditHandler_Success(t *testing.T) {
	var gotReq posts.EditPostRequest
	mockService := &mockPostService{
		editFunc: func(ctx context.Context, viewer *auth.Viewer, req posts.EditPostRequest) error {
			gotReq = req
			return nil
		},
	}
	handler := NewEditHandler(mockService)

	body, _ := json.Marshal(posts.EditPostRequest{ID: 7, Content: "updated"})
	req := httptest.NewRequest(http.MethodPost, "/rpc/post.edit", bytes.NewBuffer(body))
	req = withViewer(req, &auth.Viewer{UserID: "user-1"})

	w := httptest.NewRecorder()
	handler.HandleEdit(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	if gotReq.ID != 7 || gotReq.Content != "updated" {
		t.Errorf("Service received wrong request: %+v", gotReq)
	}
	if strings.TrimSpace(w.Body.String()) != "{}" {
		t.Errorf("Expected empty object response, got %s", w.Body.String())
	}
}

func TestEditHandler_NotFound(t *testing.T) {
	mockService := &mockPostService{
		editFunc: func(ctx context.Context, viewer *auth.Viewer, req posts.EditPostRequest) error {
			return posts.ErrPostNotFound
		},
	}
	handler := NewEditHandler(mockService)

	body, _ := json.Marshal(posts.EditPostRequest{ID: 99, Content: "updated"})
	req := httptest.NewRequest(http.MethodPost, "/rpc/post.edit", bytes.NewBuffer(body))
	req = withViewer(req, &auth.Viewer{UserID: "user-1"})

	w := httptest.NewRecorder()
	handler.HandleEdit(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestEditHandler_NotAuthorized(t *testing.T) {
	mockService := &mockPostService{
		editFunc: func(ctx context.Context, viewer *auth.Viewer, req posts.EditPostRequest) error {
			return posts.ErrNotAuthorized
		},
	}
	handler := NewEditHandler(mockService)

	body, _ := json.Marshal(posts.EditPostRequest{ID: 7, Content: "updated"})
	req := httptest.NewRequest(http.MethodPost, "/rpc/post.edit", bytes.NewBuffer(body))
	req = withViewer(req, &auth.Viewer{UserID: "other-user"})

	w := httptest.NewRecorder()
	handler.HandleEdit(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "NotAuthorized") {
		t.Errorf("Expected NotAuthorized error type, got %s", w.Body.String())
	}
}

func TestEditHandler_RequiresAuth(t *testing.T) {
	handler := NewEditHandler(&mockPostService{})

	body, _ := json.Marshal(posts.EditPostRequest{ID: 7, Content: "updated"})
	req := httptest.NewRequest(http.MethodPost, "/rpc/post.edit", bytes.NewBuffer(body))

	w := httptest.NewRecorder()
	handler.HandleEdit(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without viewer, got %d", w.Code)
	}
}
