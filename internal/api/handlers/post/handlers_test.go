package post

import (
	"context"

	"Ripple/internal/auth"
	"Ripple/internal/core/posts"
)

// mockPostService implements posts.Service for handler tests
type mockPostService struct {
	fetchFunc     func(ctx context.Context, req posts.FetchRequest) (*posts.FeedPage, error)
	fetchByIDFunc func(ctx context.Context, id int64) (*posts.PostView, error)
	createFunc    func(ctx context.Context, viewer *auth.Viewer, req posts.CreatePostRequest) (*posts.PostView, error)
	editFunc      func(ctx context.Context, viewer *auth.Viewer, req posts.EditPostRequest) error
	deleteFunc    func(ctx context.Context, viewer *auth.Viewer, id int64) error
}

func (m *mockPostService) Fetch(ctx context.Context, req posts.FetchRequest) (*posts.FeedPage, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, req)
	}
	return &posts.FeedPage{}, nil
}

func (m *mockPostService) FetchByID(ctx context.Context, id int64) (*posts.PostView, error) {
	if m.fetchByIDFunc != nil {
		return m.fetchByIDFunc(ctx, id)
	}
	return &posts.PostView{ID: id}, nil
}

func (m *mockPostService) Create(ctx context.Context, viewer *auth.Viewer, req posts.CreatePostRequest) (*posts.PostView, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, viewer, req)
	}
	return &posts.PostView{ID: 1, AuthorID: viewer.UserID, Content: req.Content}, nil
}

func (m *mockPostService) Edit(ctx context.Context, viewer *auth.Viewer, req posts.EditPostRequest) error {
	if m.editFunc != nil {
		return m.editFunc(ctx, viewer, req)
	}
	return nil
}

func (m *mockPostService) Delete(ctx context.Context, viewer *auth.Viewer, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, viewer, id)
	}
	return nil
}
