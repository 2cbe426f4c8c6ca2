package posts

import (
	"context"

	"Ripple/internal/auth"
)

// Service defines the business logic for the post feed and post mutations
type Service interface {
	// Fetch returns one page of the global feed, newest first.
	// Public read; no authentication required.
	Fetch(ctx context.Context, req FetchRequest) (*FeedPage, error)

	// FetchByID returns a single post with its full like list.
	// Returns ErrPostNotFound when the id doesn't resolve.
	FetchByID(ctx context.Context, id int64) (*PostView, error)

	// Create inserts a new post owned by the viewer and returns it
	// enriched the same way as feed entries.
	// Content must be 1-256 characters or a ValidationError is returned.
	Create(ctx context.Context, viewer *auth.Viewer, req CreatePostRequest) (*PostView, error)

	// Edit replaces a post's content and marks it edited.
	// Strictly owner-only: the admin role does not grant edit rights.
	Edit(ctx context.Context, viewer *auth.Viewer, req EditPostRequest) error

	// Delete permanently removes a post (likes cascade at the store).
	// Allowed for the post's author or an admin.
	Delete(ctx context.Context, viewer *auth.Viewer, id int64) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// ListPage retrieves up to limit enriched posts ordered by id descending,
	// starting strictly below cursor when cursor is non-nil.
	// An unresolvable cursor is not an error: the scan simply starts at the
	// first id below it (store-default behavior).
	ListPage(ctx context.Context, limit int, cursor *int64) ([]*PostView, error)

	// GetViewByID retrieves a single enriched post.
	// Returns ErrPostNotFound when missing.
	GetViewByID(ctx context.Context, id int64) (*PostView, error)

	// GetByID retrieves the bare post row, used for ownership checks.
	// Returns ErrPostNotFound when missing.
	GetByID(ctx context.Context, id int64) (*Post, error)

	// Create inserts a post and returns its store-assigned id
	Create(ctx context.Context, authorID, content string) (int64, error)

	// UpdateContent replaces content and sets edited = TRUE.
	// Returns ErrPostNotFound when no row matched.
	UpdateContent(ctx context.Context, id int64, content string) error

	// Delete removes the post row. Returns ErrPostNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
