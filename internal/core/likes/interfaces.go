package likes

import (
	"context"

	"Ripple/internal/auth"
)

// Service defines the business logic for the like toggle
type Service interface {
	// SetLikeState moves the (viewer, post) like state to the requested
	// boolean. Idempotent: repeating the same call is a no-op, never an
	// error or a duplicate row.
	SetLikeState(ctx context.Context, viewer *auth.Viewer, req SetLikeStateRequest) error
}

// Repository defines the data access interface for likes
type Repository interface {
	// Exists reports whether the (author, post) like row is present
	Exists(ctx context.Context, authorID string, postID int64) (bool, error)

	// Create inserts the like row. Idempotent: a duplicate insert (e.g. a
	// concurrent toggle that raced past the existence check) is absorbed
	// by the store's uniqueness constraint, not surfaced as an error.
	Create(ctx context.Context, authorID string, postID int64) error

	// Delete removes the like row if present; deleting an absent row is
	// not an error.
	Delete(ctx context.Context, authorID string, postID int64) error
}

// PostChecker validates that the target post exists before a like is
// created, preventing likes on non-existent content
type PostChecker interface {
	PostExists(ctx context.Context, id int64) (bool, error)
}
