package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Ripple/internal/core/likes"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// Exists reports whether the (author, post) like row is present
func (r *postgresLikeRepo) Exists(ctx context.Context, authorID string, postID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM likes WHERE author_id = $1 AND post_id = $2)`

	err := r.db.QueryRowContext(ctx, query, authorID, postID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like existence: %w", err)
	}

	return exists, nil
}

// Create inserts the like row.
// ON CONFLICT DO NOTHING absorbs a concurrent duplicate insert that raced
// past the service's existence check; the composite primary key keeps the
// one-like-per-(user, post) invariant either way.
func (r *postgresLikeRepo) Create(ctx context.Context, authorID string, postID int64) error {
	query := `
		INSERT INTO likes (author_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (author_id, post_id) DO NOTHING`

	if _, err := r.db.ExecContext(ctx, query, authorID, postID); err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}

	return nil
}

// Delete removes the like row; a concurrent unlike that already removed it
// leaves nothing to do
func (r *postgresLikeRepo) Delete(ctx context.Context, authorID string, postID int64) error {
	query := `DELETE FROM likes WHERE author_id = $1 AND post_id = $2`

	if _, err := r.db.ExecContext(ctx, query, authorID, postID); err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return nil
}
