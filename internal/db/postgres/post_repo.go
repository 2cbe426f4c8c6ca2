package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"Ripple/internal/core/posts"
)

// postViewSelect is the shared enriched-post projection: the post row plus
// author summary, badge names and liker ids, aggregated in a single query
// to avoid N+1 lookups on feed pages.
//
// DATABASE INDEXES:
//   - posts_pkey on posts(id) covers the descending keyset scan
//   - likes_pkey on likes(author_id, post_id) plus idx_likes_post on
//     likes(post_id) cover the like join (migration 00004)
const postViewSelect = `
	SELECT p.id, p.author_id, p.content, p.edited, p.created_at,
	       u.display_name, u.avatar_url,
	       COALESCE(ARRAY_REMOVE(ARRAY_AGG(DISTINCT b.name), NULL), '{}') AS badges,
	       COALESCE(ARRAY_REMOVE(ARRAY_AGG(DISTINCT l.author_id), NULL), '{}') AS likes
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN user_badges ub ON ub.user_id = u.id
	LEFT JOIN badges b ON b.id = ub.badge_id
	LEFT JOIN likes l ON l.post_id = p.id`

const postViewGroupBy = `
	GROUP BY p.id, u.display_name, u.avatar_url`

// PostRepository is the PostgreSQL post repository. It backs both the
// post service (posts.Repository) and the like service's post existence
// check (likes.PostChecker).
type PostRepository struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

// ListPage retrieves up to limit enriched posts ordered by id descending.
// A non-nil cursor restricts the scan to ids strictly below it. A cursor
// that no longer resolves to a row is not an error: the keyset comparison
// simply starts at the first surviving id below it.
func (r *PostRepository) ListPage(ctx context.Context, limit int, cursor *int64) ([]*posts.PostView, error) {
	query := postViewSelect
	args := []interface{}{limit}

	if cursor != nil {
		query += `
	WHERE p.id < $2`
		args = append(args, *cursor)
	}

	query += postViewGroupBy + `
	ORDER BY p.id DESC
	LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var views []*posts.PostView
	for rows.Next() {
		view, err := scanPostView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return views, nil
}

// GetViewByID retrieves a single enriched post
func (r *PostRepository) GetViewByID(ctx context.Context, id int64) (*posts.PostView, error) {
	query := postViewSelect + `
	WHERE p.id = $1` + postViewGroupBy

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get post %d: %w", id, err)
		}
		return nil, posts.ErrPostNotFound
	}

	return scanPostView(rows)
}

// GetByID retrieves the bare post row
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	post := &posts.Post{}
	query := `SELECT id, author_id, content, edited, created_at FROM posts WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&post.ID, &post.AuthorID, &post.Content, &post.Edited, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}

	return post, nil
}

// Create inserts a new post and returns its store-assigned id
func (r *PostRepository) Create(ctx context.Context, authorID, content string) (int64, error) {
	var id int64
	query := `
		INSERT INTO posts (author_id, content)
		VALUES ($1, $2)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query, authorID, content).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create post: %w", err)
	}

	return id, nil
}

// UpdateContent replaces a post's content and marks it edited.
// The edited flag only ever moves to TRUE; re-editing leaves it TRUE.
func (r *PostRepository) UpdateContent(ctx context.Context, id int64, content string) error {
	query := `UPDATE posts SET content = $2, edited = TRUE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, content)
	if err != nil {
		return fmt.Errorf("failed to update post %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// Delete removes the post row; likes cascade via the foreign key
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// PostExists reports whether a post row exists. Used by the like service
// to reject likes on missing posts.
func (r *PostRepository) PostExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}
	return exists, nil
}

// scanPostView scans one enriched post row
func scanPostView(rows *sql.Rows) (*posts.PostView, error) {
	view := &posts.PostView{}
	var displayName, avatarURL sql.NullString
	var badges, likes pq.StringArray

	err := rows.Scan(&view.ID, &view.AuthorID, &view.Content, &view.Edited, &view.CreatedAt,
		&displayName, &avatarURL, &badges, &likes)
	if err != nil {
		return nil, fmt.Errorf("failed to scan post row: %w", err)
	}

	if displayName.Valid {
		view.Author.DisplayName = &displayName.String
	}
	if avatarURL.Valid {
		view.Author.AvatarURL = &avatarURL.String
	}
	view.Author.Badges = badges
	view.Likes = likes
	view.LikeCount = len(likes)

	return view, nil
}
