package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"Ripple/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

// GetByID retrieves a user with roles and badge names
func (r *postgresUserRepo) GetByID(ctx context.Context, id string) (*users.User, error) {
	user := &users.User{}
	query := `
		SELECT u.id, u.display_name, u.avatar_url, u.roles, u.created_at, u.updated_at,
		       COALESCE(ARRAY_REMOVE(ARRAY_AGG(b.name), NULL), '{}') AS badges
		FROM users u
		LEFT JOIN user_badges ub ON ub.user_id = u.id
		LEFT JOIN badges b ON b.id = ub.badge_id
		WHERE u.id = $1
		GROUP BY u.id`

	var displayName, avatarURL sql.NullString
	var roles, badges pq.StringArray

	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &displayName, &avatarURL, &roles, &user.CreatedAt, &user.UpdatedAt, &badges)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}

	if displayName.Valid {
		user.DisplayName = &displayName.String
	}
	if avatarURL.Valid {
		user.AvatarURL = &avatarURL.String
	}
	user.Roles = roles
	user.Badges = badges

	return user, nil
}

// Upsert inserts the user or refreshes the profile fields mirrored from
// the identity provider. Roles and badges are left untouched on conflict.
func (r *postgresUserRepo) Upsert(ctx context.Context, req users.IndexUserRequest) error {
	query := `
		INSERT INTO users (id, display_name, avatar_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			display_name = COALESCE(EXCLUDED.display_name, users.display_name),
			avatar_url = COALESCE(EXCLUDED.avatar_url, users.avatar_url),
			updated_at = NOW()`

	if _, err := r.db.ExecContext(ctx, query, req.ID, req.DisplayName, req.AvatarURL); err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", req.ID, err)
	}

	return nil
}
