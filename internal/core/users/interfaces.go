package users

import "context"

// Service defines the business logic for users
type Service interface {
	// Find retrieves a user by id. Returns ErrUserNotFound when the id
	// doesn't resolve; the transport maps that to a null body, matching
	// the user.find contract.
	Find(ctx context.Context, id string) (*User, error)

	// IndexUser creates or updates a user from identity-provider profile
	// data. Idempotent - calling it multiple times with the same id is
	// safe. Invoked on login so users are immediately resolvable.
	IndexUser(ctx context.Context, req IndexUserRequest) error
}

// Repository defines the data access interface for users
type Repository interface {
	// GetByID retrieves a user with roles and badges.
	// Returns ErrUserNotFound when missing.
	GetByID(ctx context.Context, id string) (*User, error)

	// Upsert inserts the user or refreshes display name and avatar.
	// Roles and badges are never written here; the identity provider and
	// operators own those.
	Upsert(ctx context.Context, req IndexUserRequest) error
}
