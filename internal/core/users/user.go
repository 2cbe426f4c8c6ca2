package users

import (
	"time"
)

// User is an account created by the external identity provider on first
// sign-in. The core never mutates users beyond the IndexUser upsert that
// mirrors the provider's profile data.
type User struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
	DisplayName *string   `json:"displayName" db:"display_name"`
	AvatarURL   *string   `json:"avatarUrl" db:"avatar_url"`
	ID          string    `json:"id" db:"id"`
	Roles       []string  `json:"roles"`
	Badges      []string  `json:"badges"`
}

// IndexUserRequest carries the profile data mirrored from the identity
// provider when a session is established
type IndexUserRequest struct {
	ID          string
	DisplayName *string
	AvatarURL   *string
}
