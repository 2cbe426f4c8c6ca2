package likes

import "time"

// Like marks that a user liked a post. Existence of the row encodes
// "liked"; at most one row exists per (author, post) pair, enforced by
// the composite primary key.
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	PostID    int64     `json:"postId" db:"post_id"`
}

// SetLikeStateRequest is the input for the like toggle operation
type SetLikeStateRequest struct {
	PostID int64 `json:"postId"`
	Liked  bool  `json:"liked"`
}
