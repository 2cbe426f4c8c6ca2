package posts

import (
	"time"
)

// MaxContentLength is the maximum post length in characters (runes)
const MaxContentLength = 256

// DefaultFeedLimit is the page size used when the caller doesn't supply one
const DefaultFeedLimit = 20

// MaxFeedLimit caps the page size a caller may request
const MaxFeedLimit = 100

// Post is the bare post row as stored
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	Content   string    `json:"content" db:"content"`
	ID        int64     `json:"id" db:"id"`
	Edited    bool      `json:"edited" db:"edited"`
}

// AuthorView is the author summary attached to each feed entry
type AuthorView struct {
	DisplayName *string  `json:"displayName"`
	AvatarURL   *string  `json:"avatarUrl"`
	Badges      []string `json:"badges"`
}

// PostView is a post enriched with author and like data, as returned
// by feed and fetch endpoints
type PostView struct {
	CreatedAt time.Time  `json:"createdAt"`
	Author    AuthorView `json:"author"`
	AuthorID  string     `json:"authorId"`
	Content   string     `json:"content"`
	Likes     []string   `json:"likes"`
	LikeCount int        `json:"likeCount"`
	ID        int64      `json:"id"`
	Edited    bool       `json:"edited"`
}

// FetchRequest is the input for a feed page fetch
type FetchRequest struct {
	// Limit is the requested page size; nil means DefaultFeedLimit
	Limit *int
	// Cursor is the exclusive starting point for the descending scan;
	// nil means start from the newest post
	Cursor *int64
}

// FeedPage is one page of the global feed.
// NextCursor is the identifier of the first post excluded from this page,
// or nil when the feed is exhausted.
type FeedPage struct {
	Posts      []*PostView `json:"posts"`
	NextCursor *int64      `json:"nextCursor,omitempty"`
}

// CreatePostRequest is the input for creating a post
type CreatePostRequest struct {
	Content string `json:"content"`
}

// EditPostRequest is the input for editing a post
type EditPostRequest struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}
