package posts

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"Ripple/internal/auth"
)

type postService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new post service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:   repo,
		logger: logger,
	}
}

// Fetch returns one page of the global feed.
// Fetches limit+1 rows to detect whether a further page exists: when the
// extra row comes back it is dropped from the page and its id becomes the
// continuation cursor.
func (s *postService) Fetch(ctx context.Context, req FetchRequest) (*FeedPage, error) {
	limit := DefaultFeedLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxFeedLimit {
		limit = MaxFeedLimit
	}

	views, err := s.repo.ListPage(ctx, limit+1, req.Cursor)
	if err != nil {
		s.logger.Error("failed to list feed page", "error", err)
		return nil, err
	}

	page := &FeedPage{Posts: views}
	if len(views) > limit {
		next := views[limit]
		page.Posts = views[:limit]
		page.NextCursor = &next.ID
	}

	return page, nil
}

func (s *postService) FetchByID(ctx context.Context, id int64) (*PostView, error) {
	return s.repo.GetViewByID(ctx, id)
}

func (s *postService) Create(ctx context.Context, viewer *auth.Viewer, req CreatePostRequest) (*PostView, error) {
	if err := validateContent(req.Content, true); err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, viewer.UserID, req.Content)
	if err != nil {
		s.logger.Error("failed to create post",
			"error", err,
			"author", viewer.UserID)
		return nil, err
	}

	return s.repo.GetViewByID(ctx, id)
}

func (s *postService) Edit(ctx context.Context, viewer *auth.Viewer, req EditPostRequest) error {
	// Input validation happens before any store access; a malformed edit
	// fails the same way whether or not the post exists.
	if err := validateContent(req.Content, false); err != nil {
		return err
	}

	post, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	// Edit is strictly owner-only. Admins can delete other users' posts
	// but must not rewrite them.
	if post.AuthorID != viewer.UserID {
		return ErrNotAuthorized
	}

	return s.repo.UpdateContent(ctx, req.ID, req.Content)
}

func (s *postService) Delete(ctx context.Context, viewer *auth.Viewer, id int64) error {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if post.AuthorID != viewer.UserID && !viewer.IsAdmin() {
		return ErrNotAuthorized
	}

	return s.repo.Delete(ctx, id)
}

// validateContent enforces content length in characters.
// requireNonEmpty is true for create; edit only enforces the upper bound.
func validateContent(content string, requireNonEmpty bool) error {
	length := utf8.RuneCountInString(content)
	if requireNonEmpty && length < 1 {
		return NewValidationError("content", "must not be empty")
	}
	if length > MaxContentLength {
		return NewValidationError("content", "must be at most 256 characters")
	}
	return nil
}
