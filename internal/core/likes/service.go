package likes

import (
	"context"
	"log/slog"

	"Ripple/internal/auth"
)

type likeService struct {
	repo   Repository
	posts  PostChecker
	logger *slog.Logger
}

// NewService creates a new like service
func NewService(repo Repository, posts PostChecker, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &likeService{
		repo:   repo,
		posts:  posts,
		logger: logger,
	}
}

// SetLikeState implements the idempotent like/unlike transition:
//
//	row exists, liked requested    -> no-op
//	row exists, unliked requested  -> delete row
//	row absent, liked requested    -> create row
//	row absent, unliked requested  -> no-op
func (s *likeService) SetLikeState(ctx context.Context, viewer *auth.Viewer, req SetLikeStateRequest) error {
	exists, err := s.posts.PostExists(ctx, req.PostID)
	if err != nil {
		s.logger.Error("failed to check post existence",
			"error", err,
			"post", req.PostID)
		return err
	}
	if !exists {
		return ErrPostNotFound
	}

	liked, err := s.repo.Exists(ctx, viewer.UserID, req.PostID)
	if err != nil {
		s.logger.Error("failed to check like state",
			"error", err,
			"viewer", viewer.UserID,
			"post", req.PostID)
		return err
	}

	if liked == req.Liked {
		// Already in the requested state
		return nil
	}

	if req.Liked {
		return s.repo.Create(ctx, viewer.UserID, req.PostID)
	}
	return s.repo.Delete(ctx, viewer.UserID, req.PostID)
}
