package users

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

type userService struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new user service
func NewService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

func (s *userService) Find(ctx context.Context, id string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *userService) IndexUser(ctx context.Context, req IndexUserRequest) error {
	if strings.TrimSpace(req.ID) == "" {
		return fmt.Errorf("user id is required")
	}

	if err := s.repo.Upsert(ctx, req); err != nil {
		s.logger.Error("failed to index user", "error", err, "user", req.ID)
		return err
	}
	return nil
}
