// Package user provides the user use cases.
package user

import (
	"context"
	"fmt"

	"ncnews/internal/domain/entity"
	"ncnews/internal/repository"
)

type Service struct {
	Repo repository.UserRepository
}

func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns the user or a NotFoundError for "user".
func (s *Service) Get(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Repo.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
