// Package topic provides the topic use cases.
package topic

import (
	"context"
	"fmt"

	"ncnews/internal/domain/entity"
	"ncnews/internal/repository"
)

type Service struct {
	Repo repository.TopicRepository
}

// List returns every topic ordered by slug.
func (s *Service) List(ctx context.Context) ([]*entity.Topic, error) {
	topics, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}
