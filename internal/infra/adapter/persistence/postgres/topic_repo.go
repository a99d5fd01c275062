package postgres

import (
	"context"
	"fmt"

	"ncnews/internal/domain/entity"
	"ncnews/internal/repository"
)

type TopicRepo struct {
	db DB
}

func NewTopicRepo(db DB) repository.TopicRepository {
	return &TopicRepo{db: db}
}

func (repo *TopicRepo) List(ctx context.Context) (topics []*entity.Topic, err error) {
	ctx, done := instrument(ctx, "topic.list")
	defer done(&err)

	const query = `SELECT slug, description FROM topics ORDER BY slug`
	topics, err = selectAll[entity.Topic](ctx, repo.db, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return topics, nil
}

func (repo *TopicRepo) Exists(ctx context.Context, slug string) (ok bool, err error) {
	ctx, done := instrument(ctx, "topic.exists")
	defer done(&err)

	const query = `SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)`
	ok, err = scalar[bool](ctx, repo.db, query, slug)
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return ok, nil
}
