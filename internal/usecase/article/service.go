// Package article provides the article use cases: reading a single article,
// listing with filters, sorting and pagination, publishing and voting.
package article

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ncnews/internal/common/pagination"
	"ncnews/internal/domain/entity"
	"ncnews/internal/observability/metrics"
	"ncnews/internal/repository"
)

// Service orchestrates article operations. Topics and Users are consulted
// only to check that referenced values exist.
type Service struct {
	Articles repository.ArticleRepository
	Topics   repository.TopicRepository
	Users    repository.UserRepository
}

// ListResult is one page of articles plus the number of articles matching
// the filters across all pages.
type ListResult struct {
	Articles   []*entity.Article
	TotalCount int64
}

// Get returns the article with its comment_count.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Article, error) {
	article, err := s.Articles.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// List runs the page query, the total count and the filter existence checks
// concurrently. A filter naming an unknown topic or user fails with
// NotFoundError even though the list itself would simply be empty.
func (s *Service) List(ctx context.Context, q repository.ArticleListQuery) (*ListResult, error) {
	var (
		articles []*entity.Article
		total    int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.Articles.List(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Articles.Count(gctx, q.Filters)
		return err
	})
	if slug := q.Filters.Topic; slug != "" {
		g.Go(func() error { return requireExists(gctx, "topic", slug, s.Topics.Exists) })
	}
	if username := q.Filters.Author; username != "" {
		g.Go(func() error { return requireExists(gctx, "user", username, s.Users.Exists) })
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	pagination.RecordRequest("articles", q.Page)
	pagination.UpdateTotalCount("articles", total)

	return &ListResult{Articles: articles, TotalCount: total}, nil
}

// Create validates in, checks its topic and author exist, then inserts it.
func (s *Service) Create(ctx context.Context, in entity.NewArticle) (*entity.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return requireExists(gctx, "topic", in.Topic, s.Topics.Exists) })
	g.Go(func() error { return requireExists(gctx, "user", in.Author, s.Users.Exists) })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	article, err := s.Articles.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	metrics.RecordArticleCreated()
	return article, nil
}

// AddVotes applies a relative vote change. delta may be zero or negative.
func (s *Service) AddVotes(ctx context.Context, id int64, delta int) (*entity.Article, error) {
	article, err := s.Articles.AddVotes(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("vote on article: %w", err)
	}
	metrics.RecordVote("article")
	return article, nil
}

func requireExists[K any](ctx context.Context, resource string, key K, exists func(context.Context, K) (bool, error)) error {
	ok, err := exists(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return entity.NewNotFound(resource, key)
	}
	return nil
}
