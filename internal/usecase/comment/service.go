// Package comment provides the comment use cases for an article's
// discussion thread.
package comment

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"ncnews/internal/common/pagination"
	"ncnews/internal/domain/criteria"
	"ncnews/internal/domain/entity"
	"ncnews/internal/observability/metrics"
	"ncnews/internal/repository"
)

type Service struct {
	Comments repository.CommentRepository
	Articles repository.ArticleRepository
	Users    repository.UserRepository
}

// ListByArticle returns an article's comments. An existing article with no
// comments yields an empty slice; an unknown article yields NotFoundError.
func (s *Service) ListByArticle(ctx context.Context, articleID int64, sort criteria.Sort, page pagination.Params) ([]*entity.Comment, error) {
	var comments []*entity.Comment

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return requireExists(gctx, "article", articleID, s.Articles.Exists) })
	g.Go(func() error {
		var err error
		comments, err = s.Comments.ListByArticle(gctx, articleID, sort, page)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	pagination.RecordRequest("comments", page)
	return comments, nil
}

// Create posts a comment after confirming the article and the author exist.
func (s *Service) Create(ctx context.Context, in entity.NewComment) (*entity.Comment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return requireExists(gctx, "article", in.ArticleID, s.Articles.Exists) })
	g.Go(func() error { return requireExists(gctx, "user", in.Author, s.Users.Exists) })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	comment, err := s.Comments.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	metrics.RecordCommentCreated()
	return comment, nil
}

func (s *Service) AddVotes(ctx context.Context, id int64, delta int) (*entity.Comment, error) {
	comment, err := s.Comments.AddVotes(ctx, id, delta)
	if err != nil {
		return nil, fmt.Errorf("vote on comment: %w", err)
	}
	metrics.RecordVote("comment")
	return comment, nil
}

// Delete removes a comment. Deleting the same id twice fails the second time.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.Comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	metrics.RecordCommentDeleted()
	return nil
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
