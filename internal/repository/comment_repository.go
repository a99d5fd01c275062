package repository

import (
	"context"

	"ncnews/internal/common/pagination"
	"ncnews/internal/domain/criteria"
	"ncnews/internal/domain/entity"
)

type CommentRepository interface {
	// ListByArticle returns the comments of an article. It does not check
	// that the article exists.
	ListByArticle(ctx context.Context, articleID int64, sort criteria.Sort, page pagination.Params) ([]*entity.Comment, error)
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	Create(ctx context.Context, comment entity.NewComment) (*entity.Comment, error)
	AddVotes(ctx context.Context, id int64, delta int) (*entity.Comment, error)
	// Delete removes a comment. Returns *entity.NotFoundError when nothing was deleted.
	Delete(ctx context.Context, id int64) error
}
