package article

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ncnews/internal/common/pagination"
	"ncnews/internal/domain/entity"
	"ncnews/internal/handler/http/apierror"
	"ncnews/internal/repository"
	artUC "ncnews/internal/usecase/article"
)

// Service is the part of the article use case the handlers need.
type Service interface {
	Get(ctx context.Context, id int64) (*entity.Article, error)
	List(ctx context.Context, q repository.ArticleListQuery) (*artUC.ListResult, error)
	Create(ctx context.Context, in entity.NewArticle) (*entity.Article, error)
	AddVotes(ctx context.Context, id int64, delta int) (*entity.Article, error)
}

// Register mounts the article routes on r.
func Register(r chi.Router, svc Service, pageCfg pagination.Config, errs *apierror.Chain) {
	r.Method(http.MethodGet, "/articles", ListHandler{Svc: svc, Pagination: pageCfg, Errors: errs})
	r.Method(http.MethodPost, "/articles", CreateHandler{Svc: svc, Errors: errs})
	r.Method(http.MethodGet, "/articles/{article_id}", GetHandler{Svc: svc, Errors: errs})
	r.Method(http.MethodPatch, "/articles/{article_id}", VoteHandler{Svc: svc, Errors: errs})
}
