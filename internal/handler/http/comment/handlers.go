package comment

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ncnews/internal/common/pagination"
	"ncnews/internal/domain/criteria"
	"ncnews/internal/domain/entity"
	"ncnews/internal/handler/http/apierror"
	"ncnews/internal/handler/http/pathutil"
	"ncnews/internal/handler/http/request"
	"ncnews/internal/handler/http/respond"
)

type Service interface {
	ListByArticle(ctx context.Context, articleID int64, sort criteria.Sort, page pagination.Params) ([]*entity.Comment, error)
	Create(ctx context.Context, in entity.NewComment) (*entity.Comment, error)
	AddVotes(ctx context.Context, id int64, delta int) (*entity.Comment, error)
	Delete(ctx context.Context, id int64) error
}

/* ───────── GET /api/articles/{article_id}/comments ───────── */

type ListHandler struct {
	Svc        Service
	Pagination pagination.Config
	Errors     *apierror.Chain
}

// ServeHTTP lists an article's comments
// @Summary      List comments on an article
// @Tags         comments
// @Produce      json
// @Param        article_id path  int    true  "Article ID"
// @Param        sort_by    query string false "Sort column" Enums(comment_id, author, created_at, votes) default(created_at)
// @Param        order      query string false "Sort direction" Enums(asc, desc) default(desc)
// @Param        limit      query int    false "Page size"
// @Param        p          query int    false "Page number (1-based)"
// @Success      200 {object} ListResponse
// @Failure      400 {object} respond.MessageBody "bad request"
// @Failure      404 {object} respond.MessageBody "article not found"
// @Router       /api/articles/{article_id}/comments [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID("article_id", chi.URLParam(r, "article_id"))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	q := r.URL.Query()
	sort, err := criteria.ParseSort(criteria.CommentSortFields, q.Get("sort_by"), q.Get("order"))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	page, err := pagination.ParseQueryParams(r, h.Pagination)
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	comments, err := h.Svc.ListByArticle(r.Context(), id, sort, page)
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	out := make([]DTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, ListResponse{Comments: out})
}

/* ───────── POST /api/articles/{article_id}/comments ───────── */

type CreateHandler struct {
	Svc    Service
	Errors *apierror.Chain
}

// ServeHTTP posts a comment
// @Summary      Comment on an article
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        article_id path int           true "Article ID"
// @Param        comment    body CreateRequest true "New comment"
// @Success      201 {object} ItemResponse
// @Failure      400 {object} respond.MessageBody "bad request"
// @Failure      404 {object} respond.MessageBody "article not found / user not found"
// @Router       /api/articles/{article_id}/comments [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID("article_id", chi.URLParam(r, "article_id"))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	var req CreateRequest
	if err := request.Decode(r, &req); err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	c, err := h.Svc.Create(r.Context(), entity.NewComment{ArticleID: id, Author: req.Username, Body: req.Body})
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, ItemResponse{Comment: toDTO(c)})
}

/* ───────── PATCH /api/comments/{comment_id} ───────── */

type VoteHandler struct {
	Svc    Service
	Errors *apierror.Chain
}

// ServeHTTP changes a comment's votes by inc_votes
// @Summary      Vote on a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        comment_id path int          true "Comment ID"
// @Param        vote       body request.Vote true "Relative vote change"
// @Success      200 {object} ItemResponse
// @Failure      400 {object} respond.MessageBody "bad request"
// @Failure      404 {object} respond.MessageBody "comment not found"
// @Router       /api/comments/{comment_id} [patch]
func (h VoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID("comment_id", chi.URLParam(r, "comment_id"))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	var req request.Vote
	if err := request.Decode(r, &req); err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	c, err := h.Svc.AddVotes(r.Context(), id, int(*req.IncVotes))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, ItemResponse{Comment: toDTO(c)})
}

/* ───────── DELETE /api/comments/{comment_id} ───────── */

type DeleteHandler struct {
	Svc    Service
	Errors *apierror.Chain
}

// ServeHTTP deletes a comment
// @Summary      Delete a comment
// @Tags         comments
// @Param        comment_id path int true "Comment ID"
// @Success      204
// @Failure      400 {object} respond.MessageBody "bad request"
// @Failure      404 {object} respond.MessageBody "comment not found"
// @Router       /api/comments/{comment_id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID("comment_id", chi.URLParam(r, "comment_id"))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	respond.NoContent(w)
}

// Register mounts the comment routes on r.
func Register(r chi.Router, svc Service, pageCfg pagination.Config, errs *apierror.Chain) {
	r.Method(http.MethodGet, "/articles/{article_id}/comments", ListHandler{Svc: svc, Pagination: pageCfg, Errors: errs})
	r.Method(http.MethodPost, "/articles/{article_id}/comments", CreateHandler{Svc: svc, Errors: errs})
	r.Method(http.MethodPatch, "/comments/{comment_id}", VoteHandler{Svc: svc, Errors: errs})
	r.Method(http.MethodDelete, "/comments/{comment_id}", DeleteHandler{Svc: svc, Errors: errs})
}
