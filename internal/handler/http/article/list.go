package article

import (
	"net/http"

	"ncnews/internal/common/pagination"
	"ncnews/internal/domain/criteria"
	"ncnews/internal/handler/http/apierror"
	"ncnews/internal/handler/http/respond"
	"ncnews/internal/repository"
)

type ListHandler struct {
	Svc        Service
	Pagination pagination.Config
	Errors     *apierror.Chain
}

// ServeHTTP lists articles
// @Summary      List articles
// @Description  Filters by topic and author, sorts by any article column and pages with limit/p.
// @Tags         articles
// @Produce      json
// @Param        sort_by query string false "Sort column" Enums(article_id, title, topic, author, created_at, votes, comment_count) default(created_at)
// @Param        order   query string false "Sort direction" Enums(asc, desc) default(desc)
// @Param        topic   query string false "Topic slug"
// @Param        author  query string false "Author username"
// @Param        limit   query int    false "Page size" minimum(1) maximum(100)
// @Param        p       query int    false "Page number (1-based)" minimum(1)
// @Success      200 {object} ListResponse
// @Failure      400 {object} respond.MessageBody "bad request"
// @Failure      404 {object} respond.MessageBody "topic not found"
// @Router       /api/articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sort, err := criteria.ParseSort(criteria.ArticleSortFields, q.Get("sort_by"), q.Get("order"))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	page, err := pagination.ParseQueryParams(r, h.Pagination)
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	res, err := h.Svc.List(r.Context(), repository.ArticleListQuery{
		Filters: repository.ArticleFilters{Topic: q.Get("topic"), Author: q.Get("author")},
		Sort:    sort,
		Page:    page,
	})
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	out := make([]DTO, 0, len(res.Articles))
	for _, a := range res.Articles {
		dto := toDTO(a)
		dto.Body = ""
		out = append(out, dto)
	}
	respond.JSON(w, http.StatusOK, ListResponse{Articles: out, TotalCount: res.TotalCount})
}
