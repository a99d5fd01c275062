package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ncnews/internal/handler/http/apierror"
	"ncnews/internal/handler/http/pathutil"
	"ncnews/internal/handler/http/respond"
)

type GetHandler struct {
	Svc    Service
	Errors *apierror.Chain
}

// ServeHTTP returns one article with its comment count
// @Summary      Get an article
// @Tags         articles
// @Produce      json
// @Param        article_id path int true "Article ID"
// @Success      200 {object} ItemResponse
// @Failure      400 {object} respond.MessageBody "bad request"
// @Failure      404 {object} respond.MessageBody "article not found"
// @Router       /api/articles/{article_id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID("article_id", chi.URLParam(r, "article_id"))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	a, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, ItemResponse{Article: toDTO(a)})
}
