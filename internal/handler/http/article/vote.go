package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ncnews/internal/handler/http/apierror"
	"ncnews/internal/handler/http/pathutil"
	"ncnews/internal/handler/http/request"
	"ncnews/internal/handler/http/respond"
)

type VoteHandler struct {
	Svc    Service
	Errors *apierror.Chain
}

// ServeHTTP changes an article's votes by inc_votes
// @Summary      Vote on an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article_id path int          true "Article ID"
// @Param        vote       body request.Vote true "Relative vote change"
// @Success      200 {object} ItemResponse
// @Failure      400 {object} respond.MessageBody "bad request"
// @Failure      404 {object} respond.MessageBody "article not found"
// @Router       /api/articles/{article_id} [patch]
func (h VoteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID("article_id", chi.URLParam(r, "article_id"))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	var req request.Vote
	if err := request.Decode(r, &req); err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	a, err := h.Svc.AddVotes(r.Context(), id, int(*req.IncVotes))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, ItemResponse{Article: toDTO(a)})
}
