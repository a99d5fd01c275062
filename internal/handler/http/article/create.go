package article

import (
	"net/http"

	"ncnews/internal/domain/entity"
	"ncnews/internal/handler/http/apierror"
	"ncnews/internal/handler/http/request"
	"ncnews/internal/handler/http/respond"
)

type CreateHandler struct {
	Svc    Service
	Errors *apierror.Chain
}

// ServeHTTP publishes an article
// @Summary      Publish an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body CreateRequest true "New article"
// @Success      201 {object} ItemResponse
// @Failure      400 {object} respond.MessageBody "bad request"
// @Failure      404 {object} respond.MessageBody "topic not found / user not found"
// @Router       /api/articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := request.Decode(r, &req); err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	a, err := h.Svc.Create(r.Context(), entity.NewArticle{
		Title:    req.Title,
		Topic:    req.Topic,
		Author:   req.Author,
		Body:     req.Body,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, ItemResponse{Article: toDTO(a)})
}
