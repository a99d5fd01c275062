// Package topic provides the HTTP handler for the topic catalogue.
package topic

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ncnews/internal/domain/entity"
	"ncnews/internal/handler/http/apierror"
	"ncnews/internal/handler/http/respond"
)

// Service is the part of the topic use case the handler needs.
type Service interface {
	List(ctx context.Context) ([]*entity.Topic, error)
}

// DTO represents the JSON structure for a topic.
type DTO struct {
	Slug        string `json:"slug" example:"mitch"`
	Description string `json:"description" example:"The man, the Mitch, the legend"`
}

// ListResponse is the envelope for GET /api/topics.
type ListResponse struct {
	Topics []DTO `json:"topics"`
}

type ListHandler struct {
	Svc    Service
	Errors *apierror.Chain
}

// ServeHTTP lists topics
// @Summary      List topics
// @Tags         topics
// @Produce      json
// @Success      200 {object} ListResponse
// @Failure      500 {object} respond.MessageBody
// @Router       /api/topics [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topics, err := h.Svc.List(r.Context())
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	out := make([]DTO, 0, len(topics))
	for _, t := range topics {
		out = append(out, DTO{Slug: t.Slug, Description: t.Description})
	}
	respond.JSON(w, http.StatusOK, ListResponse{Topics: out})
}

// Register mounts the topic routes on r.
func Register(r chi.Router, svc Service, errs *apierror.Chain) {
	r.Method(http.MethodGet, "/topics", ListHandler{Svc: svc, Errors: errs})
}
