// Package user provides HTTP handlers for user profiles.
package user

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ncnews/internal/domain/entity"
	"ncnews/internal/handler/http/apierror"
	"ncnews/internal/handler/http/respond"
)

type Service interface {
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, username string) (*entity.User, error)
}

// DTO represents the JSON structure for a user.
type DTO struct {
	Username  string `json:"username" example:"butter_bridge"`
	Name      string `json:"name" example:"jonny"`
	AvatarURL string `json:"avatar_url" example:"https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"`
}

func toDTO(u *entity.User) DTO {
	return DTO{Username: u.Username, Name: u.Name, AvatarURL: u.AvatarURL}
}

type ListResponse struct {
	Users []DTO `json:"users"`
}

type GetResponse struct {
	User DTO `json:"user"`
}

type ListHandler struct {
	Svc    Service
	Errors *apierror.Chain
}

// ServeHTTP lists users
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200 {object} ListResponse
// @Failure      500 {object} respond.MessageBody
// @Router       /api/users [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.Svc.List(r.Context())
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}

	out := make([]DTO, 0, len(users))
	for _, u := range users {
		out = append(out, toDTO(u))
	}
	respond.JSON(w, http.StatusOK, ListResponse{Users: out})
}

type GetHandler struct {
	Svc    Service
	Errors *apierror.Chain
}

// ServeHTTP returns one user
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        username path string true "Username"
// @Success      200 {object} GetResponse
// @Failure      404 {object} respond.MessageBody "user not found"
// @Router       /api/users/{username} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, err := h.Svc.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.Errors.Write(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, GetResponse{User: toDTO(u)})
}

// Register mounts the user routes on r.
func Register(r chi.Router, svc Service, errs *apierror.Chain) {
	r.Method(http.MethodGet, "/users", ListHandler{Svc: svc, Errors: errs})
	r.Method(http.MethodGet, "/users/{username}", GetHandler{Svc: svc, Errors: errs})
}
