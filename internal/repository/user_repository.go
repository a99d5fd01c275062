package repository

import (
	"context"

	"ncnews/internal/domain/entity"
)

type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, username string) (*entity.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}
