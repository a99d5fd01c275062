// Package repository declares the storage contracts used by the use-case layer.
package repository

import (
	"context"

	"ncnews/internal/domain/entity"
)

type TopicRepository interface {
	List(ctx context.Context) ([]*entity.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}
