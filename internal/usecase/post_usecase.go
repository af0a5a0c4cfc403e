package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// CreatePostInput is the raw new-post form.
type CreatePostInput struct {
	Subject string
	Content string
}

// PostUsecase defines the blog post operations.
type PostUsecase interface {
	ListRecent(ctx context.Context) ([]*entity.Post, error)
	Create(ctx context.Context, input *CreatePostInput) (*entity.Post, error)
	Get(ctx context.Context, id int64) (*entity.Post, error)
}
