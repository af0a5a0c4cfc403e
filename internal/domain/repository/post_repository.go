package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

// ErrPostNotFound is returned when no post matches the lookup.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the operations for blog post persistence.
type PostRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// ListRecent returns at most limit posts, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Post, error)

	// Create persists a new post and fills in ID and CreatedAt.
	Create(ctx context.Context, post *entity.Post) error
}
