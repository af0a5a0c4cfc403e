// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned by Create when the username is taken.
	// Stores enforce this themselves so concurrent signups cannot both succeed.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by the store-assigned ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by exact (case-sensitive) username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user and fills in ID and CreatedAt.
	Create(ctx context.Context, user *entity.User) error
}
